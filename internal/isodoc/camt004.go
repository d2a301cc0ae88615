package isodoc

import "encoding/xml"

// Camt004Document is the raw return-account document.
type Camt004Document struct {
	XMLName  xml.Name `xml:"Document" json:"-"`
	Xmlns    string   `xml:"xmlns,attr" json:"@_xmlns"`
	XmlnsXsi string   `xml:"xmlns:xsi,attr,omitempty" json:"@_xmlns:xsi,omitempty"`
	RtrAcct  RtrAcct  `xml:"RtrAcct" json:"RtrAcct"`
}

// RtrAcct wraps the header and the per-account reports.
type RtrAcct struct {
	MsgHdr   MessageHeader `xml:"MsgHdr" json:"MsgHdr"`
	RptOrErr AcctRptOrErr  `xml:"RptOrErr" json:"RptOrErr"`
}

// AcctRptOrErr holds the account report list.
type AcctRptOrErr struct {
	AcctRpt []AcctRpt `xml:"AcctRpt,omitempty" json:"AcctRpt,omitempty"`
}

// AcctRpt is one reported account with its report-or-error choice.
type AcctRpt struct {
	AcctID    AccountID `xml:"AcctId" json:"AcctId"`
	AcctOrErr AcctOrErr `xml:"AcctOrErr" json:"AcctOrErr"`
}

// AcctOrErr is the report-or-error choice: a bank legitimately replies with a
// business error for an individual account.
type AcctOrErr struct {
	Acct   *AcctDetails   `xml:"Acct,omitempty" json:"Acct,omitempty"`
	BizErr *BusinessError `xml:"BizErr,omitempty" json:"BizErr,omitempty"`
}

// AcctDetails is the success side of the choice.
type AcctDetails struct {
	Ccy    string       `xml:"Ccy,omitempty" json:"Ccy,omitempty"`
	Tp     *AccountType `xml:"Tp,omitempty" json:"Tp,omitempty"`
	Nm     string       `xml:"Nm,omitempty" json:"Nm,omitempty"`
	Svcr   *Agent       `xml:"Svcr,omitempty" json:"Svcr,omitempty"`
	MulBal []Bal        `xml:"MulBal,omitempty" json:"MulBal,omitempty"`
}
