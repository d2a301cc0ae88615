package isodoc

import "encoding/xml"

// Camt006Document is the raw return-transaction document.
type Camt006Document struct {
	XMLName  xml.Name `xml:"Document" json:"-"`
	Xmlns    string   `xml:"xmlns,attr" json:"@_xmlns"`
	XmlnsXsi string   `xml:"xmlns:xsi,attr,omitempty" json:"@_xmlns:xsi,omitempty"`
	RtrTx    RtrTx    `xml:"RtrTx" json:"RtrTx"`
}

// RtrTx wraps the header and the per-transaction reports.
type RtrTx struct {
	MsgHdr   MessageHeader `xml:"MsgHdr" json:"MsgHdr"`
	RptOrErr TxRptOrErr    `xml:"RptOrErr" json:"RptOrErr"`
}

// TxRptOrErr holds the transaction report list.
type TxRptOrErr struct {
	TxRpt []TxRpt `xml:"TxRpt,omitempty" json:"TxRpt,omitempty"`
}

// TxRpt is one reported payment with its report-or-error choice.
type TxRpt struct {
	PmtID   PmtID   `xml:"PmtId" json:"PmtId"`
	TxOrErr TxOrErr `xml:"TxOrErr" json:"TxOrErr"`
}

// PmtID identifies the reported payment.
type PmtID struct {
	TxID    string `xml:"TxId,omitempty" json:"TxId,omitempty"`
	PrtryID string `xml:"PrtryId,omitempty" json:"PrtryId,omitempty"`
}

// TxOrErr is the report-or-error choice.
type TxOrErr struct {
	Tx     *Tx006         `xml:"Tx,omitempty" json:"Tx,omitempty"`
	BizErr *BusinessError `xml:"BizErr,omitempty" json:"BizErr,omitempty"`
}

// Tx006 is the success side of the choice.
type Tx006 struct {
	Pmt *Pmt006 `xml:"Pmt,omitempty" json:"Pmt,omitempty"`
}

// Pmt006 carries the payment's status, amounts and parties.
type Pmt006 struct {
	Sts            *Sts006    `xml:"Sts,omitempty" json:"Sts,omitempty"`
	InstdAmt       *Amount    `xml:"InstdAmt,omitempty" json:"InstdAmt,omitempty"`
	IntrBkSttlmAmt *Amount    `xml:"IntrBkSttlmAmt,omitempty" json:"IntrBkSttlmAmt,omitempty"`
	EndToEndID     string     `xml:"EndToEndId,omitempty" json:"EndToEndId,omitempty"`
	Pties          *PmtPties  `xml:"Pties,omitempty" json:"Pties,omitempty"`
}

// Sts006 is the payment status: the code sits under exactly one of several
// mutually exclusive tag names, and the tag name is significant.
type Sts006 struct {
	Cd   *StsCd006 `xml:"Cd,omitempty" json:"Cd,omitempty"`
	DtTm string    `xml:"DtTm,omitempty" json:"DtTm,omitempty"`
}

// StsCd006 is the status-code choice. Exactly one member is populated; which
// one determines the meaning of the code.
type StsCd006 struct {
	Pdg   string `xml:"Pdg,omitempty" json:"Pdg,omitempty"`
	Fnl   string `xml:"Fnl,omitempty" json:"Fnl,omitempty"`
	RTGS  string `xml:"RTGS,omitempty" json:"RTGS,omitempty"`
	Sttlm string `xml:"Sttlm,omitempty" json:"Sttlm,omitempty"`
	Prtl  string `xml:"Prtl,omitempty" json:"Prtl,omitempty"`
}

// PmtPties carries the payment's debtor and creditor.
type PmtPties struct {
	Dbtr *Party `xml:"Dbtr,omitempty" json:"Dbtr,omitempty"`
	Cdtr *Party `xml:"Cdtr,omitempty" json:"Cdtr,omitempty"`
}
