package isodoc

import "encoding/xml"

// Camt003Document is the raw get-account query document.
type Camt003Document struct {
	XMLName  xml.Name `xml:"Document" json:"-"`
	Xmlns    string   `xml:"xmlns,attr" json:"@_xmlns"`
	XmlnsXsi string   `xml:"xmlns:xsi,attr,omitempty" json:"@_xmlns:xsi,omitempty"`
	GetAcct  GetAcct  `xml:"GetAcct" json:"GetAcct"`
}

// GetAcct wraps the header and the account query definition.
type GetAcct struct {
	MsgHdr     MessageHeader `xml:"MsgHdr" json:"MsgHdr"`
	AcctQryDef *AcctQryDef   `xml:"AcctQryDef,omitempty" json:"AcctQryDef,omitempty"`
}

// AcctQryDef holds the query criteria.
type AcctQryDef struct {
	AcctCrit *Crit `xml:"AcctCrit,omitempty" json:"AcctCrit,omitempty"`
}

// Crit is the new-criteria wrapper shared with camt.005.
type Crit struct {
	NewCrit *NewCrit `xml:"NewCrit,omitempty" json:"NewCrit,omitempty"`
}

// NewCrit holds the search criteria groups.
type NewCrit struct {
	SchCrit []SchCrit `xml:"SchCrit,omitempty" json:"SchCrit,omitempty"`
}

// SchCrit is one raw criteria group. Each sub-criterion is single-occurrence
// at the domain level; the slices exist so the mapper can detect and reject
// repeated occurrences.
type SchCrit struct {
	AcctID []AcctIDChoice `xml:"AcctId,omitempty" json:"AcctId,omitempty"`
	Ccy    []string       `xml:"Ccy,omitempty" json:"Ccy,omitempty"`
	Bal    []BalCrit      `xml:"Bal,omitempty" json:"Bal,omitempty"`
}

// AcctIDChoice is the exact / contains / not-contains account-id match
// choice.
type AcctIDChoice struct {
	EQ     *AccountID `xml:"EQ,omitempty" json:"EQ,omitempty"`
	CTTxt  string     `xml:"CTTxt,omitempty" json:"CTTxt,omitempty"`
	NCTTxt string     `xml:"NCTTxt,omitempty" json:"NCTTxt,omitempty"`
}

// BalCrit is the balance-as-of-date criterion.
type BalCrit struct {
	ValDt *DateChoice `xml:"ValDt,omitempty" json:"ValDt,omitempty"`
}
