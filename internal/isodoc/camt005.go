package isodoc

import "encoding/xml"

// Camt005Document is the raw get-transaction query document. It shares the
// criteria shapes with camt.003.
type Camt005Document struct {
	XMLName  xml.Name `xml:"Document" json:"-"`
	Xmlns    string   `xml:"xmlns,attr" json:"@_xmlns"`
	XmlnsXsi string   `xml:"xmlns:xsi,attr,omitempty" json:"@_xmlns:xsi,omitempty"`
	GetTx    GetTx    `xml:"GetTx" json:"GetTx"`
}

// GetTx wraps the header and the transaction query definition.
type GetTx struct {
	MsgHdr   MessageHeader `xml:"MsgHdr" json:"MsgHdr"`
	TxQryDef *TxQryDef     `xml:"TxQryDef,omitempty" json:"TxQryDef,omitempty"`
}

// TxQryDef holds the query criteria.
type TxQryDef struct {
	TxCrit *Crit `xml:"TxCrit,omitempty" json:"TxCrit,omitempty"`
}
