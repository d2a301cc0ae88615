package isodoc

import "encoding/xml"

// Pain002Document is the raw customer payment status report document.
type Pain002Document struct {
	XMLName        xml.Name  `xml:"Document" json:"-"`
	Xmlns          string    `xml:"xmlns,attr" json:"@_xmlns"`
	XmlnsXsi       string    `xml:"xmlns:xsi,attr,omitempty" json:"@_xmlns:xsi,omitempty"`
	CstmrPmtStsRpt PmtStsRpt `xml:"CstmrPmtStsRpt" json:"CstmrPmtStsRpt"`
}

// PmtStsRpt wraps the header and the per-level status blocks.
type PmtStsRpt struct {
	GrpHdr            GroupHeader      `xml:"GrpHdr" json:"GrpHdr"`
	OrgnlGrpInfAndSts OrgnlGrpInf      `xml:"OrgnlGrpInfAndSts" json:"OrgnlGrpInfAndSts"`
	OrgnlPmtInfAndSts []OrgnlPmtInfSts `xml:"OrgnlPmtInfAndSts,omitempty" json:"OrgnlPmtInfAndSts,omitempty"`
}

// OrgnlGrpInf is the group-level status block referring to the original
// message.
type OrgnlGrpInf struct {
	OrgnlMsgID   string      `xml:"OrgnlMsgId" json:"OrgnlMsgId"`
	OrgnlMsgNmID string      `xml:"OrgnlMsgNmId,omitempty" json:"OrgnlMsgNmId,omitempty"`
	GrpSts       string      `xml:"GrpSts,omitempty" json:"GrpSts,omitempty"`
	StsRsnInf    []StsRsnInf `xml:"StsRsnInf,omitempty" json:"StsRsnInf,omitempty"`
}

// OrgnlPmtInfSts is a payment-level status block with its nested transaction
// statuses.
type OrgnlPmtInfSts struct {
	OrgnlPmtInfID string      `xml:"OrgnlPmtInfId" json:"OrgnlPmtInfId"`
	PmtInfSts     string      `xml:"PmtInfSts,omitempty" json:"PmtInfSts,omitempty"`
	StsRsnInf     []StsRsnInf `xml:"StsRsnInf,omitempty" json:"StsRsnInf,omitempty"`
	TxInfAndSts   []TxInfSts  `xml:"TxInfAndSts,omitempty" json:"TxInfAndSts,omitempty"`
}

// TxInfSts is a transaction-level status block.
type TxInfSts struct {
	OrgnlEndToEndID string      `xml:"OrgnlEndToEndId,omitempty" json:"OrgnlEndToEndId,omitempty"`
	TxSts           string      `xml:"TxSts,omitempty" json:"TxSts,omitempty"`
	StsRsnInf       []StsRsnInf `xml:"StsRsnInf,omitempty" json:"StsRsnInf,omitempty"`
}

// StsRsnInf is the optional status reason: a code plus free-text lines.
type StsRsnInf struct {
	Rsn      *ReturnReason `xml:"Rsn,omitempty" json:"Rsn,omitempty"`
	AddtlInf []string      `xml:"AddtlInf,omitempty" json:"AddtlInf,omitempty"`
}
