package isodoc

import "encoding/xml"

// Pain001Document is the raw customer credit transfer initiation document.
type Pain001Document struct {
	XMLName          xml.Name    `xml:"Document" json:"-"`
	Xmlns            string      `xml:"xmlns,attr" json:"@_xmlns"`
	XmlnsXsi         string      `xml:"xmlns:xsi,attr,omitempty" json:"@_xmlns:xsi,omitempty"`
	CstmrCdtTrfInitn CdtTrfInitn `xml:"CstmrCdtTrfInitn" json:"CstmrCdtTrfInitn"`
}

// CdtTrfInitn wraps the group header and payment information blocks.
type CdtTrfInitn struct {
	GrpHdr GroupHeader `xml:"GrpHdr" json:"GrpHdr"`
	PmtInf []PmtInf    `xml:"PmtInf" json:"PmtInf"`
}

// PmtInf is one payment information block: one debtor side plus its credit
// instructions.
type PmtInf struct {
	PmtInfID    string       `xml:"PmtInfId" json:"PmtInfId"`
	PmtMtd      string       `xml:"PmtMtd" json:"PmtMtd"`
	NbOfTxs     string       `xml:"NbOfTxs,omitempty" json:"NbOfTxs,omitempty"`
	CtrlSum     string       `xml:"CtrlSum,omitempty" json:"CtrlSum,omitempty"`
	PmtTpInf    *PmtTpInf    `xml:"PmtTpInf,omitempty" json:"PmtTpInf,omitempty"`
	ReqdExctnDt string       `xml:"ReqdExctnDt" json:"ReqdExctnDt"`
	Dbtr        Party        `xml:"Dbtr" json:"Dbtr"`
	DbtrAcct    CashAccount  `xml:"DbtrAcct" json:"DbtrAcct"`
	DbtrAgt     *Agent       `xml:"DbtrAgt,omitempty" json:"DbtrAgt,omitempty"`
	ChrgBr      string       `xml:"ChrgBr,omitempty" json:"ChrgBr,omitempty"`
	CdtTrfTxInf []CdtTrfTx   `xml:"CdtTrfTxInf" json:"CdtTrfTxInf"`
}

// PmtTpInf carries the service level and local instrument codes that the
// pain.001 variants fix.
type PmtTpInf struct {
	SvcLvl    *CodeOrProprietary `xml:"SvcLvl,omitempty" json:"SvcLvl,omitempty"`
	LclInstrm *CodeOrProprietary `xml:"LclInstrm,omitempty" json:"LclInstrm,omitempty"`
}

// CdtTrfTx is one raw credit instruction.
type CdtTrfTx struct {
	PmtID    PaymentIDs   `xml:"PmtId" json:"PmtId"`
	Amt      InstdAmtWrap `xml:"Amt" json:"Amt"`
	CdtrAgt  *Agent       `xml:"CdtrAgt,omitempty" json:"CdtrAgt,omitempty"`
	Cdtr     Party        `xml:"Cdtr" json:"Cdtr"`
	CdtrAcct *CashAccount `xml:"CdtrAcct,omitempty" json:"CdtrAcct,omitempty"`
	RmtInf   *RmtInf      `xml:"RmtInf,omitempty" json:"RmtInf,omitempty"`
}

// PaymentIDs carries the instruction and end-to-end identifiers.
type PaymentIDs struct {
	InstrID    string `xml:"InstrId,omitempty" json:"InstrId,omitempty"`
	EndToEndID string `xml:"EndToEndId" json:"EndToEndId"`
}

// InstdAmtWrap wraps the instructed amount choice.
type InstdAmtWrap struct {
	InstdAmt Amount `xml:"InstdAmt" json:"InstdAmt"`
}
