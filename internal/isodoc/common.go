// Package isodoc holds the raw document layer: loosely-typed structs mirroring
// the ISO 20022 XML shapes, with every leaf a string. The same structs carry
// json tags in the XML-tree convention (attributes prefixed with "@_", text
// content under "#text"), so a document serialized to JSON re-parses through
// the identical path as XML. Only the mapping layer consumes these types; the
// domain model never sees them.
package isodoc

// Amount is a currency-attributed amount leaf. The value stays a string so
// codes and amounts are never coerced by the decoder.
type Amount struct {
	Value string `xml:",chardata" json:"#text"`
	Ccy   string `xml:"Ccy,attr" json:"@_Ccy"`
}

// DateChoice is the ISO date-or-date-time choice.
type DateChoice struct {
	Dt   string `xml:"Dt,omitempty" json:"Dt,omitempty"`
	DtTm string `xml:"DtTm,omitempty" json:"DtTm,omitempty"`
}

// OtherID is the generic "other identification" wrapper.
type OtherID struct {
	ID string `xml:"Id" json:"Id"`
}

// AccountID is the IBAN-or-other account identification choice.
type AccountID struct {
	IBAN string   `xml:"IBAN,omitempty" json:"IBAN,omitempty"`
	Othr *OtherID `xml:"Othr,omitempty" json:"Othr,omitempty"`
}

// AccountType is the code-or-proprietary account type choice.
type AccountType struct {
	Cd    string `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry string `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

// CashAccount is the recurring account substructure.
type CashAccount struct {
	ID  AccountID    `xml:"Id" json:"Id"`
	Tp  *AccountType `xml:"Tp,omitempty" json:"Tp,omitempty"`
	Ccy string       `xml:"Ccy,omitempty" json:"Ccy,omitempty"`
	Nm  string       `xml:"Nm,omitempty" json:"Nm,omitempty"`
}

// ClearingMember identifies an institution by clearing-system member id.
type ClearingMember struct {
	MmbID string `xml:"MmbId" json:"MmbId"`
}

// FinancialInstitution is the BIC-or-clearing-member institution choice.
type FinancialInstitution struct {
	BIC         string          `xml:"BIC,omitempty" json:"BIC,omitempty"`
	ClrSysMmbID *ClearingMember `xml:"ClrSysMmbId,omitempty" json:"ClrSysMmbId,omitempty"`
	Nm          string          `xml:"Nm,omitempty" json:"Nm,omitempty"`
	PstlAdr     *PostalAddress  `xml:"PstlAdr,omitempty" json:"PstlAdr,omitempty"`
	Othr        *OtherID        `xml:"Othr,omitempty" json:"Othr,omitempty"`
}

// Agent wraps a financial institution identification.
type Agent struct {
	FinInstnID FinancialInstitution `xml:"FinInstnId" json:"FinInstnId"`
}

// PostalAddress is the structured postal address substructure.
type PostalAddress struct {
	StrtNm      string   `xml:"StrtNm,omitempty" json:"StrtNm,omitempty"`
	BldgNb      string   `xml:"BldgNb,omitempty" json:"BldgNb,omitempty"`
	PstCd       string   `xml:"PstCd,omitempty" json:"PstCd,omitempty"`
	TwnNm       string   `xml:"TwnNm,omitempty" json:"TwnNm,omitempty"`
	CtrySubDvsn string   `xml:"CtrySubDvsn,omitempty" json:"CtrySubDvsn,omitempty"`
	Ctry        string   `xml:"Ctry,omitempty" json:"Ctry,omitempty"`
	AdrLine     []string `xml:"AdrLine,omitempty" json:"AdrLine,omitempty"`
}

// OrgID is the organisation identification nested under a party id.
type OrgID struct {
	AnyBIC string   `xml:"AnyBIC,omitempty" json:"AnyBIC,omitempty"`
	Othr   *OtherID `xml:"Othr,omitempty" json:"Othr,omitempty"`
}

// PartyID wraps the organisation-or-private party identification. Only the
// organisation side is mapped.
type PartyID struct {
	OrgID *OrgID `xml:"OrgId,omitempty" json:"OrgId,omitempty"`
}

// Party is the recurring party substructure.
type Party struct {
	Nm      string         `xml:"Nm,omitempty" json:"Nm,omitempty"`
	PstlAdr *PostalAddress `xml:"PstlAdr,omitempty" json:"PstlAdr,omitempty"`
	ID      *PartyID       `xml:"Id,omitempty" json:"Id,omitempty"`
}

// GroupHeader is the message header shared by the pain family.
type GroupHeader struct {
	MsgID    string `xml:"MsgId" json:"MsgId"`
	CreDtTm  string `xml:"CreDtTm" json:"CreDtTm"`
	NbOfTxs  string `xml:"NbOfTxs,omitempty" json:"NbOfTxs,omitempty"`
	CtrlSum  string `xml:"CtrlSum,omitempty" json:"CtrlSum,omitempty"`
	InitgPty *Party `xml:"InitgPty,omitempty" json:"InitgPty,omitempty"`
}

// MessageHeader is the lighter header of the camt query/return family.
type MessageHeader struct {
	MsgID   string `xml:"MsgId" json:"MsgId"`
	CreDtTm string `xml:"CreDtTm,omitempty" json:"CreDtTm,omitempty"`
}

// ErrorCode is the code-or-proprietary error identification of a business
// error block.
type ErrorCode struct {
	Cd    string `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry string `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

// BusinessError is the in-band error side of the report-or-error choices.
type BusinessError struct {
	Err  ErrorCode `xml:"Err" json:"Err"`
	Desc string    `xml:"Desc,omitempty" json:"Desc,omitempty"`
}
