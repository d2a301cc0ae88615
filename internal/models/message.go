package models

// MessageType enumerates the supported ISO 20022 message families. The
// pain.001 variants are distinct types because each fixes its own currency
// and instrument codes.
type MessageType string

const (
	MessageTypeCamt003 MessageType = "camt.003"
	MessageTypeCamt004 MessageType = "camt.004"
	MessageTypeCamt005 MessageType = "camt.005"
	MessageTypeCamt006 MessageType = "camt.006"
	MessageTypeCamt053 MessageType = "camt.053"
	MessageTypePain002 MessageType = "pain.002"

	MessageTypePain001SWIFT MessageType = "pain.001.swift"
	MessageTypePain001SEPA  MessageType = "pain.001.sepa"
	MessageTypePain001ACH   MessageType = "pain.001.ach"
	MessageTypePain001RTP   MessageType = "pain.001.rtp"
)

// AllMessageTypes lists every supported type, in registry order.
var AllMessageTypes = []MessageType{
	MessageTypeCamt003,
	MessageTypeCamt004,
	MessageTypeCamt005,
	MessageTypeCamt006,
	MessageTypeCamt053,
	MessageTypePain001SWIFT,
	MessageTypePain001SEPA,
	MessageTypePain001ACH,
	MessageTypePain001RTP,
	MessageTypePain002,
}

// Message is implemented by every parsed message. Serialization lives in the
// per-message mapper packages; the registry dispatches on Type.
type Message interface {
	Type() MessageType
}

// CreditDebit is the direction indicator carried separately from amounts.
type CreditDebit string

const (
	Credit CreditDebit = "CRDT"
	Debit  CreditDebit = "DBIT"
)

// Valid reports whether the indicator is one of the two ISO values.
func (cd CreditDebit) Valid() bool {
	return cd == Credit || cd == Debit
}
