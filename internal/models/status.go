package models

import "time"

// StatusScope discriminates where in the original message a pain.002 status
// applies.
type StatusScope string

const (
	ScopeGroup       StatusScope = "group"
	ScopePayment     StatusScope = "payment"
	ScopeTransaction StatusScope = "transaction"
)

// StatusCode is the fixed pain.002 status enumeration.
type StatusCode string

const (
	StatusRejected                    StatusCode = "RJCT"
	StatusPending                     StatusCode = "PDNG"
	StatusAccepted                    StatusCode = "ACCP"
	StatusAcceptedSettlementInProcess StatusCode = "ACSP"
	StatusAcceptedSettlementCompleted StatusCode = "ACSC"
	StatusAcceptedTechnical           StatusCode = "ACTC"
	StatusPartiallyAccepted           StatusCode = "PART"
)

// KnownStatusCode reports whether the code belongs to the enumeration.
func KnownStatusCode(code StatusCode) bool {
	switch code {
	case StatusRejected, StatusPending, StatusAccepted,
		StatusAcceptedSettlementInProcess, StatusAcceptedSettlementCompleted,
		StatusAcceptedTechnical, StatusPartiallyAccepted:
		return true
	}
	return false
}

// StatusReason is the optional reason attached to a status.
type StatusReason struct {
	Code           string `json:"code,omitempty"`
	AdditionalInfo string `json:"additional_info,omitempty"`
}

// StatusInformation is one status line in a pain.002 report. The scope
// determines which original identifier OriginalID refers to: the original
// message id (group), the payment information id (payment) or the end-to-end
// id (transaction).
type StatusInformation struct {
	Scope      StatusScope `json:"scope"`
	OriginalID string      `json:"original_id,omitempty"`
	// PaymentInformationID records, for transaction-scope statuses, the id of
	// the payment block the transaction was reported under, so export can
	// rebuild the block nesting.
	PaymentInformationID string        `json:"payment_information_id,omitempty"`
	Status               StatusCode    `json:"status"`
	Reason               *StatusReason `json:"reason,omitempty"`
}

// StatusReportMessage is a parsed pain.002 payment status report. Statuses
// are ordered group first, then payment, then transaction level; the first
// element is what First returns.
type StatusReportMessage struct {
	MessageID           string              `json:"message_id"`
	CreationDate        time.Time           `json:"creation_date"`
	OriginalMessageID   string              `json:"original_message_id,omitempty"`
	OriginalMessageName string              `json:"original_message_name,omitempty"`
	Statuses            []StatusInformation `json:"statuses"`
}

// Type implements Message.
func (*StatusReportMessage) Type() MessageType {
	return MessageTypePain002
}

// First returns the leading status, the conventional "the" status of the
// report, or nil for an empty report.
func (m *StatusReportMessage) First() *StatusInformation {
	if len(m.Statuses) == 0 {
		return nil
	}
	return &m.Statuses[0]
}
