package models

import (
	"fmt"
	"strings"
	"time"
)

// BusinessError is a bank's in-band "this lookup failed" reply. It is normal
// protocol content, not an exception: a well-formed document legitimately
// carries it as one side of the report-or-error choice.
type BusinessError struct {
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
}

// AccountDetails is the success side of a camt.004 account report.
type AccountDetails struct {
	Currency string    `json:"currency,omitempty"`
	Name     string    `json:"name,omitempty"`
	Type     string    `json:"type,omitempty"`
	Servicer *Agent    `json:"servicer,omitempty"`
	Balances []Balance `json:"balances,omitempty"`
}

// AccountReportOrError reports one account: exactly one of Report or Error is
// populated. Absence of both is a structural parse error, never a valid value.
type AccountReportOrError struct {
	AccountID string          `json:"account_id"`
	Report    *AccountDetails `json:"report,omitempty"`
	Error     *BusinessError  `json:"error,omitempty"`
}

// Validate checks the exactly-one invariant.
func (r AccountReportOrError) Validate() error {
	if (r.Report == nil) == (r.Error == nil) {
		return fmt.Errorf("account %s: exactly one of report or business error must be present", r.AccountID)
	}
	return nil
}

// AccountReportMessage is a parsed camt.004 return-account message.
type AccountReportMessage struct {
	MessageID    string                 `json:"message_id"`
	CreationDate time.Time              `json:"creation_date"`
	Reports      []AccountReportOrError `json:"reports,omitempty"`
}

// Type implements Message.
func (*AccountReportMessage) Type() MessageType {
	return MessageTypeCamt004
}

// PaymentStatus is a camt.006 payment status. Code is the compound
// "type:code" string, e.g. "Sttlm:ACCC": the prefix records which of the
// mutually exclusive source tags (Pdg, Fnl, RTGS, Sttlm, Prtl) held the code,
// so export can reproduce the identical nesting.
type PaymentStatus struct {
	Code     string     `json:"code"`
	DateTime *time.Time `json:"date_time,omitempty"`
}

// Split returns the status type prefix and the bare code.
func (s PaymentStatus) Split() (statusType, code string) {
	parts := strings.SplitN(s.Code, ":", 2)
	if len(parts) != 2 {
		return "", s.Code
	}
	return parts[0], parts[1]
}

// PaymentDetails is the success side of a camt.006 transaction report.
type PaymentDetails struct {
	Status           *PaymentStatus `json:"status,omitempty"`
	InstructedAmount *Money         `json:"instructed_amount,omitempty"`
	SettlementAmount *Money         `json:"settlement_amount,omitempty"`
	Debtor           *Party         `json:"debtor,omitempty"`
	Creditor         *Party         `json:"creditor,omitempty"`
	EndToEndID       string         `json:"end_to_end_id,omitempty"`
}

// TransactionReportOrError reports one transaction: exactly one of Report or
// Error is populated, mirroring AccountReportOrError.
type TransactionReportOrError struct {
	PaymentID string          `json:"payment_id"`
	Report    *PaymentDetails `json:"report,omitempty"`
	Error     *BusinessError  `json:"error,omitempty"`
}

// Validate checks the exactly-one invariant.
func (r TransactionReportOrError) Validate() error {
	if (r.Report == nil) == (r.Error == nil) {
		return fmt.Errorf("payment %s: exactly one of report or business error must be present", r.PaymentID)
	}
	return nil
}

// TransactionReportMessage is a parsed camt.006 return-transaction message.
type TransactionReportMessage struct {
	MessageID    string                     `json:"message_id"`
	CreationDate time.Time                  `json:"creation_date"`
	Reports      []TransactionReportOrError `json:"reports,omitempty"`
}

// Type implements Message.
func (*TransactionReportMessage) Type() MessageType {
	return MessageTypeCamt006
}
