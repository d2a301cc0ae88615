package models

import "time"

// BalanceType codes are taken verbatim from the ISO 20022 balance-type code
// set; the mapper performs no semantic reinterpretation.
type BalanceType string

const (
	BalanceOpeningAvailable BalanceType = "OPAV"
	BalanceOpeningBooked    BalanceType = "OPBD"
	BalanceClosingAvailable BalanceType = "CLAV"
	BalanceClosingBooked    BalanceType = "CLBD"
	BalanceInterimAvailable BalanceType = "ITAV"
	BalanceInterimBooked    BalanceType = "ITBD"
	BalanceForwardAvailable BalanceType = "FWAV"
	BalanceExpected         BalanceType = "XPCD"
	BalanceInformation      BalanceType = "INFO"
	BalancePreviouslyClosed BalanceType = "PRCD"
)

// Balance is one statement balance: a dated amount with its ISO type code and
// direction.
type Balance struct {
	Date        time.Time   `json:"date"`
	Type        BalanceType `json:"type"`
	Amount      Money       `json:"amount"`
	CreditDebit CreditDebit `json:"credit_debit"`
}

// BankTransactionCode is the domain/family/sub-family classification of an
// entry, with the bank's proprietary code alongside.
type BankTransactionCode struct {
	Domain      string `json:"domain,omitempty"`
	Family      string `json:"family,omitempty"`
	SubFamily   string `json:"sub_family,omitempty"`
	Proprietary string `json:"proprietary,omitempty"`
	Issuer      string `json:"issuer,omitempty"`
}

// IsZero reports whether no classification is present.
func (c BankTransactionCode) IsZero() bool {
	return c == BankTransactionCode{}
}

// Transaction is one transaction detail within an Entry. The instructed
// amount is the pre-FX amount and may differ from the booked transaction
// amount.
type Transaction struct {
	MessageID             string `json:"message_id,omitempty"`
	AccountServicerRef    string `json:"account_servicer_ref,omitempty"`
	PaymentInformationID  string `json:"payment_information_id,omitempty"`
	EndToEndID            string `json:"end_to_end_id,omitempty"`
	TransactionID         string `json:"transaction_id,omitempty"`
	Amount                *Money `json:"amount,omitempty"`
	InstructedAmount      *Money `json:"instructed_amount,omitempty"`
	Debtor                *Party `json:"debtor,omitempty"`
	Creditor              *Party `json:"creditor,omitempty"`
	RemittanceInformation string `json:"remittance_information,omitempty"`
	ReturnReason          string `json:"return_reason,omitempty"`
	ReturnAdditionalInfo  string `json:"return_additional_info,omitempty"`
	AdditionalInformation string `json:"additional_information,omitempty"`
}

// Entry is one statement entry. Transactions are flattened from the nested
// entry-details/transaction-details grouping of the source schema; the
// intermediate detail-group boundaries are not preserved on round-trip.
type Entry struct {
	Reference             string              `json:"reference,omitempty"`
	CreditDebit           CreditDebit         `json:"credit_debit"`
	Reversal              bool                `json:"reversal"`
	BookingDate           time.Time           `json:"booking_date"`
	ValueDate             *time.Time          `json:"value_date,omitempty"`
	Amount                Money               `json:"amount"`
	Status                string              `json:"status,omitempty"`
	ProprietaryCode       string              `json:"proprietary_code,omitempty"`
	BankTransactionCode   BankTransactionCode `json:"bank_transaction_code"`
	AdditionalInformation string              `json:"additional_information,omitempty"`
	AccountServicerRef    string              `json:"account_servicer_ref,omitempty"`
	Transactions          []Transaction       `json:"transactions,omitempty"`
}

// EntryTotals are the bank-reported aggregate entry figures of a statement.
// They are carried as reported and never recomputed from the entries.
type EntryTotals struct {
	Count       int         `json:"count"`
	Sum         *Money      `json:"sum,omitempty"`
	NetAmount   *Money      `json:"net_amount,omitempty"`
	CreditDebit CreditDebit `json:"credit_debit,omitempty"`
}

// Statement is a camt.053 end-of-day account statement.
type Statement struct {
	ID                 string     `json:"id"`
	ElectronicSequence string     `json:"electronic_sequence,omitempty"`
	LegalSequence      string     `json:"legal_sequence,omitempty"`
	CreationDate       time.Time  `json:"creation_date"`
	FromDate           *time.Time `json:"from_date,omitempty"`
	ToDate             *time.Time `json:"to_date,omitempty"`
	Account            Account    `json:"account"`
	AccountOwner       string     `json:"account_owner,omitempty"`
	Agent              *Agent     `json:"agent,omitempty"`

	Totals       *EntryTotals `json:"totals,omitempty"`
	CreditTotals *EntryTotals `json:"credit_totals,omitempty"`
	DebitTotals  *EntryTotals `json:"debit_totals,omitempty"`

	Balances []Balance `json:"balances,omitempty"`
	Entries  []Entry   `json:"entries,omitempty"`
}

// StatementMessage is the parsed camt.053 document: header plus statements.
type StatementMessage struct {
	MessageID    string      `json:"message_id"`
	CreationDate time.Time   `json:"creation_date"`
	Statements   []Statement `json:"statements"`
}

// Type implements Message.
func (*StatementMessage) Type() MessageType {
	return MessageTypeCamt053
}

// Balance returns the first balance of the given type, or nil.
func (s *Statement) Balance(balanceType BalanceType) *Balance {
	for i := range s.Balances {
		if s.Balances[i].Type == balanceType {
			return &s.Balances[i]
		}
	}
	return nil
}
