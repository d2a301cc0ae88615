package models

import "fmt"

// AccountKind discriminates the two account identification schemes. Exactly
// one scheme is populated per Account; documents that carry both an IBAN and
// a local identification keep only the IBAN.
type AccountKind string

const (
	AccountKindIBAN  AccountKind = "iban"
	AccountKindLocal AccountKind = "local"
)

// AccountType tags a local account as checking or savings where the source
// document says so.
type AccountType string

const (
	AccountTypeChecking AccountType = "checking"
	AccountTypeSavings  AccountType = "savings"
)

// Account identifies a bank account either by IBAN or by a local account
// number. The Kind discriminant is set at construction; the fields of the
// other variant are always zero.
type Account struct {
	Kind AccountKind `json:"kind"`

	// IBAN variant
	IBAN string `json:"iban,omitempty"`

	// Local variant
	Number   string      `json:"number,omitempty"`
	Type     AccountType `json:"type,omitempty"`
	Currency string      `json:"currency,omitempty"`
	Name     string      `json:"name,omitempty"`
}

// NewIBANAccount creates the IBAN variant.
func NewIBANAccount(iban string) (Account, error) {
	if iban == "" {
		return Account{}, fmt.Errorf("IBAN is required")
	}
	return Account{Kind: AccountKindIBAN, IBAN: iban}, nil
}

// NewLocalAccount creates the local variant. Type, currency and name are
// optional and may be zero.
func NewLocalAccount(number string, accountType AccountType, currencyCode, name string) (Account, error) {
	if number == "" {
		return Account{}, fmt.Errorf("account number is required")
	}
	switch accountType {
	case "", AccountTypeChecking, AccountTypeSavings:
	default:
		return Account{}, fmt.Errorf("unknown account type %q", accountType)
	}
	return Account{
		Kind:     AccountKindLocal,
		Number:   number,
		Type:     accountType,
		Currency: currencyCode,
		Name:     name,
	}, nil
}

// IsZero reports whether the account is unset.
func (a Account) IsZero() bool {
	return a.Kind == ""
}

// Validate checks the single-variant invariant.
func (a Account) Validate() error {
	switch a.Kind {
	case AccountKindIBAN:
		if a.IBAN == "" {
			return fmt.Errorf("IBAN account without IBAN")
		}
		if a.Number != "" || a.Type != "" || a.Name != "" {
			return fmt.Errorf("IBAN account carries local fields")
		}
	case AccountKindLocal:
		if a.Number == "" {
			return fmt.Errorf("local account without account number")
		}
		if a.IBAN != "" {
			return fmt.Errorf("local account carries an IBAN")
		}
	default:
		return fmt.Errorf("account has no identification scheme")
	}
	return nil
}
