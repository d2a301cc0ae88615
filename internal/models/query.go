package models

import (
	"fmt"
	"regexp"
	"time"
)

// MatchKind discriminates the account-id match styles of the cash-management
// query messages.
type MatchKind string

const (
	MatchEqual       MatchKind = "eq"
	MatchContains    MatchKind = "ct"
	MatchNotContains MatchKind = "nct"
)

// AccountMatch is an account-id criterion. Contains / not-contains matches
// hold the raw substring; the compiled pattern is cached at construction so
// export can always write the substring back verbatim.
type AccountMatch struct {
	Kind    MatchKind `json:"kind"`
	Text    string    `json:"text"`
	pattern *regexp.Regexp
}

// NewAccountMatch builds a match criterion, compiling the substring pattern
// for the contains kinds.
func NewAccountMatch(kind MatchKind, text string) (AccountMatch, error) {
	if text == "" {
		return AccountMatch{}, fmt.Errorf("account match text is required")
	}
	m := AccountMatch{Kind: kind, Text: text}
	switch kind {
	case MatchEqual:
	case MatchContains, MatchNotContains:
		pattern, err := regexp.Compile(regexp.QuoteMeta(text))
		if err != nil {
			return AccountMatch{}, fmt.Errorf("invalid account match %q: %w", text, err)
		}
		m.pattern = pattern
	default:
		return AccountMatch{}, fmt.Errorf("unknown match kind %q", kind)
	}
	return m, nil
}

// Matches applies the criterion to an account identifier.
func (m AccountMatch) Matches(accountID string) bool {
	switch m.Kind {
	case MatchEqual:
		return accountID == m.Text
	case MatchContains:
		return m.pattern != nil && m.pattern.MatchString(accountID)
	case MatchNotContains:
		return m.pattern != nil && !m.pattern.MatchString(accountID)
	}
	return false
}

// SearchCriteria is one criteria group of a camt.003 or camt.005 query. Each
// sub-criterion occurs at most once per group; the mappers reject documents
// with repeated occurrences rather than silently taking the first.
type SearchCriteria struct {
	Account     *AccountMatch `json:"account,omitempty"`
	Currency    string        `json:"currency,omitempty"`
	BalanceDate *time.Time    `json:"balance_date,omitempty"`
}

// IsZero reports whether the group carries no criterion at all.
func (c SearchCriteria) IsZero() bool {
	return c.Account == nil && c.Currency == "" && c.BalanceDate == nil
}

// AccountQueryMessage is a parsed camt.003 get-account query.
type AccountQueryMessage struct {
	MessageID    string           `json:"message_id"`
	CreationDate time.Time        `json:"creation_date"`
	Criteria     []SearchCriteria `json:"criteria,omitempty"`
}

// Type implements Message.
func (*AccountQueryMessage) Type() MessageType {
	return MessageTypeCamt003
}

// TransactionQueryMessage is a parsed camt.005 get-transaction query. It
// shares the criteria shape with the account query.
type TransactionQueryMessage struct {
	MessageID    string           `json:"message_id"`
	CreationDate time.Time        `json:"creation_date"`
	Criteria     []SearchCriteria `json:"criteria,omitempty"`
}

// Type implements Message.
func (*TransactionQueryMessage) Type() MessageType {
	return MessageTypeCamt005
}
