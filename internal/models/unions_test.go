package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountSingleVariant(t *testing.T) {
	iban, err := NewIBANAccount("DE89370400440532013000")
	require.NoError(t, err)
	assert.NoError(t, iban.Validate())

	local, err := NewLocalAccount("000123456789", AccountTypeChecking, "USD", "Operating")
	require.NoError(t, err)
	assert.NoError(t, local.Validate())

	// Both variants populated violates the invariant.
	broken := Account{Kind: AccountKindIBAN, IBAN: "DE89370400440532013000", Number: "123"}
	assert.Error(t, broken.Validate())

	assert.Error(t, Account{Kind: AccountKindIBAN}.Validate())
	assert.True(t, Account{}.IsZero())
}

func TestAgentSingleVariant(t *testing.T) {
	bic, err := NewBICAgent("BOFAUS3NXXX", nil)
	require.NoError(t, err)
	assert.NoError(t, bic.Validate())

	routing, err := NewRoutingAgent("021000021")
	require.NoError(t, err)
	assert.NoError(t, routing.Validate())

	broken := Agent{Kind: AgentKindBIC, BIC: "BOFAUS3NXXX", RoutingNumber: "021000021"}
	assert.Error(t, broken.Validate())
}

func TestPartyHasCountry(t *testing.T) {
	assert.False(t, Party{Name: "X"}.HasCountry())
	assert.False(t, Party{Address: &PostalAddress{Town: "Bern"}}.HasCountry())
	assert.True(t, Party{Address: &PostalAddress{Country: "CH"}}.HasCountry())
}

func TestAccountMatch(t *testing.T) {
	eq, err := NewAccountMatch(MatchEqual, "ABC-1")
	require.NoError(t, err)
	assert.True(t, eq.Matches("ABC-1"))
	assert.False(t, eq.Matches("ABC-10"))

	ct, err := NewAccountMatch(MatchContains, "45.7")
	require.NoError(t, err)
	// The substring is matched literally, not as a regular expression.
	assert.True(t, ct.Matches("xx45.7yy"))
	assert.False(t, ct.Matches("xx4517yy"))

	nct, err := NewAccountMatch(MatchNotContains, "99")
	require.NoError(t, err)
	assert.True(t, nct.Matches("1234"))
	assert.False(t, nct.Matches("1994"))

	_, err = NewAccountMatch(MatchEqual, "")
	assert.Error(t, err)
	_, err = NewAccountMatch("bogus", "x")
	assert.Error(t, err)
}

func TestStatementBalanceLookup(t *testing.T) {
	stmt := Statement{Balances: []Balance{
		{Type: BalanceOpeningBooked, Amount: Money{MinorUnits: 1, Currency: "CHF"}},
		{Type: BalanceClosingBooked, Amount: Money{MinorUnits: 2, Currency: "CHF"}},
	}}
	require.NotNil(t, stmt.Balance(BalanceOpeningBooked))
	assert.Equal(t, int64(2), stmt.Balance(BalanceClosingBooked).Amount.MinorUnits)
	assert.Nil(t, stmt.Balance(BalanceInterimBooked))
}

func TestPaymentStatusSplit(t *testing.T) {
	statusType, code := PaymentStatus{Code: "Sttlm:ACCC"}.Split()
	assert.Equal(t, "Sttlm", statusType)
	assert.Equal(t, "ACCC", code)

	statusType, code = PaymentStatus{Code: "ACCC"}.Split()
	assert.Empty(t, statusType)
	assert.Equal(t, "ACCC", code)
}

func TestControlSumIsExact(t *testing.T) {
	msg := CreditTransferMessage{Instructions: []PaymentInstruction{
		{Amount: Money{MinorUnits: 1, Currency: "EUR"}},
		{Amount: Money{MinorUnits: 2, Currency: "EUR"}},
		{Amount: Money{MinorUnits: 9060000, Currency: "EUR"}},
	}}
	assert.Equal(t, "90600.03", msg.ControlSum().StringFixed(2))
	assert.Equal(t, "EUR", msg.Currency())
}

func TestCreditTransferDefaultsExecutionDate(t *testing.T) {
	creation := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)
	msg, err := NewSWIFTCreditTransfer(CreditTransferParams{
		CreationDate: creation,
		Debtor:       Party{Name: "D"},
		DebtorAccount: Account{
			Kind: AccountKindIBAN, IBAN: "CH9300762011623852957",
		},
		Instructions: []PaymentInstruction{{
			Amount:          Money{MinorUnits: 100, Currency: "CHF"},
			Creditor:        Party{Name: "C"},
			CreditorAccount: Account{Kind: AccountKindIBAN, IBAN: "DE89370400440532013000"},
		}},
	})
	require.NoError(t, err)
	assert.Equal(t, creation, msg.RequestedExecutionDate)
	assert.Equal(t, MessageTypePain001SWIFT, msg.Type())
}
