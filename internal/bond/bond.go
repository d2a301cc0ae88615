// Package bond flattens camt.053 statements into ordered transaction records
// with a running balance, the shape downstream reconciliation consumes, and
// exports them as CSV.
package bond

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"fjacquet/iso20022/internal/currency"
	"fjacquet/iso20022/internal/dateutils"
	"fjacquet/iso20022/internal/models"
)

// Record is one flattened statement entry. Amounts are decimal strings in the
// statement currency; exactly one of Debit and Credit is non-empty.
type Record struct {
	Date        string `csv:"date"`
	Reference   string `csv:"reference"`
	Description string `csv:"description"`
	Debit       string `csv:"debit"`
	Credit      string `csv:"credit"`
	Currency    string `csv:"currency"`
	Balance     string `csv:"balance"`
	Reversal    bool   `csv:"reversal"`
}

// Totals aggregates a record set.
type Totals struct {
	Credits      int64
	Debits       int64
	FinalBalance int64
	Currency     string
}

// FromStatement flattens the statement's entries, in document order, into
// records carrying a running balance seeded from the opening-booked balance.
// A missing opening-booked balance is an error; the flattening cannot invent
// a starting point.
func FromStatement(stmt *models.Statement) ([]Record, error) {
	return FromStatementTable(stmt, currency.DefaultTable())
}

// FromStatementTable is FromStatement with an explicit precision table, for
// deployments carrying bank-specific precision overrides.
func FromStatementTable(stmt *models.Statement, table *currency.Table) ([]Record, error) {
	opening := stmt.Balance(models.BalanceOpeningBooked)
	if opening == nil {
		return nil, fmt.Errorf("statement %s: no opening-booked balance to seed the running balance", stmt.ID)
	}
	balance := signedMinorUnits(opening.Amount.MinorUnits, opening.CreditDebit)
	ccy := opening.Amount.Currency

	records := make([]Record, 0, len(stmt.Entries))
	for i := range stmt.Entries {
		entry := &stmt.Entries[i]
		if entry.Amount.Currency != ccy {
			return nil, fmt.Errorf("statement %s: entry currency %s differs from balance currency %s",
				stmt.ID, entry.Amount.Currency, ccy)
		}
		balance += signedMinorUnits(entry.Amount.MinorUnits, entry.CreditDebit)

		record := Record{
			Date:        dateutils.FormatDate(entry.BookingDate),
			Reference:   entryReference(entry),
			Description: entryDescription(entry),
			Currency:    ccy,
			Balance:     table.ToDecimalString(balance, ccy),
			Reversal:    entry.Reversal,
		}
		amount := table.ToDecimalString(entry.Amount.MinorUnits, ccy)
		if entry.CreditDebit == models.Credit {
			record.Credit = amount
		} else {
			record.Debit = amount
		}
		records = append(records, record)
	}
	return records, nil
}

// Sum computes aggregate totals over the statement's entries plus the closing
// running balance.
func Sum(stmt *models.Statement) (Totals, error) {
	opening := stmt.Balance(models.BalanceOpeningBooked)
	if opening == nil {
		return Totals{}, fmt.Errorf("statement %s: no opening-booked balance", stmt.ID)
	}
	totals := Totals{
		FinalBalance: signedMinorUnits(opening.Amount.MinorUnits, opening.CreditDebit),
		Currency:     opening.Amount.Currency,
	}
	for i := range stmt.Entries {
		entry := &stmt.Entries[i]
		if entry.CreditDebit == models.Credit {
			totals.Credits += entry.Amount.MinorUnits
		} else {
			totals.Debits += entry.Amount.MinorUnits
		}
		totals.FinalBalance += signedMinorUnits(entry.Amount.MinorUnits, entry.CreditDebit)
	}
	return totals, nil
}

// WriteCSV writes the records with a header row.
func WriteCSV(records []Record, w io.Writer) error {
	return gocsv.Marshal(records, w)
}

func signedMinorUnits(minorUnits int64, indicator models.CreditDebit) int64 {
	if indicator == models.Debit {
		return -minorUnits
	}
	return minorUnits
}

// entryReference prefers the transaction-level end-to-end id over the bank's
// own references, matching what counterparties reconcile against.
func entryReference(entry *models.Entry) string {
	for i := range entry.Transactions {
		if entry.Transactions[i].EndToEndID != "" {
			return entry.Transactions[i].EndToEndID
		}
	}
	if entry.Reference != "" {
		return entry.Reference
	}
	return entry.AccountServicerRef
}

func entryDescription(entry *models.Entry) string {
	for i := range entry.Transactions {
		if entry.Transactions[i].RemittanceInformation != "" {
			return entry.Transactions[i].RemittanceInformation
		}
	}
	if entry.AdditionalInformation != "" {
		return entry.AdditionalInformation
	}
	return entry.ProprietaryCode
}
