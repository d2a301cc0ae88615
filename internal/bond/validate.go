package bond

import (
	"fmt"

	"fjacquet/iso20022/internal/currency"
	"fjacquet/iso20022/internal/models"
	"fjacquet/iso20022/internal/parsererror"
)

// ValidateStatement checks a statement for the conditions the flattening
// depends on. Hard failures come back as a ValidationErrors value; soft
// findings are returned as warnings for the caller to surface. The library
// never logs them.
func ValidateStatement(stmt *models.Statement) ([]string, error) {
	var errs parsererror.ValidationErrors
	var warnings []string

	opening := stmt.Balance(models.BalanceOpeningBooked)
	if opening == nil {
		errs.Errors = append(errs.Errors,
			fmt.Sprintf("statement %s: missing opening-booked (OPBD) balance", stmt.ID))
	}

	if opening != nil {
		ccy := opening.Amount.Currency
		for i := range stmt.Entries {
			if stmt.Entries[i].Amount.Currency != ccy {
				errs.Errors = append(errs.Errors,
					fmt.Sprintf("statement %s: entry %d currency %s differs from balance currency %s",
						stmt.ID, i, stmt.Entries[i].Amount.Currency, ccy))
			}
		}
	}

	closing := stmt.Balance(models.BalanceClosingBooked)
	if closing == nil {
		warnings = append(warnings,
			fmt.Sprintf("statement %s: missing closing-booked (CLBD) balance", stmt.ID))
	}

	if opening != nil && closing != nil && !errs.HasErrors() {
		computed := signedMinorUnits(opening.Amount.MinorUnits, opening.CreditDebit)
		for i := range stmt.Entries {
			computed += signedMinorUnits(stmt.Entries[i].Amount.MinorUnits, stmt.Entries[i].CreditDebit)
		}
		reported := signedMinorUnits(closing.Amount.MinorUnits, closing.CreditDebit)
		if computed != reported {
			warnings = append(warnings,
				fmt.Sprintf("statement %s: computed closing balance %s does not match reported %s",
					stmt.ID,
					currency.ToDecimalString(computed, closing.Amount.Currency),
					currency.ToDecimalString(reported, closing.Amount.Currency)))
		}
	}

	if stmt.Totals != nil && stmt.Totals.Count != len(stmt.Entries) {
		warnings = append(warnings,
			fmt.Sprintf("statement %s: transaction summary reports %d entries, document carries %d",
				stmt.ID, stmt.Totals.Count, len(stmt.Entries)))
	}

	if errs.HasErrors() {
		return warnings, &errs
	}
	return warnings, nil
}
