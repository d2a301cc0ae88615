// Package bond contains the camt.053-to-bond-CSV command.
package bond

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"

	"fjacquet/iso20022/cmd/root"
	"fjacquet/iso20022/internal/bond"
	"fjacquet/iso20022/internal/camt053"
	"fjacquet/iso20022/internal/currency"
	"fjacquet/iso20022/internal/logging"
)

// Cmd is the bond command: it parses a camt.053 XML statement, validates it,
// and writes the flattened records as CSV.
var Cmd = &cobra.Command{
	Use:   "bond",
	Short: "Flatten a camt.053 statement into bond CSV records",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(root.SharedFlags.Input)
		if err != nil {
			return err
		}

		msg, err := camt053.FromXML(data)
		if err != nil {
			return err
		}

		table, err := precisionTable()
		if err != nil {
			return err
		}
		configureDelimiter()

		var records []bond.Record
		for i := range msg.Statements {
			stmt := &msg.Statements[i]

			warnings, err := bond.ValidateStatement(stmt)
			for _, warning := range warnings {
				root.Log.Warn(warning)
			}
			if err != nil {
				return err
			}

			stmtRecords, err := bond.FromStatementTable(stmt, table)
			if err != nil {
				return err
			}
			records = append(records, stmtRecords...)

			totals, err := bond.Sum(stmt)
			if err != nil {
				return err
			}
			root.Log.Info("statement flattened",
				logging.Field{Key: "statement", Value: stmt.ID},
				logging.Field{Key: "entries", Value: len(stmtRecords)},
				logging.Field{Key: "final_balance", Value: table.ToDecimalString(totals.FinalBalance, totals.Currency)})
		}

		return writeCSV(root.SharedFlags.Output, records)
	},
}

func precisionTable() (*currency.Table, error) {
	path := root.Cfg.Currency.OverridesFile
	if path == "" {
		return currency.DefaultTable(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening precision overrides: %w", err)
	}
	defer f.Close()
	return currency.LoadOverrides(f)
}

func configureDelimiter() {
	delimiter := rune(root.Cfg.CSV.Delimiter[0])
	if delimiter == ',' {
		return
	}
	gocsv.SetCSVWriter(func(out io.Writer) *gocsv.SafeCSVWriter {
		w := csv.NewWriter(out)
		w.Comma = delimiter
		return gocsv.NewSafeCSVWriter(w)
	})
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeCSV(path string, records []bond.Record) error {
	if path == "" {
		return bond.WriteCSV(records, os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return bond.WriteCSV(records, f)
}
