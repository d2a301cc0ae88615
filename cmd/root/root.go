// Package root contains the root command and the flags shared by the
// subcommands.
package root

import (
	"github.com/spf13/cobra"

	"fjacquet/iso20022/internal/config"
	"fjacquet/iso20022/internal/logging"
)

// CommonFlags are the flags shared by the subcommands.
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands. Configured in the
	// persistent pre-run; the default covers early failures.
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// Cfg is the loaded configuration, available to all subcommands.
	Cfg *config.Config

	// SharedFlags are accessible to all commands.
	SharedFlags = CommonFlags{}

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "iso20022",
		Short: "Convert and inspect ISO 20022 payment messages.",
		Long: `iso20022 converts ISO 20022 messages (pain.001, pain.002,
camt.003/004/005/006, camt.053) between XML and JSON, and flattens camt.053
statements into bond CSV records.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			Cfg = cfg
			Log = cfg.Logger()
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}
)

// Init registers the persistent flags on the root command.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file (default stdin)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (default stdout)")
}
