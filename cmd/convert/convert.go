// Package convert contains the XML/JSON conversion command.
package convert

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"fjacquet/iso20022/cmd/root"
	"fjacquet/iso20022/internal/logging"
	"fjacquet/iso20022/internal/models"
	"fjacquet/iso20022/internal/registry"
)

var messageTypeFlag string

// Cmd is the convert command. XML input is auto-detected from its namespace;
// JSON input carries no namespace at the root path registry sniffs, so it
// needs the --type flag.
var Cmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert an ISO 20022 message between XML and JSON",
	Long: `Convert reads an ISO 20022 message and writes the other rendition:
XML in, JSON out; JSON in, XML out. The message type of XML input is detected
from the document namespace.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(root.SharedFlags.Input)
		if err != nil {
			return err
		}

		output, err := convert(data)
		if err != nil {
			return err
		}
		return writeOutput(root.SharedFlags.Output, output)
	},
}

// Init registers the convert command flags.
func Init() {
	Cmd.Flags().StringVarP(&messageTypeFlag, "type", "t", "",
		"Message type for JSON input (camt.003, camt.004, camt.005, camt.006, camt.053, pain.001.swift, pain.001.sepa, pain.001.ach, pain.001.rtp, pain.002)")
}

func convert(data []byte) ([]byte, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty input")
	}

	if trimmed[0] == '{' {
		if messageTypeFlag == "" {
			return nil, fmt.Errorf("JSON input requires --type")
		}
		msg, err := registry.FromJSON(models.MessageType(messageTypeFlag), trimmed)
		if err != nil {
			return nil, err
		}
		root.Log.Info("parsed message from JSON",
			logging.Field{Key: "type", Value: string(msg.Type())})
		return registry.Serialize(msg)
	}

	msg, err := registry.Parse(trimmed)
	if err != nil {
		return nil, err
	}
	root.Log.Info("parsed message from XML",
		logging.Field{Key: "type", Value: string(msg.Type())})
	return registry.ToJSON(msg)
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(append(data, '\n'))
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
