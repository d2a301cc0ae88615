// Package registry dispatches between message types and their mapper
// packages. Dispatch is a compile-time exhaustive switch, so adding a message
// type without wiring it here fails loudly instead of at first use.
package registry

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/xmlpath.v2"

	"fjacquet/iso20022/internal/camt003"
	"fjacquet/iso20022/internal/camt004"
	"fjacquet/iso20022/internal/camt005"
	"fjacquet/iso20022/internal/camt006"
	"fjacquet/iso20022/internal/camt053"
	"fjacquet/iso20022/internal/isodoc"
	"fjacquet/iso20022/internal/models"
	"fjacquet/iso20022/internal/pain001"
	"fjacquet/iso20022/internal/pain002"
	"fjacquet/iso20022/internal/parsererror"
)

var xmlnsPath = xmlpath.MustCompile("/Document/@xmlns")

// Detect sniffs the namespace of a raw XML document and returns the message
// type it belongs to. For pain.001 the rail cannot be told apart from the
// namespace alone; Parse refines it from the payment-type codes.
func Detect(data []byte) (models.MessageType, error) {
	root, err := xmlpath.Parse(bytes.NewReader(data))
	if err != nil {
		return "", &parsererror.InvalidXMLError{Expected: "Document", Err: err}
	}
	ns, ok := xmlnsPath.String(root)
	if !ok || ns == "" {
		return "", parsererror.NewInvalidStructure("unknown", "Document", "missing xmlns declaration")
	}
	switch {
	case strings.HasPrefix(ns, isodoc.PrefixCamt003):
		return models.MessageTypeCamt003, nil
	case strings.HasPrefix(ns, isodoc.PrefixCamt004):
		return models.MessageTypeCamt004, nil
	case strings.HasPrefix(ns, isodoc.PrefixCamt005):
		return models.MessageTypeCamt005, nil
	case strings.HasPrefix(ns, isodoc.PrefixCamt006):
		return models.MessageTypeCamt006, nil
	case strings.HasPrefix(ns, isodoc.PrefixCamt053):
		return models.MessageTypeCamt053, nil
	case strings.HasPrefix(ns, isodoc.PrefixPain001):
		return models.MessageTypePain001SWIFT, nil
	case strings.HasPrefix(ns, isodoc.PrefixPain002):
		return models.MessageTypePain002, nil
	}
	return "", &parsererror.InvalidXMLNamespaceError{
		ExpectedPrefix: "urn:iso:std:iso:20022:tech:xsd:",
		Actual:         ns,
	}
}

// Parse detects the message type and runs the matching XML mapper. The
// returned message reports its exact type, including the pain.001 rail.
func Parse(data []byte) (models.Message, error) {
	messageType, err := Detect(data)
	if err != nil {
		return nil, err
	}
	return FromXML(messageType, data)
}

// FromXML parses raw XML with the mapper for the given message type.
func FromXML(messageType models.MessageType, data []byte) (models.Message, error) {
	switch messageType {
	case models.MessageTypeCamt003:
		return camt003.FromXML(data)
	case models.MessageTypeCamt004:
		return camt004.FromXML(data)
	case models.MessageTypeCamt005:
		return camt005.FromXML(data)
	case models.MessageTypeCamt006:
		return camt006.FromXML(data)
	case models.MessageTypeCamt053:
		return camt053.FromXML(data)
	case models.MessageTypePain001SWIFT, models.MessageTypePain001SEPA,
		models.MessageTypePain001ACH, models.MessageTypePain001RTP:
		return pain001.FromXML(data)
	case models.MessageTypePain002:
		return pain002.FromXML(data)
	}
	return nil, fmt.Errorf("unsupported message type %q", messageType)
}

// FromJSON parses the JSON rendition with the mapper for the given message
// type.
func FromJSON(messageType models.MessageType, data []byte) (models.Message, error) {
	switch messageType {
	case models.MessageTypeCamt003:
		return camt003.FromJSON(data)
	case models.MessageTypeCamt004:
		return camt004.FromJSON(data)
	case models.MessageTypeCamt005:
		return camt005.FromJSON(data)
	case models.MessageTypeCamt006:
		return camt006.FromJSON(data)
	case models.MessageTypeCamt053:
		return camt053.FromJSON(data)
	case models.MessageTypePain001SWIFT, models.MessageTypePain001SEPA,
		models.MessageTypePain001ACH, models.MessageTypePain001RTP:
		return pain001.FromJSON(data)
	case models.MessageTypePain002:
		return pain002.FromJSON(data)
	}
	return nil, fmt.Errorf("unsupported message type %q", messageType)
}

// Serialize renders any supported message as XML, dispatching on the concrete
// type.
func Serialize(msg models.Message) ([]byte, error) {
	switch m := msg.(type) {
	case *models.AccountQueryMessage:
		return camt003.Serialize(m)
	case *models.AccountReportMessage:
		return camt004.Serialize(m)
	case *models.TransactionQueryMessage:
		return camt005.Serialize(m)
	case *models.TransactionReportMessage:
		return camt006.Serialize(m)
	case *models.StatementMessage:
		return camt053.Serialize(m)
	case *models.CreditTransferMessage:
		return pain001.Serialize(m)
	case *models.StatusReportMessage:
		return pain002.Serialize(m)
	}
	return nil, fmt.Errorf("unsupported message %T", msg)
}

// ToJSON renders any supported message as the JSON tree shape.
func ToJSON(msg models.Message) ([]byte, error) {
	switch m := msg.(type) {
	case *models.AccountQueryMessage:
		return camt003.ToJSON(m)
	case *models.AccountReportMessage:
		return camt004.ToJSON(m)
	case *models.TransactionQueryMessage:
		return camt005.ToJSON(m)
	case *models.TransactionReportMessage:
		return camt006.ToJSON(m)
	case *models.StatementMessage:
		return camt053.ToJSON(m)
	case *models.CreditTransferMessage:
		return pain001.ToJSON(m)
	case *models.StatusReportMessage:
		return pain002.ToJSON(m)
	}
	return nil, fmt.Errorf("unsupported message %T", msg)
}
