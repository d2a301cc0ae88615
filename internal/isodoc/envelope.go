package isodoc

import (
	"encoding/json"
	"encoding/xml"
	"strings"

	"fjacquet/iso20022/internal/parsererror"
)

// Namespace URN prefixes per message type. Matching is prefix-based because
// minor version suffixes vary across banks.
const (
	PrefixCamt003 = "urn:iso:std:iso:20022:tech:xsd:camt.003.001."
	PrefixCamt004 = "urn:iso:std:iso:20022:tech:xsd:camt.004.001."
	PrefixCamt005 = "urn:iso:std:iso:20022:tech:xsd:camt.005.001."
	PrefixCamt006 = "urn:iso:std:iso:20022:tech:xsd:camt.006.001."
	PrefixCamt053 = "urn:iso:std:iso:20022:tech:xsd:camt.053.001."
	PrefixPain001 = "urn:iso:std:iso:20022:tech:xsd:pain.001.001."
	PrefixPain002 = "urn:iso:std:iso:20022:tech:xsd:pain.002.001."
)

// Versions written on serialization.
const (
	NamespaceCamt003 = PrefixCamt003 + "06"
	NamespaceCamt004 = PrefixCamt004 + "07"
	NamespaceCamt005 = PrefixCamt005 + "07"
	NamespaceCamt006 = PrefixCamt006 + "07"
	NamespaceCamt053 = PrefixCamt053 + "02"
	NamespacePain001 = PrefixPain001 + "03"
	NamespacePain002 = PrefixPain002 + "03"
)

// XSINamespace is injected at the document root on serialization.
const XSINamespace = "http://www.w3.org/2001/XMLSchema-instance"

// VerifyNamespace checks the declared namespace against the expected URN
// prefix for the mapper being invoked.
func VerifyNamespace(actual, expectedPrefix string) error {
	if !strings.HasPrefix(actual, expectedPrefix) {
		return &parsererror.InvalidXMLNamespaceError{
			ExpectedPrefix: expectedPrefix,
			Actual:         actual,
		}
	}
	return nil
}

// DecodeXML unmarshals raw XML into a Document struct, translating decoder
// failures (not XML, or wrong root wrapper) into InvalidXMLError.
func DecodeXML(data []byte, doc interface{}) error {
	if err := xml.Unmarshal(data, doc); err != nil {
		return &parsererror.InvalidXMLError{Expected: "Document", Err: err}
	}
	return nil
}

// BuildXML serializes a Document struct to a pretty-printed XML string with
// the standard XML header. Namespace and xsi attributes are carried by the
// struct's root fields.
func BuildXML(doc interface{}) ([]byte, error) {
	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(xml.Header)+len(body)+1)
	out = append(out, xml.Header...)
	out = append(out, body...)
	out = append(out, '\n')
	return out, nil
}

// jsonEnvelope mirrors the XML-tree shape at the JSON root: the document sits
// under a "Document" key, as the parsed XML tree does.
type jsonEnvelope struct {
	Document json.RawMessage `json:"Document"`
}

// DecodeJSON unmarshals the JSON rendition of a document, which has exactly
// the same tree shape as the parsed XML.
func DecodeJSON(data []byte, doc interface{}) error {
	var env jsonEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return &parsererror.InvalidXMLError{Expected: "Document", Err: err}
	}
	if len(env.Document) == 0 {
		return &parsererror.InvalidXMLError{Expected: "Document"}
	}
	if err := json.Unmarshal(env.Document, doc); err != nil {
		return &parsererror.InvalidXMLError{Expected: "Document", Err: err}
	}
	return nil
}

// BuildJSON serializes a Document struct to the JSON tree shape accepted by
// DecodeJSON.
func BuildJSON(doc interface{}) ([]byte, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(jsonEnvelope{Document: raw}, "", "  ")
}
