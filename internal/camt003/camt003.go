// Package camt003 maps get-account queries between the raw document layer
// and the domain model.
package camt003

import (
	"fjacquet/iso20022/internal/dateutils"
	"fjacquet/iso20022/internal/fieldutils"
	"fjacquet/iso20022/internal/isodoc"
	"fjacquet/iso20022/internal/models"
	"fjacquet/iso20022/internal/parsererror"
)

const messageType = "camt.003"

// FromXML parses a camt.003 XML document.
func FromXML(data []byte) (*models.AccountQueryMessage, error) {
	var doc isodoc.Camt003Document
	if err := isodoc.DecodeXML(data, &doc); err != nil {
		return nil, err
	}
	if err := isodoc.VerifyNamespace(doc.Xmlns, isodoc.PrefixCamt003); err != nil {
		return nil, err
	}
	return FromDocument(&doc)
}

// FromJSON parses the JSON rendition of a camt.003 document.
func FromJSON(data []byte) (*models.AccountQueryMessage, error) {
	var doc isodoc.Camt003Document
	if err := isodoc.DecodeJSON(data, &doc); err != nil {
		return nil, err
	}
	return FromDocument(&doc)
}

// FromDocument walks the raw document into the domain model.
func FromDocument(doc *isodoc.Camt003Document) (*models.AccountQueryMessage, error) {
	hdr := doc.GetAcct.MsgHdr
	if hdr.MsgID == "" {
		return nil, parsererror.NewInvalidStructure(messageType, "GetAcct.MsgHdr.MsgId", "missing message id")
	}
	msg := &models.AccountQueryMessage{MessageID: hdr.MsgID}
	if hdr.CreDtTm != "" {
		created, err := dateutils.ParseISODateTime(hdr.CreDtTm)
		if err != nil {
			return nil, &parsererror.ParseError{MessageType: messageType, Path: "GetAcct.MsgHdr.CreDtTm", Value: hdr.CreDtTm, Err: err}
		}
		msg.CreationDate = created
	}

	if def := doc.GetAcct.AcctQryDef; def != nil && def.AcctCrit != nil && def.AcctCrit.NewCrit != nil {
		criteria, err := fieldutils.ParseCriteriaGroups(def.AcctCrit.NewCrit.SchCrit, messageType, "GetAcct.AcctQryDef.AcctCrit.NewCrit.SchCrit")
		if err != nil {
			return nil, err
		}
		msg.Criteria = criteria
	}
	return msg, nil
}

// Serialize renders the query as a camt.003.001.06 XML document.
func Serialize(msg *models.AccountQueryMessage) ([]byte, error) {
	return isodoc.BuildXML(ToDocument(msg))
}

// ToJSON renders the query as the JSON shape of the XML tree.
func ToJSON(msg *models.AccountQueryMessage) ([]byte, error) {
	return isodoc.BuildJSON(ToDocument(msg))
}

// ToDocument builds the raw document from the domain model.
func ToDocument(msg *models.AccountQueryMessage) *isodoc.Camt003Document {
	doc := &isodoc.Camt003Document{
		Xmlns:    isodoc.NamespaceCamt003,
		XmlnsXsi: isodoc.XSINamespace,
		GetAcct: isodoc.GetAcct{
			MsgHdr: isodoc.MessageHeader{MsgID: msg.MessageID},
		},
	}
	if !msg.CreationDate.IsZero() {
		doc.GetAcct.MsgHdr.CreDtTm = dateutils.FormatDateTime(msg.CreationDate)
	}
	if groups := fieldutils.ExportCriteriaGroups(msg.Criteria); groups != nil {
		doc.GetAcct.AcctQryDef = &isodoc.AcctQryDef{
			AcctCrit: &isodoc.Crit{NewCrit: &isodoc.NewCrit{SchCrit: groups}},
		}
	}
	return doc
}
