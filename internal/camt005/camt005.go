// Package camt005 maps get-transaction queries between the raw document
// layer and the domain model. The criteria handling is shared with camt.003;
// only the outer wrapper differs.
package camt005

import (
	"fjacquet/iso20022/internal/dateutils"
	"fjacquet/iso20022/internal/fieldutils"
	"fjacquet/iso20022/internal/isodoc"
	"fjacquet/iso20022/internal/models"
	"fjacquet/iso20022/internal/parsererror"
)

const messageType = "camt.005"

// FromXML parses a camt.005 XML document.
func FromXML(data []byte) (*models.TransactionQueryMessage, error) {
	var doc isodoc.Camt005Document
	if err := isodoc.DecodeXML(data, &doc); err != nil {
		return nil, err
	}
	if err := isodoc.VerifyNamespace(doc.Xmlns, isodoc.PrefixCamt005); err != nil {
		return nil, err
	}
	return FromDocument(&doc)
}

// FromJSON parses the JSON rendition of a camt.005 document.
func FromJSON(data []byte) (*models.TransactionQueryMessage, error) {
	var doc isodoc.Camt005Document
	if err := isodoc.DecodeJSON(data, &doc); err != nil {
		return nil, err
	}
	return FromDocument(&doc)
}

// FromDocument walks the raw document into the domain model.
func FromDocument(doc *isodoc.Camt005Document) (*models.TransactionQueryMessage, error) {
	hdr := doc.GetTx.MsgHdr
	if hdr.MsgID == "" {
		return nil, parsererror.NewInvalidStructure(messageType, "GetTx.MsgHdr.MsgId", "missing message id")
	}
	msg := &models.TransactionQueryMessage{MessageID: hdr.MsgID}
	if hdr.CreDtTm != "" {
		created, err := dateutils.ParseISODateTime(hdr.CreDtTm)
		if err != nil {
			return nil, &parsererror.ParseError{MessageType: messageType, Path: "GetTx.MsgHdr.CreDtTm", Value: hdr.CreDtTm, Err: err}
		}
		msg.CreationDate = created
	}

	if def := doc.GetTx.TxQryDef; def != nil && def.TxCrit != nil && def.TxCrit.NewCrit != nil {
		criteria, err := fieldutils.ParseCriteriaGroups(def.TxCrit.NewCrit.SchCrit, messageType, "GetTx.TxQryDef.TxCrit.NewCrit.SchCrit")
		if err != nil {
			return nil, err
		}
		msg.Criteria = criteria
	}
	return msg, nil
}

// Serialize renders the query as a camt.005.001.07 XML document.
func Serialize(msg *models.TransactionQueryMessage) ([]byte, error) {
	return isodoc.BuildXML(ToDocument(msg))
}

// ToJSON renders the query as the JSON shape of the XML tree.
func ToJSON(msg *models.TransactionQueryMessage) ([]byte, error) {
	return isodoc.BuildJSON(ToDocument(msg))
}

// ToDocument builds the raw document from the domain model.
func ToDocument(msg *models.TransactionQueryMessage) *isodoc.Camt005Document {
	doc := &isodoc.Camt005Document{
		Xmlns:    isodoc.NamespaceCamt005,
		XmlnsXsi: isodoc.XSINamespace,
		GetTx: isodoc.GetTx{
			MsgHdr: isodoc.MessageHeader{MsgID: msg.MessageID},
		},
	}
	if !msg.CreationDate.IsZero() {
		doc.GetTx.MsgHdr.CreDtTm = dateutils.FormatDateTime(msg.CreationDate)
	}
	if groups := fieldutils.ExportCriteriaGroups(msg.Criteria); groups != nil {
		doc.GetTx.TxQryDef = &isodoc.TxQryDef{
			TxCrit: &isodoc.Crit{NewCrit: &isodoc.NewCrit{SchCrit: groups}},
		}
	}
	return doc
}
