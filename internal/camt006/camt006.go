// Package camt006 maps return-transaction messages between the raw document
// layer and the domain model. The payment status code travels under one of
// several mutually exclusive tags; the domain keeps a compound "type:code"
// string so export reproduces the identical nesting.
package camt006

import (
	"fjacquet/iso20022/internal/dateutils"
	"fjacquet/iso20022/internal/fieldutils"
	"fjacquet/iso20022/internal/isodoc"
	"fjacquet/iso20022/internal/models"
	"fjacquet/iso20022/internal/parsererror"
)

const messageType = "camt.006"

// Status type prefixes, matching the source tag names.
const (
	statusPending    = "Pdg"
	statusFinal      = "Fnl"
	statusRTGS       = "RTGS"
	statusSettlement = "Sttlm"
	statusPartial    = "Prtl"
)

// FromXML parses a camt.006 XML document.
func FromXML(data []byte) (*models.TransactionReportMessage, error) {
	var doc isodoc.Camt006Document
	if err := isodoc.DecodeXML(data, &doc); err != nil {
		return nil, err
	}
	if err := isodoc.VerifyNamespace(doc.Xmlns, isodoc.PrefixCamt006); err != nil {
		return nil, err
	}
	return FromDocument(&doc)
}

// FromJSON parses the JSON rendition of a camt.006 document.
func FromJSON(data []byte) (*models.TransactionReportMessage, error) {
	var doc isodoc.Camt006Document
	if err := isodoc.DecodeJSON(data, &doc); err != nil {
		return nil, err
	}
	return FromDocument(&doc)
}

// FromDocument walks the raw document into the domain model.
func FromDocument(doc *isodoc.Camt006Document) (*models.TransactionReportMessage, error) {
	hdr := doc.RtrTx.MsgHdr
	if hdr.MsgID == "" {
		return nil, parsererror.NewInvalidStructure(messageType, "RtrTx.MsgHdr.MsgId", "missing message id")
	}
	msg := &models.TransactionReportMessage{MessageID: hdr.MsgID}
	if hdr.CreDtTm != "" {
		created, err := dateutils.ParseISODateTime(hdr.CreDtTm)
		if err != nil {
			return nil, &parsererror.ParseError{MessageType: messageType, Path: "RtrTx.MsgHdr.CreDtTm", Value: hdr.CreDtTm, Err: err}
		}
		msg.CreationDate = created
	}

	for i := range doc.RtrTx.RptOrErr.TxRpt {
		report, err := parseReport(&doc.RtrTx.RptOrErr.TxRpt[i])
		if err != nil {
			return nil, err
		}
		msg.Reports = append(msg.Reports, *report)
	}
	return msg, nil
}

func parseReport(raw *isodoc.TxRpt) (*models.TransactionReportOrError, error) {
	paymentID := raw.PmtID.TxID
	if paymentID == "" {
		paymentID = raw.PmtID.PrtryID
	}
	if paymentID == "" {
		return nil, parsererror.NewInvalidStructure(messageType, "RtrTx.RptOrErr.TxRpt.PmtId", "missing payment identification")
	}

	report := &models.TransactionReportOrError{PaymentID: paymentID}
	switch {
	case raw.TxOrErr.Tx != nil:
		details, err := parseDetails(raw.TxOrErr.Tx)
		if err != nil {
			return nil, err
		}
		report.Report = details
	case raw.TxOrErr.BizErr != nil:
		code := raw.TxOrErr.BizErr.Err.Cd
		if code == "" {
			code = raw.TxOrErr.BizErr.Err.Prtry
		}
		report.Error = &models.BusinessError{Code: code, Description: raw.TxOrErr.BizErr.Desc}
	default:
		return nil, parsererror.NewInvalidStructure(messageType, "RtrTx.RptOrErr.TxRpt.TxOrErr", "neither transaction details nor business error present")
	}
	return report, nil
}

func parseDetails(raw *isodoc.Tx006) (*models.PaymentDetails, error) {
	details := &models.PaymentDetails{}
	if raw.Pmt == nil {
		return details, nil
	}
	pmt := raw.Pmt
	details.EndToEndID = pmt.EndToEndID

	if pmt.Sts != nil {
		status, err := parseStatus(pmt.Sts)
		if err != nil {
			return nil, err
		}
		details.Status = status
	}
	if pmt.InstdAmt != nil && pmt.InstdAmt.Ccy != "" {
		amount, err := models.NewMoneyFromDecimalString(pmt.InstdAmt.Value, pmt.InstdAmt.Ccy)
		if err != nil {
			return nil, parsererror.NewInvalidStructure(messageType, "RtrTx.RptOrErr.TxRpt.TxOrErr.Tx.Pmt.InstdAmt", err.Error())
		}
		details.InstructedAmount = &amount
	}
	if pmt.IntrBkSttlmAmt != nil && pmt.IntrBkSttlmAmt.Ccy != "" {
		amount, err := models.NewMoneyFromDecimalString(pmt.IntrBkSttlmAmt.Value, pmt.IntrBkSttlmAmt.Ccy)
		if err != nil {
			return nil, parsererror.NewInvalidStructure(messageType, "RtrTx.RptOrErr.TxRpt.TxOrErr.Tx.Pmt.IntrBkSttlmAmt", err.Error())
		}
		details.SettlementAmount = &amount
	}
	if pmt.Pties != nil {
		details.Debtor = fieldutils.ParseParty(pmt.Pties.Dbtr)
		details.Creditor = fieldutils.ParseParty(pmt.Pties.Cdtr)
	}
	return details, nil
}

// parseStatus resolves the mutually exclusive status-code choice into the
// compound "type:code" form.
func parseStatus(raw *isodoc.Sts006) (*models.PaymentStatus, error) {
	status := &models.PaymentStatus{}
	if raw.Cd != nil {
		switch {
		case raw.Cd.Pdg != "":
			status.Code = statusPending + ":" + raw.Cd.Pdg
		case raw.Cd.Fnl != "":
			status.Code = statusFinal + ":" + raw.Cd.Fnl
		case raw.Cd.RTGS != "":
			status.Code = statusRTGS + ":" + raw.Cd.RTGS
		case raw.Cd.Sttlm != "":
			status.Code = statusSettlement + ":" + raw.Cd.Sttlm
		case raw.Cd.Prtl != "":
			status.Code = statusPartial + ":" + raw.Cd.Prtl
		}
	}
	if raw.DtTm != "" {
		dt, err := dateutils.ParseISODateTime(raw.DtTm)
		if err != nil {
			return nil, &parsererror.ParseError{MessageType: messageType, Path: "RtrTx.RptOrErr.TxRpt.TxOrErr.Tx.Pmt.Sts.DtTm", Value: raw.DtTm, Err: err}
		}
		status.DateTime = &dt
	}
	if status.Code == "" && status.DateTime == nil {
		return nil, nil
	}
	return status, nil
}

// Serialize renders the message as a camt.006.001.07 XML document.
func Serialize(msg *models.TransactionReportMessage) ([]byte, error) {
	return isodoc.BuildXML(ToDocument(msg))
}

// ToJSON renders the message as the JSON shape of the XML tree.
func ToJSON(msg *models.TransactionReportMessage) ([]byte, error) {
	return isodoc.BuildJSON(ToDocument(msg))
}

// ToDocument builds the raw document from the domain model.
func ToDocument(msg *models.TransactionReportMessage) *isodoc.Camt006Document {
	doc := &isodoc.Camt006Document{
		Xmlns:    isodoc.NamespaceCamt006,
		XmlnsXsi: isodoc.XSINamespace,
		RtrTx: isodoc.RtrTx{
			MsgHdr: isodoc.MessageHeader{MsgID: msg.MessageID},
		},
	}
	if !msg.CreationDate.IsZero() {
		doc.RtrTx.MsgHdr.CreDtTm = dateutils.FormatDateTime(msg.CreationDate)
	}
	for i := range msg.Reports {
		doc.RtrTx.RptOrErr.TxRpt = append(doc.RtrTx.RptOrErr.TxRpt, exportReport(&msg.Reports[i]))
	}
	return doc
}

func exportReport(report *models.TransactionReportOrError) isodoc.TxRpt {
	raw := isodoc.TxRpt{PmtID: isodoc.PmtID{TxID: report.PaymentID}}
	switch {
	case report.Report != nil:
		raw.TxOrErr.Tx = exportDetails(report.Report)
	case report.Error != nil:
		raw.TxOrErr.BizErr = &isodoc.BusinessError{
			Err:  isodoc.ErrorCode{Cd: report.Error.Code},
			Desc: report.Error.Description,
		}
	}
	return raw
}

func exportDetails(details *models.PaymentDetails) *isodoc.Tx006 {
	pmt := &isodoc.Pmt006{EndToEndID: details.EndToEndID}
	if details.Status != nil {
		pmt.Sts = exportStatus(details.Status)
	}
	if details.InstructedAmount != nil {
		pmt.InstdAmt = &isodoc.Amount{
			Value: details.InstructedAmount.DecimalString(),
			Ccy:   details.InstructedAmount.Currency,
		}
	}
	if details.SettlementAmount != nil {
		pmt.IntrBkSttlmAmt = &isodoc.Amount{
			Value: details.SettlementAmount.DecimalString(),
			Ccy:   details.SettlementAmount.Currency,
		}
	}
	if details.Debtor != nil || details.Creditor != nil {
		pmt.Pties = &isodoc.PmtPties{
			Dbtr: fieldutils.ExportParty(details.Debtor),
			Cdtr: fieldutils.ExportParty(details.Creditor),
		}
	}
	return &isodoc.Tx006{Pmt: pmt}
}

func exportStatus(status *models.PaymentStatus) *isodoc.Sts006 {
	raw := &isodoc.Sts006{}
	if status.DateTime != nil {
		raw.DtTm = dateutils.FormatDateTime(*status.DateTime)
	}
	statusType, code := status.Split()
	if code == "" {
		return raw
	}
	cd := &isodoc.StsCd006{}
	switch statusType {
	case statusPending:
		cd.Pdg = code
	case statusFinal:
		cd.Fnl = code
	case statusRTGS:
		cd.RTGS = code
	case statusSettlement:
		cd.Sttlm = code
	case statusPartial:
		cd.Prtl = code
	default:
		// No recorded source tag; pending is the least committal.
		cd.Pdg = code
	}
	raw.Cd = cd
	return raw
}
