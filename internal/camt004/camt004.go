// Package camt004 maps return-account messages between the raw document
// layer and the domain model. Each reported account carries a report-or-error
// choice; a business error is normal content, not a parse failure.
package camt004

import (
	"fjacquet/iso20022/internal/dateutils"
	"fjacquet/iso20022/internal/fieldutils"
	"fjacquet/iso20022/internal/isodoc"
	"fjacquet/iso20022/internal/models"
	"fjacquet/iso20022/internal/parsererror"
)

const messageType = "camt.004"

// FromXML parses a camt.004 XML document.
func FromXML(data []byte) (*models.AccountReportMessage, error) {
	var doc isodoc.Camt004Document
	if err := isodoc.DecodeXML(data, &doc); err != nil {
		return nil, err
	}
	if err := isodoc.VerifyNamespace(doc.Xmlns, isodoc.PrefixCamt004); err != nil {
		return nil, err
	}
	return FromDocument(&doc)
}

// FromJSON parses the JSON rendition of a camt.004 document.
func FromJSON(data []byte) (*models.AccountReportMessage, error) {
	var doc isodoc.Camt004Document
	if err := isodoc.DecodeJSON(data, &doc); err != nil {
		return nil, err
	}
	return FromDocument(&doc)
}

// FromDocument walks the raw document into the domain model.
func FromDocument(doc *isodoc.Camt004Document) (*models.AccountReportMessage, error) {
	hdr := doc.RtrAcct.MsgHdr
	if hdr.MsgID == "" {
		return nil, parsererror.NewInvalidStructure(messageType, "RtrAcct.MsgHdr.MsgId", "missing message id")
	}
	msg := &models.AccountReportMessage{MessageID: hdr.MsgID}
	if hdr.CreDtTm != "" {
		created, err := dateutils.ParseISODateTime(hdr.CreDtTm)
		if err != nil {
			return nil, &parsererror.ParseError{MessageType: messageType, Path: "RtrAcct.MsgHdr.CreDtTm", Value: hdr.CreDtTm, Err: err}
		}
		msg.CreationDate = created
	}

	for i := range doc.RtrAcct.RptOrErr.AcctRpt {
		report, err := parseReport(&doc.RtrAcct.RptOrErr.AcctRpt[i])
		if err != nil {
			return nil, err
		}
		msg.Reports = append(msg.Reports, *report)
	}
	return msg, nil
}

func parseReport(raw *isodoc.AcctRpt) (*models.AccountReportOrError, error) {
	accountID := raw.AcctID.IBAN
	if accountID == "" && raw.AcctID.Othr != nil {
		accountID = raw.AcctID.Othr.ID
	}
	if accountID == "" {
		return nil, parsererror.NewInvalidStructure(messageType, "RtrAcct.RptOrErr.AcctRpt.AcctId", "missing account identification")
	}

	report := &models.AccountReportOrError{AccountID: accountID}
	switch {
	case raw.AcctOrErr.Acct != nil:
		details, err := parseDetails(raw.AcctOrErr.Acct)
		if err != nil {
			return nil, err
		}
		report.Report = details
	case raw.AcctOrErr.BizErr != nil:
		report.Error = parseBusinessError(raw.AcctOrErr.BizErr)
	default:
		return nil, parsererror.NewInvalidStructure(messageType, "RtrAcct.RptOrErr.AcctRpt.AcctOrErr", "neither account details nor business error present")
	}
	return report, nil
}

func parseDetails(raw *isodoc.AcctDetails) (*models.AccountDetails, error) {
	details := &models.AccountDetails{
		Currency: raw.Ccy,
		Name:     raw.Nm,
		Servicer: fieldutils.ParseAgent(raw.Svcr),
	}
	if raw.Tp != nil {
		details.Type = raw.Tp.Cd
		if details.Type == "" {
			details.Type = raw.Tp.Prtry
		}
	}
	for i := range raw.MulBal {
		balance, err := parseBalance(&raw.MulBal[i])
		if err != nil {
			return nil, err
		}
		details.Balances = append(details.Balances, *balance)
	}
	return details, nil
}

func parseBalance(raw *isodoc.Bal) (*models.Balance, error) {
	code := raw.Tp.CdOrPrtry.Cd
	if code == "" {
		code = raw.Tp.CdOrPrtry.Prtry
	}
	if raw.Amt.Ccy == "" {
		return nil, parsererror.NewInvalidStructure(messageType, "RtrAcct.RptOrErr.AcctRpt.AcctOrErr.Acct.MulBal.Amt", "missing currency on balance")
	}
	amount, err := models.NewMoneyFromDecimalString(raw.Amt.Value, raw.Amt.Ccy)
	if err != nil {
		return nil, parsererror.NewInvalidStructure(messageType, "RtrAcct.RptOrErr.AcctRpt.AcctOrErr.Acct.MulBal.Amt", err.Error())
	}
	balance := &models.Balance{
		Type:        models.BalanceType(code),
		Amount:      amount,
		CreditDebit: models.CreditDebit(raw.CdtDbtInd),
	}
	if raw.Dt != nil && (raw.Dt.Dt != "" || raw.Dt.DtTm != "") {
		date, err := dateutils.ParseDateOrDateTime(raw.Dt.Dt, raw.Dt.DtTm)
		if err != nil {
			return nil, &parsererror.ParseError{MessageType: messageType, Path: "RtrAcct.RptOrErr.AcctRpt.AcctOrErr.Acct.MulBal.Dt", Value: raw.Dt.Dt, Err: err}
		}
		balance.Date = date
	}
	return balance, nil
}

func parseBusinessError(raw *isodoc.BusinessError) *models.BusinessError {
	code := raw.Err.Cd
	if code == "" {
		code = raw.Err.Prtry
	}
	return &models.BusinessError{Code: code, Description: raw.Desc}
}

// Serialize renders the message as a camt.004.001.07 XML document.
func Serialize(msg *models.AccountReportMessage) ([]byte, error) {
	return isodoc.BuildXML(ToDocument(msg))
}

// ToJSON renders the message as the JSON shape of the XML tree.
func ToJSON(msg *models.AccountReportMessage) ([]byte, error) {
	return isodoc.BuildJSON(ToDocument(msg))
}

// ToDocument builds the raw document from the domain model.
func ToDocument(msg *models.AccountReportMessage) *isodoc.Camt004Document {
	doc := &isodoc.Camt004Document{
		Xmlns:    isodoc.NamespaceCamt004,
		XmlnsXsi: isodoc.XSINamespace,
		RtrAcct: isodoc.RtrAcct{
			MsgHdr: isodoc.MessageHeader{MsgID: msg.MessageID},
		},
	}
	if !msg.CreationDate.IsZero() {
		doc.RtrAcct.MsgHdr.CreDtTm = dateutils.FormatDateTime(msg.CreationDate)
	}
	for i := range msg.Reports {
		doc.RtrAcct.RptOrErr.AcctRpt = append(doc.RtrAcct.RptOrErr.AcctRpt, exportReport(&msg.Reports[i]))
	}
	return doc
}

func exportReport(report *models.AccountReportOrError) isodoc.AcctRpt {
	raw := isodoc.AcctRpt{AcctID: isodoc.AccountID{Othr: &isodoc.OtherID{ID: report.AccountID}}}
	if fieldutils.LooksLikeIBAN(report.AccountID) {
		raw.AcctID = isodoc.AccountID{IBAN: report.AccountID}
	}
	switch {
	case report.Report != nil:
		raw.AcctOrErr.Acct = exportDetails(report.Report)
	case report.Error != nil:
		raw.AcctOrErr.BizErr = &isodoc.BusinessError{
			Err:  isodoc.ErrorCode{Cd: report.Error.Code},
			Desc: report.Error.Description,
		}
	}
	return raw
}

func exportDetails(details *models.AccountDetails) *isodoc.AcctDetails {
	raw := &isodoc.AcctDetails{
		Ccy:  details.Currency,
		Nm:   details.Name,
		Svcr: fieldutils.ExportAgent(details.Servicer),
	}
	if details.Type != "" {
		raw.Tp = &isodoc.AccountType{Cd: details.Type}
	}
	for _, balance := range details.Balances {
		bal := isodoc.Bal{
			Tp:        isodoc.BalType{CdOrPrtry: isodoc.CodeOrProprietary{Cd: string(balance.Type)}},
			Amt:       isodoc.Amount{Value: balance.Amount.DecimalString(), Ccy: balance.Amount.Currency},
			CdtDbtInd: string(balance.CreditDebit),
		}
		// The source balance may carry no date; writing the zero time would
		// fabricate 0001-01-01 in bank-facing XML.
		if !balance.Date.IsZero() {
			bal.Dt = &isodoc.DateChoice{Dt: dateutils.FormatDate(balance.Date)}
		}
		raw.MulBal = append(raw.MulBal, bal)
	}
	return raw
}
