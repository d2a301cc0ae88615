// Package camt053 maps bank-to-customer end-of-day statements between the
// raw document layer and the domain model.
package camt053

import (
	"strconv"

	"fjacquet/iso20022/internal/dateutils"
	"fjacquet/iso20022/internal/fieldutils"
	"fjacquet/iso20022/internal/isodoc"
	"fjacquet/iso20022/internal/models"
	"fjacquet/iso20022/internal/parsererror"
)

const messageType = "camt.053"

// FromXML parses a camt.053 XML document. The declared namespace must start
// with the camt.053 URN prefix; minor version suffixes vary across banks and
// are accepted.
func FromXML(data []byte) (*models.StatementMessage, error) {
	var doc isodoc.Camt053Document
	if err := isodoc.DecodeXML(data, &doc); err != nil {
		return nil, err
	}
	if err := isodoc.VerifyNamespace(doc.Xmlns, isodoc.PrefixCamt053); err != nil {
		return nil, err
	}
	return FromDocument(&doc)
}

// FromJSON parses the JSON rendition of a camt.053 document. The JSON shape
// is the XML tree shape, so ToJSON output re-parses without special-casing.
func FromJSON(data []byte) (*models.StatementMessage, error) {
	var doc isodoc.Camt053Document
	if err := isodoc.DecodeJSON(data, &doc); err != nil {
		return nil, err
	}
	return FromDocument(&doc)
}

// FromDocument walks the raw document into the domain model.
func FromDocument(doc *isodoc.Camt053Document) (*models.StatementMessage, error) {
	hdr := doc.BkToCstmrStmt.GrpHdr
	if hdr.MsgID == "" {
		return nil, parsererror.NewInvalidStructure(messageType, "BkToCstmrStmt.GrpHdr.MsgId", "missing message id")
	}
	created, err := dateutils.ParseISODateTime(hdr.CreDtTm)
	if err != nil {
		return nil, &parsererror.ParseError{MessageType: messageType, Path: "BkToCstmrStmt.GrpHdr.CreDtTm", Value: hdr.CreDtTm, Err: err}
	}
	if len(doc.BkToCstmrStmt.Stmt) == 0 {
		return nil, parsererror.NewInvalidStructure(messageType, "BkToCstmrStmt.Stmt", "no statements present")
	}

	msg := &models.StatementMessage{
		MessageID:    hdr.MsgID,
		CreationDate: created,
		Statements:   make([]models.Statement, 0, len(doc.BkToCstmrStmt.Stmt)),
	}
	for i := range doc.BkToCstmrStmt.Stmt {
		stmt, err := parseStatement(&doc.BkToCstmrStmt.Stmt[i])
		if err != nil {
			return nil, err
		}
		msg.Statements = append(msg.Statements, *stmt)
	}
	return msg, nil
}

func parseStatement(raw *isodoc.Stmt) (*models.Statement, error) {
	if raw.ID == "" {
		return nil, parsererror.NewInvalidStructure(messageType, "Stmt.Id", "missing statement id")
	}
	created, err := dateutils.ParseISODateTime(raw.CreDtTm)
	if err != nil {
		return nil, &parsererror.ParseError{MessageType: messageType, Path: "Stmt.CreDtTm", Value: raw.CreDtTm, Err: err}
	}

	stmt := &models.Statement{
		ID:                 raw.ID,
		ElectronicSequence: raw.ElctrncSeqNb,
		LegalSequence:      raw.LglSeqNb,
		CreationDate:       created,
	}

	if raw.FrToDt != nil {
		if raw.FrToDt.FrDtTm != "" {
			from, err := dateutils.ParseISODateTime(raw.FrToDt.FrDtTm)
			if err != nil {
				return nil, &parsererror.ParseError{MessageType: messageType, Path: "Stmt.FrToDt.FrDtTm", Value: raw.FrToDt.FrDtTm, Err: err}
			}
			stmt.FromDate = &from
		}
		if raw.FrToDt.ToDtTm != "" {
			to, err := dateutils.ParseISODateTime(raw.FrToDt.ToDtTm)
			if err != nil {
				return nil, &parsererror.ParseError{MessageType: messageType, Path: "Stmt.FrToDt.ToDtTm", Value: raw.FrToDt.ToDtTm, Err: err}
			}
			stmt.ToDate = &to
		}
	}

	stmt.Account = fieldutils.ParseAccount(raw.Acct.ID, raw.Acct.Tp, raw.Acct.Ccy, raw.Acct.Nm)
	if stmt.Account.IsZero() {
		return nil, parsererror.NewInvalidStructure(messageType, "Stmt.Acct.Id", "missing account identification")
	}
	if raw.Acct.Ownr != nil {
		stmt.AccountOwner = raw.Acct.Ownr.Nm
	}
	stmt.Agent = fieldutils.ParseAgent(raw.Acct.Svcr)

	ccy := statementCurrency(raw)
	if raw.TxsSummry != nil {
		stmt.Totals, err = parseTotals(raw.TxsSummry.TtlNtries, ccy)
		if err != nil {
			return nil, err
		}
		stmt.CreditTotals, err = parseTotals(raw.TxsSummry.TtlCdtNtries, ccy)
		if err != nil {
			return nil, err
		}
		stmt.DebitTotals, err = parseTotals(raw.TxsSummry.TtlDbtNtries, ccy)
		if err != nil {
			return nil, err
		}
	}

	for i := range raw.Bal {
		balance, err := parseBalance(&raw.Bal[i])
		if err != nil {
			return nil, err
		}
		stmt.Balances = append(stmt.Balances, *balance)
	}
	for i := range raw.Ntry {
		entry, err := parseEntry(&raw.Ntry[i])
		if err != nil {
			return nil, err
		}
		stmt.Entries = append(stmt.Entries, *entry)
	}
	return stmt, nil
}

// statementCurrency resolves the currency context for the bank-reported
// summary figures, which carry no currency attribute of their own.
func statementCurrency(raw *isodoc.Stmt) string {
	if raw.Acct.Ccy != "" {
		return raw.Acct.Ccy
	}
	if len(raw.Bal) > 0 {
		return raw.Bal[0].Amt.Ccy
	}
	if len(raw.Ntry) > 0 {
		return raw.Ntry[0].Amt.Ccy
	}
	return ""
}

func parseTotals(raw *isodoc.TotalEntries, ccy string) (*models.EntryTotals, error) {
	if raw == nil {
		return nil, nil
	}
	totals := &models.EntryTotals{
		CreditDebit: models.CreditDebit(raw.CdtDbtInd),
	}
	if raw.NbOfNtries != "" {
		count, err := strconv.Atoi(raw.NbOfNtries)
		if err != nil {
			return nil, &parsererror.ParseError{MessageType: messageType, Path: "Stmt.TxsSummry.NbOfNtries", Value: raw.NbOfNtries, Err: err}
		}
		totals.Count = count
	}
	if raw.Sum != "" && ccy != "" {
		sum, err := models.NewMoneyFromDecimalString(raw.Sum, ccy)
		if err != nil {
			return nil, parsererror.NewInvalidStructure(messageType, "Stmt.TxsSummry.Sum", err.Error())
		}
		totals.Sum = &sum
	}
	if raw.TtlNetNtryAmt != "" && ccy != "" {
		net, err := models.NewMoneyFromDecimalString(raw.TtlNetNtryAmt, ccy)
		if err != nil {
			return nil, parsererror.NewInvalidStructure(messageType, "Stmt.TxsSummry.TtlNetNtryAmt", err.Error())
		}
		totals.NetAmount = &net
	}
	return totals, nil
}

func parseBalance(raw *isodoc.Bal) (*models.Balance, error) {
	code := raw.Tp.CdOrPrtry.Cd
	if code == "" {
		code = raw.Tp.CdOrPrtry.Prtry
	}
	if code == "" {
		return nil, parsererror.NewInvalidStructure(messageType, "Stmt.Bal.Tp", "missing balance type code")
	}
	if raw.Amt.Ccy == "" {
		return nil, parsererror.NewInvalidStructure(messageType, "Stmt.Bal.Amt", "missing currency on balance")
	}
	amount, err := models.NewMoneyFromDecimalString(raw.Amt.Value, raw.Amt.Ccy)
	if err != nil {
		return nil, parsererror.NewInvalidStructure(messageType, "Stmt.Bal.Amt", err.Error())
	}
	if raw.Dt == nil || (raw.Dt.Dt == "" && raw.Dt.DtTm == "") {
		return nil, parsererror.NewInvalidStructure(messageType, "Stmt.Bal.Dt", "missing balance date")
	}
	date, err := dateutils.ParseDateOrDateTime(raw.Dt.Dt, raw.Dt.DtTm)
	if err != nil {
		return nil, &parsererror.ParseError{MessageType: messageType, Path: "Stmt.Bal.Dt", Value: raw.Dt.Dt, Err: err}
	}
	indicator := models.CreditDebit(raw.CdtDbtInd)
	if !indicator.Valid() {
		return nil, parsererror.NewInvalidStructure(messageType, "Stmt.Bal.CdtDbtInd", "missing or unknown credit/debit indicator")
	}
	return &models.Balance{
		Date:        date,
		Type:        models.BalanceType(code),
		Amount:      amount,
		CreditDebit: indicator,
	}, nil
}

func parseEntry(raw *isodoc.Ntry) (*models.Entry, error) {
	if raw.Amt.Ccy == "" {
		return nil, parsererror.NewInvalidStructure(messageType, "Stmt.Ntry.Amt", "missing currency on entry amount")
	}
	amount, err := models.NewMoneyFromDecimalString(raw.Amt.Value, raw.Amt.Ccy)
	if err != nil {
		return nil, parsererror.NewInvalidStructure(messageType, "Stmt.Ntry.Amt", err.Error())
	}
	indicator := models.CreditDebit(raw.CdtDbtInd)
	if !indicator.Valid() {
		return nil, parsererror.NewInvalidStructure(messageType, "Stmt.Ntry.CdtDbtInd", "missing or unknown credit/debit indicator")
	}
	if raw.BookgDt == nil {
		return nil, parsererror.NewInvalidStructure(messageType, "Stmt.Ntry.BookgDt", "missing booking date")
	}
	booking, err := dateutils.ParseDateOrDateTime(raw.BookgDt.Dt, raw.BookgDt.DtTm)
	if err != nil {
		return nil, &parsererror.ParseError{MessageType: messageType, Path: "Stmt.Ntry.BookgDt", Value: raw.BookgDt.Dt, Err: err}
	}

	entry := &models.Entry{
		Reference:             raw.NtryRef,
		CreditDebit:           indicator,
		Reversal:              raw.RvslInd == "true",
		BookingDate:           booking,
		Amount:                amount,
		Status:                raw.Sts,
		AdditionalInformation: raw.AddtlNtryInf,
		AccountServicerRef:    raw.AcctSvcrRef,
	}

	if raw.ValDt != nil && (raw.ValDt.Dt != "" || raw.ValDt.DtTm != "") {
		value, err := dateutils.ParseDateOrDateTime(raw.ValDt.Dt, raw.ValDt.DtTm)
		if err != nil {
			return nil, &parsererror.ParseError{MessageType: messageType, Path: "Stmt.Ntry.ValDt", Value: raw.ValDt.Dt, Err: err}
		}
		entry.ValueDate = &value
	}

	if raw.BkTxCd != nil {
		if raw.BkTxCd.Domn != nil {
			entry.BankTransactionCode.Domain = raw.BkTxCd.Domn.Cd
			if raw.BkTxCd.Domn.Fmly != nil {
				entry.BankTransactionCode.Family = raw.BkTxCd.Domn.Fmly.Cd
				entry.BankTransactionCode.SubFamily = raw.BkTxCd.Domn.Fmly.SubFmlyCd
			}
		}
		if raw.BkTxCd.Prtry != nil {
			entry.BankTransactionCode.Proprietary = raw.BkTxCd.Prtry.Cd
			entry.BankTransactionCode.Issuer = raw.BkTxCd.Prtry.Issr
			entry.ProprietaryCode = raw.BkTxCd.Prtry.Cd
		}
	}

	// The source schema nests transactions two levels deep
	// (entry-details[] -> transaction-details[]); the detail-group
	// boundaries are dropped here and not reconstructed on export.
	for i := range raw.NtryDtls {
		for j := range raw.NtryDtls[i].TxDtls {
			tx, err := parseTransaction(&raw.NtryDtls[i].TxDtls[j])
			if err != nil {
				return nil, err
			}
			entry.Transactions = append(entry.Transactions, *tx)
		}
	}
	return entry, nil
}

func parseTransaction(raw *isodoc.TxDtls) (*models.Transaction, error) {
	tx := &models.Transaction{
		AdditionalInformation: raw.AddtlTxInf,
	}
	if raw.Refs != nil {
		tx.MessageID = raw.Refs.MsgID
		tx.AccountServicerRef = raw.Refs.AcctSvcrRef
		tx.PaymentInformationID = raw.Refs.PmtInfID
		tx.EndToEndID = raw.Refs.EndToEndID
		tx.TransactionID = raw.Refs.TxID
	}

	txAmt := raw.Amt
	if txAmt == nil && raw.AmtDtls != nil && raw.AmtDtls.TxAmt != nil {
		txAmt = &raw.AmtDtls.TxAmt.Amt
	}
	if txAmt != nil && txAmt.Ccy != "" {
		amount, err := models.NewMoneyFromDecimalString(txAmt.Value, txAmt.Ccy)
		if err != nil {
			return nil, parsererror.NewInvalidStructure(messageType, "Stmt.Ntry.NtryDtls.TxDtls.Amt", err.Error())
		}
		tx.Amount = &amount
	}
	if raw.AmtDtls != nil && raw.AmtDtls.InstdAmt != nil && raw.AmtDtls.InstdAmt.Amt.Ccy != "" {
		instructed, err := models.NewMoneyFromDecimalString(raw.AmtDtls.InstdAmt.Amt.Value, raw.AmtDtls.InstdAmt.Amt.Ccy)
		if err != nil {
			return nil, parsererror.NewInvalidStructure(messageType, "Stmt.Ntry.NtryDtls.TxDtls.AmtDtls.InstdAmt", err.Error())
		}
		tx.InstructedAmount = &instructed
	}

	if raw.RltdPties != nil {
		tx.Debtor = relatedParty(raw.RltdPties.Dbtr, raw.RltdPties.DbtrAcct)
		tx.Creditor = relatedParty(raw.RltdPties.Cdtr, raw.RltdPties.CdtrAcct)
	}
	if raw.RmtInf != nil {
		tx.RemittanceInformation = fieldutils.JoinAdditionalInfo(raw.RmtInf.Ustrd)
	}
	if raw.RtrInf != nil {
		if raw.RtrInf.Rsn != nil {
			tx.ReturnReason = raw.RtrInf.Rsn.Cd
			if tx.ReturnReason == "" {
				tx.ReturnReason = raw.RtrInf.Rsn.Prtry
			}
		}
		tx.ReturnAdditionalInfo = fieldutils.JoinAdditionalInfo(raw.RtrInf.AddtlInf)
	}
	return tx, nil
}

func relatedParty(rawParty *isodoc.Party, rawAcct *isodoc.CashAccount) *models.Party {
	party := fieldutils.ParseParty(rawParty)
	account := fieldutils.ParseCashAccount(rawAcct)
	if party == nil && account == nil {
		return nil
	}
	if party == nil {
		party = &models.Party{}
	}
	party.Account = account
	return party
}
