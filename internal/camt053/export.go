package camt053

import (
	"strconv"
	"time"

	"fjacquet/iso20022/internal/dateutils"
	"fjacquet/iso20022/internal/fieldutils"
	"fjacquet/iso20022/internal/isodoc"
	"fjacquet/iso20022/internal/models"
)

// Serialize renders the message as a camt.053.001.02 XML document.
func Serialize(msg *models.StatementMessage) ([]byte, error) {
	return isodoc.BuildXML(ToDocument(msg))
}

// ToJSON renders the message as the JSON shape of the XML tree. The output
// re-parses through FromJSON.
func ToJSON(msg *models.StatementMessage) ([]byte, error) {
	return isodoc.BuildJSON(ToDocument(msg))
}

// ToDocument builds the raw document from the domain model.
func ToDocument(msg *models.StatementMessage) *isodoc.Camt053Document {
	doc := &isodoc.Camt053Document{
		Xmlns:    isodoc.NamespaceCamt053,
		XmlnsXsi: isodoc.XSINamespace,
		BkToCstmrStmt: isodoc.BkToCstmrStmt{
			GrpHdr: isodoc.MessageHeader{
				MsgID:   msg.MessageID,
				CreDtTm: dateutils.FormatDateTime(msg.CreationDate),
			},
			Stmt: make([]isodoc.Stmt, 0, len(msg.Statements)),
		},
	}
	for i := range msg.Statements {
		doc.BkToCstmrStmt.Stmt = append(doc.BkToCstmrStmt.Stmt, exportStatement(&msg.Statements[i]))
	}
	return doc
}

func exportStatement(stmt *models.Statement) isodoc.Stmt {
	raw := isodoc.Stmt{
		ID:           stmt.ID,
		ElctrncSeqNb: stmt.ElectronicSequence,
		LglSeqNb:     stmt.LegalSequence,
		CreDtTm:      dateutils.FormatDateTime(stmt.CreationDate),
	}

	if stmt.FromDate != nil || stmt.ToDate != nil {
		raw.FrToDt = &isodoc.Period{}
		if stmt.FromDate != nil {
			raw.FrToDt.FrDtTm = dateutils.FormatDateTime(*stmt.FromDate)
		}
		if stmt.ToDate != nil {
			raw.FrToDt.ToDtTm = dateutils.FormatDateTime(*stmt.ToDate)
		}
	}

	id, tp, ccy, name := fieldutils.ExportAccount(stmt.Account)
	raw.Acct = isodoc.StmtAccount{ID: id, Tp: tp, Ccy: ccy, Nm: name}
	if stmt.AccountOwner != "" {
		raw.Acct.Ownr = &isodoc.Party{Nm: stmt.AccountOwner}
	}
	raw.Acct.Svcr = fieldutils.ExportAgent(stmt.Agent)

	if stmt.Totals != nil || stmt.CreditTotals != nil || stmt.DebitTotals != nil {
		raw.TxsSummry = &isodoc.TxsSummary{
			TtlNtries:    exportTotals(stmt.Totals),
			TtlCdtNtries: exportTotals(stmt.CreditTotals),
			TtlDbtNtries: exportTotals(stmt.DebitTotals),
		}
	}

	for i := range stmt.Balances {
		raw.Bal = append(raw.Bal, exportBalance(&stmt.Balances[i]))
	}
	for i := range stmt.Entries {
		raw.Ntry = append(raw.Ntry, exportEntry(&stmt.Entries[i]))
	}
	return raw
}

func exportTotals(totals *models.EntryTotals) *isodoc.TotalEntries {
	if totals == nil {
		return nil
	}
	raw := &isodoc.TotalEntries{
		NbOfNtries: strconv.Itoa(totals.Count),
		CdtDbtInd:  string(totals.CreditDebit),
	}
	if totals.Sum != nil {
		raw.Sum = totals.Sum.DecimalString()
	}
	if totals.NetAmount != nil {
		raw.TtlNetNtryAmt = totals.NetAmount.DecimalString()
	}
	return raw
}

func exportBalance(balance *models.Balance) isodoc.Bal {
	return isodoc.Bal{
		Tp:        isodoc.BalType{CdOrPrtry: isodoc.CodeOrProprietary{Cd: string(balance.Type)}},
		Amt:       exportAmount(balance.Amount),
		CdtDbtInd: string(balance.CreditDebit),
		Dt:        exportDateChoice(balance.Date),
	}
}

func exportEntry(entry *models.Entry) isodoc.Ntry {
	raw := isodoc.Ntry{
		NtryRef:      entry.Reference,
		Amt:          exportAmount(entry.Amount),
		CdtDbtInd:    string(entry.CreditDebit),
		Sts:          entry.Status,
		AcctSvcrRef:  entry.AccountServicerRef,
		AddtlNtryInf: entry.AdditionalInformation,
	}
	if entry.Reversal {
		raw.RvslInd = "true"
	}

	raw.BookgDt = exportDateChoice(entry.BookingDate)
	if entry.ValueDate != nil {
		raw.ValDt = exportDateChoice(*entry.ValueDate)
	}

	raw.BkTxCd = exportBankTransactionCode(entry)

	// All transactions are re-grouped under a single entry-details node;
	// the original group boundaries were dropped at parse time.
	if len(entry.Transactions) > 0 {
		details := isodoc.NtryDtls{TxDtls: make([]isodoc.TxDtls, 0, len(entry.Transactions))}
		for i := range entry.Transactions {
			details.TxDtls = append(details.TxDtls, exportTransaction(&entry.Transactions[i]))
		}
		raw.NtryDtls = []isodoc.NtryDtls{details}
	}
	return raw
}

func exportBankTransactionCode(entry *models.Entry) *isodoc.BkTxCd {
	code := entry.BankTransactionCode
	proprietary := code.Proprietary
	if proprietary == "" {
		proprietary = entry.ProprietaryCode
	}
	if code.IsZero() && proprietary == "" {
		return nil
	}
	raw := &isodoc.BkTxCd{}
	if code.Domain != "" {
		raw.Domn = &isodoc.Domain{Cd: code.Domain}
		if code.Family != "" || code.SubFamily != "" {
			raw.Domn.Fmly = &isodoc.Family{Cd: code.Family, SubFmlyCd: code.SubFamily}
		}
	}
	if proprietary != "" {
		raw.Prtry = &isodoc.ProprietaryTxCode{Cd: proprietary, Issr: code.Issuer}
	}
	return raw
}

func exportTransaction(tx *models.Transaction) isodoc.TxDtls {
	raw := isodoc.TxDtls{
		AddtlTxInf: tx.AdditionalInformation,
	}
	if tx.MessageID != "" || tx.AccountServicerRef != "" || tx.PaymentInformationID != "" ||
		tx.EndToEndID != "" || tx.TransactionID != "" {
		raw.Refs = &isodoc.Refs{
			MsgID:       tx.MessageID,
			AcctSvcrRef: tx.AccountServicerRef,
			PmtInfID:    tx.PaymentInformationID,
			EndToEndID:  tx.EndToEndID,
			TxID:        tx.TransactionID,
		}
	}
	if tx.Amount != nil {
		amount := exportAmount(*tx.Amount)
		raw.Amt = &amount
	}
	if tx.InstructedAmount != nil {
		raw.AmtDtls = &isodoc.AmtDtls{
			InstdAmt: &isodoc.WrappedAmount{Amt: exportAmount(*tx.InstructedAmount)},
		}
	}
	if tx.Debtor != nil || tx.Creditor != nil {
		raw.RltdPties = &isodoc.RltdPties{}
		if tx.Debtor != nil {
			raw.RltdPties.Dbtr = fieldutils.ExportParty(tx.Debtor)
			raw.RltdPties.DbtrAcct = fieldutils.ExportCashAccount(tx.Debtor.Account)
		}
		if tx.Creditor != nil {
			raw.RltdPties.Cdtr = fieldutils.ExportParty(tx.Creditor)
			raw.RltdPties.CdtrAcct = fieldutils.ExportCashAccount(tx.Creditor.Account)
		}
	}
	if tx.RemittanceInformation != "" {
		raw.RmtInf = &isodoc.RmtInf{Ustrd: fieldutils.SplitAdditionalInfo(tx.RemittanceInformation)}
	}
	if tx.ReturnReason != "" || tx.ReturnAdditionalInfo != "" {
		raw.RtrInf = &isodoc.RtrInf{
			AddtlInf: fieldutils.SplitAdditionalInfo(tx.ReturnAdditionalInfo),
		}
		if tx.ReturnReason != "" {
			raw.RtrInf.Rsn = &isodoc.ReturnReason{Cd: tx.ReturnReason}
		}
	}
	return raw
}

func exportAmount(amount models.Money) isodoc.Amount {
	return isodoc.Amount{Value: amount.DecimalString(), Ccy: amount.Currency}
}

func exportDateChoice(t time.Time) *isodoc.DateChoice {
	if dateutils.HasTimeComponent(t) {
		return &isodoc.DateChoice{DtTm: dateutils.FormatDateTime(t)}
	}
	return &isodoc.DateChoice{Dt: dateutils.FormatDate(t)}
}
