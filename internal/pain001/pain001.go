// Package pain001 maps customer credit transfer initiations between the raw
// document layer and the domain model. The four supported rails (SWIFT, SEPA,
// ACH, RTP) share the document shape and differ only in the payment-type
// codes and identification schemes the constructors fix.
package pain001

import (
	"strconv"

	"fjacquet/iso20022/internal/currency"
	"fjacquet/iso20022/internal/dateutils"
	"fjacquet/iso20022/internal/fieldutils"
	"fjacquet/iso20022/internal/isodoc"
	"fjacquet/iso20022/internal/models"
	"fjacquet/iso20022/internal/parsererror"
)

const messageType = "pain.001"

// Serialize renders the initiation as a pain.001.001.03 XML document.
func Serialize(msg *models.CreditTransferMessage) ([]byte, error) {
	return isodoc.BuildXML(ToDocument(msg))
}

// ToJSON renders the initiation as the JSON shape of the XML tree.
func ToJSON(msg *models.CreditTransferMessage) ([]byte, error) {
	return isodoc.BuildJSON(ToDocument(msg))
}

// ToDocument builds the raw document. The message is assumed valid; the
// variant constructors enforce the invariants at construction time.
func ToDocument(msg *models.CreditTransferMessage) *isodoc.Pain001Document {
	pmtInf := isodoc.PmtInf{
		PmtInfID:    msg.PaymentInformationID,
		PmtMtd:      models.PaymentMethodTRF,
		NbOfTxs:     strconv.Itoa(len(msg.Instructions)),
		CtrlSum:     controlSum(msg),
		PmtTpInf:    paymentTypeInfo(msg),
		ReqdExctnDt: dateutils.FormatDate(msg.RequestedExecutionDate),
		Dbtr:        *fieldutils.ExportParty(&msg.Debtor),
		DbtrAcct:    *fieldutils.ExportCashAccount(&msg.DebtorAccount),
		DbtrAgt:     fieldutils.ExportAgent(msg.DebtorAgent),
	}
	if msg.Variant == models.VariantSEPA {
		pmtInf.ChrgBr = models.ChargeBearerSLEV
	}
	for i := range msg.Instructions {
		pmtInf.CdtTrfTxInf = append(pmtInf.CdtTrfTxInf, exportInstruction(&msg.Instructions[i]))
	}

	return &isodoc.Pain001Document{
		Xmlns:    isodoc.NamespacePain001,
		XmlnsXsi: isodoc.XSINamespace,
		CstmrCdtTrfInitn: isodoc.CdtTrfInitn{
			GrpHdr: isodoc.GroupHeader{
				MsgID:    msg.MessageID,
				CreDtTm:  dateutils.FormatDateTime(msg.CreationDate),
				NbOfTxs:  strconv.Itoa(len(msg.Instructions)),
				CtrlSum:  controlSum(msg),
				InitgPty: fieldutils.ExportParty(&msg.InitiatingParty),
			},
			PmtInf: []isodoc.PmtInf{pmtInf},
		},
	}
}

// controlSum formats the exact instruction sum with the message currency's
// canonical precision, the form banks verify against.
func controlSum(msg *models.CreditTransferMessage) string {
	return msg.ControlSum().StringFixed(currency.Precision(msg.Currency()))
}

// paymentTypeInfo returns the payment-type block each rail fixes: SEPA
// carries the SEPA service level, RTP the proprietary RTP local instrument,
// ACH its local instrument code, SWIFT none.
func paymentTypeInfo(msg *models.CreditTransferMessage) *isodoc.PmtTpInf {
	switch msg.Variant {
	case models.VariantSEPA:
		return &isodoc.PmtTpInf{SvcLvl: &isodoc.CodeOrProprietary{Cd: models.SEPAServiceLevel}}
	case models.VariantRTP:
		return &isodoc.PmtTpInf{LclInstrm: &isodoc.CodeOrProprietary{Prtry: models.RTPLocalInstr}}
	case models.VariantACH:
		return &isodoc.PmtTpInf{LclInstrm: &isodoc.CodeOrProprietary{Cd: msg.LocalInstrument}}
	}
	return nil
}

func exportInstruction(instr *models.PaymentInstruction) isodoc.CdtTrfTx {
	raw := isodoc.CdtTrfTx{
		PmtID: isodoc.PaymentIDs{
			InstrID:    instr.ID,
			EndToEndID: instr.EndToEndID,
		},
		Amt: isodoc.InstdAmtWrap{InstdAmt: isodoc.Amount{
			Value: instr.Amount.DecimalString(),
			Ccy:   instr.Amount.Currency,
		}},
		CdtrAgt:  fieldutils.ExportAgent(instr.CreditorAgent),
		Cdtr:     *fieldutils.ExportParty(&instr.Creditor),
		CdtrAcct: fieldutils.ExportCashAccount(&instr.CreditorAccount),
	}
	if instr.RemittanceInformation != "" {
		raw.RmtInf = &isodoc.RmtInf{Ustrd: fieldutils.SplitAdditionalInfo(instr.RemittanceInformation)}
	}
	return raw
}

// FromXML parses a pain.001 XML document back into the domain model. The
// variant is inferred from the payment-type codes and identification schemes.
func FromXML(data []byte) (*models.CreditTransferMessage, error) {
	var doc isodoc.Pain001Document
	if err := isodoc.DecodeXML(data, &doc); err != nil {
		return nil, err
	}
	if err := isodoc.VerifyNamespace(doc.Xmlns, isodoc.PrefixPain001); err != nil {
		return nil, err
	}
	return FromDocument(&doc)
}

// FromJSON parses the JSON rendition of a pain.001 document.
func FromJSON(data []byte) (*models.CreditTransferMessage, error) {
	var doc isodoc.Pain001Document
	if err := isodoc.DecodeJSON(data, &doc); err != nil {
		return nil, err
	}
	return FromDocument(&doc)
}

// FromDocument walks the raw document into the domain model.
func FromDocument(doc *isodoc.Pain001Document) (*models.CreditTransferMessage, error) {
	initn := doc.CstmrCdtTrfInitn
	if initn.GrpHdr.MsgID == "" {
		return nil, parsererror.NewInvalidStructure(messageType, "CstmrCdtTrfInitn.GrpHdr.MsgId", "missing message id")
	}
	created, err := dateutils.ParseISODateTime(initn.GrpHdr.CreDtTm)
	if err != nil {
		return nil, &parsererror.ParseError{MessageType: messageType, Path: "CstmrCdtTrfInitn.GrpHdr.CreDtTm", Value: initn.GrpHdr.CreDtTm, Err: err}
	}
	if len(initn.PmtInf) != 1 {
		return nil, parsererror.NewInvalidStructure(messageType, "CstmrCdtTrfInitn.PmtInf",
			"expected exactly one payment information block, got "+strconv.Itoa(len(initn.PmtInf)))
	}
	raw := initn.PmtInf[0]

	execution, err := dateutils.ParseISODate(raw.ReqdExctnDt)
	if err != nil {
		return nil, &parsererror.ParseError{MessageType: messageType, Path: "CstmrCdtTrfInitn.PmtInf.ReqdExctnDt", Value: raw.ReqdExctnDt, Err: err}
	}

	msg := &models.CreditTransferMessage{
		MessageID:              initn.GrpHdr.MsgID,
		PaymentInformationID:   raw.PmtInfID,
		CreationDate:           created,
		RequestedExecutionDate: execution,
	}
	if party := fieldutils.ParseParty(initn.GrpHdr.InitgPty); party != nil {
		msg.InitiatingParty = *party
	}
	if party := fieldutils.ParseParty(&raw.Dbtr); party != nil {
		msg.Debtor = *party
	}
	msg.DebtorAccount = fieldutils.ParseAccount(raw.DbtrAcct.ID, raw.DbtrAcct.Tp, raw.DbtrAcct.Ccy, raw.DbtrAcct.Nm)
	if msg.DebtorAccount.IsZero() {
		return nil, parsererror.NewInvalidStructure(messageType, "CstmrCdtTrfInitn.PmtInf.DbtrAcct", "missing debtor account identification")
	}
	msg.DebtorAgent = fieldutils.ParseAgent(raw.DbtrAgt)

	for i := range raw.CdtTrfTxInf {
		instr, err := parseInstruction(&raw.CdtTrfTxInf[i])
		if err != nil {
			return nil, err
		}
		msg.Instructions = append(msg.Instructions, *instr)
	}
	if len(msg.Instructions) == 0 {
		return nil, parsererror.NewInvalidStructure(messageType, "CstmrCdtTrfInitn.PmtInf.CdtTrfTxInf", "no credit instructions present")
	}

	msg.Variant, msg.LocalInstrument = inferVariant(raw.PmtTpInf)
	return msg, nil
}

func parseInstruction(raw *isodoc.CdtTrfTx) (*models.PaymentInstruction, error) {
	if raw.Amt.InstdAmt.Ccy == "" {
		return nil, parsererror.NewInvalidStructure(messageType, "CstmrCdtTrfInitn.PmtInf.CdtTrfTxInf.Amt.InstdAmt", "missing currency on instructed amount")
	}
	amount, err := models.NewMoneyFromDecimalString(raw.Amt.InstdAmt.Value, raw.Amt.InstdAmt.Ccy)
	if err != nil {
		return nil, parsererror.NewInvalidStructure(messageType, "CstmrCdtTrfInitn.PmtInf.CdtTrfTxInf.Amt.InstdAmt", err.Error())
	}
	instr := &models.PaymentInstruction{
		ID:            raw.PmtID.InstrID,
		EndToEndID:    raw.PmtID.EndToEndID,
		Amount:        amount,
		CreditorAgent: fieldutils.ParseAgent(raw.CdtrAgt),
	}
	if party := fieldutils.ParseParty(&raw.Cdtr); party != nil {
		instr.Creditor = *party
	}
	if account := fieldutils.ParseCashAccount(raw.CdtrAcct); account != nil {
		instr.CreditorAccount = *account
	}
	if raw.RmtInf != nil {
		instr.RemittanceInformation = fieldutils.JoinAdditionalInfo(raw.RmtInf.Ustrd)
	}
	return instr, nil
}

// inferVariant recovers the rail from the payment-type codes. SEPA and RTP
// are unambiguous from their fixed codes; any other local instrument code
// means ACH; no payment-type block means SWIFT.
func inferVariant(tpInf *isodoc.PmtTpInf) (models.PaymentVariant, string) {
	if tpInf != nil {
		if tpInf.SvcLvl != nil && tpInf.SvcLvl.Cd == models.SEPAServiceLevel {
			return models.VariantSEPA, ""
		}
		if tpInf.LclInstrm != nil {
			if tpInf.LclInstrm.Prtry == models.RTPLocalInstr {
				return models.VariantRTP, models.RTPLocalInstr
			}
			if tpInf.LclInstrm.Cd != "" {
				return models.VariantACH, tpInf.LclInstrm.Cd
			}
		}
	}
	return models.VariantSWIFT, ""
}
