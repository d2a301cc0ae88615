// Package pain002 maps customer payment status reports between the raw
// document layer and the domain model. A report can carry statuses at three
// levels; the parse collects them level by level, so every payment-level
// status precedes every transaction-level one regardless of block order.
package pain002

import (
	"fjacquet/iso20022/internal/dateutils"
	"fjacquet/iso20022/internal/fieldutils"
	"fjacquet/iso20022/internal/isodoc"
	"fjacquet/iso20022/internal/models"
	"fjacquet/iso20022/internal/parsererror"
)

const messageType = "pain.002"

// FromXML parses a pain.002 XML document.
func FromXML(data []byte) (*models.StatusReportMessage, error) {
	var doc isodoc.Pain002Document
	if err := isodoc.DecodeXML(data, &doc); err != nil {
		return nil, err
	}
	if err := isodoc.VerifyNamespace(doc.Xmlns, isodoc.PrefixPain002); err != nil {
		return nil, err
	}
	return FromDocument(&doc)
}

// FromJSON parses the JSON rendition of a pain.002 document.
func FromJSON(data []byte) (*models.StatusReportMessage, error) {
	var doc isodoc.Pain002Document
	if err := isodoc.DecodeJSON(data, &doc); err != nil {
		return nil, err
	}
	return FromDocument(&doc)
}

// FromDocument walks the raw document into the domain model.
func FromDocument(doc *isodoc.Pain002Document) (*models.StatusReportMessage, error) {
	rpt := doc.CstmrPmtStsRpt
	if rpt.GrpHdr.MsgID == "" {
		return nil, parsererror.NewInvalidStructure(messageType, "CstmrPmtStsRpt.GrpHdr.MsgId", "missing message id")
	}
	created, err := dateutils.ParseISODateTime(rpt.GrpHdr.CreDtTm)
	if err != nil {
		return nil, &parsererror.ParseError{MessageType: messageType, Path: "CstmrPmtStsRpt.GrpHdr.CreDtTm", Value: rpt.GrpHdr.CreDtTm, Err: err}
	}
	if rpt.OrgnlGrpInfAndSts.OrgnlMsgID == "" {
		return nil, parsererror.NewInvalidStructure(messageType, "CstmrPmtStsRpt.OrgnlGrpInfAndSts.OrgnlMsgId", "missing original message id")
	}

	msg := &models.StatusReportMessage{
		MessageID:           rpt.GrpHdr.MsgID,
		CreationDate:        created,
		OriginalMessageID:   rpt.OrgnlGrpInfAndSts.OrgnlMsgID,
		OriginalMessageName: rpt.OrgnlGrpInfAndSts.OrgnlMsgNmID,
	}

	if rpt.OrgnlGrpInfAndSts.GrpSts != "" {
		msg.Statuses = append(msg.Statuses, models.StatusInformation{
			Scope:      models.ScopeGroup,
			OriginalID: rpt.OrgnlGrpInfAndSts.OrgnlMsgID,
			Status:     models.StatusCode(rpt.OrgnlGrpInfAndSts.GrpSts),
			Reason:     parseReason(rpt.OrgnlGrpInfAndSts.StsRsnInf),
		})
	}
	for _, pmt := range rpt.OrgnlPmtInfAndSts {
		if pmt.PmtInfSts == "" {
			continue
		}
		msg.Statuses = append(msg.Statuses, models.StatusInformation{
			Scope:      models.ScopePayment,
			OriginalID: pmt.OrgnlPmtInfID,
			Status:     models.StatusCode(pmt.PmtInfSts),
			Reason:     parseReason(pmt.StsRsnInf),
		})
	}
	for _, pmt := range rpt.OrgnlPmtInfAndSts {
		for _, tx := range pmt.TxInfAndSts {
			if tx.TxSts == "" {
				continue
			}
			msg.Statuses = append(msg.Statuses, models.StatusInformation{
				Scope:                models.ScopeTransaction,
				OriginalID:           tx.OrgnlEndToEndID,
				PaymentInformationID: pmt.OrgnlPmtInfID,
				Status:               models.StatusCode(tx.TxSts),
				Reason:               parseReason(tx.StsRsnInf),
			})
		}
	}
	return msg, nil
}

// parseReason flattens the first status-reason block; reports in the wild
// carry at most one.
func parseReason(raw []isodoc.StsRsnInf) *models.StatusReason {
	if len(raw) == 0 {
		return nil
	}
	reason := models.StatusReason{
		AdditionalInfo: fieldutils.JoinAdditionalInfo(raw[0].AddtlInf),
	}
	if raw[0].Rsn != nil {
		reason.Code = raw[0].Rsn.Cd
		if reason.Code == "" {
			reason.Code = raw[0].Rsn.Prtry
		}
	}
	if reason == (models.StatusReason{}) {
		return nil
	}
	return &reason
}

// Serialize renders the report as a pain.002.001.03 XML document.
func Serialize(msg *models.StatusReportMessage) ([]byte, error) {
	return isodoc.BuildXML(ToDocument(msg))
}

// ToJSON renders the report as the JSON shape of the XML tree.
func ToJSON(msg *models.StatusReportMessage) ([]byte, error) {
	return isodoc.BuildJSON(ToDocument(msg))
}

// ToDocument builds the raw document, regrouping the flat status list by
// scope. Transaction statuses rejoin the payment block they were reported
// under via the recorded payment information id; a block carrying only
// transaction statuses is recreated on demand.
func ToDocument(msg *models.StatusReportMessage) *isodoc.Pain002Document {
	doc := &isodoc.Pain002Document{
		Xmlns:    isodoc.NamespacePain002,
		XmlnsXsi: isodoc.XSINamespace,
		CstmrPmtStsRpt: isodoc.PmtStsRpt{
			GrpHdr: isodoc.GroupHeader{
				MsgID:   msg.MessageID,
				CreDtTm: dateutils.FormatDateTime(msg.CreationDate),
			},
			OrgnlGrpInfAndSts: isodoc.OrgnlGrpInf{
				OrgnlMsgID:   msg.OriginalMessageID,
				OrgnlMsgNmID: msg.OriginalMessageName,
			},
		},
	}

	rpt := &doc.CstmrPmtStsRpt
	blockIndex := make(map[string]int)
	blockFor := func(pmtInfID string) *isodoc.OrgnlPmtInfSts {
		if i, ok := blockIndex[pmtInfID]; ok {
			return &rpt.OrgnlPmtInfAndSts[i]
		}
		rpt.OrgnlPmtInfAndSts = append(rpt.OrgnlPmtInfAndSts, isodoc.OrgnlPmtInfSts{OrgnlPmtInfID: pmtInfID})
		blockIndex[pmtInfID] = len(rpt.OrgnlPmtInfAndSts) - 1
		return &rpt.OrgnlPmtInfAndSts[len(rpt.OrgnlPmtInfAndSts)-1]
	}
	for _, sts := range msg.Statuses {
		switch sts.Scope {
		case models.ScopeGroup:
			rpt.OrgnlGrpInfAndSts.GrpSts = string(sts.Status)
			rpt.OrgnlGrpInfAndSts.StsRsnInf = exportReason(sts.Reason)
		case models.ScopePayment:
			block := blockFor(sts.OriginalID)
			block.PmtInfSts = string(sts.Status)
			block.StsRsnInf = exportReason(sts.Reason)
		case models.ScopeTransaction:
			block := blockFor(sts.PaymentInformationID)
			block.TxInfAndSts = append(block.TxInfAndSts, isodoc.TxInfSts{
				OrgnlEndToEndID: sts.OriginalID,
				TxSts:           string(sts.Status),
				StsRsnInf:       exportReason(sts.Reason),
			})
		}
	}
	return doc
}

func exportReason(reason *models.StatusReason) []isodoc.StsRsnInf {
	if reason == nil {
		return nil
	}
	raw := isodoc.StsRsnInf{
		AddtlInf: fieldutils.SplitAdditionalInfo(reason.AdditionalInfo),
	}
	if reason.Code != "" {
		raw.Rsn = &isodoc.ReturnReason{Cd: reason.Code}
	}
	return []isodoc.StsRsnInf{raw}
}
