package camt006

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/iso20022/internal/models"
	"fjacquet/iso20022/internal/parsererror"
)

const sampleReturn = `<?xml version="1.0" encoding="UTF-8"?>
<Document xmlns="urn:iso:std:iso:20022:tech:xsd:camt.006.001.07">
  <RtrTx>
    <MsgHdr>
      <MsgId>RTR-TX-1</MsgId>
      <CreDtTm>2024-06-01T08:10:00Z</CreDtTm>
    </MsgHdr>
    <RptOrErr>
      <TxRpt>
        <PmtId>
          <TxId>TX-1001</TxId>
        </PmtId>
        <TxOrErr>
          <Tx>
            <Pmt>
              <Sts>
                <Cd>
                  <Sttlm>ACCC</Sttlm>
                </Cd>
                <DtTm>2024-06-01T07:59:00Z</DtTm>
              </Sts>
              <InstdAmt Ccy="EUR">250.00</InstdAmt>
              <IntrBkSttlmAmt Ccy="EUR">250.00</IntrBkSttlmAmt>
              <EndToEndId>E2E-77</EndToEndId>
              <Pties>
                <Dbtr>
                  <Nm>Alpha SA</Nm>
                </Dbtr>
                <Cdtr>
                  <Nm>Beta AG</Nm>
                </Cdtr>
              </Pties>
            </Pmt>
          </Tx>
        </TxOrErr>
      </TxRpt>
      <TxRpt>
        <PmtId>
          <PrtryId>TX-MISSING</PrtryId>
        </PmtId>
        <TxOrErr>
          <BizErr>
            <Err>
              <Cd>X020</Cd>
            </Err>
            <Desc>Transaction not found</Desc>
          </BizErr>
        </TxOrErr>
      </TxRpt>
    </RptOrErr>
  </RtrTx>
</Document>`

func TestFromXML(t *testing.T) {
	msg, err := FromXML([]byte(sampleReturn))
	require.NoError(t, err)

	assert.Equal(t, "RTR-TX-1", msg.MessageID)
	require.Len(t, msg.Reports, 2)

	success := msg.Reports[0]
	assert.Equal(t, "TX-1001", success.PaymentID)
	require.NoError(t, success.Validate())
	require.NotNil(t, success.Report)
	require.NotNil(t, success.Report.Status)
	assert.Equal(t, "Sttlm:ACCC", success.Report.Status.Code)
	statusType, code := success.Report.Status.Split()
	assert.Equal(t, "Sttlm", statusType)
	assert.Equal(t, "ACCC", code)
	require.NotNil(t, success.Report.Status.DateTime)
	require.NotNil(t, success.Report.InstructedAmount)
	assert.Equal(t, int64(25000), success.Report.InstructedAmount.MinorUnits)
	assert.Equal(t, "E2E-77", success.Report.EndToEndID)
	require.NotNil(t, success.Report.Debtor)
	assert.Equal(t, "Alpha SA", success.Report.Debtor.Name)

	failed := msg.Reports[1]
	assert.Equal(t, "TX-MISSING", failed.PaymentID)
	require.NoError(t, failed.Validate())
	require.NotNil(t, failed.Error)
	assert.Equal(t, "X020", failed.Error.Code)
}

func TestStatusTagRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		code string
		want string
	}{
		{"Pending", "Pdg", "ACPD", "Pdg:ACPD"},
		{"Final", "Fnl", "STLD", "Fnl:STLD"},
		{"RTGS", "RTGS", "QUEU", "RTGS:QUEU"},
		{"Settlement", "Sttlm", "ACCC", "Sttlm:ACCC"},
		{"Partial", "Prtl", "PART", "Prtl:PART"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := []byte(`<Document xmlns="urn:iso:std:iso:20022:tech:xsd:camt.006.001.07">
  <RtrTx><MsgHdr><MsgId>R1</MsgId></MsgHdr>
  <RptOrErr><TxRpt><PmtId><TxId>T1</TxId></PmtId>
  <TxOrErr><Tx><Pmt><Sts><Cd><` + tt.tag + `>` + tt.code + `</` + tt.tag + `></Cd></Sts></Pmt></Tx></TxOrErr>
  </TxRpt></RptOrErr></RtrTx>
</Document>`)

			msg, err := FromXML(doc)
			require.NoError(t, err)
			require.NotNil(t, msg.Reports[0].Report.Status)
			assert.Equal(t, tt.want, msg.Reports[0].Report.Status.Code)

			// The code must come back under the same tag.
			data, err := Serialize(msg)
			require.NoError(t, err)
			assert.Contains(t, string(data), "<"+tt.tag+">"+tt.code+"</"+tt.tag+">")
		})
	}
}

func TestFromXMLRejectsEmptyChoice(t *testing.T) {
	doc := []byte(`<Document xmlns="urn:iso:std:iso:20022:tech:xsd:camt.006.001.07">
  <RtrTx><MsgHdr><MsgId>R1</MsgId></MsgHdr>
  <RptOrErr><TxRpt><PmtId><TxId>T1</TxId></PmtId><TxOrErr/></TxRpt></RptOrErr></RtrTx>
</Document>`)

	_, err := FromXML(doc)
	var structErr *parsererror.InvalidStructureError
	require.ErrorAs(t, err, &structErr)
	assert.Contains(t, structErr.Reason, "neither")
}

func TestFromXMLRejectsForeignNamespace(t *testing.T) {
	doc := []byte(`<Document xmlns="urn:iso:std:iso:20022:tech:xsd:camt.004.001.07"><RtrTx/></Document>`)
	_, err := FromXML(doc)
	var nsErr *parsererror.InvalidXMLNamespaceError
	assert.ErrorAs(t, err, &nsErr)
}

func TestXMLRoundTrip(t *testing.T) {
	msg, err := FromXML([]byte(sampleReturn))
	require.NoError(t, err)

	data, err := Serialize(msg)
	require.NoError(t, err)

	again, err := FromXML(data)
	require.NoError(t, err)
	assert.Equal(t, msg, again)
}

func TestJSONRoundTrip(t *testing.T) {
	msg, err := FromXML([]byte(sampleReturn))
	require.NoError(t, err)

	data, err := ToJSON(msg)
	require.NoError(t, err)

	again, err := FromJSON(data)
	require.NoError(t, err)
	assert.Equal(t, msg, again)
}

func TestValidateRejectsBothSides(t *testing.T) {
	report := models.TransactionReportOrError{
		PaymentID: "T1",
		Report:    &models.PaymentDetails{},
		Error:     &models.BusinessError{Code: "X"},
	}
	assert.Error(t, report.Validate())
}
