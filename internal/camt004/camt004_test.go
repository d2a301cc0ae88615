package camt004

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/iso20022/internal/models"
	"fjacquet/iso20022/internal/parsererror"
)

const sampleReturn = `<?xml version="1.0" encoding="UTF-8"?>
<Document xmlns="urn:iso:std:iso:20022:tech:xsd:camt.004.001.07">
  <RtrAcct>
    <MsgHdr>
      <MsgId>RTR-ACCT-1</MsgId>
      <CreDtTm>2024-06-01T08:05:00Z</CreDtTm>
    </MsgHdr>
    <RptOrErr>
      <AcctRpt>
        <AcctId>
          <IBAN>CH9300762011623852957</IBAN>
        </AcctId>
        <AcctOrErr>
          <Acct>
            <Ccy>CHF</Ccy>
            <Tp>
              <Cd>CACC</Cd>
            </Tp>
            <Nm>Operating</Nm>
            <MulBal>
              <Tp>
                <CdOrPrtry>
                  <Cd>CLBD</Cd>
                </CdOrPrtry>
              </Tp>
              <Amt Ccy="CHF">12500.35</Amt>
              <CdtDbtInd>CRDT</CdtDbtInd>
              <Dt>
                <Dt>2024-05-31</Dt>
              </Dt>
            </MulBal>
          </Acct>
        </AcctOrErr>
      </AcctRpt>
      <AcctRpt>
        <AcctId>
          <Othr>
            <Id>UNKNOWN-42</Id>
          </Othr>
        </AcctId>
        <AcctOrErr>
          <BizErr>
            <Err>
              <Cd>X050</Cd>
            </Err>
            <Desc>Account unknown</Desc>
          </BizErr>
        </AcctOrErr>
      </AcctRpt>
    </RptOrErr>
  </RtrAcct>
</Document>`

func TestFromXML(t *testing.T) {
	msg, err := FromXML([]byte(sampleReturn))
	require.NoError(t, err)

	assert.Equal(t, "RTR-ACCT-1", msg.MessageID)
	require.Len(t, msg.Reports, 2)

	success := msg.Reports[0]
	assert.Equal(t, "CH9300762011623852957", success.AccountID)
	require.NoError(t, success.Validate())
	require.NotNil(t, success.Report)
	assert.Equal(t, "CHF", success.Report.Currency)
	assert.Equal(t, "CACC", success.Report.Type)
	require.Len(t, success.Report.Balances, 1)
	assert.Equal(t, models.BalanceClosingBooked, success.Report.Balances[0].Type)
	assert.Equal(t, int64(1250035), success.Report.Balances[0].Amount.MinorUnits)

	failed := msg.Reports[1]
	assert.Equal(t, "UNKNOWN-42", failed.AccountID)
	require.NoError(t, failed.Validate())
	require.NotNil(t, failed.Error)
	assert.Equal(t, "X050", failed.Error.Code)
	assert.Equal(t, "Account unknown", failed.Error.Description)
}

func TestDatelessBalanceRoundTrip(t *testing.T) {
	doc := []byte(`<Document xmlns="urn:iso:std:iso:20022:tech:xsd:camt.004.001.07">
  <RtrAcct>
    <MsgHdr><MsgId>R1</MsgId></MsgHdr>
    <RptOrErr><AcctRpt>
      <AcctId><IBAN>CH9300762011623852957</IBAN></AcctId>
      <AcctOrErr><Acct>
        <Ccy>CHF</Ccy>
        <MulBal>
          <Tp><CdOrPrtry><Cd>CLBD</Cd></CdOrPrtry></Tp>
          <Amt Ccy="CHF">100.00</Amt>
          <CdtDbtInd>CRDT</CdtDbtInd>
        </MulBal>
      </Acct></AcctOrErr>
    </AcctRpt></RptOrErr>
  </RtrAcct>
</Document>`)

	msg, err := FromXML(doc)
	require.NoError(t, err)
	require.Len(t, msg.Reports, 1)
	require.NotNil(t, msg.Reports[0].Report)
	require.Len(t, msg.Reports[0].Report.Balances, 1)
	assert.True(t, msg.Reports[0].Report.Balances[0].Date.IsZero())

	// A balance without a date must not gain one on export.
	data, err := Serialize(msg)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "<Dt>")
	assert.NotContains(t, string(data), "0001-01-01")

	again, err := FromXML(data)
	require.NoError(t, err)
	assert.Equal(t, msg, again)
}

func TestFromXMLRejectsEmptyChoice(t *testing.T) {
	doc := []byte(`<Document xmlns="urn:iso:std:iso:20022:tech:xsd:camt.004.001.07">
  <RtrAcct>
    <MsgHdr><MsgId>R1</MsgId></MsgHdr>
    <RptOrErr><AcctRpt>
      <AcctId><Othr><Id>A1</Id></Othr></AcctId>
      <AcctOrErr/>
    </AcctRpt></RptOrErr>
  </RtrAcct>
</Document>`)

	_, err := FromXML(doc)
	var structErr *parsererror.InvalidStructureError
	require.ErrorAs(t, err, &structErr)
	assert.Contains(t, structErr.Reason, "neither")
}

func TestFromXMLRejectsForeignNamespace(t *testing.T) {
	doc := []byte(`<Document xmlns="urn:iso:std:iso:20022:tech:xsd:camt.006.001.07"><RtrAcct/></Document>`)
	_, err := FromXML(doc)
	var nsErr *parsererror.InvalidXMLNamespaceError
	assert.ErrorAs(t, err, &nsErr)
}

func TestXMLRoundTrip(t *testing.T) {
	msg, err := FromXML([]byte(sampleReturn))
	require.NoError(t, err)

	data, err := Serialize(msg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<IBAN>CH9300762011623852957</IBAN>")

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
