package camt053

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/iso20022/internal/models"
	"fjacquet/iso20022/internal/parsererror"
)

const sampleStatement = `<?xml version="1.0" encoding="UTF-8"?>
<Document xmlns="urn:iso:std:iso:20022:tech:xsd:camt.053.001.02" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
  <BkToCstmrStmt>
    <GrpHdr>
      <MsgId>STMT-2024-001</MsgId>
      <CreDtTm>2024-03-01T06:00:00Z</CreDtTm>
    </GrpHdr>
    <Stmt>
      <Id>0352-2024-03-01</Id>
      <ElctrncSeqNb>61</ElctrncSeqNb>
      <CreDtTm>2024-03-01T06:00:00Z</CreDtTm>
      <Acct>
        <Id>
          <Othr>
            <Id>000123456789</Id>
          </Othr>
        </Id>
        <Tp>
          <Cd>CACC</Cd>
        </Tp>
        <Ccy>USD</Ccy>
        <Ownr>
          <Nm>ACME Corporation</Nm>
        </Ownr>
        <Svcr>
          <FinInstnId>
            <BIC>BOFAUS3NXXX</BIC>
          </FinInstnId>
        </Svcr>
      </Acct>
      <TxsSummry>
        <TtlNtries>
          <NbOfNtries>14</NbOfNtries>
          <Sum>140</Sum>
        </TtlNtries>
      </TxsSummry>
      <Bal>
        <Tp>
          <CdOrPrtry>
            <Cd>OPBD</Cd>
          </CdOrPrtry>
        </Tp>
        <Amt Ccy="USD">4000.00</Amt>
        <CdtDbtInd>CRDT</CdtDbtInd>
        <Dt>
          <Dt>2024-02-29</Dt>
        </Dt>
      </Bal>
      <Bal>
        <Tp>
          <CdOrPrtry>
            <Cd>CLBD</Cd>
          </CdOrPrtry>
        </Tp>
        <Amt Ccy="USD">3990.00</Amt>
        <CdtDbtInd>CRDT</CdtDbtInd>
        <Dt>
          <Dt>2024-03-01</Dt>
        </Dt>
      </Bal>
      <Ntry>
        <Amt Ccy="USD">10.00</Amt>
        <CdtDbtInd>DBIT</CdtDbtInd>
        <RvslInd>false</RvslInd>
        <Sts>BOOK</Sts>
        <BookgDt>
          <Dt>2024-03-01</Dt>
        </BookgDt>
        <ValDt>
          <Dt>2024-03-01</Dt>
        </ValDt>
        <AcctSvcrRef>REF-100</AcctSvcrRef>
        <BkTxCd>
          <Prtry>
            <Cd>ACH Credit Reject</Cd>
          </Prtry>
        </BkTxCd>
        <NtryDtls>
          <TxDtls>
            <Refs>
              <EndToEndId>E2E-42</EndToEndId>
            </Refs>
            <RltdPties>
              <Cdtr>
                <Nm>Globex Inc</Nm>
              </Cdtr>
              <CdtrAcct>
                <Id>
                  <IBAN>DE89370400440532013000</IBAN>
                </Id>
              </CdtrAcct>
            </RltdPties>
            <RmtInf>
              <Ustrd>Invoice 8831</Ustrd>
            </RmtInf>
          </TxDtls>
        </NtryDtls>
        <AddtlNtryInf>Returned item</AddtlNtryInf>
      </Ntry>
    </Stmt>
  </BkToCstmrStmt>
</Document>`

func TestFromXML(t *testing.T) {
	msg, err := FromXML([]byte(sampleStatement))
	require.NoError(t, err)

	assert.Equal(t, "STMT-2024-001", msg.MessageID)
	assert.Equal(t, models.MessageTypeCamt053, msg.Type())
	require.Len(t, msg.Statements, 1)

	stmt := msg.Statements[0]
	assert.Equal(t, "0352-2024-03-01", stmt.ID)
	assert.Equal(t, "61", stmt.ElectronicSequence)
	assert.Equal(t, models.AccountKindLocal, stmt.Account.Kind)
	assert.Equal(t, "000123456789", stmt.Account.Number)
	assert.Equal(t, models.AccountTypeChecking, stmt.Account.Type)
	assert.Equal(t, "ACME Corporation", stmt.AccountOwner)
	require.NotNil(t, stmt.Agent)
	assert.Equal(t, "BOFAUS3NXXX", stmt.Agent.BIC)

	require.NotNil(t, stmt.Totals)
	assert.Equal(t, 14, stmt.Totals.Count)
	require.NotNil(t, stmt.Totals.Sum)
	assert.Equal(t, int64(14000), stmt.Totals.Sum.MinorUnits)

	require.Len(t, stmt.Balances, 2)
	opening := stmt.Balance(models.BalanceOpeningBooked)
	require.NotNil(t, opening)
	assert.Equal(t, int64(400000), opening.Amount.MinorUnits)
	assert.Equal(t, models.Credit, opening.CreditDebit)
	closing := stmt.Balance(models.BalanceClosingBooked)
	require.NotNil(t, closing)
	assert.Equal(t, int64(399000), closing.Amount.MinorUnits)

	require.Len(t, stmt.Entries, 1)
	entry := stmt.Entries[0]
	assert.Equal(t, models.Money{MinorUnits: 1000, Currency: "USD"}, entry.Amount)
	assert.Equal(t, models.Debit, entry.CreditDebit)
	assert.False(t, entry.Reversal)
	assert.Equal(t, "BOOK", entry.Status)
	assert.Equal(t, "ACH Credit Reject", entry.ProprietaryCode)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), entry.BookingDate)
	assert.Equal(t, "Returned item", entry.AdditionalInformation)

	require.Len(t, entry.Transactions, 1)
	tx := entry.Transactions[0]
	assert.Equal(t, "E2E-42", tx.EndToEndID)
	assert.Equal(t, "Invoice 8831", tx.RemittanceInformation)
	require.NotNil(t, tx.Creditor)
	assert.Equal(t, "Globex Inc", tx.Creditor.Name)
	require.NotNil(t, tx.Creditor.Account)
	assert.Equal(t, "DE89370400440532013000", tx.Creditor.Account.IBAN)
}

func TestFromXMLAcceptsAnyMinorVersion(t *testing.T) {
	doc := []byte(`<?xml version="1.0"?>
<Document xmlns="urn:iso:std:iso:20022:tech:xsd:camt.053.001.08">
  <BkToCstmrStmt>
    <GrpHdr><MsgId>M1</MsgId><CreDtTm>2024-01-01T00:00:00Z</CreDtTm></GrpHdr>
    <Stmt>
      <Id>S1</Id>
      <CreDtTm>2024-01-01T00:00:00Z</CreDtTm>
      <Acct><Id><IBAN>CH9300762011623852957</IBAN></Id></Acct>
    </Stmt>
  </BkToCstmrStmt>
</Document>`)

	msg, err := FromXML(doc)
	require.NoError(t, err)
	assert.Equal(t, "M1", msg.MessageID)
}

func TestFromXMLRejectsForeignNamespace(t *testing.T) {
	doc := []byte(`<?xml version="1.0"?>
<Document xmlns="urn:iso:std:iso:20022:tech:xsd:pain.002.001.03">
  <BkToCstmrStmt>
    <GrpHdr><MsgId>M1</MsgId><CreDtTm>2024-01-01T00:00:00Z</CreDtTm></GrpHdr>
  </BkToCstmrStmt>
</Document>`)

	_, err := FromXML(doc)
	var nsErr *parsererror.InvalidXMLNamespaceError
	require.ErrorAs(t, err, &nsErr)
	assert.Equal(t, "urn:iso:std:iso:20022:tech:xsd:camt.053.001.", nsErr.ExpectedPrefix)
}

func TestFromXMLRejectsMalformedXML(t *testing.T) {
	_, err := FromXML([]byte("<Document><BkToCstmrStmt>"))
	var xmlErr *parsererror.InvalidXMLError
	assert.ErrorAs(t, err, &xmlErr)
}

func TestFromXMLStructuralErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		path string
	}{
		{
			name: "MissingMessageID",
			doc: `<Document xmlns="urn:iso:std:iso:20022:tech:xsd:camt.053.001.02">
  <BkToCstmrStmt><GrpHdr><CreDtTm>2024-01-01T00:00:00Z</CreDtTm></GrpHdr>
  <Stmt><Id>S1</Id><CreDtTm>2024-01-01T00:00:00Z</CreDtTm>
  <Acct><Id><IBAN>CH9300762011623852957</IBAN></Id></Acct></Stmt></BkToCstmrStmt>
</Document>`,
			path: "BkToCstmrStmt.GrpHdr.MsgId",
		},
		{
			name: "NoStatements",
			doc: `<Document xmlns="urn:iso:std:iso:20022:tech:xsd:camt.053.001.02">
  <BkToCstmrStmt><GrpHdr><MsgId>M1</MsgId><CreDtTm>2024-01-01T00:00:00Z</CreDtTm></GrpHdr></BkToCstmrStmt>
</Document>`,
			path: "BkToCstmrStmt.Stmt",
		},
		{
			name: "MissingAccount",
			doc: `<Document xmlns="urn:iso:std:iso:20022:tech:xsd:camt.053.001.02">
  <BkToCstmrStmt><GrpHdr><MsgId>M1</MsgId><CreDtTm>2024-01-01T00:00:00Z</CreDtTm></GrpHdr>
  <Stmt><Id>S1</Id><CreDtTm>2024-01-01T00:00:00Z</CreDtTm></Stmt></BkToCstmrStmt>
</Document>`,
			path: "Stmt.Acct.Id",
		},
		{
			name: "BalanceWithoutCurrency",
			doc: `<Document xmlns="urn:iso:std:iso:20022:tech:xsd:camt.053.001.02">
  <BkToCstmrStmt><GrpHdr><MsgId>M1</MsgId><CreDtTm>2024-01-01T00:00:00Z</CreDtTm></GrpHdr>
  <Stmt><Id>S1</Id><CreDtTm>2024-01-01T00:00:00Z</CreDtTm>
  <Acct><Id><IBAN>CH9300762011623852957</IBAN></Id></Acct>
  <Bal><Tp><CdOrPrtry><Cd>OPBD</Cd></CdOrPrtry></Tp><Amt>100.00</Amt>
  <CdtDbtInd>CRDT</CdtDbtInd><Dt><Dt>2024-01-01</Dt></Dt></Bal></Stmt></BkToCstmrStmt>
</Document>`,
			path: "Stmt.Bal.Amt",
		},
		{
			name: "EntryWithoutBookingDate",
			doc: `<Document xmlns="urn:iso:std:iso:20022:tech:xsd:camt.053.001.02">
  <BkToCstmrStmt><GrpHdr><MsgId>M1</MsgId><CreDtTm>2024-01-01T00:00:00Z</CreDtTm></GrpHdr>
  <Stmt><Id>S1</Id><CreDtTm>2024-01-01T00:00:00Z</CreDtTm>
  <Acct><Id><IBAN>CH9300762011623852957</IBAN></Id></Acct>
  <Ntry><Amt Ccy="CHF">5.00</Amt><CdtDbtInd>CRDT</CdtDbtInd></Ntry></Stmt></BkToCstmrStmt>
</Document>`,
			path: "Stmt.Ntry.BookgDt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromXML([]byte(tt.doc))
			var structErr *parsererror.InvalidStructureError
			require.ErrorAs(t, err, &structErr)
			assert.Equal(t, tt.path, structErr.Path)
		})
	}
}

func TestXMLRoundTrip(t *testing.T) {
	msg, err := FromXML([]byte(sampleStatement))
	require.NoError(t, err)

	data, err := Serialize(msg)
	require.NoError(t, err)
	assert.Contains(t, string(data), `xmlns="urn:iso:std:iso:20022:tech:xsd:camt.053.001.02"`)
	assert.Contains(t, string(data), `<Amt Ccy="USD">10.00</Amt>`)

	again, err := FromXML(data)
	require.NoError(t, err)
	assert.Equal(t, msg, again)
}

func TestJSONRoundTrip(t *testing.T) {
	msg, err := FromXML([]byte(sampleStatement))
	require.NoError(t, err)

	data, err := ToJSON(msg)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Document"`)
	assert.Contains(t, string(data), `"@_Ccy"`)

	again, err := FromJSON(data)
	require.NoError(t, err)
	assert.Equal(t, msg, again)
}
