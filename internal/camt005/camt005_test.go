package camt005

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/iso20022/internal/models"
	"fjacquet/iso20022/internal/parsererror"
)

const sampleQuery = `<?xml version="1.0" encoding="UTF-8"?>
<Document xmlns="urn:iso:std:iso:20022:tech:xsd:camt.005.001.07">
  <GetTx>
    <MsgHdr>
      <MsgId>QRY-TX-1</MsgId>
    </MsgHdr>
    <TxQryDef>
      <TxCrit>
        <NewCrit>
          <SchCrit>
            <AcctId>
              <EQ>
                <Othr>
                  <Id>000123456789</Id>
                </Othr>
              </EQ>
            </AcctId>
          </SchCrit>
        </NewCrit>
      </TxCrit>
    </TxQryDef>
  </GetTx>
</Document>`

func TestFromXML(t *testing.T) {
	msg, err := FromXML([]byte(sampleQuery))
	require.NoError(t, err)

	assert.Equal(t, "QRY-TX-1", msg.MessageID)
	require.Len(t, msg.Criteria, 1)
	require.NotNil(t, msg.Criteria[0].Account)
	assert.Equal(t, models.MatchEqual, msg.Criteria[0].Account.Kind)
	assert.True(t, msg.Criteria[0].Account.Matches("000123456789"))
	assert.False(t, msg.Criteria[0].Account.Matches("000123456789X"))
}

func TestFromXMLWithoutCriteria(t *testing.T) {
	doc := []byte(`<Document xmlns="urn:iso:std:iso:20022:tech:xsd:camt.005.001.07">
  <GetTx><MsgHdr><MsgId>Q-ALL</MsgId></MsgHdr></GetTx>
</Document>`)

	msg, err := FromXML(doc)
	require.NoError(t, err)
	assert.Empty(t, msg.Criteria)
}

func TestFromXMLRejectsForeignNamespace(t *testing.T) {
	doc := []byte(`<Document xmlns="urn:iso:std:iso:20022:tech:xsd:camt.003.001.06"><GetTx/></Document>`)
	_, err := FromXML(doc)
	var nsErr *parsererror.InvalidXMLNamespaceError
	assert.ErrorAs(t, err, &nsErr)
}

func TestXMLRoundTrip(t *testing.T) {
	msg, err := FromXML([]byte(sampleQuery))
	require.NoError(t, err)

	data, err := Serialize(msg)
	require.NoError(t, err)
	assert.Contains(t, string(data), `xmlns="urn:iso:std:iso:20022:tech:xsd:camt.005.001.07"`)

	again, err := FromXML(data)
	require.NoError(t, err)
	assert.Equal(t, msg, again)
}

func TestJSONRoundTrip(t *testing.T) {
	msg, err := FromXML([]byte(sampleQuery))
	require.NoError(t, err)

	data, err := ToJSON(msg)
	require.NoError(t, err)

	again, err := FromJSON(data)
	require.NoError(t, err)
	assert.Equal(t, msg, again)
}
