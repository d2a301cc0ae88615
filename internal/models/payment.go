package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentVariant selects the pain.001 flavour. Each variant fixes its
// currency and instrument codes.
type PaymentVariant string

const (
	VariantSWIFT PaymentVariant = "SWIFT"
	VariantSEPA  PaymentVariant = "SEPA"
	VariantACH   PaymentVariant = "ACH"
	VariantRTP   PaymentVariant = "RTP"
)

// Codes fixed per variant.
const (
	SEPAServiceLevel = "SEPA"
	RTPLocalInstr    = "RTP"
	ACHDefaultInstr  = "CCD"
	PaymentMethodTRF = "TRF"
	ChargeBearerSLEV = "SLEV"
)

// PaymentInstruction is a single credit instruction within an initiation.
// Direction is always credit for the supported variants.
type PaymentInstruction struct {
	ID                    string  `json:"id,omitempty"`
	EndToEndID            string  `json:"end_to_end_id,omitempty"`
	Amount                Money   `json:"amount"`
	Creditor              Party   `json:"creditor"`
	CreditorAccount       Account `json:"creditor_account"`
	CreditorAgent         *Agent  `json:"creditor_agent,omitempty"`
	RemittanceInformation string  `json:"remittance_information,omitempty"`
}

// CreditTransferMessage is a pain.001 customer credit transfer initiation.
// Constructed only through the variant constructors, which validate the
// variant's invariants once; serialization never re-validates.
type CreditTransferMessage struct {
	Variant                PaymentVariant       `json:"variant"`
	MessageID              string               `json:"message_id"`
	PaymentInformationID   string               `json:"payment_information_id"`
	CreationDate           time.Time            `json:"creation_date"`
	RequestedExecutionDate time.Time            `json:"requested_execution_date"`
	InitiatingParty        Party                `json:"initiating_party"`
	Debtor                 Party                `json:"debtor"`
	DebtorAccount          Account              `json:"debtor_account"`
	DebtorAgent            *Agent               `json:"debtor_agent,omitempty"`
	LocalInstrument        string               `json:"local_instrument,omitempty"`
	Instructions           []PaymentInstruction `json:"instructions"`
}

// Type implements Message.
func (m *CreditTransferMessage) Type() MessageType {
	switch m.Variant {
	case VariantSEPA:
		return MessageTypePain001SEPA
	case VariantACH:
		return MessageTypePain001ACH
	case VariantRTP:
		return MessageTypePain001RTP
	default:
		return MessageTypePain001SWIFT
	}
}

// ControlSum is the exact decimal sum of all instruction amounts, in major
// units. Mixed currencies are rejected at construction, which keeps this
// currency-unaware arithmetic sound.
func (m *CreditTransferMessage) ControlSum() decimal.Decimal {
	sum := decimal.Zero
	for _, instr := range m.Instructions {
		sum = sum.Add(instr.Amount.Decimal())
	}
	return sum
}

// Currency returns the (single) currency of the instructions, or "" when the
// message has none.
func (m *CreditTransferMessage) Currency() string {
	if len(m.Instructions) == 0 {
		return ""
	}
	return m.Instructions[0].Amount.Currency
}

// CreditTransferParams carries the caller-supplied fields for the variant
// constructors. MessageID and PaymentInformationID are generated when empty.
type CreditTransferParams struct {
	MessageID              string
	PaymentInformationID   string
	CreationDate           time.Time
	RequestedExecutionDate time.Time
	InitiatingParty        Party
	Debtor                 Party
	DebtorAccount          Account
	DebtorAgent            *Agent
	LocalInstrument        string
	Instructions           []PaymentInstruction
}

// NewSWIFTCreditTransfer builds a cross-border credit transfer initiation.
// Agents must be BIC-identified; any single currency is accepted.
func NewSWIFTCreditTransfer(p CreditTransferParams) (*CreditTransferMessage, error) {
	m := newCreditTransfer(VariantSWIFT, p)
	if err := m.validate("", AgentKindBIC); err != nil {
		return nil, err
	}
	return m, nil
}

// NewSEPACreditTransfer builds a SEPA credit transfer initiation. Instructions
// must be EUR and every creditor address must carry a country code.
func NewSEPACreditTransfer(p CreditTransferParams) (*CreditTransferMessage, error) {
	m := newCreditTransfer(VariantSEPA, p)
	if err := m.validate("EUR", AgentKindBIC); err != nil {
		return nil, err
	}
	for i, instr := range m.Instructions {
		if !instr.Creditor.HasCountry() {
			return nil, fmt.Errorf("SEPA instruction %d: creditor address must include a country", i)
		}
	}
	return m, nil
}

// NewACHCreditTransfer builds a US ACH credit transfer initiation. Instructions
// must be USD and agents routing-identified. The local instrument defaults to
// CCD when not supplied.
func NewACHCreditTransfer(p CreditTransferParams) (*CreditTransferMessage, error) {
	m := newCreditTransfer(VariantACH, p)
	if m.LocalInstrument == "" {
		m.LocalInstrument = ACHDefaultInstr
	}
	if err := m.validate("USD", AgentKindRouting); err != nil {
		return nil, err
	}
	return m, nil
}

// NewRTPCreditTransfer builds a US real-time payment initiation. Instructions
// must be USD, agents routing-identified, and the proprietary local
// instrument is fixed to RTP.
func NewRTPCreditTransfer(p CreditTransferParams) (*CreditTransferMessage, error) {
	m := newCreditTransfer(VariantRTP, p)
	m.LocalInstrument = RTPLocalInstr
	if err := m.validate("USD", AgentKindRouting); err != nil {
		return nil, err
	}
	return m, nil
}

func newCreditTransfer(variant PaymentVariant, p CreditTransferParams) *CreditTransferMessage {
	creation := p.CreationDate
	if creation.IsZero() {
		creation = time.Now().UTC()
	}
	execution := p.RequestedExecutionDate
	if execution.IsZero() {
		execution = creation
	}
	messageID := p.MessageID
	if messageID == "" {
		messageID = GenerateID()
	}
	paymentInfoID := p.PaymentInformationID
	if paymentInfoID == "" {
		paymentInfoID = GenerateID()
	}
	instructions := make([]PaymentInstruction, len(p.Instructions))
	copy(instructions, p.Instructions)
	for i := range instructions {
		if instructions[i].EndToEndID == "" {
			instructions[i].EndToEndID = GenerateID()
		}
	}
	return &CreditTransferMessage{
		Variant:                variant,
		MessageID:              messageID,
		PaymentInformationID:   paymentInfoID,
		CreationDate:           creation,
		RequestedExecutionDate: execution,
		InitiatingParty:        p.InitiatingParty,
		Debtor:                 p.Debtor,
		DebtorAccount:          p.DebtorAccount,
		DebtorAgent:            p.DebtorAgent,
		LocalInstrument:        p.LocalInstrument,
		Instructions:           instructions,
	}
}

// validate enforces the invariants shared by all variants plus the variant's
// fixed currency and agent scheme. An empty fixedCurrency accepts any single
// currency.
func (m *CreditTransferMessage) validate(fixedCurrency string, agentKind AgentKind) error {
	if len(m.Instructions) == 0 {
		return fmt.Errorf("%s initiation requires at least one instruction", m.Variant)
	}
	if m.DebtorAccount.IsZero() {
		return fmt.Errorf("%s initiation requires a debtor account", m.Variant)
	}
	if err := m.DebtorAccount.Validate(); err != nil {
		return fmt.Errorf("debtor account: %w", err)
	}
	if m.DebtorAgent != nil {
		if err := m.DebtorAgent.Validate(); err != nil {
			return fmt.Errorf("debtor agent: %w", err)
		}
		if m.DebtorAgent.Kind != agentKind {
			return fmt.Errorf("%s initiation requires a %s-identified debtor agent", m.Variant, agentKind)
		}
	}

	first := m.Instructions[0].Amount.Currency
	for i, instr := range m.Instructions {
		if instr.Creditor.IsZero() {
			return fmt.Errorf("instruction %d: creditor is required for credit instructions", i)
		}
		if instr.CreditorAccount.IsZero() {
			return fmt.Errorf("instruction %d: creditor account is required", i)
		}
		if err := instr.CreditorAccount.Validate(); err != nil {
			return fmt.Errorf("instruction %d: creditor account: %w", i, err)
		}
		if instr.CreditorAgent != nil {
			if err := instr.CreditorAgent.Validate(); err != nil {
				return fmt.Errorf("instruction %d: creditor agent: %w", i, err)
			}
			if instr.CreditorAgent.Kind != agentKind {
				return fmt.Errorf("%s instruction %d requires a %s-identified creditor agent", m.Variant, i, agentKind)
			}
		}
		if instr.Amount.Currency != first {
			return fmt.Errorf("mixed currencies in one initiation: %s and %s", first, instr.Amount.Currency)
		}
	}
	if fixedCurrency != "" && first != fixedCurrency {
		return fmt.Errorf("%s initiation requires %s amounts, got %s", m.Variant, fixedCurrency, first)
	}
	return nil
}
