// Package fieldutils converts the recurring ISO 20022 substructures between
// the raw document layer and the domain model. These helpers assume the
// caller has already confirmed the relevant substructure exists: missing
// sub-fields propagate as zero values / nil, and it is the message mapper's
// job to reject a document whose domain-required field came back empty.
package fieldutils

import (
	"strings"

	"fjacquet/iso20022/internal/isodoc"
	"fjacquet/iso20022/internal/models"
)

// ISO 20022 cash-account type codes mapped to the domain type tags.
const (
	accountTypeCodeChecking = "CACC"
	accountTypeCodeSavings  = "SVGS"
)

// ParseAccount maps the IBAN-or-other account identification. The IBAN
// variant wins when present; otherwise the local variant is built from the
// other-identification, type, currency and display name.
func ParseAccount(id isodoc.AccountID, tp *isodoc.AccountType, ccy, name string) models.Account {
	if id.IBAN != "" {
		return models.Account{Kind: models.AccountKindIBAN, IBAN: id.IBAN}
	}
	if id.Othr == nil || id.Othr.ID == "" {
		return models.Account{}
	}
	return models.Account{
		Kind:     models.AccountKindLocal,
		Number:   id.Othr.ID,
		Type:     parseAccountType(tp),
		Currency: ccy,
		Name:     name,
	}
}

// ParseCashAccount maps the shared cash-account shape, or nil when absent.
func ParseCashAccount(acct *isodoc.CashAccount) *models.Account {
	if acct == nil {
		return nil
	}
	parsed := ParseAccount(acct.ID, acct.Tp, acct.Ccy, acct.Nm)
	if parsed.IsZero() {
		return nil
	}
	return &parsed
}

// ExportAccount is the exact inverse of ParseAccount, choosing the XML shape
// from the populated variant.
func ExportAccount(account models.Account) (isodoc.AccountID, *isodoc.AccountType, string, string) {
	switch account.Kind {
	case models.AccountKindIBAN:
		return isodoc.AccountID{IBAN: account.IBAN}, nil, "", ""
	case models.AccountKindLocal:
		return isodoc.AccountID{Othr: &isodoc.OtherID{ID: account.Number}},
			exportAccountType(account.Type), account.Currency, account.Name
	}
	return isodoc.AccountID{}, nil, "", ""
}

// ExportCashAccount renders an optional account back to the shared shape.
func ExportCashAccount(account *models.Account) *isodoc.CashAccount {
	if account == nil {
		return nil
	}
	id, tp, ccy, name := ExportAccount(*account)
	return &isodoc.CashAccount{ID: id, Tp: tp, Ccy: ccy, Nm: name}
}

func parseAccountType(tp *isodoc.AccountType) models.AccountType {
	if tp == nil {
		return ""
	}
	code := tp.Cd
	if code == "" {
		code = tp.Prtry
	}
	switch code {
	case accountTypeCodeChecking:
		return models.AccountTypeChecking
	case accountTypeCodeSavings:
		return models.AccountTypeSavings
	}
	return ""
}

func exportAccountType(t models.AccountType) *isodoc.AccountType {
	switch t {
	case models.AccountTypeChecking:
		return &isodoc.AccountType{Cd: accountTypeCodeChecking}
	case models.AccountTypeSavings:
		return &isodoc.AccountType{Cd: accountTypeCodeSavings}
	}
	return nil
}

// ParseAgent maps a financial institution identification. BIC wins; the
// fallback is the clearing-system member id, then the other-identification,
// as the routing number. Documents carrying both a BIC and a routing id keep
// only the BIC.
func ParseAgent(agent *isodoc.Agent) *models.Agent {
	if agent == nil {
		return nil
	}
	fin := agent.FinInstnID
	if fin.BIC != "" {
		return &models.Agent{
			Kind:    models.AgentKindBIC,
			BIC:     fin.BIC,
			Address: ParsePostalAddress(fin.PstlAdr),
		}
	}
	if fin.ClrSysMmbID != nil && fin.ClrSysMmbID.MmbID != "" {
		return &models.Agent{Kind: models.AgentKindRouting, RoutingNumber: fin.ClrSysMmbID.MmbID}
	}
	if fin.Othr != nil && fin.Othr.ID != "" {
		return &models.Agent{Kind: models.AgentKindRouting, RoutingNumber: fin.Othr.ID}
	}
	return nil
}

// ExportAgent is the symmetric inverse of ParseAgent.
func ExportAgent(agent *models.Agent) *isodoc.Agent {
	if agent == nil {
		return nil
	}
	switch agent.Kind {
	case models.AgentKindBIC:
		return &isodoc.Agent{FinInstnID: isodoc.FinancialInstitution{
			BIC:     agent.BIC,
			PstlAdr: ExportPostalAddress(agent.Address),
		}}
	case models.AgentKindRouting:
		return &isodoc.Agent{FinInstnID: isodoc.FinancialInstitution{
			ClrSysMmbID: &isodoc.ClearingMember{MmbID: agent.RoutingNumber},
		}}
	}
	return nil
}

// ParsePostalAddress maps the structured address, or nil when empty.
func ParsePostalAddress(addr *isodoc.PostalAddress) *models.PostalAddress {
	if addr == nil {
		return nil
	}
	parsed := models.PostalAddress{
		Street:         addr.StrtNm,
		BuildingNumber: addr.BldgNb,
		Town:           addr.TwnNm,
		Subdivision:    addr.CtrySubDvsn,
		PostalCode:     addr.PstCd,
		Country:        addr.Ctry,
	}
	if parsed.IsZero() {
		return nil
	}
	return &parsed
}

// ExportPostalAddress is the inverse of ParsePostalAddress.
func ExportPostalAddress(addr *models.PostalAddress) *isodoc.PostalAddress {
	if addr == nil {
		return nil
	}
	return &isodoc.PostalAddress{
		StrtNm:      addr.Street,
		BldgNb:      addr.BuildingNumber,
		TwnNm:       addr.Town,
		CtrySubDvsn: addr.Subdivision,
		PstCd:       addr.PostalCode,
		Ctry:        addr.Country,
	}
}

// ParseParty maps the recurring party shape: organisation id nested under
// the other-identification sub-path, name, and postal address.
func ParseParty(party *isodoc.Party) *models.Party {
	if party == nil {
		return nil
	}
	parsed := models.Party{
		Name:    party.Nm,
		Address: ParsePostalAddress(party.PstlAdr),
	}
	if party.ID != nil && party.ID.OrgID != nil && party.ID.OrgID.Othr != nil {
		parsed.ID = party.ID.OrgID.Othr.ID
	}
	if parsed.IsZero() {
		return nil
	}
	return &parsed
}

// ExportParty is the inverse of ParseParty.
func ExportParty(party *models.Party) *isodoc.Party {
	if party == nil {
		return nil
	}
	exported := isodoc.Party{
		Nm:      party.Name,
		PstlAdr: ExportPostalAddress(party.Address),
	}
	if party.ID != "" {
		exported.ID = &isodoc.PartyID{OrgID: &isodoc.OrgID{Othr: &isodoc.OtherID{ID: party.ID}}}
	}
	return &exported
}

// JoinAdditionalInfo normalizes the one-or-many free-text lines of an
// additional-information field into a single newline-joined string, or ""
// when absent.
func JoinAdditionalInfo(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n")
}

// SplitAdditionalInfo is the inverse of JoinAdditionalInfo: it restores the
// ordered free-text lines, or nil for an empty string.
func SplitAdditionalInfo(joined string) []string {
	if joined == "" {
		return nil
	}
	return strings.Split(joined, "\n")
}
