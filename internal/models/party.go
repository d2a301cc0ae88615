package models

import "strings"

// PostalAddress is a structured postal address as carried by ISO 20022
// party blocks.
type PostalAddress struct {
	Street         string `json:"street,omitempty"`
	BuildingNumber string `json:"building_number,omitempty"`
	Town           string `json:"town,omitempty"`
	Subdivision    string `json:"subdivision,omitempty"`
	PostalCode     string `json:"postal_code,omitempty"`
	Country        string `json:"country,omitempty"`
}

// IsZero reports whether no address field is set.
func (a PostalAddress) IsZero() bool {
	return a == PostalAddress{}
}

// Party is a named counterparty: debtor, creditor, initiator or recipient.
// All fields except the name are optional in practice.
type Party struct {
	ID      string         `json:"id,omitempty"`
	Name    string         `json:"name,omitempty"`
	Address *PostalAddress `json:"address,omitempty"`
	Account *Account       `json:"account,omitempty"`
	Agent   *Agent         `json:"agent,omitempty"`
}

// NewParty creates a Party with just a name.
func NewParty(name string) Party {
	return Party{Name: strings.TrimSpace(name)}
}

// IsZero reports whether the party carries no information at all.
func (p Party) IsZero() bool {
	return p.ID == "" && p.Name == "" && p.Address == nil && p.Account == nil && p.Agent == nil
}

// HasCountry reports whether the party's address carries a country code.
// SEPA instructions require this on the creditor.
func (p Party) HasCountry() bool {
	return p.Address != nil && p.Address.Country != ""
}
