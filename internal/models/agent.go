package models

import "fmt"

// AgentKind discriminates the two agent identification schemes. As with
// Account, exactly one scheme is populated per Agent. Real-world documents
// occasionally carry both a BIC and a clearing-system member id; this model
// deliberately keeps only one, preferring the BIC.
type AgentKind string

const (
	AgentKindBIC     AgentKind = "bic"
	AgentKindRouting AgentKind = "routing"
)

// Agent identifies a financial institution either by BIC or by a national
// clearing / ABA routing number.
type Agent struct {
	Kind AgentKind `json:"kind"`

	// BIC variant
	BIC     string         `json:"bic,omitempty"`
	Address *PostalAddress `json:"address,omitempty"`

	// Routing variant
	RoutingNumber string `json:"routing_number,omitempty"`
}

// NewBICAgent creates the BIC variant. The bank's postal address is optional.
func NewBICAgent(bic string, address *PostalAddress) (Agent, error) {
	if bic == "" {
		return Agent{}, fmt.Errorf("BIC is required")
	}
	return Agent{Kind: AgentKindBIC, BIC: bic, Address: address}, nil
}

// NewRoutingAgent creates the routing-number variant.
func NewRoutingAgent(routingNumber string) (Agent, error) {
	if routingNumber == "" {
		return Agent{}, fmt.Errorf("routing number is required")
	}
	return Agent{Kind: AgentKindRouting, RoutingNumber: routingNumber}, nil
}

// IsZero reports whether the agent is unset.
func (a Agent) IsZero() bool {
	return a.Kind == ""
}

// Validate checks the single-variant invariant.
func (a Agent) Validate() error {
	switch a.Kind {
	case AgentKindBIC:
		if a.BIC == "" {
			return fmt.Errorf("BIC agent without BIC")
		}
		if a.RoutingNumber != "" {
			return fmt.Errorf("BIC agent carries a routing number")
		}
	case AgentKindRouting:
		if a.RoutingNumber == "" {
			return fmt.Errorf("routing agent without routing number")
		}
		if a.BIC != "" {
			return fmt.Errorf("routing agent carries a BIC")
		}
	default:
		return fmt.Errorf("agent has no identification scheme")
	}
	return nil
}
