// Package transport defines the wire-level types of the submissions module.
// The canonical submission lives here so that other modules (ledger, events)
// can reference it without importing the relay logic.
package transport

// Kind identifies which form a submission came from. It determines the
// required-field policy and the notification template.
type Kind string

const (
	KindContact    Kind = "contact"
	KindCalculator Kind = "calculator"
	KindNewsletter Kind = "newsletter"
	KindPriceQuote Kind = "price-quote"
)

// Valid reports whether k is one of the known submission kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindContact, KindCalculator, KindNewsletter, KindPriceQuote:
		return true
	}
	return false
}

// CanonicalSubmission is the normalized, language- and transport-independent
// form of one submission. A zero value means the field was absent from the
// payload; values are passed through exactly as submitted.
type CanonicalSubmission struct {
	Name             string   `json:"name,omitempty"`
	Email            string   `json:"email,omitempty"`
	Phone            string   `json:"phone,omitempty"`
	Message          string   `json:"message,omitempty"`
	ProjectType      string   `json:"projectType,omitempty"`
	EstimatedPrice   string   `json:"estimatedPrice,omitempty"`
	Company          string   `json:"company,omitempty"`
	OrgNumber        string   `json:"orgNumber,omitempty"`
	ServiceRequested string   `json:"serviceRequested,omitempty"`
	SiteType         string   `json:"siteType,omitempty"`
	PageCount        string   `json:"pageCount,omitempty"`
	DesignPreferences []string `json:"designPreferences,omitempty"`
	Integrations     []string `json:"integrations,omitempty"`
	BudgetBand       string   `json:"budgetBand,omitempty"`
	ExtraNotes       string   `json:"extraNotes,omitempty"`
}

// RelayResponse is returned by every relay endpoint on success.
type RelayResponse struct {
	Success bool `json:"success"`
}
