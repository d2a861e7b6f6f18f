package submissions

import (
	"kynetic_backend/internal/submissions/transport"
)

// Synonym keys per logical field, English spelling first. Resolution takes
// the first non-empty value, so an English key beats its Norwegian twin
// when a payload carries both.
var (
	nameKeys           = []string{"name", "navn"}
	emailKeys          = []string{"email", "epost", "e-post"}
	phoneKeys          = []string{"phone", "telefon"}
	messageKeys        = []string{"message", "melding", "ekstra"}
	projectTypeKeys    = []string{"projectType", "prosjekttype"}
	estimatedPriceKeys = []string{"estimatedPrice", "estimertPris"}
	companyKeys        = []string{"company", "bedrift"}
	orgNumberKeys      = []string{"orgNumber", "orgnr"}
	serviceKeys        = []string{"service", "tjeneste"}
	siteTypeKeys       = []string{"siteType", "type"}
	pageCountKeys      = []string{"pageCount", "pages", "sider"}
	designKeys         = []string{"designPreferences", "design"}
	integrationKeys    = []string{"integrations", "integrasjoner"}
	budgetKeys         = []string{"budgetBand", "budget", "budsjett"}
	extraNotesKeys     = []string{"extraNotes", "ekstra"}
)

// Normalize resolves a parsed payload into the canonical submission for the
// given kind. Values pass through untouched; fields absent from the payload
// stay zero-valued.
//
// The mapping is kind-aware because two raw keys are overloaded across
// forms: "type" is the site type on the price-quote form but the kind
// discriminator on the generic send form, and "ekstra" is the free-text
// message on the contact form but supplementary notes on the price-quote
// form.
func Normalize(kind transport.Kind, p Payload) transport.CanonicalSubmission {
	sub := transport.CanonicalSubmission{
		Name:           p.First(nameKeys...),
		Email:          p.First(emailKeys...),
		Phone:          p.First(phoneKeys...),
		Company:        p.First(companyKeys...),
		OrgNumber:      p.First(orgNumberKeys...),
		ProjectType:    p.First(projectTypeKeys...),
		EstimatedPrice: p.First(estimatedPriceKeys...),
	}

	if kind == transport.KindPriceQuote {
		sub.SiteType = p.First(siteTypeKeys...)
		sub.PageCount = p.First(pageCountKeys...)
		sub.DesignPreferences = p.FirstList(designKeys...)
		sub.Integrations = p.FirstList(integrationKeys...)
		sub.BudgetBand = p.First(budgetKeys...)
		sub.ExtraNotes = p.First(extraNotesKeys...)
		return sub
	}

	sub.Message = p.First(messageKeys...)
	sub.ServiceRequested = p.First(serviceKeys...)
	return sub
}
