package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"kynetic_backend/platform/phone"
)

//go:embed templates/*.html
var templateFS embed.FS

type contactEmailData struct {
	SiteName         string
	Name             string
	Email            string
	Phone            string
	Message          string
	Company          string
	OrgNumber        string
	ServiceRequested string
	ExtraNotes       string
}

type calculatorEmailData struct {
	Name           string
	Email          string
	Phone          string
	ProjectType    string
	EstimatedPrice string
}

type newsletterEmailData struct {
	Name  string
	Email string
}

type priceQuoteEmailData struct {
	Name       string
	Company    string
	Email      string
	Phone      string
	SiteType   string
	PageCount  string
	// Design and Integrations are pre-joined; an empty list renders as an
	// empty label line rather than being dropped.
	Design       string
	Integrations string
	BudgetBand   string
	ExtraNotes   string
}

func newPriceQuoteEmailData(n PriceQuoteNotification) priceQuoteEmailData {
	extra := n.ExtraNotes
	if extra == "" {
		extra = "Ingen"
	}
	return priceQuoteEmailData{
		Name:         n.Name,
		Company:      n.Company,
		Email:        n.Email,
		Phone:        phone.NormalizeE164(n.Phone),
		SiteType:     n.SiteType,
		PageCount:    n.PageCount,
		Design:       strings.Join(n.DesignPreferences, ", "),
		Integrations: strings.Join(n.Integrations, ", "),
		BudgetBand:   n.BudgetBand,
		ExtraNotes:   extra,
	}
}

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

func renderEmailTemplate(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render email template %s: %w", name, err)
	}
	return buf.String(), nil
}
