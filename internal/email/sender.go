// Package email implements the outbound notification sender for form
// submissions. Each relay kind has its own notification payload and HTML
// template; delivery goes over the site's SMTP account.
package email

import (
	"context"
	"fmt"

	"kynetic_backend/platform/config"
)

// ContactNotification carries the fields of a contact form submission.
// The Norwegian contact variant adds company, org number and requested service.
type ContactNotification struct {
	Name             string
	Email            string
	Phone            string
	Message          string
	Company          string
	OrgNumber        string
	ServiceRequested string
	ExtraNotes       string
}

// CalculatorNotification carries the fields of a price calculator submission.
type CalculatorNotification struct {
	Name           string
	Email          string
	Phone          string
	ProjectType    string
	EstimatedPrice string
}

// NewsletterNotification carries the fields of a newsletter signup.
type NewsletterNotification struct {
	Name  string
	Email string
}

// PriceQuoteNotification carries the fields of a full price-quote request.
type PriceQuoteNotification struct {
	Name              string
	Company           string
	Email             string
	Phone             string
	SiteType          string
	PageCount         string
	DesignPreferences []string
	Integrations      []string
	BudgetBand        string
	ExtraNotes        string
}

// Sender delivers one notification email per attempted form submission.
// Implementations make exactly one delivery attempt; retrying is the
// caller's decision (and the relay endpoints never retry).
type Sender interface {
	SendContactNotification(ctx context.Context, n ContactNotification) error
	SendCalculatorNotification(ctx context.Context, n CalculatorNotification) error
	SendNewsletterNotification(ctx context.Context, n NewsletterNotification) error
	SendPriceQuoteNotification(ctx context.Context, n PriceQuoteNotification) error
}

// Config combines the config interfaces the sender needs.
type Config interface {
	config.SMTPConfig
	config.NotifyConfig
}

// NewSender creates the SMTP-backed sender. Destination and sender addresses
// come from configuration, never from the request.
func NewSender(cfg Config) (Sender, error) {
	if cfg.GetSMTPHost() == "" || cfg.GetEmailFromAddress() == "" {
		return nil, fmt.Errorf("smtp sender: SMTP_HOST and SMTP_FROM must be configured")
	}
	if cfg.GetContactEmail() == "" {
		return nil, fmt.Errorf("smtp sender: CONTACT_EMAIL must be configured")
	}

	return &SMTPSender{
		host:      cfg.GetSMTPHost(),
		port:      cfg.GetSMTPPort(),
		username:  cfg.GetSMTPUser(),
		password:  cfg.GetSMTPPassword(),
		fromName:  cfg.GetEmailFromName(),
		fromEmail: cfg.GetEmailFromAddress(),
		toEmail:   cfg.GetContactEmail(),
		siteName:  cfg.GetSiteName(),
	}, nil
}
