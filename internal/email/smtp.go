package email

import (
	"context"
	"fmt"
	"net"
	"time"

	"kynetic_backend/platform/phone"

	gomail "github.com/wneessen/go-mail"
)

// SMTPSender implements the Sender interface using a direct SMTP connection via go-mail.
type SMTPSender struct {
	host      string
	port      int
	username  string
	password  string
	fromName  string
	fromEmail string
	toEmail   string
	siteName  string
}

func (s *SMTPSender) send(ctx context.Context, subject, htmlContent string) error {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(s.fromName, s.fromEmail); err != nil {
		return fmt.Errorf("smtp from: %w", err)
	}
	if err := msg.To(s.toEmail); err != nil {
		return fmt.Errorf("smtp to: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, htmlContent)

	client, err := gomail.NewClient(s.host,
		gomail.WithPort(s.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.username),
		gomail.WithPassword(s.password),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(15*time.Second),
		gomail.WithDialContextFunc(func(dctx context.Context, _ string, addr string) (net.Conn, error) {
			return (&net.Dialer{}).DialContext(dctx, "tcp4", addr)
		}),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	return nil
}

func (s *SMTPSender) SendContactNotification(ctx context.Context, n ContactNotification) error {
	content, err := renderEmailTemplate("contact.html", contactEmailData{
		SiteName:         s.siteName,
		Name:             n.Name,
		Email:            n.Email,
		Phone:            phone.NormalizeE164(n.Phone),
		Message:          n.Message,
		Company:          n.Company,
		OrgNumber:        n.OrgNumber,
		ServiceRequested: n.ServiceRequested,
		ExtraNotes:       n.ExtraNotes,
	})
	if err != nil {
		return err
	}
	return s.send(ctx, fmt.Sprintf(subjectContactFmt, s.siteName), content)
}

func (s *SMTPSender) SendCalculatorNotification(ctx context.Context, n CalculatorNotification) error {
	content, err := renderEmailTemplate("calculator.html", calculatorEmailData{
		Name:           n.Name,
		Email:          n.Email,
		Phone:          phone.NormalizeE164(n.Phone),
		ProjectType:    n.ProjectType,
		EstimatedPrice: n.EstimatedPrice,
	})
	if err != nil {
		return err
	}
	return s.send(ctx, subjectCalculator, content)
}

func (s *SMTPSender) SendNewsletterNotification(ctx context.Context, n NewsletterNotification) error {
	content, err := renderEmailTemplate("newsletter.html", newsletterEmailData{
		Name:  n.Name,
		Email: n.Email,
	})
	if err != nil {
		return err
	}
	return s.send(ctx, subjectNewsletter, content)
}

func (s *SMTPSender) SendPriceQuoteNotification(ctx context.Context, n PriceQuoteNotification) error {
	content, err := renderEmailTemplate("price_quote.html", newPriceQuoteEmailData(n))
	if err != nil {
		return err
	}
	return s.send(ctx, fmt.Sprintf(subjectPriceQuoteFmt, n.Name), content)
}

// Compile-time check that SMTPSender implements Sender.
var _ Sender = (*SMTPSender)(nil)
