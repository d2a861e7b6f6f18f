package submissions

import (
	"context"
	"fmt"

	"kynetic_backend/internal/email"
	"kynetic_backend/internal/events"
	"kynetic_backend/internal/submissions/transport"
	"kynetic_backend/platform/apperr"
	"kynetic_backend/platform/logger"
)

const msgDeliveryFailed = "failed to send message"

// Service relays validated submissions to the notification sender and
// publishes the outcome for the ledger. Delivery is attempted exactly once;
// a failed attempt is reported to the caller and never retried or queued.
type Service struct {
	sender email.Sender
	bus    events.Bus
	log    *logger.Logger
}

// NewService creates a new relay service.
func NewService(sender email.Sender, bus events.Bus, log *logger.Logger) *Service {
	return &Service{sender: sender, bus: bus, log: log}
}

// Relay validates the submission for its kind, attempts delivery once, and
// records the attempt on the event bus regardless of the delivery outcome.
// Validation failures produce no side effect at all.
func (s *Service) Relay(ctx context.Context, kind transport.Kind, sub transport.CanonicalSubmission) error {
	if err := Validate(kind, sub); err != nil {
		return err
	}

	deliveryErr := s.deliver(ctx, kind, sub)

	s.bus.Publish(ctx, events.SubmissionRelayed{
		BaseEvent: events.NewBaseEvent(),
		Kind:      kind,
		Data:      sub,
		Delivered: deliveryErr == nil,
	})

	if deliveryErr != nil {
		s.log.DeliveryFailure(string(kind), deliveryErr)
		// Generic message for the caller; the provider error text rides along
		// in details for operator diagnostics only.
		return apperr.Wrap(apperr.KindInternal, msgDeliveryFailed, deliveryErr).
			WithDetails(deliveryErr.Error())
	}

	return nil
}

func (s *Service) deliver(ctx context.Context, kind transport.Kind, sub transport.CanonicalSubmission) error {
	switch kind {
	case transport.KindContact:
		return s.sender.SendContactNotification(ctx, email.ContactNotification{
			Name:             sub.Name,
			Email:            sub.Email,
			Phone:            sub.Phone,
			Message:          sub.Message,
			Company:          sub.Company,
			OrgNumber:        sub.OrgNumber,
			ServiceRequested: sub.ServiceRequested,
			ExtraNotes:       sub.ExtraNotes,
		})
	case transport.KindCalculator:
		return s.sender.SendCalculatorNotification(ctx, email.CalculatorNotification{
			Name:           sub.Name,
			Email:          sub.Email,
			Phone:          sub.Phone,
			ProjectType:    sub.ProjectType,
			EstimatedPrice: sub.EstimatedPrice,
		})
	case transport.KindNewsletter:
		return s.sender.SendNewsletterNotification(ctx, email.NewsletterNotification{
			Name:  sub.Name,
			Email: sub.Email,
		})
	case transport.KindPriceQuote:
		return s.sender.SendPriceQuoteNotification(ctx, email.PriceQuoteNotification{
			Name:              sub.Name,
			Company:           sub.Company,
			Email:             sub.Email,
			Phone:             sub.Phone,
			SiteType:          sub.SiteType,
			PageCount:         sub.PageCount,
			DesignPreferences: sub.DesignPreferences,
			Integrations:      sub.Integrations,
			BudgetBand:        sub.BudgetBand,
			ExtraNotes:        sub.ExtraNotes,
		})
	default:
		return fmt.Errorf("unknown submission kind %q", kind)
	}
}
