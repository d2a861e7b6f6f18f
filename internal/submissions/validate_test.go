package submissions

import (
	"reflect"
	"testing"

	"kynetic_backend/internal/submissions/transport"
	"kynetic_backend/platform/apperr"
)

func TestValidateContactMissingFields(t *testing.T) {
	err := Validate(transport.KindContact, transport.CanonicalSubmission{})
	if err == nil {
		t.Fatal("expected validation error")
	}

	e, ok := err.(*apperr.Error)
	if !ok || e.Kind != apperr.KindValidation {
		t.Fatalf("error = %v, want validation kind", err)
	}
	if !reflect.DeepEqual(e.Details, []string{"name", "email", "message"}) {
		t.Fatalf("details = %v, want [name email message]", e.Details)
	}
}

func TestValidatePerKindPolicies(t *testing.T) {
	tests := []struct {
		name    string
		kind    transport.Kind
		sub     transport.CanonicalSubmission
		missing []string
	}{
		{
			name: "contact complete",
			kind: transport.KindContact,
			sub:  transport.CanonicalSubmission{Name: "Ola", Email: "ola@example.no", Message: "Hei"},
		},
		{
			name:    "contact missing message only",
			kind:    transport.KindContact,
			sub:     transport.CanonicalSubmission{Name: "Ola", Email: "ola@example.no"},
			missing: []string{"message"},
		},
		{
			name: "calculator needs only name and email",
			kind: transport.KindCalculator,
			sub:  transport.CanonicalSubmission{Name: "Ola", Email: "ola@example.no"},
		},
		{
			name:    "newsletter missing email",
			kind:    transport.KindNewsletter,
			sub:     transport.CanonicalSubmission{Name: "Ola"},
			missing: []string{"email"},
		},
		{
			name: "price-quote complete",
			kind: transport.KindPriceQuote,
			sub: transport.CanonicalSubmission{
				Name: "Ola", Company: "Ola AS", Email: "ola@example.no", Phone: "41234567",
			},
		},
		{
			name:    "price-quote missing company and phone",
			kind:    transport.KindPriceQuote,
			sub:     transport.CanonicalSubmission{Name: "Ola", Email: "ola@example.no"},
			missing: []string{"company", "phone"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.kind, tc.sub)

			if len(tc.missing) == 0 {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			e, ok := err.(*apperr.Error)
			if !ok {
				t.Fatalf("error = %v, want *apperr.Error", err)
			}
			if !reflect.DeepEqual(e.Details, tc.missing) {
				t.Fatalf("details = %v, want %v", e.Details, tc.missing)
			}
		})
	}
}

func TestValidateOptionalFieldsNeverBlock(t *testing.T) {
	// Informational fields (org number, service, notes) may be empty without
	// failing an otherwise complete submission.
	sub := transport.CanonicalSubmission{
		Name: "Kari", Email: "kari@example.no", Message: "Hei",
	}
	if err := Validate(transport.KindContact, sub); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
