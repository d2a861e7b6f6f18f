package submissions

import (
	"kynetic_backend/internal/submissions/transport"
	"kynetic_backend/platform/apperr"
)

const msgMissingFields = "missing required fields"

// requiredFields lists the canonical fields that must be non-empty before a
// submission of the given kind is relayed. The contact policy is: message is
// required, with the Norwegian "ekstra" spelling accepted as an alternate
// key for it during normalization. All other collected fields are
// informational and never block a send.
func requiredFields(kind transport.Kind, sub transport.CanonicalSubmission) []string {
	var missing []string

	require := func(name, value string) {
		if value == "" {
			missing = append(missing, name)
		}
	}

	switch kind {
	case transport.KindContact:
		require("name", sub.Name)
		require("email", sub.Email)
		require("message", sub.Message)
	case transport.KindCalculator, transport.KindNewsletter:
		require("name", sub.Name)
		require("email", sub.Email)
	case transport.KindPriceQuote:
		require("name", sub.Name)
		require("company", sub.Company)
		require("email", sub.Email)
		require("phone", sub.Phone)
	}

	return missing
}

// Validate checks the required-field policy for the kind. The returned error
// names every missing canonical field in its details.
func Validate(kind transport.Kind, sub transport.CanonicalSubmission) error {
	if missing := requiredFields(kind, sub); len(missing) > 0 {
		return apperr.Validation(msgMissingFields).WithDetails(missing)
	}
	return nil
}
