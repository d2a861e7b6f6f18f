package submissions

import (
	"reflect"
	"testing"

	"kynetic_backend/internal/submissions/transport"
)

func payloadOf(values map[string]string, lists map[string][]string) Payload {
	if values == nil {
		values = map[string]string{}
	}
	if lists == nil {
		lists = map[string][]string{}
	}
	return Payload{values: values, lists: lists}
}

func TestNormalizeNorwegianKeys(t *testing.T) {
	p := payloadOf(map[string]string{
		"navn":    "Kari Nordmann",
		"epost":   "kari@example.no",
		"telefon": "99887766",
		"melding": "Hei, jeg trenger en nettside.",
		"bedrift": "Nordmann AS",
		"orgnr":   "987654321",
	}, nil)

	sub := Normalize(transport.KindContact, p)

	if sub.Name != "Kari Nordmann" {
		t.Fatalf("Name = %q, want Kari Nordmann", sub.Name)
	}
	if sub.Email != "kari@example.no" {
		t.Fatalf("Email = %q, want kari@example.no", sub.Email)
	}
	if sub.Phone != "99887766" {
		t.Fatalf("Phone = %q, want 99887766", sub.Phone)
	}
	if sub.Message != "Hei, jeg trenger en nettside." {
		t.Fatalf("Message = %q", sub.Message)
	}
	if sub.Company != "Nordmann AS" || sub.OrgNumber != "987654321" {
		t.Fatalf("Company/OrgNumber = %q/%q", sub.Company, sub.OrgNumber)
	}
}

func TestNormalizeEnglishWinsOverNorwegian(t *testing.T) {
	p := payloadOf(map[string]string{
		"name":  "English Name",
		"navn":  "Norsk Navn",
		"email": "en@example.com",
		"epost": "no@example.no",
	}, nil)

	sub := Normalize(transport.KindContact, p)

	if sub.Name != "English Name" {
		t.Fatalf("Name = %q, want English Name", sub.Name)
	}
	if sub.Email != "en@example.com" {
		t.Fatalf("Email = %q, want en@example.com", sub.Email)
	}
}

func TestNormalizeEmptyEnglishFallsBackToNorwegian(t *testing.T) {
	p := payloadOf(map[string]string{
		"name": "",
		"navn": "Norsk Navn",
	}, nil)

	sub := Normalize(transport.KindContact, p)

	if sub.Name != "Norsk Navn" {
		t.Fatalf("Name = %q, want Norsk Navn", sub.Name)
	}
}

func TestNormalizeContactEkstraIsMessage(t *testing.T) {
	p := payloadOf(map[string]string{
		"navn":   "Ola",
		"epost":  "ola@example.no",
		"ekstra": "Ring meg gjerne.",
	}, nil)

	sub := Normalize(transport.KindContact, p)

	if sub.Message != "Ring meg gjerne." {
		t.Fatalf("Message = %q, want the ekstra text", sub.Message)
	}
	if sub.ExtraNotes != "" {
		t.Fatalf("ExtraNotes = %q, want empty on contact", sub.ExtraNotes)
	}
}

func TestNormalizePriceQuoteMapping(t *testing.T) {
	p := payloadOf(map[string]string{
		"name":    "Ola",
		"company": "Ola AS",
		"email":   "ola@example.no",
		"phone":   "41234567",
		"type":    "nettbutikk",
		"pages":   "12",
		"budget":  "50-100k",
		"ekstra":  "Haster litt.",
	}, map[string][]string{
		"design":       {"minimalistisk", "mørk"},
		"integrations": {},
	})

	sub := Normalize(transport.KindPriceQuote, p)

	if sub.SiteType != "nettbutikk" {
		t.Fatalf("SiteType = %q, want nettbutikk", sub.SiteType)
	}
	if sub.PageCount != "12" {
		t.Fatalf("PageCount = %q, want 12", sub.PageCount)
	}
	if sub.BudgetBand != "50-100k" {
		t.Fatalf("BudgetBand = %q, want 50-100k", sub.BudgetBand)
	}
	if sub.ExtraNotes != "Haster litt." {
		t.Fatalf("ExtraNotes = %q, want the ekstra text", sub.ExtraNotes)
	}
	if sub.Message != "" {
		t.Fatalf("Message = %q, want empty on price-quote", sub.Message)
	}
	if !reflect.DeepEqual(sub.DesignPreferences, []string{"minimalistisk", "mørk"}) {
		t.Fatalf("DesignPreferences = %v", sub.DesignPreferences)
	}
	if sub.Integrations == nil || len(sub.Integrations) != 0 {
		t.Fatalf("Integrations = %v, want present empty list", sub.Integrations)
	}
}

func TestNormalizeAbsentFieldsStayZero(t *testing.T) {
	sub := Normalize(transport.KindContact, payloadOf(nil, nil))

	if !reflect.DeepEqual(sub, transport.CanonicalSubmission{}) {
		t.Fatalf("empty payload should normalize to zero submission, got %+v", sub)
	}
}

func TestNormalizeValuesPassThroughUntouched(t *testing.T) {
	// Whitespace, casing and formatting must survive normalization as-is.
	p := payloadOf(map[string]string{
		"name":  "  Ola Nordmann  ",
		"email": "OLA@Example.NO",
		"phone": "+47 412 34 567",
	}, nil)

	sub := Normalize(transport.KindContact, p)

	if sub.Name != "  Ola Nordmann  " {
		t.Fatalf("Name was altered: %q", sub.Name)
	}
	if sub.Email != "OLA@Example.NO" {
		t.Fatalf("Email was altered: %q", sub.Email)
	}
	if sub.Phone != "+47 412 34 567" {
		t.Fatalf("Phone was altered: %q", sub.Phone)
	}
}
