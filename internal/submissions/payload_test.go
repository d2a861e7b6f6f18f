package submissions

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"kynetic_backend/platform/apperr"
)

func TestParsePayloadJSON(t *testing.T) {
	body := `{
		"name": "Ola",
		"pageCount": 12,
		"newsletter": true,
		"design": ["lys", "minimal"],
		"empty": null
	}`
	req := httptest.NewRequest("POST", "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	p, err := ParsePayload(req)
	if err != nil {
		t.Fatalf("ParsePayload: %v", err)
	}

	if got := p.First("name"); got != "Ola" {
		t.Fatalf("name = %q", got)
	}
	if got := p.First("pageCount"); got != "12" {
		t.Fatalf("pageCount = %q, numbers should stringify losslessly", got)
	}
	if got := p.First("newsletter"); got != "true" {
		t.Fatalf("newsletter = %q", got)
	}
	if got := p.FirstList("design"); !reflect.DeepEqual(got, []string{"lys", "minimal"}) {
		t.Fatalf("design = %v", got)
	}
	if got := p.First("empty"); got != "" {
		t.Fatalf("null value should stay unset, got %q", got)
	}
}

func TestParsePayloadMultipart(t *testing.T) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	_ = w.WriteField("navn", "Kari")
	_ = w.WriteField("epost", "kari@example.no")
	_ = w.Close()

	req := httptest.NewRequest("POST", "/api/contact", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())

	p, err := ParsePayload(req)
	if err != nil {
		t.Fatalf("ParsePayload: %v", err)
	}

	if got := p.First("navn"); got != "Kari" {
		t.Fatalf("navn = %q", got)
	}
	if got := p.First("epost"); got != "kari@example.no" {
		t.Fatalf("epost = %q", got)
	}
}

func TestParsePayloadFormFallbackOnWrongContentType(t *testing.T) {
	// Declared JSON, actually URL-encoded: the fallback parse must accept it.
	req := httptest.NewRequest("POST", "/api/contact", strings.NewReader("name=Ola&email=ola%40example.no"))
	req.Header.Set("Content-Type", "application/json")

	p, err := ParsePayload(req)
	if err != nil {
		t.Fatalf("ParsePayload: %v", err)
	}

	if got := p.First("name"); got != "Ola" {
		t.Fatalf("name = %q", got)
	}
	if got := p.First("email"); got != "ola@example.no" {
		t.Fatalf("email = %q", got)
	}
}

func TestParsePayloadNoContentType(t *testing.T) {
	req := httptest.NewRequest("POST", "/api/contact", strings.NewReader("name=Ola"))

	p, err := ParsePayload(req)
	if err != nil {
		t.Fatalf("ParsePayload: %v", err)
	}
	if got := p.First("name"); got != "Ola" {
		t.Fatalf("name = %q", got)
	}
}

func TestParsePayloadMalformedBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/api/contact", strings.NewReader("this is not a form"))
	req.Header.Set("Content-Type", "application/json")

	_, err := ParsePayload(req)
	if err == nil {
		t.Fatal("expected error for unparsable body")
	}
	if !apperr.Is(err, apperr.KindBadRequest) {
		t.Fatalf("error kind = %v, want bad request", apperr.GetKind(err))
	}
	if e, ok := err.(*apperr.Error); !ok || e.Message != "invalid request format" {
		t.Fatalf("error = %v, want invalid request format", err)
	}
}

func TestParsePayloadEmptyBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/api/contact", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/json")

	if _, err := ParsePayload(req); err == nil {
		t.Fatal("expected error for empty body")
	}
}

func TestFirstSkipsEmptyValues(t *testing.T) {
	p := payloadOf(map[string]string{"name": "", "navn": "Ola"}, nil)

	if got := p.First("name", "navn"); got != "Ola" {
		t.Fatalf("First = %q, want Ola", got)
	}
	if got := p.First("missing"); got != "" {
		t.Fatalf("First on missing key = %q, want empty", got)
	}
}

func TestFirstListEmptyListCountsAsPresent(t *testing.T) {
	p := payloadOf(nil, map[string][]string{"integrations": {}})

	got := p.FirstList("integrations", "integrasjoner")
	if got == nil || len(got) != 0 {
		t.Fatalf("FirstList = %v, want present empty list", got)
	}
	if p.FirstList("missing") != nil {
		t.Fatal("FirstList on missing key should be nil")
	}
}
