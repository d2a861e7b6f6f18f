package submissions

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"kynetic_backend/platform/apperr"
)

const (
	maxBodyBytes       = 1 << 20 // 1 MiB is plenty for any form submission
	maxMultipartMemory = 1 << 20

	errInvalidFormat = "invalid request format"
)

// Payload is a flat key/value view over a parsed request body, independent
// of whether it arrived as JSON or form data. Scalar values are strings;
// JSON string arrays are kept as lists.
type Payload struct {
	values map[string]string
	lists  map[string][]string
}

// First returns the first non-empty value among the given keys, in order.
// Callers list the English key before the Norwegian one, so English wins
// when both spellings are present.
func (p Payload) First(keys ...string) string {
	for _, key := range keys {
		if v, ok := p.values[key]; ok && v != "" {
			return v
		}
	}
	return ""
}

// FirstList returns the first list present among the given keys, in order.
// An explicitly submitted empty list counts as present.
func (p Payload) FirstList(keys ...string) []string {
	for _, key := range keys {
		if v, ok := p.lists[key]; ok {
			return v
		}
	}
	return nil
}

// ParsePayload parses the request body according to its Content-Type.
// A missing or mismatched Content-Type falls back to form parsing before
// the request is rejected as malformed.
func ParsePayload(r *http.Request) (Payload, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return Payload{}, apperr.BadRequest(errInvalidFormat)
	}

	contentType := r.Header.Get("Content-Type")

	if strings.Contains(contentType, "application/json") {
		if p, err := parseJSONPayload(body); err == nil {
			return p, nil
		}
		// Declared JSON but the body is not: try form data before failing.
	} else if strings.Contains(contentType, "multipart/form-data") {
		if p, err := parseMultipartPayload(r, body); err == nil {
			return p, nil
		}
	}

	if p, err := parseFormPayload(r, body, contentType); err == nil {
		return p, nil
	}

	return Payload{}, apperr.BadRequest(errInvalidFormat)
}

func parseJSONPayload(body []byte) (Payload, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var raw map[string]interface{}
	if err := dec.Decode(&raw); err != nil {
		return Payload{}, err
	}

	p := Payload{
		values: make(map[string]string, len(raw)),
		lists:  make(map[string][]string),
	}

	for key, value := range raw {
		switch v := value.(type) {
		case string:
			p.values[key] = v
		case json.Number:
			p.values[key] = v.String()
		case bool:
			p.values[key] = fmt.Sprintf("%t", v)
		case []interface{}:
			list := make([]string, 0, len(v))
			for _, item := range v {
				switch s := item.(type) {
				case string:
					list = append(list, s)
				case json.Number:
					list = append(list, s.String())
				}
			}
			p.lists[key] = list
		case nil:
			// absent, stays unset
		}
	}

	return p, nil
}

func parseMultipartPayload(r *http.Request, body []byte) (Payload, error) {
	r.Body = io.NopCloser(bytes.NewReader(body))
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		return Payload{}, err
	}
	return payloadFromValues(r.MultipartForm.Value), nil
}

// parseFormPayload is the last-resort parse: multipart if the body looks like
// it, otherwise URL-encoded pairs. A body with no key=value structure fails.
func parseFormPayload(r *http.Request, body []byte, contentType string) (Payload, error) {
	if strings.Contains(contentType, "multipart/form-data") {
		return parseMultipartPayload(r, body)
	}

	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" || !strings.Contains(trimmed, "=") {
		return Payload{}, fmt.Errorf("body is not form data")
	}

	values, err := url.ParseQuery(trimmed)
	if err != nil {
		return Payload{}, err
	}

	return payloadFromValues(values), nil
}

func payloadFromValues(values map[string][]string) Payload {
	p := Payload{
		values: make(map[string]string, len(values)),
		lists:  make(map[string][]string),
	}
	for key, vs := range values {
		if len(vs) == 0 {
			continue
		}
		if len(vs) > 1 {
			p.lists[key] = vs
		}
		p.values[key] = vs[0]
	}
	return p
}
