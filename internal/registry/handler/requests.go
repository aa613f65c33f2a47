package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"proplink/internal/registry/orchestrator"
)

// sourceQuery is a portal search posted as a flat JSON object. Scalar values
// of any JSON type are accepted and compared as text.
type sourceQuery map[string]string

func (q *sourceQuery) UnmarshalJSON(b []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	out := make(sourceQuery, len(raw))
	for k, v := range raw {
		s, err := scalar(v)
		if err != nil {
			return fmt.Errorf("parameter %s: %w", k, err)
		}
		out[k] = s
	}
	*q = out
	return nil
}

// Validate accepts any parameter set; the adapter decides what is required.
func (q *sourceQuery) Validate() error {
	if *q == nil {
		*q = sourceQuery{}
	}
	return nil
}

func scalar(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case bool:
		return strconv.FormatBool(t), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	}
	return "", fmt.Errorf("must be a scalar")
}

// sourceList accepts either a comma-separated string or an array of names.
type sourceList []string

func (l *sourceList) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*l = sourceList{s}
		return nil
	}
	var names []string
	if err := json.Unmarshal(b, &names); err != nil {
		return err
	}
	*l = names
	return nil
}

// unifiedBody is the POST form of a unified lookup.
type unifiedBody struct {
	PropertyID         string     `json:"propertyId"`
	RegistrationNumber string     `json:"registrationNumber"`
	OwnerName          string     `json:"ownerName"`
	Sources            sourceList `json:"sources"`
}

// Validate is a no-op; the orchestrator owns unified validation so GET and
// POST reject the same requests.
func (b *unifiedBody) Validate() error { return nil }

func (b *unifiedBody) toRequest() orchestrator.Request {
	return orchestrator.Request{
		PropertyID:         b.PropertyID,
		RegistrationNumber: b.RegistrationNumber,
		OwnerName:          b.OwnerName,
		Sources:            b.Sources,
	}
}

// queryParams flattens the query string, keeping the first value of each key.
func queryParams(r *http.Request) map[string]string {
	q := r.URL.Query()
	out := make(map[string]string, len(q))
	for k, v := range q {
		if len(v) > 0 {
			out[k] = v[0]
		}
	}
	return out
}
