package invocation

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

const defaultBody = "{}"

// Response is the decoded output of a function invocation.
type Response struct {
	StatusCode int `json:"statusCode"`
	// Body is the decoded body. Functions behind an API return it as a JSON string.
	Body interface{} `json:"body,omitempty"`
	// Errors is the top-level errors attribute, if any.
	Errors interface{} `json:"errors,omitempty"`
	// Raw is the complete document as produced by the function.
	Raw map[string]interface{} `json:"raw"`
}

// ParseResponse decodes the captured output. The body field, a JSON string defaulting
// to "{}", is decoded as well.
func ParseResponse(data []byte) (*Response, error) {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("malformed response: %w", err)
	}
	if raw == nil {
		return nil, errors.New("malformed response: not a JSON object")
	}

	resp := &Response{Raw: raw, Errors: raw["errors"]}
	if code, ok := raw["statusCode"].(float64); ok && code == math.Trunc(code) {
		resp.StatusCode = int(code)
	}

	body, err := decodeBody(raw["body"])
	if err != nil {
		return resp, err
	}
	resp.Body = body
	return resp, nil
}

func decodeBody(v interface{}) (interface{}, error) {
	encoded, ok := v.(string)
	if !ok {
		if v == nil {
			encoded = defaultBody
		} else {
			return v, nil
		}
	}
	if encoded == "" {
		encoded = defaultBody
	}

	var body interface{}
	if err := json.Unmarshal([]byte(encoded), &body); err != nil {
		return nil, fmt.Errorf("malformed response body: %w", err)
	}
	return body, nil
}

// Successful reports whether the response is a 200 without errors at the top level or
// in the body.
func (r *Response) Successful() bool {
	return r.StatusCode == 200 && !truthy(r.Errors) && !bodyHasErrors(r.Body)
}

func bodyHasErrors(body interface{}) bool {
	m, ok := body.(map[string]interface{})
	if !ok {
		return false
	}
	switch errs := m["errors"].(type) {
	case []interface{}:
		return len(errs) > 0
	case string:
		return errs != ""
	default:
		return false
	}
}

// truthy treats null, false, zero and the empty string as absent.
func truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != ""
	default:
		return true
	}
}
