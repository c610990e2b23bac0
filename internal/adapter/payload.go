package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// PayloadKind tells how the body of a successful response was interpreted.
type PayloadKind int

const (
	// PayloadEmpty marks 204 responses and 2xx responses with no body.
	PayloadEmpty PayloadKind = iota
	// PayloadJSON marks a well-formed JSON body.
	PayloadJSON
	// PayloadText marks a degraded success: 2xx with a body that is not JSON.
	PayloadText
)

func (k PayloadKind) String() string {
	switch k {
	case PayloadEmpty:
		return "empty"
	case PayloadJSON:
		return "json"
	case PayloadText:
		return "text"
	default:
		return fmt.Sprintf("payload(%d)", int(k))
	}
}

// Payload is the Success branch of a request outcome.
type Payload struct {
	Kind PayloadKind
	Body []byte
}

func newPayload(body []byte) Payload {
	body = bytes.TrimSpace(body)
	switch {
	case len(body) == 0:
		return Payload{Kind: PayloadEmpty}
	case gjson.ValidBytes(body):
		return Payload{Kind: PayloadJSON, Body: body}
	default:
		return Payload{Kind: PayloadText, Body: body}
	}
}

// Degraded reports whether the server answered 2xx with a non-JSON body.
func (p Payload) Degraded() bool {
	return p.Kind == PayloadText
}

// JSON returns the parsed body, or an empty result for non-JSON payloads.
func (p Payload) JSON() gjson.Result {
	if p.Kind != PayloadJSON {
		return gjson.Result{}
	}
	return gjson.ParseBytes(p.Body)
}

// Text returns the raw body.
func (p Payload) Text() string {
	return string(p.Body)
}

// decodePayload unmarshals a JSON payload into v. Any other payload kind, or
// a body that does not fit v, is a malformed response.
func decodePayload(p Payload, endpoint string, v any) error {
	if p.Kind != PayloadJSON {
		return malformed(endpoint, fmt.Sprintf("expected a JSON body, got %s", p.Kind), nil)
	}
	if err := json.Unmarshal(p.Body, v); err != nil {
		return malformed(endpoint, "cannot decode response body", err)
	}
	return nil
}

func malformed(endpoint, detail string, cause error) *APIError {
	return &APIError{Kind: KindMalformedResponse, Endpoint: endpoint, Detail: detail, Err: cause}
}
