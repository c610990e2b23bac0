package models

import (
	"bytes"
	"encoding/json"
	"errors"
)

// ID is an opaque entity identifier as returned by the management API.
// The API is free to send identifiers as JSON strings or numbers; ID keeps
// the original form so that it is sent back exactly as it was received.
type ID struct {
	value   string
	numeric bool
}

// NewID returns a string identifier, typically typed by the operator.
func NewID(value string) ID {
	return ID{value: value}
}

// String returns the textual form of the identifier.
func (id ID) String() string {
	return id.value
}

// IsZero reports whether the identifier is absent.
func (id ID) IsZero() bool {
	return id.value == ""
}

// MarshalJSON writes numeric identifiers as numbers, string identifiers as
// strings and the zero identifier as null.
func (id ID) MarshalJSON() ([]byte, error) {
	if id.IsZero() {
		return []byte("null"), nil
	}
	if id.numeric {
		return []byte(id.value), nil
	}
	return json.Marshal(id.value)
}

// UnmarshalJSON accepts a JSON string, a JSON number or null.
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ID{}
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID{value: s}
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return errors.New("id must be a string or a number")
	}
	*id = ID{value: n.String(), numeric: true}
	return nil
}
