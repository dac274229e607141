package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ID is an opaque identifier for clients and files.
//
// Different versions of the remote API emit identifiers as JSON numbers or as
// JSON strings. ID accepts both on input and always encodes as a string, so
// callers never need to know which variant produced a record.
type ID string

// String returns the identifier as text.
func (id ID) String() string {
	return string(id)
}

// IsZero reports whether the identifier is empty.
func (id ID) IsZero() bool {
	return id == ""
}

// MarshalJSON implements json.Marshaler interface.
func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}

// UnmarshalJSON implements json.Unmarshaler interface.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid identifier: %w", err)
		}
		*id = ID(s)
		return nil
	}

	// Numeric identifiers are kept verbatim so large values don't lose
	// precision through float64.
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid identifier %s: must be a string or number", string(data))
	}
	*id = ID(n.String())
	return nil
}
