package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FlexString is a string that can be unmarshaled from a JSON string, number or boolean.
// Form values arrive as strings from HTML forms but as numbers from scripted clients.
type FlexString string

// UnmarshalJSON implements the json.Unmarshaler interface.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}

	// Try unmarshaling as a string first
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexString(s)
		return nil
	}

	// Numbers keep their literal text so decimals survive untouched
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexString(n.String())
		return nil
	}

	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*f = FlexString(fmt.Sprintf("%t", b))
		return nil
	}

	return fmt.Errorf("FlexString: unexpected type, expected string, number or boolean")
}

// String converts FlexString back to string.
func (f FlexString) String() string {
	return string(f)
}

// FlexFields converts a decoded form body into plain string values.
func FlexFields(in map[string]FlexString) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v.String()
	}
	return out
}
