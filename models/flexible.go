package models

import (
	"bytes"
	"encoding/json"
)

// FlexibleNumber accepts a JSON number, a numeric string or null, keeping
// the raw text. The client forms are inconsistent about quoting numbers,
// so parsing is deferred to the booking resolver with its own defaults.
type FlexibleNumber string

func (f *FlexibleNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexibleNumber(s)
		return nil
	}
	*f = FlexibleNumber(data)
	return nil
}

func (f FlexibleNumber) String() string {
	return string(f)
}
