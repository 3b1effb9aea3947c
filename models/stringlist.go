package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strings"
)

// StringList is an ordered list of strings. On input it accepts either a JSON
// array or a single comma-separated string; the stored and serialized form is
// always an array.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var asSlice []string
	if err := json.Unmarshal(data, &asSlice); err == nil {
		*l = asSlice
		return nil
	}

	var asString string
	if err := json.Unmarshal(data, &asString); err != nil {
		return errors.New("expected a string or an array of strings")
	}

	*l = SplitCommaList(asString)
	return nil
}

// SplitCommaList splits a comma-separated string into trimmed, non-empty
// entries, preserving order.
func SplitCommaList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// Value stores the list as a JSON array, never null.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal([]string(l))
}

func (l *StringList) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*l = StringList{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported source type for StringList")
	}
	if len(data) == 0 {
		*l = StringList{}
		return nil
	}
	return json.Unmarshal(data, (*[]string)(l))
}

// GormDataType tells gorm to migrate StringList columns as JSON.
func (StringList) GormDataType() string {
	return "json"
}
