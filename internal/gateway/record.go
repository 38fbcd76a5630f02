package gateway

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// RawRecord is the untyped tree returned by the extractor. Any field may be
// missing or null; accessors never panic.
type RawRecord map[string]any

func (r RawRecord) dig(keys ...any) any {
	var cur any = map[string]any(r)
	for _, k := range keys {
		switch key := k.(type) {
		case string:
			m, ok := asMap(cur)
			if !ok {
				return nil
			}
			cur = m[key]
		case int:
			a, ok := cur.([]any)
			if !ok || key < 0 || key >= len(a) {
				return nil
			}
			cur = a[key]
		}
	}
	return cur
}

// Str returns the trimmed string at key, or nil when absent, null or empty.
func (r RawRecord) Str(keys ...any) *string {
	s := cleanText(r.dig(keys...))
	if s == "" {
		return nil
	}
	return &s
}

// Text is Str without the pointer.
func (r RawRecord) Text(keys ...any) string {
	return cleanText(r.dig(keys...))
}

func (r RawRecord) Int(keys ...any) *int64 {
	switch v := r.dig(keys...).(type) {
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return &n
		}
		if f, err := v.Float64(); err == nil {
			n := int64(f)
			return &n
		}
	case float64:
		n := int64(v)
		return &n
	case int:
		n := int64(v)
		return &n
	case int64:
		return &v
	}
	return nil
}

func (r RawRecord) Float(keys ...any) *float64 {
	switch v := r.dig(keys...).(type) {
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return &f
		}
	case float64:
		return &v
	case int:
		f := float64(v)
		return &f
	case int64:
		f := float64(v)
		return &f
	}
	return nil
}

// List returns the child records under key, skipping anything that is not an
// object. Nil or non-list values yield an empty slice.
func (r RawRecord) List(key string) []RawRecord {
	raw, _ := r.dig(key).([]any)
	out := make([]RawRecord, 0, len(raw))
	for _, item := range raw {
		if m, ok := asMap(item); ok {
			out = append(out, RawRecord(m))
		}
	}
	return out
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, m != nil
	case RawRecord:
		return m, m != nil
	}
	return nil, false
}

func cleanText(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(s)
	case json.Number:
		return s.String()
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool, int, int64:
		return fmt.Sprint(s)
	}
	// Objects and lists are not text.
	return ""
}
