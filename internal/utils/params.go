// Package utils holds shared request-parameter parsing helpers.
package utils

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ParseIntParam parses an integer query parameter, recording a field error on
// failure.
func ParseIntParam(params url.Values, name string, fieldErrors map[string][]string) (int, error) {
	raw := params.Get(name)
	value, err := strconv.Atoi(raw)
	if err != nil {
		fieldErrors[name] = append(fieldErrors[name], fmt.Sprintf("%q is not a valid integer", raw))
		return 0, err
	}
	return value, nil
}

// ParseFloatParam parses a float query parameter, recording a field error on
// failure.
func ParseFloatParam(params url.Values, name string, fieldErrors map[string][]string) (float64, error) {
	raw := params.Get(name)
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		fieldErrors[name] = append(fieldErrors[name], fmt.Sprintf("%q is not a valid number", raw))
		return 0, err
	}
	return value, nil
}

// ParseDateParam parses an RFC 3339 date-time query parameter into Unix
// seconds, recording a field error on failure. The request is rejected before
// any record is scanned when a date fails to parse.
func ParseDateParam(params url.Values, name string, fieldErrors map[string][]string) (int64, error) {
	raw := params.Get(name)
	if raw == "" {
		fieldErrors[name] = append(fieldErrors[name], name+" is required")
		return 0, fmt.Errorf("%s is required", name)
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		fieldErrors[name] = append(fieldErrors[name], fmt.Sprintf("%q is not a valid RFC 3339 date-time", raw))
		return 0, err
	}
	return t.Unix(), nil
}

// SplitCSVParam splits a comma-separated parameter into trimmed non-empty
// elements. Returns nil for an absent or empty parameter.
func SplitCSVParam(params url.Values, name string) []string {
	raw := params.Get(name)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
