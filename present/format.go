// SPDX-License-Identifier: MIT

package present

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Format selects the output encoding of a Renderer.
type Format string

// Supported formats.
const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
)

// DefaultPrecision matches the six significant digits of a default C++ stream.
const DefaultPrecision = 6

// ErrUnknownFormat is returned by ParseFormat for an unsupported name.
var ErrUnknownFormat = errors.New("present: unknown output format")

// Formats lists every accepted format name, aliases last.
func Formats() []string {
	return []string{"text", "markdown", "csv", "json", "yaml", "md", "yml"}
}

// ParseFormat resolves a user-supplied name (case-insensitive, with the
// aliases "md" and "yml") to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "table":
		return FormatText, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}

	return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
}

// FormatFloat renders v with prec significant digits ('g' verb).
// A negative prec selects the shortest representation that round-trips.
func FormatFloat(v float64, prec int) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	}
	if prec < 0 {
		prec = -1
	}
	if v == 0 {
		v = 0 // fold -0 into 0
	}

	return strconv.FormatFloat(v, 'g', prec, 64)
}

// encodeValue maps v to a value that both encoding/json and yaml.v3 accept:
// finite numbers are rounded to prec significant digits, others become strings.
func encodeValue(v float64, prec int) any {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return FormatFloat(v, prec)
	}
	if prec < 0 {
		return v
	}
	r, err := strconv.ParseFloat(FormatFloat(v, prec), 64)
	if err != nil {
		return v
	}

	return r
}
