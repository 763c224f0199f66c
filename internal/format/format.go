// Package format converts raw provider fields into human-readable strings.
// Every function is total: malformed or missing input degrades to a
// documented sentinel or to the verbatim input, never to an error.
package format

import (
	"strconv"
	"strings"
	"time"

	"github.com/dharmasatrya/travelplanner/pkg/currency"
)

const (
	// NotAvailable is the sentinel for missing non-price fields.
	NotAvailable = "N/A"
	// PriceNotAvailable is the sentinel for missing prices.
	PriceNotAvailable = "Not Available"
)

// timestampLayouts is tried in declared order and the first successful
// parse wins. The order is load-bearing: an ambiguous input matching an
// earlier layout must keep parsing the way it always has, because agent
// prompts embed the formatted output.
var timestampLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05.999999Z",
	"2006-01-02T15:04:05-0700",
}

// Timestamp renders a provider timestamp as "Jan-02, 2006 | 3:04 PM".
// Empty or "N/A" input stays "N/A"; input matching no layout is returned
// verbatim.
func Timestamp(raw string) string {
	if raw == "" || raw == NotAvailable {
		return NotAvailable
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("Jan-02, 2006 | 3:04 PM")
		}
	}

	return raw
}

// Duration renders a minute count as "2h 30m" / "2h" / "45m". The
// zero-minutes case renders "0m". Non-integer input is returned verbatim.
func Duration(raw string) string {
	if raw == "" || raw == NotAvailable {
		return NotAvailable
	}

	minutes, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return raw
	}

	hours := minutes / 60
	mins := minutes % 60

	switch {
	case hours > 0 && mins > 0:
		return strconv.Itoa(hours) + "h " + strconv.Itoa(mins) + "m"
	case hours > 0:
		return strconv.Itoa(hours) + "h"
	default:
		return strconv.Itoa(mins) + "m"
	}
}

// Price renders a numeric price as the currency symbol plus the integer
// amount grouped by thousands. A pre-formatted input has its symbol and
// separators stripped before reparsing. Non-numeric input is returned
// verbatim.
func Price(raw, symbol string) string {
	if raw == "" || raw == PriceNotAvailable {
		return PriceNotAvailable
	}

	cleaned := strings.TrimSpace(raw)
	cleaned = strings.ReplaceAll(cleaned, symbol, "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return raw
	}

	return currency.Format(symbol, value)
}

// Airport renders "CODE (Name)", the bare code when no name is known, or
// "Unknown" for an empty code.
func Airport(code, name string) string {
	if code == "" {
		return "Unknown"
	}
	if name != "" {
		return code + " (" + name + ")"
	}
	return code
}

// Truncate shortens text to maxLen characters, ending in "..." when it
// had to cut. Text at or under the limit is returned unchanged. Lengths
// count characters, not bytes, so a cut never splits a multi-byte rune.
func Truncate(text string, maxLen int) string {
	if text == "" {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen-3]) + "..."
}
