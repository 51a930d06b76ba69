package util

import (
	"strings"
	"time"
)

// Expiry layouts seen across the TrueData hosts. The expiry list host leans
// towards ISO dates while the greeks host speaks dd-mm-yyyy.
var expiryLayouts = []string{
	"02-01-2006",
	"2006-01-02",
	"02/01/2006",
	"2006/01/02",
}

const greeksExpiryLayout = "02-01-2006"

// ParseExpiry parses an expiry string in any of the known vendor layouts.
func ParseExpiry(raw string) (time.Time, error) {
	clean := strings.TrimSpace(raw)
	var lastErr error
	for _, layout := range expiryLayouts {
		t, err := time.Parse(layout, clean)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// NormalizeExpiry rewrites ISO-style expiries to the dd-mm-yyyy form the
// greeks endpoint expects. Strings already in that form (or unparsable ones)
// pass through unchanged.
func NormalizeExpiry(expiry string) string {
	if expiry == "" {
		return expiry
	}
	for _, layout := range []string{"2006-01-02", "2006/01/02"} {
		if t, err := time.Parse(layout, strings.TrimSpace(expiry)); err == nil {
			return t.Format(greeksExpiryLayout)
		}
	}
	return expiry
}
