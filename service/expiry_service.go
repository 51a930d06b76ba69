package service

import (
	"strings"
	"time"

	"github.com/featherduino/optionsScreener/util"
)

// PickNearestExpiry selects the best expiry from a vendor expiry list.
// Unparsable entries and header-like values leaked by the CSV host are
// discarded. Expiries on or after today win, earliest first; with only past
// expiries available the one closest to today is used. Returns "" when
// nothing usable remains.
func PickNearestExpiry(expiries []string) string {
	return pickNearestExpiry(time.Now(), expiries)
}

func pickNearestExpiry(now time.Time, expiries []string) string {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	type candidate struct {
		raw  string
		date time.Time
	}

	var future, past []candidate
	for _, raw := range expiries {
		trimmed := strings.TrimSpace(raw)
		switch strings.ToLower(trimmed) {
		case "expiry", "expiries":
			continue
		}

		date, err := util.ParseExpiry(trimmed)
		if err != nil {
			continue
		}

		if !date.Before(today) {
			future = append(future, candidate{raw: raw, date: date})
		} else {
			past = append(past, candidate{raw: raw, date: date})
		}
	}

	if len(future) > 0 {
		best := future[0]
		for _, c := range future[1:] {
			if c.date.Before(best.date) {
				best = c
			}
		}
		return best.raw
	}

	if len(past) > 0 {
		best := past[0]
		for _, c := range past[1:] {
			if c.date.After(best.date) {
				best = c
			}
		}
		return best.raw
	}

	return ""
}
