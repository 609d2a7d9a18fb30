// Package timezonedb resolves the gateway's timezone names — carried as
// trailing tokens on execution and historical bar timestamps — to a Go
// time.Location, and parses the gateway's "YYYYMMDD HH:MM:SS TZ" timestamp
// format.
//
// The gateway ships its own closed enumeration of IANA zone names (every
// "Continent/City" zone TWS supports) with a handful of legacy aliases
// ("US/Eastern" and similar) still accepted on the wire. Go's standard
// library already carries the complete IANA database via time.LoadLocation,
// so this package is a thin alias table over it.
package timezonedb

import (
	"fmt"
	"strings"
	"time"
)

// legacyAliases maps the gateway's deprecated short zone names to their
// modern IANA equivalents.
var legacyAliases = map[string]string{
	"US/Eastern":  "America/New_York",
	"US/Central":  "America/Chicago",
	"US/Mountain": "America/Denver",
	"US/Pacific":  "America/Los_Angeles",
	"US/Arizona":  "America/Phoenix",
	"Japan":       "Asia/Tokyo",
	"Hongkong":    "Asia/Hong_Kong",
	"Singapore":   "Asia/Singapore",
	"Israel":      "Asia/Jerusalem",
	"Iceland":     "Atlantic/Reykjavik",
	"Portugal":    "Europe/Lisbon",
	"Poland":      "Europe/Warsaw",
	"Turkey":      "Europe/Istanbul",
	"UTC":         "UTC",
	"GMT":         "UTC",
}

// Resolve looks up an IANA zone name or one of the gateway's legacy
// aliases. An unknown name is passed straight to time.LoadLocation, which
// already accepts every name the gateway's IbTimeZone enum enumerates.
func Resolve(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	if alias, ok := legacyAliases[name]; ok {
		name = alias
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("timezonedb: unknown zone %q: %w", name, err)
	}
	return loc, nil
}

// layout is the gateway's timestamp format for execution and bar fields
// that carry an explicit zone: YYYYMMDD HH:MM:SS, with the zone name
// appended as a third whitespace-separated token.
const layout = "20060102 15:04:05"

// ParseTimestamp parses a gateway timestamp of the form
// "YYYYMMDD HH:MM:SS ZoneName" (the zone token is optional; a bare
// "YYYYMMDD HH:MM:SS" is interpreted in UTC).
func ParseTimestamp(s string) (time.Time, error) {
	parts := strings.SplitN(strings.TrimSpace(s), " ", 3)
	if len(parts) < 2 {
		return time.Time{}, fmt.Errorf("timezonedb: malformed timestamp %q", s)
	}
	loc := time.UTC
	if len(parts) == 3 {
		var err error
		loc, err = Resolve(parts[2])
		if err != nil {
			return time.Time{}, err
		}
	}
	t, err := time.ParseInLocation(layout, parts[0]+" "+parts[1], loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("timezonedb: parse %q: %w", s, err)
	}
	return t, nil
}
