// Package flexdate models a date field that arrives in one of two shapes: a
// structured timestamp, or a legacy locale-formatted "DD-MM-YYYY" string.
// Source systems wrote both shapes into the same columns over the years, so
// the variant is explicit and every consumer goes through Normalize instead
// of branching on runtime shape at the call site.
package flexdate

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrUnparsable marks a date value that could not be normalized. Callers are
// expected to skip the owning record, not abort the surrounding computation.
var ErrUnparsable = errors.New("unparsable date value")

// FlexDate is a tagged variant: either a structured calendar timestamp or a
// raw legacy string. The zero value is an empty legacy string, which fails
// normalization.
type FlexDate struct {
	t          time.Time
	raw        string
	structured bool
}

// FromTime builds a structured FlexDate.
func FromTime(t time.Time) FlexDate {
	return FlexDate{t: t, structured: true}
}

// FromString builds a legacy FlexDate holding the raw text as-is.
func FromString(s string) FlexDate {
	return FlexDate{raw: s}
}

// IsStructured reports whether the value carries a typed timestamp.
func (d FlexDate) IsStructured() bool {
	return d.structured
}

// Raw returns the legacy text, or the empty string for structured values.
func (d FlexDate) Raw() string {
	return d.raw
}

// Normalize resolves the variant to a canonical calendar date at UTC
// midnight. Structured values pass through with their time-of-day dropped;
// legacy strings are parsed as strict DD-MM-YYYY.
func (d FlexDate) Normalize() (time.Time, error) {
	if d.structured {
		return time.Date(d.t.Year(), d.t.Month(), d.t.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return ParseLegacy(d.raw)
}

// ParseLegacy parses a day-first "DD-MM-YYYY" string. It fails when the value
// does not have exactly three dash-separated numeric fields or when the
// fields do not name a real calendar date (e.g. 31-04). It never guesses at
// other orderings, so an ISO "YYYY-MM-DD" in this slot is rejected.
func ParseLegacy(s string) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnparsable, s)
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrUnparsable, s)
		}
		nums[i] = n
	}

	day, month, year := nums[0], nums[1], nums[2]
	if month < 1 || month > 12 || day < 1 || year < 1 || year > 9999 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnparsable, s)
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (31-04 becomes 01-05); a round-trip
	// mismatch means the numeric date was invalid.
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnparsable, s)
	}
	return t, nil
}

// Scan implements database scanning. Typed timestamps become structured
// values; text becomes structured only when it is an RFC 3339 timestamp
// (the form typed values take when round-tripped through a text column),
// otherwise it stays a legacy string.
func (d *FlexDate) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = FlexDate{}
		return nil
	case time.Time:
		*d = FromTime(v)
		return nil
	case string:
		*d = fromText(v)
		return nil
	case []byte:
		*d = fromText(string(v))
		return nil
	default:
		return fmt.Errorf("flexdate: cannot scan %T", src)
	}
}

// Value implements driver.Valuer. Structured values are stored as RFC 3339
// text so Scan recovers the same variant arm; legacy strings are stored
// verbatim.
func (d FlexDate) Value() (driver.Value, error) {
	if d.structured {
		return d.t.UTC().Format(time.RFC3339), nil
	}
	return d.raw, nil
}

func (d FlexDate) MarshalJSON() ([]byte, error) {
	if d.structured {
		return json.Marshal(d.t.UTC().Format(time.RFC3339))
	}
	return json.Marshal(d.raw)
}

func (d *FlexDate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("flexdate: %w", err)
	}
	*d = fromText(s)
	return nil
}

func fromText(s string) FlexDate {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return FromTime(t)
	}
	return FromString(s)
}
