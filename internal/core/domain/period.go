package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// periodLayout is the wire format for billing periods.
const periodLayout = "2006-01"

// Period identifies a single billing month (YYYY-MM).
// Rent is charged per whole period; rent changes also take effect
// on period boundaries.
type Period struct {
	Year  int
	Month time.Month
}

// PeriodOf returns the period containing t.
func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Month: t.Month()}
}

// ParsePeriod parses a YYYY-MM string into a Period.
func ParsePeriod(s string) (Period, error) {
	t, err := time.Parse(periodLayout, s)
	if err != nil {
		return Period{}, fmt.Errorf("invalid period %q: %w", s, err)
	}
	return PeriodOf(t), nil
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// Start returns the first day of the period at midnight UTC.
func (p Period) Start() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End returns the last day of the period at midnight UTC.
func (p Period) End() time.Time {
	return p.Next().Start().AddDate(0, 0, -1)
}

// Next returns the following calendar month.
func (p Period) Next() Period {
	return PeriodOf(p.Start().AddDate(0, 1, 0))
}

// Before reports whether p is strictly earlier than o.
func (p Period) Before(o Period) bool {
	if p.Year != o.Year {
		return p.Year < o.Year
	}
	return p.Month < o.Month
}

// AfterOrEqual reports whether p is o or later.
func (p Period) AfterOrEqual(o Period) bool {
	return !p.Before(o)
}

// IsZero reports whether p is the zero value.
func (p Period) IsZero() bool {
	return p.Year == 0 && p.Month == 0
}

// PeriodsBetween enumerates every period from 'from' through 'through',
// inclusive and ascending. Returns nil if from is later than through,
// so the sequence is always finite.
func PeriodsBetween(from, through Period) []Period {
	if through.Before(from) {
		return nil
	}
	var periods []Period
	for p := from; !through.Before(p); p = p.Next() {
		periods = append(periods, p)
	}
	return periods
}

// MarshalJSON encodes the period as its YYYY-MM string.
func (p Period) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON decodes a YYYY-MM string.
func (p *Period) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParsePeriod(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
