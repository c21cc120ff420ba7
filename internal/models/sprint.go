package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format of sprint dates
const DateLayout = "2006-01-02"

// Sprint is a time-boxed iteration that owns a set of tasks
type Sprint struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	StartDate Date   `json:"start_date"`
	EndDate   Date   `json:"end_date"`
}

// GetID lets output formatters print the bare ID in quiet mode
func (s *Sprint) GetID() int {
	return s.ID
}

// Date is a calendar day. It decodes both "2006-01-02" and RFC3339 timestamps.
type Date struct {
	time.Time
}

// NewDate truncates t to its calendar day
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// String formats the date as YYYY-MM-DD, or "" when zero
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(DateLayout))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil || strings.TrimSpace(*raw) == "" {
		d.Time = time.Time{}
		return nil
	}
	parsed, err := ParseDate(*raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDate accepts "2006-01-02" or an RFC3339 timestamp
func ParseDate(raw string) (Date, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(DateLayout, raw); err == nil {
		return Date{t}, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q", raw)
	}
	y, m, day := t.Date()
	return NewDate(y, m, day), nil
}
