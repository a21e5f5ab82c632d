package models

import (
	"fmt"
	"strings"
	"time"
)

// Date is a point in time as it appears in the portal's data files.
// The files carry either bare dates ("2024-01-15") or full RFC 3339
// timestamps; both unmarshal into the same value.
type Date struct {
	time.Time
}

const dateOnly = "2006-01-02"

// MarshalJSON keeps the source precision: values parsed from bare dates
// stay bare dates, anything carrying a clock or an offset is emitted as
// RFC 3339 so a persist/restore round trip reproduces the same instant.
func (d Date) MarshalJSON() ([]byte, error) {
	h, m, s := d.Clock()
	if h == 0 && m == 0 && s == 0 && d.Nanosecond() == 0 && d.Location() == time.UTC {
		return []byte(`"` + d.Format(dateOnly) + `"`), nil
	}
	return []byte(`"` + d.Format(time.RFC3339) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	if t, err := time.Parse(dateOnly, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("unsupported date format %q: %w", s, err)
	}
	d.Time = t
	return nil
}
