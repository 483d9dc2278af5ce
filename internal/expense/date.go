package expense

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateFormat is the ISO-8601 day format used for persistence and grouping keys.
const DateFormat = "2006-01-02"

// Date is a calendar day. The zero value is "no date".
type Date struct {
	y int
	m time.Month
	d int
}

func NewDate(year int, month time.Month, day int) Date {
	d := Date{y: year, m: month, d: day}
	// normalize overflows (e.g. Feb 30) through time.Date
	d.y, d.m, d.d = d.time().Date()
	return d
}

func Today() Date {
	return NewDate(time.Now().Date())
}

// ParseDate parses a strict YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return NewDate(t.Date()), nil
}

func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err.Error())
	}
	return d
}

func (d Date) time() time.Time {
	return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC)
}

func (d Date) IsZero() bool {
	return d.y == 0 && d.m == 0 && d.d == 0
}

func (d Date) Year() int         { return d.y }
func (d Date) Month() time.Month { return d.m }
func (d Date) Day() int          { return d.d }

func (d Date) String() string {
	return d.time().Format(DateFormat)
}

// MonthKey returns the YYYY-MM grouping key for the date.
func (d Date) MonthKey() string {
	return fmt.Sprintf("%04d-%02d", d.y, int(d.m))
}

// YearKey returns the YYYY grouping key for the date.
func (d Date) YearKey() string {
	return fmt.Sprintf("%04d", d.y)
}

func (d Date) Before(x Date) bool {
	return d.time().Before(x.time())
}

func (d Date) After(x Date) bool {
	return d.time().After(x.time())
}

func (d Date) Equal(x Date) bool {
	return d == x
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
