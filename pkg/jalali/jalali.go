// Package jalali converts Persian (Solar Hijri) calendar dates to Gregorian.
package jalali

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	ptime "github.com/yaa110/go-persian-calendar"
)

// GregorianLayout is the date format partner availability endpoints expect.
const GregorianLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid jalali date")

type Date struct {
	Year  int
	Month int
	Day   int
}

// Parse reads dates written as YYYY/MM/DD or YYYY-MM-DD.
func Parse(s string) (Date, error) {
	s = strings.TrimSpace(s)
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '/' || r == '-' })
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
		}
		nums[i] = n
	}

	d := Date{Year: nums[0], Month: nums[1], Day: nums[2]}
	if d.Year < 1 || d.Month < 1 || d.Month > 12 || d.Day < 1 || d.Day > 31 {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}

	return d, nil
}

// Gregorian returns midnight UTC of d in the Gregorian calendar.
// Days past the end of their month are rejected.
func (d Date) Gregorian() (time.Time, error) {
	if d.Day > monthLength(d.Year, d.Month) {
		return time.Time{}, fmt.Errorf("%w: %d/%02d/%02d", ErrInvalidDate, d.Year, d.Month, d.Day)
	}

	return toTime(d.Year, d.Month, d.Day), nil
}

func toTime(year, month, day int) time.Time {
	return ptime.Date(year, ptime.Month(month), day, 0, 0, 0, 0, time.UTC).Time()
}

// monthLength follows the fixed 31/30 layout; Esfand is 29 or 30 days
// depending on where the next Nowruz falls.
func monthLength(year, month int) int {
	switch {
	case month <= 6:
		return 31
	case month <= 11:
		return 30
	}

	esfand := toTime(year, 12, 1)
	nowruz := toTime(year+1, 1, 1)
	return int(nowruz.Sub(esfand).Hours() / 24)
}

// ToGregorianString converts a jalali date string to GregorianLayout.
func ToGregorianString(s string) (string, error) {
	d, err := Parse(s)
	if err != nil {
		return "", err
	}

	t, err := d.Gregorian()
	if err != nil {
		return "", err
	}

	return t.Format(GregorianLayout), nil
}

// Converter adapts ToGregorianString to an injectable dependency.
type Converter struct{}

func NewConverter() *Converter {
	return &Converter{}
}

func (c *Converter) ToGregorianString(s string) (string, error) {
	return ToGregorianString(s)
}
