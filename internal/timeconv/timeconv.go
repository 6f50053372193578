// Package timeconv converts between wall-clock date/time fields entered in a
// timezone and absolute UTC instants, and projects instants back into any
// viewer's timezone.
//
// DST policy for ToInstant:
//   - a wall-clock time inside a spring-forward gap is interpreted with the
//     offset in effect before the transition, which moves it forward by the
//     length of the gap (02:30 on a New York spring-forward day becomes 03:30 EDT);
//   - a wall-clock time that occurs twice in a fall-back overlap resolves to
//     the earlier occurrence (01:30 EDT, not 01:30 EST).
package timeconv

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"
)

var (
	ErrInvalidTimezone = errors.New("invalid timezone")
	ErrInvalidDateTime = errors.New("invalid date/time")
)

const (
	DateLayout    = "2006-01-02"
	ClockLayout   = "15:04"
	DisplayLayout = "Jan 02, 2006 at 03:04 PM"
)

// transitionWindow brackets any local wall-clock time around the instant it
// can denote; real zones never change offset twice inside it.
const transitionWindow = 36 * time.Hour

// Date is a calendar date without a zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// Clock is a 24-hour wall-clock time with minute precision.
type Clock struct {
	Hour   int
	Minute int
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// ParseDate reads a YYYY-MM-DD date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrInvalidDateTime, s)
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// ParseClock reads an HH:MM 24-hour time.
func ParseClock(s string) (Clock, error) {
	t, err := time.Parse(ClockLayout, strings.TrimSpace(s))
	if err != nil {
		return Clock{}, fmt.Errorf("%w: time %q must be HH:MM", ErrInvalidDateTime, s)
	}
	return Clock{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// LoadZone resolves an IANA zone identifier. The empty string and "Local"
// are rejected since they do not name a zone.
func LoadZone(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" || name == "Local" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, name)
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, name)
	}
	return loc, nil
}

// ToInstant interprets date and clock as wall-clock time in timezone and
// returns the UTC instant it denotes.
func ToInstant(date Date, clock Clock, timezone string) (time.Time, error) {
	loc, err := LoadZone(timezone)
	if err != nil {
		return time.Time{}, err
	}
	if err := validateFields(date, clock); err != nil {
		return time.Time{}, err
	}

	// wall is the requested reading expressed as if it were UTC.
	wall := time.Date(date.Year, date.Month, date.Day, clock.Hour, clock.Minute, 0, 0, time.UTC)

	early := wall.Add(-offsetAt(wall.Add(-transitionWindow), loc))
	late := wall.Add(-offsetAt(wall.Add(transitionWindow), loc))

	earlyOK := readsAs(early, loc, wall)
	lateOK := readsAs(late, loc, wall)

	switch {
	case earlyOK && lateOK:
		if late.Before(early) {
			return late, nil
		}
		return early, nil
	case earlyOK:
		return early, nil
	case lateOK:
		return late, nil
	default:
		// gap: pre-transition offset lands past the gap
		return early, nil
	}
}

// ParseLocal is ToInstant over the string forms used by date and time inputs.
func ParseLocal(date, clock, timezone string) (time.Time, error) {
	if _, err := LoadZone(timezone); err != nil {
		return time.Time{}, err
	}
	d, err := ParseDate(date)
	if err != nil {
		return time.Time{}, err
	}
	c, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	return ToInstant(d, c, timezone)
}

// ToLocal projects instant into timezone. Seconds are truncated.
func ToLocal(instant time.Time, timezone string) (Date, Clock, error) {
	loc, err := LoadZone(timezone)
	if err != nil {
		return Date{}, Clock{}, err
	}
	t := instant.In(loc)
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, Clock{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// FormatForDisplay renders instant in timezone, e.g.
// "Nov 20, 2025 at 10:00 AM EST". Zones without a letter abbreviation get
// their identifier instead of a bare numeric offset.
func FormatForDisplay(instant time.Time, timezone string) (string, error) {
	loc, err := LoadZone(timezone)
	if err != nil {
		return "", err
	}
	t := instant.In(loc)
	abbr, _ := t.Zone()
	if abbr == "" || strings.HasPrefix(abbr, "+") || strings.HasPrefix(abbr, "-") {
		abbr = loc.String()
	}
	return t.Format(DisplayLayout) + " " + abbr, nil
}

// ParseInstant reads an RFC 3339 instant (fractional seconds optional) and
// normalises it to UTC.
func ParseInstant(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: instant %q must be ISO-8601", ErrInvalidDateTime, s)
	}
	return t.UTC(), nil
}

// FormatInstant renders an instant as ISO-8601 UTC with millisecond precision.
func FormatInstant(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}

func validateFields(date Date, clock Clock) error {
	if date.Month < time.January || date.Month > time.December || date.Day < 1 {
		return fmt.Errorf("%w: date %s", ErrInvalidDateTime, date)
	}
	if date.Day > daysIn(date.Year, date.Month) {
		return fmt.Errorf("%w: date %s", ErrInvalidDateTime, date)
	}
	if clock.Hour < 0 || clock.Hour > 23 || clock.Minute < 0 || clock.Minute > 59 {
		return fmt.Errorf("%w: time %s", ErrInvalidDateTime, clock)
	}
	return nil
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func offsetAt(t time.Time, loc *time.Location) time.Duration {
	_, off := t.In(loc).Zone()
	return time.Duration(off) * time.Second
}

func readsAs(instant time.Time, loc *time.Location, wall time.Time) bool {
	l := instant.In(loc)
	return l.Year() == wall.Year() && l.Month() == wall.Month() && l.Day() == wall.Day() &&
		l.Hour() == wall.Hour() && l.Minute() == wall.Minute()
}
