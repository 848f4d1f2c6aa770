package location

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"
)

const (
	dateLayout           = "2006-01-02"
	localTimeLayout      = "15:04"
	localTimeZonedLayout = "15:04-07:00"

	datetimeNaiveLayout = "2006-01-02T15:04:05"
	datetimeZoneLayout  = "-07:00"

	// Unix timestamps above this many seconds are taken to be milliseconds.
	unixMillisThreshold = 2e10
)

var (
	dateInputLayouts = []string{"2006-1-2"}

	localTimeNaiveLayouts = []string{"15:04", "15:04:05"}
	localTimeZonedLayouts = []string{
		"15:04Z07:00", "15:04:05Z07:00",
		"15:04Z0700", "15:04:05Z0700",
		"15:04Z07", "15:04:05Z07",
	}

	datetimeZonedLayouts = []string{
		"2006-01-02T15:04:05Z07:00",
		"2006-01-02T15:04:05Z0700",
		"2006-01-02T15:04:05Z07",
		"2006-01-02 15:04:05Z07:00",
		"2006-01-02 15:04:05Z0700",
		"2006-01-02 15:04:05Z07",
		"2006-01-02T15:04Z07:00",
		"2006-01-02T15:04Z07",
		"2006-01-02 15:04Z07:00",
		"2006-01-02 15:04Z07",
	}
	datetimeNaiveLayouts = []string{
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04",
		"2006-01-02 15:04",
	}
)

// Date is an ISO 8601 calendar date, canonically YYYY-MM-DD.
type Date string

// NewDate formats t as a Date.
func NewDate(t time.Time) Date {
	return Date(t.Format(dateLayout))
}

// Time parses d. It fails on dates not yet normalized.
func (d Date) Time() (time.Time, error) {
	return time.Parse(dateLayout, string(d))
}

func (d Date) normalize() Date {
	s := strings.TrimSpace(string(d))
	for _, layout := range dateInputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return NewDate(t)
		}
	}
	return Date(s)
}

// LocalTime is a 24h wall-clock time, canonically hh:mm, or hh:mm+hh:mm
// when it carries a UTC offset.
type LocalTime string

// NewLocalTime formats the hour and minute of t as a naive LocalTime.
func NewLocalTime(t time.Time) LocalTime {
	return LocalTime(t.Format(localTimeLayout))
}

func (lt LocalTime) normalize() LocalTime {
	s := strings.TrimSpace(string(lt))
	for _, layout := range localTimeNaiveLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return NewLocalTime(t)
		}
	}
	for _, layout := range localTimeZonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return LocalTime(t.Format(localTimeZonedLayout))
		}
	}
	return LocalTime(s)
}

// clock parses a canonical LocalTime. Naive times are placed in UTC.
func (lt LocalTime) clock() (t time.Time, zoned, ok bool) {
	s := string(lt)
	for _, layout := range []string{localTimeLayout, localTimeZonedLayout} {
		if len(s) != len(layout) {
			continue
		}
		if t, err := time.Parse(layout, s); err == nil {
			return t, layout == localTimeZonedLayout, true
		}
	}
	return time.Time{}, false, false
}

// Datetime is an ISO 8601 datetime. Zoned values carry an explicit +hh:mm
// offset; naive values carry none.
type Datetime string

// NewDatetime formats t as a zoned Datetime with microsecond precision.
func NewDatetime(t time.Time) Datetime {
	return Datetime(formatDatetime(t, true))
}

// Time parses dt. Naive datetimes are returned in UTC.
func (dt Datetime) Time() (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, string(dt)); err == nil {
		return t, nil
	}
	return time.Parse(datetimeNaiveLayout+".999999", string(dt))
}

// UnmarshalJSON accepts strings and Unix timestamps in seconds or milliseconds.
func (dt *Datetime) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*dt = Datetime(s)
		return nil
	}

	var ts float64
	if err := json.Unmarshal(data, &ts); err != nil {
		return &json.UnmarshalTypeError{Value: string(data), Type: reflect.TypeFor[Datetime]()}
	}
	*dt = NewDatetime(fromUnix(ts))
	return nil
}

func (dt Datetime) normalize() Datetime {
	s := strings.TrimSpace(string(dt))
	if canonical, ok := parseDatetime(s); ok {
		return Datetime(canonical)
	}
	return Datetime(s)
}

func parseDatetime(s string) (string, bool) {
	for _, layout := range datetimeZonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return formatDatetime(t, true), true
		}
	}
	for _, layout := range datetimeNaiveLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return formatDatetime(t, false), true
		}
	}
	return "", false
}

func fromUnix(ts float64) time.Time {
	if math.Abs(ts) > unixMillisThreshold {
		ts /= 1000
	}
	sec, frac := math.Modf(ts)
	return time.Unix(int64(sec), int64(math.Round(frac*1e6))*1e3).UTC()
}

func formatDatetime(t time.Time, zoned bool) string {
	var b strings.Builder
	b.WriteString(t.Format(datetimeNaiveLayout))
	if us := t.Nanosecond() / 1e3; us != 0 {
		fmt.Fprintf(&b, ".%06d", us)
	}
	if zoned {
		b.WriteString(t.Format(datetimeZoneLayout))
	}
	return b.String()
}

func isCanonicalDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil && len(s) == len(dateLayout)
}

func isCanonicalLocalTime(s string) bool {
	_, _, ok := LocalTime(s).clock()
	return ok
}

func isCanonicalDatetime(s string) bool {
	canonical, ok := parseDatetime(s)
	return ok && canonical == s
}
