package utils

import "time"

// DateLayout is the wire format for every date in the API: an ISO calendar
// date with no time component.
const DateLayout = "2006-01-02"

// ParseDate reads a wire date in the driver's zone. The MySQL DSN uses
// loc=Local, which converts values into the local zone before they are
// truncated into DATE columns; parsing in any other zone would shift the
// calendar day on hosts that are not UTC.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.Local)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
