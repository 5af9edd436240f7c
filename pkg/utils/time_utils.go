package utils

import "time"

const dateLayout = "2006-01-02"

// ParseDateLenient parses a calendar date ("2006-01-02"), falling back to
// RFC 3339. Returns the zero time when the value is empty or unparseable so
// the persister can tolerate sloppy model output.
func ParseDateLenient(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Time{}
}

// FormatDate renders a calendar date, "" for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func NowUnixSeconds() int64 { return time.Now().Unix() }
