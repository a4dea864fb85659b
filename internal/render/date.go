package render

import (
	"strings"
	"time"
)

const (
	monthLayout   = "2006-01"
	displayLayout = "Jan 2006"
	presentLabel  = "Present"
)

// FormatDate turns a "YYYY-MM" month into a "Mon YYYY" label. Empty or
// malformed input yields "".
func FormatDate(month string) string {
	month = strings.TrimSpace(month)
	if month == "" {
		return ""
	}
	t, err := time.Parse(monthLayout, month)
	if err != nil {
		return ""
	}
	return t.Format(displayLayout)
}

// FormatDateRange renders "start - end", with "Present" replacing the end
// date of a current role.
func FormatDateRange(start, end string, current bool) string {
	last := presentLabel
	if !current {
		last = FormatDate(end)
	}
	return FormatDate(start) + " - " + last
}
