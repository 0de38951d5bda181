package dateutil

import "time"

// Accepted input layouts, in order of preference. The backend returns either
// full RFC 3339 timestamps or bare dates depending on the resource.
var layouts = []string{
	time.RFC3339,
	"2006-01-02",
}

// parse tries each known layout and reports whether any matched.
func parse(value string) (time.Time, bool) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders a backend date for display in the en-GB short form,
// e.g. "5 Mar 2024". Unparseable values are returned unchanged.
func FormatDate(value string) string {
	t, ok := parse(value)
	if !ok {
		return value
	}
	return t.Format("2 Jan 2006")
}

// FormatForInput renders a backend date as "2006-01-02" so it can populate
// an HTML date input. Unparseable values are returned unchanged.
func FormatForInput(value string) string {
	t, ok := parse(value)
	if !ok {
		return value
	}
	return t.Format("2006-01-02")
}
