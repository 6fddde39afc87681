package record

// Dates in the store are either calendar-date strings (YYYY-MM-DD) or full
// ISO-8601 timestamps. All ordering and comparison normalizes to the date
// portion only; lexicographic comparison on the YYYY-MM-DD prefix is valid
// for ordering.

const dateLen = len("2006-01-02")

// DateOnly returns the YYYY-MM-DD prefix of a date or timestamp string.
// Shorter or empty input is returned unchanged; it simply sorts low.
func DateOnly(s string) string {
	if len(s) > dateLen {
		return s[:dateLen]
	}
	return s
}

// DateBefore reports whether a's date portion is strictly before b's.
func DateBefore(a, b string) bool {
	return DateOnly(a) < DateOnly(b)
}

// DateAfter reports whether a's date portion is strictly after b's.
func DateAfter(a, b string) bool {
	return DateOnly(a) > DateOnly(b)
}
