package dashboard

import (
	"github.com/campusworks/coursedash/internal/record"
	"github.com/campusworks/coursedash/internal/ref"
)

// EnrollmentCounts counts registrations per course identifier.
//
// A registration whose course reference is absent, malformed, or not a
// decodable identifier is uncounted; it does not show up under any key.
// Each registration contributes at most once.
func EnrollmentCounts(registrations []record.Registration) map[string]int {
	counts := make(map[string]int)
	for _, reg := range registrations {
		courseID, ok := ref.Decode(reg.Course)
		if !ok {
			continue
		}
		counts[courseID]++
	}
	return counts
}

// FillRatio returns enrolled/capacity as a ratio for ranking.
// Zero or negative capacity yields 0, never a division error.
func FillRatio(enrolled, capacity int) float64 {
	if capacity <= 0 {
		return 0
	}
	return float64(enrolled) / float64(capacity)
}

// FillPercent returns the fill rate as an integer percentage clamped to
// [0, 100]. Overbooked courses report 100, not 120.
func FillPercent(enrolled, capacity int) int {
	pct := int(FillRatio(enrolled, capacity) * 100)
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}

// UnpaidCount counts registrations whose paid flag is false or absent.
func UnpaidCount(registrations []record.Registration) int {
	n := 0
	for _, reg := range registrations {
		if !reg.IsPaid() {
			n++
		}
	}
	return n
}
