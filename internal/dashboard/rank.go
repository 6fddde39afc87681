package dashboard

import (
	"sort"

	"github.com/campusworks/coursedash/internal/record"
)

// CourseRank is one row of the chart-summary ranking.
type CourseRank struct {
	Course   record.Course
	Enrolled int
	Ratio    float64
}

// TopCoursesByFill ranks courses by enrollment/capacity ratio descending
// and returns at most n rows. Courses with zero or absent capacity rank
// with a ratio of 0. Ties keep insertion order (stable sort); the source
// data does not specify a tie-break.
func TopCoursesByFill(courses []record.Course, counts map[string]int, n int) []CourseRank {
	ranks := make([]CourseRank, 0, len(courses))
	for _, c := range courses {
		enrolled := counts[c.RecordID()]
		ranks = append(ranks, CourseRank{
			Course:   c,
			Enrolled: enrolled,
			Ratio:    FillRatio(enrolled, c.MaxParticipants),
		})
	}

	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].Ratio > ranks[j].Ratio
	})

	if n >= 0 && len(ranks) > n {
		ranks = ranks[:n]
	}
	return ranks
}

// RecentRegistrations sorts registrations by registration date descending,
// falling back to the creation timestamp when the registration date is
// absent, and returns at most n. Input is not mutated.
func RecentRegistrations(registrations []record.Registration, n int) []record.Registration {
	sorted := make([]record.Registration, len(registrations))
	copy(sorted, registrations)

	sort.SliceStable(sorted, func(i, j int) bool {
		return record.DateAfter(activityDate(sorted[i]), activityDate(sorted[j]))
	})

	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func activityDate(reg record.Registration) string {
	if reg.Date != "" {
		return reg.Date
	}
	return reg.Created
}
