package dashboard

import (
	"github.com/campusworks/coursedash/internal/record"
)

// Totals counts the raw collection sizes.
type Totals struct {
	Rooms         int `json:"rooms"`
	Instructors   int `json:"instructors"`
	Courses       int `json:"courses"`
	Participants  int `json:"participants"`
	Registrations int `json:"registrations"`
}

// StatusCounts breaks the course list down by classification.
type StatusCounts struct {
	Draft     int `json:"draft"`
	Upcoming  int `json:"upcoming"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
}

// CourseSummary is one dashboard table row: the course joined against its
// room and instructor plus the derived enrollment figures.
type CourseSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Status      Status `json:"status"`
	Room        string `json:"room"`
	Instructor  string `json:"instructor"`
	Enrolled    int    `json:"enrolled"`
	Capacity    int    `json:"capacity"`
	FillPercent int    `json:"fill_percent"`
}

// ActivityEntry is one row of the recent-activity list.
type ActivityEntry struct {
	Participant string `json:"participant"`
	Course      string `json:"course"`
	Date        string `json:"date"`
	Paid        bool   `json:"paid"`
}

// Summary is the fully derived dashboard state for one snapshot, ready for
// rendering as tables, cards, and charts.
type Summary struct {
	Today               string          `json:"today"`
	Totals              Totals          `json:"totals"`
	CourseStatus        StatusCounts    `json:"course_status"`
	UnpaidRegistrations int             `json:"unpaid_registrations"`
	AverageFillPercent  int             `json:"average_fill_percent"`
	Courses             []CourseSummary `json:"courses"`
	TopCourses          []CourseSummary `json:"top_courses"`
	RecentActivity      []ActivityEntry `json:"recent_activity"`
}

// BuildSummary derives the complete dashboard summary from a snapshot.
//
// today is the reference date for status classification (YYYY-MM-DD).
// topN bounds the chart ranking, recentN the activity list; pass a
// negative value for no bound. The snapshot is not mutated.
func BuildSummary(snap *record.Snapshot, today string, topN, recentN int) Summary {
	ix := NewIndexes(snap)
	counts := EnrollmentCounts(snap.Registrations)

	summary := Summary{
		Today: record.DateOnly(today),
		Totals: Totals{
			Rooms:         len(snap.Rooms),
			Instructors:   len(snap.Instructors),
			Courses:       len(snap.Courses),
			Participants:  len(snap.Participants),
			Registrations: len(snap.Registrations),
		},
		UnpaidRegistrations: UnpaidCount(snap.Registrations),
		Courses:             make([]CourseSummary, 0, len(snap.Courses)),
	}

	fillSum := 0
	for _, c := range snap.Courses {
		row := courseRow(ix, counts, today, c)
		summary.Courses = append(summary.Courses, row)
		fillSum += row.FillPercent

		switch row.Status {
		case StatusDraft:
			summary.CourseStatus.Draft++
		case StatusUpcoming:
			summary.CourseStatus.Upcoming++
		case StatusActive:
			summary.CourseStatus.Active++
		case StatusCompleted:
			summary.CourseStatus.Completed++
		}
	}
	if len(snap.Courses) > 0 {
		summary.AverageFillPercent = fillSum / len(snap.Courses)
	}

	summary.TopCourses = []CourseSummary{}
	for _, rank := range TopCoursesByFill(snap.Courses, counts, topN) {
		summary.TopCourses = append(summary.TopCourses, courseRow(ix, counts, today, rank.Course))
	}

	summary.RecentActivity = []ActivityEntry{}
	for _, reg := range RecentRegistrations(snap.Registrations, recentN) {
		summary.RecentActivity = append(summary.RecentActivity, ActivityEntry{
			Participant: ix.ParticipantName(reg.Participant),
			Course:      ix.CourseTitle(reg.Course),
			Date:        record.DateOnly(activityDate(reg)),
			Paid:        reg.IsPaid(),
		})
	}

	return summary
}

func courseRow(ix *Indexes, counts map[string]int, today string, c record.Course) CourseSummary {
	enrolled := counts[c.RecordID()]
	return CourseSummary{
		ID:          c.RecordID(),
		Title:       c.Title,
		Status:      ClassifyCourse(today, c),
		Room:        ix.RoomName(c.Room),
		Instructor:  ix.InstructorName(c.Instructor),
		Enrolled:    enrolled,
		Capacity:    c.MaxParticipants,
		FillPercent: FillPercent(enrolled, c.MaxParticipants),
	}
}
