package dashboard

import (
	"github.com/campusworks/coursedash/internal/record"
)

// Status is the four-way course classification. It is never persisted;
// it is recomputed on every read from the current date and the stored
// start/end dates, so repeated evaluation within one render is stable.
type Status string

const (
	// StatusDraft: the course has no start date yet.
	StatusDraft Status = "draft"
	// StatusUpcoming: the start date is strictly after today.
	StatusUpcoming Status = "upcoming"
	// StatusActive: running today.
	StatusActive Status = "active"
	// StatusCompleted: the end date (or the start date when no end date is
	// set) is strictly before today.
	StatusCompleted Status = "completed"
)

// Classify returns the status of a course given today's date and the
// course's start/end dates. All three arguments are calendar-date or
// ISO-8601 strings; comparison uses the date portion only.
func Classify(today, start, end string) Status {
	if start == "" {
		return StatusDraft
	}
	last := end
	if last == "" {
		last = start
	}
	if record.DateBefore(last, today) {
		return StatusCompleted
	}
	if record.DateAfter(start, today) {
		return StatusUpcoming
	}
	return StatusActive
}

// ClassifyCourse is Classify applied to a course record.
func ClassifyCourse(today string, course record.Course) Status {
	return Classify(today, course.StartDate, course.EndDate)
}
