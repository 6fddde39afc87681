package dashboard

import (
	"github.com/campusworks/coursedash/internal/record"
	"github.com/campusworks/coursedash/internal/ref"
)

// Unknown is the display sentinel for a reference that is absent,
// malformed, or dangling. The UI renders it literally.
const Unknown = "–"

// resolve decodes a reference string and looks the target up in idx,
// rendering it with display. Any miss along the way yields Unknown.
func resolve[T any](idx map[string]T, reference string, display func(T) string) string {
	id, ok := ref.Decode(reference)
	if !ok {
		return Unknown
	}
	target, ok := idx[id]
	if !ok {
		return Unknown
	}
	if s := display(target); s != "" {
		return s
	}
	return Unknown
}

// RoomName resolves a course's room reference to the room name.
func (ix *Indexes) RoomName(reference string) string {
	return resolve(ix.Rooms, reference, func(r record.Room) string { return r.Name })
}

// InstructorName resolves a course's instructor reference to "First Last".
func (ix *Indexes) InstructorName(reference string) string {
	return resolve(ix.Instructors, reference, record.Instructor.FullName)
}

// CourseTitle resolves a registration's course reference to the title.
func (ix *Indexes) CourseTitle(reference string) string {
	return resolve(ix.Courses, reference, func(c record.Course) string { return c.Title })
}

// ParticipantName resolves a registration's participant reference to
// "First Last".
func (ix *Indexes) ParticipantName(reference string) string {
	return resolve(ix.Participants, reference, record.Participant.FullName)
}
