// Package testutil provides deterministic fixtures for dashboard and
// store tests: object-id generation and a snapshot builder that wires
// cross-collection references the same way production data does.
package testutil

import (
	"github.com/campusworks/coursedash/internal/record"
	"github.com/campusworks/coursedash/internal/ref"
)

// BaseURL is the store base used for all fixture reference strings.
const BaseURL = "https://courseadmin-test.restdb.io"

// Bool returns a pointer to b, for optional paid flags.
func Bool(b bool) *bool {
	return &b
}

// SnapshotBuilder accumulates records into a record.Snapshot with
// deterministic identifiers and properly encoded references.
//
// Records are assigned ids in insertion order across all collections, so a
// fixture reads top to bottom like the dataset it builds.
type SnapshotBuilder struct {
	ids  *ObjectIDGenerator
	snap record.Snapshot
}

// NewSnapshotBuilder creates an empty builder.
func NewSnapshotBuilder() *SnapshotBuilder {
	return &SnapshotBuilder{
		ids:  NewObjectIDGenerator(),
		snap: record.Snapshot{Token: "fixture"},
	}
}

// Ref encodes a reference string to a record in a collection, using the
// fixture base URL. Pass any id, including ones the snapshot does not
// contain, to build dangling references.
func (b *SnapshotBuilder) Ref(collection record.Collection, id string) string {
	return ref.Encode(BaseURL, string(collection), id)
}

// AddRoom appends a room and returns it with its assigned id.
func (b *SnapshotBuilder) AddRoom(name, building string, capacity int) record.Room {
	room := record.Room{
		Meta:     record.Meta{ID: b.ids.Next()},
		Name:     name,
		Building: building,
		Capacity: capacity,
	}
	b.snap.Rooms = append(b.snap.Rooms, room)
	return room
}

// AddInstructor appends an instructor and returns it with its assigned id.
func (b *SnapshotBuilder) AddInstructor(first, last string) record.Instructor {
	instructor := record.Instructor{
		Meta:      record.Meta{ID: b.ids.Next()},
		FirstName: first,
		LastName:  last,
	}
	b.snap.Instructors = append(b.snap.Instructors, instructor)
	return instructor
}

// AddCourse appends a course. roomRef and instructorRef are full reference
// strings (use Ref) or empty for no relation.
func (b *SnapshotBuilder) AddCourse(title, start, end string, maxParticipants int, roomRef, instructorRef string) record.Course {
	course := record.Course{
		Meta:            record.Meta{ID: b.ids.Next()},
		Title:           title,
		StartDate:       start,
		EndDate:         end,
		MaxParticipants: maxParticipants,
		Room:            roomRef,
		Instructor:      instructorRef,
	}
	b.snap.Courses = append(b.snap.Courses, course)
	return course
}

// AddParticipant appends a participant and returns it with its assigned id.
func (b *SnapshotBuilder) AddParticipant(first, last string) record.Participant {
	participant := record.Participant{
		Meta:      record.Meta{ID: b.ids.Next()},
		FirstName: first,
		LastName:  last,
	}
	b.snap.Participants = append(b.snap.Participants, participant)
	return participant
}

// AddRegistration appends a registration. participantRef and courseRef are
// full reference strings or empty; paid may be nil for an absent flag.
func (b *SnapshotBuilder) AddRegistration(participantRef, courseRef, date string, paid *bool) record.Registration {
	id := b.ids.Next()
	registration := record.Registration{
		Meta:        record.Meta{ID: id, Created: date},
		Participant: participantRef,
		Course:      courseRef,
		Date:        date,
		Paid:        paid,
	}
	b.snap.Registrations = append(b.snap.Registrations, registration)
	return registration
}

// Snapshot returns the accumulated snapshot.
func (b *SnapshotBuilder) Snapshot() *record.Snapshot {
	return &b.snap
}
