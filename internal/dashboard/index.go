package dashboard

import (
	"github.com/campusworks/coursedash/internal/record"
)

// buildIndex maps record identifier to record for O(1) resolution.
// Later duplicates win, mirroring a last-write-wins store; the store
// enforces uniqueness so duplicates do not occur in practice.
func buildIndex[T record.Keyed](items []T) map[string]T {
	idx := make(map[string]T, len(items))
	for _, item := range items {
		idx[item.RecordID()] = item
	}
	return idx
}

// Indexes holds the per-collection lookup maps for one snapshot.
// Build once per render cycle with NewIndexes and share across all
// derivations for that snapshot.
type Indexes struct {
	Rooms        map[string]record.Room
	Instructors  map[string]record.Instructor
	Courses      map[string]record.Course
	Participants map[string]record.Participant
}

// NewIndexes builds lookup indexes for the snapshot's joinable collections.
// Registrations are never a join target, so they get no index.
func NewIndexes(snap *record.Snapshot) *Indexes {
	return &Indexes{
		Rooms:        buildIndex(snap.Rooms),
		Instructors:  buildIndex(snap.Instructors),
		Courses:      buildIndex(snap.Courses),
		Participants: buildIndex(snap.Participants),
	}
}
