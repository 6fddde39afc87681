package record

// Snapshot is one atomic load of all five collections.
//
// There is no local cache layer: the last successful Snapshot is the
// authoritative client-side state, replaced wholesale after every reload.
// It has a single writer (the reload routine) and many readers (the pure
// aggregation functions in internal/dashboard), so no locking is needed.
//
// Token identifies the reload that produced the snapshot. Tokens are
// time-sortable UUIDv7 strings in production and fixed strings in tests.
type Snapshot struct {
	Token         string
	Rooms         []Room
	Instructors   []Instructor
	Courses       []Course
	Participants  []Participant
	Registrations []Registration
}

// Counts returns the size of each collection in the snapshot, keyed by the
// default collection token. Used for verbose load reporting.
func (s *Snapshot) Counts() map[Collection]int {
	return map[Collection]int{
		Rooms:         len(s.Rooms),
		Instructors:   len(s.Instructors),
		Courses:       len(s.Courses),
		Participants:  len(s.Participants),
		Registrations: len(s.Registrations),
	}
}
