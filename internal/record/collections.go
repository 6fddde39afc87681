package record

// Collection is the pre-registered token identifying one of the five
// collections at the record store. Tokens are configuration, not user
// input; the defaults below match the hosted store's registered names.
type Collection string

// Default collection tokens.
const (
	Rooms         Collection = "rooms"
	Instructors   Collection = "instructors"
	Courses       Collection = "courses"
	Participants  Collection = "participants"
	Registrations Collection = "registrations"
)

// Collections maps each entity type to its collection token.
type Collections struct {
	Rooms         Collection
	Instructors   Collection
	Courses       Collection
	Participants  Collection
	Registrations Collection
}

// DefaultCollections returns the default token set.
func DefaultCollections() Collections {
	return Collections{
		Rooms:         Rooms,
		Instructors:   Instructors,
		Courses:       Courses,
		Participants:  Participants,
		Registrations: Registrations,
	}
}

// All returns the five tokens in a fixed order, for iteration and
// configuration validation.
func (c Collections) All() []Collection {
	return []Collection{c.Rooms, c.Instructors, c.Courses, c.Participants, c.Registrations}
}
