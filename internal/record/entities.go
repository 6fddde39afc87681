package record

// Meta carries the store-assigned metadata present on every record.
// Identifiers are immutable once assigned; uniqueness is the store's
// contract, never checked client-side.
type Meta struct {
	ID      string `json:"_id"`
	Created string `json:"_created,omitempty"`
	Changed string `json:"_changed,omitempty"`
}

// RecordID returns the store-assigned identifier.
func (m Meta) RecordID() string {
	return m.ID
}

// Keyed is implemented by every entity via its embedded Meta.
type Keyed interface {
	RecordID() string
}

// Room is a physical room courses are scheduled into.
type Room struct {
	Meta
	Name     string `json:"name"`
	Building string `json:"building,omitempty"`
	Capacity int    `json:"capacity,omitempty"`
}

// Instructor teaches courses.
type Instructor struct {
	Meta
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Specialty string `json:"specialty,omitempty"`
}

// Course is a scheduled offering. Room and Instructor hold reference
// strings (see internal/ref), not bare identifiers. Either may be empty
// (no relation) or dangling after the target was deleted; resolution
// degrades to "unknown" rather than failing.
type Course struct {
	Meta
	Title           string  `json:"title"`
	Description     string  `json:"description,omitempty"`
	StartDate       string  `json:"startdate,omitempty"`
	EndDate         string  `json:"enddate,omitempty"`
	MaxParticipants int     `json:"maxparticipants,omitempty"`
	Price           float64 `json:"price,omitempty"`
	Room            string  `json:"room,omitempty"`
	Instructor      string  `json:"instructor,omitempty"`
}

// Participant is a person who can register for courses.
type Participant struct {
	Meta
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	BirthDate string `json:"birthdate,omitempty"`
}

// Registration links a participant to a course. Participant and Course are
// reference strings and are both required for the record to mean anything;
// Validate enforces that before any create or update goes on the wire.
// Paid is a pointer because an absent flag counts as unpaid but still
// differs from an explicit false in the raw record.
type Registration struct {
	Meta
	Participant string `json:"participant,omitempty"`
	Course      string `json:"course,omitempty"`
	Date        string `json:"date,omitempty"`
	Paid        *bool  `json:"paid,omitempty"`
}

// IsPaid reports whether the registration is marked paid.
// An absent flag counts as unpaid.
func (r Registration) IsPaid() bool {
	return r.Paid != nil && *r.Paid
}

// FullName renders an instructor as "First Last" for display.
func (i Instructor) FullName() string {
	return joinName(i.FirstName, i.LastName)
}

// FullName renders a participant as "First Last" for display.
func (p Participant) FullName() string {
	return joinName(p.FirstName, p.LastName)
}

func joinName(first, last string) string {
	switch {
	case first == "":
		return last
	case last == "":
		return first
	default:
		return first + " " + last
	}
}
