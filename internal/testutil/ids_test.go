package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campusworks/coursedash/internal/ref"
)

func TestObjectIDGeneratorSequence(t *testing.T) {
	gen := NewObjectIDGenerator()

	first := gen.Next()
	second := gen.Next()

	assert.Equal(t, "000000000000000000000001", first)
	assert.Equal(t, "000000000000000000000002", second)
	assert.True(t, ref.IsID(first))
}

func TestRandomObjectIDShape(t *testing.T) {
	id := RandomObjectID()
	assert.Len(t, id, ref.IDLength)
	assert.True(t, ref.IsID(id))
	assert.NotEqual(t, id, RandomObjectID())
}

func TestSnapshotBuilderWiresReferences(t *testing.T) {
	b := NewSnapshotBuilder()
	room := b.AddRoom("Lab 1", "North", 12)
	instructor := b.AddInstructor("Ada", "Lovelace")
	course := b.AddCourse("Go Basics", "2024-06-01", "2024-06-30", 12,
		b.Ref("rooms", room.ID), b.Ref("instructors", instructor.ID))
	participant := b.AddParticipant("Grace", "Hopper")
	b.AddRegistration(b.Ref("participants", participant.ID), b.Ref("courses", course.ID), "2024-05-20", Bool(true))

	snap := b.Snapshot()
	assert.Len(t, snap.Rooms, 1)
	assert.Len(t, snap.Registrations, 1)

	id, ok := ref.Decode(snap.Courses[0].Room)
	assert.True(t, ok)
	assert.Equal(t, room.ID, id)
}
