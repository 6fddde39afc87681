package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusworks/coursedash/internal/record"
	"github.com/campusworks/coursedash/internal/testutil"
)

func TestTopCoursesByFill(t *testing.T) {
	b := testutil.NewSnapshotBuilder()
	half := b.AddCourse("Half", "2024-06-01", "", 10, "", "")
	full := b.AddCourse("Full", "2024-06-01", "", 2, "", "")
	empty := b.AddCourse("Empty", "2024-06-01", "", 10, "", "")
	noCap := b.AddCourse("NoCap", "2024-06-01", "", 0, "", "")
	p := b.AddParticipant("Grace", "Hopper")
	pRef := b.Ref(record.Participants, p.ID)

	for i := 0; i < 5; i++ {
		b.AddRegistration(pRef, b.Ref(record.Courses, half.ID), "2024-05-01", nil)
	}
	for i := 0; i < 2; i++ {
		b.AddRegistration(pRef, b.Ref(record.Courses, full.ID), "2024-05-01", nil)
	}
	// Registrations against a zero-capacity course rank it with ratio 0.
	for i := 0; i < 3; i++ {
		b.AddRegistration(pRef, b.Ref(record.Courses, noCap.ID), "2024-05-01", nil)
	}

	snap := b.Snapshot()
	counts := EnrollmentCounts(snap.Registrations)

	ranks := TopCoursesByFill(snap.Courses, counts, 3)
	require.Len(t, ranks, 3)

	assert.Equal(t, full.ID, ranks[0].Course.RecordID())
	assert.Equal(t, 1.0, ranks[0].Ratio)
	assert.Equal(t, half.ID, ranks[1].Course.RecordID())
	assert.Equal(t, 0.5, ranks[1].Ratio)
	// Empty and NoCap tie at 0; stable sort keeps insertion order, so
	// Empty (inserted before NoCap) takes the last slot.
	assert.Equal(t, empty.ID, ranks[2].Course.RecordID())
	assert.Equal(t, 0.0, ranks[2].Ratio)
}

func TestTopCoursesByFillUnbounded(t *testing.T) {
	b := testutil.NewSnapshotBuilder()
	b.AddCourse("A", "2024-06-01", "", 10, "", "")
	b.AddCourse("B", "2024-06-01", "", 10, "", "")

	ranks := TopCoursesByFill(b.Snapshot().Courses, nil, -1)
	assert.Len(t, ranks, 2)
}

func TestRecentRegistrations(t *testing.T) {
	b := testutil.NewSnapshotBuilder()
	p := b.AddParticipant("Grace", "Hopper")
	pRef := b.Ref(record.Participants, p.ID)

	oldest := b.AddRegistration(pRef, "", "2024-04-01", nil)
	newest := b.AddRegistration(pRef, "", "2024-06-10", nil)
	middle := b.AddRegistration(pRef, "", "2024-05-15", nil)

	recent := RecentRegistrations(b.Snapshot().Registrations, 2)
	require.Len(t, recent, 2)
	assert.Equal(t, newest.ID, recent[0].ID)
	assert.Equal(t, middle.ID, recent[1].ID)
	_ = oldest
}

func TestRecentRegistrationsFallsBackToCreationTimestamp(t *testing.T) {
	withDate := record.Registration{Meta: record.Meta{ID: "a", Created: "2024-01-01T08:00:00Z"}, Date: "2024-06-01"}
	noDate := record.Registration{Meta: record.Meta{ID: "b", Created: "2024-06-20T08:00:00Z"}}

	recent := RecentRegistrations([]record.Registration{withDate, noDate}, -1)
	require.Len(t, recent, 2)
	assert.Equal(t, "b", recent[0].ID, "creation timestamp used when registration date is absent")
}

func TestRecentRegistrationsDoesNotMutateInput(t *testing.T) {
	regs := []record.Registration{
		{Meta: record.Meta{ID: "a"}, Date: "2024-04-01"},
		{Meta: record.Meta{ID: "b"}, Date: "2024-06-01"},
	}

	_ = RecentRegistrations(regs, 1)

	assert.Equal(t, "a", regs[0].ID)
	assert.Equal(t, "b", regs[1].ID)
}
