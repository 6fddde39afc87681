package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campusworks/coursedash/internal/record"
	"github.com/campusworks/coursedash/internal/testutil"
)

func TestEnrollmentCounts(t *testing.T) {
	b := testutil.NewSnapshotBuilder()
	c1 := b.AddCourse("C1", "2024-06-01", "", 10, "", "")
	c2 := b.AddCourse("C2", "2024-06-01", "", 10, "", "")
	c3 := b.AddCourse("C3", "2024-06-01", "", 10, "", "")
	p := b.AddParticipant("Grace", "Hopper")
	pRef := b.Ref(record.Participants, p.ID)

	b.AddRegistration(pRef, b.Ref(record.Courses, c1.ID), "2024-05-01", testutil.Bool(true))
	b.AddRegistration(pRef, b.Ref(record.Courses, c1.ID), "2024-05-02", testutil.Bool(true))
	b.AddRegistration(pRef, b.Ref(record.Courses, c2.ID), "2024-05-03", testutil.Bool(true))
	// Absent and malformed course references are uncounted.
	b.AddRegistration(pRef, "", "2024-05-04", nil)
	b.AddRegistration(pRef, "not-a-url", "2024-05-05", nil)

	counts := EnrollmentCounts(b.Snapshot().Registrations)

	assert.Equal(t, 2, counts[c1.ID])
	assert.Equal(t, 1, counts[c2.ID])
	assert.Equal(t, 0, counts[c3.ID], "course with no registrations")
	assert.Len(t, counts, 2, "uncounted registrations appear under no key")
}

func TestFillRatioZeroCapacity(t *testing.T) {
	assert.Equal(t, 0.0, FillRatio(3, 0), "zero capacity ranks as 0, no division error")
	assert.Equal(t, 0.0, FillRatio(0, 10))
	assert.Equal(t, 0.5, FillRatio(5, 10))
}

func TestFillPercentClamped(t *testing.T) {
	tests := []struct {
		name               string
		enrolled, capacity int
		want               int
	}{
		{"overbooked clamps to 100", 12, 10, 100},
		{"exact capacity", 10, 10, 100},
		{"half full", 5, 10, 50},
		{"empty", 0, 10, 0},
		{"zero capacity", 3, 0, 0},
		{"absent capacity", 3, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FillPercent(tt.enrolled, tt.capacity))
		})
	}
}

func TestUnpaidCount(t *testing.T) {
	regs := []record.Registration{
		{Paid: testutil.Bool(true)},
		{Paid: testutil.Bool(false)},
		{Paid: nil},
	}

	assert.Equal(t, 2, UnpaidCount(regs), "false and absent both count as unpaid")
	assert.Equal(t, 0, UnpaidCount(nil))
}
