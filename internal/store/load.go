package store

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/campusworks/coursedash/internal/record"
)

// LoadAll fetches all five collections concurrently and returns one atomic
// snapshot stamped with a fresh reload token.
//
// Atomicity: if any single fetch fails, the whole load fails and no
// snapshot is returned. The dashboard never renders from a partially
// successful batch.
func (c *Client) LoadAll(ctx context.Context) (*record.Snapshot, error) {
	snap := &record.Snapshot{Token: c.tokens.Generate()}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		snap.Rooms, err = List[record.Room](ctx, c, c.cols.Rooms)
		return err
	})
	g.Go(func() (err error) {
		snap.Instructors, err = List[record.Instructor](ctx, c, c.cols.Instructors)
		return err
	})
	g.Go(func() (err error) {
		snap.Courses, err = List[record.Course](ctx, c, c.cols.Courses)
		return err
	})
	g.Go(func() (err error) {
		snap.Participants, err = List[record.Participant](ctx, c, c.cols.Participants)
		return err
	})
	g.Go(func() (err error) {
		snap.Registrations, err = List[record.Registration](ctx, c, c.cols.Registrations)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snap, nil
}
