package bidding

import (
	"context"
	"fmt"

	"bidding-dashboard/internal/models"

	"golang.org/x/sync/errgroup"
)

// BuildSnapshot assembles the bootstrap payload for a newly connected dashboard:
// every slot view plus the size most recent bids, newest first. Both halves are
// fetched concurrently and the snapshot fails if either does.
func (s *BiddingService) BuildSnapshot(ctx context.Context, size int) (models.Update, error) {
	if size <= 0 {
		size = s.opts.SnapshotSize
	}

	var (
		slots  []models.SlotView
		events []models.Event
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		slots, err = s.resolver.ResolveAll(gctx)
		return err
	})
	g.Go(func() error {
		bids, err := s.repo.RecentBids(gctx, size)
		if err != nil {
			return fmt.Errorf("service: recent bids: %w", err)
		}
		events, err = s.resolver.Events(gctx, bids)
		return err
	})

	if err := g.Wait(); err != nil {
		return models.Update{}, fmt.Errorf("service: build snapshot: %w", err)
	}
	return models.Update{Slots: slots, Events: events}, nil
}
