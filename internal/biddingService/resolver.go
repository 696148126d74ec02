package bidding

import (
	"context"
	"errors"
	"fmt"

	"bidding-dashboard/internal/biddingerrors"
	"bidding-dashboard/internal/models"
	"bidding-dashboard/internal/repository"
	"bidding-dashboard/utils"
)

// Resolver derives slot views and events from the ledger's committed state
type Resolver struct {
	ledger    repository.Ledger
	users     repository.UserStore
	slotCount int
}

// NewResolver creates a Resolver. With slotCount > 0, ResolveAll also reports empty slots up to it.
func NewResolver(ledger repository.Ledger, users repository.UserStore, slotCount int) *Resolver {
	return &Resolver{ledger: ledger, users: users, slotCount: slotCount}
}

// bidderCache memoizes user projections for the duration of one resolution
type bidderCache map[string]models.Bidder

// ResolveSlot returns the current highest bid and every bidder tied at it
func (r *Resolver) ResolveSlot(ctx context.Context, slot int) (models.SlotView, error) {
	leaders, err := r.ledger.SlotLeaders(ctx, slot)
	if errors.Is(err, biddingerrors.ErrNoBids) {
		return models.SlotView{Index: slot - 1}, nil
	}
	if err != nil {
		return models.SlotView{}, fmt.Errorf("service: resolve slot %d: %w", slot, err)
	}
	return r.view(ctx, leaders, bidderCache{})
}

// ResolveAll returns the view of every slot, slot ascending
func (r *Resolver) ResolveAll(ctx context.Context) ([]models.SlotView, error) {
	all, err := r.ledger.AllSlotLeaders(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: resolve all slots: %w", err)
	}

	cache := bidderCache{}
	views := make([]models.SlotView, 0, max(len(all), r.slotCount))
	next := 1
	for _, leaders := range all {
		for ; next < leaders.Slot && next <= r.slotCount; next++ {
			views = append(views, models.SlotView{Index: next - 1})
		}
		view, err := r.view(ctx, leaders, cache)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
		next = leaders.Slot + 1
	}
	for ; next <= r.slotCount; next++ {
		views = append(views, models.SlotView{Index: next - 1})
	}
	return views, nil
}

// Events projects bids for display, keeping their order
func (r *Resolver) Events(ctx context.Context, bids []models.Bid) ([]models.Event, error) {
	cache := bidderCache{}
	events := make([]models.Event, 0, len(bids))
	for _, b := range bids {
		bidder, err := r.bidder(ctx, cache, b.UserID)
		if err != nil {
			return nil, err
		}
		events = append(events, models.Event{
			BidID:  b.BidID,
			Slot:   b.Slot,
			Amount: b.Amount,
			Bidder: bidder,
		})
	}
	return events, nil
}

func (r *Resolver) view(ctx context.Context, leaders models.SlotLeaders, cache bidderCache) (models.SlotView, error) {
	bidders := make([]models.Bidder, 0, len(leaders.UserIDs))
	for _, id := range leaders.UserIDs {
		bidder, err := r.bidder(ctx, cache, id)
		if err != nil {
			return models.SlotView{}, err
		}
		bidders = append(bidders, bidder)
	}

	highest := leaders.Amount
	return models.SlotView{
		Index:          leaders.Slot - 1,
		HighestBid:     &highest,
		HighestBidders: bidders,
	}, nil
}

// bidder projects a user. A user missing from the store (e.g. after a user wipe) keeps only its id.
func (r *Resolver) bidder(ctx context.Context, cache bidderCache, userID string) (models.Bidder, error) {
	if b, ok := cache[userID]; ok {
		return b, nil
	}

	user, err := r.users.GetUser(ctx, userID)
	switch {
	case errors.Is(err, biddingerrors.ErrUserNotFound):
		utils.Warn("resolver: bidder has no user record", map[string]any{"user_id": userID})
		cache[userID] = models.Bidder{UserID: userID}
	case err != nil:
		return models.Bidder{}, fmt.Errorf("service: %w - lookup of user %s: %v", biddingerrors.ErrDependency, userID, err)
	default:
		cache[userID] = models.BidderOf(user)
	}
	return cache[userID], nil
}
