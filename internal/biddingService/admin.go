package bidding

import (
	"context"
	"fmt"

	"bidding-dashboard/internal/biddingerrors"
	"bidding-dashboard/internal/models"
	"bidding-dashboard/utils"
)

// ToggleUserPermission flips whether a user may bid
func (s *BiddingService) ToggleUserPermission(ctx context.Context, userID string) (models.User, error) {
	if userID == "" {
		return models.User{}, fmt.Errorf("service: %w - empty user ID", biddingerrors.ErrInvalidUserInfo)
	}

	user, err := s.repo.ToggleUserPermission(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to toggle permission of user %s: %w", userID, err)
	}

	utils.Info("service: user permission toggled", map[string]any{"user_id": userID, "can_bid": user.CanBid})
	return user, nil
}

// DeleteBid removes one bid, then pushes the slot's state to dashboards whether or not the delete succeeded
func (s *BiddingService) DeleteBid(ctx context.Context, bidID string, slot int) error {
	if bidID == "" || slot < 1 {
		return fmt.Errorf("service: %w - bid %q on slot %d", biddingerrors.ErrBidNotFound, bidID, slot)
	}

	err := s.repo.DeleteBid(ctx, bidID, slot)

	s.goAnnounce(func() {
		s.announceSlot(context.WithoutCancel(ctx), slot)
	})

	if err != nil {
		return fmt.Errorf("service: failed to delete bid %s: %w", bidID, err)
	}
	utils.Info("service: bid deleted", map[string]any{"bid_id": bidID, "slot": slot})
	return nil
}

// ClearBids wipes every recorded bid
func (s *BiddingService) ClearBids(ctx context.Context) error {
	if err := s.repo.ClearBids(ctx); err != nil {
		return fmt.Errorf("service: failed to clear bids: %w", err)
	}
	utils.Warn("service: all bids cleared", nil)
	return nil
}

// ClearUsers removes every registered user
func (s *BiddingService) ClearUsers(ctx context.Context) error {
	if err := s.repo.ClearUsers(ctx); err != nil {
		return fmt.Errorf("service: failed to clear users: %w", err)
	}
	utils.Warn("service: all users cleared", nil)
	return nil
}

// ListUsers returns every registered user
func (s *BiddingService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list users: %w", err)
	}
	return users, nil
}

// BidsForSlot returns the bid history of one slot
func (s *BiddingService) BidsForSlot(ctx context.Context, slot int) ([]models.Bid, error) {
	if slot < 1 {
		return nil, fmt.Errorf("service: %w - got %d", biddingerrors.ErrInvalidSlot, slot)
	}
	bids, err := s.repo.BidsForSlot(ctx, slot)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for slot %d: %w", slot, err)
	}
	return bids, nil
}

// SlotViews returns the current state of every slot
func (s *BiddingService) SlotViews(ctx context.Context) ([]models.SlotView, error) {
	return s.resolver.ResolveAll(ctx)
}
