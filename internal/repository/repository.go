package repository

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"

	"bidding-dashboard/internal/biddingerrors"
	model "bidding-dashboard/internal/models"
)

//go:generate mockgen -destination=mock_repository.go -package=repository bidding-dashboard/internal/repository AuctionDB

// Ledger is the append-only store of accepted bids
type Ledger interface {
	AppendBid(ctx context.Context, bid model.Bid) error
	SlotLeaders(ctx context.Context, slot int) (model.SlotLeaders, error)
	AllSlotLeaders(ctx context.Context) ([]model.SlotLeaders, error)
	RecentBids(ctx context.Context, limit int) ([]model.Bid, error)
	BidsForSlot(ctx context.Context, slot int) ([]model.Bid, error)
	DeleteBid(ctx context.Context, bidID string, slot int) error
	ClearBids(ctx context.Context) error
}

// UserStore holds registered participants
type UserStore interface {
	GetUser(ctx context.Context, userID string) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	CreateUserIfMissing(ctx context.Context, user model.User) (model.User, error)
	ToggleUserPermission(ctx context.Context, userID string) (model.User, error)
	ClearUsers(ctx context.Context) error
}

// AuctionDB is the full storage capability of the event
type AuctionDB interface {
	Ledger
	UserStore
}

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionDB
type MemoryRepo struct {
	mu    sync.RWMutex
	bids  []model.Bid           // append order is recency order
	ids   map[string]struct{}   // bid ids already recorded
	users map[string]model.User // key: userID
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		ids:   make(map[string]struct{}),
		users: make(map[string]model.User),
	}
}

// AppendBid records an accepted bid
func (r *MemoryRepo) AppendBid(_ context.Context, bid model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.ids[bid.BidID]; ok {
		return fmt.Errorf("append bid %s: %w", bid.BidID, biddingerrors.ErrDuplicateBid)
	}
	r.ids[bid.BidID] = struct{}{}
	r.bids = append(r.bids, bid)
	return nil
}

// SlotLeaders returns the highest amount on a slot and every user who bid it
func (r *MemoryRepo) SlotLeaders(_ context.Context, slot int) (model.SlotLeaders, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	leaders, ok := r.leaders()[slot]
	if !ok {
		return model.SlotLeaders{}, fmt.Errorf("slot leaders for slot %d: %w", slot, biddingerrors.ErrNoBids)
	}
	return *leaders, nil
}

// AllSlotLeaders returns the leaders of every slot that has bids, slot ascending
func (r *MemoryRepo) AllSlotLeaders(_ context.Context) ([]model.SlotLeaders, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bySlot := r.leaders()
	result := make([]model.SlotLeaders, 0, len(bySlot))
	for _, l := range bySlot {
		result = append(result, *l)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Slot < result[j].Slot })
	return result, nil
}

// leaders computes the max amount and distinct max bidders per slot. Caller holds the lock.
func (r *MemoryRepo) leaders() map[int]*model.SlotLeaders {
	bySlot := make(map[int]*model.SlotLeaders)
	for _, b := range r.bids {
		cur, ok := bySlot[b.Slot]
		switch {
		case !ok || b.Amount > cur.Amount:
			bySlot[b.Slot] = &model.SlotLeaders{Slot: b.Slot, Amount: b.Amount, UserIDs: []string{b.UserID}}
		case b.Amount == cur.Amount && !slices.Contains(cur.UserIDs, b.UserID):
			cur.UserIDs = append(cur.UserIDs, b.UserID)
		}
	}
	for _, l := range bySlot {
		slices.Sort(l.UserIDs)
	}
	return bySlot
}

// RecentBids returns up to limit bids, most recent first
func (r *MemoryRepo) RecentBids(_ context.Context, limit int) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 {
		return []model.Bid{}, nil
	}
	n := min(limit, len(r.bids))
	result := make([]model.Bid, 0, n)
	for i := len(r.bids) - 1; i >= 0 && len(result) < n; i-- {
		result = append(result, r.bids[i])
	}
	return result, nil
}

// BidsForSlot returns every bid of a slot in the order they were recorded
func (r *MemoryRepo) BidsForSlot(_ context.Context, slot int) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []model.Bid{}
	for _, b := range r.bids {
		if b.Slot == slot {
			result = append(result, b)
		}
	}
	return result, nil
}

// DeleteBid removes a single bid. The slot must match the recorded one.
func (r *MemoryRepo) DeleteBid(_ context.Context, bidID string, slot int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, b := range r.bids {
		if b.BidID == bidID && b.Slot == slot {
			r.bids = append(r.bids[:i], r.bids[i+1:]...)
			delete(r.ids, bidID)
			return nil
		}
	}
	return fmt.Errorf("delete bid %s on slot %d: %w", bidID, slot, biddingerrors.ErrBidNotFound)
}

// ClearBids wipes the whole bid history
func (r *MemoryRepo) ClearBids(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.bids = nil
	r.ids = make(map[string]struct{})
	return nil
}

// GetUser returns a registered user
func (r *MemoryRepo) GetUser(_ context.Context, userID string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[userID]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, biddingerrors.ErrUserNotFound)
	}
	return u, nil
}

// ListUsers returns all users ordered by id
func (r *MemoryRepo) ListUsers(_ context.Context) ([]model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].UserID < users[j].UserID })
	return users, nil
}

// CreateUserIfMissing stores the user unless the id already exists, and returns the stored record
func (r *MemoryRepo) CreateUserIfMissing(_ context.Context, user model.User) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.users[user.UserID]; ok {
		return existing, nil
	}
	r.users[user.UserID] = user
	return user, nil
}

// ToggleUserPermission flips the bidding permission of a user
func (r *MemoryRepo) ToggleUserPermission(_ context.Context, userID string) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok {
		return model.User{}, fmt.Errorf("toggle permission for user %s: %w", userID, biddingerrors.ErrUserNotFound)
	}
	u.CanBid = !u.CanBid
	r.users[userID] = u
	return u, nil
}

// ClearUsers removes every registered user
func (r *MemoryRepo) ClearUsers(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users = make(map[string]model.User)
	return nil
}
