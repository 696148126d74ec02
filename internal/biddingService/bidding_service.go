package bidding

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"bidding-dashboard/internal/auth"
	"bidding-dashboard/internal/biddingerrors"
	"bidding-dashboard/internal/models"
	"bidding-dashboard/internal/repository"
	"bidding-dashboard/utils"

	"golang.org/x/sync/errgroup"
)

const (
	DefaultSnapshotSize = 30
	DefaultWriteTimeout = 5 * time.Second
)

// Publisher fans a dashboard update out to connected clients
type Publisher interface {
	Publish(update models.Update)
}

// Responder receives the outcome of a submission. It is called exactly once,
// before any broadcast work for that submission starts.
type Responder func(bid models.Bid, err error)

// Options tunes the service. Zero values fall back to defaults.
type Options struct {
	SnapshotSize int
	SlotCount    int
	WriteTimeout time.Duration
}

// BiddingService runs the bid submission pipeline and the admin operations of the event
type BiddingService struct {
	repo      repository.AuctionDB
	verifier  auth.Verifier
	publisher Publisher
	resolver  *Resolver
	opts      Options

	mu            sync.Mutex
	closed        bool
	announcements sync.WaitGroup
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(repo repository.AuctionDB, verifier auth.Verifier, publisher Publisher, opts Options) *BiddingService {
	if opts.SnapshotSize <= 0 {
		opts.SnapshotSize = DefaultSnapshotSize
	}
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = DefaultWriteTimeout
	}
	return &BiddingService{
		repo:      repo,
		verifier:  verifier,
		publisher: publisher,
		resolver:  NewResolver(repo, repo, opts.SlotCount),
		opts:      opts,
	}
}

// SubmitUserBid runs a user submission end to end. Nothing enters the pipeline while
// the session has bidding disabled. An accepted bid is announced after respond returns.
func (s *BiddingService) SubmitUserBid(ctx context.Context, session *Session, token string, raw models.RawBid, respond Responder) {
	if !session.BiddingAllowed() {
		respond(models.Bid{}, fmt.Errorf("service: %w", biddingerrors.ErrBiddingDisabled))
		return
	}

	bid, err := s.PlaceUserBid(ctx, token, raw)
	s.finish(ctx, bid, err, respond)
}

// SubmitAdminBid registers the bidder if needed and records the bid on their behalf.
// Admin submissions are accepted whatever the session state.
func (s *BiddingService) SubmitAdminBid(ctx context.Context, reg models.Registration, raw models.RawBid, respond Responder) {
	bid, err := s.PlaceAdminBid(ctx, reg, raw)
	s.finish(ctx, bid, err, respond)
}

// PlaceUserBid identifies the caller, checks their rights, validates and records the bid
func (s *BiddingService) PlaceUserBid(ctx context.Context, token string, raw models.RawBid) (models.Bid, error) {
	identity := s.identify(token)

	if identity.Authenticated {
		var err error
		if identity, err = s.checkPermission(ctx, identity); err != nil {
			return models.Bid{}, err
		}
	}

	validated, err := ValidateBid(identity, raw, s.opts.SlotCount)
	if err != nil {
		return models.Bid{}, err
	}
	return s.persist(ctx, validated)
}

// PlaceAdminBid records a bid for the user described by reg, creating the user when missing
func (s *BiddingService) PlaceAdminBid(ctx context.Context, reg models.Registration, raw models.RawBid) (models.Bid, error) {
	user, err := validateRegistration(reg)
	if err != nil {
		return models.Bid{}, err
	}

	stored, err := s.repo.CreateUserIfMissing(ctx, user)
	if err != nil {
		utils.Error("service: register bidder failed", map[string]any{"user_id": user.UserID, "error": err.Error()})
		return models.Bid{}, fmt.Errorf("service: %w - register user %s: %v", biddingerrors.ErrDependency, user.UserID, err)
	}

	identity := models.Identity{
		Authenticated: true,
		UserID:        stored.UserID,
		CanBid:        stored.CanBid,
		Admin:         true,
	}
	validated, err := ValidateBid(identity, raw, s.opts.SlotCount)
	if err != nil {
		return models.Bid{}, err
	}
	return s.persist(ctx, validated)
}

// identify resolves the auth token. Missing, invalid and expired tokens all yield an unauthenticated identity.
func (s *BiddingService) identify(token string) models.Identity {
	if token == "" {
		return models.Identity{}
	}
	payload, err := s.verifier.VerifyToken(token)
	if err != nil {
		utils.Debug("service: token rejected", map[string]any{"error": err.Error()})
		return models.Identity{}
	}
	return models.Identity{Authenticated: true, UserID: payload.UserID()}
}

// checkPermission re-reads the user's bidding rights from the store
func (s *BiddingService) checkPermission(ctx context.Context, identity models.Identity) (models.Identity, error) {
	user, err := s.repo.GetUser(ctx, identity.UserID)
	switch {
	case errors.Is(err, biddingerrors.ErrUserNotFound):
		identity.CanBid = false
	case err != nil:
		utils.Error("service: permission lookup failed", map[string]any{"user_id": identity.UserID, "error": err.Error()})
		return models.Identity{}, fmt.Errorf("service: %w - permission of user %s: %v", biddingerrors.ErrDependency, identity.UserID, err)
	default:
		identity.CanBid = user.CanBid
	}
	return identity, nil
}

// persist appends the bid to the ledger once. A failed write is reported, never retried.
func (s *BiddingService) persist(ctx context.Context, validated models.ValidatedBid) (models.Bid, error) {
	bid := models.Bid{
		BidID:     utils.NewBidID(),
		UserID:    validated.UserID,
		Slot:      validated.Slot,
		Amount:    validated.Amount,
		CreatedAt: time.Now().UTC(),
	}

	writeCtx, cancel := context.WithTimeout(ctx, s.opts.WriteTimeout)
	defer cancel()

	if err := s.repo.AppendBid(writeCtx, bid); err != nil {
		utils.Error("service: ledger write failed", map[string]any{
			"bid_id":  bid.BidID,
			"user_id": bid.UserID,
			"slot":    bid.Slot,
			"error":   err.Error(),
		})
		return models.Bid{}, fmt.Errorf("service: %w - slot %d by user %s: %v", biddingerrors.ErrPersistence, bid.Slot, bid.UserID, err)
	}

	utils.Info("service: bid recorded", map[string]any{
		"bid_id":  bid.BidID,
		"user_id": bid.UserID,
		"slot":    bid.Slot,
		"amount":  bid.Amount,
	})
	return bid, nil
}

// finish responds to the caller, then announces an accepted bid in the background
func (s *BiddingService) finish(ctx context.Context, bid models.Bid, err error, respond Responder) {
	respond(bid, err)
	if err != nil {
		return
	}

	s.goAnnounce(func() {
		s.Announce(context.WithoutCancel(ctx), bid)
	})
}

// goAnnounce runs fn in the background unless the service is closed
func (s *BiddingService) goAnnounce(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		utils.Warn("service: closed, announcement skipped", nil)
		return
	}
	s.announcements.Add(1)
	go func() {
		defer s.announcements.Done()
		fn()
	}()
}

// Announce publishes the new state of the bid's slot together with the bid as a live event.
// Failures are logged; the recorded bid stands.
func (s *BiddingService) Announce(ctx context.Context, bid models.Bid) {
	var (
		view   models.SlotView
		events []models.Event
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		view, err = s.resolver.ResolveSlot(gctx, bid.Slot)
		return err
	})
	g.Go(func() error {
		var err error
		events, err = s.resolver.Events(gctx, []models.Bid{bid})
		return err
	})

	if err := g.Wait(); err != nil {
		utils.Error("service: announce failed", map[string]any{"bid_id": bid.BidID, "slot": bid.Slot, "error": err.Error()})
		return
	}

	s.publisher.Publish(models.Update{
		Slots:        []models.SlotView{view},
		Events:       events,
		IsLiveUpdate: true,
	})
}

// announceSlot publishes the current state of one slot without events
func (s *BiddingService) announceSlot(ctx context.Context, slot int) {
	view, err := s.resolver.ResolveSlot(ctx, slot)
	if err != nil {
		utils.Error("service: announce slot failed", map[string]any{"slot": slot, "error": err.Error()})
		return
	}
	s.publisher.Publish(models.Update{
		Slots:        []models.SlotView{view},
		Events:       []models.Event{},
		IsLiveUpdate: true,
	})
}

// Wait blocks until every pending announcement has been published or dropped
func (s *BiddingService) Wait() {
	s.announcements.Wait()
}

// Close stops scheduling announcements and waits for the pending ones.
// Submissions still running afterwards are answered but not announced.
func (s *BiddingService) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.announcements.Wait()
}
