package bidding

import (
	"context"
	"sync"
	"testing"
	"time"

	"bidding-dashboard/internal/auth"
	"bidding-dashboard/internal/models"
	"bidding-dashboard/internal/repository"

	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

// recordingPublisher keeps every published update
type recordingPublisher struct {
	mu      sync.Mutex
	updates []models.Update
}

func (p *recordingPublisher) Publish(update models.Update) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.updates = append(p.updates, update)
}

func (p *recordingPublisher) Updates() []models.Update {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]models.Update(nil), p.updates...)
}

// Helper to register a user in the repo
func seedUser(t *testing.T, repo repository.AuctionDB, userID string, canBid bool) models.User {
	t.Helper()
	u := models.User{
		UserID:      userID,
		FirstName:   "First-" + userID,
		LastName:    "Last-" + userID,
		Company:     "Acme",
		TableNumber: 3,
		CanBid:      canBid,
	}
	stored, err := repo.CreateUserIfMissing(context.Background(), u)
	require.NoError(t, err)
	return stored
}

// Helper to record a bid directly in the ledger
func seedBid(t *testing.T, repo repository.AuctionDB, bidID, userID string, slot int, amount float64) models.Bid {
	t.Helper()
	b := models.Bid{BidID: bidID, UserID: userID, Slot: slot, Amount: amount, CreatedAt: time.Now().UTC()}
	require.NoError(t, repo.AppendBid(context.Background(), b))
	return b
}

// newTestService wires a service over an in-memory repo with a real token maker
func newTestService(t *testing.T, opts Options) (*BiddingService, *repository.MemoryRepo, *recordingPublisher, *auth.JWTMaker) {
	t.Helper()
	maker, err := auth.NewJWTMaker(testSecret)
	require.NoError(t, err)

	repo := repository.NewMemoryRepo()
	pub := &recordingPublisher{}
	return NewBiddingService(repo, maker, pub, opts), repo, pub, maker
}

func tokenFor(t *testing.T, maker *auth.JWTMaker, userID string) string {
	t.Helper()
	token, _, err := maker.CreateToken(userID, time.Minute)
	require.NoError(t, err)
	return token
}

func ptr(f float64) *float64 { return &f }
