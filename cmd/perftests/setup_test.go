package perftests

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"bidding-dashboard/internal/auth"
	bidding "bidding-dashboard/internal/biddingService"
	model "bidding-dashboard/internal/models"
	repository "bidding-dashboard/internal/repository"
)

const benchSecret = "perftests-secret-0123456789abcdefgh"

// countingPublisher swallows updates, counting them
type countingPublisher struct {
	published atomic.Int64
}

func (p *countingPublisher) Publish(model.Update) {
	p.published.Add(1)
}

// setupService creates a service over the in-memory repo with numUsers registered bidders
// and returns one token per bidder
func setupService(b *testing.B, numUsers int, opts bidding.Options) (*repository.MemoryRepo, *bidding.BiddingService, []string) {
	b.Helper()

	maker, err := auth.NewJWTMaker(benchSecret)
	if err != nil {
		b.Fatalf("failed to create token maker: %v", err)
	}

	repo := repository.NewMemoryRepo()
	svc := bidding.NewBiddingService(repo, maker, &countingPublisher{}, opts)

	tokens := make([]string, numUsers)
	for i := 0; i < numUsers; i++ {
		userID := fmt.Sprintf("user_%d", i)
		_, err := repo.CreateUserIfMissing(context.Background(), model.User{
			UserID:      userID,
			FirstName:   "Load",
			LastName:    fmt.Sprintf("Tester %d", i),
			TableNumber: i % 40,
			CanBid:      true,
		})
		if err != nil {
			b.Fatalf("failed to register user: %v", err)
		}
		if tokens[i], _, err = maker.CreateToken(userID, time.Hour); err != nil {
			b.Fatalf("failed to create token: %v", err)
		}
	}
	return repo, svc, tokens
}
