package bidding

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"bidding-dashboard/internal/auth"
	"bidding-dashboard/internal/biddingerrors"
	"bidding-dashboard/internal/models"
	"bidding-dashboard/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

// Tests SubmitUserBid end to end over the in-memory repo
func TestBiddingService_SubmitUserBid(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		enabled       bool
		token         func(t *testing.T, maker *auth.JWTMaker) string
		raw           models.RawBid
		expectedError error
	}{
		{
			name:    "accepted",
			enabled: true,
			token:   func(t *testing.T, m *auth.JWTMaker) string { return tokenFor(t, m, "bidder") },
			raw:     models.RawBid{Slot: float64(2), Bid: float64(75)},
		},
		{
			name:          "bidding_disabled",
			enabled:       false,
			token:         func(t *testing.T, m *auth.JWTMaker) string { return tokenFor(t, m, "bidder") },
			raw:           models.RawBid{Slot: float64(2), Bid: float64(75)},
			expectedError: biddingerrors.ErrBiddingDisabled,
		},
		{
			name:          "missing_token",
			enabled:       true,
			token:         func(*testing.T, *auth.JWTMaker) string { return "" },
			raw:           models.RawBid{Slot: float64(2), Bid: float64(75)},
			expectedError: biddingerrors.ErrUnauthorized,
		},
		{
			name:          "garbage_token",
			enabled:       true,
			token:         func(*testing.T, *auth.JWTMaker) string { return "not-a-jwt" },
			raw:           models.RawBid{Slot: float64(2), Bid: float64(75)},
			expectedError: biddingerrors.ErrUnauthorized,
		},
		{
			name:          "blocked_user",
			enabled:       true,
			token:         func(t *testing.T, m *auth.JWTMaker) string { return tokenFor(t, m, "blocked") },
			raw:           models.RawBid{Slot: float64(2), Bid: float64(75)},
			expectedError: biddingerrors.ErrForbidden,
		},
		{
			name:          "unknown_user",
			enabled:       true,
			token:         func(t *testing.T, m *auth.JWTMaker) string { return tokenFor(t, m, "stranger") },
			raw:           models.RawBid{Slot: float64(2), Bid: float64(75)},
			expectedError: biddingerrors.ErrForbidden,
		},
		{
			name:          "invalid_slot",
			enabled:       true,
			token:         func(t *testing.T, m *auth.JWTMaker) string { return tokenFor(t, m, "bidder") },
			raw:           models.RawBid{Slot: float64(0), Bid: float64(75)},
			expectedError: biddingerrors.ErrInvalidSlot,
		},
		{
			name:          "invalid_amount",
			enabled:       true,
			token:         func(t *testing.T, m *auth.JWTMaker) string { return tokenFor(t, m, "bidder") },
			raw:           models.RawBid{Slot: float64(2), Bid: "abc"},
			expectedError: biddingerrors.ErrInvalidAmount,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			s, repo, pub, maker := newTestService(t, Options{})
			seedUser(t, repo, "bidder", true)
			seedUser(t, repo, "blocked", false)

			calls := 0
			var gotBid models.Bid
			var gotErr error
			s.SubmitUserBid(ctx, NewSession(tc.enabled), tc.token(t, maker), tc.raw, func(b models.Bid, err error) {
				calls++
				gotBid, gotErr = b, err
			})
			s.Wait()

			require.Equal(t, 1, calls)
			recent, err := repo.RecentBids(ctx, 10)
			require.NoError(t, err)

			if tc.expectedError != nil {
				require.ErrorIs(t, gotErr, tc.expectedError)
				require.Empty(t, recent)
				require.Empty(t, pub.Updates())
				return
			}

			require.NoError(t, gotErr)
			require.NotEmpty(t, gotBid.BidID)
			require.Equal(t, "bidder", gotBid.UserID)
			require.Equal(t, 2, gotBid.Slot)
			require.Equal(t, 75.0, gotBid.Amount)
			require.Equal(t, []models.Bid{gotBid}, recent)

			updates := pub.Updates()
			require.Len(t, updates, 1)
			require.True(t, updates[0].IsLiveUpdate)
			require.Len(t, updates[0].Slots, 1)
			require.Equal(t, 1, updates[0].Slots[0].Index)
			require.Equal(t, 75.0, *updates[0].Slots[0].HighestBid)
			require.Len(t, updates[0].Events, 1)
			require.Equal(t, gotBid.BidID, updates[0].Events[0].BidID)
			require.Equal(t, "First-bidder", updates[0].Events[0].Bidder.FirstName)
		})
	}
}

// The same token may be used for many bids; a later toggle takes effect immediately
func TestBiddingService_PermissionIsReadPerSubmission(t *testing.T) {
	ctx := context.Background()
	s, repo, _, maker := newTestService(t, Options{})
	seedUser(t, repo, "u1", true)
	token := tokenFor(t, maker, "u1")

	_, err := s.PlaceUserBid(ctx, token, models.RawBid{Slot: 1, Bid: 10})
	require.NoError(t, err)

	_, err = s.ToggleUserPermission(ctx, "u1")
	require.NoError(t, err)

	_, err = s.PlaceUserBid(ctx, token, models.RawBid{Slot: 1, Bid: 20})
	require.ErrorIs(t, err, biddingerrors.ErrForbidden)
}

func TestBiddingService_SubmitAdminBid(t *testing.T) {
	ctx := context.Background()
	s, repo, pub, _ := newTestService(t, Options{})

	reg := models.Registration{UserID: "guest-7", FirstName: "Grace", LastName: "Hopper", Company: "Navy", Table: float64(7)}

	var gotErr error
	s.SubmitAdminBid(ctx, reg, models.RawBid{Slot: "4", Bid: "500"}, func(_ models.Bid, err error) { gotErr = err })
	s.Wait()
	require.NoError(t, gotErr)

	user, err := repo.GetUser(ctx, "guest-7")
	require.NoError(t, err)
	require.True(t, user.CanBid)
	require.Equal(t, 7, user.TableNumber)

	updates := pub.Updates()
	require.Len(t, updates, 1)
	require.Equal(t, []models.Bidder{models.BidderOf(user)}, updates[0].Slots[0].HighestBidders)

	// second admin submission keeps the first registration
	reg.FirstName = "Changed"
	_, err = s.PlaceAdminBid(ctx, reg, models.RawBid{Slot: 4, Bid: 600})
	require.NoError(t, err)
	user, err = repo.GetUser(ctx, "guest-7")
	require.NoError(t, err)
	require.Equal(t, "Grace", user.FirstName)
}

func TestBiddingService_AdminBidIgnoresSessionAndPermission(t *testing.T) {
	ctx := context.Background()
	s, repo, _, _ := newTestService(t, Options{})
	seedUser(t, repo, "blocked", false)

	reg := models.Registration{UserID: "blocked", FirstName: "B", LastName: "L", Table: 1}
	bid, err := s.PlaceAdminBid(ctx, reg, models.RawBid{Slot: 1, Bid: 10})
	require.NoError(t, err)
	require.Equal(t, "blocked", bid.UserID)
}

func TestBiddingService_AdminBidRejectsBadRegistration(t *testing.T) {
	s, repo, _, _ := newTestService(t, Options{})

	_, err := s.PlaceAdminBid(context.Background(), models.Registration{UserID: "x"}, models.RawBid{Slot: 1, Bid: 10})
	require.ErrorIs(t, err, biddingerrors.ErrInvalidUserInfo)

	users, err := repo.ListUsers(context.Background())
	require.NoError(t, err)
	require.Empty(t, users)
}

// Tests failures of the store with gomock
func TestBiddingService_StoreFailures(t *testing.T) {
	maker, err := auth.NewJWTMaker(testSecret)
	require.NoError(t, err)
	token := tokenFor(t, maker, "u1")

	tests := []struct {
		name          string
		mockSetup     func(m *repository.MockAuctionDB)
		expectedError error
	}{
		{
			name: "ledger_write_fails",
			mockSetup: func(m *repository.MockAuctionDB) {
				m.EXPECT().GetUser(gomock.Any(), "u1").Return(models.User{UserID: "u1", CanBid: true}, nil)
				m.EXPECT().AppendBid(gomock.Any(), gomock.Any()).Return(errors.New("disk full")).Times(1)
			},
			expectedError: biddingerrors.ErrPersistence,
		},
		{
			name: "permission_lookup_fails",
			mockSetup: func(m *repository.MockAuctionDB) {
				m.EXPECT().GetUser(gomock.Any(), "u1").Return(models.User{}, errors.New("timeout"))
			},
			expectedError: biddingerrors.ErrDependency,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := repository.NewMockAuctionDB(ctrl)
			tc.mockSetup(mockRepo)
			pub := &recordingPublisher{}
			s := NewBiddingService(mockRepo, maker, pub, Options{})

			var gotErr error
			s.SubmitUserBid(context.Background(), NewSession(true), token, models.RawBid{Slot: 1, Bid: 10},
				func(_ models.Bid, err error) { gotErr = err })
			s.Wait()

			require.ErrorIs(t, gotErr, tc.expectedError)
			require.Empty(t, pub.Updates())
		})
	}
}

func TestBiddingService_RejectedBidsNeverReachLedger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	maker, err := auth.NewJWTMaker(testSecret)
	require.NoError(t, err)

	mockRepo := repository.NewMockAuctionDB(ctrl)
	mockRepo.EXPECT().GetUser(gomock.Any(), "u1").Return(models.User{UserID: "u1", CanBid: true}, nil).AnyTimes()
	mockRepo.EXPECT().AppendBid(gomock.Any(), gomock.Any()).Times(0)

	s := NewBiddingService(mockRepo, maker, &recordingPublisher{}, Options{SlotCount: 10})
	token := tokenFor(t, maker, "u1")

	for _, raw := range []models.RawBid{
		{Slot: 0, Bid: 10},
		{Slot: 11, Bid: 10},
		{Slot: 1, Bid: 0},
		{Slot: "one", Bid: 10},
		{Slot: 1, Bid: "ten"},
	} {
		_, err := s.PlaceUserBid(context.Background(), token, raw)
		require.Error(t, err)
	}
}

func TestBiddingService_WriteTimeoutApplied(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	maker, err := auth.NewJWTMaker(testSecret)
	require.NoError(t, err)

	mockRepo := repository.NewMockAuctionDB(ctrl)
	mockRepo.EXPECT().CreateUserIfMissing(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) { return u, nil })
	mockRepo.EXPECT().AppendBid(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ models.Bid) error {
			<-ctx.Done()
			return ctx.Err()
		})

	s := NewBiddingService(mockRepo, maker, &recordingPublisher{}, Options{WriteTimeout: 20 * time.Millisecond})
	reg := models.Registration{UserID: "u1", FirstName: "A", LastName: "B", Table: 1}

	start := time.Now()
	_, err = s.PlaceAdminBid(context.Background(), reg, models.RawBid{Slot: 1, Bid: 10})
	require.ErrorIs(t, err, biddingerrors.ErrPersistence)
	require.Less(t, time.Since(start), 2*time.Second)
}

// blockingPublisher lets a test observe the order of respond and publish
type blockingPublisher struct {
	mu    sync.Mutex
	order *[]string
}

func (p *blockingPublisher) Publish(models.Update) {
	p.mu.Lock()
	defer p.mu.Unlock()
	*p.order = append(*p.order, "publish")
}

func TestBiddingService_RespondsBeforePublishing(t *testing.T) {
	maker, err := auth.NewJWTMaker(testSecret)
	require.NoError(t, err)

	var order []string
	pub := &blockingPublisher{order: &order}
	repo := repository.NewMemoryRepo()
	seedUser(t, repo, "u1", true)
	s := NewBiddingService(repo, maker, pub, Options{})

	s.SubmitUserBid(context.Background(), NewSession(true), tokenFor(t, maker, "u1"), models.RawBid{Slot: 1, Bid: 5},
		func(_ models.Bid, err error) {
			require.NoError(t, err)
			pub.mu.Lock()
			order = append(order, "respond")
			pub.mu.Unlock()
		})
	s.Wait()

	require.Equal(t, []string{"respond", "publish"}, order)
}

func TestBiddingService_ConcurrentSubmissions(t *testing.T) {
	ctx := context.Background()
	s, repo, pub, maker := newTestService(t, Options{})
	seedUser(t, repo, "u1", true)
	seedUser(t, repo, "u2", true)
	session := NewSession(true)

	var wg sync.WaitGroup
	for i := 1; i <= 40; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			user := "u1"
			if i%2 == 0 {
				user = "u2"
			}
			token := tokenFor(t, maker, user)
			s.SubmitUserBid(ctx, session, token, models.RawBid{Slot: 1, Bid: float64(i)}, func(_ models.Bid, err error) {
				require.NoError(t, err)
			})
		}(i)
	}
	wg.Wait()
	s.Wait()

	require.Len(t, pub.Updates(), 40)
	view, err := s.resolver.ResolveSlot(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 40.0, *view.HighestBid)
	require.Equal(t, "u2", view.HighestBidders[0].UserID)
}

func TestBiddingService_CloseDuringSubmissions(t *testing.T) {
	ctx := context.Background()
	s, repo, pub, maker := newTestService(t, Options{})
	seedUser(t, repo, "u1", true)
	session := NewSession(true)
	token := tokenFor(t, maker, "u1")

	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.SubmitUserBid(ctx, session, token, models.RawBid{Slot: 1, Bid: float64(i)}, func(_ models.Bid, err error) {
				require.NoError(t, err)
			})
		}(i)
	}
	s.Close()
	wg.Wait()

	published := len(pub.Updates())
	require.LessOrEqual(t, published, 20)

	// answered and recorded, never announced
	s.SubmitUserBid(ctx, session, token, models.RawBid{Slot: 2, Bid: 7}, func(bid models.Bid, err error) {
		require.NoError(t, err)
		require.Equal(t, 2, bid.Slot)
	})
	s.Wait()

	bids, err := repo.BidsForSlot(ctx, 2)
	require.NoError(t, err)
	require.Len(t, bids, 1)
	require.Len(t, pub.Updates(), published)
}
