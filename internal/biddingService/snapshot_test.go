package bidding

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"bidding-dashboard/internal/auth"
	"bidding-dashboard/internal/models"
	"bidding-dashboard/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestBuildSnapshot(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		bids       int
		size       int
		wantEvents int
	}{
		{name: "fewer_bids_than_size", bids: 3, size: 5, wantEvents: 3},
		{name: "more_bids_than_size", bids: 8, size: 5, wantEvents: 5},
		{name: "empty_ledger", bids: 0, size: 5, wantEvents: 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			s, repo, _, _ := newTestService(t, Options{})
			seedUser(t, repo, "u1", true)
			for i := 1; i <= tc.bids; i++ {
				seedBid(t, repo, fmt.Sprintf("b%d", i), "u1", i%3+1, float64(i*10))
			}

			snap, err := s.BuildSnapshot(ctx, tc.size)
			require.NoError(t, err)
			require.False(t, snap.IsLiveUpdate)
			require.Len(t, snap.Events, tc.wantEvents)

			// most recent first
			for i, e := range snap.Events {
				require.Equal(t, fmt.Sprintf("b%d", tc.bids-i), e.BidID)
			}

			views, err := s.SlotViews(ctx)
			require.NoError(t, err)
			require.Equal(t, views, snap.Slots)
		})
	}
}

func TestBuildSnapshot_DefaultSize(t *testing.T) {
	s, repo, _, _ := newTestService(t, Options{SnapshotSize: 2})
	seedUser(t, repo, "u1", true)
	for i := 1; i <= 4; i++ {
		seedBid(t, repo, fmt.Sprintf("b%d", i), "u1", 1, float64(i))
	}

	snap, err := s.BuildSnapshot(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, snap.Events, 2)
	require.Equal(t, "b4", snap.Events[0].BidID)
}

func TestBuildSnapshot_FailsWhenEitherHalfFails(t *testing.T) {
	maker, err := auth.NewJWTMaker(testSecret)
	require.NoError(t, err)

	tests := []struct {
		name      string
		mockSetup func(m *repository.MockAuctionDB)
	}{
		{
			name: "slot_views_fail",
			mockSetup: func(m *repository.MockAuctionDB) {
				m.EXPECT().AllSlotLeaders(gomock.Any()).Return(nil, errors.New("db down"))
				m.EXPECT().RecentBids(gomock.Any(), 5).Return([]models.Bid{}, nil).AnyTimes()
			},
		},
		{
			name: "recent_bids_fail",
			mockSetup: func(m *repository.MockAuctionDB) {
				m.EXPECT().AllSlotLeaders(gomock.Any()).Return([]models.SlotLeaders{}, nil).AnyTimes()
				m.EXPECT().RecentBids(gomock.Any(), 5).Return(nil, errors.New("db down"))
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := repository.NewMockAuctionDB(ctrl)
			tc.mockSetup(mockRepo)

			s := NewBiddingService(mockRepo, maker, &recordingPublisher{}, Options{})
			_, err := s.BuildSnapshot(context.Background(), 5)
			require.Error(t, err)
		})
	}
}
