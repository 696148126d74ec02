package bidding

import "sync/atomic"

// Session is the per-server state gating user submissions
type Session struct {
	biddingEnabled atomic.Bool
}

// NewSession creates a session with bidding initially enabled or disabled
func NewSession(enabled bool) *Session {
	s := &Session{}
	s.biddingEnabled.Store(enabled)
	return s
}

// BiddingAllowed reports whether user submissions are accepted
func (s *Session) BiddingAllowed() bool {
	return s.biddingEnabled.Load()
}

// SetBiddingAllowed enables or disables user submissions
func (s *Session) SetBiddingAllowed(enabled bool) {
	s.biddingEnabled.Store(enabled)
}

// ToggleBidding flips the flag and returns the new value
func (s *Session) ToggleBidding() bool {
	for {
		cur := s.biddingEnabled.Load()
		if s.biddingEnabled.CompareAndSwap(cur, !cur) {
			return !cur
		}
	}
}
