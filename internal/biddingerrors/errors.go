package biddingerrors

import "errors"

// Repository-level errors
var (
	ErrNoBids       = errors.New("no bids found for slot")
	ErrUserNotFound = errors.New("user not found")
	ErrBidNotFound  = errors.New("bid not found")
	ErrDuplicateBid = errors.New("bid already recorded")
)

// Submission pipeline errors
var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("not allowed to bid")
	ErrInvalidSlot     = errors.New("invalid slot")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidUserInfo = errors.New("invalid user info")
	ErrPersistence     = errors.New("submission failed")
	ErrDependency      = errors.New("dependency unavailable")
	ErrBiddingDisabled = errors.New("bidding disabled")
)

// ErrInvalidInterval is returned by the demo bot for unusable tick intervals
var ErrInvalidInterval = errors.New("invalid bot interval")
