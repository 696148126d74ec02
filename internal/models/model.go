package models

import "time"

// User represents a registered participant of the event
type User struct {
	UserID      string `json:"userID"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Company     string `json:"company,omitempty"`
	TableNumber int    `json:"table"`
	CanBid      bool   `json:"canBid"`
}

// Bidder is the display projection of a User shown on the dashboard
type Bidder struct {
	UserID    string `json:"userID"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Company   string `json:"company,omitempty"`
	Table     int    `json:"table"`
}

// Bid represents one accepted bid on a slot
type Bid struct {
	BidID     string    `json:"bidID"`
	UserID    string    `json:"userID"`
	Slot      int       `json:"slot"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"createdAt"`
}

// SlotLeaders is the ledger's answer for one slot: the max amount and every user holding it
type SlotLeaders struct {
	Slot    int
	Amount  float64
	UserIDs []string
}

// SlotView is the derived per-slot dashboard state.
// HighestBid is nil for a slot without bids.
type SlotView struct {
	Index          int      `json:"index"`
	HighestBid     *float64 `json:"highestBid,omitempty"`
	HighestBidders []Bidder `json:"highestBidders,omitempty"`
}

// Event is the display projection of one Bid. BidID is sent as "index" for dashboard compatibility.
type Event struct {
	BidID  string  `json:"index"`
	Slot   int     `json:"slot"`
	Amount float64 `json:"bid"`
	Bidder Bidder  `json:"bidder"`
}

// Update is the payload pushed to dashboard clients. The bootstrap snapshot leaves IsLiveUpdate false.
type Update struct {
	Slots        []SlotView `json:"slots"`
	Events       []Event    `json:"events"`
	IsLiveUpdate bool       `json:"isLiveUpdate,omitempty"`
}

// Identity is the outcome of the identity and permission stages
type Identity struct {
	Authenticated bool
	UserID        string
	CanBid        bool
	Admin         bool
}

// RawBid is the untrusted bid request body. Values may be JSON numbers or strings.
type RawBid struct {
	Slot any `json:"slot"`
	Bid  any `json:"bid"`
}

// ValidatedBid is a bid that passed validation and is ready for persistence
type ValidatedBid struct {
	UserID string
	Slot   int
	Amount float64
}

// Registration carries the user fields of an admin submission
type Registration struct {
	UserID    string `json:"userID"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Company   string `json:"company"`
	Table     any    `json:"table"`
}

// BidderOf projects a User for display
func BidderOf(u User) Bidder {
	return Bidder{
		UserID:    u.UserID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Company:   u.Company,
		Table:     u.TableNumber,
	}
}
