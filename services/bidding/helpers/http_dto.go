package helpers

// Request DTOs
type AdminSubmitRequest struct {
	Slot      any    `json:"slot"`
	Bid       any    `json:"bid"`
	UserID    string `json:"userID"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Company   string `json:"company"`
	Table     any    `json:"table"`
}

type ToggleUserRequest struct {
	UserID string `json:"userID" binding:"required"`
}

type DeleteBidRequest struct {
	BidID string `json:"bidID" binding:"required"`
	Slot  int    `json:"slot" binding:"required,gt=0"`
}

// Response DTOs
type ToggleBiddingResponse struct {
	BiddingAllowed bool `json:"biddingAllowed"`
}

type HealthResponse struct {
	Status         string `json:"status"`
	BiddingAllowed bool   `json:"biddingAllowed"`
	Clients        int    `json:"clients"`
}
