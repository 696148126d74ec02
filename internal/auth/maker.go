package auth

import (
	"time"
)

// Verifier resolves an opaque auth token to the bidder it was issued for
type Verifier interface {
	VerifyToken(tokenString string) (*Payload, error)
}

// Maker issues and verifies bidder tokens
type Maker interface {
	Verifier
	CreateToken(userID string, duration time.Duration) (token string, payload *Payload, err error)
}
