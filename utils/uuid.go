package utils

import (
	"github.com/google/uuid"
)

// NewBidID returns a fresh unique bid identifier
func NewBidID() string {
	return uuid.NewString()
}

// NewClientID returns an identifier for a dashboard connection
func NewClientID() string {
	return "client-" + uuid.NewString()
}
