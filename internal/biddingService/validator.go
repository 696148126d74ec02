package bidding

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"bidding-dashboard/internal/biddingerrors"
	"bidding-dashboard/internal/models"
)

const maxSlotNumber = math.MaxInt32

// ValidateBid checks a raw bid request against the caller's identity and the bidding rules.
// Rules apply in order and the first failure wins: authentication, bidding rights (admins bypass),
// slot, then amount. maxSlot <= 0 leaves the slot range open.
func ValidateBid(identity models.Identity, raw models.RawBid, maxSlot int) (models.ValidatedBid, error) {
	if !identity.Authenticated || identity.UserID == "" {
		return models.ValidatedBid{}, fmt.Errorf("service: %w - identity not authenticated", biddingerrors.ErrUnauthorized)
	}
	if !identity.Admin && !identity.CanBid {
		return models.ValidatedBid{}, fmt.Errorf("service: %w - user %s lacks bidding rights", biddingerrors.ErrForbidden, identity.UserID)
	}

	slot, err := parseSlot(raw.Slot, maxSlot)
	if err != nil {
		return models.ValidatedBid{}, err
	}

	amount, ok := parseNumber(raw.Bid)
	if !ok || amount <= 0 {
		return models.ValidatedBid{}, fmt.Errorf("service: %w - got %v", biddingerrors.ErrInvalidAmount, raw.Bid)
	}

	return models.ValidatedBid{
		UserID: identity.UserID,
		Slot:   slot,
		Amount: amount,
	}, nil
}

func parseSlot(v any, maxSlot int) (int, error) {
	f, ok := parseNumber(v)
	if !ok || f < 1 || f != math.Trunc(f) || f > maxSlotNumber {
		return 0, fmt.Errorf("service: %w - got %v", biddingerrors.ErrInvalidSlot, v)
	}
	slot := int(f)
	if maxSlot > 0 && slot > maxSlot {
		return 0, fmt.Errorf("service: %w - slot %d above %d", biddingerrors.ErrInvalidSlot, slot, maxSlot)
	}
	return slot, nil
}

// parseNumber accepts JSON numbers and numeric strings. NaN and infinities are rejected.
func parseNumber(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// validateRegistration turns the user fields of an admin submission into a User
func validateRegistration(reg models.Registration) (models.User, error) {
	user := models.User{
		UserID:    strings.TrimSpace(reg.UserID),
		FirstName: strings.TrimSpace(reg.FirstName),
		LastName:  strings.TrimSpace(reg.LastName),
		Company:   strings.TrimSpace(reg.Company),
		CanBid:    true,
	}
	if user.UserID == "" || user.FirstName == "" || user.LastName == "" {
		return models.User{}, fmt.Errorf("service: %w - userID, firstName and lastName are required", biddingerrors.ErrInvalidUserInfo)
	}

	table, ok := parseNumber(reg.Table)
	if !ok || table < 0 || table != math.Trunc(table) || table > maxSlotNumber {
		return models.User{}, fmt.Errorf("service: %w - table %v", biddingerrors.ErrInvalidUserInfo, reg.Table)
	}
	user.TableNumber = int(table)
	return user, nil
}
