package helpers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"bidding-dashboard/internal/biddingerrors"
	"bidding-dashboard/utils"

	"github.com/gin-gonic/gin"
)

const SubmitSuccessMessage = "Submit successful"

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// BindOptionalJSON binds the body when there is one. An empty body leaves obj untouched.
func BindOptionalJSON(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, biddingerrors.ErrBiddingDisabled):
		return http.StatusForbidden, "Bidding is not allowed at the moment"
	case errors.Is(err, biddingerrors.ErrUnauthorized):
		return http.StatusBadRequest, "Unauthorized"
	case errors.Is(err, biddingerrors.ErrForbidden):
		return http.StatusBadRequest, "Not allowed to bid"
	case errors.Is(err, biddingerrors.ErrInvalidSlot):
		return http.StatusBadRequest, "Slot number is invalid"
	case errors.Is(err, biddingerrors.ErrInvalidAmount):
		return http.StatusBadRequest, "Bid amount is invalid"
	case errors.Is(err, biddingerrors.ErrInvalidUserInfo):
		return http.StatusBadRequest, "User info is invalid"
	case errors.Is(err, biddingerrors.ErrPersistence):
		return http.StatusBadRequest, "Submission failed"
	case errors.Is(err, biddingerrors.ErrDependency):
		return http.StatusBadRequest, "Service unavailable, try again"
	case errors.Is(err, biddingerrors.ErrInvalidInterval):
		return http.StatusBadRequest, "Bot interval is invalid"
	case errors.Is(err, biddingerrors.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, biddingerrors.ErrBidNotFound):
		return http.StatusNotFound, "Bid not found"
	default:
		return http.StatusBadRequest, "Request failed"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
