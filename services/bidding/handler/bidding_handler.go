package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	bidding "bidding-dashboard/internal/biddingService"
	"bidding-dashboard/internal/biddingerrors"
	model "bidding-dashboard/internal/models"
	"bidding-dashboard/services/bidding/helpers"
	"bidding-dashboard/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -destination=mock_service.go -package=handler bidding-dashboard/services/bidding/handler BiddingServiceInterface,BotController

type BiddingServiceInterface interface {
	SubmitUserBid(ctx context.Context, session *bidding.Session, token string, raw model.RawBid, respond bidding.Responder)
	SubmitAdminBid(ctx context.Context, reg model.Registration, raw model.RawBid, respond bidding.Responder)
	SlotViews(ctx context.Context) ([]model.SlotView, error)
	BidsForSlot(ctx context.Context, slot int) ([]model.Bid, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	ToggleUserPermission(ctx context.Context, userID string) (model.User, error)
	DeleteBid(ctx context.Context, bidID string, slot int) error
	ClearBids(ctx context.Context) error
	ClearUsers(ctx context.Context) error
}

type BiddingHandler struct {
	service    BiddingServiceInterface
	session    *bidding.Session
	cookieName string
}

func NewBiddingHandler(service BiddingServiceInterface, session *bidding.Session, cookieName string) *BiddingHandler {
	return &BiddingHandler{service: service, session: session, cookieName: cookieName}
}

// SubmitHandler handles POST /submit
func (h *BiddingHandler) SubmitHandler(c *gin.Context) {
	// the closed-bidding answer does not depend on the body
	if !h.session.BiddingAllowed() {
		h.responder(c, "SubmitHandler")(model.Bid{}, fmt.Errorf("handler: %w", biddingerrors.ErrBiddingDisabled))
		return
	}

	var raw model.RawBid
	if err := helpers.BindOptionalJSON(c, &raw); err != nil {
		utils.TextResponse(c, http.StatusBadRequest, "Invalid request payload")
		utils.Warn("SubmitHandler: binding error", map[string]any{"error": err.Error()})
		return
	}

	// a missing cookie is an unauthenticated submission
	token, _ := c.Cookie(h.cookieName)
	h.service.SubmitUserBid(c.Request.Context(), h.session, token, raw, h.responder(c, "SubmitHandler"))
}

// AdminSubmitHandler handles POST /adminSubmit
func (h *BiddingHandler) AdminSubmitHandler(c *gin.Context) {
	var req helpers.AdminSubmitRequest
	if err := helpers.BindOptionalJSON(c, &req); err != nil {
		utils.TextResponse(c, http.StatusBadRequest, "Invalid request payload")
		utils.Warn("AdminSubmitHandler: binding error", map[string]any{"error": err.Error()})
		return
	}

	reg := model.Registration{
		UserID:    req.UserID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Company:   req.Company,
		Table:     req.Table,
	}
	raw := model.RawBid{Slot: req.Slot, Bid: req.Bid}
	h.service.SubmitAdminBid(c.Request.Context(), reg, raw, h.responder(c, "AdminSubmitHandler"))
}

// responder writes the submission outcome as plain text and flushes it,
// so the caller is answered before the live update goes out
func (h *BiddingHandler) responder(c *gin.Context, handlerName string) bidding.Responder {
	return func(bid model.Bid, err error) {
		if err != nil {
			status, message := helpers.MapErrorToHTTP(err)
			utils.TextResponse(c, status, message)
			utils.Warn(handlerName+": submission rejected", map[string]any{
				"handler": handlerName,
				"status":  status,
				"error":   err.Error(),
			})
			return
		}

		utils.TextResponse(c, http.StatusOK, helpers.SubmitSuccessMessage)
		c.Writer.Flush()
		helpers.LogSuccess(handlerName, "bid accepted", map[string]any{
			"bid_id":  bid.BidID,
			"user_id": bid.UserID,
			"slot":    bid.Slot,
			"amount":  bid.Amount,
		})
	}
}

// SlotViewsHandler handles GET /reporting/biddings
func (h *BiddingHandler) SlotViewsHandler(c *gin.Context) {
	views, err := h.service.SlotViews(c.Request.Context())
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("SlotViewsHandler: error resolving slots", map[string]any{"error": err.Error()})
		return
	}
	if views == nil {
		views = []model.SlotView{}
	}
	c.JSON(http.StatusOK, views)
}

// BidsForSlotHandler handles GET /reporting/biddings/:slot
func (h *BiddingHandler) BidsForSlotHandler(c *gin.Context) {
	slot, err := strconv.Atoi(c.Param("slot"))
	if err != nil {
		err = fmt.Errorf("handler: %w - got %q", biddingerrors.ErrInvalidSlot, c.Param("slot"))
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		return
	}

	bids, err := h.service.BidsForSlot(c.Request.Context(), slot)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("BidsForSlotHandler: error retrieving bids", map[string]any{"slot": slot, "error": err.Error()})
		return
	}
	if bids == nil {
		bids = []model.Bid{}
	}
	c.JSON(http.StatusOK, bids)
}

// UsersHandler handles GET /reporting/users
func (h *BiddingHandler) UsersHandler(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("UsersHandler: error listing users", map[string]any{"error": err.Error()})
		return
	}
	if users == nil {
		users = []model.User{}
	}
	c.JSON(http.StatusOK, users)
}
