package handler

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	bidding "bidding-dashboard/internal/biddingService"
	"bidding-dashboard/internal/biddingerrors"
	"bidding-dashboard/services/bidding/helpers"
	"bidding-dashboard/utils"

	"github.com/gin-gonic/gin"
)

// BotController drives the demo update generator
type BotController interface {
	Start(interval time.Duration) error
	Stop() error
}

// ClientCounter reports connected dashboards
type ClientCounter interface {
	ClientCount() int
}

type AdminHandler struct {
	service BiddingServiceInterface
	session *bidding.Session
	bot     BotController
	clients ClientCounter
}

func NewAdminHandler(service BiddingServiceInterface, session *bidding.Session, bot BotController, clients ClientCounter) *AdminHandler {
	return &AdminHandler{service: service, session: session, bot: bot, clients: clients}
}

// ToggleBiddingHandler handles GET /areyousure/toggleBiddingPermission
func (h *AdminHandler) ToggleBiddingHandler(c *gin.Context) {
	allowed := h.session.ToggleBidding()
	utils.JSONResponse(c, http.StatusOK, helpers.ToggleBiddingResponse{BiddingAllowed: allowed}, "bidding permission toggled")
	helpers.LogSuccess("ToggleBiddingHandler", "bidding permission toggled", map[string]any{"bidding_allowed": allowed})
}

// ToggleUserHandler handles POST /areyousure/toggleUser
func (h *AdminHandler) ToggleUserHandler(c *gin.Context) {
	var req helpers.ToggleUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ToggleUserHandler", err)
		return
	}

	user, err := h.service.ToggleUserPermission(c.Request.Context(), req.UserID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ToggleUserHandler: toggle failed", map[string]any{"user_id": req.UserID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, user, "user permission toggled")
	helpers.LogSuccess("ToggleUserHandler", "user permission toggled", map[string]any{"user_id": user.UserID, "can_bid": user.CanBid})
}

// DeleteBidHandler handles POST /areyousure/deleteBid
func (h *AdminHandler) DeleteBidHandler(c *gin.Context) {
	var req helpers.DeleteBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "DeleteBidHandler", err)
		return
	}

	if err := h.service.DeleteBid(c.Request.Context(), req.BidID, req.Slot); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("DeleteBidHandler: delete failed", map[string]any{"bid_id": req.BidID, "slot": req.Slot, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "bid deleted")
	helpers.LogSuccess("DeleteBidHandler", "bid deleted", map[string]any{"bid_id": req.BidID, "slot": req.Slot})
}

// NukeUsersHandler handles GET /areyousure/nukeUsers
func (h *AdminHandler) NukeUsersHandler(c *gin.Context) {
	if err := h.service.ClearUsers(c.Request.Context()); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err, "failed to clear users")
		utils.Error("NukeUsersHandler: clear failed", map[string]any{"error": err.Error()})
		return
	}
	utils.JSONResponse(c, http.StatusOK, nil, "users cleared")
}

// NukeBiddingsHandler handles GET /areyousure/nukeBiddings
func (h *AdminHandler) NukeBiddingsHandler(c *gin.Context) {
	if err := h.service.ClearBids(c.Request.Context()); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err, "failed to clear biddings")
		utils.Error("NukeBiddingsHandler: clear failed", map[string]any{"error": err.Error()})
		return
	}
	utils.JSONResponse(c, http.StatusOK, nil, "biddings cleared")
}

// StartBotHandler handles GET /startBot?sec=N; fractional seconds are allowed
func (h *AdminHandler) StartBotHandler(c *gin.Context) {
	interval, err := parseSeconds(c.Query("sec"))
	if err == nil {
		err = h.bot.Start(interval)
	}
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		utils.Warn("StartBotHandler: bot not started", map[string]any{"sec": c.Query("sec"), "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"interval": interval.String()}, "bot started")
}

// StopBotHandler handles GET /stopBot
func (h *AdminHandler) StopBotHandler(c *gin.Context) {
	if err := h.bot.Stop(); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err, "failed to stop bot")
		utils.Error("StopBotHandler: stop failed", map[string]any{"error": err.Error()})
		return
	}
	utils.JSONResponse(c, http.StatusOK, nil, "bot stopped")
}

// HealthHandler handles GET /health
func (h *AdminHandler) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, helpers.HealthResponse{
		Status:         "ok",
		BiddingAllowed: h.session.BiddingAllowed(),
		Clients:        h.clients.ClientCount(),
	})
}

func parseSeconds(raw string) (time.Duration, error) {
	sec, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(sec) || math.IsInf(sec, 0) || sec > math.MaxInt64/float64(time.Second) {
		return 0, fmt.Errorf("handler: %w - sec=%q", biddingerrors.ErrInvalidInterval, raw)
	}
	return time.Duration(sec * float64(time.Second)), nil
}
