package server

import (
	"slices"
	"time"

	bidding "bidding-dashboard/internal/biddingService"
	"bidding-dashboard/internal/broadcast"
	handler "bidding-dashboard/services/bidding/handler"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Dependencies groups what the router wires into handlers
type Dependencies struct {
	Service        *bidding.BiddingService
	Session        *bidding.Session
	Hub            *broadcast.Hub
	Bot            handler.BotController
	CookieName     string
	AllowedOrigins []string
	AdminKey       string
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(deps Dependencies) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(corsMiddleware(deps.AllowedOrigins))

	biddingHandler := handler.NewBiddingHandler(deps.Service, deps.Session, deps.CookieName)
	adminHandler := handler.NewAdminHandler(deps.Service, deps.Session, deps.Bot, deps.Hub)
	wsHandler := broadcast.NewHandler(deps.Hub, deps.Service, deps.AllowedOrigins)

	router.GET("/health", adminHandler.HealthHandler)
	router.GET("/ws", wsHandler.Connect)
	router.POST("/submit", biddingHandler.SubmitHandler)

	reporting := router.Group("/reporting")
	{
		reporting.GET("/biddings", biddingHandler.SlotViewsHandler)
		reporting.GET("/biddings/:slot", biddingHandler.BidsForSlotHandler)
		reporting.GET("/users", biddingHandler.UsersHandler)
	}

	admin := router.Group("/", AdminKeyMiddleware(deps.AdminKey))
	{
		admin.POST("/adminSubmit", biddingHandler.AdminSubmitHandler)
		admin.GET("/startBot", adminHandler.StartBotHandler)
		admin.GET("/stopBot", adminHandler.StopBotHandler)
	}

	maintenance := router.Group("/areyousure", AdminKeyMiddleware(deps.AdminKey))
	{
		maintenance.GET("/toggleBiddingPermission", adminHandler.ToggleBiddingHandler)
		maintenance.POST("/toggleUser", adminHandler.ToggleUserHandler)
		maintenance.POST("/deleteBid", adminHandler.DeleteBidHandler)
		maintenance.GET("/nukeUsers", adminHandler.NukeUsersHandler)
		maintenance.GET("/nukeBiddings", adminHandler.NukeBiddingsHandler)
	}

	return router
}

// corsMiddleware allows credentialed requests from the dashboard origins; "*" echoes any origin
func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", AdminKeyHeader},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowOriginFunc = func(string) bool { return true }
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}
