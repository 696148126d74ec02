package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bidding-dashboard/internal/auth"
	bidding "bidding-dashboard/internal/biddingService"
	"bidding-dashboard/internal/broadcast"
	"bidding-dashboard/internal/config"
	model "bidding-dashboard/internal/models"
	"bidding-dashboard/internal/repository"
	"bidding-dashboard/internal/server"
	"bidding-dashboard/internal/simulation"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "integration-secret-0123456789abcdef"
	cookieName = "sytyAuth"
)

// TestEnv is a running server wired the way main wires it
type TestEnv struct {
	Server  *httptest.Server
	Repo    repository.AuctionDB
	Service *bidding.BiddingService
	Session *bidding.Session
	Hub     *broadcast.Hub
	Maker   *auth.JWTMaker
}

// repoFactories lists the ledger backends every scenario runs against
var repoFactories = map[string]func(t *testing.T) repository.AuctionDB{
	config.DriverMemory: func(*testing.T) repository.AuctionDB {
		return repository.NewMemoryRepo()
	},
	config.DriverSQLite: func(t *testing.T) repository.AuctionDB {
		repo, err := repository.OpenGormRepo(config.DriverSQLite, "file:"+uuid.NewString()+"?mode=memory&cache=shared")
		require.NoError(t, err)
		t.Cleanup(func() { _ = repo.Close() })
		return repo
	},
}

// forEachRepo runs the scenario once per ledger backend
func forEachRepo(t *testing.T, opts bidding.Options, scenario func(t *testing.T, env *TestEnv)) {
	for name, factory := range repoFactories {
		t.Run(name, func(t *testing.T) {
			scenario(t, SetupTestEnv(t, factory(t), opts))
		})
	}
}

// SetupTestEnv starts the full HTTP and websocket stack over repo
func SetupTestEnv(t *testing.T, repo repository.AuctionDB, opts bidding.Options) *TestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	maker, err := auth.NewJWTMaker(testSecret)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	hub := broadcast.NewHub()
	go hub.Run(ctx)

	service := bidding.NewBiddingService(repo, maker, hub, opts)
	session := bidding.NewSession(true)

	bot, err := simulation.NewBot(hub)
	require.NoError(t, err)

	router := server.SetupRouter(server.Dependencies{
		Service:    service,
		Session:    session,
		Hub:        hub,
		Bot:        bot,
		CookieName: cookieName,
	})
	srv := httptest.NewServer(router)

	t.Cleanup(func() {
		srv.Close()
		_ = bot.Shutdown()
		service.Wait()
		cancel()
	})

	return &TestEnv{Server: srv, Repo: repo, Service: service, Session: session, Hub: hub, Maker: maker}
}

// RegisterUser stores a bidder and returns a token for them
func (e *TestEnv) RegisterUser(t *testing.T, userID string, canBid bool) string {
	t.Helper()
	_, err := e.Repo.CreateUserIfMissing(context.Background(), model.User{
		UserID:      userID,
		FirstName:   "First-" + userID,
		LastName:    "Last-" + userID,
		TableNumber: 1,
		CanBid:      canBid,
	})
	require.NoError(t, err)

	token, _, err := e.Maker.CreateToken(userID, time.Hour)
	require.NoError(t, err)
	return token
}

// ExecuteRequest sends a request with an optional auth cookie and returns status and body
func (e *TestEnv) ExecuteRequest(t *testing.T, method, path, token string, body any) (int, []byte) {
	t.Helper()

	var reader io.Reader
	switch v := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(v)
	default:
		raw, err := json.Marshal(v)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, e.Server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: cookieName, Value: token})
	}

	resp, err := e.Server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

// Submit posts a user bid
func (e *TestEnv) Submit(t *testing.T, token string, slot, amount any) (int, string) {
	t.Helper()
	status, body := e.ExecuteRequest(t, http.MethodPost, "/submit", token, map[string]any{"slot": slot, "bid": amount})
	return status, string(body)
}

// ConnectDashboard opens a websocket and returns it with the bootstrap snapshot
func (e *TestEnv) ConnectDashboard(t *testing.T) (*websocket.Conn, model.Update) {
	t.Helper()
	url := "ws" + strings.TrimPrefix(e.Server.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	snapshot := ReadUpdate(t, conn)
	return conn, snapshot
}

// WaitForClients blocks until the hub has n dashboards registered
func (e *TestEnv) WaitForClients(t *testing.T, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return e.Hub.ClientCount() == n }, 2*time.Second, 10*time.Millisecond)
}

// ReadUpdate reads the next pushed message
func ReadUpdate(t *testing.T, conn *websocket.Conn) model.Update {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var update model.Update
	require.NoError(t, json.Unmarshal(data, &update))
	return update
}

// LedgerSize counts recorded bids
func (e *TestEnv) LedgerSize(t *testing.T) int {
	t.Helper()
	bids, err := e.Repo.RecentBids(context.Background(), 1_000_000)
	require.NoError(t, err)
	return len(bids)
}
