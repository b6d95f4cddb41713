package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kihyunnn/Texas-holdem/internal/api"
	"github.com/kihyunnn/Texas-holdem/internal/api/apierr"
	"github.com/kihyunnn/Texas-holdem/internal/api/response"
	"github.com/kihyunnn/Texas-holdem/internal/factory"
	"github.com/kihyunnn/Texas-holdem/internal/testutil"
)

// testServer wires the router over mocked dependencies
type testServer struct {
	handler http.Handler
	app     *factory.TestApp
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	app := factory.NewTestApp()
	app.MockSummarizer.Response = "Nice one."

	router := api.NewRouter(api.RouterConfig{
		Logger:             testutil.NopLogger(),
		PlayerService:      app.PlayerService,
		GameService:        app.GameService,
		StatsService:       app.StatsService,
		RivalryService:     app.RivalryService,
		AchievementService: app.AchievementService,
		Composer:           app.Composer,
	})

	return &testServer{handler: router, app: app}
}

func (ts *testServer) request(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp apierr.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error.Code
}

func (ts *testServer) createPlayer(t *testing.T, name string) response.Player {
	t.Helper()
	rec := ts.request(t, http.MethodPost, "/api/v1/players", map[string]string{"name": name})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[response.Player](t, rec)
}

func (ts *testServer) recordGame(t *testing.T, body map[string]any) response.Game {
	t.Helper()
	rec := ts.request(t, http.MethodPost, "/api/v1/games", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[response.Game](t, rec)
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(t, http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRequestIDHeader(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(t, http.MethodGet, "/api/v1/health", nil)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestCreatePlayer(t *testing.T) {
	ts := newTestServer(t)

	p := ts.createPlayer(t, "Alice")
	assert.Equal(t, "Alice", p.Name)
	assert.NotEmpty(t, p.ID)
}

func TestCreatePlayerEmptyName(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(t, http.MethodPost, "/api/v1/players", map[string]string{"name": "  "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apierr.CodeEmptyName, errorCode(t, rec))
}

func TestCreatePlayerDuplicateName(t *testing.T) {
	ts := newTestServer(t)
	ts.createPlayer(t, "Alice")

	rec := ts.request(t, http.MethodPost, "/api/v1/players", map[string]string{"name": "Alice"})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, apierr.CodeDuplicateName, errorCode(t, rec))
}

func TestListPlayers(t *testing.T) {
	ts := newTestServer(t)
	ts.createPlayer(t, "Alice")
	ts.createPlayer(t, "Bob")

	rec := ts.request(t, http.MethodGet, "/api/v1/players", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	players := decode[[]response.Player](t, rec)
	assert.Len(t, players, 2)
}

func TestDeletePlayer(t *testing.T) {
	ts := newTestServer(t)
	p := ts.createPlayer(t, "Alice")

	rec := ts.request(t, http.MethodDelete, "/api/v1/players/"+p.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = ts.request(t, http.MethodGet, "/api/v1/players/"+p.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apierr.CodePlayerNotFound, errorCode(t, rec))
}

func TestRecordGame(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.createPlayer(t, "Alice")
	bob := ts.createPlayer(t, "Bob")

	g := ts.recordGame(t, map[string]any{
		"winner_id":    alice.ID,
		"pot_amount":   500,
		"winning_hand": "Flush",
		"participants": []map[string]any{
			{"player_id": alice.ID, "bet_amount": 200},
			{"player_id": bob.ID, "bet_amount": 300},
		},
	})

	assert.Equal(t, alice.ID, g.WinnerID)
	assert.Equal(t, "Alice", g.WinnerName)
	assert.Equal(t, int64(500), g.PotAmount)
	assert.Equal(t, "Nice one.", g.AIAnalysis)
	require.Len(t, g.Participants, 2)
	assert.Equal(t, "Bob", g.Participants[1].Name)
}

func TestRecordGameValidation(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.createPlayer(t, "Alice")

	cases := []struct {
		name     string
		body     map[string]any
		status   int
		wantCode string
	}{
		{
			name:     "missing winner",
			body:     map[string]any{"pot_amount": 10},
			status:   http.StatusBadRequest,
			wantCode: apierr.CodeInvalidRequest,
		},
		{
			name:     "missing pot",
			body:     map[string]any{"winner_id": alice.ID},
			status:   http.StatusBadRequest,
			wantCode: apierr.CodeInvalidRequest,
		},
		{
			name:     "negative pot",
			body:     map[string]any{"winner_id": alice.ID, "pot_amount": -5},
			status:   http.StatusBadRequest,
			wantCode: apierr.CodeInvalidAmount,
		},
		{
			name:     "unknown winner",
			body:     map[string]any{"winner_id": "ghost", "pot_amount": 10},
			status:   http.StatusNotFound,
			wantCode: apierr.CodeUnknownWinner,
		},
		{
			name: "unknown participant",
			body: map[string]any{
				"winner_id":  alice.ID,
				"pot_amount": 10,
				"participants": []map[string]any{
					{"player_id": alice.ID, "bet_amount": 5},
					{"player_id": "ghost", "bet_amount": 5},
				},
			},
			status:   http.StatusNotFound,
			wantCode: apierr.CodeUnknownParticipant,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := ts.request(t, http.MethodPost, "/api/v1/games", tc.body)
			assert.Equal(t, tc.status, rec.Code, rec.Body.String())
			assert.Equal(t, tc.wantCode, errorCode(t, rec))
		})
	}
}

func TestDeleteGame(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.createPlayer(t, "Alice")
	g := ts.recordGame(t, map[string]any{"winner_id": alice.ID, "pot_amount": 100})

	rec := ts.request(t, http.MethodDelete, "/api/v1/games/"+g.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = ts.request(t, http.MethodDelete, "/api/v1/games/"+g.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apierr.CodeGameNotFound, errorCode(t, rec))
}

func TestListGamesNewestFirst(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.createPlayer(t, "Alice")

	first := ts.recordGame(t, map[string]any{"winner_id": alice.ID, "pot_amount": 1})
	ts.app.MockClock.Advance(time.Minute)
	second := ts.recordGame(t, map[string]any{"winner_id": alice.ID, "pot_amount": 2})

	rec := ts.request(t, http.MethodGet, "/api/v1/games?limit=1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	games := decode[[]response.Game](t, rec)
	require.Len(t, games, 1)
	assert.Equal(t, second.ID, games[0].ID)

	rec = ts.request(t, http.MethodGet, "/api/v1/games", nil)
	games = decode[[]response.Game](t, rec)
	require.Len(t, games, 2)
	assert.Equal(t, first.ID, games[1].ID)
}

func TestLeaderboard(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.createPlayer(t, "Alice")
	bob := ts.createPlayer(t, "Bob")

	ts.recordGame(t, map[string]any{"winner_id": alice.ID, "pot_amount": 100, "winning_hand": "Flush"})
	ts.recordGame(t, map[string]any{"winner_id": bob.ID, "pot_amount": 200, "winning_hand": "Flush"})
	ts.recordGame(t, map[string]any{"winner_id": alice.ID, "pot_amount": 50, "winning_hand": "Pair"})

	rec := ts.request(t, http.MethodGet, "/api/v1/leaderboard", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	board := decode[[]response.PlayerStat](t, rec)
	require.Len(t, board, 2)

	assert.Equal(t, 1, board[0].Rank)
	assert.Equal(t, "Bob", board[0].Name)
	assert.Equal(t, int64(200), board[0].TotalWon)
	assert.Equal(t, "Alice", board[1].Name)
	assert.Equal(t, 2, board[1].TotalWins)
	assert.Equal(t, int64(150), board[1].TotalWon)
}

func TestLeaderboardInvalidScope(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(t, http.MethodGet, "/api/v1/leaderboard?scope=eon", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apierr.CodeInvalidScope, errorCode(t, rec))
}

func TestLeaderboardCustomRange(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.createPlayer(t, "Alice")
	ts.recordGame(t, map[string]any{"winner_id": alice.ID, "pot_amount": 100})

	// The mock clock sits at 2024-01-01
	rec := ts.request(t, http.MethodGet, "/api/v1/leaderboard?scope=custom&date_from=2024-01-01&date_to=2024-01-02", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	board := decode[[]response.PlayerStat](t, rec)
	assert.Len(t, board, 1)

	rec = ts.request(t, http.MethodGet, "/api/v1/leaderboard?scope=custom&date_from=2024-01-02", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apierr.CodeInvalidRange, errorCode(t, rec))

	rec = ts.request(t, http.MethodGet, "/api/v1/leaderboard?scope=custom&date_from=bogus&date_to=2024-01-02", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apierr.CodeInvalidRequest, errorCode(t, rec))
}

func TestTrendAndHands(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.createPlayer(t, "Alice")
	bob := ts.createPlayer(t, "Bob")

	ts.recordGame(t, map[string]any{"winner_id": alice.ID, "pot_amount": 100, "winning_hand": "Flush"})
	ts.app.MockClock.Advance(time.Minute)
	ts.recordGame(t, map[string]any{"winner_id": bob.ID, "pot_amount": 200, "winning_hand": "Flush"})
	ts.app.MockClock.Advance(time.Minute)
	ts.recordGame(t, map[string]any{"winner_id": alice.ID, "pot_amount": 50, "winning_hand": "Pair"})

	rec := ts.request(t, http.MethodGet, "/api/v1/stats/trend", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	points := decode[[]response.TrendPoint](t, rec)
	require.Len(t, points, 3)
	assert.Equal(t, int64(100), points[0].PotAmount)
	assert.Equal(t, int64(200), points[1].PotAmount)
	assert.Equal(t, int64(50), points[2].PotAmount)
	assert.Equal(t, "Bob", points[1].WinnerName)

	rec = ts.request(t, http.MethodGet, "/api/v1/stats/hands", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	hands := decode[[]response.HandCount](t, rec)
	require.Len(t, hands, 2)
	assert.Equal(t, "Flush", hands[0].WinningHand)
	assert.Equal(t, 2, hands[0].Count)
}

func TestSessionStats(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.createPlayer(t, "Alice")

	ts.recordGame(t, map[string]any{"winner_id": alice.ID, "pot_amount": 100})
	ts.app.MockClock.Advance(48 * time.Hour)
	ts.recordGame(t, map[string]any{"winner_id": alice.ID, "pot_amount": 20})

	rec := ts.request(t, http.MethodGet, "/api/v1/stats/session", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	session := decode[[]response.PlayerStat](t, rec)
	require.Len(t, session, 1)
	assert.Equal(t, int64(20), session[0].TotalWon, "only games from the current day")
}

func TestPlayerStats(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.createPlayer(t, "Alice")
	ts.recordGame(t, map[string]any{"winner_id": alice.ID, "pot_amount": 100, "winning_hand": "Flush"})

	rec := ts.request(t, http.MethodGet, fmt.Sprintf("/api/v1/players/%s/stats", alice.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	stat := decode[response.PlayerStat](t, rec)
	assert.Equal(t, 1, stat.TotalWins)
	assert.Equal(t, 100, stat.WinRate)
	assert.Equal(t, "Flush", stat.TopHand)
}

func TestPlayerInsight(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.createPlayer(t, "Alice")

	rec := ts.request(t, http.MethodGet, fmt.Sprintf("/api/v1/players/%s/insight", alice.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	insight := decode[response.Insight](t, rec)
	assert.Equal(t, "Nice one.", insight.Narrative)
}

func TestPlayerAchievements(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.createPlayer(t, "Alice")
	ts.recordGame(t, map[string]any{"winner_id": alice.ID, "pot_amount": 15000})

	rec := ts.request(t, http.MethodGet, fmt.Sprintf("/api/v1/players/%s/achievements", alice.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	achievements := decode[[]response.Achievement](t, rec)

	earned := make([]string, len(achievements))
	for i, a := range achievements {
		earned[i] = a.ID
	}
	assert.Contains(t, earned, "first_blood")
	assert.Contains(t, earned, "big_pot")
}

func TestRivalry(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.createPlayer(t, "Alice")
	bob := ts.createPlayer(t, "Bob")
	ts.recordGame(t, map[string]any{"winner_id": alice.ID, "pot_amount": 100})

	rec := ts.request(t, http.MethodGet,
		fmt.Sprintf("/api/v1/rivalry?player1=%s&player2=%s", alice.ID, bob.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	result := decode[response.RivalryResult](t, rec)

	assert.Equal(t, "Alice", result.Player1.Name)
	assert.Equal(t, 1, result.Player1.TotalWins)
	assert.Equal(t, "Bob", result.Player2.Name)
	assert.Equal(t, "Nice one.", result.Narrative)
}

func TestRivalrySamePlayer(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.createPlayer(t, "Alice")

	rec := ts.request(t, http.MethodGet,
		fmt.Sprintf("/api/v1/rivalry?player1=%s&player2=%s", alice.ID, alice.ID), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apierr.CodeSamePlayer, errorCode(t, rec))
}

func TestDeletedPlayerExcludedFromAggregates(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.createPlayer(t, "Alice")
	bob := ts.createPlayer(t, "Bob")
	ts.recordGame(t, map[string]any{"winner_id": alice.ID, "pot_amount": 100})
	ts.recordGame(t, map[string]any{"winner_id": bob.ID, "pot_amount": 999})

	rec := ts.request(t, http.MethodDelete, "/api/v1/players/"+bob.ID, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = ts.request(t, http.MethodGet, "/api/v1/leaderboard", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	board := decode[[]response.PlayerStat](t, rec)
	require.Len(t, board, 1)
	assert.Equal(t, "Alice", board[0].Name)
}

func TestOrphanedGameFetchableByIDButNotListed(t *testing.T) {
	ts := newTestServer(t)
	bob := ts.createPlayer(t, "Bob")
	game := ts.recordGame(t, map[string]any{"winner_id": bob.ID, "pot_amount": 500})

	rec := ts.request(t, http.MethodDelete, "/api/v1/players/"+bob.ID, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	// The listing drops the orphaned game
	rec = ts.request(t, http.MethodGet, "/api/v1/games", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]response.Game](t, rec))

	// Direct access by id still resolves it, and its cleanup path works
	rec = ts.request(t, http.MethodGet, "/api/v1/games/"+game.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, bob.ID, decode[response.Game](t, rec).WinnerID)

	rec = ts.request(t, http.MethodDelete, "/api/v1/games/"+game.ID, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
}
