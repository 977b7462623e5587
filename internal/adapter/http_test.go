package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akarpov/memstats/models"
)

func newTestAdapter(t *testing.T, handler http.Handler) (RemoteStats, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a := NewHTTPRemoteStats(HTTPClientConfig{
		BaseURL:        srv.URL,
		RequestTimeout: 2 * time.Second,
		ProbeTimeout:   500 * time.Millisecond,
	})
	return a, srv
}

func writeJSON(t *testing.T, w http.ResponseWriter, code int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	assert.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestProbe(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	a, _ := newTestAdapter(t, r)

	assert.True(t, a.Probe(context.Background()))
}

func TestProbe_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	a := NewHTTPRemoteStats(HTTPClientConfig{BaseURL: srv.URL, ProbeTimeout: 500 * time.Millisecond})

	assert.False(t, a.Probe(context.Background()))
}

func TestProbe_Timeout(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	a := NewHTTPRemoteStats(HTTPClientConfig{BaseURL: srv.URL, ProbeTimeout: 50 * time.Millisecond})

	assert.False(t, a.Probe(context.Background()))
}

func TestSave_Success(t *testing.T) {
	var got models.SaveStatsRequest

	r := chi.NewRouter()
	r.Post("/api/stats/save", func(w http.ResponseWriter, req *http.Request) {
		assert.NoError(t, json.NewDecoder(req.Body).Decode(&got))
		writeJSON(t, w, http.StatusOK, models.SaveStatsResponse{Success: true, ID: 77})
	})
	a, _ := newTestAdapter(t, r)

	id, duplicate, err := a.Save(context.Background(), models.SaveStatsRequest{
		ClientID:        "c-1",
		PlayerName:      "Ana",
		Difficulty:      "Easy",
		DurationSeconds: 42.5,
		Errors:          2,
		Completed:       true,
		LocalID:         3,
	})

	require.NoError(t, err)
	assert.False(t, duplicate)
	assert.Equal(t, int64(77), id)
	assert.Equal(t, "Ana", got.PlayerName)
	assert.Equal(t, "c-1", got.ClientID)
	assert.Equal(t, int64(3), got.LocalID)
}

func TestSave_DuplicateConflict(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/stats/save", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusConflict, models.SaveStatsResponse{Duplicate: true, ID: 41})
	})
	a, _ := newTestAdapter(t, r)

	id, duplicate, err := a.Save(context.Background(), models.SaveStatsRequest{PlayerName: "Ana"})

	require.NoError(t, err)
	assert.True(t, duplicate)
	assert.Equal(t, int64(41), id)
}

func TestSave_ErrorClassification(t *testing.T) {
	tests := []struct {
		name    string
		code    int
		wantErr error
	}{
		{name: "bad request is permanent", code: http.StatusBadRequest, wantErr: ErrRejected},
		{name: "unprocessable is permanent", code: http.StatusUnprocessableEntity, wantErr: ErrRejected},
		{name: "throttling is retriable", code: http.StatusTooManyRequests, wantErr: ErrServerError},
		{name: "internal error is retriable", code: http.StatusInternalServerError, wantErr: ErrServerError},
		{name: "bad gateway is retriable", code: http.StatusBadGateway, wantErr: ErrServerError},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r := chi.NewRouter()
			r.Post("/api/stats/save", func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "nope", test.code)
			})
			a, _ := newTestAdapter(t, r)

			_, _, err := a.Save(context.Background(), models.SaveStatsRequest{})

			require.Error(t, err)
			assert.ErrorIs(t, err, test.wantErr)
		})
	}
}

func TestSave_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	a := NewHTTPRemoteStats(HTTPClientConfig{BaseURL: srv.URL, RequestTimeout: time.Second})

	_, _, err := a.Save(context.Background(), models.SaveStatsRequest{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServerUnreachable)
}

func TestFetchLeaderboard(t *testing.T) {
	matches := 8

	r := chi.NewRouter()
	r.Get("/api/stats/leaderboard/{difficulty}", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "Easy", chi.URLParam(req, "difficulty"))
		assert.Equal(t, "100", req.URL.Query().Get("limit"))
		assert.NotEmpty(t, req.URL.Query().Get("t"), "cache buster missing")
		assert.Equal(t, "no-cache", req.Header.Get("Cache-Control"))

		writeJSON(t, w, http.StatusOK, models.LeaderboardResponse{
			Leaderboard: []models.LeaderboardEntry{
				{ID: 1, PlayerName: "Ana", Difficulty: "Easy", DurationSeconds: 42.5, Errors: 2, Matches: &matches},
				{ID: 2, PlayerName: "Bo", Difficulty: "Easy", DurationSeconds: 51.0, Errors: 0},
			},
		})
	})
	a, _ := newTestAdapter(t, r)

	entries, err := a.FetchLeaderboard(context.Background(), "Easy", 100)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Ana", entries[0].PlayerName)
	require.NotNil(t, entries[0].Matches)
	assert.Equal(t, 8, *entries[0].Matches)
	assert.Nil(t, entries[1].Matches)
}

func TestFetchLeaderboard_EmptyDifficultyMeansAll(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/stats/leaderboard/{difficulty}", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "all", chi.URLParam(req, "difficulty"))
		writeJSON(t, w, http.StatusOK, models.LeaderboardResponse{})
	})
	a, _ := newTestAdapter(t, r)

	entries, err := a.FetchLeaderboard(context.Background(), "", 10)

	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFetchPlayer(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/stats/player/{name}", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "Ana", chi.URLParam(req, "name"))
		writeJSON(t, w, http.StatusOK, models.PlayerStatsResponse{
			Player: "Ana",
			Stats: []models.RemoteGameStat{
				{ID: 5, PlayerName: "Ana", Difficulty: "Easy", DurationSeconds: 42.5, Errors: 2, Completed: true},
			},
		})
	})
	a, _ := newTestAdapter(t, r)

	got, err := a.FetchPlayer(context.Background(), "Ana")

	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Player)
	require.Len(t, got.Stats, 1)
	assert.Equal(t, int64(5), got.Stats[0].ID)
}

func TestFetchCount(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/stats/count", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusOK, models.CountResponse{Count: 123})
	})
	a, _ := newTestAdapter(t, r)

	count, err := a.FetchCount(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 123, count)
}

func TestFetchCount_MalformedBody(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/stats/count", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("not json")) //nolint:errcheck
	})
	a, _ := newTestAdapter(t, r)

	_, err := a.FetchCount(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}
