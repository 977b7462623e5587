// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Karpov

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/akarpov/memstats/models"
)

const defaultLeaderboardScope = "all"

type HTTPClientConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
	ProbeTimeout   time.Duration
}

type httpRemoteStats struct {
	client       *resty.Client
	probeTimeout time.Duration
}

func NewHTTPRemoteStats(cfg HTTPClientConfig) RemoteStats {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:5000"
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 10 * time.Second
	}
	if cfg.ProbeTimeout <= 0 {
		cfg.ProbeTimeout = 5 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.RequestTimeout)

	return &httpRemoteStats{client: cli, probeTimeout: cfg.ProbeTimeout}
}

func (h *httpRemoteStats) Probe(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, h.probeTimeout)
	defer cancel()

	resp, err := h.client.R().
		SetContext(ctx).
		Get("/")

	return err == nil && resp.IsSuccess()
}

func (h *httpRemoteStats) Save(ctx context.Context, req models.SaveStatsRequest) (int64, bool, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/stats/save")
	if err != nil {
		return 0, false, fmt.Errorf("save request: %w", classifyTransportError(err))
	}

	// the server answers 409 when it already holds this session; the data
	// is safe on both sides, so report it as a clean duplicate
	if resp.StatusCode() == http.StatusConflict {
		var out models.SaveStatsResponse
		_ = json.Unmarshal(resp.Body(), &out)
		return out.ID, true, nil
	}

	if err = mapHTTPError(resp); err != nil {
		return 0, false, fmt.Errorf("save: %w", err)
	}

	var out models.SaveStatsResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return 0, false, fmt.Errorf("save decode: %w: %w", ErrMalformedResponse, err)
	}
	if !out.Success {
		return 0, false, fmt.Errorf("save: %w: %s", ErrRejected, out.Message)
	}

	return out.ID, false, nil
}

func (h *httpRemoteStats) FetchLeaderboard(ctx context.Context, difficulty string, limit int) ([]models.LeaderboardEntry, error) {
	if difficulty == "" {
		difficulty = defaultLeaderboardScope
	}

	resp, err := h.freshGet(ctx).
		SetQueryParam("limit", strconv.Itoa(limit)).
		Get("/api/stats/leaderboard/" + url.PathEscape(difficulty))
	if err != nil {
		return nil, fmt.Errorf("leaderboard request: %w", classifyTransportError(err))
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("leaderboard: %w", err)
	}

	var out models.LeaderboardResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("leaderboard decode: %w: %w", ErrMalformedResponse, err)
	}

	return out.Leaderboard, nil
}

func (h *httpRemoteStats) FetchPlayer(ctx context.Context, playerName string) (models.PlayerStatsResponse, error) {
	resp, err := h.freshGet(ctx).
		Get("/api/stats/player/" + url.PathEscape(playerName))
	if err != nil {
		return models.PlayerStatsResponse{}, fmt.Errorf("player stats request: %w", classifyTransportError(err))
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PlayerStatsResponse{}, fmt.Errorf("player stats: %w", err)
	}

	var out models.PlayerStatsResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.PlayerStatsResponse{}, fmt.Errorf("player stats decode: %w: %w", ErrMalformedResponse, err)
	}

	return out, nil
}

func (h *httpRemoteStats) FetchCount(ctx context.Context) (int, error) {
	resp, err := h.freshGet(ctx).
		Get("/api/stats/count")
	if err != nil {
		return 0, fmt.Errorf("count request: %w", classifyTransportError(err))
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}

	var out models.CountResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return 0, fmt.Errorf("count decode: %w: %w", ErrMalformedResponse, err)
	}

	return out.Count, nil
}

// freshGet prepares a read request that defeats intermediate caches: stale
// leaderboard data is worse than a slightly slower response.
func (h *httpRemoteStats) freshGet(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Cache-Control", "no-cache").
		SetHeader("Pragma", "no-cache").
		SetQueryParam("t", strconv.FormatInt(time.Now().UnixMilli(), 10))
}
