// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Karpov

package models

import (
	"fmt"
	"math"
)

// Source identifies where a stored record originated from. Records written
// when a game ends are tagged [SourceLocal]; rows rebuilt from a remote
// leaderboard response are tagged [SourceServer]. The tag drives merge and
// cache-replace behavior and never changes after insertion.
type Source string

const (
	SourceLocal  Source = "local"
	SourceServer Source = "server"
)

// Known difficulty labels. Custom covers user-configured board sizes.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
	DifficultyCustom = "Custom"
)

// DefaultPlayerName is substituted when a game ends with a blank player name.
const DefaultPlayerName = "Player"

// Difficulties returns the fixed set of difficulty labels, in display order.
func Difficulties() []string {
	return []string{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyCustom}
}

// GameRecord is one completed or abandoned play session.
//
// StartTime and EndTime are UNIX timestamps in seconds (fractional part
// carries sub-second precision), matching the wire format of the stats
// service. DurationSeconds and Errors are derived fields: they are
// recomputed on every write and never independently mutated.
type GameRecord struct {
	// ID is the local identifier assigned by the local store.
	ID int64 `json:"id"`

	// ServerID is the identifier assigned by the remote service once it
	// accepts the record. Zero until synced.
	ServerID int64 `json:"server_id,omitempty"`

	PlayerName string  `json:"player_name"`
	Difficulty string  `json:"difficulty"`
	StartTime  float64 `json:"start_time"`
	EndTime    float64 `json:"end_time"`

	// DurationSeconds always equals EndTime - StartTime.
	DurationSeconds float64 `json:"duration_seconds"`

	Moves   int `json:"moves"`
	Matches int `json:"matches"`

	// Errors always equals max(0, Moves - Matches).
	Errors int `json:"errors"`

	// Completed is true when the session ended by winning.
	Completed bool `json:"completed"`

	Source Source `json:"source"`

	// Synthesized marks rows rebuilt from a leaderboard response during a
	// full refresh. Their StartTime/EndTime/Moves are estimates, not real
	// session history.
	Synthesized bool `json:"synthesized,omitempty"`

	// Cached and CachedReason annotate query results served from the local
	// store because the remote service was unreachable. They are never
	// persisted.
	Cached       bool   `json:"cached,omitempty"`
	CachedReason string `json:"cached_reason,omitempty"`
}

// NewGameRecord builds a record from game-end data, applying the default
// player name and computing the derived fields.
func NewGameRecord(playerName, difficulty string, startTime, endTime float64, moves, matches int, completed bool) GameRecord {
	if playerName == "" {
		playerName = DefaultPlayerName
	}

	r := GameRecord{
		PlayerName: playerName,
		Difficulty: difficulty,
		StartTime:  startTime,
		EndTime:    endTime,
		Moves:      moves,
		Matches:    matches,
		Completed:  completed,
		Source:     SourceLocal,
	}
	r.ComputeDerived()

	return r
}

// ComputeDerived recomputes DurationSeconds and Errors from the primary
// fields. Callers that mutate StartTime, EndTime, Moves, or Matches must
// call it before persisting the record.
func (r *GameRecord) ComputeDerived() {
	r.DurationSeconds = r.EndTime - r.StartTime
	r.Errors = r.Moves - r.Matches
	if r.Errors < 0 {
		r.Errors = 0
	}
}

// IdentityKey returns the merge identity of the record: the server id when
// present, otherwise a composite of player name, difficulty, duration
// rounded to two decimals, and error count. Two records with equal keys
// describe the same session.
func (r GameRecord) IdentityKey() string {
	if r.ServerID > 0 {
		return fmt.Sprintf("srv:%d", r.ServerID)
	}

	rounded := math.Round(r.DurationSeconds*100) / 100
	return fmt.Sprintf("%s|%s|%.2f|%d", r.PlayerName, r.Difficulty, rounded, r.Errors)
}
