package service

import "errors"

var (
	// ErrServerOffline is returned by operations that strictly need the
	// server (RefreshAll, DetectServerReset) when the probe fails.
	ErrServerOffline = errors.New("stats server offline")

	// ErrLocalSave is returned by RecordGameEnd when the record could not
	// be written to the local cache. This is the only fatal save failure.
	ErrLocalSave = errors.New("local save failed")
)
