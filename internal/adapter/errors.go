package adapter

import "errors"

var (
	// ErrServerUnreachable indicates the request never reached the server
	// (connection refused, DNS failure, broken pipe). Retriable.
	ErrServerUnreachable = errors.New("server unreachable")

	// ErrTimeout indicates the request or its context deadline expired
	// before the server answered. Retriable.
	ErrTimeout = errors.New("request timed out")

	// ErrServerError indicates the server answered with a retriable status
	// (5xx or 429). Retriable.
	ErrServerError = errors.New("server error")

	// ErrRejected indicates the server rejected the request with a
	// permanent 4xx status. Not retriable.
	ErrRejected = errors.New("request rejected")

	// ErrMalformedResponse indicates the server answered with a success
	// status but the body could not be decoded.
	ErrMalformedResponse = errors.New("malformed server response")
)
