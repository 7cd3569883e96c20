package types

import (
	"errors"

	"type-extractor/core/download"
)

// Every pipeline failure is fatal and wraps exactly one of these.
var (
	// ErrSourceUnavailable: invalid path, unreadable store, unreachable or failing remote.
	ErrSourceUnavailable = download.ErrSourceUnavailable
	// ErrDecompression: corrupt or truncated compressed stream.
	ErrDecompression = download.ErrDecompression
	// ErrQuery: missing table or column, or a failed query against the store.
	ErrQuery = errors.New("query failed")
	// ErrIO: a local file could not be written.
	ErrIO = errors.New("io failed")
)
