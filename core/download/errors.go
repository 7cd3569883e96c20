package download

import "errors"

var (
	// ErrSourceUnavailable marks failures to reach or read from the remote source.
	ErrSourceUnavailable = errors.New("source unavailable")
	// ErrDecompression marks a corrupt or truncated compressed stream.
	ErrDecompression = errors.New("decompression failed")
	// ErrWrite marks a failure to append decompressed output to the sink.
	ErrWrite = errors.New("write failed")
)
