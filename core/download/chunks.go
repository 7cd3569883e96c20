package download

import (
	"errors"
	"fmt"
	"io"
	"iter"
)

// Chunks exposes r as a lazy sequence of byte chunks of at most size bytes.
// The sequence ends at io.EOF; any other read error is yielded once and ends it.
// A chunk is only valid until the next iteration step.
//
// The sequence is finite and cannot be restarted: it consumes r.
func Chunks(r io.Reader, size int) iter.Seq2[[]byte, error] {
	if size <= 0 {
		size = DefaultChunkSize
	}
	return func(yield func([]byte, error) bool) {
		buf := make([]byte, size)
		for {
			n, err := fill(r, buf)
			if n > 0 && !yield(buf[:n], nil) {
				return
			}
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(nil, err)
				return
			}
		}
	}
}

// fill reads into buf until it is full or r returns an error.
// Unlike io.ReadFull it hands back r's error untouched, so a decoder's
// io.ErrUnexpectedEOF stays distinguishable from a clean end of stream.
func fill(r io.Reader, buf []byte) (int, error) {
	var n int
	for n < len(buf) {
		m, err := r.Read(buf[n:])
		n += m
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// Drain appends every chunk of seq to w and returns the number of bytes written.
// Read errors from seq are returned as-is, write errors are wrapped with ErrWrite.
func Drain(w io.Writer, seq iter.Seq2[[]byte, error]) (int64, error) {
	var written int64
	for chunk, err := range seq {
		if err != nil {
			return written, err
		}
		n, err := w.Write(chunk)
		written += int64(n)
		if err != nil {
			return written, fmt.Errorf("%w: %w", ErrWrite, err)
		}
	}
	return written, nil
}
