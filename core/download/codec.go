package download

import (
	"compress/bzip2"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

const (
	CodecBzip2  = "bzip2"
	CodecGzip   = "gzip"
	CodecZstd   = "zstd"
	CodecBrotli = "brotli"
	CodecNone   = "none"
)

// ValidateCodec reports whether codec names a supported compression.
func ValidateCodec(codec string) error {
	switch strings.ToLower(codec) {
	case CodecBzip2, "bz2", CodecGzip, "gz", CodecZstd, CodecBrotli, "br", CodecNone, "":
		return nil
	default:
		return fmt.Errorf("unsupported compression %q", codec)
	}
}

// NewDecompressor wraps r with the decoder registered for codec.
// The returned reader must be closed; closing it does not close r.
func NewDecompressor(codec string, r io.Reader) (io.ReadCloser, error) {
	switch strings.ToLower(codec) {
	case CodecBzip2, "bz2":
		return io.NopCloser(bzip2.NewReader(r)), nil

	case CodecGzip, "gz":
		reader, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		return reader, nil

	case CodecZstd:
		decoder, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
		}
		return decoder.IOReadCloser(), nil

	case CodecBrotli, "br":
		return io.NopCloser(brotli.NewReader(r)), nil

	case CodecNone, "":
		return io.NopCloser(r), nil

	default:
		return nil, fmt.Errorf("unsupported compression %q", codec)
	}
}
