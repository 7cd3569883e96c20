package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
	"resty.dev/v3"
)

// Result describes a completed transfer.
type Result struct {
	// Path is the file the decompressed snapshot was written to.
	Path string
	// ContentLength is the length declared by the server, -1 when unknown.
	ContentLength int64
	// Compressed is the number of body bytes read from the network.
	Compressed int64
	// Decompressed is the number of bytes written to Path.
	Decompressed int64
}

// Downloader streams a compressed snapshot to disk, decompressing on the fly.
type Downloader struct {
	client *resty.Client
	cfg    Config
	logger *zap.Logger
}

// NewDownloader creates a Downloader for cfg.
// Transfers are never retried: a failed request aborts the run.
func NewDownloader(cfg Config, logger *zap.Logger) *Downloader {
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = DefaultChunkSize
	}

	client := resty.New().
		SetRetryCount(0).
		SetHeader("Accept", "*/*")
	if cfg.UserAgent != "" {
		client.SetHeader("User-Agent", cfg.UserAgent)
	}
	if cfg.TimeoutSeconds > 0 {
		client.SetTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second)
	}

	return &Downloader{client: client, cfg: cfg, logger: logger}
}

// Download fetches the configured URL and writes the decompressed body to destPath,
// truncating any existing file.
//
// Network failures and non-2xx responses wrap ErrSourceUnavailable, a corrupt or
// truncated compressed stream wraps ErrDecompression and sink failures wrap ErrWrite.
// destPath is left in place on failure; callers own its cleanup.
func (d *Downloader) Download(ctx context.Context, destPath string) (*Result, error) {
	// Reject an unknown codec before touching the network.
	if err := ValidateCodec(d.cfg.Compression); err != nil {
		return nil, err
	}

	resp, err := d.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(d.cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: request to %s failed: %w", ErrSourceUnavailable, d.cfg.URL, err)
	}
	body := resp.Body
	defer body.Close()

	if code := resp.StatusCode(); code < 200 || code > 299 {
		return nil, fmt.Errorf("%w: unexpected status %s from %s", ErrSourceUnavailable, resp.Status(), d.cfg.URL)
	}

	total := int64(-1)
	if resp.RawResponse != nil {
		total = resp.RawResponse.ContentLength
	}

	d.logger.Info("Downloading snapshot",
		zap.String("url", d.cfg.URL),
		zap.String("compression", d.cfg.Compression),
		zap.String("size", formatTotal(total)),
	)

	src := newChunkReader(Chunks(body, d.cfg.ChunkSize), func(read int64) {
		d.logProgress(read, total)
	})
	defer src.Close()

	decomp, err := NewDecompressor(d.cfg.Compression, src)
	if err != nil {
		return nil, d.classify(src, err)
	}
	defer decomp.Close()

	f, err := os.OpenFile(destPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open %s: %w", ErrWrite, destPath, err)
	}
	defer f.Close()

	written, err := Drain(f, Chunks(decomp, d.cfg.ChunkSize))
	if err != nil {
		if errors.Is(err, ErrWrite) {
			return nil, fmt.Errorf("failed to write %s: %w", destPath, err)
		}
		return nil, d.classify(src, err)
	}

	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("%w: failed to close %s: %w", ErrWrite, destPath, err)
	}

	d.logger.Info("Download complete",
		zap.String("path", destPath),
		zap.String("compressed", humanize.Bytes(uint64(src.read))),
		zap.String("decompressed", humanize.Bytes(uint64(written))),
	)

	return &Result{
		Path:          destPath,
		ContentLength: total,
		Compressed:    src.read,
		Decompressed:  written,
	}, nil
}

// classify attributes a failure seen while decoding to the network or to the codec.
func (d *Downloader) classify(src *chunkReader, err error) error {
	if src.sourceErr != nil {
		return fmt.Errorf("%w: reading %s: %w", ErrSourceUnavailable, d.cfg.URL, src.sourceErr)
	}
	return fmt.Errorf("%w: %s stream from %s: %w", ErrDecompression, d.cfg.Compression, d.cfg.URL, err)
}

// logProgress reports the bytes read so far. The declared length is informational
// only: when it is missing or zero the percentage is omitted instead of computed.
func (d *Downloader) logProgress(read, total int64) {
	fields := []zap.Field{
		zap.Int64("bytes_read", read),
		zap.String("read", humanize.Bytes(uint64(read))),
		zap.String("total", formatTotal(total)),
	}
	if total > 0 {
		fields = append(fields, zap.String("complete", fmt.Sprintf("%0.2f%%", float64(read)/float64(total)*100)))
	}
	d.logger.Info("Download progress", fields...)
}

func formatTotal(total int64) string {
	if total <= 0 {
		return "unknown"
	}
	return humanize.Bytes(uint64(total))
}

// chunkReader turns a chunk sequence back into an io.Reader for the decoder,
// remembering the first error the sequence produced.
type chunkReader struct {
	next      func() ([]byte, error, bool)
	stop      func()
	buf       []byte
	read      int64
	done      bool
	sourceErr error
	onChunk   func(read int64)
}

func newChunkReader(seq iter.Seq2[[]byte, error], onChunk func(read int64)) *chunkReader {
	next, stop := iter.Pull2(seq)
	return &chunkReader{next: next, stop: stop, onChunk: onChunk}
}

func (r *chunkReader) Read(p []byte) (int, error) {
	for len(r.buf) == 0 {
		if r.sourceErr != nil {
			return 0, r.sourceErr
		}
		if r.done {
			return 0, io.EOF
		}
		chunk, err, ok := r.next()
		if !ok {
			r.done = true
			return 0, io.EOF
		}
		if err != nil {
			r.sourceErr = err
			return 0, err
		}
		r.buf = chunk
		r.read += int64(len(chunk))
		if r.onChunk != nil {
			r.onChunk(r.read)
		}
	}
	n := copy(p, r.buf)
	r.buf = r.buf[n:]
	return n, nil
}

// Close stops the underlying sequence.
func (r *chunkReader) Close() error {
	r.stop()
	return nil
}
