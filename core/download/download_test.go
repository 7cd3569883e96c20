package download

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// expectedLines is the plain text stored in testdata/lines.txt.bz2.
func expectedLines() []byte {
	var buf bytes.Buffer
	for i := 0; i < 5000; i++ {
		fmt.Fprintf(&buf, "line %05d: Archon Nyx Revelation Rorqual\n", i)
	}
	return buf.Bytes()
}

func serveBytes(t *testing.T, body []byte, withLength bool) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if withLength {
			w.Header().Set("Content-Length", strconv.Itoa(len(body)))
		}
		// Two writes with a flush in between force chunked encoding when no length is set.
		half := len(body) / 2
		_, _ = w.Write(body[:half])
		if f, ok := w.(http.Flusher); ok {
			f.Flush()
		}
		_, _ = w.Write(body[half:])
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestDownloader_Download(t *testing.T) {
	raw, err := os.ReadFile("testdata/lines.txt.bz2")
	require.NoError(t, err)

	t.Run("Bzip2 With Content Length", func(t *testing.T) {
		srv := serveBytes(t, raw, true)
		core, logs := observer.New(zapcore.InfoLevel)

		d := NewDownloader(Config{URL: srv.URL, ChunkSize: 1000, Compression: CodecBzip2}, zap.New(core))
		dest := filepath.Join(t.TempDir(), "out.txt")

		res, err := d.Download(t.Context(), dest)
		require.NoError(t, err)

		got, err := os.ReadFile(dest)
		require.NoError(t, err)
		assert.Equal(t, expectedLines(), got)
		assert.Equal(t, int64(len(raw)), res.ContentLength)
		assert.Equal(t, int64(len(raw)), res.Compressed)
		assert.Equal(t, int64(len(got)), res.Decompressed)

		progress := logs.FilterMessage("Download progress").All()
		require.NotEmpty(t, progress)
		last := progress[len(progress)-1].ContextMap()
		assert.Equal(t, "100.00%", last["complete"])
	})

	t.Run("Unknown Length Reports Bytes Only", func(t *testing.T) {
		payload := bytes.Repeat([]byte("abc"), 10000)
		srv := serveBytes(t, compress(t, CodecGzip, payload), false)
		core, logs := observer.New(zapcore.InfoLevel)

		d := NewDownloader(Config{URL: srv.URL, ChunkSize: 64, Compression: CodecGzip}, zap.New(core))
		dest := filepath.Join(t.TempDir(), "out.bin")

		res, err := d.Download(t.Context(), dest)
		require.NoError(t, err)
		assert.Equal(t, int64(-1), res.ContentLength)

		got, err := os.ReadFile(dest)
		require.NoError(t, err)
		assert.Equal(t, payload, got)

		for _, entry := range logs.FilterMessage("Download progress").All() {
			fields := entry.ContextMap()
			assert.Equal(t, "unknown", fields["total"])
			assert.NotContains(t, fields, "complete")
		}
	})

	t.Run("Overwrites Existing File", func(t *testing.T) {
		srv := serveBytes(t, compress(t, CodecNone, []byte("new")), true)
		dest := filepath.Join(t.TempDir(), "out.bin")
		require.NoError(t, os.WriteFile(dest, []byte("previous, longer content"), 0o644))

		d := NewDownloader(Config{URL: srv.URL, Compression: CodecNone}, zap.NewNop())
		_, err := d.Download(t.Context(), dest)
		require.NoError(t, err)

		got, err := os.ReadFile(dest)
		require.NoError(t, err)
		assert.Equal(t, "new", string(got))
	})
}

func TestDownloader_Failures(t *testing.T) {
	t.Run("Non Success Status", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		defer srv.Close()

		d := NewDownloader(Config{URL: srv.URL, Compression: CodecBzip2}, zap.NewNop())
		_, err := d.Download(t.Context(), filepath.Join(t.TempDir(), "out"))
		assert.ErrorIs(t, err, ErrSourceUnavailable)
		assert.ErrorContains(t, err, "404")
	})

	t.Run("Unreachable Host", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		d := NewDownloader(Config{URL: url, Compression: CodecNone}, zap.NewNop())
		_, err := d.Download(t.Context(), filepath.Join(t.TempDir(), "out"))
		assert.ErrorIs(t, err, ErrSourceUnavailable)
	})

	t.Run("Truncated Compressed Stream", func(t *testing.T) {
		full := compress(t, CodecGzip, bytes.Repeat([]byte("Archon "), 50000))
		srv := serveBytes(t, full[:len(full)/2], true)

		d := NewDownloader(Config{URL: srv.URL, ChunkSize: 512, Compression: CodecGzip}, zap.NewNop())
		_, err := d.Download(t.Context(), filepath.Join(t.TempDir(), "out"))
		assert.ErrorIs(t, err, ErrDecompression)
		assert.NotErrorIs(t, err, ErrSourceUnavailable)
	})

	t.Run("Truncated Bzip2 Stream", func(t *testing.T) {
		raw, err := os.ReadFile("testdata/lines.txt.bz2")
		require.NoError(t, err)
		srv := serveBytes(t, raw[:len(raw)-100], true)

		d := NewDownloader(Config{URL: srv.URL, ChunkSize: 256, Compression: CodecBzip2}, zap.NewNop())
		_, err = d.Download(t.Context(), filepath.Join(t.TempDir(), "out"))
		assert.ErrorIs(t, err, ErrDecompression)
	})

	t.Run("Connection Dropped Mid Body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Length", "100000")
			_, _ = w.Write(bytes.Repeat([]byte("x"), 1000))
		}))
		defer srv.Close()

		d := NewDownloader(Config{URL: srv.URL, ChunkSize: 128, Compression: CodecNone}, zap.NewNop())
		_, err := d.Download(t.Context(), filepath.Join(t.TempDir(), "out"))
		assert.ErrorIs(t, err, ErrSourceUnavailable)
	})

	t.Run("Unsupported Codec Before Request", func(t *testing.T) {
		called := false
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer srv.Close()

		d := NewDownloader(Config{URL: srv.URL, Compression: "xz"}, zap.NewNop())
		_, err := d.Download(t.Context(), filepath.Join(t.TempDir(), "out"))
		assert.ErrorContains(t, err, "unsupported compression")
		assert.False(t, called)
	})

	t.Run("Unwritable Destination", func(t *testing.T) {
		srv := serveBytes(t, []byte("data"), true)

		d := NewDownloader(Config{URL: srv.URL, Compression: CodecNone}, zap.NewNop())
		_, err := d.Download(t.Context(), filepath.Join(t.TempDir(), "missing", "dir", "out"))
		assert.ErrorIs(t, err, ErrWrite)
	})
}
