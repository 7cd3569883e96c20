package download

// Config holds configuration for fetching the compressed database snapshot.
type Config struct {
	// URL is the location of the compressed snapshot.
	URL string `mapstructure:"url" default:"https://www.fuzzwork.co.uk/dump/sqlite-latest.sqlite.bz2"`
	// ChunkSize is the number of bytes requested from the response body per read.
	ChunkSize int `mapstructure:"chunk_size" default:"1000000"`
	// Compression names the codec of the snapshot (bzip2, gzip, zstd, brotli, none).
	Compression string `mapstructure:"compression" default:"bzip2"`
	// TimeoutSeconds bounds the whole transfer. Zero disables the limit.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"0"`
	// UserAgent is sent with the request.
	UserAgent string `mapstructure:"user_agent" default:"type-extractor/1.0"`
}

// DefaultChunkSize is used when the configured chunk size is not positive.
const DefaultChunkSize = 1000000
