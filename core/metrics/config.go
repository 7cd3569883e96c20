package metrics

// Config holds configuration for batch metrics.
type Config struct {
	// PushURL is the Pushgateway address. Empty disables pushing.
	PushURL string `mapstructure:"push_url" default:""`
	// Job is the Pushgateway job label.
	Job string `mapstructure:"job" default:"type_extractor"`
}
