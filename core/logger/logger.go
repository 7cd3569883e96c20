package logger

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a zap logger writing to stderr. Stdout is left to command output
// such as verification reports.
func New(cfg *Config) (*zap.Logger, error) {
	zc := baseConfig(cfg.Level)
	zc.Encoding, zc.EncoderConfig = encoding(cfg.Format, zc.EncoderConfig)
	if zc.Encoding == "console" {
		zc.DisableStacktrace = true
	}
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	return zc.Build()
}

// baseConfig picks the development preset for debug and the production preset
// otherwise. Unknown levels stay at the preset's info level.
func baseConfig(level string) zap.Config {
	if level == "debug" {
		return zap.NewDevelopmentConfig()
	}
	zc := zap.NewProductionConfig()
	if lvl, err := zapcore.ParseLevel(level); err == nil {
		zc.Level = zap.NewAtomicLevelAt(lvl)
	}
	return zc
}

func encoding(format string, ec zapcore.EncoderConfig) (string, zapcore.EncoderConfig) {
	ec.LevelKey = "level"
	ec.TimeKey = "time"
	ec.MessageKey = "message"
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	if format == "console" {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return "console", ec
	}
	ec.EncodeLevel = zapcore.LowercaseLevelEncoder
	return "json", ec
}

// WithRunID tags l with a fresh run_id and returns the id as well.
func WithRunID(l *zap.Logger) (*zap.Logger, string) {
	id := uuid.NewString()
	return l.With(zap.String("run_id", id)), id
}

// WithRayID tags l with the request's ray_id when the rayid middleware set one.
func WithRayID(l *zap.Logger, c *fiber.Ctx) *zap.Logger {
	if rid, ok := c.Locals("ray_id").(string); ok && rid != "" {
		return l.With(zap.String("ray_id", rid))
	}
	return l
}
