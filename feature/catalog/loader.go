package catalog

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	catalog *Catalog
	handler *Handler
}

// NewFeature creates a new catalog feature serving src.
func NewFeature(src Source, logger *zap.Logger) *Feature {
	c := New(src, logger)
	return &Feature{catalog: c, handler: NewHandler(c, logger)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "catalog"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
