package catalog

import (
	"strconv"

	"type-extractor/core/logger"
	"type-extractor/core/metrics"
	"type-extractor/feature/types/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the type catalog.
type Handler struct {
	catalog *Catalog
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(catalog *Catalog, logger *zap.Logger) *Handler {
	return &Handler{catalog: catalog, logger: logger}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/types")
	group.Get("/", h.HandleList)
	group.Get("/name/:name", h.HandleByName)
	group.Get("/:id", h.HandleByID)
}

// TypeList is the response of the list route.
type TypeList struct {
	Count int                 `json:"count"`
	Types []models.TypeRecord `json:"types"`
}

// HandleList lists every type, optionally restricted to one group.
// @Summary List Types
// @Description Returns every type of the served output file. Use the group parameter to restrict the result to one group.
// @Tags types
// @Produce json
// @Param group query integer false "Group ID"
// @Success 200 {object} catalog.TypeList
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 503 {object} map[string]string "Catalog Unavailable"
// @Router /types [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	const route = "list"
	snap, err := h.catalog.Snapshot(c.UserContext())
	if err != nil {
		return h.unavailable(c, route, err)
	}

	records := snap.Records
	if raw := c.Query("group"); raw != "" {
		groupID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return h.fail(c, route, fiber.StatusBadRequest, "invalid group id")
		}
		records = make([]models.TypeRecord, 0)
		for _, rec := range snap.Records {
			if rec.GroupID == groupID {
				records = append(records, rec)
			}
		}
	}

	h.count(route, fiber.StatusOK)
	return c.JSON(TypeList{Count: len(records), Types: records})
}

// HandleByID returns one type.
// @Summary Get Type
// @Description Returns the type with the given id.
// @Tags types
// @Produce json
// @Param id path integer true "Type ID"
// @Success 200 {object} models.TypeRecord
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 503 {object} map[string]string "Catalog Unavailable"
// @Router /types/{id} [get]
func (h *Handler) HandleByID(c *fiber.Ctx) error {
	const route = "by_id"
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return h.fail(c, route, fiber.StatusBadRequest, "invalid type id")
	}

	snap, err := h.catalog.Snapshot(c.UserContext())
	if err != nil {
		return h.unavailable(c, route, err)
	}

	rec, ok := snap.ByID(id)
	if !ok {
		return h.fail(c, route, fiber.StatusNotFound, "type not found")
	}
	h.count(route, fiber.StatusOK)
	return c.JSON(rec)
}

// HandleByName returns one type by name.
// @Summary Get Type By Name
// @Description Returns the type with the given name. Matching ignores case and surrounding whitespace.
// @Tags types
// @Produce json
// @Param name path string true "Type name"
// @Success 200 {object} models.TypeRecord
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 503 {object} map[string]string "Catalog Unavailable"
// @Router /types/name/{name} [get]
func (h *Handler) HandleByName(c *fiber.Ctx) error {
	const route = "by_name"
	snap, err := h.catalog.Snapshot(c.UserContext())
	if err != nil {
		return h.unavailable(c, route, err)
	}

	rec, ok := snap.ByName(c.Params("name"))
	if !ok {
		return h.fail(c, route, fiber.StatusNotFound, "type not found")
	}
	h.count(route, fiber.StatusOK)
	return c.JSON(rec)
}

func (h *Handler) unavailable(c *fiber.Ctx, route string, err error) error {
	logger.WithRayID(h.logger, c).Error("Catalog unavailable", zap.Error(err))
	return h.fail(c, route, fiber.StatusServiceUnavailable, "catalog unavailable")
}

func (h *Handler) fail(c *fiber.Ctx, route string, status int, msg string) error {
	h.count(route, status)
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

func (h *Handler) count(route string, status int) {
	metrics.CatalogRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
}
