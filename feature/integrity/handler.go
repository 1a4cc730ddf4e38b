package integrity

import (
	"errors"

	"storefront/core/catalog"
	"storefront/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/products", h.HandleProductsCheck)
	group.Get("/products/:id", h.HandleProductCheck)
	group.Get("/structure", h.HandleStructureCheck)
	group.Get("/server", h.HandleServerCheck)
	group.Get("/sources", h.HandleSourcesCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Performs structure, server, product and source checks. This operation may take a long time.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	ctx := c.Context()
	report := make(map[string]interface{})

	if missing, err := h.service.CheckStructure(ctx); err != nil {
		report["structure"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["structure"] = map[string]interface{}{"status": "ok", "missing": missing}
	}

	if srvReport, err := h.service.CheckServer(); err != nil {
		report["server"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["server"] = srvReport
	}

	if prodReport, err := h.service.CheckProducts(ctx); err != nil {
		report["products"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["products"] = prodReport
	}

	if srcReport, err := h.service.CheckSources(ctx); err != nil {
		report["sources"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["sources"] = srcReport
	}

	return c.JSON(report)
}

// HandleProductsCheck audits every product.
// @Summary Audit Products
// @Description Audits every product of the serving source for variant, option, media and price problems.
// @Tags integrity
// @Produce json
// @Success 200 {object} ProductsReport "Products Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/products [get]
func (h *Handler) HandleProductsCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckProducts(c.Context())
	if err != nil {
		l.Error("Product audit failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}

// HandleProductCheck audits one product.
// @Summary Audit Product
// @Description Audits a single product.
// @Tags integrity
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} checks.ProductReport "Product Report"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/products/{id} [get]
func (h *Handler) HandleProductCheck(c *fiber.Ctx) error {
	id := c.Params("id")
	l := logger.WithProduct(logger.WithRayID(h.service.logger, c), id)

	report, err := h.service.CheckProduct(c.Context(), id)
	if errors.Is(err, catalog.ErrProductNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		l.Error("Product audit failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}

// HandleStructureCheck checks and optionally fixes structure.
// @Summary Check Structure
// @Description Checks if the catalog folders exist in the storage bucket. Optionally creates the bucket and missing folders.
// @Tags integrity
// @Accept json
// @Produce json
// @Param fix query boolean false "Fix missing folders"
// @Success 200 {object} map[string]interface{} "Structure Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/structure [get]
func (h *Handler) HandleStructureCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	if c.Query("fix") == "true" {
		l.Info("Attempting to fix catalog structure")
		fixed, err := h.service.FixStructure(c.Context())
		if err != nil {
			l.Error("Structure fix failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "Failed to fix structure",
				"details": err.Error(),
				"missing": fixed,
			})
		}
		return c.JSON(fiber.Map{
			"status": "fixed",
			"fixed":  fixed,
		})
	}

	missing, err := h.service.CheckStructure(c.Context())
	if err != nil {
		l.Error("Structure check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if len(missing) > 0 {
		l.Warn("Missing folders detected", zap.Strings("missing", missing))
	}

	return c.JSON(fiber.Map{
		"status":  "checked",
		"missing": missing,
	})
}

// HandleServerCheck checks server schema integrity.
// @Summary Check Server Schema
// @Description Checks if the products table matches the product record model.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} checks.ServerReport "Server Check Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/server [get]
func (h *Handler) HandleServerCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting server schema check")

	report, err := h.service.CheckServer()
	if err != nil {
		l.Error("Server schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(report)
}

// HandleSourcesCheck reconciles product sources.
// @Summary Check Sources
// @Description Compares product presence and key fields across every configured source.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.SourcesReport "Sources Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/sources [get]
func (h *Handler) HandleSourcesCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckSources(c.Context())
	if err != nil {
		l.Error("Sources check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Sources check completed",
		zap.Int("total", report.Total),
		zap.Int("incomplete", report.Incomplete),
		zap.Int("mismatched", report.Mismatched))
	return c.JSON(report)
}
