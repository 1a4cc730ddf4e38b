package catalog

import (
	"errors"

	"storefront/core/catalog"
	"storefront/core/logger"
	"storefront/core/variant"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for products.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// SelectionRequest is the body of a cart-line request.
// Either field may hold an option id or its display value.
type SelectionRequest struct {
	ColorID any `json:"colorId"`
	SizeID  any `json:"sizeId"`
}

// RegisterRoutes registers the product routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/products")
	group.Get("/:id", h.HandleGetProduct)
	group.Get("/:id/view", h.HandleGetView)
	group.Get("/:id/variant", h.HandleResolveVariant)
	group.Post("/:id/cart-line", h.HandleCartLine)
}

// HandleGetProduct returns the formatted product.
// @Summary Get Product
// @Description Returns the canonical product, with structured and legacy fields side by side.
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} variant.Product "Product"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /products/{id} [get]
func (h *Handler) HandleGetProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	p, err := h.service.GetProduct(c.Context(), id)
	if err != nil {
		return h.fail(c, id, err)
	}
	return c.JSON(p)
}

// HandleGetView returns options, media, defaults and the matching variant for a selection.
// @Summary Get Product View
// @Description Resolves a color/size selection. Absent selectors fall back to the product defaults.
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Param color query string false "Color option id or display value"
// @Param size query string false "Size option id or display value"
// @Success 200 {object} variant.View "View"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /products/{id}/view [get]
func (h *Handler) HandleGetView(c *fiber.Ctx) error {
	id := c.Params("id")
	view, err := h.service.GetView(c.Context(), id, querySelection(c))
	if err != nil {
		return h.fail(c, id, err)
	}
	return c.JSON(view)
}

// HandleResolveVariant returns the variant matching a selection.
// @Summary Resolve Variant
// @Description Returns the first variant matching the color and size, structured ids first, legacy display values second.
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Param color query string false "Color option id or display value"
// @Param size query string false "Size option id or display value"
// @Success 200 {object} variant.Variant "Variant"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /products/{id}/variant [get]
func (h *Handler) HandleResolveVariant(c *fiber.Ctx) error {
	id := c.Params("id")
	v, err := h.service.ResolveVariant(c.Context(), id, querySelection(c))
	if err != nil {
		return h.fail(c, id, err)
	}
	if v == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no variant matches the selection"})
	}
	return c.JSON(v)
}

// HandleCartLine commits a selection into a cart line.
// @Summary Create Cart Line
// @Description Validates a complete selection and returns the resolved variant, price and stock.
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param selection body SelectionRequest true "Selection"
// @Success 200 {object} variant.CartLine "Cart Line"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 409 {object} map[string]string "Variant Unavailable"
// @Failure 422 {object} map[string]string "Selection Incomplete"
// @Router /products/{id}/cart-line [post]
func (h *Handler) HandleCartLine(c *fiber.Ctx) error {
	id := c.Params("id")
	var req SelectionRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
	}

	line, err := h.service.CartLine(c.Context(), id, variant.Selection{
		ColorID: selector(req.ColorID),
		SizeID:  selector(req.SizeID),
	})
	if err != nil {
		return h.fail(c, id, err)
	}
	return c.JSON(line)
}

func (h *Handler) fail(c *fiber.Ctx, id string, err error) error {
	var selErr *variant.SelectionError
	switch {
	case errors.Is(err, catalog.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.As(err, &selErr):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":   err.Error(),
			"missing": selErr.Missing,
		})
	case errors.Is(err, variant.ErrVariantUnavailable):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}

	l := logger.WithProduct(logger.WithRayID(h.service.logger, c), id)
	l.Error("Product request failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

func querySelection(c *fiber.Ctx) variant.Selection {
	return variant.Selection{
		ColorID: selector(c.Query("color")),
		SizeID:  selector(c.Query("size")),
	}
}

// selector maps an empty value to an absent selector.
func selector(v any) variant.Identifier {
	if s, ok := v.(string); ok && s == "" {
		return nil
	}
	return v
}
