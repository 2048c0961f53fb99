package handler

import (
	"smart-sales-api/internal/model"
	"smart-sales-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	*ResourceHandler[service.ProductInput, model.ProductResponse]
	products service.ProductService
}

func NewProductHandler(s service.ProductService) *ProductHandler {
	return &ProductHandler{
		ResourceHandler: NewResourceHandler[service.ProductInput, model.ProductResponse](s),
		products:        s,
	}
}

// Register mounts low_stock ahead of the /:id routes.
func (h *ProductHandler) Register(router fiber.Router) {
	router.Get("/low_stock", h.LowStock)
	h.ResourceHandler.Register(router)
}

// LowStock returns products at or below their reorder level
// GET /api/products/low_stock
func (h *ProductHandler) LowStock(c *fiber.Ctx) error {
	products, err := h.products.LowStock(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(products)
}
