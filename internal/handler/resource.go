package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ResourceService is the CRUD surface shared by the plain resources.
// Input returns the editable state of a record so PATCH can merge over it.
type ResourceService[In any, Out any] interface {
	List(ctx context.Context) ([]Out, error)
	Get(ctx context.Context, id uuid.UUID) (*Out, error)
	Input(ctx context.Context, id uuid.UUID) (*In, error)
	Create(ctx context.Context, in *In) (*Out, error)
	Update(ctx context.Context, id uuid.UUID, in *In) (*Out, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ResourceHandler[In any, Out any] struct {
	service ResourceService[In, Out]
}

func NewResourceHandler[In any, Out any](s ResourceService[In, Out]) *ResourceHandler[In, Out] {
	return &ResourceHandler[In, Out]{service: s}
}

// Register mounts list/retrieve/create/update/delete on router.
func (h *ResourceHandler[In, Out]) Register(router fiber.Router) {
	router.Get("/", h.List)
	router.Post("/", h.Create)
	router.Get("/:id", h.Get)
	router.Put("/:id", h.Replace)
	router.Patch("/:id", h.Patch)
	router.Delete("/:id", h.Delete)
}

// GET /
func (h *ResourceHandler[In, Out]) List(c *fiber.Ctx) error {
	items, err := h.service.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

// GET /:id
func (h *ResourceHandler[In, Out]) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	item, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

// POST /
func (h *ResourceHandler[In, Out]) Create(c *fiber.Ctx) error {
	in := new(In)
	if err := c.BodyParser(in); err != nil {
		return respondError(c, invalidJSON())
	}
	item, err := h.service.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// PUT /:id replaces every field; omitted fields take their defaults.
func (h *ResourceHandler[In, Out]) Replace(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	in := new(In)
	if err := c.BodyParser(in); err != nil {
		return respondError(c, invalidJSON())
	}
	item, err := h.service.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

// PATCH /:id decodes the body over the current record.
func (h *ResourceHandler[In, Out]) Patch(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	in, err := h.service.Input(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	if err := c.BodyParser(in); err != nil {
		return respondError(c, invalidJSON())
	}
	item, err := h.service.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

// DELETE /:id
func (h *ResourceHandler[In, Out]) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
