package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
)

// CategoryHandler maneja las peticiones HTTP para Category.
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// List GET /api/v1/categories
// Query: search, page, page_size, order, dir, is_active.
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	var in dto.ListCategoriesRequest
	if err := c.QueryParser(&in); err != nil {
		return badRequest(c, map[string][]string{"query": {"Invalid query string"}})
	}
	if fields := validateStruct(in); fields != nil {
		return badRequest(c, fields)
	}
	out, err := h.uc.List(in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Create POST /api/v1/categories
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, map[string][]string{"body": {"Invalid JSON body"}})
	}
	if fields := validateStruct(in); fields != nil {
		return badRequest(c, fields)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Success", Data: out})
}

// GetByID GET /api/v1/categories/:id
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return badRequest(c, map[string][]string{"id": {"Invalid uuid"}})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Ok", Data: out})
}

// Update PUT /api/v1/categories/:id
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return badRequest(c, map[string][]string{"id": {"Invalid uuid"}})
	}
	var in dto.UpdateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, map[string][]string{"body": {"Invalid JSON body"}})
	}
	if fields := validateStruct(in); fields != nil {
		return badRequest(c, fields)
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Success", Data: out})
}

// Delete DELETE /api/v1/categories
// Body: array JSON de ids. Si alguno no existe, 422 y no se borra nada.
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	var ids []string
	if err := c.BodyParser(&ids); err != nil {
		return badRequest(c, map[string][]string{"body": {"Invalid JSON body"}})
	}
	if fields := validateUUIDList(ids); fields != nil {
		return badRequest(c, fields)
	}
	deleted, err := h.uc.Delete(c.Context(), ids)
	if err != nil {
		return err
	}
	if deleted == nil {
		deleted = []string{}
	}
	return c.JSON(dto.MessageResponse{Message: "Success", Data: deleted})
}
