package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
)

// RoleHandler maneja las peticiones HTTP para Role.
type RoleHandler struct {
	uc *usecase.RoleUseCase
}

// NewRoleHandler construye el handler.
func NewRoleHandler(uc *usecase.RoleUseCase) *RoleHandler {
	return &RoleHandler{uc: uc}
}

// List GET /api/v1/roles
func (h *RoleHandler) List(c *fiber.Ctx) error {
	var in dto.ListRolesRequest
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

// Create POST /api/v1/roles
func (h *RoleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRoleRequest
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

// GetByID GET /api/v1/roles/:id
func (h *RoleHandler) GetByID(c *fiber.Ctx) error {
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

// Update PUT /api/v1/roles/:id
func (h *RoleHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return badRequest(c, map[string][]string{"id": {"Invalid uuid"}})
	}
	var in dto.UpdateRoleRequest
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

// Delete DELETE /api/v1/roles
// Un rol referenciado por usuarios lo protege la FK (restrict).
func (h *RoleHandler) Delete(c *fiber.Ctx) error {
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
