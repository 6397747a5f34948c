package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC    *usecase.CategoryUseCase
	CategorySubUC *usecase.CategorySubUseCase
	RoleUC        *usecase.RoleUseCase
}

// Router registra las rutas de la API bajo /api/v1.
// Users tiene módulo interno pero sin rutas expuestas por ahora.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	categories := v1.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/", categoryHandler.Delete)

	subCategories := v1.Group("/sub-categories")
	subHandler := NewCategorySubHandler(deps.CategorySubUC)
	subCategories.Get("/", subHandler.List)
	subCategories.Post("/", subHandler.Create)
	subCategories.Get("/:id", subHandler.GetByID)
	subCategories.Put("/:id", subHandler.Update)
	subCategories.Delete("/", subHandler.Delete)

	roles := v1.Group("/roles")
	roleHandler := NewRoleHandler(deps.RoleUC)
	roles.Get("/", roleHandler.List)
	roles.Post("/", roleHandler.Create)
	roles.Get("/:id", roleHandler.GetByID)
	roles.Put("/:id", roleHandler.Update)
	roles.Delete("/", roleHandler.Delete)

	// Cualquier ruta no registrada responde 404 con el envelope estándar.
	app.Use(NotFoundHandler)
}
