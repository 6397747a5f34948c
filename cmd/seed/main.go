// seed puebla el catálogo con datos iniciales: roles, categorías,
// subcategorías y un usuario administrador.
//
// Uso: go run ./cmd/seed [--truncate]
// Con --truncate vacía primero las tablas (hijos antes que padres).
package main

import (
	"context"
	"errors"
	"math/rand"
	"os"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Catalogo-api/pkg/config"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

func boolPtr(b bool) *bool { return &b }

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if len(os.Args) > 1 && os.Args[1] == "--truncate" {
		log.Info().Msg("vaciando tablas...")
		// Hijos antes que padres por las FKs restrict.
		for _, table := range []string{"users", "category_subs", "roles", "categories"} {
			if _, err := pool.Exec(ctx, "DELETE FROM "+table); err != nil {
				log.Fatal().Err(err).Str("table", table).Msg("truncate")
			}
		}
	}

	categoryRepo := postgres.NewCategoryRepository(pool)
	subRepo := postgres.NewCategorySubRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	categoryUC := usecase.NewCategoryUseCase(categoryRepo, txRunner, cfg.App.PageSize)
	subUC := usecase.NewCategorySubUseCase(subRepo, txRunner, cfg.App.PageSize)
	roleUC := usecase.NewRoleUseCase(roleRepo, txRunner, cfg.App.PageSize)
	userUC := usecase.NewUserUseCase(userRepo, txRunner, cfg.App.PageSize)

	log.Info().Msg("sembrando roles...")
	roles := []dto.CreateRoleRequest{
		{Code: "dev", Name: "Developer", DefPath: "/"},
		{Code: "admin", Name: "Administrator", DefPath: "/admin"},
		{Code: "user", Name: "Regular User", DefPath: "/home"},
	}
	var adminRoleID string
	for _, in := range roles {
		out, err := roleUC.Create(ctx, in)
		if err != nil {
			if isConflict(err) {
				log.Warn().Str("code", in.Code).Msg("rol ya existe, se omite")
				continue
			}
			log.Fatal().Err(err).Str("code", in.Code).Msg("sembrar rol")
		}
		if in.Code == "admin" {
			adminRoleID = out.ID
		}
	}

	log.Info().Msg("sembrando categorías...")
	categories := []dto.CreateCategoryRequest{
		{Code: "TOY", Name: "Toys", IsActive: boolPtr(true)},
		{Code: "PLSC", Name: "Plastic", IsActive: boolPtr(true)},
		{Code: "COMP", Name: "Computer", IsActive: boolPtr(true)},
	}
	var categoryIDs []string
	for _, in := range categories {
		out, err := categoryUC.Create(ctx, in)
		if err != nil {
			if isConflict(err) {
				log.Warn().Str("code", in.Code).Msg("categoría ya existe, se omite")
				continue
			}
			log.Fatal().Err(err).Str("code", in.Code).Msg("sembrar categoría")
		}
		categoryIDs = append(categoryIDs, out.ID)
	}

	if len(categoryIDs) > 0 {
		log.Info().Msg("sembrando subcategorías...")
		subs := []struct{ code, name string }{
			{"SUBCAT001", "Drinking Water 600ml"},
			{"SUBCAT002", "Office Paper"},
			{"SUBCAT003", "Sparepart"},
		}
		for _, s := range subs {
			in := dto.CreateCategorySubRequest{
				Category: categoryIDs[rand.Intn(len(categoryIDs))],
				Code:     s.code,
				Name:     s.name,
				IsActive: boolPtr(true),
			}
			if _, err := subUC.Create(ctx, in); err != nil {
				if isConflict(err) {
					log.Warn().Str("code", s.code).Msg("subcategoría ya existe, se omite")
					continue
				}
				log.Fatal().Err(err).Str("code", s.code).Msg("sembrar subcategoría")
			}
		}
	}

	if adminRoleID != "" {
		log.Info().Msg("sembrando usuario administrador...")
		_, err := userUC.Create(ctx, dto.CreateUserRequest{
			Email:    "admin@example.com",
			Password: "changeme123",
			Name:     "Admin",
			IsActive: boolPtr(true),
			RoleID:   adminRoleID,
		})
		if err != nil && !isConflict(err) {
			log.Fatal().Err(err).Msg("sembrar usuario")
		}
	}

	log.Info().Msg("seeding completado")
}

func isConflict(err error) bool {
	var cErr domain.ConflictError
	return errors.As(err, &cErr)
}
