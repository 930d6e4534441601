package main

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Drko99-0/goodcall-crm/internal/application/auth"
	"github.com/Drko99-0/goodcall-crm/internal/domain/entity"
	"github.com/Drko99-0/goodcall-crm/internal/infrastructure/postgres"
	"github.com/Drko99-0/goodcall-crm/pkg/config"
	"github.com/Drko99-0/goodcall-crm/pkg/logger"
)

// Carga los datos maestros iniciales: usuario developer, operadoras,
// tecnologías y estados de venta. Es idempotente: lo que ya existe se salta.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Service: cfg.App.Name, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.ApplyMigrations(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	db := postgres.NewGateway(pool)
	now := time.Now()

	userRepo := postgres.NewUserRepository(db)
	if existing, err := userRepo.GetByUsername("drko"); err != nil {
		log.Fatal().Err(err).Msg("consultar usuario inicial")
	} else if existing == nil {
		hash, err := auth.HashPassword("ChangeMe123!")
		if err != nil {
			log.Fatal().Err(err).Msg("hashear password inicial")
		}
		u := &entity.User{
			ID:                 uuid.NewString(),
			Username:           "drko",
			Email:              "drko@goodcall.com",
			PasswordHash:       hash,
			FirstName:          "Drko",
			LastName:           "Admin",
			Role:               entity.RoleDeveloper,
			IsActive:           true,
			MustChangePassword: true,
			CreatedAt:          now,
			UpdatedAt:          now,
		}
		if err := userRepo.Create(u); err != nil {
			log.Fatal().Err(err).Msg("crear usuario inicial")
		}
		log.Info().Str("username", u.Username).Msg("usuario developer creado")
	}

	companyRepo := postgres.NewCompanyRepository(db)
	companies := []struct {
		name, code string
	}{
		{"Movistar", "MOV"},
		{"Vodafone", "VOD"},
		{"Orange", "ORG"},
		{"MasMovil", "MAS"},
	}
	for i, c := range companies {
		existing, err := companyRepo.GetByName(c.name)
		if err != nil {
			log.Fatal().Err(err).Msg("consultar operadora")
		}
		if existing != nil {
			continue
		}
		err = companyRepo.Create(&entity.Company{
			ID: uuid.NewString(), Name: c.name, Code: c.code,
			IsActive: true, DisplayOrder: i + 1,
			CreatedAt: now, UpdatedAt: now,
		})
		if err != nil {
			log.Fatal().Err(err).Str("name", c.name).Msg("crear operadora")
		}
		log.Info().Str("name", c.name).Msg("operadora creada")
	}

	technologyRepo := postgres.NewTechnologyRepository(db)
	technologies := []struct {
		name, code string
	}{
		{"Fibra", "FIBRA"},
		{"Móvil", "MOVIL"},
		{"Fibra + Móvil", "FIBRA_MOVIL"},
		{"TV", "TV"},
	}
	for i, tech := range technologies {
		existing, err := technologyRepo.GetByName(tech.name)
		if err != nil {
			log.Fatal().Err(err).Msg("consultar tecnología")
		}
		if existing != nil {
			continue
		}
		err = technologyRepo.Create(&entity.Technology{
			ID: uuid.NewString(), Name: tech.name, Code: tech.code,
			IsActive: true, DisplayOrder: i + 1,
			CreatedAt: now, UpdatedAt: now,
		})
		if err != nil {
			log.Fatal().Err(err).Str("name", tech.name).Msg("crear tecnología")
		}
		log.Info().Str("name", tech.name).Msg("tecnología creada")
	}

	statusRepo := postgres.NewSaleStatusRepository(db)
	statuses := []struct {
		name, code, color string
		isFinal           bool
	}{
		{"Pendiente", "PENDIENTE", "#FFA500", false},
		{"Firmado", "FIRMADO", "#008000", false},
		{"Instalado", "INSTALADO", "#0000FF", true},
		{"Cancelado", "CANCELADO", "#FF0000", true},
	}
	for i, s := range statuses {
		existing, err := statusRepo.GetByName(s.name)
		if err != nil {
			log.Fatal().Err(err).Msg("consultar estado de venta")
		}
		if existing != nil {
			continue
		}
		err = statusRepo.Create(&entity.SaleStatus{
			ID: uuid.NewString(), Name: s.name, Code: s.code, Color: s.color,
			IsActiveStatus: true, IsFinal: s.isFinal, DisplayOrder: i + 1,
			CreatedAt: now, UpdatedAt: now,
		})
		if err != nil {
			log.Fatal().Err(err).Str("name", s.name).Msg("crear estado de venta")
		}
		log.Info().Str("name", s.name).Msg("estado de venta creado")
	}

	log.Info().Msg("seed completado")
}
