package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Drko99-0/goodcall-crm/internal/application/auth"
	"github.com/Drko99-0/goodcall-crm/internal/application/usecase"
	"github.com/Drko99-0/goodcall-crm/internal/infrastructure/postgres"
	httpRouter "github.com/Drko99-0/goodcall-crm/internal/interfaces/http"
	"github.com/Drko99-0/goodcall-crm/internal/interfaces/ws"
	"github.com/Drko99-0/goodcall-crm/pkg/config"
	"github.com/Drko99-0/goodcall-crm/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.ApplyMigrations(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	// Gateway con la política de soft delete instalada. Todos los repositorios
	// pasan por aquí, nunca por el pool directo.
	db := postgres.NewGateway(pool)

	userRepo := postgres.NewUserRepository(db)
	saleRepo := postgres.NewSaleRepository(db)
	companyRepo := postgres.NewCompanyRepository(db)
	technologyRepo := postgres.NewTechnologyRepository(db)
	saleStatusRepo := postgres.NewSaleStatusRepository(db)
	goalRepo := postgres.NewGoalRepository(db)
	notificationRepo := postgres.NewNotificationRepository(db)

	hub := ws.NewHub(log.Zerolog())

	authUC := auth.NewAuthUseCase(userRepo, auth.Config{
		JWTSecret:        cfg.JWT.Secret,
		AccessTTL:        time.Duration(cfg.JWT.ExpMinutes) * time.Minute,
		RefreshTTL:       time.Duration(cfg.JWT.RefreshDays) * 24 * time.Hour,
		Issuer:           cfg.JWT.Issuer,
		MaxLoginAttempts: cfg.Auth.MaxLoginAttempts,
		TOTPIssuer:       cfg.Auth.TOTPIssuer,
	})
	userUC := usecase.NewUserUseCase(userRepo, hub)
	saleUC := usecase.NewSaleUseCase(saleRepo, userRepo, hub)
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	technologyUC := usecase.NewTechnologyUseCase(technologyRepo)
	saleStatusUC := usecase.NewSaleStatusUseCase(saleStatusRepo)
	goalUC := usecase.NewGoalUseCase(goalRepo, saleRepo, userRepo, hub)
	notificationUC := usecase.NewNotificationUseCase(notificationRepo, hub)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "GoodCall CRM API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	wsHandler := ws.NewHandler(hub, log.Zerolog())
	app.Use("/ws", wsHandler.Upgrade)
	app.Get("/ws", wsHandler.Serve())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		UserUC:         userUC,
		SaleUC:         saleUC,
		CompanyUC:      companyUC,
		TechnologyUC:   technologyUC,
		SaleStatusUC:   saleStatusUC,
		GoalUC:         goalUC,
		NotificationUC: notificationUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
