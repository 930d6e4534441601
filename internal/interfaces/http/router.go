package http

import (
	"github.com/Drko99-0/goodcall-crm/internal/application/auth"
	"github.com/Drko99-0/goodcall-crm/internal/application/usecase"
	"github.com/Drko99-0/goodcall-crm/internal/domain/entity"
	"github.com/gofiber/fiber/v2"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	UserUC         *usecase.UserUseCase
	SaleUC         *usecase.SaleUseCase
	CompanyUC      *usecase.CompanyUseCase
	TechnologyUC   *usecase.TechnologyUseCase
	SaleStatusUC   *usecase.SaleStatusUseCase
	GoalUC         *usecase.GoalUseCase
	NotificationUC *usecase.NotificationUseCase
	JWTSecret      string
}

// Router registra las rutas de la API. Las operaciones de gestión (altas,
// bajas y objetivos) quedan restringidas a developer y gerencia.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	management := RequireRole(entity.RoleDeveloper, entity.RoleGerencia)

	// Auth (login y refresh públicos; 2FA requiere sesión)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.Refresh)
	authGroup.Post("/2fa/enroll", AuthMiddleware(deps.JWTSecret), authHandler.EnrollTwoFactor)
	authGroup.Post("/2fa/verify", AuthMiddleware(deps.JWTSecret), authHandler.VerifyTwoFactor)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Users (lectura autenticada, escritura solo gestión)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Post("/", management, userHandler.Create)
	users.Patch("/:id", management, userHandler.Update)
	users.Delete("/:id", management, userHandler.Delete)
	users.Post("/:id/restore", management, userHandler.Restore)

	// Sales
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Get("/", saleHandler.List)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Post("/", saleHandler.Create)
	sales.Patch("/:id", saleHandler.Update)
	sales.Delete("/:id", saleHandler.Delete)
	sales.Post("/:id/restore", management, saleHandler.Restore)

	// Companies (operadoras; escritura solo gestión)
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Post("/", management, companyHandler.Create)
	companies.Patch("/:id", management, companyHandler.Update)

	// Catálogos (solo lectura)
	technologies := protected.Group("/technologies")
	technologyHandler := NewTechnologyHandler(deps.TechnologyUC)
	technologies.Get("/", technologyHandler.List)
	technologies.Get("/:id", technologyHandler.GetByID)

	saleStatuses := protected.Group("/sale-statuses")
	saleStatusHandler := NewSaleStatusHandler(deps.SaleStatusUC)
	saleStatuses.Get("/", saleStatusHandler.List)
	saleStatuses.Get("/:id", saleStatusHandler.GetByID)

	// Goals (escritura solo gestión)
	goals := protected.Group("/goals")
	goalHandler := NewGoalHandler(deps.GoalUC)
	goals.Get("/", goalHandler.List)
	goals.Get("/:id", goalHandler.GetByID)
	goals.Post("/", management, goalHandler.Create)
	goals.Patch("/:id", management, goalHandler.Update)

	// Notifications (propias del usuario autenticado)
	notifications := protected.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications.Get("/", notificationHandler.List)
	notifications.Get("/:id", notificationHandler.GetByID)
	notifications.Patch("/:id/read", notificationHandler.MarkRead)
	notifications.Delete("/:id", notificationHandler.Delete)
}
