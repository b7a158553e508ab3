package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/siac-ventas-api/internal/application/auth"
	"github.com/jhoicas/siac-ventas-api/internal/application/sales"
	"github.com/jhoicas/siac-ventas-api/internal/application/summary"
	"github.com/jhoicas/siac-ventas-api/internal/application/usecase"
	"github.com/jhoicas/siac-ventas-api/internal/domain/catalog"
	"github.com/jhoicas/siac-ventas-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	UserUC    *usecase.UserUseCase
	CaptureUC *sales.CaptureUseCase
	QueryUC   *sales.QueryUseCase
	ExportUC  *sales.ExportUseCase
	SummaryUC *summary.SummaryUseCase
	Catalog   *catalog.Catalog
	JWTSecret string
}

// AppConfig configuración de Fiber del servicio. Immutable obliga a copiar los
// valores de la petición: los casos de uso guardan esos strings en el store y el
// buffer de fasthttp se reutiliza en la siguiente petición de la conexión.
func AppConfig(name string, bodyLimit int) fiber.Config {
	return fiber.Config{
		AppName:      name,
		BodyLimit:    bodyLimit,
		Immutable:    true,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token y un usuario vigente)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), LoadActor(deps.UserUC))

	admin := string(entity.RoleAdmin)
	managers := []string{admin, string(entity.RoleSupervisor)}

	// Catálogo
	catalogHandler := NewCatalogHandler(deps.Catalog)
	protected.Get("/catalog", catalogHandler.Get)
	protected.Get("/catalog/packages", catalogHandler.Packages)

	// Ventas (visibilidad por rol en los casos de uso)
	saleHandler := NewSaleHandler(deps.CaptureUC, deps.QueryUC, deps.ExportUC, deps.Catalog)
	salesGroup := protected.Group("/sales")
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/export.csv", saleHandler.ExportCSV)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Patch("/:id/status", saleHandler.UpdateStatus)
	salesGroup.Get("/:id/documents/:slot", saleHandler.Document)
	salesGroup.Get("/:id/bundle.zip", saleHandler.Bundle)
	salesGroup.Get("/:id/receipt.pdf", saleHandler.Receipt)

	// Usuarios y equipo
	userHandler := NewUserHandler(deps.UserUC)
	protected.Get("/team", userHandler.Team)
	users := protected.Group("/users")
	users.Get("/", RequireRole(admin), userHandler.List)
	users.Post("/", RequireRole(managers...), userHandler.Create)
	users.Get("/export.csv", userHandler.ExportCSV)
	users.Delete("/:id", RequireRole(managers...), userHandler.Delete)
	users.Put("/:id/profile-picture", userHandler.SetProfilePicture)
	users.Get("/:id/profile-picture", userHandler.ProfilePicture)

	// Resumen de fin de día
	summaryHandler := NewSummaryHandler(deps.SummaryUC)
	protected.Get("/summary/daily", summaryHandler.Daily)
	protected.Post("/summary/daily/ack", summaryHandler.Acknowledge)
}
