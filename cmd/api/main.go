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
	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/siac-ventas-api/internal/application/auth"
	"github.com/jhoicas/siac-ventas-api/internal/application/sales"
	"github.com/jhoicas/siac-ventas-api/internal/application/summary"
	"github.com/jhoicas/siac-ventas-api/internal/application/usecase"
	"github.com/jhoicas/siac-ventas-api/internal/domain/catalog"
	"github.com/jhoicas/siac-ventas-api/internal/domain/entity"
	"github.com/jhoicas/siac-ventas-api/internal/domain/repository"
	domainsales "github.com/jhoicas/siac-ventas-api/internal/domain/sales"
	"github.com/jhoicas/siac-ventas-api/internal/infrastructure/memstore"
	"github.com/jhoicas/siac-ventas-api/internal/infrastructure/notification"
	infrapdf "github.com/jhoicas/siac-ventas-api/internal/infrastructure/pdf"
	"github.com/jhoicas/siac-ventas-api/internal/infrastructure/security"
	"github.com/jhoicas/siac-ventas-api/internal/infrastructure/seed"
	httpRouter "github.com/jhoicas/siac-ventas-api/internal/interfaces/http"
	"github.com/jhoicas/siac-ventas-api/internal/jobs"
	"github.com/jhoicas/siac-ventas-api/pkg/config"
	"github.com/jhoicas/siac-ventas-api/pkg/logger"
)

// documentos por venta (folio, 2 identificaciones, domicilio, 2 anexos) más el formulario
const maxFilesPerRequest = 7

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		App:   cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("catálogo de paquetes")
	}

	store, err := memstore.NewStore()
	if err != nil {
		log.Fatal().Err(err).Msg("store en memoria")
	}

	hasher := security.NewBcryptHasher(0)
	userRepo := memstore.NewUserRepository(store, hasher)
	saleRepo := memstore.NewSaleRepository(store)

	userUC := usecase.NewUserUseCase(userRepo, hasher, cfg.Upload.MaxFileSizeBytes(), nil)
	if _, err := userUC.EnsureBootstrapAdmin(cfg.Bootstrap.AdminUsername, cfg.Bootstrap.AdminPassword, cfg.Bootstrap.AdminFullName); err != nil {
		log.Fatal().Err(err).Msg("administrador inicial")
	}
	seedFile, err := seed.Load(cfg.Bootstrap.SeedUsersPath)
	if err != nil {
		log.Fatal().Err(err).Msg("usuarios semilla")
	}
	created, err := userUC.ImportSeed(seedUsers(seedFile))
	if err != nil {
		log.Fatal().Err(err).Msg("usuarios semilla")
	}
	if created > 0 {
		log.Info().Int("usuarios", created).Str("archivo", cfg.Bootstrap.SeedUsersPath).Msg("usuarios semilla cargados")
	}

	policy := entity.AttachmentPolicy{MaxBytes: cfg.Upload.MaxFileSizeBytes(), AllowedTypes: cfg.Upload.AllowedTypes}
	validator := domainsales.NewValidator(cat, policy, nil)
	queryUC := sales.NewQueryUseCase(saleRepo)
	captureUC := sales.NewCaptureUseCase(saleRepo, validator)
	exportUC := sales.NewExportUseCase(queryUC, cat, infrapdf.NewMarotoReceiptGenerator(cfg.App.Name), nil)

	flags := newFlagStore(cfg.Redis, log)
	summaryUC := summary.NewSummaryUseCase(queryUC, cat, flags, nil)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	scheduler, err := jobs.NewScheduler(cfg.Scheduler, jobs.NewJobRunner(summaryUC, log), log)
	if err != nil {
		log.Fatal().Err(err).Msg("scheduler")
	}
	scheduler.Start()

	app := fiber.New(httpRouter.AppConfig(cfg.App.Name, int(cfg.Upload.MaxFileSizeBytes())*maxFilesPerRequest))
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))
	app.Use(httpRouter.Metrics())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.App.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.App.SwaggerFile,
			Path:     "docs",
			Title:    "Portal de Ventas SIAC",
		}))
	} else {
		log.Warn().Str("archivo", cfg.App.SwaggerFile).Msg("documento swagger no encontrado, /docs deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		UserUC:    userUC,
		CaptureUC: captureUC,
		QueryUC:   queryUC,
		ExportUC:  exportUC,
		SummaryUC: summaryUC,
		Catalog:   cat,
		JWTSecret: cfg.JWT.Secret,
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

	scheduler.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// newFlagStore usa Redis si está configurado y responde; si no, memoria local.
func newFlagStore(cfg config.RedisConfig, log *logger.Logger) repository.DailyFlagStore {
	if cfg.Addr == "" {
		return notification.NewMemoryFlagStore(10000, notification.FlagTTL)
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Str("addr", cfg.Addr).Msg("redis no disponible, banderas de resumen en memoria")
		_ = client.Close()
		return notification.NewMemoryFlagStore(10000, notification.FlagTTL)
	}
	log.Info().Str("addr", cfg.Addr).Msg("banderas de resumen en redis")
	return notification.NewRedisFlagStore(client, notification.FlagTTL)
}

func seedUsers(f *seed.File) []usecase.SeedUser {
	out := make([]usecase.SeedUser, 0, len(f.Users))
	for _, u := range f.Users {
		out = append(out, usecase.SeedUser{
			Username:    u.Username,
			Password:    u.Password,
			FullName:    u.FullName,
			Role:        u.Role,
			DateOfBirth: u.DateOfBirth,
			Supervisor:  u.Supervisor,
		})
	}
	return out
}
