package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/einvoicing-compliance-api/internal/application/usecase"
	"github.com/jhoicas/einvoicing-compliance-api/internal/domain"
	"github.com/jhoicas/einvoicing-compliance-api/internal/infrastructure/jsonstore"
	infrapdf "github.com/jhoicas/einvoicing-compliance-api/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/einvoicing-compliance-api/internal/interfaces/http"
	"github.com/jhoicas/einvoicing-compliance-api/pkg/config"
	"github.com/jhoicas/einvoicing-compliance-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Fuentes base: la carga inicial es estricta, el servidor no arranca
	// con datos corruptos.
	dataset, err := jsonstore.NewDataset(cfg.Data.CountriesPath(), cfg.Data.CompliancePath(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("carga de datos base")
	}
	if err := dataset.Watch(); err != nil {
		log.Warn().Err(err).Msg("watcher de datos base no disponible, sin recarga en caliente")
	}
	defer dataset.Close()

	linkStore, err := jsonstore.NewCollection[domain.CustomLink](cfg.Data.CustomLinksPath())
	if err != nil {
		log.Fatal().Err(err).Msg("colección de enlaces custom")
	}
	formatStore, err := jsonstore.NewCollection[domain.CustomFormat](cfg.Data.CustomFormatsPath())
	if err != nil {
		log.Fatal().Err(err).Msg("colección de formatos custom")
	}
	legislationStore, err := jsonstore.NewCollection[domain.CustomLegislation](cfg.Data.CustomLegislationPath())
	if err != nil {
		log.Fatal().Err(err).Msg("colección de legislación custom")
	}

	countryUC := usecase.NewCountryUseCase(dataset)
	linkUC := usecase.NewCustomLinkUseCase(linkStore, countryUC, log)
	formatUC := usecase.NewCustomFormatUseCase(formatStore, countryUC, log)
	legislationUC := usecase.NewCustomLegislationUseCase(legislationStore, countryUC, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Compliance Atlas API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CountryUC:       countryUC,
		LinkUC:          linkUC,
		FormatUC:        formatUC,
		LegislationUC:   legislationUC,
		Reports:         infrapdf.NewComplianceReportGenerator(),
		ExposeErrors:    cfg.App.Env != "production",
		RateLimitMax:    cfg.RateLimit.Max,
		RateLimitWindow: time.Duration(cfg.RateLimit.WindowSeconds) * time.Second,
		StaticDir:       cfg.Data.StaticDir,
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
