// El refresher es una herramienta local acompañante de la API: dispara
// un refresco best-effort de datos en background (POST /refresh-web) y
// expone su avance (GET /progress) leyendo el archivo de estado que el
// proceso de refresco va escribiendo. Escucha en el primer puerto libre
// a partir del configurado.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/einvoicing-compliance-api/internal/domain"
	"github.com/jhoicas/einvoicing-compliance-api/internal/infrastructure/enrichment"
	"github.com/jhoicas/einvoicing-compliance-api/internal/infrastructure/jsonstore"
	"github.com/jhoicas/einvoicing-compliance-api/internal/refresh"
	"github.com/jhoicas/einvoicing-compliance-api/pkg/config"
	"github.com/jhoicas/einvoicing-compliance-api/pkg/logger"
	"github.com/jhoicas/einvoicing-compliance-api/pkg/ports"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	legislationStore, err := jsonstore.NewCollection[domain.CustomLegislation](cfg.Data.CustomLegislationPath())
	if err != nil {
		log.Fatal().Err(err).Msg("colección de legislación custom")
	}

	provider := enrichment.NewHeuristicProvider(15 * time.Second)
	runner := refresh.NewRunner(cfg.Refresher.ProgressFile, provider, legislationStore, log)

	app := fiber.New(fiber.Config{AppName: cfg.App.Name + "-refresher"})
	app.Use(recover.New())

	app.Post("/refresh-web", func(c *fiber.Ctx) error {
		// Fire-and-forget: el contexto de la petición no gobierna el
		// refresco, que sigue corriendo tras responder.
		if err := runner.Start(context.Background()); err != nil {
			if err == domain.ErrRefreshRunning {
				return c.Status(fiber.StatusConflict).JSON(fiber.Map{
					"started": false, "reason": "ya hay un refresco en ejecución",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"started": true})
	})

	app.Get("/progress", func(c *fiber.Ctx) error {
		p, err := runner.Progress()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(p)
	})

	port, err := ports.FindFree(cfg.Refresher.BasePort, cfg.Refresher.PortAttempts)
	if err != nil {
		log.Fatal().Err(err).Msg("sin puerto libre para el refresher")
	}
	log.Info().Int("port", port).Msg("refresher escuchando")

	go func() {
		if err := app.Listen(fmt.Sprintf(":%d", port)); err != nil {
			log.Error().Err(err).Msg("refresher finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(shutdownCtx)
}
