package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/jhoicas/einvoicing-compliance-api/internal/application/dto"
	"github.com/jhoicas/einvoicing-compliance-api/internal/application/usecase"
	"github.com/jhoicas/einvoicing-compliance-api/internal/infrastructure/pdf"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CountryUC     *usecase.CountryUseCase
	LinkUC        *usecase.CustomLinkUseCase
	FormatUC      *usecase.CustomFormatUseCase
	LegislationUC *usecase.CustomLegislationUseCase
	Reports       *pdf.ComplianceReportGenerator

	// ExposeErrors incluye el detalle de errores internos en la
	// respuesta; solo fuera de producción.
	ExposeErrors bool

	// RateLimitMax y RateLimitWindow acotan las peticiones por IP
	// sobre /api. Max <= 0 desactiva el límite.
	RateLimitMax    int
	RateLimitWindow time.Duration

	// StaticDir assets del SPA; vacío = no servir estáticos.
	StaticDir string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	if deps.RateLimitMax > 0 {
		api.Use(limiter.New(limiter.Config{
			Max:        deps.RateLimitMax,
			Expiration: deps.RateLimitWindow,
			LimitReached: func(c *fiber.Ctx) error {
				return fail(c, fiber.StatusTooManyRequests, dto.CodeRateLimitExceeded,
					"demasiadas peticiones, intente más tarde", nil)
			},
		}))
	}

	// Países (solo lectura, lista merged recalculada por petición)
	countryHandler := NewCountryHandler(deps.CountryUC, deps.Reports, deps.ExposeErrors)
	countries := api.Group("/countries")
	countries.Get("/", countryHandler.List)
	countries.Get("/:countryId", countryHandler.GetByCode)
	countries.Get("/:countryId/report", countryHandler.Report)

	filters := api.Group("/filters")
	filters.Get("/continents", countryHandler.Continents)

	// Enlaces custom
	linkHandler := NewCustomLinkHandler(deps.LinkUC, deps.ExposeErrors)
	links := api.Group("/custom-links")
	links.Get("/", linkHandler.List)
	links.Post("/", linkHandler.Create)
	links.Put("/:id", linkHandler.Update)
	links.Delete("/:id", linkHandler.Delete)

	// Formatos y legislación custom
	contentHandler := NewCustomContentHandler(deps.FormatUC, deps.LegislationUC, deps.ExposeErrors)
	content := api.Group("/custom-content")
	formats := content.Group("/formats")
	formats.Get("/", contentHandler.ListFormats)
	formats.Post("/", contentHandler.CreateFormat)
	formats.Put("/:id", contentHandler.UpdateFormat)
	formats.Delete("/:id", contentHandler.DeleteFormat)
	legislation := content.Group("/legislation")
	legislation.Get("/", contentHandler.ListLegislation)
	legislation.Post("/", contentHandler.CreateLegislation)
	legislation.Put("/:id", contentHandler.UpdateLegislation)
	legislation.Delete("/:id", contentHandler.DeleteLegislation)

	// Aprobaciones (sin auth por ahora; placeholder del sistema futuro)
	adminHandler := NewAdminHandler(deps.LinkUC, deps.FormatUC, deps.LegislationUC, deps.ExposeErrors)
	admin := api.Group("/admin")
	admin.Get("/pending", adminHandler.Pending)
	admin.Post("/custom-links/:id/approve", adminHandler.ApproveLink)
	admin.Post("/custom-content/formats/:id/approve", adminHandler.ApproveFormat)
	admin.Post("/custom-content/legislation/:id/approve", adminHandler.ApproveLegislation)

	// SPA: los assets se sirven tal cual; el rendering es cosa del cliente.
	if deps.StaticDir != "" {
		app.Static("/", deps.StaticDir)
	}
}
