// Package pdf implementa la generación del reporte de cumplimiento de
// facturación electrónica de un país.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del país + códigos ISO  │  Fecha del reporte │
//	│  ─────────────────────────────────────────────────────────  │
//	│  B2G: estado / fecha de implementación / formatos / ley     │
//	│  B2B: …                                                     │
//	│  B2C: …                                                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: última actualización de la fuente                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/einvoicing-compliance-api/internal/domain"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// ComplianceReportGenerator genera el PDF de resumen de cumplimiento
// usando Maroto v2.
type ComplianceReportGenerator struct{}

// NewComplianceReportGenerator construye el generador.
func NewComplianceReportGenerator() *ComplianceReportGenerator { return &ComplianceReportGenerator{} }

// GenerateCountryReport genera el PDF y devuelve sus bytes.
func (g *ComplianceReportGenerator) GenerateCountryReport(_ context.Context, country *domain.Country) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Cumplimiento E-Invoicing", true).
		WithAuthor("compliance-atlas", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(country))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	channels := []struct {
		label  string
		status domain.ComplianceStatus
	}{
		{"B2G - Business to Government", country.EInvoicing.B2G},
		{"B2B - Business to Business", country.EInvoicing.B2B},
		{"B2C - Business to Consumer", country.EInvoicing.B2C},
	}
	for _, ch := range channels {
		for _, r := range channelRows(ch.label, ch.status) {
			m.AddRows(r)
		}
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	}

	m.AddRows(footerRow(country))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: país + códigos ISO (izq), fecha del reporte (der).
func headerRow(country *domain.Country) core.Row {
	codes := country.IsoCode3
	if country.IsoCode2 != "" {
		codes = country.IsoCode2 + " / " + country.IsoCode3
	}
	return row.New(18).Add(
		col.New(8).Add(
			text.New(country.Name, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   %s", codes, country.Continent), props.Text{
				Size: 9, Top: 10, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("REPORTE DE CUMPLIMIENTO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(time.Now().Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// channelRows: bloque de un canal (estado, formatos y legislación).
func channelRows(label string, st domain.ComplianceStatus) []core.Row {
	rows := []core.Row{
		row.New(10).Add(
			col.New(8).Add(text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2,
			})),
			col.New(4).Add(text.New(statusLabel(st), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2,
			})),
		),
	}
	if len(st.Formats) > 0 {
		names := make([]string, 0, len(st.Formats))
		for _, f := range st.Formats {
			if f.Version != "" {
				names = append(names, f.Name+" "+f.Version)
			} else {
				names = append(names, f.Name)
			}
		}
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New("Formatos: "+strings.Join(names, ", "), props.Text{
				Size: 8, Color: colorGray, Top: 1,
			}),
		)))
	}
	if st.Legislation.Name != "" {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New("Legislación: "+st.Legislation.Name, props.Text{
				Size: 8, Color: colorGray, Top: 1,
			}),
		)))
	}
	return rows
}

// footerRow: última actualización de la fuente de compliance.
func footerRow(country *domain.Country) core.Row {
	updated := country.EInvoicing.LastUpdated.Format("02/01/2006 15:04 MST")
	return row.New(8).Add(col.New(12).Add(
		text.New("Última actualización de la fuente: "+updated, props.Text{
			Size: 7, Color: colorGray, Align: align.Center, Top: 3,
		}),
	))
}

func statusLabel(st domain.ComplianceStatus) string {
	label := strings.ToUpper(string(st.Status))
	if st.ImplementationDate != nil && *st.ImplementationDate != "" {
		label += "  (desde " + *st.ImplementationDate + ")"
	}
	return label
}
