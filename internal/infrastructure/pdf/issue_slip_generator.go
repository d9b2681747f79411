// Package pdf implementa la representación gráfica del vale de salida de
// materiales que acompaña cada emisión hacia planta.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Bodega origen  │  N° Vale + Fecha                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CONTEXTO: Orden de fabricación / Estado / Emitido por      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Producto | Lote | Cantidad | UM               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TRAZABILIDAD: QR con el grupo del libro + leyenda          │
//	│  FIRMAS: Entregado por / Recibido por                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/jhoicas/Produccion-api/internal/application/allocation"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoSlipGenerator implementa allocation.SlipPDFGenerator usando Maroto v2.
type MarotoSlipGenerator struct{}

// NewMarotoSlipGenerator construye el generador.
func NewMarotoSlipGenerator() *MarotoSlipGenerator { return &MarotoSlipGenerator{} }

// GenerateIssueSlip genera el PDF del vale y devuelve sus bytes.
func (g *MarotoSlipGenerator) GenerateIssueSlip(_ context.Context, data allocation.IssueSlipData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Vale de salida "+data.IssueNo, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(contextRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(data.Lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(summaryRow(data))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range traceFooterRows(data) {
		m.AddRows(r)
	}
	m.AddRows(signatureRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: bodega origen (izq) y N° de vale + fecha (der).
func headerRow(data allocation.IssueSlipData) core.Row {
	fecha := data.CreatedAt.Format("02/01/2006 15:04")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(data.WarehouseName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Bodega: "+data.WarehouseCode, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("VALE DE SALIDA DE MATERIALES", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(data.IssueNo, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// contextRow: orden de fabricación asociada, estado y emisor.
func contextRow(data allocation.IssueSlipData) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("DATOS DE LA EMISIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Orden: %s   |   Estado: %s   |   Emitido por: %s",
				nonEmpty(data.OrderNo, "emisión suelta"),
				statusLabel(data.Status),
				nonEmpty(data.CreatedBy, "—"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas de consumo.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("SKU", 2, align.Left),
		h("Producto", 5, align.Left),
		h("Lote", 2, align.Left),
		h("Cantidad", 2, align.Right),
		h("UM", 1, align.Center),
	)
}

// tableDetailRows: una fila por lote consumido, en el orden de asignación.
func tableDetailRows(lines []allocation.IssueSlipLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				l.SKU,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(5).Add(text.New(
				l.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				l.BatchNo,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				l.Quantity.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				l.UOM,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
		))
	}
	return result
}

// summaryRow: total de líneas y observaciones.
func summaryRow(data allocation.IssueSlipData) core.Row {
	return row.New(10).Add(
		col.New(8).Add(
			text.New("Observaciones: "+nonEmpty(data.Notes, "—"), props.Text{
				Size: 8, Top: 2, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New(fmt.Sprintf("Líneas: %d", len(data.Lines)), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2, Right: 1,
			}),
		),
	)
}

// traceFooterRows: QR con vale|orden|grupo para escaneo en planta, más el
// identificador de grupo en texto.
func traceFooterRows(data allocation.IssueSlipData) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("TRAZABILIDAD", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
	}

	if data.GroupID != "" {
		qrPayload := data.IssueNo + "|" + data.OrderNo + "|" + data.GroupID
		rows = append(rows, row.New(34).Add(
			col.New(3).Add(code.NewQr(qrPayload, props.Rect{
				Percent: 95,
				Center:  true,
			})),
			col.New(9).Add(
				text.New("Escanea el código para consultar en el libro de inventario\ntodos los movimientos de esta emisión.", props.Text{
					Size: 8, Top: 4, Left: 3, Color: colorGray,
				}),
				text.New("Grupo: "+data.GroupID, props.Text{
					Size: 7, Top: 16, Left: 3, Color: colorGray,
				}),
			),
		))
	}

	rows = append(rows, row.New(6).Add(col.New(12).Add(
		text.New(
			"Los consumos de este vale son definitivos: cada línea descuenta el lote indicado "+
				"y queda asentada de forma inmutable en el libro de inventario.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	)))

	return rows
}

// signatureRow: espacios de firma para entrega y recepción en planta.
func signatureRow() core.Row {
	sig := func(label string) core.Col {
		return col.New(6).Add(
			text.New("_______________________________", props.Text{
				Size: 9, Align: align.Center, Top: 12, Color: colorGray,
			}),
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 18,
			}),
		)
	}
	return row.New(24).Add(
		sig("Entregado por"),
		sig("Recibido por"),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// statusLabel traduce el estado del documento para impresión.
func statusLabel(status string) string {
	switch status {
	case entity.IssueStatusConfirmed:
		return "CONFIRMADO"
	case entity.IssueStatusCancelled:
		return "ANULADO"
	}
	return status
}
