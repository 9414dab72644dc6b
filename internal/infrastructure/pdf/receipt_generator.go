// Package pdf genera el ticket de venta en PDF con formato de impresora
// térmica de 80mm.
//
// Layout del ticket:
//
//	┌──────────────────────────────┐
//	│   NOMBRE DE LA TIENDA        │
//	│   Ticket + fecha + cajero    │
//	│  ──────────────────────────  │
//	│  Cant | Producto | Importe   │
//	│  ──────────────────────────  │
//	│  TOTAL            $ 12.500   │
//	│  Pago: efectivo              │
//	│  Mensaje de despedida        │
//	└──────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	appsales "github.com/tu-usuario/cafe-pos/internal/application/sales"
	"github.com/tu-usuario/cafe-pos/internal/domain/entity"
)

var (
	colorInk  = &props.Color{Red: 30, Green: 30, Blue: 30}
	colorGray = &props.Color{Red: 110, Green: 110, Blue: 110}
)

var _ appsales.ReceiptGenerator = (*ReceiptGenerator)(nil)

// ReceiptGenerator implementa sales.ReceiptGenerator usando Maroto v2.
type ReceiptGenerator struct {
	printer *message.Printer
}

// NewReceiptGenerator construye el generador. Los importes se formatean con
// separador de miles según convención es-MX.
func NewReceiptGenerator() *ReceiptGenerator {
	return &ReceiptGenerator{printer: message.NewPrinter(language.Spanish)}
}

// GenerateReceipt genera el ticket PDF y devuelve sus bytes.
func (g *ReceiptGenerator) GenerateReceipt(
	_ context.Context,
	sale *entity.Sale,
	settings *entity.Settings,
) ([]byte, error) {
	if settings == nil {
		settings = entity.DefaultSettings()
	}

	// 80mm de ancho; el alto crece con las líneas del carrito.
	height := 90.0 + float64(len(sale.Items))*6
	cfg := config.NewBuilder().
		WithDimensions(80, height).
		WithLeftMargin(4).WithRightMargin(4).
		WithTopMargin(4).WithBottomMargin(4).
		WithDefaultFont(&props.Font{Family: "courier", Size: 8}).
		WithTitle("Ticket "+sale.ID, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRows(sale, settings)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(g.itemRows(sale, settings.Currency)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(g.footerRows(sale, settings)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar ticket: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *ReceiptGenerator) headerRows(sale *entity.Sale, settings *entity.Settings) []core.Row {
	return []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New(settings.StoreName, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Center, Color: colorInk, Top: 1,
			}),
		)),
		row.New(10).Add(col.New(12).Add(
			text.New("Ticket: "+sale.ID, props.Text{Size: 7, Align: align.Center, Color: colorGray}),
			text.New(sale.Timestamp.Format("02/01/2006 15:04"), props.Text{
				Size: 7, Align: align.Center, Color: colorGray, Top: 4,
			}),
			text.New("Atiende: "+sale.CashierName, props.Text{
				Size: 7, Align: align.Center, Color: colorGray, Top: 8,
			}),
		)),
	}
}

func (g *ReceiptGenerator) itemRows(sale *entity.Sale, currency string) []core.Row {
	rows := []core.Row{
		row.New(5).Add(
			col.New(2).Add(text.New("Cant", props.Text{Style: fontstyle.Bold, Size: 7})),
			col.New(6).Add(text.New("Producto", props.Text{Style: fontstyle.Bold, Size: 7})),
			col.New(4).Add(text.New("Importe", props.Text{Style: fontstyle.Bold, Size: 7, Align: align.Right})),
		),
	}
	for _, item := range sale.Items {
		rows = append(rows, row.New(5).Add(
			col.New(2).Add(text.New(item.Quantity.StringFixed(0), props.Text{Size: 7})),
			col.New(6).Add(text.New(item.ProductName, props.Text{Size: 7})),
			col.New(4).Add(text.New(g.money(currency, item.TotalPrice), props.Text{
				Size: 7, Align: align.Right,
			})),
		))
	}
	return rows
}

func (g *ReceiptGenerator) footerRows(sale *entity.Sale, settings *entity.Settings) []core.Row {
	payment := "Efectivo"
	if sale.PaymentMethod == entity.PaymentCard {
		payment = "Tarjeta"
	}
	return []core.Row{
		row.New(7).Add(
			col.New(6).Add(text.New("TOTAL", props.Text{
				Style: fontstyle.Bold, Size: 10, Color: colorInk, Top: 1,
			})),
			col.New(6).Add(text.New(g.money(settings.Currency, sale.Subtotal), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorInk, Top: 1,
			})),
		),
		row.New(5).Add(col.New(12).Add(
			text.New("Pago: "+payment, props.Text{Size: 7, Color: colorGray}),
		)),
		row.New(8).Add(col.New(12).Add(
			text.New(settings.ReceiptMessage, props.Text{
				Size: 8, Align: align.Center, Color: colorInk, Top: 2,
			}),
		)),
	}
}

// money formatea el importe con separador de miles según locale: "$ 12.500".
func (g *ReceiptGenerator) money(currency string, amount decimal.Decimal) string {
	if amount.IsInteger() {
		return g.printer.Sprintf("%s %d", currency, amount.IntPart())
	}
	return g.printer.Sprintf("%s %.2f", currency, amount.InexactFloat64())
}
