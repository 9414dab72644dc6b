package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Waste es un registro de merma: descuento directo de una materia prima no
// ligado a una venta, con motivo obligatorio. Append-only.
// MaterialName, Unit y UnitCost se desnormalizan al momento del reporte;
// TotalLoss = Quantity * UnitCost.
type Waste struct {
	ID           string
	MaterialID   string
	MaterialName string
	Unit         string
	Quantity     decimal.Decimal
	UnitCost     decimal.Decimal
	TotalLoss    decimal.Decimal
	Reason       string
	ReportedBy   string // nombre del reportante
	ReportedByID string
	Timestamp    time.Time
	Date         string // día calendario local YYYY-MM-DD, para reportes por día
}
