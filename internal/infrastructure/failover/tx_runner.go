package failover

import (
	"context"

	"github.com/tu-usuario/cafe-pos/internal/application/sales"
	"github.com/tu-usuario/cafe-pos/internal/application/stock"
	"github.com/tu-usuario/cafe-pos/internal/application/waste"
	"github.com/tu-usuario/cafe-pos/internal/domain/repository"
)

// Runner agrupa los tres puertos transaccionales de la aplicación.
type Runner interface {
	stock.TxRunner
	sales.TxRunner
	waste.TxRunner
}

var _ Runner = (*TxRunner)(nil)

// TxRunner enruta transacciones completas: primero el runner de PostgreSQL,
// y si este falla por infraestructura, la transacción entera se re-ejecuta
// sobre el store local. El rollback del primario garantiza que el reintento
// no duplique efectos.
type TxRunner struct {
	primary  Runner
	fallback Runner
	g        *Guard
}

// NewTxRunner construye el runner con failover.
func NewTxRunner(primary, fallback Runner, g *Guard) *TxRunner {
	return &TxRunner{primary: primary, fallback: fallback, g: g}
}

// RunStock enruta una transacción del ledger de stock.
func (r *TxRunner) RunStock(ctx context.Context, fn func(
	materials repository.MaterialRepository,
	movements repository.StockMovementRepository,
) error) error {
	return callErr(r.g, "tx.stock",
		func() error { return r.primary.RunStock(ctx, fn) },
		func() error { return r.fallback.RunStock(ctx, fn) })
}

// RunSale enruta la transacción de venta + descuentos de receta.
func (r *TxRunner) RunSale(ctx context.Context, fn func(
	salesRepo repository.SaleRepository,
	materials repository.MaterialRepository,
	movements repository.StockMovementRepository,
) error) error {
	return callErr(r.g, "tx.sale",
		func() error { return r.primary.RunSale(ctx, fn) },
		func() error { return r.fallback.RunSale(ctx, fn) })
}

// RunWaste enruta la transacción de merma + descuento directo.
func (r *TxRunner) RunWaste(ctx context.Context, fn func(
	wastes repository.WasteRepository,
	materials repository.MaterialRepository,
	movements repository.StockMovementRepository,
) error) error {
	return callErr(r.g, "tx.waste",
		func() error { return r.primary.RunWaste(ctx, fn) },
		func() error { return r.fallback.RunWaste(ctx, fn) })
}
