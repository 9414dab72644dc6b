package localstore

import (
	"context"

	"github.com/tu-usuario/cafe-pos/internal/application/sales"
	"github.com/tu-usuario/cafe-pos/internal/application/stock"
	"github.com/tu-usuario/cafe-pos/internal/application/waste"
	"github.com/tu-usuario/cafe-pos/internal/domain/repository"
)

var _ stock.TxRunner = (*TxRunner)(nil)
var _ sales.TxRunner = (*TxRunner)(nil)
var _ waste.TxRunner = (*TxRunner)(nil)

// TxRunner emula transacciones sobre el store local: captura las colecciones
// afectadas antes de ejecutar el callback y las restaura si este falla. No hay
// concurrencia multi-proceso que proteger; alcanza con deshacer el archivo.
type TxRunner struct {
	store *Store
}

// NewTxRunner construye el runner con el store.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{store: s}
}

func (r *TxRunner) run(cols []string, fn func() error) error {
	snap, err := r.store.backup(cols...)
	if err != nil {
		return err
	}
	if err := fn(); err != nil {
		if rerr := r.store.restore(snap); rerr != nil {
			return rerr
		}
		return err
	}
	return nil
}

// RunStock ejecuta fn con repos de stock; revierte materiales y movimientos si falla.
func (r *TxRunner) RunStock(ctx context.Context, fn func(
	materials repository.MaterialRepository,
	movements repository.StockMovementRepository,
) error) error {
	return r.run([]string{colMaterials, colMovements}, func() error {
		return fn(NewMaterialRepository(r.store), NewStockMovementRepository(r.store))
	})
}

// RunSale ejecuta fn con repos de venta; revierte venta y descuentos si falla.
func (r *TxRunner) RunSale(ctx context.Context, fn func(
	salesRepo repository.SaleRepository,
	materials repository.MaterialRepository,
	movements repository.StockMovementRepository,
) error) error {
	return r.run([]string{colSales, colMaterials, colMovements}, func() error {
		return fn(NewSaleRepository(r.store), NewMaterialRepository(r.store), NewStockMovementRepository(r.store))
	})
}

// RunWaste ejecuta fn con repos de merma; revierte merma y descuento si falla.
func (r *TxRunner) RunWaste(ctx context.Context, fn func(
	wastes repository.WasteRepository,
	materials repository.MaterialRepository,
	movements repository.StockMovementRepository,
) error) error {
	return r.run([]string{colWastes, colMaterials, colMovements}, func() error {
		return fn(NewWasteRepository(r.store), NewMaterialRepository(r.store), NewStockMovementRepository(r.store))
	})
}
