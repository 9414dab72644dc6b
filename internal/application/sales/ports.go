package sales

import (
	"context"

	"github.com/tu-usuario/cafe-pos/internal/domain/entity"
	"github.com/tu-usuario/cafe-pos/internal/domain/repository"
)

// TxRunner ejecuta el registro de la venta y sus deducciones de stock dentro
// de una misma transacción, pasando repositorios atados a esa transacción.
// En PostgreSQL el efecto financiero y el de inventario quedan atómicos
// (Commit/Rollback); el store local serializa bajo su mutex.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		sales repository.SaleRepository,
		materials repository.MaterialRepository,
		movements repository.StockMovementRepository,
	) error) error
}

// ReceiptGenerator genera el ticket de una venta en PDF.
type ReceiptGenerator interface {
	GenerateReceipt(ctx context.Context, sale *entity.Sale, settings *entity.Settings) ([]byte, error)
}
