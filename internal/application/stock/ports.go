package stock

import (
	"context"

	"github.com/tu-usuario/cafe-pos/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción del backend, pasando
// repositorios atados a esa transacción. En PostgreSQL garantiza atomicidad
// de la operación; el store local la aproxima serializando bajo un mutex.
type TxRunner interface {
	RunStock(ctx context.Context, fn func(
		materials repository.MaterialRepository,
		movements repository.StockMovementRepository,
	) error) error
}
