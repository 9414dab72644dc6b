// Package waste implementa el poster de mermas: valida el reporte, lo agrega
// al libro append-only y descuenta la materia prima directamente (sin receta
// de por medio: la merma referencia al material, no a un producto).
package waste

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/cafe-pos/internal/application/dto"
	"github.com/tu-usuario/cafe-pos/internal/domain"
	"github.com/tu-usuario/cafe-pos/internal/domain/entity"
	"github.com/tu-usuario/cafe-pos/internal/domain/repository"
	"github.com/tu-usuario/cafe-pos/pkg/logger"
)

// TxRunner transacción para el registro de merma más su deducción.
type TxRunner interface {
	RunWaste(ctx context.Context, fn func(
		wastes repository.WasteRepository,
		materials repository.MaterialRepository,
		movements repository.StockMovementRepository,
	) error) error
}

// UseCase registra mermas y lista el libro.
type UseCase struct {
	txRunner TxRunner
	wastes   repository.WasteRepository
	log      *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner TxRunner, wastes repository.WasteRepository, log *logger.Logger) *UseCase {
	return &UseCase{txRunner: txRunner, wastes: wastes, log: log.Component("waste")}
}

// PostWaste valida (cantidad positiva, motivo obligatorio, material existente:
// aquí el id viene directo del usuario, así que un id inexistente es ErrNotFound
// y no un no-op), desnormaliza nombre/unidad/costo, calcula la pérdida y dentro
// de una transacción agrega el registro y descuenta el stock (sin piso en cero).
func (uc *UseCase) PostWaste(ctx context.Context, in dto.CreateWasteRequest, reporterID, reporterName string) (*dto.WasteResponse, error) {
	if !in.Quantity.IsPositive() || strings.TrimSpace(in.Reason) == "" || in.MaterialID == "" {
		return nil, domain.ErrInvalidInput
	}

	var created *entity.Waste
	err := uc.txRunner.RunWaste(ctx, func(
		wastes repository.WasteRepository,
		materials repository.MaterialRepository,
		movements repository.StockMovementRepository,
	) error {
		m, err := materials.GetForUpdate(in.MaterialID)
		if err != nil {
			return err
		}
		if m == nil {
			return domain.ErrNotFound
		}

		now := time.Now()
		w := &entity.Waste{
			ID:           domain.NewID(domain.PrefixWaste),
			MaterialID:   m.ID,
			MaterialName: m.Name,
			Unit:         m.Unit,
			Quantity:     in.Quantity,
			UnitCost:     m.UnitCost,
			TotalLoss:    in.Quantity.Mul(m.UnitCost),
			Reason:       strings.TrimSpace(in.Reason),
			ReportedBy:   reporterName,
			ReportedByID: reporterID,
			Timestamp:    now,
			Date:         now.Format(entity.DateLayout),
		}
		if err := wastes.Create(w); err != nil {
			return err
		}

		// Deducción directa, sin piso en cero.
		newQty := m.CurrentStock.Sub(in.Quantity)
		if err := materials.UpdateStock(m.ID, newQty); err != nil {
			return err
		}
		mov := &entity.StockMovement{
			ID:            uuid.New().String(),
			TransactionID: uuid.New().String(),
			MaterialID:    m.ID,
			Type:          entity.MovementTypeWaste,
			Quantity:      in.Quantity.Neg(),
			Reference:     w.ID,
			Notes:         w.Reason,
			CreatedAt:     now,
			CreatedBy:     reporterID,
		}
		if err := movements.Create(mov); err != nil {
			return err
		}
		created = w
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("waste_id", created.ID).
		Str("material_id", created.MaterialID).
		Str("total_loss", created.TotalLoss.String()).
		Msg("merma registrada")

	return dto.ToWasteResponse(created), nil
}

// List devuelve el libro de mermas, opcionalmente filtrado por día.
func (uc *UseCase) List(date string) ([]*dto.WasteResponse, error) {
	var (
		list []*entity.Waste
		err  error
	)
	if date != "" {
		list, err = uc.wastes.ListByDate(date)
	} else {
		list, err = uc.wastes.List()
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.WasteResponse, 0, len(list))
	for _, w := range list {
		out = append(out, dto.ToWasteResponse(w))
	}
	return out, nil
}
