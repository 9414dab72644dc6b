// Package stock implementa el libro de stock (stock ledger): la cantidad en
// mano por materia prima, sus deducciones y ajustes, y las sugerencias de
// compra derivadas de los umbrales.
package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cafe-pos/internal/application/dto"
	"github.com/tu-usuario/cafe-pos/internal/domain"
	"github.com/tu-usuario/cafe-pos/internal/domain/entity"
	"github.com/tu-usuario/cafe-pos/internal/domain/repository"
	"github.com/tu-usuario/cafe-pos/pkg/logger"
)

// ApplyDeduction descuenta qty del stock del material dentro de la transacción
// a la que pertenecen los repositorios recibidos, y deja el movimiento de
// auditoría. Sin piso en cero: el stock puede quedar negativo cuando las
// ventas superan lo registrado.
//
// Si el material no existe la deducción es un no-op silencioso (solo warn en
// el log): una referencia obsoleta en una receta no debe tumbar la venta.
// Ver DESIGN.md para la discusión de esta política.
func ApplyDeduction(
	materials repository.MaterialRepository,
	movements repository.StockMovementRepository,
	log *logger.Logger,
	txID, materialID string,
	qty decimal.Decimal,
	movType, reference, userID string,
) error {
	m, err := materials.GetForUpdate(materialID)
	if err != nil {
		return err
	}
	if m == nil {
		log.Warn().
			Str("material_id", materialID).
			Str("reference", reference).
			Msg("deducción sobre material inexistente: no-op")
		return nil
	}
	newQty := m.CurrentStock.Sub(qty)
	if err := materials.UpdateStock(materialID, newQty); err != nil {
		return err
	}
	mov := &entity.StockMovement{
		ID:            uuid.New().String(),
		TransactionID: txID,
		MaterialID:    materialID,
		Type:          movType,
		Quantity:      qty.Neg(),
		Reference:     reference,
		CreatedAt:     time.Now(),
		CreatedBy:     userID,
	}
	return movements.Create(mov)
}

// UseCase operaciones del libro de stock: CRUD de materias primas, deducción,
// ajuste manual y snapshot.
type UseCase struct {
	txRunner  TxRunner
	materials repository.MaterialRepository
	movements repository.StockMovementRepository
	log       *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner TxRunner, materials repository.MaterialRepository, movements repository.StockMovementRepository, log *logger.Logger) *UseCase {
	return &UseCase{txRunner: txRunner, materials: materials, movements: movements, log: log.Component("stock")}
}

// CreateMaterial da de alta una materia prima.
func (uc *UseCase) CreateMaterial(in dto.CreateMaterialRequest) (*entity.RawMaterial, error) {
	if in.Name == "" || !entity.ValidUnit(in.Unit) {
		return nil, domain.ErrInvalidInput
	}
	if in.UnitCost.IsNegative() || in.MinStock.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	m := &entity.RawMaterial{
		ID:           domain.NewID(domain.PrefixMaterial),
		Name:         in.Name,
		Unit:         in.Unit,
		UnitCost:     in.UnitCost,
		CurrentStock: in.CurrentStock,
		MinStock:     in.MinStock,
		TargetStock:  in.TargetStock,
		Category:     in.Category,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.materials.Create(m); err != nil {
		return nil, err
	}
	return m, nil
}

// UpdateMaterial edita datos maestros. El stock no se toca por aquí.
func (uc *UseCase) UpdateMaterial(id string, in dto.UpdateMaterialRequest) (*entity.RawMaterial, error) {
	m, err := uc.materials.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		m.Name = *in.Name
	}
	if in.Unit != nil {
		if !entity.ValidUnit(*in.Unit) {
			return nil, domain.ErrInvalidInput
		}
		m.Unit = *in.Unit
	}
	if in.UnitCost != nil {
		if in.UnitCost.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		m.UnitCost = *in.UnitCost
	}
	if in.MinStock != nil {
		m.MinStock = *in.MinStock
	}
	if in.TargetStock != nil {
		m.TargetStock = *in.TargetStock
	}
	if in.Category != nil {
		m.Category = *in.Category
	}
	m.UpdatedAt = time.Now()
	if err := uc.materials.Update(m); err != nil {
		return nil, err
	}
	return m, nil
}

// Deduct descuenta qty del material (sin piso en cero; no-op si no existe).
// Deja un movimiento de auditoría tipo adjust con la referencia indicada.
func (uc *UseCase) Deduct(ctx context.Context, materialID string, qty decimal.Decimal, reference, userID string) error {
	if !qty.IsPositive() {
		return domain.ErrInvalidInput
	}
	txID := uuid.New().String()
	return uc.txRunner.RunStock(ctx, func(
		materials repository.MaterialRepository,
		movements repository.StockMovementRepository,
	) error {
		return ApplyDeduction(materials, movements, uc.log, txID, materialID, qty, entity.MovementTypeAdjust, reference, userID)
	})
}

// Adjust aplica una corrección manual: el resultado queda acotado en cero
// (max(0, stock+delta)), a diferencia de las deducciones por venta/merma que
// no tienen piso. La asimetría es deliberada y se preserva.
func (uc *UseCase) Adjust(ctx context.Context, materialID string, delta decimal.Decimal, notes, userID string) (*entity.RawMaterial, error) {
	if delta.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	var updated *entity.RawMaterial
	err := uc.txRunner.RunStock(ctx, func(
		materials repository.MaterialRepository,
		movements repository.StockMovementRepository,
	) error {
		m, err := materials.GetForUpdate(materialID)
		if err != nil {
			return err
		}
		if m == nil {
			return domain.ErrNotFound
		}
		newQty := m.CurrentStock.Add(delta)
		if newQty.IsNegative() {
			newQty = decimal.Zero
		}
		applied := newQty.Sub(m.CurrentStock)
		if err := materials.UpdateStock(materialID, newQty); err != nil {
			return err
		}
		m.CurrentStock = newQty
		m.UpdatedAt = time.Now()
		updated = m

		mov := &entity.StockMovement{
			ID:            uuid.New().String(),
			TransactionID: uuid.New().String(),
			MaterialID:    materialID,
			Type:          entity.MovementTypeAdjust,
			Quantity:      applied,
			Notes:         notes,
			CreatedAt:     time.Now(),
			CreatedBy:     userID,
		}
		return movements.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Snapshot devuelve la lista completa actual de materias primas. Todo el
// reporting aguas abajo (advisor, dashboard) parte de aquí.
func (uc *UseCase) Snapshot() ([]*entity.RawMaterial, error) {
	return uc.materials.List()
}

// Movements devuelve el rastro de auditoría de un material, más reciente primero.
func (uc *UseCase) Movements(materialID string) ([]*entity.StockMovement, error) {
	m, err := uc.materials.GetByID(materialID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	return uc.movements.ListByMaterial(materialID)
}
