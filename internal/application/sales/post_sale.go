// Package sales implementa el poster de ventas: traduce una venta finalizada
// en el registro del libro de ventas más las deducciones de stock que dicta
// la receta de cada producto vendido.
package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cafe-pos/internal/application/dto"
	"github.com/tu-usuario/cafe-pos/internal/application/stock"
	"github.com/tu-usuario/cafe-pos/internal/domain"
	"github.com/tu-usuario/cafe-pos/internal/domain/entity"
	"github.com/tu-usuario/cafe-pos/internal/domain/pos"
	"github.com/tu-usuario/cafe-pos/internal/domain/repository"
	"github.com/tu-usuario/cafe-pos/pkg/logger"
)

// PostSaleUseCase registra ventas y aplica sus consecuencias de inventario.
type PostSaleUseCase struct {
	txRunner TxRunner
	products repository.ProductRepository
	sales    repository.SaleRepository
	log      *logger.Logger
}

// NewPostSaleUseCase construye el caso de uso.
func NewPostSaleUseCase(
	txRunner TxRunner,
	products repository.ProductRepository,
	sales repository.SaleRepository,
	log *logger.Logger,
) *PostSaleUseCase {
	return &PostSaleUseCase{txRunner: txRunner, products: products, sales: sales, log: log.Component("sales")}
}

// PostSale valida el carrito, recalcula totales de línea y agregados desde el
// catálogo, y dentro de una transacción: (1) agrega la venta al libro
// append-only, (2) expande la receta de cada línea y descuenta stock.
//
// Las deducciones no tienen piso en cero: dos ventas seguidas del mismo
// producto sin reabastecer pueden dejar stock negativo, y eso es correcto.
func (uc *PostSaleUseCase) PostSale(ctx context.Context, in dto.CreateSaleRequest, cashierID, cashierName string) (*dto.SaleResponse, error) {
	if len(in.Items) == 0 || !entity.ValidPaymentMethod(in.PaymentMethod) {
		return nil, domain.ErrInvalidInput
	}

	// Resolver productos y recalcular cifras por línea en el servidor.
	type resolvedLine struct {
		product *entity.Product
		item    entity.CartItem
	}
	lines := make([]resolvedLine, 0, len(in.Items))
	subtotal, totalCost, totalProfit := decimal.Zero, decimal.Zero, decimal.Zero
	for _, reqItem := range in.Items {
		if !reqItem.Quantity.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		p, err := uc.products.GetByID(reqItem.ProductID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, domain.ErrNotFound
		}
		if !p.IsActive {
			return nil, domain.ErrInvalidInput
		}
		item := entity.CartItem{
			ProductID:   p.ID,
			ProductName: p.Name,
			SKU:         p.SKU,
			Quantity:    reqItem.Quantity,
			UnitPrice:   p.Price,
			UnitCost:    p.Cost,
			TotalPrice:  p.Price.Mul(reqItem.Quantity),
			TotalCost:   p.Cost.Mul(reqItem.Quantity),
			TotalProfit: p.Profit.Mul(reqItem.Quantity),
		}
		subtotal = subtotal.Add(item.TotalPrice)
		totalCost = totalCost.Add(item.TotalCost)
		totalProfit = totalProfit.Add(item.TotalProfit)
		lines = append(lines, resolvedLine{product: p, item: item})
	}

	sale := &entity.Sale{
		ID:            domain.NewID(domain.PrefixSale),
		Items:         make([]entity.CartItem, 0, len(lines)),
		Subtotal:      subtotal,
		TotalCost:     totalCost,
		TotalProfit:   totalProfit,
		PaymentMethod: in.PaymentMethod,
		Timestamp:     time.Now(),
		CashierID:     cashierID,
		CashierName:   cashierName,
	}
	for _, l := range lines {
		sale.Items = append(sale.Items, l.item)
	}

	txID := uuid.New().String()
	err := uc.txRunner.RunSale(ctx, func(
		salesRepo repository.SaleRepository,
		materials repository.MaterialRepository,
		movements repository.StockMovementRepository,
	) error {
		// 1. Registrar la venta (el orden importa para auditoría).
		if err := salesRepo.Create(sale); err != nil {
			return err
		}
		// 2. Expandir recetas y descontar stock, línea por línea.
		for _, l := range lines {
			for _, c := range pos.ExpandRecipe(l.product.Recipe, l.item.Quantity) {
				if err := stock.ApplyDeduction(
					materials, movements, uc.log,
					txID, c.MaterialID, c.Quantity,
					entity.MovementTypeSale, sale.ID, cashierID,
				); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("sale_id", sale.ID).
		Str("cashier", cashierID).
		Int("items", len(sale.Items)).
		Str("subtotal", sale.Subtotal.String()).
		Msg("venta registrada")

	return dto.ToSaleResponse(sale), nil
}

// GetByID obtiene una venta por ID.
func (uc *PostSaleUseCase) GetByID(id string) (*dto.SaleResponse, error) {
	s, err := uc.sales.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToSaleResponse(s), nil
}

// List devuelve el libro de ventas, opcionalmente filtrado por día calendario.
func (uc *PostSaleUseCase) List(date string) ([]*dto.SaleResponse, error) {
	var (
		list []*entity.Sale
		err  error
	)
	if date != "" {
		list, err = uc.sales.ListByDate(date)
	} else {
		list, err = uc.sales.List()
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.ToSaleResponse(s))
	}
	return out, nil
}
