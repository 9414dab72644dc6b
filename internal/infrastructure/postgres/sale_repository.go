package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/cafe-pos/internal/domain/entity"
	"github.com/tu-usuario/cafe-pos/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del libro de ventas sobre PostgreSQL (usable con pool o tx).
// Las líneas del carrito se guardan como JSONB: la venta es inmutable y sus
// líneas nunca se consultan por separado.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador del libro de ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `id, items, subtotal, total_cost, total_profit, payment_method, ts, cashier_id, cashier_name`

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	var items []byte
	err := row.Scan(&s.ID, &items, &s.Subtotal, &s.TotalCost, &s.TotalProfit,
		&s.PaymentMethod, &s.Timestamp, &s.CashierID, &s.CashierName)
	if err != nil {
		return nil, err
	}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &s.Items); err != nil {
			return nil, fmt.Errorf("decode items: %w", err)
		}
	}
	return &s, nil
}

// Create persiste una venta. Solo inserción: el libro es append-only.
func (r *SaleRepo) Create(s *entity.Sale) error {
	items, err := json.Marshal(s.Items)
	if err != nil {
		return fmt.Errorf("encode items: %w", err)
	}
	query := `
		INSERT INTO sales (id, items, subtotal, total_cost, total_profit, payment_method, ts, cashier_id, cashier_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = r.q.Exec(context.Background(), query,
		s.ID, items, s.Subtotal, s.TotalCost, s.TotalProfit, s.PaymentMethod,
		s.Timestamp, s.CashierID, s.CashierName,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	s, err := scanSale(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return s, nil
}

// List devuelve todas las ventas, más recientes primero.
func (r *SaleRepo) List() ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales ORDER BY ts DESC`
	return r.list(query)
}

// ListByDate filtra por día calendario local del timestamp.
func (r *SaleRepo) ListByDate(date string) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE ts::date = $1::date ORDER BY ts DESC`
	return r.list(query, date)
}

func (r *SaleRepo) list(query string, args ...any) ([]*entity.Sale, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Clear vacía el libro de ventas (reinicio administrativo).
func (r *SaleRepo) Clear() error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM sales`); err != nil {
		return fmt.Errorf("clear sales: %w", err)
	}
	return nil
}
