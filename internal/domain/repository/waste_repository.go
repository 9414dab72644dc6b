package repository

import "github.com/tu-usuario/cafe-pos/internal/domain/entity"

// WasteRepository puerto del libro de mermas (append-only).
type WasteRepository interface {
	Create(w *entity.Waste) error
	List() ([]*entity.Waste, error)
	ListByDate(date string) ([]*entity.Waste, error)
	Clear() error
}
