package repository

import "github.com/tu-usuario/cafe-pos/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios.
// GetByID y GetByUsername devuelven (nil, nil) cuando no hay coincidencia.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	Update(u *entity.User) error
	List() ([]*entity.User, error)
	Clear() error
}
