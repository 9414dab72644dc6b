package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Roles válidos para User.
const (
	RoleOwner   = "owner"
	RoleCashier = "cashier"
)

// ValidRole indica si el rol pertenece al catálogo de roles.
func ValidRole(r string) bool {
	return r == RoleOwner || r == RoleCashier
}

// User representa un empleado del negocio con acceso al sistema.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt, nunca texto plano después de persistir
	FullName     string
	Role         string // owner, cashier
	IsActive     bool
	Phone        string
	Salary       decimal.Decimal
	CreatedAt    time.Time
}
