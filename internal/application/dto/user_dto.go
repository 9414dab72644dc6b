package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cafe-pos/internal/domain/entity"
)

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse token emitido más el perfil del usuario.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// CreateUserRequest alta de empleado (solo owner).
type CreateUserRequest struct {
	Username string          `json:"username"`
	Password string          `json:"password"`
	FullName string          `json:"fullName"`
	Role     string          `json:"role"` // owner | cashier
	Phone    string          `json:"phone"`
	Salary   decimal.Decimal `json:"salary"`
}

// UpdateUserRequest edición de empleado. Password opcional (re-hash al cambiar).
type UpdateUserRequest struct {
	Password *string          `json:"password"`
	FullName *string          `json:"fullName"`
	Role     *string          `json:"role"`
	IsActive *bool            `json:"isActive"`
	Phone    *string          `json:"phone"`
	Salary   *decimal.Decimal `json:"salary"`
}

// UserResponse perfil público del usuario: nunca expone el hash de contraseña.
type UserResponse struct {
	ID        string          `json:"id"`
	Username  string          `json:"username"`
	FullName  string          `json:"fullName"`
	Role      string          `json:"role"`
	IsActive  bool            `json:"isActive"`
	Phone     string          `json:"phone,omitempty"`
	Salary    decimal.Decimal `json:"salary"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ToUserResponse convierte la entidad a su DTO.
func ToUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		FullName:  u.FullName,
		Role:      u.Role,
		IsActive:  u.IsActive,
		Phone:     u.Phone,
		Salary:    u.Salary,
		CreatedAt: u.CreatedAt,
	}
}
