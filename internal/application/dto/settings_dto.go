package dto

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cafe-pos/internal/domain/entity"
)

// SettingsDTO configuración del negocio (lectura y escritura usan la misma forma).
type SettingsDTO struct {
	StoreName            string          `json:"storeName"`
	ReceiptMessage       string          `json:"receiptMessage"`
	Currency             string          `json:"currency"`
	TaxRate              decimal.Decimal `json:"taxRate"`
	WorkStartTime        string          `json:"workStartTime"`
	WorkEndTime          string          `json:"workEndTime"`
	LateThresholdMinutes int             `json:"lateThreshold"`
}

// ToSettingsDTO convierte la entidad a su DTO.
func ToSettingsDTO(s *entity.Settings) *SettingsDTO {
	return &SettingsDTO{
		StoreName:            s.StoreName,
		ReceiptMessage:       s.ReceiptMessage,
		Currency:             s.Currency,
		TaxRate:              s.TaxRate,
		WorkStartTime:        s.WorkStartTime,
		WorkEndTime:          s.WorkEndTime,
		LateThresholdMinutes: s.LateThresholdMinutes,
	}
}

// ToSettingsEntity convierte el DTO a entidad.
func (d *SettingsDTO) ToSettingsEntity() *entity.Settings {
	return &entity.Settings{
		StoreName:            d.StoreName,
		ReceiptMessage:       d.ReceiptMessage,
		Currency:             d.Currency,
		TaxRate:              d.TaxRate,
		WorkStartTime:        d.WorkStartTime,
		WorkEndTime:          d.WorkEndTime,
		LateThresholdMinutes: d.LateThresholdMinutes,
	}
}

// InitRecipeItemRequest línea de receta de la carga inicial. Referencia la
// materia prima por nombre porque los IDs se generan recién al sembrar.
type InitRecipeItemRequest struct {
	MaterialName string          `json:"materialName"`
	Quantity     decimal.Decimal `json:"quantity"`
}

// InitProductRequest producto de la carga inicial.
type InitProductRequest struct {
	Name     string                  `json:"name"`
	Price    decimal.Decimal         `json:"price"`
	Category string                  `json:"category"`
	Recipe   []InitRecipeItemRequest `json:"recipe"`
}

// InitDataRequest carga inicial: catálogo, materias primas, usuarios y
// configuración. Reemplaza lo existente y vacía los libros de ventas,
// asistencia y mermas.
type InitDataRequest struct {
	Materials []CreateMaterialRequest `json:"materials"`
	Products  []InitProductRequest    `json:"products"`
	Users     []CreateUserRequest     `json:"users"`
	Settings  *SettingsDTO            `json:"settings"`
}
