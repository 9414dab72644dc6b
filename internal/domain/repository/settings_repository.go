package repository

import "github.com/tu-usuario/cafe-pos/internal/domain/entity"

// SettingsRepository puerto para la configuración del negocio (registro único).
// Get devuelve (nil, nil) si nunca se guardó configuración.
type SettingsRepository interface {
	Get() (*entity.Settings, error)
	Save(s *entity.Settings) error
}
