package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/cafe-pos/internal/domain/entity"
	"github.com/tu-usuario/cafe-pos/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implementación de SettingsRepository sobre PostgreSQL.
// Registro único: la tabla usa una clave fija y Save hace upsert.
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository construye el adaptador de configuración. Pasar pool o tx (Querier).
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// Get devuelve la configuración guardada, o (nil, nil) si nunca se guardó.
func (r *SettingsRepo) Get() (*entity.Settings, error) {
	query := `
		SELECT store_name, receipt_message, currency, tax_rate, work_start_time, work_end_time, late_threshold_minutes
		FROM settings WHERE id = 1`
	var s entity.Settings
	err := r.q.QueryRow(context.Background(), query).Scan(
		&s.StoreName, &s.ReceiptMessage, &s.Currency, &s.TaxRate,
		&s.WorkStartTime, &s.WorkEndTime, &s.LateThresholdMinutes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &s, nil
}

// Save guarda la configuración (upsert sobre la fila única).
func (r *SettingsRepo) Save(s *entity.Settings) error {
	query := `
		INSERT INTO settings (id, store_name, receipt_message, currency, tax_rate, work_start_time, work_end_time, late_threshold_minutes)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			store_name = EXCLUDED.store_name,
			receipt_message = EXCLUDED.receipt_message,
			currency = EXCLUDED.currency,
			tax_rate = EXCLUDED.tax_rate,
			work_start_time = EXCLUDED.work_start_time,
			work_end_time = EXCLUDED.work_end_time,
			late_threshold_minutes = EXCLUDED.late_threshold_minutes`
	_, err := r.q.Exec(context.Background(), query,
		s.StoreName, s.ReceiptMessage, s.Currency, s.TaxRate,
		s.WorkStartTime, s.WorkEndTime, s.LateThresholdMinutes,
	)
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
