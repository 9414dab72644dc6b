package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/cafe-pos/internal/domain"
	"github.com/tu-usuario/cafe-pos/internal/domain/entity"
	"github.com/tu-usuario/cafe-pos/internal/infrastructure/localstore"
)

// Tests en el propio paquete para poder inyectar el reloj (uc.now).

// at construye una hora del día de prueba (2026-03-10) en hora local.
func at(hour, min int) time.Time {
	return time.Date(2026, 3, 10, hour, min, 0, 0, time.Local)
}

func newFixedClock(t *testing.T, now time.Time) *UseCase {
	t.Helper()
	store, err := localstore.Open(t.TempDir())
	require.NoError(t, err)
	uc := NewUseCase(
		localstore.NewAttendanceRepository(store),
		localstore.NewSettingsRepository(store),
	)
	uc.now = func() time.Time { return now }
	return uc
}

// Configuración por defecto: entrada 08:00, tolerancia 15 minutos.

// Check-in 08:10 (dentro de la tolerancia) → present.
func TestCheckIn_DentroDeTolerancia_Present(t *testing.T) {
	uc := newFixedClock(t, at(8, 10))

	rec, err := uc.CheckIn("usr-1", "Cajero Demo")
	require.NoError(t, err)
	assert.Equal(t, entity.AttendancePresent, rec.Status)
	assert.Equal(t, "2026-03-10", rec.Date)
}

// Check-in 08:16 (un minuto después del límite) → late.
func TestCheckIn_PasadoElLimite_Late(t *testing.T) {
	uc := newFixedClock(t, at(8, 16))

	rec, err := uc.CheckIn("usr-1", "Cajero Demo")
	require.NoError(t, err)
	assert.Equal(t, entity.AttendanceLate, rec.Status)
}

// Check-in 08:15 exactos: el límite es inclusivo (after, no at) → present.
func TestCheckIn_EnElLimiteExacto_Present(t *testing.T) {
	uc := newFixedClock(t, at(8, 15))

	rec, err := uc.CheckIn("usr-1", "Cajero Demo")
	require.NoError(t, err)
	assert.Equal(t, entity.AttendancePresent, rec.Status)
}

// Un segundo check-in el mismo día es conflicto.
func TestCheckIn_DuplicadoDelDia_Conflicto(t *testing.T) {
	uc := newFixedClock(t, at(8, 0))

	_, err := uc.CheckIn("usr-1", "Cajero Demo")
	require.NoError(t, err)

	_, err = uc.CheckIn("usr-1", "Cajero Demo")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCheckIn_UsuarioVacio(t *testing.T) {
	uc := newFixedClock(t, at(8, 0))
	_, err := uc.CheckIn("", "Nadie")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// CheckOut
// ──────────────────────────────────────────────────────────────────────────────

// Jornada completa: entrada 08:00, salida 17:30 → 9.5 horas, estado intacto.
func TestCheckOut_JornadaCompleta(t *testing.T) {
	uc := newFixedClock(t, at(8, 0))
	_, err := uc.CheckIn("usr-1", "Cajero Demo")
	require.NoError(t, err)

	uc.now = func() time.Time { return at(17, 30) }
	rec, err := uc.CheckOut("usr-1")
	require.NoError(t, err)

	require.NotNil(t, rec.WorkHours)
	assert.InDelta(t, 9.5, *rec.WorkHours, 0.001)
	assert.Equal(t, entity.AttendancePresent, rec.Status)
	assert.NotNil(t, rec.CheckOut)
}

// Menos de 4 horas degrada el estado a half-day.
func TestCheckOut_MediaJornada(t *testing.T) {
	uc := newFixedClock(t, at(8, 0))
	_, err := uc.CheckIn("usr-1", "Cajero Demo")
	require.NoError(t, err)

	uc.now = func() time.Time { return at(11, 30) }
	rec, err := uc.CheckOut("usr-1")
	require.NoError(t, err)

	require.NotNil(t, rec.WorkHours)
	assert.InDelta(t, 3.5, *rec.WorkHours, 0.001)
	assert.Equal(t, entity.AttendanceHalfDay, rec.Status)
}

// Las horas se redondean a 2 decimales: 8h20m = 8.33.
func TestCheckOut_HorasRedondeadasADosDecimales(t *testing.T) {
	uc := newFixedClock(t, at(8, 0))
	_, err := uc.CheckIn("usr-1", "Cajero Demo")
	require.NoError(t, err)

	uc.now = func() time.Time { return at(16, 20) }
	rec, err := uc.CheckOut("usr-1")
	require.NoError(t, err)

	require.NotNil(t, rec.WorkHours)
	assert.Equal(t, 8.33, *rec.WorkHours)
}

// Check-out sin check-in previo → not found.
func TestCheckOut_SinCheckIn(t *testing.T) {
	uc := newFixedClock(t, at(17, 0))
	_, err := uc.CheckOut("usr-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Doble check-out → conflicto.
func TestCheckOut_Duplicado_Conflicto(t *testing.T) {
	uc := newFixedClock(t, at(8, 0))
	_, err := uc.CheckIn("usr-1", "Cajero Demo")
	require.NoError(t, err)

	uc.now = func() time.Time { return at(17, 0) }
	_, err = uc.CheckOut("usr-1")
	require.NoError(t, err)

	_, err = uc.CheckOut("usr-1")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// ──────────────────────────────────────────────────────────────────────────────
// Configuración personalizada
// ──────────────────────────────────────────────────────────────────────────────

// Con entrada configurada a las 06:00 y tolerancia 5, un check-in 08:10 que con
// los defaults sería present pasa a late.
func TestCheckIn_ConfiguracionPersonalizada(t *testing.T) {
	uc := newFixedClock(t, at(8, 10))
	cfg := entity.DefaultSettings()
	cfg.WorkStartTime = "06:00"
	cfg.LateThresholdMinutes = 5
	require.NoError(t, uc.settings.Save(cfg))

	rec, err := uc.CheckIn("usr-1", "Cajero Demo")
	require.NoError(t, err)
	assert.Equal(t, entity.AttendanceLate, rec.Status)
}

// Una hora de entrada malformada en la configuración cae a present en lugar
// de bloquear el check-in.
func TestCheckIn_HoraMalformada_CaeAPresent(t *testing.T) {
	uc := newFixedClock(t, at(23, 59))
	cfg := entity.DefaultSettings()
	cfg.WorkStartTime = "no-es-hora"
	require.NoError(t, uc.settings.Save(cfg))

	rec, err := uc.CheckIn("usr-1", "Cajero Demo")
	require.NoError(t, err)
	assert.Equal(t, entity.AttendancePresent, rec.Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// List
// ──────────────────────────────────────────────────────────────────────────────

func TestList_PorFechaYUsuario(t *testing.T) {
	uc := newFixedClock(t, at(8, 0))
	_, err := uc.CheckIn("usr-1", "Cajero Uno")
	require.NoError(t, err)
	_, err = uc.CheckIn("usr-2", "Cajero Dos")
	require.NoError(t, err)

	byDate, err := uc.List("2026-03-10", "")
	require.NoError(t, err)
	assert.Len(t, byDate, 2)

	byBoth, err := uc.List("2026-03-10", "usr-2")
	require.NoError(t, err)
	require.Len(t, byBoth, 1)
	assert.Equal(t, "usr-2", byBoth[0].UserID)

	byUser, err := uc.List("", "usr-1")
	require.NoError(t, err)
	require.Len(t, byUser, 1)
	assert.Equal(t, "usr-1", byUser[0].UserID)
}
