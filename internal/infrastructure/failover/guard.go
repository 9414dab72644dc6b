package failover

import (
	"github.com/tu-usuario/cafe-pos/internal/domain"
	"github.com/tu-usuario/cafe-pos/pkg/logger"
)

// Guard comparte breaker y logger entre todos los adaptadores con failover.
// Un solo breaker para toda la persistencia: si PostgreSQL está caído, lo está
// para todas las colecciones por igual.
type Guard struct {
	breaker *Breaker
	log     *logger.Logger
}

// NewGuard construye el guard compartido.
func NewGuard(breaker *Breaker, log *logger.Logger) *Guard {
	return &Guard{breaker: breaker, log: log.Component("failover")}
}

// Breaker expone el breaker (estado para el health check).
func (g *Guard) Breaker() *Breaker {
	return g.breaker
}

// call intenta la operación en el primario y degrada al fallback ante fallos
// de infraestructura. Los errores de dominio (no encontrado, duplicado...)
// son respuestas válidas del primario: pasan tal cual y no abren el breaker.
func call[T any](g *Guard, op string, primary, fallback func() (T, error)) (T, error) {
	if g.breaker.Allow() {
		v, err := primary()
		if err == nil || domain.IsDomainError(err) {
			g.breaker.Success()
			return v, err
		}
		g.breaker.Failure()
		g.log.Warn().Err(err).Str("op", op).Str("breaker", g.breaker.State().String()).
			Msg("primario falló, degradando al store local")
	}
	return fallback()
}

// callErr variante de call para operaciones sin valor de retorno.
func callErr(g *Guard, op string, primary, fallback func() error) error {
	_, err := call(g, op, func() (struct{}, error) {
		return struct{}{}, primary()
	}, func() (struct{}, error) {
		return struct{}{}, fallback()
	})
	return err
}
