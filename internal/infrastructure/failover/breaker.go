// Package failover enruta cada operación de persistencia: PostgreSQL como
// primario y el store local JSON como degradado. Un circuit breaker decide
// cuándo dejar de insistir con el primario y cuándo volver a sondearlo.
package failover

import (
	"sync"
	"time"
)

// Estados del breaker.
type State int

const (
	StateClosed   State = iota // primario sano: todo pasa por él
	StateOpen                  // primario caído: directo al degradado
	StateHalfOpen              // ventana de sondeo: se permite un intento
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	}
	return "unknown"
}

// Breaker circuit breaker clásico de tres estados. Cuenta fallos consecutivos
// del primario; al llegar al umbral abre, y tras el periodo de reintento
// permite un sondeo (half-open) que lo cierra o lo vuelve a abrir.
type Breaker struct {
	mu         sync.Mutex
	threshold  int
	retryAfter time.Duration
	state      State
	failures   int
	openedAt   time.Time
	now        func() time.Time // inyectable en tests
}

// NewBreaker construye el breaker con umbral de fallos y periodo de reintento.
func NewBreaker(threshold int, retryAfter time.Duration) *Breaker {
	if threshold < 1 {
		threshold = 1
	}
	return &Breaker{
		threshold:  threshold,
		retryAfter: retryAfter,
		now:        time.Now,
	}
}

// Allow indica si la próxima operación puede intentar el primario. En abierto,
// pasado el periodo de reintento, transiciona a half-open y permite un sondeo.
func (b *Breaker) Allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch b.state {
	case StateClosed, StateHalfOpen:
		return true
	case StateOpen:
		if b.now().Sub(b.openedAt) >= b.retryAfter {
			b.state = StateHalfOpen
			return true
		}
		return false
	}
	return false
}

// Success registra un intento exitoso: cierra el breaker y limpia el contador.
func (b *Breaker) Success() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.state = StateClosed
	b.failures = 0
}

// Failure registra un fallo del primario. En half-open reabre de inmediato;
// en cerrado abre al llegar al umbral de fallos consecutivos.
func (b *Breaker) Failure() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state == StateHalfOpen {
		b.open()
		return
	}
	b.failures++
	if b.failures >= b.threshold {
		b.open()
	}
}

// open asume que el caller tiene el lock.
func (b *Breaker) open() {
	b.state = StateOpen
	b.failures = 0
	b.openedAt = b.now()
}

// State devuelve el estado actual.
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}
