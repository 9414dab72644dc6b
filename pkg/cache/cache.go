// Package cache provee una caché en memoria con TTL e invalidación total.
// Pensada para respuestas de lectura del POS: cualquier escritura vacía la
// caché completa en lugar de invalidar claves una a una.
package cache

import (
	"sync"
	"time"
)

type entry struct {
	value     []byte
	expiresAt time.Time
}

// TTLCache caché clave→bytes con expiración uniforme.
type TTLCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]entry
	now     func() time.Time // inyectable en tests
}

// New crea la caché con el TTL indicado.
func New(ttl time.Duration) *TTLCache {
	return &TTLCache{
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get devuelve el valor cacheado y true, o nil y false si no existe o expiró.
// Las entradas expiradas se eliminan al tocarlas.
func (c *TTLCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().After(e.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}
	return e.value, true
}

// Set guarda el valor bajo la clave con el TTL de la caché.
func (c *TTLCache) Set(key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: value, expiresAt: c.now().Add(c.ttl)}
}

// Clear vacía la caché completa. Se invoca tras cualquier mutación.
func (c *TTLCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}

// Len cantidad de entradas vivas o expiradas aún no purgadas.
func (c *TTLCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
