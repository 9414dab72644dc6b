package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tests en el propio paquete para poder inyectar el reloj (c.now).

func newTestCache(ttl time.Duration) (*TTLCache, *time.Time) {
	clock := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	c := New(ttl)
	c.now = func() time.Time { return clock }
	return c, &clock
}

func TestCache_SetGet(t *testing.T) {
	c, _ := newTestCache(30 * time.Second)

	c.Set("owner:/api/materials", []byte(`[{"id":"mat-1"}]`))

	got, ok := c.Get("owner:/api/materials")
	require.True(t, ok)
	assert.Equal(t, []byte(`[{"id":"mat-1"}]`), got)
}

func TestCache_MissClaveInexistente(t *testing.T) {
	c, _ := newTestCache(30 * time.Second)
	_, ok := c.Get("no-existe")
	assert.False(t, ok)
}

// Una entrada expira pasado el TTL y se purga al tocarla.
func TestCache_Expiracion(t *testing.T) {
	c, clock := newTestCache(30 * time.Second)
	c.Set("k", []byte("v"))

	*clock = clock.Add(29 * time.Second)
	_, ok := c.Get("k")
	assert.True(t, ok, "dentro del TTL")

	*clock = clock.Add(2 * time.Second)
	_, ok = c.Get("k")
	assert.False(t, ok, "pasado el TTL")
	assert.Equal(t, 0, c.Len(), "la entrada expirada se elimina al tocarla")
}

// Clear vacía todo: es la invalidación tras cualquier mutación.
func TestCache_Clear(t *testing.T) {
	c, _ := newTestCache(time.Minute)
	c.Set("a", []byte("1"))
	c.Set("b", []byte("2"))
	require.Equal(t, 2, c.Len())

	c.Clear()

	assert.Equal(t, 0, c.Len())
	_, ok := c.Get("a")
	assert.False(t, ok)
}

// Sobrescribir una clave renueva su expiración.
func TestCache_SetRenuevaTTL(t *testing.T) {
	c, clock := newTestCache(30 * time.Second)
	c.Set("k", []byte("v1"))

	*clock = clock.Add(20 * time.Second)
	c.Set("k", []byte("v2"))

	*clock = clock.Add(20 * time.Second) // 40s desde el primer Set, 20s desde el segundo
	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, []byte("v2"), got)
}
