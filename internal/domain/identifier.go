package domain

import (
	"fmt"
	"sync"
	"time"
)

// Prefijos de identificadores por tipo de entidad.
const (
	PrefixMaterial   = "mat"
	PrefixProduct    = "prod"
	PrefixSale       = "sale"
	PrefixWaste      = "waste"
	PrefixAttendance = "att"
	PrefixUser       = "usr"
)

var (
	idMu   sync.Mutex
	lastID int64
)

// NewID genera un identificador opaco <prefijo>-<unix millis>.
// Si dos creaciones caen en el mismo milisegundo (cargas masivas), el
// contador avanza al milisegundo siguiente para mantener la unicidad.
func NewID(prefix string) string {
	idMu.Lock()
	defer idMu.Unlock()
	now := time.Now().UnixMilli()
	if now <= lastID {
		now = lastID + 1
	}
	lastID = now
	return fmt.Sprintf("%s-%d", prefix, now)
}
