package entity

import "github.com/shopspring/decimal"

// Settings es la configuración del negocio (registro único).
type Settings struct {
	StoreName            string
	ReceiptMessage       string
	Currency             string
	TaxRate              decimal.Decimal
	WorkStartTime        string // HH:MM
	WorkEndTime          string // HH:MM
	LateThresholdMinutes int    // tolerancia antes de marcar "late"
}

// DefaultSettings valores iniciales del negocio.
func DefaultSettings() *Settings {
	return &Settings{
		StoreName:            "Cafetería",
		ReceiptMessage:       "¡Gracias por su compra!",
		Currency:             "$",
		TaxRate:              decimal.Zero,
		WorkStartTime:        "08:00",
		WorkEndTime:          "17:00",
		LateThresholdMinutes: 15,
	}
}
