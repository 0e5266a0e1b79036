package prescriptions

import "time"

// Drug es una fila de la tabla drugs: un medicamento asociado a un código de receta.
type Drug struct {
	ID               int64
	PrescriptionCode string

	Name              string
	Expiry            time.Time // SKT (son kullanma tarihi), solo fecha
	UsageInstructions string
}

// ExpiryLayout es el formato de fecha que viaja al kiosk.
const ExpiryLayout = "2006-01-02"
