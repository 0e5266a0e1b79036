package patients

// Patient es un paciente registrado, identificado por su número de
// identidad nacional (TC kimlik no).
type Patient struct {
	NationalID string
	FullName   string
}
