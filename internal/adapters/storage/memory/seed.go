package memory

import (
	"time"

	"ilac-otomasyon/internal/domain/patients"
	"ilac-otomasyon/internal/domain/prescriptions"
)

// Datos de demo para desarrollo y pruebas de punta a punta.
// La receta DEMO123 repite un nombre a propósito: el kiosk debe mostrarlo una vez.
func DemoDrugs() []prescriptions.Drug {
	day := func(s string) time.Time {
		t, _ := time.Parse(prescriptions.ExpiryLayout, s)
		return t
	}
	return []prescriptions.Drug{
		{PrescriptionCode: "DEMO123", Name: "Parol 500 mg", Expiry: day("2027-03-01"), UsageInstructions: "Günde 3 kez, tok karnına"},
		{PrescriptionCode: "DEMO123", Name: "Augmentin 1000 mg", Expiry: day("2026-12-15"), UsageInstructions: "12 saatte bir, 7 gün"},
		{PrescriptionCode: "DEMO123", Name: "Parol 500 mg", Expiry: day("2027-05-20"), UsageInstructions: "Günde 3 kez, tok karnına"},
		{PrescriptionCode: "DEMO456", Name: "Majezik 100 mg", Expiry: day("2027-01-10"), UsageInstructions: "Ağrı olduğunda, günde en fazla 2"},
	}
}

func DemoPatients() []patients.Patient {
	return []patients.Patient{
		{NationalID: "12345678901", FullName: "Ayşe Yılmaz"},
		{NationalID: "10000000146", FullName: "Mehmet Demir"},
	}
}
