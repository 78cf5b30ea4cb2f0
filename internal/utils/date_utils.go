package utils

import "time"

// GetMadridLocation devuelve la zona horaria de Madrid (CET/CEST).
// Esta función debe usarse en todo el proyecto para mostrar fechas al panel
// de administración, garantizando consistencia en la presentación.
func GetMadridLocation() *time.Location {
	loc, err := time.LoadLocation("Europe/Madrid")
	if err != nil {
		// Fallback a UTC+1 si no se puede cargar la zona
		loc = time.FixedZone("CET", 1*60*60)
	}
	return loc
}
