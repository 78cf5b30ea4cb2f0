package usecases

import "errors"

// Errores estructurales del dominio. Los fallos de parseo y la corrupción de
// respuestas nunca se propagan como error: siempre se recuperan con valores
// por defecto o centinelas.
var (
	// ErrInvalidType indica un tipo de cuestionario fuera del enumerado conocido
	ErrInvalidType = errors.New("tipo de cuestionario no válido")

	// ErrNoSystemUser indica que no existe la cuenta admin del sistema que debe
	// ser propietaria de los envíos anónimos. Es un error de despliegue, no un
	// error por petición de cara al usuario final.
	ErrNoSystemUser = errors.New("no existe cuenta de sistema para envíos anónimos")

	// ErrAlreadyCompleted indica un intento de modificar un cuestionario ya completado
	ErrAlreadyCompleted = errors.New("el cuestionario ya está completado")

	// ErrInvalidStatus indica un estado fuera del enumerado conocido
	ErrInvalidStatus = errors.New("estado no válido")

	// ErrInvalidCredentials indica credenciales de acceso incorrectas
	ErrInvalidCredentials = errors.New("credenciales no válidas")
)
