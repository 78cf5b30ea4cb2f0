package answers

import (
	"encoding/json"
	"strings"
)

// Valores por defecto para datos personales incompletos
const (
	defaultNombre    = "Usuario"
	defaultApellidos = "Desconocido"
	defaultNA        = "N/A"
)

// PersonalInfo contiene los datos personales del cuestionario. Todos los
// campos son obligatorios tras el defaulting: nunca se persiste un registro
// con campos ausentes o vacíos.
type PersonalInfo struct {
	Nombre            string `json:"nombre"`
	Apellidos         string `json:"apellidos"`
	Edad              string `json:"edad"`
	Genero            string `json:"genero"`
	Correo            string `json:"correo"`
	OrientacionSexual string `json:"orientacionSexual"`
}

// DefaultPersonalInfo devuelve el registro por defecto completo, usado cuando
// el registro entero no parsea.
func DefaultPersonalInfo() PersonalInfo {
	return PersonalInfo{
		Nombre:            defaultNombre,
		Apellidos:         defaultApellidos,
		Edad:              defaultNA,
		Genero:            defaultNA,
		Correo:            defaultNA,
		OrientacionSexual: defaultNA,
	}
}

// Complete rellena solo los campos ausentes o vacíos. El segundo resultado
// indica si hubo que rellenar algo. Esta misma regla se aplica en el intake
// y en el barrido de reparación para que datos nuevos y antiguos reciban un
// tratamiento idéntico.
func (p PersonalInfo) Complete() (PersonalInfo, bool) {
	changed := false
	fill := func(field *string, def string) {
		if strings.TrimSpace(*field) == "" {
			*field = def
			changed = true
		}
	}
	fill(&p.Nombre, defaultNombre)
	fill(&p.Apellidos, defaultApellidos)
	fill(&p.Edad, defaultNA)
	fill(&p.Genero, defaultNA)
	fill(&p.Correo, defaultNA)
	fill(&p.OrientacionSexual, defaultNA)
	return p, changed
}

// ParsePersonalInfo parsea el JSON almacenado y aplica el defaulting. Si el
// texto no parsea se sustituye por el registro por defecto completo. El
// segundo resultado indica si el registro tuvo que repararse.
func ParsePersonalInfo(raw string) (PersonalInfo, bool) {
	if strings.TrimSpace(raw) == "" {
		return DefaultPersonalInfo(), true
	}
	var info PersonalInfo
	if err := json.Unmarshal([]byte(raw), &info); err != nil {
		return DefaultPersonalInfo(), true
	}
	return info.Complete()
}
