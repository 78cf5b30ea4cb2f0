package answers

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Valores centinela usados por el normalizador
const (
	// SinRespuesta se usa cuando no hay valor utilizable (null/ausente)
	SinRespuesta = "Sin respuesta"
	// RespuestaInvalida sustituye cualquier valor que contenga la marca de corrupción
	RespuestaInvalida = "Respuesta no válida"

	// corruptionMark es la firma de un bug de serialización aguas arriba:
	// un objeto fue convertido a string sin extraer antes su valor interno.
	// Nunca debe llegar al almacenamiento ni a la presentación.
	corruptionMark = "[object Object]"
)

// Normalize convierte un valor de respuesta de forma desconocida en exactamente
// un string limpio y legible. Es una función pura y total: siempre devuelve un
// string para cualquier entrada posible, nunca lanza pánico ni devuelve vacío
// estructural.
//
// Precedencia para valores estructurados (primera coincidencia gana):
// answer (string) > answer.answer (string) > value > response > text > label >
// name > primer campo no nulo (claves ordenadas) > serialización JSON completa.
func Normalize(raw any) string {
	switch v := raw.(type) {
	case nil:
		return SinRespuesta
	case string:
		// Camino sano: el valor ya es un string, pasa sin cambios
		// salvo que arrastre la marca de corrupción.
		return checkCorruption(v)
	case map[string]any:
		for _, s := range extractionOrder {
			if out, ok := s.extract(v); ok {
				return checkCorruption(out)
			}
		}
		// Inalcanzable: rawSerialize siempre produce un valor.
		return SinRespuesta
	case []any:
		// Los arrays no tienen campos con nombre: se toma el primer elemento
		// no nulo, normalizado recursivamente.
		for _, elem := range v {
			if elem != nil {
				return Normalize(elem)
			}
		}
		return checkCorruption(serializeJSON(v))
	default:
		return checkCorruption(stringifyScalar(raw))
	}
}

// NormalizeAll normaliza cada valor del mapa conservando las mismas claves.
// No reindexa: las claves pueden no ser contiguas ni completas.
func NormalizeAll(raw map[string]any) map[string]string {
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		out[k] = Normalize(v)
	}
	return out
}

// IsCorrupted indica si el valor arrastra la marca de corrupción
func IsCorrupted(s string) bool {
	return strings.Contains(s, corruptionMark)
}

// ValueCorrupted indica si la forma textual de un valor crudo arrastra la
// marca de corrupción, sea un string directo o un valor estructurado con la
// marca incrustada en algún campo.
func ValueCorrupted(v any) bool {
	if s, ok := v.(string); ok {
		return IsCorrupted(s)
	}
	return IsCorrupted(serializeJSON(v))
}

// ParseAnswers intenta parsear el JSON de respuestas almacenado. Si el texto
// no parsea devuelve un mapa vacío; el segundo resultado indica si el parseo
// fue correcto.
func ParseAnswers(raw string) (map[string]any, bool) {
	if strings.TrimSpace(raw) == "" {
		return map[string]any{}, false
	}
	var parsed map[string]any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return map[string]any{}, false
	}
	return parsed, true
}

func checkCorruption(s string) string {
	if IsCorrupted(s) {
		return RespuestaInvalida
	}
	return s
}

// stringifyScalar convierte un primitivo (número, booleano) a string.
func stringifyScalar(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case bool:
		return strconv.FormatBool(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case json.Number:
		return s.String()
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	default:
		return serializeJSON(v)
	}
}

func serializeJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return SinRespuesta
	}
	return string(b)
}
