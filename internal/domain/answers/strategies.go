package answers

import (
	"sort"
)

// strategy es una regla de extracción sobre un valor estructurado.
// Las reglas se evalúan en orden fijo y la primera que acierta gana,
// de modo que la precedencia queda explícita y testeable en lugar de
// repartida entre distintos puntos de llamada.
type strategy interface {
	extract(obj map[string]any) (string, bool)
}

// extractionOrder es la precedencia canónica, compartida por el camino de
// escritura (intake) y el de lectura (listado y barrido de reparación).
var extractionOrder = []strategy{
	nestedAnswer{depth: 1},
	nestedAnswer{depth: 2},
	namedField{name: "value"},
	namedField{name: "response"},
	namedField{name: "text"},
	namedField{name: "label"},
	namedField{name: "name"},
	firstNonNull{},
	rawSerialize{},
}

// nestedAnswer extrae obj["answer"] como string (depth 1) o
// obj["answer"]["answer"] (depth 2, forma histórica de un bug de doble
// anidamiento en el cliente).
type nestedAnswer struct {
	depth int
}

func (n nestedAnswer) extract(obj map[string]any) (string, bool) {
	inner, ok := obj["answer"]
	if !ok {
		return "", false
	}
	if n.depth == 1 {
		if s, ok := inner.(string); ok {
			return s, true
		}
		return "", false
	}
	nested, ok := inner.(map[string]any)
	if !ok {
		return "", false
	}
	if s, ok := nested["answer"].(string); ok {
		return s, true
	}
	return "", false
}

// namedField extrae un campo escalar con nombre convencional.
// Solo acierta con escalares: si el campo contiene otro objeto se deja
// pasar a las reglas siguientes en lugar de serializarlo a ciegas.
type namedField struct {
	name string
}

func (f namedField) extract(obj map[string]any) (string, bool) {
	v, ok := obj[f.name]
	if !ok || v == nil {
		return "", false
	}
	switch v.(type) {
	case string, bool, float64:
		return stringifyScalar(v), true
	}
	return "", false
}

// firstNonNull devuelve el primer valor no nulo entre todos los campos.
// Las claves se recorren en orden lexicográfico para que el resultado sea
// determinista (el orden de iteración de un mapa no lo es).
type firstNonNull struct{}

func (firstNonNull) extract(obj map[string]any) (string, bool) {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if v := obj[k]; v != nil {
			return stringifyScalar(v), true
		}
	}
	return "", false
}

// rawSerialize es el último recurso: la serialización JSON del valor completo
type rawSerialize struct{}

func (rawSerialize) extract(obj map[string]any) (string, bool) {
	return serializeJSON(obj), true
}
