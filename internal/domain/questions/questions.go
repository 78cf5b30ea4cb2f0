package questions

import (
	"fmt"

	"github.com/mentesana/cuestionarios-api/internal/domain/entities"
)

// Catálogos fijos de preguntas por tipo de cuestionario. El índice de cada
// pregunta (base cero) coincide con la clave usada en el mapa de respuestas.
// Los textos son inmutables: cambiarlos rompería la correspondencia con
// respuestas ya almacenadas.

var pareja = []string{
	"¿Cuánto tiempo llevan juntos como pareja?",
	"¿Con qué frecuencia discuten por temas del día a día?",
	"¿Sientes que puedes hablar abiertamente de tus emociones con tu pareja?",
	"¿Cómo describirías la comunicación en su relación?",
	"¿Comparten metas y planes de futuro?",
	"¿Cómo manejan los desacuerdos importantes?",
	"¿Sientes que tu pareja te apoya en momentos difíciles?",
	"¿Cuánta confianza sientes hacia tu pareja?",
	"¿Cómo valoras la intimidad y el afecto en la relación?",
	"¿Qué tan satisfecho/a te sientes con la relación en general?",
	"¿Han considerado buscar ayuda profesional como pareja?",
	"¿Qué te gustaría mejorar de tu relación?",
}

var personalidad = []string{
	"¿Cómo te describirías a ti mismo/a en pocas palabras?",
	"¿Prefieres pasar tiempo con otras personas o a solas?",
	"¿Cómo reaccionas normalmente ante situaciones de estrés?",
	"¿Te consideras una persona organizada o espontánea?",
	"¿Con qué frecuencia te sientes ansioso/a o preocupado/a?",
	"¿Cómo manejas los cambios inesperados en tu vida?",
	"¿Te resulta fácil expresar lo que sientes?",
	"¿Cómo valoras tu estado de ánimo en las últimas semanas?",
	"¿Qué actividades te ayudan a sentirte mejor?",
	"¿Has notado cambios en tu sueño o apetito últimamente?",
	"¿Qué esperas conseguir con este cuestionario?",
}

// ForTipo devuelve la lista ordenada de preguntas del tipo indicado.
// Para un tipo desconocido devuelve nil.
func ForTipo(tipo string) []string {
	switch tipo {
	case entities.TipoPareja:
		return pareja
	case entities.TipoPersonalidad:
		return personalidad
	}
	return nil
}

// Label devuelve el texto de la pregunta para un índice dado. Un índice fuera
// del catálogo conocido cae a una etiqueta sintetizada "Pregunta N".
func Label(tipo string, index int) string {
	list := ForTipo(tipo)
	if index >= 0 && index < len(list) {
		return list[index]
	}
	return fmt.Sprintf("Pregunta %d", index+1)
}
