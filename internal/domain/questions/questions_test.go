package questions

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mentesana/cuestionarios-api/internal/domain/entities"
)

func TestForTipo(t *testing.T) {
	assert.NotEmpty(t, ForTipo(entities.TipoPareja))
	assert.NotEmpty(t, ForTipo(entities.TipoPersonalidad))
	assert.Nil(t, ForTipo("desconocido"))
}

func TestLabel(t *testing.T) {
	t.Run("índice dentro del catálogo", func(t *testing.T) {
		assert.Equal(t, ForTipo(entities.TipoPareja)[0], Label(entities.TipoPareja, 0))
	})

	t.Run("índice fuera del catálogo cae a la etiqueta sintetizada", func(t *testing.T) {
		assert.Equal(t, "Pregunta 26", Label(entities.TipoPareja, 25))
	})

	t.Run("índice negativo también cae a la etiqueta sintetizada", func(t *testing.T) {
		assert.Equal(t, "Pregunta 0", Label(entities.TipoPareja, -1))
	})

	t.Run("tipo desconocido siempre sintetiza", func(t *testing.T) {
		assert.Equal(t, "Pregunta 1", Label("desconocido", 0))
	})
}
