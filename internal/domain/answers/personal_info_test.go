package answers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonalInfo_Complete(t *testing.T) {
	t.Run("rellena solo los campos ausentes", func(t *testing.T) {
		p := PersonalInfo{Nombre: "Ana", Correo: "ana@x.com"}
		out, changed := p.Complete()

		assert.True(t, changed)
		assert.Equal(t, PersonalInfo{
			Nombre:            "Ana",
			Apellidos:         "Desconocido",
			Edad:              "N/A",
			Genero:            "N/A",
			Correo:            "ana@x.com",
			OrientacionSexual: "N/A",
		}, out)
	})

	t.Run("registro completo queda intacto", func(t *testing.T) {
		p := PersonalInfo{
			Nombre:            "Ana",
			Apellidos:         "García",
			Edad:              "34",
			Genero:            "Femenino",
			Correo:            "ana@x.com",
			OrientacionSexual: "Heterosexual",
		}
		out, changed := p.Complete()
		assert.False(t, changed)
		assert.Equal(t, p, out)
	})

	t.Run("registro vacío recibe todos los valores por defecto", func(t *testing.T) {
		out, changed := PersonalInfo{}.Complete()
		assert.True(t, changed)
		assert.Equal(t, DefaultPersonalInfo(), out)
	})

	t.Run("espacios en blanco cuentan como vacío", func(t *testing.T) {
		p := PersonalInfo{Nombre: "   "}
		out, changed := p.Complete()
		assert.True(t, changed)
		assert.Equal(t, "Usuario", out.Nombre)
	})

	t.Run("ningún subconjunto deja campos vacíos", func(t *testing.T) {
		// Todos los subconjuntos de campos presentes producen un registro completo
		for mask := 0; mask < 64; mask++ {
			p := PersonalInfo{}
			if mask&1 != 0 {
				p.Nombre = "Ana"
			}
			if mask&2 != 0 {
				p.Apellidos = "García"
			}
			if mask&4 != 0 {
				p.Edad = "34"
			}
			if mask&8 != 0 {
				p.Genero = "Femenino"
			}
			if mask&16 != 0 {
				p.Correo = "ana@x.com"
			}
			if mask&32 != 0 {
				p.OrientacionSexual = "Heterosexual"
			}

			out, _ := p.Complete()
			assert.NotEmpty(t, out.Nombre)
			assert.NotEmpty(t, out.Apellidos)
			assert.NotEmpty(t, out.Edad)
			assert.NotEmpty(t, out.Genero)
			assert.NotEmpty(t, out.Correo)
			assert.NotEmpty(t, out.OrientacionSexual)
		}
	})
}

func TestParsePersonalInfo(t *testing.T) {
	t.Run("JSON válido con campos parciales", func(t *testing.T) {
		raw, err := json.Marshal(map[string]string{"nombre": "Ana"})
		require.NoError(t, err)

		out, repaired := ParsePersonalInfo(string(raw))
		assert.True(t, repaired)
		assert.Equal(t, "Ana", out.Nombre)
		assert.Equal(t, "Desconocido", out.Apellidos)
	})

	t.Run("JSON roto sustituye por el registro por defecto", func(t *testing.T) {
		out, repaired := ParsePersonalInfo(`{"nombre":`)
		assert.True(t, repaired)
		assert.Equal(t, DefaultPersonalInfo(), out)
	})

	t.Run("texto vacío sustituye por el registro por defecto", func(t *testing.T) {
		out, repaired := ParsePersonalInfo("")
		assert.True(t, repaired)
		assert.Equal(t, DefaultPersonalInfo(), out)
	})

	t.Run("registro completo no se marca como reparado", func(t *testing.T) {
		full := PersonalInfo{
			Nombre:            "Ana",
			Apellidos:         "García",
			Edad:              "34",
			Genero:            "Femenino",
			Correo:            "ana@x.com",
			OrientacionSexual: "Heterosexual",
		}
		raw, err := json.Marshal(full)
		require.NoError(t, err)

		out, repaired := ParsePersonalInfo(string(raw))
		assert.False(t, repaired)
		assert.Equal(t, full, out)
	})
}
