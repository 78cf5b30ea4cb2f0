package usecases

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mentesana/cuestionarios-api/internal/domain/answers"
	"github.com/mentesana/cuestionarios-api/internal/domain/entities"
)

func fullInfoJSON(t *testing.T) string {
	t.Helper()
	info := answers.PersonalInfo{
		Nombre:            "Ana",
		Apellidos:         "García",
		Edad:              "34",
		Genero:            "Femenino",
		Correo:            "ana@x.com",
		OrientacionSexual: "Heterosexual",
	}
	raw, err := json.Marshal(info)
	require.NoError(t, err)
	return string(raw)
}

func seedRow(t *testing.T, db *gorm.DB, userID, personalInfo, answersJSON string) entities.Questionnaire {
	t.Helper()
	q := entities.Questionnaire{
		Tipo:         entities.TipoPareja,
		UserID:       userID,
		PersonalInfo: personalInfo,
		Answers:      answersJSON,
		Status:       entities.StatusPending,
	}
	require.NoError(t, db.Create(&q).Error)
	return q
}

func TestRepairFix(t *testing.T) {
	db := setupTestDB(t)
	admin := seedAdmin(t, db)
	repair := newRepairUseCase(db)

	info := fullInfoJSON(t)

	// 8 filas sanas y 2 con respuestas corruptas
	clean := make([]entities.Questionnaire, 0, 8)
	for i := 0; i < 8; i++ {
		clean = append(clean, seedRow(t, db, admin.UserID, info, `{"0":"Bien","1":"Mal"}`))
	}
	bad1 := seedRow(t, db, admin.UserID, info, `{"0":"[object Object]"}`)
	bad2 := seedRow(t, db, admin.UserID, info, `{"0":"Bien","3":"x [object Object] y"}`)

	report, err := repair.Fix(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 10, report.Scanned)
	assert.Equal(t, 2, report.Repaired)
	assert.Equal(t, 8, report.Untouched)
	assert.Equal(t, 0, report.Deleted)
	assert.Equal(t, 0, report.Failed)
	assert.Equal(t, []uint{bad1.ID, bad2.ID}, report.AffectedIDs)

	// Las filas corruptas quedan con el centinela
	var fixed entities.Questionnaire
	require.NoError(t, db.First(&fixed, bad1.ID).Error)
	assert.NotContains(t, fixed.Answers, "[object Object]")
	assert.Contains(t, fixed.Answers, answers.RespuestaInvalida)

	// Las filas sanas quedan byte a byte como estaban, sin refrescar updated_at
	for _, c := range clean {
		var got entities.Questionnaire
		require.NoError(t, db.First(&got, c.ID).Error)
		assert.Equal(t, c.Answers, got.Answers)
		assert.Equal(t, c.PersonalInfo, got.PersonalInfo)
		assert.True(t, got.UpdatedAt.Equal(c.UpdatedAt))
	}
}

func TestRepairClean(t *testing.T) {
	db := setupTestDB(t)
	admin := seedAdmin(t, db)
	repair := newRepairUseCase(db)

	info := fullInfoJSON(t)

	seedRow(t, db, admin.UserID, info, `{"0":"Bien"}`)
	bad := seedRow(t, db, admin.UserID, info, `{"0":"[object Object]"}`)

	report, err := repair.Clean(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, report.Scanned)
	assert.Equal(t, 1, report.Deleted)
	assert.Equal(t, 0, report.Repaired)
	assert.Equal(t, 1, report.Untouched)
	assert.Equal(t, []uint{bad.ID}, report.AffectedIDs)

	// La fila corrupta desaparece físicamente
	var count int64
	db.Model(&entities.Questionnaire{}).Count(&count)
	assert.EqualValues(t, 1, count)

	err = db.First(&entities.Questionnaire{}, bad.ID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepair_LegacyShapes(t *testing.T) {
	t.Run("respuestas con forma de objeto se normalizan sin borrar", func(t *testing.T) {
		db := setupTestDB(t)
		admin := seedAdmin(t, db)
		repair := newRepairUseCase(db)

		row := seedRow(t, db, admin.UserID, fullInfoJSON(t), `{"0":{"answer":{"answer":"Sí, mucho"}},"1":{"value":"Nunca"}}`)

		// Sin marca de corrupción, clean tampoco borra: solo repara
		report, err := repair.Clean(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, report.Repaired)
		assert.Equal(t, 0, report.Deleted)

		var got entities.Questionnaire
		require.NoError(t, db.First(&got, row.ID).Error)

		var stored map[string]string
		require.NoError(t, json.Unmarshal([]byte(got.Answers), &stored))
		assert.Equal(t, map[string]string{"0": "Sí, mucho", "1": "Nunca"}, stored)
	})

	t.Run("personal_info roto se sustituye por el registro por defecto", func(t *testing.T) {
		db := setupTestDB(t)
		admin := seedAdmin(t, db)
		repair := newRepairUseCase(db)

		row := seedRow(t, db, admin.UserID, `{esto no es json`, `{"0":"Bien"}`)

		report, err := repair.Fix(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, report.Repaired)

		var got entities.Questionnaire
		require.NoError(t, db.First(&got, row.ID).Error)

		var info answers.PersonalInfo
		require.NoError(t, json.Unmarshal([]byte(got.PersonalInfo), &info))
		assert.Equal(t, answers.DefaultPersonalInfo(), info)
	})

	t.Run("respuestas irreparables se sustituyen por el mapa vacío", func(t *testing.T) {
		db := setupTestDB(t)
		admin := seedAdmin(t, db)
		repair := newRepairUseCase(db)

		row := seedRow(t, db, admin.UserID, fullInfoJSON(t), `no-json`)

		report, err := repair.Fix(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, report.Repaired)

		var got entities.Questionnaire
		require.NoError(t, db.First(&got, row.ID).Error)
		assert.JSONEq(t, `{}`, got.Answers)
	})

	t.Run("campos parciales se completan solo donde faltan", func(t *testing.T) {
		db := setupTestDB(t)
		admin := seedAdmin(t, db)
		repair := newRepairUseCase(db)

		row := seedRow(t, db, admin.UserID, `{"nombre":"Ana","correo":"ana@x.com"}`, `{"0":"Bien"}`)

		_, err := repair.Fix(context.Background())
		require.NoError(t, err)

		var got entities.Questionnaire
		require.NoError(t, db.First(&got, row.ID).Error)

		var info answers.PersonalInfo
		require.NoError(t, json.Unmarshal([]byte(got.PersonalInfo), &info))
		assert.Equal(t, "Ana", info.Nombre)
		assert.Equal(t, "ana@x.com", info.Correo)
		assert.Equal(t, "Desconocido", info.Apellidos)
		assert.Equal(t, "N/A", info.Genero)
	})
}
