package usecases

import (
	"context"
	"encoding/json"
	"log"
	"sort"
	"sync"

	"github.com/mentesana/cuestionarios-api/internal/domain/answers"
	"github.com/mentesana/cuestionarios-api/internal/domain/entities"
	"github.com/mentesana/cuestionarios-api/internal/domain/repositories"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/errgroup"
)

// repairWorkers limita cuántas filas se reparan en paralelo
const repairWorkers = 8

// RepairReport es el resultado observable de un barrido de reparación
type RepairReport struct {
	Scanned     int    `json:"scanned"`
	Repaired    int    `json:"repaired"`
	Deleted     int    `json:"deleted"`
	Untouched   int    `json:"untouched"`
	Failed      int    `json:"failed"`
	AffectedIDs []uint `json:"affected_ids"`
}

// RepairUseCase implementa el barrido de mantenimiento sobre los
// cuestionarios almacenados. Existen dos políticas con implicaciones de
// pérdida de datos distintas, expuestas como operaciones separadas:
//
//   - Fix: sustituye las respuestas corruptas por el centinela y conserva la fila.
//   - Clean: elimina la fila completa cuando contiene corrupción irrecuperable.
type RepairUseCase struct {
	repo  *repositories.QuestionnaireRepository
	cache *gocache.Cache
}

// NewRepairUseCase crea una nueva instancia de RepairUseCase
func NewRepairUseCase(repo *repositories.QuestionnaireRepository, cache *gocache.Cache) *RepairUseCase {
	return &RepairUseCase{
		repo:  repo,
		cache: cache,
	}
}

// Fix repara todas las filas sustituyendo valores corruptos por centinelas
func (u *RepairUseCase) Fix(ctx context.Context) (RepairReport, error) {
	return u.run(ctx, false)
}

// Clean repara las filas reparables y elimina las que contienen corrupción
func (u *RepairUseCase) Clean(ctx context.Context) (RepairReport, error) {
	return u.run(ctx, true)
}

func (u *RepairUseCase) run(ctx context.Context, deleteCorrupted bool) (RepairReport, error) {
	rows, err := u.repo.GetAll()
	if err != nil {
		return RepairReport{}, err
	}

	var mu sync.Mutex
	report := RepairReport{Scanned: len(rows)}

	// Cada fila es una unidad de trabajo independiente: un fallo se registra
	// y no detiene el resto del barrido.
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(repairWorkers)

	for i := range rows {
		row := rows[i]
		g.Go(func() error {
			outcome, err := u.repairRow(row, deleteCorrupted)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.Printf("⚠️ Error reparando cuestionario %d: %v", row.ID, err)
				report.Failed++
				return nil
			}
			switch outcome {
			case rowDeleted:
				report.Deleted++
				report.AffectedIDs = append(report.AffectedIDs, row.ID)
			case rowRepaired:
				report.Repaired++
				report.AffectedIDs = append(report.AffectedIDs, row.ID)
			case rowUntouched:
				report.Untouched++
			}
			return nil
		})
	}

	_ = g.Wait()

	sort.Slice(report.AffectedIDs, func(i, j int) bool {
		return report.AffectedIDs[i] < report.AffectedIDs[j]
	})

	if report.Repaired > 0 || report.Deleted > 0 {
		u.cache.Flush()
	}

	return report, nil
}

type rowOutcome int

const (
	rowUntouched rowOutcome = iota
	rowRepaired
	rowDeleted
)

// repairRow aplica a una fila las mismas reglas de defaulting y normalización
// que el intake. Las filas sin cambios no se reescriben, de modo que su
// updated_at queda intacto.
func (u *RepairUseCase) repairRow(q entities.Questionnaire, deleteCorrupted bool) (rowOutcome, error) {
	dirty := false

	info, repaired := answers.ParsePersonalInfo(q.PersonalInfo)
	if repaired {
		dirty = true
	}

	raw, parsed := answers.ParseAnswers(q.Answers)
	if !parsed {
		dirty = true
	}

	corrupted := false
	normalized := make(map[string]string, len(raw))
	for key, value := range raw {
		if answers.ValueCorrupted(value) {
			corrupted = true
		}
		clean := answers.Normalize(value)
		if s, ok := value.(string); !ok || s != clean {
			dirty = true
		}
		normalized[key] = clean
	}

	if corrupted && deleteCorrupted {
		if err := u.repo.Delete(q.ID); err != nil {
			return rowUntouched, err
		}
		return rowDeleted, nil
	}

	if !dirty {
		return rowUntouched, nil
	}

	infoJSON, err := json.Marshal(info)
	if err != nil {
		return rowUntouched, err
	}
	answersJSON, err := json.Marshal(normalized)
	if err != nil {
		return rowUntouched, err
	}

	q.PersonalInfo = string(infoJSON)
	q.Answers = string(answersJSON)
	if err := u.repo.Update(&q); err != nil {
		return rowUntouched, err
	}
	return rowRepaired, nil
}
