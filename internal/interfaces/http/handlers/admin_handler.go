package handlers

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/mentesana/cuestionarios-api/internal/application/usecases"
)

// AdminHandler atiende el panel de administración: listado, exportación y
// borrado de cuestionarios, gestión de mensajes de contacto y barridos de
// reparación.
type AdminHandler struct {
	questionnaires *usecases.QuestionnaireUseCase
	contacts       *usecases.ContactUseCase
	repair         *usecases.RepairUseCase
}

// NewAdminHandler crea una nueva instancia de AdminHandler
func NewAdminHandler(q *usecases.QuestionnaireUseCase, c *usecases.ContactUseCase, r *usecases.RepairUseCase) *AdminHandler {
	return &AdminHandler{
		questionnaires: q,
		contacts:       c,
		repair:         r,
	}
}

// ListQuestionnaires devuelve cuestionarios con filtros y paginación
func (h *AdminHandler) ListQuestionnaires(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		return c.Status(400).JSON(fiber.Map{"error": "Parámetro 'page' no válido"})
	}

	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil || limit < 1 {
		return c.Status(400).JSON(fiber.Map{"error": "Parámetro 'limit' no válido"})
	}

	tipo := c.Query("tipo", "")
	status := c.Query("status", "")
	sortBy := c.Query("sort_by", "created_at")
	sortDirection := c.Query("sort_direction", "desc")

	views, total, err := h.questionnaires.List(page, limit, tipo, status, sortBy, sortDirection)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Error al buscar cuestionarios: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"data":  views,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// GetQuestionnaire devuelve un cuestionario en forma de presentación
func (h *AdminHandler) GetQuestionnaire(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID de cuestionario no válido"})
	}

	view, err := h.questionnaires.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Cuestionario no encontrado"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Error al buscar el cuestionario"})
	}

	return c.JSON(view)
}

// DeleteQuestionnaire elimina físicamente un cuestionario
func (h *AdminHandler) DeleteQuestionnaire(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID de cuestionario no válido"})
	}

	if err := h.questionnaires.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Cuestionario no encontrado"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Error al eliminar el cuestionario"})
	}

	return c.JSON(fiber.Map{"status": "ok"})
}

// ExportQuestionnaires descarga todos los cuestionarios en CSV
func (h *AdminHandler) ExportQuestionnaires(c *fiber.Ctx) error {
	views, err := h.questionnaires.ListAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Error al exportar cuestionarios"})
	}

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	_ = w.Write([]string{"id", "tipo", "nombre", "apellidos", "correo", "status", "pregunta", "respuesta", "created_at"})
	for _, v := range views {
		for _, r := range v.Respuestas {
			rec := []string{
				strconv.FormatUint(uint64(v.ID), 10),
				v.Tipo,
				v.PersonalInfo.Nombre,
				v.PersonalInfo.Apellidos,
				v.PersonalInfo.Correo,
				v.Status,
				r.Pregunta,
				r.Respuesta,
				v.CreatedAt.Format(time.RFC3339),
			}
			if err := w.Write(rec); err != nil {
				return c.Status(500).JSON(fiber.Map{"error": "Error al generar el CSV"})
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Error al generar el CSV"})
	}

	filename := fmt.Sprintf("cuestionarios-%s.csv", time.Now().Format("2006-01-02"))
	c.Set("Content-Type", "text/csv; charset=utf-8")
	c.Set("Content-Disposition", "attachment; filename="+filename)
	return c.Send(buf.Bytes())
}

// RunRepair ejecuta el barrido de mantenimiento. El modo debe elegirse de
// forma explícita: "fix" sustituye respuestas corruptas por el centinela,
// "clean" elimina las filas con corrupción irrecuperable.
func (h *AdminHandler) RunRepair(c *fiber.Ctx) error {
	mode := c.Query("mode", "")

	var report usecases.RepairReport
	var err error

	switch mode {
	case "fix":
		report, err = h.repair.Fix(c.Context())
	case "clean":
		report, err = h.repair.Clean(c.Context())
	default:
		return c.Status(400).JSON(fiber.Map{"error": "Parámetro 'mode' obligatorio: fix o clean"})
	}

	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Error al ejecutar el barrido: " + err.Error()})
	}

	return c.JSON(report)
}

// ListContacts devuelve mensajes de contacto con filtro por estado
func (h *AdminHandler) ListContacts(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		return c.Status(400).JSON(fiber.Map{"error": "Parámetro 'page' no válido"})
	}

	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil || limit < 1 {
		return c.Status(400).JSON(fiber.Map{"error": "Parámetro 'limit' no válido"})
	}

	status := c.Query("status", "")

	msgs, total, err := h.contacts.List(page, limit, status)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Error al buscar mensajes: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"data":  msgs,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

type contactStatusRequest struct {
	Status string `json:"status"`
}

// UpdateContactStatus cambia el estado de un mensaje de contacto
func (h *AdminHandler) UpdateContactStatus(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID de mensaje no válido"})
	}

	var req contactStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Cuerpo de la petición no válido"})
	}

	if err := h.contacts.MarkStatus(id, req.Status); err != nil {
		switch {
		case errors.Is(err, usecases.ErrInvalidStatus):
			return c.Status(400).JSON(fiber.Map{"error": "Estado no válido"})
		case errors.Is(err, gorm.ErrRecordNotFound):
			return c.Status(404).JSON(fiber.Map{"error": "Mensaje no encontrado"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Error al actualizar el mensaje"})
	}

	return c.JSON(fiber.Map{"status": "ok"})
}

// DeleteContact elimina físicamente un mensaje de contacto
func (h *AdminHandler) DeleteContact(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "ID de mensaje no válido"})
	}

	if err := h.contacts.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Mensaje no encontrado"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Error al eliminar el mensaje"})
	}

	return c.JSON(fiber.Map{"status": "ok"})
}
