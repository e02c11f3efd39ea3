package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/studio-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/studio-scheduler/internal/history"
	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
	"github.com/BruksfildServices01/studio-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/studio-scheduler/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/studio-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER (equipe)
// ======================================================

type AppointmentHandler struct {
	transition  *ucAppointment.TransitionStatus
	listByDate  *ucAppointment.ListAppointmentsByDate
	listByMonth *ucAppointment.ListAppointmentsByMonth
	ledger      *history.Ledger
	tz          string
}

func NewAppointmentHandler(
	transition *ucAppointment.TransitionStatus,
	listByDate *ucAppointment.ListAppointmentsByDate,
	listByMonth *ucAppointment.ListAppointmentsByMonth,
	ledger *history.Ledger,
	tz string,
) *AppointmentHandler {
	return &AppointmentHandler{
		transition:  transition,
		listByDate:  listByDate,
		listByMonth: listByMonth,
		ledger:      ledger,
		tz:          tz,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type TransitionRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason"`
	Notes  string `json:"notes"`
}

// ======================================================
// TRANSIÇÃO DE STATUS
// ======================================================

func (h *AppointmentHandler) Transition(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.transition.Execute(
		c.Request.Context(),
		uint(id),
		domain.Status(req.Status),
		req.Reason,
		req.Notes,
		domain.ActorAdmin,
	)
	if err != nil {
		respondBusiness(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// LISTAGENS
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		dateStr = timezone.Today(h.tz)
	}

	if _, err := timezone.ParseDate(h.tz, dateStr); err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	out, err := h.listByDate.Execute(c.Request.Context(), dateStr)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, out)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	year, errY := strconv.Atoi(c.Query("year"))
	month, errM := strconv.Atoi(c.Query("month"))
	if errY != nil || errM != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Ano ou mês inválido.")
		return
	}

	out, err := h.listByMonth.Execute(c.Request.Context(), year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, out)
}

// ======================================================
// HISTÓRICO
// ======================================================

func (h *AppointmentHandler) History(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	entries, err := h.ledger.ListForAppointment(c.Request.Context(), uint(id))
	if err != nil {
		httperr.Internal(c, "failed_to_list_history", "Erro ao listar histórico.")
		return
	}

	httpresp.List(c, entries)
}
