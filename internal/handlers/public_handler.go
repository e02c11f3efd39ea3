package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
	"github.com/BruksfildServices01/studio-scheduler/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/studio-scheduler/internal/usecase/appointment"
	"github.com/BruksfildServices01/studio-scheduler/internal/validators"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	availability *ucAppointment.GetAvailability
	dates        *ucAppointment.AvailableDates
	next         *ucAppointment.NextAvailableSlot
	reserve      *ucAppointment.ReserveSlot
	getByToken   *ucAppointment.GetAppointmentByToken
	cancel       *ucAppointment.CancelByToken

	windowDays int
}

func NewPublicHandler(
	availability *ucAppointment.GetAvailability,
	dates *ucAppointment.AvailableDates,
	next *ucAppointment.NextAvailableSlot,
	reserve *ucAppointment.ReserveSlot,
	getByToken *ucAppointment.GetAppointmentByToken,
	cancel *ucAppointment.CancelByToken,
	windowDays int,
) *PublicHandler {
	return &PublicHandler{
		availability: availability,
		dates:        dates,
		next:         next,
		reserve:      reserve,
		getByToken:   getByToken,
		cancel:       cancel,
		windowDays:   windowDays,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicReserveRequest struct {
	ClientName      string `json:"client_name" binding:"required"`
	ClientPhone     string `json:"client_phone" binding:"required"`
	ClientEmail     string `json:"client_email"`
	ServiceCategory string `json:"service_category" binding:"required"`
	Date            string `json:"date" binding:"required"` // YYYY-MM-DD
	Time            string `json:"time" binding:"required"` // HH:mm
	Notes           string `json:"notes"`
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_params", "Data obrigatória.")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), dateStr)
	if err != nil {
		respondBusiness(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

func (h *PublicHandler) AvailableDates(c *gin.Context) {
	days := h.windowDays
	if v := c.Query("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > h.windowDays {
			httperr.BadRequest(c, "invalid_days", "Janela de dias inválida.")
			return
		}
		days = n
	}

	dates, err := h.dates.Execute(c.Request.Context(), days)
	if err != nil {
		respondBusiness(c, err)
		return
	}

	httpresp.List(c, dates)
}

func (h *PublicHandler) NextAvailable(c *gin.Context) {
	slot, err := h.next.Execute(c.Request.Context())
	if err != nil {
		respondBusiness(c, err)
		return
	}

	httpresp.OK(c, slot)
}

////////////////////////////////////////////////////////
// RESERVA
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	var req PublicReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.ClientEmail != "" && !validators.IsEmailDomainValid(req.ClientEmail) {
		httperr.BadRequest(c, "invalid_email_domain", "O domínio do e-mail informado não parece ser válido.")
		return
	}

	ap, err := h.reserve.Execute(c.Request.Context(), ucAppointment.ReserveSlotInput{
		ClientName:      req.ClientName,
		ClientPhone:     req.ClientPhone,
		ClientEmail:     req.ClientEmail,
		ServiceCategory: req.ServiceCategory,
		Date:            req.Date,
		Time:            req.Time,
		Notes:           req.Notes,
	})
	if err != nil {
		respondBusiness(c, err)
		return
	}

	// o token volta uma única vez, na resposta da criação
	httpresp.Created(c, gin.H{
		"id":                 ap.ID,
		"date":               ap.Date,
		"time":               ap.StartTime,
		"status":             ap.Status,
		"service_category":   ap.ServiceCategory,
		"cancellation_token": ap.CancellationToken,
	})
}

////////////////////////////////////////////////////////
// CONSULTA / CANCELAMENTO POR TOKEN
////////////////////////////////////////////////////////

func (h *PublicHandler) GetAppointment(c *gin.Context) {
	token := c.Param("token")

	ap, err := h.getByToken.Execute(c.Request.Context(), token)
	if err != nil {
		respondBusiness(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *PublicHandler) CancelAppointment(c *gin.Context) {
	token := c.Param("token")

	ap, err := h.cancel.Execute(c.Request.Context(), token)
	if err != nil {
		respondBusiness(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":   ap.Date,
		"time":   ap.StartTime,
		"status": ap.Status,
	})
}
