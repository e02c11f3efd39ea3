package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
	"github.com/BruksfildServices01/studio-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/studio-scheduler/internal/models"
)

type BlockedDateHandler struct {
	db *gorm.DB
}

func NewBlockedDateHandler(db *gorm.DB) *BlockedDateHandler {
	return &BlockedDateHandler{db: db}
}

type BlockedDateRequest struct {
	Date   string `json:"date" binding:"required"` // YYYY-MM-DD
	Reason string `json:"reason" binding:"required"`
}

func (h *BlockedDateHandler) List(c *gin.Context) {
	var dates []models.BlockedDate
	if err := h.db.
		Order("date ASC").
		Find(&dates).Error; err != nil {

		httperr.Internal(c, "failed_to_list_blocked_dates", "Erro ao listar datas bloqueadas.")
		return
	}

	httpresp.List(c, dates)
}

func (h *BlockedDateHandler) Create(c *gin.Context) {
	var req BlockedDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	var count int64
	h.db.Model(&models.BlockedDate{}).Where("date = ?", req.Date).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "date_already_blocked", "Essa data já está bloqueada.")
		return
	}

	blocked := models.BlockedDate{
		Date:   req.Date,
		Reason: req.Reason,
	}

	if err := h.db.Create(&blocked).Error; err != nil {
		httperr.Internal(c, "failed_to_block_date", "Erro ao bloquear data.")
		return
	}

	c.JSON(http.StatusCreated, blocked)
}

// Delete remove o bloqueio via soft delete: a data volta a aceitar reservas,
// o registro fica para auditoria.
func (h *BlockedDateHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	res := h.db.Delete(&models.BlockedDate{}, uint(id))
	if res.Error != nil {
		httperr.Internal(c, "failed_to_unblock_date", "Erro ao desbloquear data.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "blocked_date_not_found", "Bloqueio não encontrado.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
