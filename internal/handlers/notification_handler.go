package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
	"github.com/BruksfildServices01/studio-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/studio-scheduler/internal/notify"
)

// Superfície operacional da fila de notificações: inspeção, reset de
// tarefas failed e expurgo de tarefas terminais antigas.
type NotificationHandler struct {
	queue         *notify.Queue
	retentionDays int
}

func NewNotificationHandler(queue *notify.Queue, retentionDays int) *NotificationHandler {
	return &NotificationHandler{
		queue:         queue,
		retentionDays: retentionDays,
	}
}

func (h *NotificationHandler) List(c *gin.Context) {
	status := c.Query("status")
	switch status {
	case "", notify.StatusPending, notify.StatusSent, notify.StatusFailed:
		// ok
	default:
		httperr.BadRequest(c, "invalid_status", "Status de notificação inválido.")
		return
	}

	limit := 100
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 500 {
			httperr.BadRequest(c, "invalid_limit", "Limite inválido.")
			return
		}
		limit = n
	}

	tasks, err := h.queue.ListByStatus(c.Request.Context(), status, limit)
	if err != nil {
		httperr.Internal(c, "failed_to_list_notifications", "Erro ao listar notificações.")
		return
	}

	httpresp.List(c, tasks)
}

func (h *NotificationHandler) ResetFailed(c *gin.Context) {
	reset, err := h.queue.ResetFailed(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_reset_notifications", "Erro ao reenfileirar notificações.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"reset": reset})
}

type PurgeRequest struct {
	Days int `json:"days"`
}

func (h *NotificationHandler) Purge(c *gin.Context) {
	var req PurgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	days := req.Days
	if days <= 0 {
		days = h.retentionDays
	}

	cutoff := time.Now().AddDate(0, 0, -days)

	purged, err := h.queue.PurgeOlderThan(c.Request.Context(), cutoff)
	if err != nil {
		httperr.Internal(c, "failed_to_purge_notifications", "Erro ao expurgar notificações.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"purged": purged})
}
