package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/studio-scheduler/internal/models"
)

type ScheduleHandler struct {
	db *gorm.DB
}

func NewScheduleHandler(db *gorm.DB) *ScheduleHandler {
	return &ScheduleHandler{db: db}
}

type ScheduleDayConfig struct {
	Weekday      int    `json:"weekday" binding:"min=0,max=6"`
	IsWorkingDay bool   `json:"is_working_day"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
}

type ScheduleUpdateRequest struct {
	Days []ScheduleDayConfig `json:"days" binding:"required"`
}

func (h *ScheduleHandler) Get(c *gin.Context) {
	var days []models.ScheduleDay
	if err := h.db.
		Order("weekday ASC").
		Find(&days).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_schedule"})
		return
	}

	c.JSON(http.StatusOK, days)
}

// Update substitui o expediente inteiro: exatamente 7 dias, um por weekday.
func (h *ScheduleHandler) Update(c *gin.Context) {
	var req ScheduleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if len(req.Days) != 7 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "schedule_must_have_seven_days"})
		return
	}

	seen := map[int]bool{}
	for _, d := range req.Days {
		if seen[d.Weekday] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "duplicated_weekday"})
			return
		}
		seen[d.Weekday] = true

		if d.IsWorkingDay {
			if !isValidTimeWindow(d.StartTime, d.EndTime) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_working_hours"})
				return
			}
		}
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		for _, d := range req.Days {
			values := map[string]any{
				"is_working_day": d.IsWorkingDay,
				"start_time":     d.StartTime,
				"end_time":       d.EndTime,
			}
			if err := tx.Model(&models.ScheduleDay{}).
				Where("weekday = ?", d.Weekday).
				Updates(values).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_schedule"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func isValidTimeWindow(startHM, endHM string) bool {
	start, errS := time.Parse("15:04", startHM)
	end, errE := time.Parse("15:04", endHM)
	return errS == nil && errE == nil && start.Before(end)
}
