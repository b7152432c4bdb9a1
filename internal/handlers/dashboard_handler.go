package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"stagecraft-crm/config"
	"stagecraft-crm/models"

	"github.com/gin-gonic/gin"
)

const dashboardCacheKey = "dashboard:summary"

type dashboardSummary struct {
	Clients          int64            `json:"clients"`
	Contractors      int64            `json:"contractors"`
	ActiveEvents     int64            `json:"activeEvents"`
	OpenTasks        int64            `json:"openTasks"`
	UpcomingEvents   []models.Event   `json:"upcomingEvents"`
	UpcomingMeetings []models.Meeting `json:"upcomingMeetings"`
	GeneratedAt      time.Time        `json:"generatedAt"`
}

// GetDashboardHandler returns headline counts and the next week of activity.
// The payload is cached in Redis for a minute when Redis is available.
func GetDashboardHandler(c *gin.Context) {
	if config.RDB != nil {
		if cached, err := config.RDB.Get(config.Ctx, dashboardCacheKey).Result(); err == nil {
			var summary dashboardSummary
			if json.Unmarshal([]byte(cached), &summary) == nil {
				c.JSON(http.StatusOK, summary)
				return
			}
		}
	}

	var summary dashboardSummary
	summary.GeneratedAt = time.Now()

	config.DB.Model(&models.Client{}).Count(&summary.Clients)
	config.DB.Model(&models.Contractor{}).Count(&summary.Contractors)
	config.DB.Model(&models.Event{}).
		Where("status IN ?", []string{"planning", "confirmed", "in_progress"}).
		Count(&summary.ActiveEvents)
	config.DB.Model(&models.Task{}).
		Where("status <> ?", "done").
		Count(&summary.OpenTasks)

	now := time.Now()
	weekOut := now.AddDate(0, 0, 7)

	if err := config.DB.Preload("Client").
		Where("event_start_date BETWEEN ? AND ?", now, weekOut).
		Order("event_start_date asc").
		Limit(10).
		Find(&summary.UpcomingEvents).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not build dashboard"})
		return
	}
	if err := config.DB.
		Where("start_time BETWEEN ? AND ?", now, weekOut).
		Order("start_time asc").
		Limit(10).
		Find(&summary.UpcomingMeetings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not build dashboard"})
		return
	}

	if config.RDB != nil {
		if data, err := json.Marshal(summary); err == nil {
			config.RDB.Set(config.Ctx, dashboardCacheKey, data, time.Minute)
		}
	}

	c.JSON(http.StatusOK, summary)
}
