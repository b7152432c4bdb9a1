package handlers

import (
	"net/http"
	"strings"
	"time"

	"stagecraft-crm/config"
	"stagecraft-crm/models"

	"github.com/gin-gonic/gin"
)

// ListMeetingsHandler returns meetings, filterable by event and by a
// from/to window for the calendar grid.
func ListMeetingsHandler(c *gin.Context) {
	query := config.DB.Model(&models.Meeting{})

	if eventID := c.Query("event_id"); eventID != "" {
		query = query.Where("event_id = ?", eventID)
	}
	if from := c.Query("from"); from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			query = query.Where("start_time >= ?", t)
		}
	}
	if to := c.Query("to"); to != "" {
		if t, err := time.Parse("2006-01-02", to); err == nil {
			// Window end is inclusive of the whole day.
			query = query.Where("start_time < ?", t.AddDate(0, 0, 1))
		}
	}

	var meetings []models.Meeting
	if err := query.Order("start_time asc").Find(&meetings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch meetings"})
		return
	}
	if meetings == nil {
		meetings = make([]models.Meeting, 0)
	}
	c.JSON(http.StatusOK, meetings)
}

func GetMeetingHandler(c *gin.Context) {
	var meeting models.Meeting
	if err := config.DB.First(&meeting, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meeting not found"})
		return
	}
	c.JSON(http.StatusOK, meeting)
}

func CreateMeetingHandler(c *gin.Context) {
	var meeting models.Meeting
	if err := c.ShouldBindJSON(&meeting); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(meeting.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Meeting title is required"})
		return
	}
	if !meeting.EndTime.After(meeting.StartTime) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Meeting must end after it starts"})
		return
	}
	if err := config.DB.Create(&meeting).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create meeting"})
		return
	}
	c.JSON(http.StatusCreated, meeting)
}

func UpdateMeetingHandler(c *gin.Context) {
	var meeting models.Meeting
	if err := config.DB.First(&meeting, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meeting not found"})
		return
	}

	var input models.Meeting
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !input.EndTime.After(input.StartTime) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Meeting must end after it starts"})
		return
	}

	meeting.Title = input.Title
	meeting.MeetingType = input.MeetingType
	meeting.StartTime = input.StartTime
	meeting.EndTime = input.EndTime
	meeting.Location = input.Location
	meeting.AttendeeEmails = input.AttendeeEmails
	meeting.Description = input.Description
	meeting.Notes = input.Notes

	if err := config.DB.Save(&meeting).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update meeting"})
		return
	}
	c.JSON(http.StatusOK, meeting)
}

func DeleteMeetingHandler(c *gin.Context) {
	var meeting models.Meeting
	if err := config.DB.First(&meeting, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meeting not found"})
		return
	}
	if err := config.DB.Delete(&meeting).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete meeting"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meeting deleted successfully"})
}
