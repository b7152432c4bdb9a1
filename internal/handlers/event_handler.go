package handlers

import (
	"net/http"
	"strings"

	"stagecraft-crm/config"
	"stagecraft-crm/models"

	"github.com/gin-gonic/gin"
)

// ListEventsHandler returns events with optional search, status and client
// filters, paginated, most recent project start first.
func ListEventsHandler(c *gin.Context) {
	query := config.DB.Model(&models.Event{}).Preload("Client")

	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(location_city) LIKE ? OR LOWER(location_name) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if clientID := c.Query("client_id"); clientID != "" {
		query = query.Where("client_id = ?", clientID)
	}

	var totalRows int64
	if err := query.Count(&totalRows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not count events"})
		return
	}

	var events []models.Event
	if err := query.Scopes(Paginate(c)).Order("start_date desc NULLS LAST, created_at desc").Find(&events).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch events"})
		return
	}
	if events == nil {
		events = make([]models.Event, 0)
	}

	c.JSON(http.StatusOK, CreatePaginatedResponse(c, events, totalRows))
}

func GetEventHandler(c *gin.Context) {
	var event models.Event
	if err := config.DB.Preload("Client").First(&event, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}
	c.JSON(http.StatusOK, event)
}

func CreateEventHandler(c *gin.Context) {
	var event models.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(event.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Event name is required"})
		return
	}
	if event.Status == "" {
		event.Status = "planning"
	}
	if err := config.DB.Create(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
		return
	}
	c.JSON(http.StatusCreated, event)
}

func UpdateEventHandler(c *gin.Context) {
	var event models.Event
	if err := config.DB.First(&event, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	var input models.Event
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(input.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Event name is required"})
		return
	}

	event.ClientID = input.ClientID
	event.Name = input.Name
	event.EventType = input.EventType
	event.Status = input.Status
	event.Description = input.Description
	event.Notes = input.Notes
	event.StartDate = input.StartDate
	event.EndDate = input.EndDate
	event.EventStartDate = input.EventStartDate
	event.EventEndDate = input.EventEndDate
	event.LocationName = input.LocationName
	event.LocationAddress = input.LocationAddress
	event.LocationCity = input.LocationCity
	event.LocationState = input.LocationState

	if err := config.DB.Save(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event"})
		return
	}
	c.JSON(http.StatusOK, event)
}

func DeleteEventHandler(c *gin.Context) {
	var event models.Event
	if err := config.DB.First(&event, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}
	if err := config.DB.Delete(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}

// --- Event crew ---

// ListEventContractorsHandler returns the crew booked on an event.
func ListEventContractorsHandler(c *gin.Context) {
	var crew []models.EventContractor
	if err := config.DB.Preload("Contractor").
		Where("event_id = ?", c.Param("id")).
		Order("created_at asc").
		Find(&crew).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch event crew"})
		return
	}
	if crew == nil {
		crew = make([]models.EventContractor, 0)
	}
	c.JSON(http.StatusOK, crew)
}

func AddEventContractorHandler(c *gin.Context) {
	var booking models.EventContractor
	if err := c.ShouldBindJSON(&booking); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := config.DB.Create(&booking).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to book contractor"})
		return
	}
	config.DB.Preload("Contractor").First(&booking, booking.ID)
	c.JSON(http.StatusCreated, booking)
}

func RemoveEventContractorHandler(c *gin.Context) {
	var booking models.EventContractor
	if err := config.DB.First(&booking, c.Param("bookingId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}
	if err := config.DB.Delete(&booking).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove booking"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking removed"})
}
