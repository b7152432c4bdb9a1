package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"stagecraft-crm/config"
	"stagecraft-crm/internal/research"
	"stagecraft-crm/models"

	"github.com/gin-gonic/gin"
	"github.com/google/generative-ai-go/genai"
)

type researchInput struct {
	Query    string `json:"query" binding:"required"`
	Category string `json:"category"`
}

// eventContextLine summarises the event for the research prompt.
func eventContextLine(event *models.Event) string {
	var parts []string
	parts = append(parts, fmt.Sprintf("Event: %s", event.Name))
	if event.EventType != "" {
		parts = append(parts, "Type: "+event.EventType)
	}
	var location []string
	for _, piece := range []string{event.LocationName, event.LocationCity, event.LocationState} {
		if piece != "" {
			location = append(location, piece)
		}
	}
	if len(location) > 0 {
		parts = append(parts, "Location: "+strings.Join(location, ", "))
	}
	if event.EventStartDate != nil {
		parts = append(parts, "Date: "+event.EventStartDate.Format("2006-01-02"))
	}
	if event.Client != nil && event.Client.Name != "" {
		parts = append(parts, "Client: "+event.Client.Name)
	}
	return strings.Join(parts, ". ")
}

// RunResearchHandler asks the AI model for vendor candidates and saves the
// result. An unparseable model response degrades to a summary-only result
// rather than failing the request.
func RunResearchHandler(c *gin.Context) {
	if config.GeminiClient == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI research is not configured"})
		return
	}

	var event models.Event
	if err := config.DB.Preload("Client").First(&event, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	var input researchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prompt := research.BuildPrompt(input.Query, input.Category, eventContextLine(&event))

	ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
	defer cancel()

	resp, err := config.GeminiClient.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		slog.Error("AI research request failed", "event_id", event.ID, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "AI research request failed"})
		return
	}

	var rawText string
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if txt, ok := part.(genai.Text); ok {
				rawText += string(txt)
			}
		}
	}
	if rawText == "" {
		c.JSON(http.StatusBadGateway, gin.H{"error": "AI returned an empty response"})
		return
	}

	payload := research.ParsePayload(rawText)

	resultsJSON, err := json.Marshal(payload)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode research results"})
		return
	}

	saved := models.ResearchResult{
		EventID:  &event.ID,
		Query:    input.Query,
		Category: input.Category,
		Results:  models.JSONPayload(resultsJSON),
		Sources:  models.StringList(payload.Sources),
	}
	if err := config.DB.Create(&saved).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save research result"})
		return
	}

	GlobalHub.BroadcastResearchComplete(&saved, len(payload.Results))
	c.JSON(http.StatusCreated, saved)
}

func ListResearchResultsHandler(c *gin.Context) {
	var results []models.ResearchResult
	if err := config.DB.Where("event_id = ?", c.Param("id")).
		Order("created_at desc").
		Find(&results).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch research results"})
		return
	}
	c.JSON(http.StatusOK, results)
}

func GetResearchResultHandler(c *gin.Context) {
	var result models.ResearchResult
	if err := config.DB.First(&result, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Research result not found"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// DeleteResearchResultHandler removes a saved result. Vendors already
// imported from it keep their reference and are not touched.
func DeleteResearchResultHandler(c *gin.Context) {
	var result models.ResearchResult
	if err := config.DB.First(&result, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Research result not found"})
		return
	}
	if err := config.DB.Delete(&result).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete research result"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Research result deleted successfully"})
}
