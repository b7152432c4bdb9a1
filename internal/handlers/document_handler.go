package handlers

import (
	"fmt"
	"net/http"

	"stagecraft-crm/config"
	"stagecraft-crm/models"

	"github.com/gin-gonic/gin"
)

var documentStatuses = map[string]bool{"draft": true, "final": true, "sent": true, "signed": true}

// ListGeneratedDocumentsHandler returns generated documents, filterable by
// event, client, type and status.
func ListGeneratedDocumentsHandler(c *gin.Context) {
	query := config.DB.Model(&models.GeneratedDocument{}).Preload("Template")

	if eventID := c.Query("event_id"); eventID != "" {
		query = query.Where("event_id = ?", eventID)
	}
	if clientID := c.Query("client_id"); clientID != "" {
		query = query.Where("client_id = ?", clientID)
	}
	if docType := c.Query("type"); docType != "" {
		query = query.Where("type = ?", docType)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var totalRows int64
	if err := query.Count(&totalRows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not count documents"})
		return
	}

	var docs []models.GeneratedDocument
	if err := query.Scopes(Paginate(c)).Order("created_at desc").Find(&docs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch documents"})
		return
	}
	if docs == nil {
		docs = make([]models.GeneratedDocument, 0)
	}

	c.JSON(http.StatusOK, CreatePaginatedResponse(c, docs, totalRows))
}

func GetGeneratedDocumentHandler(c *gin.Context) {
	var doc models.GeneratedDocument
	if err := config.DB.Preload("Template").First(&doc, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}
	c.JSON(http.StatusOK, doc)
}

type documentStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// UpdateGeneratedDocumentStatusHandler moves the informational lifecycle tag.
// Content and values stay frozen; the status is the only mutable field.
func UpdateGeneratedDocumentStatusHandler(c *gin.Context) {
	var doc models.GeneratedDocument
	if err := config.DB.First(&doc, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	var input documentStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !documentStatuses[input.Status] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be one of draft, final, sent, signed"})
		return
	}

	doc.Status = input.Status
	if err := config.DB.Save(&doc).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update document status"})
		return
	}
	c.JSON(http.StatusOK, doc)
}

// DownloadGeneratedDocumentHandler streams the rendered text as a file.
func DownloadGeneratedDocumentHandler(c *gin.Context) {
	var doc models.GeneratedDocument
	if err := config.DB.First(&doc, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	fileName := fmt.Sprintf("%s.txt", sanitizeFileName(doc.Name))
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(doc.Content))
}

func DeleteGeneratedDocumentHandler(c *gin.Context) {
	var doc models.GeneratedDocument
	if err := config.DB.First(&doc, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}
	if err := config.DB.Delete(&doc).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete document"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Document deleted successfully"})
}
