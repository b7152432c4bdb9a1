package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"stagecraft-crm/config"
	"stagecraft-crm/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func uploadDir() string {
	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "./uploads"
	}
	return dir
}

// ListEventFilesHandler returns the attachments on an event.
func ListEventFilesHandler(c *gin.Context) {
	var files []models.EventFile
	if err := config.DB.Where("event_id = ?", c.Param("id")).Order("created_at desc").Find(&files).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch files"})
		return
	}
	if files == nil {
		files = make([]models.EventFile, 0)
	}
	c.JSON(http.StatusOK, files)
}

// UploadEventFileHandler stores a multipart upload under UPLOAD_DIR/<event>/
// with a uuid-prefixed name and records it against the event.
func UploadEventFileHandler(c *gin.Context) {
	var event models.Event
	if err := config.DB.First(&event, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}

	dir := filepath.Join(uploadDir(), fmt.Sprintf("event_%d", event.ID))
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		os.MkdirAll(dir, os.ModePerm)
	}

	storedName := fmt.Sprintf("%s_%s", uuid.NewString(), sanitizeFileName(file.Filename))
	storagePath := filepath.Join(dir, storedName)
	if err := c.SaveUploadedFile(file, storagePath); err != nil {
		slog.Error("failed to store upload", "path", storagePath, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
		return
	}

	var uploadedBy *uint
	if userID, err := getUserIDFromContext(c); err == nil {
		uploadedBy = &userID
	}

	record := models.EventFile{
		EventID:     event.ID,
		FileName:    file.Filename,
		StoragePath: storagePath,
		FileSize:    file.Size,
		FileType:    file.Header.Get("Content-Type"),
		Category:    c.PostForm("category"),
		UploadedBy:  uploadedBy,
	}
	if err := config.DB.Create(&record).Error; err != nil {
		os.Remove(storagePath)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record file in DB"})
		return
	}

	c.JSON(http.StatusCreated, record)
}

// DownloadEventFileHandler streams a stored attachment back under its
// original name.
func DownloadEventFileHandler(c *gin.Context) {
	var record models.EventFile
	if err := config.DB.First(&record, c.Param("fileId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}
	c.FileAttachment(record.StoragePath, record.FileName)
}

// DeleteEventFileHandler removes the record and the blob on disk.
func DeleteEventFileHandler(c *gin.Context) {
	var record models.EventFile
	if err := config.DB.First(&record, c.Param("fileId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}

	if record.StoragePath != "" {
		if err := os.Remove(record.StoragePath); err != nil && !os.IsNotExist(err) {
			slog.Warn("failed to remove stored file", "path", record.StoragePath, "error", err)
		}
	}

	if err := config.DB.Delete(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete file"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "File deleted successfully"})
}
