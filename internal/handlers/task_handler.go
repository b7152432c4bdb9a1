package handlers

import (
	"net/http"
	"strings"
	"time"

	"stagecraft-crm/config"
	"stagecraft-crm/models"

	"github.com/gin-gonic/gin"
)

// ListTasksHandler returns tasks for an event, optionally filtered by status
// or assignee.
func ListTasksHandler(c *gin.Context) {
	query := config.DB.Model(&models.Task{}).Preload("Contractor").
		Where("event_id = ?", c.Param("id"))

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if contractorID := c.Query("contractor_id"); contractorID != "" {
		query = query.Where("contractor_id = ?", contractorID)
	}

	var tasks []models.Task
	if err := query.Order("due_date asc NULLS LAST, created_at asc").Find(&tasks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch tasks"})
		return
	}
	if tasks == nil {
		tasks = make([]models.Task, 0)
	}
	c.JSON(http.StatusOK, tasks)
}

func CreateTaskHandler(c *gin.Context) {
	var task models.Task
	if err := c.ShouldBindJSON(&task); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(task.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Task title is required"})
		return
	}
	if task.Status == "" {
		task.Status = "todo"
	}
	if task.Priority == "" {
		task.Priority = "medium"
	}
	if err := config.DB.Create(&task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}
	c.JSON(http.StatusCreated, task)
}

func UpdateTaskHandler(c *gin.Context) {
	var task models.Task
	if err := config.DB.First(&task, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	var input models.Task
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Stamp or clear the completion time on status flips.
	if input.Status == "done" && task.Status != "done" {
		now := time.Now()
		task.CompletedAt = &now
	} else if input.Status != "done" {
		task.CompletedAt = nil
	}

	task.ContractorID = input.ContractorID
	task.Title = input.Title
	task.Description = input.Description
	task.Status = input.Status
	task.Priority = input.Priority
	task.DueDate = input.DueDate

	if err := config.DB.Save(&task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		return
	}
	c.JSON(http.StatusOK, task)
}

func DeleteTaskHandler(c *gin.Context) {
	var task models.Task
	if err := config.DB.First(&task, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}
	if err := config.DB.Delete(&task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}
