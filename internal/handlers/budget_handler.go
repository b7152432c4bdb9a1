package handlers

import (
	"fmt"
	"net/http"
	"time"

	"stagecraft-crm/config"
	"stagecraft-crm/internal/export"
	"stagecraft-crm/models"

	"github.com/gin-gonic/gin"
)

// --- Budget categories (shared lookup) ---

func ListBudgetCategoriesHandler(c *gin.Context) {
	var categories []models.BudgetCategory
	if err := config.DB.Order("sort_order asc, name asc").Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch budget categories"})
		return
	}
	if categories == nil {
		categories = make([]models.BudgetCategory, 0)
	}
	c.JSON(http.StatusOK, categories)
}

func CreateBudgetCategoryHandler(c *gin.Context) {
	var category models.BudgetCategory
	if err := c.ShouldBindJSON(&category); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := config.DB.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create budget category"})
		return
	}
	c.JSON(http.StatusCreated, category)
}

func DeleteBudgetCategoryHandler(c *gin.Context) {
	var category models.BudgetCategory
	if err := config.DB.First(&category, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Budget category not found"})
		return
	}
	if err := config.DB.Delete(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete budget category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Budget category deleted successfully"})
}

// --- Budget items per event ---

func ListBudgetItemsHandler(c *gin.Context) {
	var items []models.BudgetItem
	if err := config.DB.Preload("Category").
		Where("event_id = ?", c.Param("id")).
		Order("created_at asc").
		Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch budget items"})
		return
	}
	if items == nil {
		items = make([]models.BudgetItem, 0)
	}
	c.JSON(http.StatusOK, items)
}

func CreateBudgetItemHandler(c *gin.Context) {
	var item models.BudgetItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if item.Description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Budget item description is required"})
		return
	}
	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create budget item"})
		return
	}
	config.DB.Preload("Category").First(&item, item.ID)
	c.JSON(http.StatusCreated, item)
}

func UpdateBudgetItemHandler(c *gin.Context) {
	var item models.BudgetItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Budget item not found"})
		return
	}

	var input models.BudgetItem
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item.CategoryID = input.CategoryID
	item.Description = input.Description
	item.VendorName = input.VendorName
	item.EstimatedAmount = input.EstimatedAmount
	item.QuotedAmount = input.QuotedAmount
	item.ApprovedAmount = input.ApprovedAmount
	item.ActualAmount = input.ActualAmount
	item.Notes = input.Notes

	if err := config.DB.Save(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update budget item"})
		return
	}
	config.DB.Preload("Category").First(&item, item.ID)
	c.JSON(http.StatusOK, item)
}

func DeleteBudgetItemHandler(c *gin.Context) {
	var item models.BudgetItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Budget item not found"})
		return
	}
	if err := config.DB.Delete(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete budget item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Budget item deleted successfully"})
}

// GetBudgetSummaryHandler totals the four tracked amounts across an event
// and reports the estimate-to-actual variance.
func GetBudgetSummaryHandler(c *gin.Context) {
	var items []models.BudgetItem
	if err := config.DB.Where("event_id = ?", c.Param("id")).Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch budget items"})
		return
	}

	var estimated, quoted, approved, actual float64
	for _, item := range items {
		if item.EstimatedAmount != nil {
			estimated += *item.EstimatedAmount
		}
		if item.QuotedAmount != nil {
			quoted += *item.QuotedAmount
		}
		if item.ApprovedAmount != nil {
			approved += *item.ApprovedAmount
		}
		if item.ActualAmount != nil {
			actual += *item.ActualAmount
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"itemCount": len(items),
		"estimated": estimated,
		"quoted":    quoted,
		"approved":  approved,
		"actual":    actual,
		"variance":  actual - estimated,
	})
}

// ExportBudgetHandler writes the event budget as an XLSX download.
func ExportBudgetHandler(c *gin.Context) {
	var event models.Event
	if err := config.DB.First(&event, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	var items []models.BudgetItem
	if err := config.DB.Preload("Category").
		Where("event_id = ?", event.ID).
		Order("created_at asc").
		Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch budget items"})
		return
	}

	fileName := fmt.Sprintf("budget_%s_%s.xlsx", sanitizeFileName(event.Name), time.Now().Format("20060102_150405"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	if err := export.WriteBudgetXLSX(c.Writer, &event, items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
	}
}
