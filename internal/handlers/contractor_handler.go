package handlers

import (
	"net/http"
	"strings"

	"stagecraft-crm/config"
	"stagecraft-crm/models"

	"github.com/gin-gonic/gin"
)

// ListContractorsHandler returns the talent pool with optional search and
// compliance filters, paginated.
func ListContractorsHandler(c *gin.Context) {
	query := config.DB.Model(&models.Contractor{})

	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(role) LIKE ? OR LOWER(city) LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}
	if c.Query("w9") == "true" {
		query = query.Where("w9_on_file = TRUE")
	}
	if c.Query("insured") == "true" {
		query = query.Where("insurance_on_file = TRUE")
	}

	var totalRows int64
	if err := query.Count(&totalRows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not count contractors"})
		return
	}

	var contractors []models.Contractor
	if err := query.Scopes(Paginate(c)).Order("last_name asc, first_name asc").Find(&contractors).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch contractors"})
		return
	}
	if contractors == nil {
		contractors = make([]models.Contractor, 0)
	}

	c.JSON(http.StatusOK, CreatePaginatedResponse(c, contractors, totalRows))
}

func GetContractorHandler(c *gin.Context) {
	var contractor models.Contractor
	if err := config.DB.First(&contractor, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contractor not found"})
		return
	}
	c.JSON(http.StatusOK, contractor)
}

func CreateContractorHandler(c *gin.Context) {
	var contractor models.Contractor
	if err := c.ShouldBindJSON(&contractor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(contractor.FirstName) == "" || strings.TrimSpace(contractor.LastName) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "First and last name are required"})
		return
	}
	if err := config.DB.Create(&contractor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create contractor"})
		return
	}
	c.JSON(http.StatusCreated, contractor)
}

func UpdateContractorHandler(c *gin.Context) {
	var contractor models.Contractor
	if err := config.DB.First(&contractor, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contractor not found"})
		return
	}

	var input models.Contractor
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contractor.FirstName = input.FirstName
	contractor.LastName = input.LastName
	contractor.Role = input.Role
	contractor.Specialties = input.Specialties
	contractor.Email = input.Email
	contractor.Phone = input.Phone
	contractor.City = input.City
	contractor.State = input.State
	contractor.HourlyRate = input.HourlyRate
	contractor.DayRate = input.DayRate
	contractor.Rating = input.Rating
	contractor.W9OnFile = input.W9OnFile
	contractor.NDASigned = input.NDASigned
	contractor.InsuranceOnFile = input.InsuranceOnFile
	contractor.Notes = input.Notes

	if err := config.DB.Save(&contractor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update contractor"})
		return
	}
	c.JSON(http.StatusOK, contractor)
}

func DeleteContractorHandler(c *gin.Context) {
	var contractor models.Contractor
	if err := config.DB.First(&contractor, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contractor not found"})
		return
	}
	if err := config.DB.Delete(&contractor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete contractor"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Contractor deleted successfully"})
}
