package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"stagecraft-crm/config"
	"stagecraft-crm/internal/export"
	"stagecraft-crm/internal/research"
	"stagecraft-crm/internal/sourcing"
	"stagecraft-crm/models"

	"github.com/gin-gonic/gin"
)

func fetchEventVendors(eventID string) ([]models.SourcedVendor, error) {
	var vendors []models.SourcedVendor
	err := config.DB.Where("event_id = ?", eventID).
		Order("priority desc NULLS LAST, created_at desc").
		Find(&vendors).Error
	return vendors, err
}

// ListVendorsHandler returns the sourcing pipeline for an event: the vendor
// list in display order plus the per-status counts for the summary badges.
func ListVendorsHandler(c *gin.Context) {
	vendors, err := fetchEventVendors(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch vendors"})
		return
	}
	if vendors == nil {
		vendors = make([]models.SourcedVendor, 0)
	}

	c.JSON(http.StatusOK, gin.H{
		"vendors":      vendors,
		"statusCounts": sourcing.CountByStatus(vendors),
	})
}

func GetVendorHandler(c *gin.Context) {
	var vendor models.SourcedVendor
	if err := config.DB.First(&vendor, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vendor not found"})
		return
	}
	c.JSON(http.StatusOK, vendor)
}

func CreateVendorHandler(c *gin.Context) {
	var vendor models.SourcedVendor
	if err := c.ShouldBindJSON(&vendor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(vendor.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Vendor name is required"})
		return
	}
	if vendor.Status == "" {
		vendor.Status = sourcing.StatusIdentified
	}
	if !sourcing.IsValidStatus(vendor.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown vendor status: " + vendor.Status})
		return
	}

	if err := config.DB.Create(&vendor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create vendor"})
		return
	}
	c.JSON(http.StatusCreated, vendor)
}

func UpdateVendorHandler(c *gin.Context) {
	var vendor models.SourcedVendor
	if err := config.DB.First(&vendor, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vendor not found"})
		return
	}

	var input models.SourcedVendor
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(input.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Vendor name is required"})
		return
	}
	if input.Status != "" && !sourcing.IsValidStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown vendor status: " + input.Status})
		return
	}

	vendor.Name = input.Name
	vendor.Category = input.Category
	vendor.Website = input.Website
	vendor.Phone = input.Phone
	vendor.Address = input.Address
	vendor.PriceRange = input.PriceRange
	vendor.Capacity = input.Capacity
	if input.Status != "" {
		vendor.Status = input.Status
	}
	vendor.Priority = input.Priority
	vendor.Notes = input.Notes
	vendor.QuotedPrice = input.QuotedPrice
	vendor.FinalPrice = input.FinalPrice
	vendor.RFPSentDate = input.RFPSentDate
	vendor.ProposalDueDate = input.ProposalDueDate
	vendor.ProposalReceivedDate = input.ProposalReceivedDate

	if err := config.DB.Save(&vendor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update vendor"})
		return
	}
	c.JSON(http.StatusOK, vendor)
}

type vendorStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// UpdateVendorStatusHandler sets the pipeline tag. Any known status is
// accepted from any other; there is no transition table.
func UpdateVendorStatusHandler(c *gin.Context) {
	var vendor models.SourcedVendor
	if err := config.DB.First(&vendor, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vendor not found"})
		return
	}

	var input vendorStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !sourcing.IsValidStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown vendor status: " + input.Status})
		return
	}

	previous := vendor.Status
	vendor.Status = input.Status

	// Stamp the pipeline dates the first time a vendor reaches them.
	now := time.Now()
	if input.Status == sourcing.StatusRFPSent && vendor.RFPSentDate == nil {
		vendor.RFPSentDate = &now
	}
	if input.Status == sourcing.StatusProposalReceived && vendor.ProposalReceivedDate == nil {
		vendor.ProposalReceivedDate = &now
	}

	if err := config.DB.Save(&vendor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update vendor status"})
		return
	}

	GlobalHub.BroadcastVendorStatus(&vendor, previous)
	c.JSON(http.StatusOK, vendor)
}

func DeleteVendorHandler(c *gin.Context) {
	var vendor models.SourcedVendor
	if err := config.DB.First(&vendor, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vendor not found"})
		return
	}
	if err := config.DB.Delete(&vendor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete vendor"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Vendor deleted successfully"})
}

// ListVendorStatusesHandler exposes the fixed status domain for UI pickers.
func ListVendorStatusesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, sourcing.Statuses)
}

type importInput struct {
	ResearchResultID uint `json:"researchResultId" binding:"required"`
}

// ImportVendorsFromResearchHandler imports the candidates of a saved
// research result that do not case-insensitively match an existing vendor's
// name. Imported vendors start at identified with no priority. Importing
// zero vendors is an informational outcome, not an error.
func ImportVendorsFromResearchHandler(c *gin.Context) {
	var event models.Event
	if err := config.DB.First(&event, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	var input importInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var saved models.ResearchResult
	if err := config.DB.First(&saved, input.ResearchResultID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Research result not found"})
		return
	}

	// A payload missing or malformed on results means zero candidates.
	var payload research.Payload
	if len(saved.Results) > 0 {
		if err := json.Unmarshal(saved.Results, &payload); err != nil {
			slog.Warn("unparseable saved research payload", "research_id", saved.ID, "error", err)
		}
	}

	var existing []models.SourcedVendor
	if err := config.DB.Where("event_id = ?", event.ID).Find(&existing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch vendors"})
		return
	}

	fresh := sourcing.SelectNewCandidates(existing, payload.Results)
	imported := 0
	for _, candidate := range fresh {
		category := candidate.Type
		if category == "" {
			category = saved.Category
		}
		notes := candidate.Notes
		if len(candidate.Highlights) > 0 {
			if notes != "" {
				notes += "\n"
			}
			notes += strings.Join(candidate.Highlights, "; ")
		}
		vendor := models.SourcedVendor{
			EventID:          event.ID,
			ResearchResultID: &saved.ID,
			Name:             candidate.Name,
			Category:         category,
			Website:          candidate.Website,
			Phone:            candidate.Phone,
			Address:          candidate.Address,
			PriceRange:       candidate.PriceRange,
			Capacity:         candidate.Capacity,
			Notes:            notes,
			Status:           sourcing.StatusIdentified,
		}
		if err := config.DB.Create(&vendor).Error; err != nil {
			slog.Error("failed to import vendor", "name", candidate.Name, "error", err)
			continue
		}
		imported++
	}

	message := fmt.Sprintf("Imported %d vendor(s)", imported)
	if imported == 0 {
		message = "No new vendors to import"
	}
	c.JSON(http.StatusOK, gin.H{"imported": imported, "message": message})
}

// ExportVendorsXLSXHandler writes the pipeline as a spreadsheet download.
func ExportVendorsXLSXHandler(c *gin.Context) {
	var event models.Event
	if err := config.DB.First(&event, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	vendors, err := fetchEventVendors(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch vendors"})
		return
	}

	fileName := fmt.Sprintf("vendors_%s_%s.xlsx", sanitizeFileName(event.Name), time.Now().Format("20060102_150405"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	if err := export.WriteVendorsXLSX(c.Writer, &event, vendors); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
	}
}

// ExportSourcingPDFHandler renders the sourcing report and converts it to a
// PDF through the Gotenberg service.
func ExportSourcingPDFHandler(c *gin.Context) {
	var event models.Event
	if err := config.DB.Preload("Client").First(&event, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	vendors, err := fetchEventVendors(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch vendors"})
		return
	}

	htmlDoc := export.SourcingReportHTML(&event, vendors)
	pdfBytes, err := export.HTMLToPDF(c.Request.Context(), htmlDoc)
	if err != nil {
		slog.Error("sourcing report conversion failed", "event_id", event.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
		return
	}

	fileName := fmt.Sprintf("sourcing-report-%s.pdf", sanitizeFileName(event.Name))
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
