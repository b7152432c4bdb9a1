package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"stagecraft-crm/config"
	"stagecraft-crm/models"

	"github.com/Knetic/govaluate"
	"github.com/gin-gonic/gin"
)

// --- Payment plans (reusable schedule shapes) ---

func ListPaymentPlansHandler(c *gin.Context) {
	var plans []models.PaymentPlan
	if err := config.DB.Preload("Installments").Order("name asc").Find(&plans).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch payment plans"})
		return
	}
	c.JSON(http.StatusOK, plans)
}

func GetPaymentPlanHandler(c *gin.Context) {
	var plan models.PaymentPlan
	if err := config.DB.Preload("Installments").First(&plan, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment plan not found"})
		return
	}
	c.JSON(http.StatusOK, plan)
}

type installmentInput struct {
	Name       string `json:"name" binding:"required"`
	Formula    string `json:"formula" binding:"required"`
	OffsetDays int    `json:"offsetDays"`
}

type paymentPlanInput struct {
	Name         string             `json:"name" binding:"required"`
	Description  string             `json:"description"`
	Installments []installmentInput `json:"installments"`
}

// validateFormulas compiles every installment formula against sample
// parameters so a broken plan is rejected at save time, not at generation.
func validateFormulas(installments []installmentInput) error {
	sample := map[string]interface{}{"Total": 1000.0, "Quoted": 1000.0, "Final": 1000.0}
	for _, inst := range installments {
		expr, err := govaluate.NewEvaluableExpression(inst.Formula)
		if err != nil {
			return fmt.Errorf("invalid formula %q: %v", inst.Formula, err)
		}
		result, err := expr.Evaluate(sample)
		if err != nil {
			return fmt.Errorf("formula %q could not be evaluated: %v", inst.Formula, err)
		}
		if _, ok := result.(float64); !ok {
			return fmt.Errorf("formula %q does not produce a number", inst.Formula)
		}
	}
	return nil
}

func CreatePaymentPlanHandler(c *gin.Context) {
	var input paymentPlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validateFormulas(input.Installments); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan := models.PaymentPlan{Name: input.Name, Description: input.Description}
	for _, inst := range input.Installments {
		plan.Installments = append(plan.Installments, models.PaymentInstallment{
			Name:       inst.Name,
			Formula:    inst.Formula,
			OffsetDays: inst.OffsetDays,
		})
	}

	if err := config.DB.Create(&plan).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment plan"})
		return
	}
	c.JSON(http.StatusCreated, plan)
}

// UpdatePaymentPlanHandler replaces the plan and its installment lines in one
// transaction. Schedules already generated from the old shape are untouched.
func UpdatePaymentPlanHandler(c *gin.Context) {
	var plan models.PaymentPlan
	if err := config.DB.First(&plan, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment plan not found"})
		return
	}

	var input paymentPlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validateFormulas(input.Installments); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tx := config.DB.Begin()
	plan.Name = input.Name
	plan.Description = input.Description
	if err := tx.Save(&plan).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment plan"})
		return
	}
	if err := tx.Where("payment_plan_id = ?", plan.ID).Delete(&models.PaymentInstallment{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment plan"})
		return
	}
	for _, inst := range input.Installments {
		row := models.PaymentInstallment{
			PaymentPlanID: plan.ID,
			Name:          inst.Name,
			Formula:       inst.Formula,
			OffsetDays:    inst.OffsetDays,
		}
		if err := tx.Create(&row).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment plan"})
			return
		}
	}
	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment plan"})
		return
	}

	config.DB.Preload("Installments").First(&plan, plan.ID)
	c.JSON(http.StatusOK, plan)
}

func DeletePaymentPlanHandler(c *gin.Context) {
	var plan models.PaymentPlan
	if err := config.DB.First(&plan, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment plan not found"})
		return
	}

	tx := config.DB.Begin()
	if err := tx.Where("payment_plan_id = ?", plan.ID).Delete(&models.PaymentInstallment{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete payment plan"})
		return
	}
	if err := tx.Delete(&plan).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete payment plan"})
		return
	}
	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete payment plan"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment plan deleted successfully"})
}

// --- Vendor schedules ---

type scheduleInput struct {
	PaymentPlanID uint   `json:"paymentPlanId" binding:"required"`
	AnchorDate    string `json:"anchorDate" binding:"required"`
}

// scheduleRow is one computed payment before persistence.
type scheduleRow struct {
	Name    string    `json:"name"`
	Amount  float64   `json:"amount"`
	DueDate time.Time `json:"dueDate"`
}

// computeSchedule evaluates a plan against a vendor's price figures.
// Formulas see Total, Quoted and Final; missing prices evaluate as zero.
func computeSchedule(plan *models.PaymentPlan, vendor *models.SourcedVendor, anchor time.Time) ([]scheduleRow, error) {
	var quoted, final float64
	if vendor.QuotedPrice != nil {
		quoted = *vendor.QuotedPrice
	}
	if vendor.FinalPrice != nil {
		final = *vendor.FinalPrice
	}
	total := final
	if total == 0 {
		total = quoted
	}

	parameters := map[string]interface{}{
		"Total":  total,
		"Quoted": quoted,
		"Final":  final,
	}

	rows := make([]scheduleRow, 0, len(plan.Installments))
	for _, installment := range plan.Installments {
		expr, err := govaluate.NewEvaluableExpression(installment.Formula)
		if err != nil {
			return nil, fmt.Errorf("invalid formula %q: %v", installment.Formula, err)
		}
		result, err := expr.Evaluate(parameters)
		if err != nil {
			return nil, fmt.Errorf("formula %q could not be evaluated: %v", installment.Formula, err)
		}
		amount, ok := result.(float64)
		if !ok {
			return nil, fmt.Errorf("formula %q does not produce a number", installment.Formula)
		}
		rows = append(rows, scheduleRow{
			Name:    installment.Name,
			Amount:  amount,
			DueDate: anchor.AddDate(0, 0, installment.OffsetDays),
		})
	}
	return rows, nil
}

func loadVendorAndPlan(c *gin.Context) (*models.SourcedVendor, *models.PaymentPlan, time.Time, bool) {
	var vendor models.SourcedVendor
	if err := config.DB.First(&vendor, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vendor not found"})
		return nil, nil, time.Time{}, false
	}

	var input scheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, nil, time.Time{}, false
	}

	anchor, err := time.Parse("2006-01-02", input.AnchorDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid anchor date, expected YYYY-MM-DD"})
		return nil, nil, time.Time{}, false
	}

	var plan models.PaymentPlan
	if err := config.DB.Preload("Installments").First(&plan, input.PaymentPlanID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment plan not found"})
		return nil, nil, time.Time{}, false
	}

	return &vendor, &plan, anchor, true
}

// PreviewVendorScheduleHandler computes a schedule without saving it.
func PreviewVendorScheduleHandler(c *gin.Context) {
	vendor, plan, anchor, ok := loadVendorAndPlan(c)
	if !ok {
		return
	}
	rows, err := computeSchedule(plan, vendor, anchor)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": rows})
}

// GenerateVendorScheduleHandler computes a schedule and persists the rows,
// replacing any previously generated payments for the vendor.
func GenerateVendorScheduleHandler(c *gin.Context) {
	vendor, plan, anchor, ok := loadVendorAndPlan(c)
	if !ok {
		return
	}
	rows, err := computeSchedule(plan, vendor, anchor)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tx := config.DB.Begin()
	if err := tx.Where("vendor_id = ?", vendor.ID).Delete(&models.VendorPayment{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to replace payment schedule"})
		return
	}
	payments := make([]models.VendorPayment, 0, len(rows))
	for _, row := range rows {
		due := row.DueDate
		payment := models.VendorPayment{
			VendorID: vendor.ID,
			Name:     row.Name,
			Amount:   row.Amount,
			DueDate:  &due,
		}
		if err := tx.Create(&payment).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save payment schedule"})
			return
		}
		payments = append(payments, payment)
	}
	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save payment schedule"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"payments": payments})
}

func ListVendorPaymentsHandler(c *gin.Context) {
	var payments []models.VendorPayment
	if err := config.DB.Where("vendor_id = ?", c.Param("id")).
		Order("due_date asc NULLS LAST, id asc").
		Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch payments"})
		return
	}
	c.JSON(http.StatusOK, payments)
}

func UpdateVendorPaymentHandler(c *gin.Context) {
	var payment models.VendorPayment
	if err := config.DB.First(&payment, c.Param("paymentId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		return
	}

	var input models.VendorPayment
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(input.Name) != "" {
		payment.Name = input.Name
	}
	payment.Amount = input.Amount
	payment.DueDate = input.DueDate
	payment.Comment = input.Comment

	if err := config.DB.Save(&payment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment"})
		return
	}
	c.JSON(http.StatusOK, payment)
}

func DeleteVendorPaymentHandler(c *gin.Context) {
	var payment models.VendorPayment
	if err := config.DB.First(&payment, c.Param("paymentId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		return
	}
	if err := config.DB.Delete(&payment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete payment"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment deleted successfully"})
}
