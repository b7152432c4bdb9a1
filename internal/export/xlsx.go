package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"stagecraft-crm/internal/sourcing"
	"stagecraft-crm/models"
)

// WriteVendorsXLSX writes the sourced vendor list for one event as a
// spreadsheet. Vendors must already be in display order.
func WriteVendorsXLSX(w io.Writer, event *models.Event, vendors []models.SourcedVendor) error {
	f := excelize.NewFile()
	sheetName := "Vendors"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Vendor", "Category", "Status", "Priority", "Phone", "Website", "Quoted Price", "Final Price", "Notes"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	for i, v := range vendors {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), v.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), v.Category)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), sourcing.StatusLabel(v.Status))
		if v.Priority != nil {
			f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), *v.Priority)
		}
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), v.Phone)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), v.Website)
		if v.QuotedPrice != nil {
			f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), *v.QuotedPrice)
		}
		if v.FinalPrice != nil {
			f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), *v.FinalPrice)
		}
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), v.Notes)
	}

	return f.Write(w)
}

// WriteBudgetXLSX writes an event budget as a spreadsheet, one line per
// budget item with the four tracked amounts and the estimate-to-actual
// variance.
func WriteBudgetXLSX(w io.Writer, event *models.Event, items []models.BudgetItem) error {
	f := excelize.NewFile()
	sheetName := "Budget"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Category", "Description", "Vendor", "Estimated", "Quoted", "Approved", "Actual", "Variance", "Notes"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	for i, item := range items {
		row := i + 2
		if item.Category != nil {
			f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), item.Category.Name)
		}
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), item.Description)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), item.VendorName)
		if item.EstimatedAmount != nil {
			f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), *item.EstimatedAmount)
		}
		if item.QuotedAmount != nil {
			f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), *item.QuotedAmount)
		}
		if item.ApprovedAmount != nil {
			f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), *item.ApprovedAmount)
		}
		if item.ActualAmount != nil {
			f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), *item.ActualAmount)
		}
		if item.EstimatedAmount != nil && item.ActualAmount != nil {
			f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), *item.ActualAmount-*item.EstimatedAmount)
		}
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), item.Notes)
	}

	return f.Write(w)
}
