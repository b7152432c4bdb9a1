package handlers

import (
	"net/http"
	"strings"

	"stagecraft-crm/config"
	"stagecraft-crm/internal/templates"
	"stagecraft-crm/models"

	"github.com/gin-gonic/gin"
)

var documentTypes = map[string]bool{"rfp": true, "sow": true, "msa": true, "contract": true}

type templateInput struct {
	Name        string              `json:"name"`
	Type        string              `json:"type"`
	Description string              `json:"description"`
	Content     string              `json:"content"`
	Variables   models.VariableList `json:"variables"`
}

// buildTemplateRecord validates the input and re-derives the variable list
// from the content, merging with whatever definitions the caller already
// configured so their label/type/required edits survive a content edit.
func buildTemplateRecord(input *templateInput, target *models.DocumentTemplate) (string, bool) {
	if strings.TrimSpace(input.Name) == "" {
		return "Template name is required", false
	}
	if !documentTypes[input.Type] {
		return "Template type must be one of rfp, sow, msa, contract", false
	}

	extracted := templates.ExtractVariables(input.Content)
	if err := templates.ValidateNames(extracted); err != nil {
		return err.Error(), false
	}

	target.Name = input.Name
	target.Type = input.Type
	target.Description = input.Description
	target.Content = input.Content
	target.Variables = templates.MergeVariableDefinitions(input.Variables, extracted)
	return "", true
}

// ListDocumentTemplatesHandler returns templates, optionally filtered by type.
func ListDocumentTemplatesHandler(c *gin.Context) {
	query := config.DB.Model(&models.DocumentTemplate{})
	if docType := c.Query("type"); docType != "" {
		query = query.Where("type = ?", docType)
	}

	var list []models.DocumentTemplate
	if err := query.Order("name asc").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch templates"})
		return
	}
	if list == nil {
		list = make([]models.DocumentTemplate, 0)
	}
	c.JSON(http.StatusOK, list)
}

func GetDocumentTemplateHandler(c *gin.Context) {
	var template models.DocumentTemplate
	if err := config.DB.First(&template, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		return
	}
	c.JSON(http.StatusOK, template)
}

func CreateDocumentTemplateHandler(c *gin.Context) {
	var input templateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var template models.DocumentTemplate
	if msg, ok := buildTemplateRecord(&input, &template); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	if userID, err := getUserIDFromContext(c); err == nil {
		template.UserID = &userID
	}

	if err := config.DB.Create(&template).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create template"})
		return
	}
	c.JSON(http.StatusCreated, template)
}

func UpdateDocumentTemplateHandler(c *gin.Context) {
	var template models.DocumentTemplate
	if err := config.DB.First(&template, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		return
	}

	var input templateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg, ok := buildTemplateRecord(&input, &template); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	if err := config.DB.Save(&template).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update template"})
		return
	}
	c.JSON(http.StatusOK, template)
}

func DeleteDocumentTemplateHandler(c *gin.Context) {
	var template models.DocumentTemplate
	if err := config.DB.First(&template, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		return
	}
	if err := config.DB.Delete(&template).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete template"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Template deleted successfully"})
}

type previewInput struct {
	Content   string              `json:"content"`
	Variables models.VariableList `json:"variables"`
	Values    map[string]string   `json:"values"`
}

// PreviewTemplateHandler renders content against values without touching the
// database. Unfilled tokens stay visible in the output; the response also
// carries the re-derived variable list and the validation state so the form
// can update live.
func PreviewTemplateHandler(c *gin.Context) {
	var input previewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	extracted := templates.ExtractVariables(input.Content)
	variables := templates.MergeVariableDefinitions(input.Variables, extracted)

	values := templates.GetDefaultValues(variables)
	for k, v := range input.Values {
		values[k] = v
	}

	c.JSON(http.StatusOK, gin.H{
		"rendered":   templates.RenderTemplate(input.Content, values),
		"variables":  variables,
		"validation": templates.ValidateVariables(variables, values),
	})
}

type generateInput struct {
	Name     string            `json:"name"`
	EventID  *uint             `json:"eventId"`
	ClientID *uint             `json:"clientId"`
	Values   map[string]string `json:"values"`
}

// GenerateDocumentHandler validates the required variables, renders the
// template and persists the result as an immutable draft document. A failed
// validation blocks the save and reports the missing field labels.
func GenerateDocumentHandler(c *gin.Context) {
	var template models.DocumentTemplate
	if err := config.DB.First(&template, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		return
	}

	var input generateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	values := templates.GetDefaultValues(template.Variables)
	for k, v := range input.Values {
		values[k] = v
	}

	validation := templates.ValidateVariables(template.Variables, values)
	if !validation.Valid {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Required fields are missing",
			"missing": validation.Missing,
		})
		return
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = template.Name
	}

	doc := models.GeneratedDocument{
		TemplateID:     &template.ID,
		EventID:        input.EventID,
		ClientID:       input.ClientID,
		Name:           name,
		Type:           template.Type,
		Content:        templates.RenderTemplate(template.Content, values),
		VariableValues: values,
		Status:         "draft",
	}
	if err := config.DB.Create(&doc).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save generated document"})
		return
	}

	c.JSON(http.StatusCreated, doc)
}
