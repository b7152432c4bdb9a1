package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func previewRequest(t *testing.T, body gin.H) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/templates/preview", PreviewTemplateHandler)

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/templates/preview", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPreviewTemplateHandlerRendersValues(t *testing.T) {
	w := previewRequest(t, gin.H{
		"content": "Dear {{client_name}}, the event is on {{event_date}}.",
		"values":  map[string]string{"client_name": "Northwind"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Rendered  string `json:"rendered"`
		Variables []struct {
			Name  string `json:"name"`
			Label string `json:"label"`
			Type  string `json:"type"`
		} `json:"variables"`
		Validation struct {
			Valid   bool     `json:"valid"`
			Missing []string `json:"missing"`
		} `json:"validation"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	// The unfilled token stays literal in the preview.
	assert.Equal(t, "Dear Northwind, the event is on {{event_date}}.", resp.Rendered)

	require.Len(t, resp.Variables, 2)
	assert.Equal(t, "client_name", resp.Variables[0].Name)
	assert.Equal(t, "Client Name", resp.Variables[0].Label)
	assert.Equal(t, "date", resp.Variables[1].Type)
	assert.True(t, resp.Validation.Valid)
}

func TestPreviewTemplateHandlerReportsMissingRequired(t *testing.T) {
	w := previewRequest(t, gin.H{
		"content": "Total: {{amount}}",
		"variables": []gin.H{
			{"name": "amount", "label": "Contract Amount", "type": "number", "required": true},
		},
		"values": map[string]string{"amount": "   "},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Validation struct {
			Valid   bool     `json:"valid"`
			Missing []string `json:"missing"`
		} `json:"validation"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.False(t, resp.Validation.Valid)
	assert.Equal(t, []string{"Contract Amount"}, resp.Validation.Missing)
}

func TestPreviewTemplateHandlerRejectsBadJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/templates/preview", PreviewTemplateHandler)

	req := httptest.NewRequest(http.MethodPost, "/api/templates/preview", bytes.NewReader([]byte("{")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
