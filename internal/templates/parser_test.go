package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stagecraft-crm/models"
)

func TestExtractVariables(t *testing.T) {
	names := ExtractVariables("Hello {{name}}, your {{name}} is due {{due_date}}")
	assert.Equal(t, []string{"name", "due_date"}, names)
}

func TestExtractVariablesEdgeCases(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"empty content", "", nil},
		{"no tokens", "plain text only", nil},
		{"single brace pair ignored", "hello {name}", nil},
		{"unclosed token ignored", "hello {{name", nil},
		{"space inside token ignored", "hello {{first name}}", nil},
		{"adjacent tokens", "{{a}}{{b}}", []string{"a", "b"}},
		{"digits and underscores", "{{line_2_total}}", []string{"line_2_total"}},
		{"order of first appearance", "{{b}} {{a}} {{b}} {{c}} {{a}}", []string{"b", "a", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractVariables(tt.content))
		})
	}
}

func TestExtractVariablesIdempotent(t *testing.T) {
	content := "Dear {{client_name}}, re {{event_name}} on {{event_start_date}} ({{client_name}})"
	first := ExtractVariables(content)
	second := ExtractVariables(content)
	assert.Equal(t, first, second)
}

func TestInferVariableType(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"event_start_date", TypeDate},
		{"budget_notes", TypeTextarea}, // "notes" wins, no "date" substring
		{"quoted_price", TypeNumber},
		{"venue_name", TypeText},
		{"Due_Date", TypeDate}, // case-insensitive
		{"scope_of_work", TypeTextarea},
		{"total_cost", TypeNumber},
		{"quantity", TypeNumber},
		{"date_description", TypeDate}, // date checked before textarea hints
		{"", TypeText},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, InferVariableType(tt.name), "name %q", tt.name)
	}
}

func TestFormatVariableLabel(t *testing.T) {
	assert.Equal(t, "Client Name", FormatVariableLabel("client_name"))
	assert.Equal(t, "Total", FormatVariableLabel("total"))
	assert.Equal(t, "Event Start Date", FormatVariableLabel("event_start_date"))
	assert.Equal(t, "Line 2 Total", FormatVariableLabel("line_2_total"))
}

func TestMergeVariableDefinitions(t *testing.T) {
	existing := models.VariableList{
		{Name: "client_name", Label: "Customer", Type: TypeSelect, Required: false, Options: []string{"A", "B"}},
		{Name: "old_field", Label: "Old Field", Type: TypeText, Required: true},
	}

	merged := MergeVariableDefinitions(existing, []string{"client_name", "new_price"})

	require.Len(t, merged, 2)

	// Configured definition survives untouched.
	assert.Equal(t, "client_name", merged[0].Name)
	assert.Equal(t, "Customer", merged[0].Label)
	assert.Equal(t, TypeSelect, merged[0].Type)
	assert.False(t, merged[0].Required)
	assert.Equal(t, []string{"A", "B"}, merged[0].Options)

	// New token gets a synthesized definition.
	assert.Equal(t, "new_price", merged[1].Name)
	assert.Equal(t, "New Price", merged[1].Label)
	assert.Equal(t, TypeNumber, merged[1].Type)
	assert.True(t, merged[1].Required)

	// old_field no longer appears in the body, so it is dropped.
	for _, v := range merged {
		assert.NotEqual(t, "old_field", v.Name)
	}
}

func TestMergeVariableDefinitionsFixedPoint(t *testing.T) {
	existing := models.VariableList{
		{Name: "a", Label: "Custom A", Type: TypeDate, Required: false},
	}
	names := []string{"a", "b"}

	once := MergeVariableDefinitions(existing, names)
	twice := MergeVariableDefinitions(once, names)
	assert.Equal(t, once, twice)
}

func TestRenderTemplate(t *testing.T) {
	out := RenderTemplate("Dear {{client_name}}, total: {{amount}}", map[string]string{"client_name": "Acme"})
	assert.Equal(t, "Dear Acme, total: {{amount}}", out)
}

func TestRenderTemplateEmptyValueLeavesToken(t *testing.T) {
	out := RenderTemplate("X: {{a}}", map[string]string{"a": ""})
	assert.Equal(t, "X: {{a}}", out)
}

func TestRenderTemplateRepeatedToken(t *testing.T) {
	out := RenderTemplate("{{n}} and {{n}} again", map[string]string{"n": "twice"})
	assert.Equal(t, "twice and twice again", out)
}

func TestValidateVariables(t *testing.T) {
	vars := models.VariableList{
		{Name: "a", Required: true},
		{Name: "b", Required: false},
	}

	res := ValidateVariables(vars, map[string]string{"a": "  "})
	assert.False(t, res.Valid)
	assert.Equal(t, []string{"a"}, res.Missing)

	res = ValidateVariables(vars, map[string]string{"a": "filled"})
	assert.True(t, res.Valid)
	assert.Empty(t, res.Missing)
}

func TestValidateVariablesUsesLabel(t *testing.T) {
	vars := models.VariableList{
		{Name: "client_name", Label: "Client Name", Required: true},
	}
	res := ValidateVariables(vars, nil)
	assert.Equal(t, []string{"Client Name"}, res.Missing)
}

func TestGetDefaultValues(t *testing.T) {
	vars := models.VariableList{
		{Name: "a", DefaultValue: "seed"},
		{Name: "b"},
	}
	defaults := GetDefaultValues(vars)
	assert.Equal(t, map[string]string{"a": "seed"}, defaults)
	_, present := defaults["b"]
	assert.False(t, present, "variables without a default must stay absent")
}

func TestValidateNames(t *testing.T) {
	assert.NoError(t, ValidateNames([]string{"client_name", "x2"}))
	err := ValidateNames([]string{"ok", "not ok", "also-bad"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not ok")
	assert.Contains(t, err.Error(), "also-bad")
}
