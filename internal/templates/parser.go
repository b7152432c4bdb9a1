// Package templates implements the fill-in-the-blank document engine:
// placeholder extraction, variable-type inference, merge-on-edit of variable
// definitions, validation and rendering.
//
// A placeholder is {{name}} where name is one or more word characters.
// There is no escape syntax for a literal "{{text}}"; malformed or partial
// braces are simply not recognized as tokens.
package templates

import (
	"fmt"
	"regexp"
	"strings"

	"stagecraft-crm/models"
)

// Variable input types.
const (
	TypeText     = "text"
	TypeTextarea = "textarea"
	TypeNumber   = "number"
	TypeDate     = "date"
	TypeSelect   = "select"
)

var (
	tokenPattern = regexp.MustCompile(`\{\{(\w+)\}\}`)
	namePattern  = regexp.MustCompile(`^\w+$`)
)

// ExtractVariables returns the distinct placeholder names in content, in
// order of first appearance.
func ExtractVariables(content string) []string {
	var names []string
	seen := make(map[string]struct{})
	for _, match := range tokenPattern.FindAllStringSubmatch(content, -1) {
		name := match[1]
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// InferVariableType guesses an input type from the variable name. First match
// wins; select is never inferred, it is only reachable by explicit choice.
func InferVariableType(name string) string {
	lower := strings.ToLower(name)

	if strings.Contains(lower, "date") {
		return TypeDate
	}
	for _, hint := range []string{"description", "notes", "scope", "details"} {
		if strings.Contains(lower, hint) {
			return TypeTextarea
		}
	}
	for _, hint := range []string{"amount", "price", "budget", "cost", "quantity"} {
		if strings.Contains(lower, hint) {
			return TypeNumber
		}
	}
	return TypeText
}

// FormatVariableLabel turns a variable name into a display label:
// "client_name" -> "Client Name".
func FormatVariableLabel(name string) string {
	words := strings.Split(strings.ReplaceAll(name, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// NewVariable synthesizes a definition for a freshly discovered placeholder.
func NewVariable(name string) models.TemplateVariable {
	return models.TemplateVariable{
		Name:     name,
		Label:    FormatVariableLabel(name),
		Type:     InferVariableType(name),
		Required: true,
	}
}

// MergeVariableDefinitions rebuilds the variable list against the names
// currently extracted from the template body. Known names keep their
// configured definition untouched, new names get a synthesized one, and
// definitions whose token no longer appears are dropped. The result order is
// the extraction order, so the function is a fixed point when re-run.
func MergeVariableDefinitions(existing models.VariableList, extracted []string) models.VariableList {
	byName := make(map[string]models.TemplateVariable, len(existing))
	for _, v := range existing {
		byName[v.Name] = v
	}

	merged := make(models.VariableList, 0, len(extracted))
	for _, name := range extracted {
		if v, ok := byName[name]; ok {
			merged = append(merged, v)
		} else {
			merged = append(merged, NewVariable(name))
		}
	}
	return merged
}

// RenderTemplate substitutes {{name}} tokens with values[name]. A token whose
// value is absent or empty is left in place, so missing data stays visible in
// the output instead of collapsing to a blank.
func RenderTemplate(content string, values map[string]string) string {
	return tokenPattern.ReplaceAllStringFunc(content, func(token string) string {
		name := token[2 : len(token)-2]
		if v, ok := values[name]; ok && v != "" {
			return v
		}
		return token
	})
}

// ValidationResult reports which required variables are still unfilled.
type ValidationResult struct {
	Valid   bool     `json:"valid"`
	Missing []string `json:"missing"`
}

// ValidateVariables checks every required variable for a non-blank value.
// Whitespace-only values count as missing. Missing entries carry the display
// label, falling back to the raw name.
func ValidateVariables(variables models.VariableList, values map[string]string) ValidationResult {
	missing := make([]string, 0)
	for _, v := range variables {
		if !v.Required {
			continue
		}
		if strings.TrimSpace(values[v.Name]) == "" {
			label := v.Label
			if label == "" {
				label = v.Name
			}
			missing = append(missing, label)
		}
	}
	return ValidationResult{Valid: len(missing) == 0, Missing: missing}
}

// GetDefaultValues seeds a value map from variable defaults. Variables
// without a default are left absent, not set to "", so validation can tell
// "never filled" from "explicitly blank".
func GetDefaultValues(variables models.VariableList) map[string]string {
	defaults := make(map[string]string)
	for _, v := range variables {
		if v.DefaultValue != "" {
			defaults[v.Name] = v.DefaultValue
		}
	}
	return defaults
}

// ValidateNames checks extracted variable names against the allowed ^\w+$
// form and returns a single aggregate error listing every offender.
func ValidateNames(names []string) error {
	var bad []string
	for _, name := range names {
		if !namePattern.MatchString(name) {
			bad = append(bad, name)
		}
	}
	if len(bad) > 0 {
		return fmt.Errorf("invalid variable names: %s", strings.Join(bad, ", "))
	}
	return nil
}
