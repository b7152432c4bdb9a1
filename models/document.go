package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
)

// TemplateVariable is the metadata behind one {{token}} in a template body.
type TemplateVariable struct {
	Name         string   `json:"name"`
	Label        string   `json:"label"`
	Type         string   `json:"type"` // text, textarea, number, date, select
	Required     bool     `json:"required"`
	DefaultValue string   `json:"defaultValue,omitempty"`
	Options      []string `json:"options,omitempty"` // select type only
}

// VariableList is stored as a JSONB array column on document_templates.
type VariableList []TemplateVariable

func (l VariableList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (l *VariableList) Scan(src interface{}) error {
	if src == nil {
		*l = nil
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type %T for VariableList", src)
	}
}

// DocumentTemplate owns the raw template body and its variable definitions.
// The variable list mirrors the {{tokens}} currently present in Content; it is
// re-derived by the template engine on every save.
type DocumentTemplate struct {
	gorm.Model
	Name        string       `json:"name" gorm:"not null"`
	Type        string       `json:"type" gorm:"not null"` // rfp, sow, msa, contract
	Description string       `json:"description"`
	Content     string       `json:"content"`
	Variables   VariableList `json:"variables" gorm:"type:jsonb"`
	UserID      *uint        `json:"userId,omitempty"`
}

func (DocumentTemplate) TableName() string { return "document_templates" }

// GeneratedDocument is an immutable snapshot: the rendered text plus the value
// map it was rendered with. Status is informational only.
type GeneratedDocument struct {
	gorm.Model
	TemplateID *uint             `json:"templateId,omitempty" gorm:"index"`
	Template   *DocumentTemplate `json:"template,omitempty" gorm:"foreignKey:TemplateID"`
	EventID    *uint             `json:"eventId,omitempty" gorm:"index"`
	ClientID   *uint             `json:"clientId,omitempty"`

	Name           string   `json:"name" gorm:"not null"`
	Type           string   `json:"type" gorm:"not null"`
	Content        string   `json:"content"`
	VariableValues ValueMap `json:"variableValues" gorm:"type:jsonb"`
	Status         string   `json:"status"` // draft, final, sent, signed
}

func (GeneratedDocument) TableName() string { return "generated_documents" }
