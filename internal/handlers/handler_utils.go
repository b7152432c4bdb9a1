package handlers

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
)

func getUserIDFromContext(c *gin.Context) (uint, error) {
	val, ok := c.Get("user_id")
	if !ok {
		return 0, fmt.Errorf("user_id missing from context")
	}
	switch v := val.(type) {
	case uint:
		return v, nil
	case int:
		return uint(v), nil
	case int64:
		return uint(v), nil
	case float64:
		return uint(v), nil
	default:
		return 0, fmt.Errorf("unexpected user_id type: %T", val)
	}
}

var unsafeFileChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// sanitizeFileName flattens a display name into something safe for a
// Content-Disposition header and for on-disk storage.
func sanitizeFileName(name string) string {
	cleaned := unsafeFileChars.ReplaceAllString(name, "-")
	cleaned = strings.Trim(cleaned, "-")
	if cleaned == "" {
		cleaned = "file"
	}
	return cleaned
}
