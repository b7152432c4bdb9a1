// Package research builds prompts for and parses payloads from the AI vendor
// research collaborator. The model is treated as an opaque producer of a
// loosely shaped JSON document; anything it returns that cannot be parsed
// degrades to a summary-only payload instead of an error.
package research

import (
	"encoding/json"
	"fmt"
	"strings"

	"stagecraft-crm/internal/sourcing"
)

// Payload is the structured research response. Every field is optional; a
// missing results list means zero candidates, not a failure.
type Payload struct {
	Summary string               `json:"summary,omitempty"`
	Results []sourcing.Candidate `json:"results,omitempty"`
	Sources []string             `json:"sources,omitempty"`
}

const systemPrompt = `You are a research assistant for an experiential marketing and event planning company.
Your job is to research and compile information about venues, hotels, vendors, and services for corporate events.

When researching, provide:
- Specific recommendations with names and details
- Addresses and contact information when available
- Capacity/size information when relevant
- Price ranges or estimates when available
- Why each option might be good for the event
- Links to websites when available

Format your response as a JSON object with this structure:
{
  "summary": "Brief summary of findings",
  "results": [
    {
      "name": "Name of venue/hotel/vendor",
      "type": "hotel|venue|vendor|restaurant|activity|transport|other",
      "address": "Full address if available",
      "website": "URL if available",
      "phone": "Phone number if available",
      "priceRange": "$ / $$ / $$$ / $$$$ or specific range",
      "capacity": "Capacity info if relevant",
      "highlights": ["Key feature 1", "Key feature 2"],
      "notes": "Why this might be good for the event"
    }
  ],
  "sources": ["URL sources used for research"]
}

Always return valid JSON. If you can't find specific information, omit that field rather than making it up.`

// BuildPrompt assembles the full prompt for one research call.
func BuildPrompt(query, category, eventContext string) string {
	var b strings.Builder
	b.WriteString(systemPrompt)
	b.WriteString("\n\nResearch request: ")
	b.WriteString(query)
	if category != "" {
		fmt.Fprintf(&b, "\nCategory focus: %s", category)
	}
	if eventContext != "" {
		fmt.Fprintf(&b, "\n\nEvent context: %s", eventContext)
	}
	return b.String()
}

// ParsePayload extracts the research payload from raw model output. Markdown
// code fences around the JSON are tolerated, as is leading or trailing prose:
// the parser takes the widest {...} span it can find. When no parseable JSON
// is present the whole text becomes the summary with zero candidates.
func ParsePayload(raw string) Payload {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.Trim(cleaned, "`")
	cleaned = strings.TrimPrefix(cleaned, "json")

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start >= 0 && end > start {
		var payload Payload
		if err := json.Unmarshal([]byte(cleaned[start:end+1]), &payload); err == nil {
			return payload
		}
	}

	return Payload{Summary: strings.TrimSpace(raw)}
}
