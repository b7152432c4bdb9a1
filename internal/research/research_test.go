package research

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePayloadPlainJSON(t *testing.T) {
	raw := `{"summary":"two venues","results":[{"name":"The Foundry","type":"venue"}],"sources":["https://example.com"]}`

	p := ParsePayload(raw)
	assert.Equal(t, "two venues", p.Summary)
	require.Len(t, p.Results, 1)
	assert.Equal(t, "The Foundry", p.Results[0].Name)
	assert.Equal(t, []string{"https://example.com"}, p.Sources)
}

func TestParsePayloadMarkdownFenced(t *testing.T) {
	raw := "```json\n{\"summary\":\"ok\",\"results\":[{\"name\":\"Pier 9\"}]}\n```"

	p := ParsePayload(raw)
	assert.Equal(t, "ok", p.Summary)
	require.Len(t, p.Results, 1)
	assert.Equal(t, "Pier 9", p.Results[0].Name)
}

func TestParsePayloadWithSurroundingProse(t *testing.T) {
	raw := "Here is what I found:\n{\"summary\":\"s\",\"results\":[]}\nLet me know if you need more."

	p := ParsePayload(raw)
	assert.Equal(t, "s", p.Summary)
	assert.Empty(t, p.Results)
}

func TestParsePayloadUnparseableFallsBackToSummary(t *testing.T) {
	raw := "I could not find anything useful."

	p := ParsePayload(raw)
	assert.Equal(t, raw, p.Summary)
	assert.Empty(t, p.Results)
	assert.Empty(t, p.Sources)
}

func TestParsePayloadBrokenJSONFallsBackToSummary(t *testing.T) {
	raw := `{"summary": "truncated`

	p := ParsePayload(raw)
	assert.Empty(t, p.Results)
	assert.Equal(t, raw, p.Summary)
}

func TestParsePayloadMissingResultsIsZeroCandidates(t *testing.T) {
	p := ParsePayload(`{"summary":"nothing concrete"}`)
	assert.Equal(t, "nothing concrete", p.Summary)
	assert.Empty(t, p.Results)
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt("rooftop venues in Austin", "Venue", "Product launch, 300 guests, June 2027")
	assert.Contains(t, prompt, "Research request: rooftop venues in Austin")
	assert.Contains(t, prompt, "Category focus: Venue")
	assert.Contains(t, prompt, "Event context: Product launch, 300 guests, June 2027")

	bare := BuildPrompt("caterers", "", "")
	assert.Contains(t, bare, "Research request: caterers")
	assert.NotContains(t, bare, "Category focus")
	assert.NotContains(t, bare, "Event context")
}
