package export

import (
	"strings"
	"testing"
	"time"

	"stagecraft-crm/internal/sourcing"
	"stagecraft-crm/models"

	"github.com/stretchr/testify/assert"
)

func floatp(f float64) *float64 { return &f }

func TestSourcingReportHTMLGroupsAndBadges(t *testing.T) {
	start := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	event := &models.Event{
		Name:           "Annual Gala",
		EventStartDate: &start,
		Client:         &models.Client{Name: "Northwind & Co"},
	}
	vendors := []models.SourcedVendor{
		{Name: "Bright Lights AV", Category: "AV", Status: sourcing.StatusContracted, FinalPrice: floatp(12500)},
		{Name: "Acme Catering", Category: "Catering", Status: sourcing.StatusIdentified, PriceRange: "$$ - $$$"},
		{Name: "Mystery Vendor", Status: sourcing.StatusDeclined, QuotedPrice: floatp(900)},
	}

	doc := SourcingReportHTML(event, vendors)

	assert.Contains(t, doc, "<h1>Vendor Sourcing Report</h1>")
	assert.Contains(t, doc, "Annual Gala")
	// Client names render escaped.
	assert.Contains(t, doc, "Northwind &amp; Co")
	assert.Contains(t, doc, "September 12, 2026")

	// Named categories come alphabetically, uncategorized vendors last.
	avIdx := strings.Index(doc, "<h2>AV</h2>")
	cateringIdx := strings.Index(doc, "<h2>Catering</h2>")
	otherIdx := strings.Index(doc, "<h2>Other</h2>")
	assert.True(t, avIdx >= 0 && cateringIdx >= 0 && otherIdx >= 0)
	assert.Less(t, avIdx, cateringIdx)
	assert.Less(t, cateringIdx, otherIdx)

	// Status badges carry the pipeline colors.
	assert.Contains(t, doc, sourcing.StatusColor(sourcing.StatusContracted))
	assert.Contains(t, doc, ">Contracted</span>")

	// Price column prefers final, then quoted, then the range.
	assert.Contains(t, doc, "$12500.00")
	assert.Contains(t, doc, "quoted $900.00")
	assert.Contains(t, doc, "$$ - $$$")

	// Summary omits statuses with zero vendors.
	assert.Contains(t, doc, "Contracted: 1")
	assert.NotContains(t, doc, "RFP Sent:")
}

func TestSourcingReportHTMLEmptyPipeline(t *testing.T) {
	doc := SourcingReportHTML(&models.Event{Name: "Kickoff"}, nil)

	assert.Contains(t, doc, "no vendors sourced yet")
	assert.NotContains(t, doc, "<h2>")
}
