// Package export renders vendor sourcing reports and budget workbooks.
// PDF layout itself is delegated to a Gotenberg service; this package only
// produces the HTML it converts.
package export

import (
	"fmt"
	"html"
	"strings"
	"time"

	"stagecraft-crm/internal/sourcing"
	"stagecraft-crm/models"
)

const reportStyle = `
body { font-family: Helvetica, Arial, sans-serif; font-size: 10pt; color: #111; margin: 40px; }
h1 { font-size: 24pt; margin-bottom: 2px; }
.subtitle { font-size: 12pt; color: #666; margin: 0 0 2px 0; }
.header { border-bottom: 2px solid #333; padding-bottom: 10px; margin-bottom: 20px; }
h2 { font-size: 14pt; background: #f0f0f0; padding: 6px; margin: 20px 0 10px 0; }
table { width: 100%; border-collapse: collapse; }
th { background: #333; color: #fff; text-align: left; padding: 6px; }
td { border-bottom: 1px solid #ddd; padding: 6px; vertical-align: top; }
.vendor { font-weight: bold; }
.muted { color: #666; font-size: 8pt; }
.badge { color: #fff; font-size: 8pt; padding: 2px 4px; border-radius: 2px; }
.price { text-align: right; }
.summary { margin-top: 20px; background: #f0f0f0; padding: 10px; border-radius: 4px; }
`

// SourcingReportHTML builds the printable sourcing report for one event.
// Vendors must already be in display order; they are grouped by category here
// with uncategorized ones in the "Other" bucket.
func SourcingReportHTML(event *models.Event, vendors []models.SourcedVendor) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html><html><head><meta charset=\"utf-8\"><style>")
	b.WriteString(reportStyle)
	b.WriteString("</style></head><body>")

	b.WriteString(`<div class="header">`)
	fmt.Fprintf(&b, "<h1>Vendor Sourcing Report</h1><p class=\"subtitle\">%s</p>", html.EscapeString(event.Name))
	if event.Client != nil {
		fmt.Fprintf(&b, "<p class=\"subtitle\">Client: %s</p>", html.EscapeString(event.Client.Name))
	}
	if event.EventStartDate != nil {
		fmt.Fprintf(&b, "<p class=\"subtitle\">Event date: %s</p>", event.EventStartDate.Format("January 2, 2006"))
	}
	fmt.Fprintf(&b, "<p class=\"subtitle\">Generated %s</p>", time.Now().Format("January 2, 2006"))
	b.WriteString("</div>")

	for _, group := range sourcing.GroupByCategory(vendors) {
		fmt.Fprintf(&b, "<h2>%s</h2>", html.EscapeString(group.Category))
		b.WriteString("<table><tr><th>Vendor</th><th>Status</th><th>Contact</th><th class=\"price\">Price</th></tr>")
		for _, v := range group.Vendors {
			b.WriteString("<tr><td>")
			fmt.Fprintf(&b, "<div class=\"vendor\">%s</div>", html.EscapeString(v.Name))
			if v.Address != "" {
				fmt.Fprintf(&b, "<div class=\"muted\">%s</div>", html.EscapeString(v.Address))
			}
			if v.Notes != "" {
				fmt.Fprintf(&b, "<div class=\"muted\">%s</div>", html.EscapeString(v.Notes))
			}
			b.WriteString("</td><td>")
			fmt.Fprintf(&b, `<span class="badge" style="background:%s">%s</span>`,
				sourcing.StatusColor(v.Status), html.EscapeString(sourcing.StatusLabel(v.Status)))
			b.WriteString("</td><td>")
			for _, line := range []string{v.Phone, v.Website} {
				if line != "" {
					fmt.Fprintf(&b, "<div class=\"muted\">%s</div>", html.EscapeString(line))
				}
			}
			b.WriteString("</td><td class=\"price\">")
			if v.FinalPrice != nil {
				fmt.Fprintf(&b, "<div class=\"vendor\">$%.2f</div>", *v.FinalPrice)
			}
			if v.QuotedPrice != nil {
				fmt.Fprintf(&b, "<div class=\"muted\">quoted $%.2f</div>", *v.QuotedPrice)
			}
			if v.FinalPrice == nil && v.QuotedPrice == nil && v.PriceRange != "" {
				fmt.Fprintf(&b, "<div class=\"muted\">%s</div>", html.EscapeString(v.PriceRange))
			}
			b.WriteString("</td></tr>")
		}
		b.WriteString("</table>")
	}

	b.WriteString(`<div class="summary"><strong>Pipeline summary:</strong> `)
	counts := sourcing.CountByStatus(vendors)
	var parts []string
	for _, s := range sourcing.Statuses {
		if n := counts[s.Value]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s: %d", s.Label, n))
		}
	}
	if len(parts) == 0 {
		b.WriteString("no vendors sourced yet")
	} else {
		b.WriteString(html.EscapeString(strings.Join(parts, " · ")))
	}
	b.WriteString("</div></body></html>")

	return b.String()
}
