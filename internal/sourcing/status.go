// Package sourcing implements the vendor sourcing pipeline: the status
// domain, per-status aggregation, display ordering and research import
// deduplication.
package sourcing

// Pipeline statuses in rough sourcing order. The order is presentational
// only; a vendor may move from any status to any other at any time.
const (
	StatusIdentified       = "identified"
	StatusContacted        = "contacted"
	StatusRFPSent          = "rfp_sent"
	StatusProposalReceived = "proposal_received"
	StatusNegotiating      = "negotiating"
	StatusSelected         = "selected"
	StatusContracted       = "contracted"
	StatusDeclined         = "declined"
)

// StatusInfo carries the badge label and color for one status.
type StatusInfo struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// Statuses is the fixed, ordered status domain.
var Statuses = []StatusInfo{
	{StatusIdentified, "Identified", "#6b7280"},
	{StatusContacted, "Contacted", "#3b82f6"},
	{StatusRFPSent, "RFP Sent", "#8b5cf6"},
	{StatusProposalReceived, "Proposal Received", "#eab308"},
	{StatusNegotiating, "Negotiating", "#f97316"},
	{StatusSelected, "Selected", "#22c55e"},
	{StatusContracted, "Contracted", "#15803d"},
	{StatusDeclined, "Declined", "#ef4444"},
}

var statusByValue = func() map[string]StatusInfo {
	m := make(map[string]StatusInfo, len(Statuses))
	for _, s := range Statuses {
		m[s.Value] = s
	}
	return m
}()

// IsValidStatus reports whether value is one of the eight known statuses.
func IsValidStatus(value string) bool {
	_, ok := statusByValue[value]
	return ok
}

// StatusLabel returns the display label for a status, or the raw value for an
// unknown one.
func StatusLabel(value string) string {
	if s, ok := statusByValue[value]; ok {
		return s.Label
	}
	return value
}

// StatusColor returns the badge color for a status, defaulting to the
// identified gray for unknown values.
func StatusColor(value string) string {
	if s, ok := statusByValue[value]; ok {
		return s.Color
	}
	return statusByValue[StatusIdentified].Color
}
