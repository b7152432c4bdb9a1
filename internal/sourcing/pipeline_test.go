package sourcing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stagecraft-crm/models"
)

func intp(v int) *int { return &v }

func TestCountByStatus(t *testing.T) {
	vendors := []models.SourcedVendor{
		{Status: StatusIdentified},
		{Status: StatusIdentified},
		{Status: StatusContracted},
	}

	counts := CountByStatus(vendors)
	assert.Equal(t, map[string]int{
		StatusIdentified: 2,
		StatusContracted: 1,
	}, counts)

	// No zero-count entries for the other five statuses.
	assert.Len(t, counts, 2)
}

func TestCountByStatusEmpty(t *testing.T) {
	assert.Empty(t, CountByStatus(nil))
}

func TestSortVendors(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	vendors := []models.SourcedVendor{
		{Name: "old low", Priority: nil, CreatedAt: base},
		{Name: "new low", Priority: intp(0), CreatedAt: base.Add(time.Hour)},
		{Name: "high", Priority: intp(5), CreatedAt: base},
	}

	SortVendors(vendors)

	require.Len(t, vendors, 3)
	assert.Equal(t, "high", vendors[0].Name)
	assert.Equal(t, "new low", vendors[1].Name) // priority tie, recency breaks it
	assert.Equal(t, "old low", vendors[2].Name)
}

func TestGroupByCategory(t *testing.T) {
	vendors := []models.SourcedVendor{
		{Name: "v1", Category: "Venue"},
		{Name: "c1", Category: "Catering"},
		{Name: "n1", Category: ""},
		{Name: "v2", Category: "Venue"},
	}

	groups := GroupByCategory(vendors)
	require.Len(t, groups, 3)

	assert.Equal(t, "Catering", groups[0].Category)
	assert.Equal(t, "Venue", groups[1].Category)
	assert.Equal(t, "Other", groups[2].Category)

	// Within a category the incoming order is preserved.
	assert.Equal(t, "v1", groups[1].Vendors[0].Name)
	assert.Equal(t, "v2", groups[1].Vendors[1].Name)
	assert.Equal(t, "n1", groups[2].Vendors[0].Name)
}

func TestGroupByCategoryNoOtherBucketWhenAllCategorized(t *testing.T) {
	groups := GroupByCategory([]models.SourcedVendor{{Name: "v", Category: "Venue"}})
	require.Len(t, groups, 1)
	assert.Equal(t, "Venue", groups[0].Category)
}

func TestSelectNewCandidatesDedup(t *testing.T) {
	existing := []models.SourcedVendor{{Name: "Acme Catering"}}
	candidates := []Candidate{
		{Name: "acme catering"},    // case-insensitive duplicate, skipped
		{Name: "Acme Catering Co"}, // genuinely new
		{Name: "  "},               // blank, skipped
		{Name: "ACME CATERING CO"}, // duplicates the one above within the batch
	}

	fresh := SelectNewCandidates(existing, candidates)
	require.Len(t, fresh, 1)
	assert.Equal(t, "Acme Catering Co", fresh[0].Name)
}

func TestSelectNewCandidatesAllNew(t *testing.T) {
	fresh := SelectNewCandidates(nil, []Candidate{{Name: "A"}, {Name: "B"}})
	assert.Len(t, fresh, 2)
}

func TestSelectNewCandidatesNoneNew(t *testing.T) {
	existing := []models.SourcedVendor{{Name: "A"}}
	fresh := SelectNewCandidates(existing, []Candidate{{Name: "a"}})
	assert.Empty(t, fresh)
}

func TestStatusDomain(t *testing.T) {
	require.Len(t, Statuses, 8)
	assert.Equal(t, StatusIdentified, Statuses[0].Value)
	assert.Equal(t, StatusDeclined, Statuses[7].Value)

	assert.True(t, IsValidStatus(StatusRFPSent))
	assert.False(t, IsValidStatus("ghosted"))

	assert.Equal(t, "Proposal Received", StatusLabel(StatusProposalReceived))
	assert.Equal(t, "ghosted", StatusLabel("ghosted"))

	assert.Equal(t, "#15803d", StatusColor(StatusContracted))
	assert.Equal(t, StatusColor(StatusIdentified), StatusColor("ghosted"))
}
