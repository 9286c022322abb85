package service

import (
	"math"
	"physician_assessment_backend/internal/catalog"
	"physician_assessment_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// strongScores keeps every category above the improvement threshold so only
// the tier entry is produced.
func strongScores(cat *catalog.Catalog) map[string]float64 {
	scores := make(map[string]float64)
	for _, c := range cat.Categories() {
		scores[c.Name] = 5.0
	}
	return scores
}

func TestTierBoundaries(t *testing.T) {
	cat := catalog.Default()
	s := NewRecommendationService(cat)

	tests := []struct {
		name    string
		overall float64
		want    string
	}{
		{"excellent boundary", 4.5, "Excellent"},
		{"just below excellent", 4.49999, "Very Good"},
		{"very good boundary", 4.0, "Very Good"},
		{"good boundary", 3.5, "Good"},
		{"fair boundary", 3.0, "Fair"},
		{"just below fair", 2.9999, "Needs Improvement"},
		{"floor", 0.0, "Needs Improvement"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs, err := s.Generate(strongScores(cat), tt.overall)
			require.NoError(t, err)
			require.NotEmpty(t, recs)
			assert.Equal(t, tt.want, recs[0].Level)
			assert.NotEmpty(t, recs[0].Message)
			assert.NotEmpty(t, recs[0].Icon)
		})
	}
}

func TestAllMaxProducesOnlyTierEntry(t *testing.T) {
	cat := catalog.Default()
	s := NewRecommendationService(cat)

	recs, err := s.Generate(strongScores(cat), 5.0)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Excellent", recs[0].Level)
}

func TestAllZeroProducesFullActionPlan(t *testing.T) {
	cat := catalog.Default()
	s := NewRecommendationService(cat)

	scores := make(map[string]float64)
	for _, c := range cat.Categories() {
		scores[c.Name] = 0.0
	}

	recs, err := s.Generate(scores, 0.0)
	require.NoError(t, err)

	// Tier entry + focus areas + one entry per category.
	require.Len(t, recs, 2+len(cat.Categories()))
	assert.Equal(t, "Needs Improvement", recs[0].Level)

	focus := recs[1]
	assert.Equal(t, "Focus Areas", focus.Level)
	assert.Equal(t,
		"Priority areas for improvement: Personal Connect, Trust of Your Trade, Social Trust, Treating Style",
		focus.Message)

	for i, c := range cat.Categories() {
		entry := recs[2+i]
		assert.Equal(t, c.Name, entry.Category)
		assert.Equal(t, 0.0, entry.Score)
		assert.Equal(t, "High", entry.Priority)
		assert.Equal(t, c.Actions, entry.Actions)
	}
}

func TestPriorityClassification(t *testing.T) {
	cat := catalog.Default()
	s := NewRecommendationService(cat)
	categories := cat.Categories()

	scores := strongScores(cat)
	scores[categories[0].Name] = 2.99
	scores[categories[1].Name] = 3.0
	scores[categories[2].Name] = 3.99

	recs, err := s.Generate(scores, 3.7)
	require.NoError(t, err)
	require.Len(t, recs, 5)

	assert.Equal(t, "Good", recs[0].Level)
	assert.Equal(t, "Focus Areas", recs[1].Level)

	assert.Equal(t, "High", recs[2].Priority)
	assert.Equal(t, "Medium", recs[3].Priority)
	assert.Equal(t, "Medium", recs[4].Priority)
}

func TestFocusAreasFollowCatalogOrder(t *testing.T) {
	cat := catalog.Default()
	s := NewRecommendationService(cat)
	categories := cat.Categories()

	scores := strongScores(cat)
	scores[categories[3].Name] = 1.0
	scores[categories[1].Name] = 2.0

	recs, err := s.Generate(scores, 3.8)
	require.NoError(t, err)
	require.Len(t, recs, 4)

	assert.Equal(t,
		"Priority areas for improvement: Trust of Your Trade, Treating Style",
		recs[1].Message)
	assert.Equal(t, categories[1].Name, recs[2].Category)
	assert.Equal(t, categories[3].Name, recs[3].Category)
}

func TestGenerateRejectsInvalidScores(t *testing.T) {
	cat := catalog.Default()
	s := NewRecommendationService(cat)

	tests := []struct {
		name    string
		scores  map[string]float64
		overall float64
		wantErr error
	}{
		{"empty scores", map[string]float64{}, 4.0, util.ErrEmptyScores},
		{"overall above scale", strongScores(cat), 5.1, util.ErrScoreOutOfRange},
		{"overall negative", strongScores(cat), -0.1, util.ErrScoreOutOfRange},
		{"overall NaN", strongScores(cat), math.NaN(), util.ErrScoreOutOfRange},
		{
			"category above scale",
			map[string]float64{cat.Categories()[0].Name: 6.0},
			4.0,
			util.ErrScoreOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs, err := s.Generate(tt.scores, tt.overall)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, recs)
		})
	}
}
