package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogShape(t *testing.T) {
	cat := Default()

	categories := cat.Categories()
	require.Len(t, categories, 4)
	assert.Equal(t, 20, cat.TotalQuestions())

	for _, c := range categories {
		assert.Len(t, c.Questions, 5, "category %q", c.Name)
		assert.Len(t, c.Actions, 5, "category %q", c.Name)
		for _, q := range c.Questions {
			assert.Len(t, q.Options, 5, "question %q", q.Text)
			assert.Equal(t, 4, q.MaxAnswer())
			assert.Greater(t, q.Weight, 0.0, "question %q", q.Text)
		}
	}
}

func TestCategoryLookup(t *testing.T) {
	cat := Default()

	c, ok := cat.Category("Personal Connect (Do You Care About Me?)")
	require.True(t, ok)
	assert.Equal(t, "Personal Connect", c.ShortName())

	_, ok = cat.Category("Nonexistent")
	assert.False(t, ok)
}

func TestShortNames(t *testing.T) {
	cat := Default()

	want := []string{"Personal Connect", "Trust of Your Trade", "Social Trust", "Treating Style"}
	for i, c := range cat.Categories() {
		assert.Equal(t, want[i], c.ShortName())
	}
}

func TestTierTable(t *testing.T) {
	tiers := Default().Tiers()
	require.Len(t, tiers, 5)

	// Ordered high to low so first-match selection works.
	for i := 1; i < len(tiers); i++ {
		assert.Less(t, tiers[i].Threshold, tiers[i-1].Threshold)
	}
	assert.Equal(t, "Excellent", tiers[0].Level)
	assert.Equal(t, "Needs Improvement", tiers[len(tiers)-1].Level)
	assert.Equal(t, 0.0, tiers[len(tiers)-1].Threshold)

	for _, tier := range tiers {
		assert.NotEmpty(t, tier.Message)
		assert.NotEmpty(t, tier.Icon)
	}
}
