package checks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_NamesAreUniqueAndOrdered(t *testing.T) {
	battery := Default()
	require.NotEmpty(t, battery)

	seen := map[string]bool{}
	for _, c := range battery {
		assert.NotEmpty(t, c.Name)
		assert.NotNil(t, c.Run)
		assert.False(t, seen[c.Name], "duplicate check name %s", c.Name)
		seen[c.Name] = true
	}

	// The battery starts with the title check and keeps the canonical order.
	assert.Equal(t, QuestionMarkTitles, battery[0].Name)
	assert.Equal(t, InadequateDescription, battery[len(battery)-1].Name)
}

func TestCategories_IncludesUnreadableRecord(t *testing.T) {
	cats := Categories(Default())
	assert.Len(t, cats, len(Default())+1)
	assert.Equal(t, UnreadableRecord, cats[len(cats)-1])
}
