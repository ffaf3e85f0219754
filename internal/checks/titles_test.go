package checks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/isawnyu/pleiades-quality/internal/place"
)

func TestQuestionMarkTitles(t *testing.T) {
	detail, failed := questionMarkTitles(&place.Place{Title: "Ad Fines?"})
	assert.True(t, failed)
	assert.Equal(t, "Ad Fines?", detail)

	_, failed = questionMarkTitles(&place.Place{Title: "Ad Fines"})
	assert.False(t, failed)
}
