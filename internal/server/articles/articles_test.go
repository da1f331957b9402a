package articles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/plantpal/internal/models"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	list := c.List()
	require.Len(t, list, 3)
	assert.Equal(t, "1", list[0].ID)
	assert.Equal(t, models.ArticleGuide, list[0].Type)
	assert.Equal(t, "Decoding Sunlight: How Much Light Does Your Plant Need?", list[1].Title)
	assert.Contains(t, list[1].Content, "*   **Low light:**")
}

func TestList_ReturnsCopy(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	l := c.List()
	l[0].Title = "changed"
	assert.NotEqual(t, "changed", c.List()[0].Title)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("- id: x\n  title: t\n  type: Blog\n"))
	assert.ErrorContains(t, err, "unknown type")

	_, err = Parse([]byte("- title: t\n  type: Guide\n"))
	assert.ErrorContains(t, err, "required")

	_, err = Parse([]byte(":"))
	assert.Error(t, err)
}
