package components_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devgenius/devgenius/web/src/templates/components"
)

func TestFeatureCardRendersAllValuesVerbatim(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, components.FeatureCard("A", "B", "C").Render(&buf))
	html := buf.String()

	assert.Contains(t, html, ">A<")
	assert.Contains(t, html, ">B<")
	assert.Contains(t, html, ">C<")
}

func TestFeatureCardEmptyValuesRenderEmptyElements(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, components.FeatureCard("", "", "").Render(&buf))
	html := buf.String()

	// No validation: empty inputs produce empty elements, not an error.
	assert.Contains(t, html, "<h3")
	assert.Contains(t, html, "<p")
}

func TestFeatureCardEscapesMarkup(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, components.FeatureCard("<script>", "desc", "icon").Render(&buf))

	assert.NotContains(t, buf.String(), "<script>")
}
