package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_ToHTMLSanitized(t *testing.T) {
	r := NewRenderer()

	out, err := r.ToHTMLSanitized("**Yes**, agencies can list up to 50 properties.\n\n<script>alert(1)</script>")
	require.NoError(t, err)
	assert.Contains(t, out, "<strong>Yes</strong>")
	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, "alert(1)</script>")
}

func TestRenderer_LinksAreNofollow(t *testing.T) {
	out, err := NewRenderer().ToHTMLSanitized("[plans](https://darna.dz/plans)")
	require.NoError(t, err)
	assert.Contains(t, out, `href="https://darna.dz/plans"`)
	assert.Contains(t, out, "nofollow")
}

func TestRenderer_StripTags(t *testing.T) {
	r := NewRenderer()
	assert.Equal(t, "Is the flat still available?", r.StripTags("<b>Is the flat</b> still available?"))
	assert.Equal(t, "hi", r.StripTags(`<img src=x onerror="x()">hi`))
}
