package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_ToHTMLSanitized(t *testing.T) {
	svc := NewService()

	html, err := svc.ToHTMLSanitized("**bold** and _italic_")
	require.NoError(t, err)
	assert.Contains(t, html, "<strong>bold</strong>")
	assert.Contains(t, html, "<em>italic</em>")
}

func TestService_ToHTMLSanitized_StripsScripts(t *testing.T) {
	svc := NewService()

	html, err := svc.ToHTMLSanitized("hello <script>alert('x')</script> world")
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
	assert.NotContains(t, html, "alert")
}

func TestService_Sanitize(t *testing.T) {
	svc := NewService()

	clean := svc.Sanitize(`<p onclick="evil()">text</p>`)
	assert.Contains(t, clean, "text")
	assert.NotContains(t, clean, "onclick")
}
