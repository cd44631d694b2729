package htmlward_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corrinfield/htmlward"
)

func TestDefaultPolicyAllowsFormattingAndStripsScripts(t *testing.T) {
	policy := htmlward.DefaultPolicy()
	got, err := htmlward.Sanitize(`<p>Hello <strong>World</strong></p><script>alert(1)</script>`, policy)
	require.NoError(t, err)
	assert.Contains(t, got, "<strong>World</strong>")
	assert.NotContains(t, got, "script")
}

func TestDefaultPolicyKeepsSafeLinkAttributes(t *testing.T) {
	policy := htmlward.DefaultPolicy()
	got, err := htmlward.Sanitize(`<a href="https://example.com" onclick="evil()">link</a>`, policy)
	require.NoError(t, err)
	assert.Contains(t, got, `href="https://example.com"`)
	assert.NotContains(t, got, "onclick")
}

func TestStrictPolicyDropsUnlistedTags(t *testing.T) {
	policy := htmlward.StrictPolicy()
	got, err := htmlward.Sanitize(`<p>keep <b>bold</b></p><div>gone</div>`, policy)
	require.NoError(t, err)
	assert.Contains(t, got, "keep")
	assert.Contains(t, got, "<b>bold</b>")
	assert.NotContains(t, got, "div")
}

func TestStrictPolicyStripsAllAttributes(t *testing.T) {
	policy := htmlward.StrictPolicy()
	got, err := htmlward.Sanitize(`<p id="x" class="y">hi</p>`, policy)
	require.NoError(t, err)
	assert.Equal(t, `<p>hi</p>`, got)
}
