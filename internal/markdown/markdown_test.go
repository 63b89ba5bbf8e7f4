package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderStripsInlineMarkers(t *testing.T) {
	out := Render("This is **important** and *subtle* with `code`.", 60)

	assert.NotContains(t, out, "**")
	assert.NotContains(t, out, "`")
	assert.Contains(t, out, "important")
	assert.Contains(t, out, "subtle")
	assert.Contains(t, out, "code")
}

func TestRenderHeadingAndList(t *testing.T) {
	src := "# Variables\n\nIntro text.\n\n- first\n- second\n"
	out := Render(src, 60)

	assert.Contains(t, out, "Variables")
	assert.Contains(t, out, "Intro text.")
	assert.Contains(t, out, "•")
	assert.Contains(t, out, "first")
	assert.Contains(t, out, "second")
}

func TestRenderOrderedList(t *testing.T) {
	out := Render("1. alpha\n2. beta\n", 60)

	assert.Contains(t, out, "1.")
	assert.Contains(t, out, "2.")
	assert.Contains(t, out, "alpha")
	assert.Contains(t, out, "beta")
}

func TestRenderCodeBlock(t *testing.T) {
	out := Render("```\nx = 1\n```\n", 60)
	assert.Contains(t, out, "x = 1")
	assert.NotContains(t, out, "```")
}

func TestRenderEmptyInput(t *testing.T) {
	assert.Equal(t, "", Render("", 60))
}

func TestRenderInlineBalancedMarkers(t *testing.T) {
	out := RenderInline("**bold** and *em* and `span`")

	assert.NotContains(t, out, "*")
	assert.NotContains(t, out, "`")
	assert.Contains(t, out, "bold")
	assert.Contains(t, out, "em")
	assert.Contains(t, out, "span")
}

func TestRenderInlineUnbalancedMarkerKept(t *testing.T) {
	out := RenderInline("2 ** 3 is eight")
	assert.True(t, strings.Contains(out, "**") || strings.Contains(out, "2"),
		"unbalanced markers must not eat surrounding text")
	assert.Contains(t, out, "is eight")
}
