package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderMarkdown(t *testing.T) {
	html, err := RenderMarkdown("## Title\n\nA [link](https://example.com).\n\n- one\n- two\n")

	require.NoError(t, err)
	out := string(html)
	assert.Contains(t, out, `<h2 id="title">Title</h2>`)
	assert.Contains(t, out, `<a href="https://example.com">link</a>`)
	assert.Contains(t, out, "<li>one</li>")
}

func TestRenderMarkdownGFMTable(t *testing.T) {
	html, err := RenderMarkdown("| a | b |\n|---|---|\n| 1 | 2 |\n")

	require.NoError(t, err)
	assert.Contains(t, string(html), "<table>")
}
