package fetcher_test

import (
	"strings"
	"testing"
	"toolserver/internal/fetcher"

	"github.com/stretchr/testify/require"
)

func TestConverter_Convert_ExtractsArticle(t *testing.T) {
	t.Parallel()

	c := fetcher.NewConverter()

	html := `<html><head><title>Guide</title></head><body>
		<nav><a href="/">home</a><a href="/about">about</a></nav>
		<article>
			<h1>Usage</h1>
			<p>Call <code>Run</code> with a context. See the <a href="/docs">docs</a>.</p>
			<ul><li>first</li><li>second</li></ul>
		</article>
		<footer>copyright</footer>
	</body></html>`

	got, err := c.Convert("https://example.com/guide", []byte(html))
	require.NoError(t, err)
	require.Contains(t, got, "Usage")
	require.Contains(t, got, "`Run`")
	require.Contains(t, got, "- first")
	require.NotContains(t, got, "<article>")
}

func TestConverter_Convert_FallsBackToWholeDocument(t *testing.T) {
	t.Parallel()

	c := fetcher.NewConverter()

	// no article structure for readability to latch onto
	got, err := c.Convert("https://example.com/", []byte("<p>tiny page</p>"))
	require.NoError(t, err)
	require.Contains(t, got, "tiny page")
}

func TestConverter_Convert_CollapsesBlankLines(t *testing.T) {
	t.Parallel()

	c := fetcher.NewConverter()

	html := "<p>a</p><br><br><br><br><br><p>b</p>"
	got, err := c.Convert("https://example.com/", []byte(html))
	require.NoError(t, err)
	require.NotContains(t, got, strings.Repeat("\n", 4))
	require.False(t, strings.HasSuffix(got, "\n"))
}
