package fetcher

import (
	"bytes"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
	readability "github.com/go-shiori/go-readability"
)

var excessiveLinesRe = regexp.MustCompile(`\n{4,}`)

// Converter turns fetched HTML into markdown. Main-content extraction runs
// first so navigation, footers and scripts do not end up in the output.
type Converter struct {
	converter *md.Converter
}

// NewConverter creates a new HTML to markdown converter.
func NewConverter() *Converter {
	converter := md.NewConverter("", true, nil)
	converter.Use(plugin.GitHubFlavored())

	return &Converter{
		converter: converter,
	}
}

// Convert extracts the main content of the HTML document fetched from pageURL
// and renders it as markdown. When readability cannot identify an article, the
// whole document is converted instead.
func (c *Converter) Convert(pageURL string, htmlContent []byte) (string, error) {
	content := string(htmlContent)

	if parsed, err := url.Parse(pageURL); err == nil {
		if article, err := readability.FromReader(bytes.NewReader(htmlContent), parsed); err == nil && article.Content != "" {
			content = article.Content
		}
	}

	markdown, err := c.converter.ConvertString(content)
	if err != nil {
		return "", fmt.Errorf("could not convert HTML to markdown: %w", err)
	}

	return cleanMarkdown(markdown), nil
}

// cleanMarkdown trims trailing whitespace per line and collapses runs of more
// than two blank lines.
func cleanMarkdown(content string) string {
	content = excessiveLinesRe.ReplaceAllString(content, "\n\n\n")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}
