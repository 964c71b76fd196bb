// Package docindex builds an in-memory full-text index over a documentation
// archive and serves search queries for the search_documentation tool.
package docindex

import (
	"context"
	"fmt"
	"unicode/utf8"

	"toolserver/internal/config"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
)

// Options configure index construction and search behavior. These settings are
// typically derived from application configuration.
type Options struct {
	// TopK is the number of results returned per search.
	TopK int
	// SnippetLength is the maximum number of characters included per result snippet.
	SnippetLength int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		TopK:          cfg.Docs.TopK,
		SnippetLength: cfg.Docs.SnippetLength,
	}
}

// Index is an in-memory full-text index over documentation files. It is
// immutable after construction and safe for concurrent searches.
type Index struct {
	options Options
	index   bleve.Index
}

// New indexes the given documents in memory. Document content is analyzed as
// text; filenames are indexed verbatim so exact-path lookups work.
func New(docs []Document, options Options) (*Index, error) {
	contentField := bleve.NewTextFieldMapping()
	filenameField := bleve.NewTextFieldMapping()
	filenameField.Analyzer = keyword.Name

	docMapping := bleve.NewDocumentMapping()
	docMapping.AddFieldMappingsAt("content", contentField)
	docMapping.AddFieldMappingsAt("filename", filenameField)

	indexMapping := bleve.NewIndexMapping()
	indexMapping.DefaultMapping = docMapping

	index, err := bleve.NewMemOnly(indexMapping)
	if err != nil {
		return nil, fmt.Errorf("could not create search index: %w", err)
	}

	batch := index.NewBatch()
	for _, doc := range docs {
		if err := batch.Index(doc.Filename, map[string]any{
			"filename": doc.Filename,
			"content":  doc.Content,
		}); err != nil {
			return nil, fmt.Errorf("could not index document %q: %w", doc.Filename, err)
		}
	}
	if err := index.Batch(batch); err != nil {
		return nil, fmt.Errorf("could not index documents: %w", err)
	}

	return &Index{
		options: options,
		index:   index,
	}, nil
}

// Search returns up to TopK matching documents formatted as snippets with
// their source filename, best match first.
func (i *Index) Search(ctx context.Context, query string) ([]string, error) {
	match := bleve.NewMatchQuery(query)
	match.SetField("content")

	req := bleve.NewSearchRequestOptions(match, i.options.TopK, 0, false)
	req.Fields = []string{"filename", "content"}

	res, err := i.index.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("could not search index: %w", err)
	}

	out := make([]string, 0, len(res.Hits))
	for _, hit := range res.Hits {
		filename, _ := hit.Fields["filename"].(string)
		content, _ := hit.Fields["content"].(string)

		// truncate to keep result payloads small for the agent; back off to a
		// rune boundary so a multi-byte character is never split
		snippet := content
		if len(snippet) > i.options.SnippetLength {
			cut := i.options.SnippetLength
			for cut > 0 && !utf8.RuneStart(snippet[cut]) {
				cut--
			}
			snippet = snippet[:cut]
		}

		out = append(out, fmt.Sprintf("--- SOURCE: %s ---\n%s...", filename, snippet))
	}

	return out, nil
}

// Size returns the number of indexed documents.
func (i *Index) Size() (uint64, error) {
	n, err := i.index.DocCount()
	if err != nil {
		return 0, fmt.Errorf("could not count indexed documents: %w", err)
	}

	return n, nil
}

// Close releases the index resources.
func (i *Index) Close() error {
	if err := i.index.Close(); err != nil {
		return fmt.Errorf("could not close search index: %w", err)
	}

	return nil
}
