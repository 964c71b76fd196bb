package docindex_test

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"toolserver/internal/docindex"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func buildZip(t *testing.T, files map[string]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range files {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	return buf.Bytes()
}

func testOptions() docindex.Options {
	return docindex.Options{TopK: 5, SnippetLength: 1500}
}

func TestParseArchive(t *testing.T) {
	t.Parallel()

	data := buildZip(t, map[string]string{
		"repo-main/README.md":        "# Readme",
		"repo-main/docs/intro.mdx":   "Getting started guide",
		"repo-main/docs/setup.txt":   "not markdown",
		"repo-main/src/code.go":      "package main",
		"toplevel.md":                "no directory prefix",
		"repo-main/docs/broken.md":   "ok \xff\xfe bytes",
		"repo-main/docs/nested/x.md": "nested doc",
	})

	docs, err := docindex.ParseArchive(data)
	require.NoError(t, err)

	byName := map[string]string{}
	for _, d := range docs {
		byName[d.Filename] = d.Content
	}

	// top-level directory is stripped
	require.Contains(t, byName, "README.md")
	require.Contains(t, byName, "docs/intro.mdx")
	require.Contains(t, byName, "docs/nested/x.md")
	// non-markdown entries are skipped
	require.NotContains(t, byName, "docs/setup.txt")
	require.NotContains(t, byName, "src/code.go")
	// entries without a directory prefix keep their name
	require.Contains(t, byName, "toplevel.md")
	// invalid UTF-8 is dropped, not replaced
	require.Equal(t, "ok  bytes", byName["docs/broken.md"])
}

func TestParseArchive_NotAZip(t *testing.T) {
	t.Parallel()

	_, err := docindex.ParseArchive([]byte("definitely not a zip"))
	require.Error(t, err)
}

func TestFetchDocuments(t *testing.T) {
	t.Parallel()

	data := buildZip(t, map[string]string{"repo-main/docs/a.md": "alpha doc"})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(data)
	}))
	t.Cleanup(srv.Close)

	docs, err := docindex.FetchDocuments(context.Background(), srv.URL, 10*time.Second)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	require.Equal(t, "docs/a.md", docs[0].Filename)
}

func TestFetchDocuments_BadStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	_, err := docindex.FetchDocuments(context.Background(), srv.URL, 10*time.Second)
	require.Error(t, err)
}

func TestIndex_Search(t *testing.T) {
	t.Parallel()

	docs := []docindex.Document{
		{Filename: "docs/context.md", Content: "The context object carries deadlines and cancellation signals."},
		{Filename: "docs/tools.md", Content: "Tools are functions exposed to the agent over the protocol."},
		{Filename: "docs/install.md", Content: "Install with the package manager of your choice."},
	}

	idx, err := docindex.New(docs, testOptions())
	require.NoError(t, err)
	t.Cleanup(func() { _ = idx.Close() })

	n, err := idx.Size()
	require.NoError(t, err)
	require.EqualValues(t, 3, n)

	results, err := idx.Search(context.Background(), "cancellation deadlines")
	require.NoError(t, err)
	require.NotEmpty(t, results)
	require.True(t, strings.HasPrefix(results[0], "--- SOURCE: docs/context.md ---\n"), results[0])
	require.Contains(t, results[0], "cancellation")

	// no hits for nonsense
	results, err = idx.Search(context.Background(), "zzzzqqqq")
	require.NoError(t, err)
	require.Empty(t, results)
}

func TestIndex_Search_TopKAndSnippetLength(t *testing.T) {
	t.Parallel()

	var docs []docindex.Document
	for i := range 10 {
		docs = append(docs, docindex.Document{
			Filename: fmt.Sprintf("docs/page%d.md", i),
			Content:  "widget assembly instructions " + strings.Repeat("detail ", 100),
		})
	}

	idx, err := docindex.New(docs, docindex.Options{TopK: 3, SnippetLength: 50})
	require.NoError(t, err)
	t.Cleanup(func() { _ = idx.Close() })

	results, err := idx.Search(context.Background(), "widget")
	require.NoError(t, err)
	require.Len(t, results, 3)
	for _, res := range results {
		_, body, ok := strings.Cut(res, "---\n")
		require.True(t, ok)
		require.LessOrEqual(t, len(strings.TrimSuffix(body, "...")), 50)
	}
}

func TestIndex_Search_SnippetKeepsRunesIntact(t *testing.T) {
	t.Parallel()

	// "widget " is 7 bytes; each é is 2 bytes, so a byte cut at 10 would land
	// in the middle of a rune
	docs := []docindex.Document{
		{Filename: "docs/accents.md", Content: "widget " + strings.Repeat("é", 100)},
	}

	idx, err := docindex.New(docs, docindex.Options{TopK: 1, SnippetLength: 10})
	require.NoError(t, err)
	t.Cleanup(func() { _ = idx.Close() })

	results, err := idx.Search(context.Background(), "widget")
	require.NoError(t, err)
	require.Len(t, results, 1)

	_, body, ok := strings.Cut(results[0], "---\n")
	require.True(t, ok)
	snippet := strings.TrimSuffix(body, "...")
	require.True(t, utf8.ValidString(snippet), "snippet split a multi-byte rune: %q", snippet)
	require.LessOrEqual(t, len(snippet), 10)
}
