package docindex

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Document is a single markdown file extracted from the docs archive.
type Document struct {
	// Filename is the archive entry path with the top-level directory stripped,
	// e.g. "docs/intro.md".
	Filename string
	// Content is the file body, invalid UTF-8 sequences dropped.
	Content string
}

// FetchDocuments downloads the zip archive at archiveURL and returns its
// markdown documents. The download is bounded by timeout.
func FetchDocuments(ctx context.Context, archiveURL string, timeout time.Duration) ([]Document, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, archiveURL, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create archive request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not download docs archive: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("could not download docs archive: unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read docs archive: %w", err)
	}

	return ParseArchive(data)
}

// ParseArchive extracts markdown documents from zip archive bytes. Only .md
// and .mdx entries are kept; the leading top-level directory that archive
// exports put around their contents is stripped from entry names.
func ParseArchive(data []byte) ([]Document, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("could not open docs archive: %w", err)
	}

	var docs []Document
	for _, entry := range r.File {
		if entry.FileInfo().IsDir() {
			continue
		}
		name := entry.Name
		if !strings.HasSuffix(name, ".md") && !strings.HasSuffix(name, ".mdx") {
			continue
		}

		if i := strings.Index(name, "/"); i >= 0 {
			name = name[i+1:]
		}
		if name == "" {
			continue
		}

		rc, err := entry.Open()
		if err != nil {
			return nil, fmt.Errorf("could not open archive entry %q: %w", entry.Name, err)
		}
		content, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			return nil, fmt.Errorf("could not read archive entry %q: %w", entry.Name, err)
		}

		docs = append(docs, Document{
			Filename: name,
			Content:  strings.ToValidUTF8(string(content), ""),
		})
	}

	return docs, nil
}
