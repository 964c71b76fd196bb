package tools

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"
	"toolserver/internal/docindex"
	"toolserver/internal/fetcher"
	"toolserver/internal/safeurl"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/require"
)

func callReq(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args

	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()

	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)

	return tc.Text
}

func newTestServer(t *testing.T, f *fetcher.Fetcher) *Server {
	t.Helper()

	idx, err := docindex.New([]docindex.Document{
		{Filename: "docs/context.md", Content: "The context object carries deadlines and cancellation."},
		{Filename: "docs/install.md", Content: "Install with your package manager."},
	}, docindex.Options{TopK: 5, SnippetLength: 1500})
	require.NoError(t, err)
	t.Cleanup(func() { _ = idx.Close() })

	if f == nil {
		f = fetcher.New(safeurl.New(safeurl.Options{}), fetcher.Options{
			Timeout:        time.Second,
			MaxContentSize: 1 << 20,
			MaxRedirects:   5,
		})
	}

	return New("test", f, idx)
}

func TestHandleAdd(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, nil)

	res, err := s.handleAdd(context.Background(), callReq(map[string]any{"a": float64(2), "b": float64(40)}))
	require.NoError(t, err)
	require.False(t, res.IsError)
	require.Equal(t, "42", resultText(t, res))

	// missing argument is a tool error, not a protocol error
	res, err = s.handleAdd(context.Background(), callReq(map[string]any{"a": float64(1)}))
	require.NoError(t, err)
	require.True(t, res.IsError)
}

func TestHandleGetPageContent(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("page body"))
	}))
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	f := fetcher.New(safeurl.New(safeurl.Options{Allowlist: []string{u.Hostname()}}), fetcher.Options{
		Timeout:        5 * time.Second,
		MaxContentSize: 1 << 20,
		MaxRedirects:   5,
	})
	s := newTestServer(t, f)

	res, err := s.handleGetPageContent(context.Background(), callReq(map[string]any{"url": srv.URL}))
	require.NoError(t, err)
	require.Equal(t, "page body", resultText(t, res))
}

func TestHandleGetPageContent_UnsafeURLReturnsReasonAsText(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, nil)

	res, err := s.handleGetPageContent(context.Background(), callReq(map[string]any{"url": "http://localhost/admin"}))
	require.NoError(t, err)
	require.False(t, res.IsError, "safety rejections are tool output, not errors")
	require.Equal(t, "access to localhost is not permitted", resultText(t, res))
}

func TestHandleSearchDocumentation(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, nil)

	res, err := s.handleSearchDocumentation(context.Background(), callReq(map[string]any{"query": "cancellation"}))
	require.NoError(t, err)
	require.False(t, res.IsError)
	require.NotEmpty(t, res.Content)
	require.Contains(t, resultText(t, res), "--- SOURCE: docs/context.md ---")

	// missing query
	res, err = s.handleSearchDocumentation(context.Background(), callReq(nil))
	require.NoError(t, err)
	require.True(t, res.IsError)
}
