package mcp

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/folio/internal/loader"
	"github.com/ziadkadry99/folio/internal/pages"
)

func testServer(t *testing.T, dataDir string) *Server {
	t.Helper()
	return NewServer(pages.Env{
		Fetcher: loader.NewFSFetcher(dataDir),
		Now:     func() time.Time { return time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC) },
	}, nil)
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("empty result content")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content is %T, want mcp.TextContent", result.Content[0])
	}
	return text.Text
}

func call(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func TestToolDefinitions(t *testing.T) {
	tests := []struct {
		name     string
		tool     mcp.Tool
		wantName string
	}{
		{"list_pages", listPagesTool, "list_pages"},
		{"select_records", selectRecordsTool, "select_records"},
		{"render_page", renderPageTool, "render_page"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.tool.Name != tt.wantName {
				t.Errorf("tool name = %q, want %q", tt.tool.Name, tt.wantName)
			}
			if tt.tool.Description == "" {
				t.Error("tool description should not be empty")
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	srv := testServer(t, "../../testdata/site")
	if srv.mcp == nil {
		t.Fatal("MCP server not initialized")
	}
	if srv.env.Logger == nil {
		t.Error("env logger should default to the server logger")
	}
}

func TestHandleListPages(t *testing.T) {
	srv := testServer(t, "../../testdata/site")
	result, err := srv.handleListPages(context.Background(), call(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := resultText(t, result)
	for _, want := range []string{
		"## Conferences & Deadlines (conferences)",
		"Filters: all, conference, workshop, open, upcoming",
		"## Home (home)",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("list_pages output missing %q:\n%s", want, text)
		}
	}
}

func TestHandleListPagesReportsLoadErrors(t *testing.T) {
	srv := testServer(t, t.TempDir())
	result, err := srv.handleListPages(context.Background(), call(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatal("load failures should be reported inline")
	}
	if got := strings.Count(resultText(t, result), "Error:"); got != len(pages.Names()) {
		t.Errorf("errors = %d, want %d", got, len(pages.Names()))
	}
}

func TestHandleSelectRecords(t *testing.T) {
	srv := testServer(t, "../../testdata/site")
	ctx := context.Background()

	t.Run("filter", func(t *testing.T) {
		result, err := srv.handleSelectRecords(ctx, call(map[string]any{
			"page":   "conferences",
			"filter": "workshop",
		}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
		text := resultText(t, result)
		if !strings.Contains(text, "Showing 1 of 4") || !strings.Contains(text, "ID: cvpr-ws") {
			t.Errorf("unexpected output:\n%s", text)
		}
	})

	t.Run("tags and limit", func(t *testing.T) {
		result, err := srv.handleSelectRecords(ctx, call(map[string]any{
			"page":  "conferences",
			"tags":  " AI ,",
			"limit": 1,
		}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		text := resultText(t, result)
		if !strings.Contains(text, "Showing 2 of 4") || !strings.Contains(text, "ID: acl") || strings.Contains(text, "ID: neurips") {
			t.Errorf("unexpected output:\n%s", text)
		}
	})

	t.Run("no matches", func(t *testing.T) {
		result, err := srv.handleSelectRecords(ctx, call(map[string]any{
			"page":   "projects",
			"search": "zzz-nothing",
		}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Error("an empty selection should not be an error")
		}
		if text := resultText(t, result); !strings.HasPrefix(text, "No records match") {
			t.Errorf("unexpected output: %s", text)
		}
	})

	errorCases := []struct {
		name string
		args map[string]any
	}{
		{"missing page", map[string]any{}},
		{"unknown page", map[string]any{"page": "blog"}},
		{"unknown filter", map[string]any{"page": "conferences", "filter": "keynote"}},
		{"static page", map[string]any{"page": "home", "search": "jane"}},
	}
	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := srv.handleSelectRecords(ctx, call(tc.args))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !result.IsError {
				t.Error("expected tool error")
			}
		})
	}
}

func TestHandleRenderPage(t *testing.T) {
	srv := testServer(t, "../../testdata/site")
	result, err := srv.handleRenderPage(context.Background(), call(map[string]any{
		"page":   "teaching",
		"filter": "postgraduate",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %v", result.Content)
	}
	text := resultText(t, result)
	if !strings.Contains(text, `id="courses-container"`) || !strings.Contains(text, "DS5020") {
		t.Errorf("unexpected html:\n%s", text)
	}
	if strings.Contains(text, "IT1010") {
		t.Error("undergraduate course should be filtered out")
	}
}

func TestSplitTags(t *testing.T) {
	got := splitTags(" AI, NLP ,,")
	if len(got) != 2 || got[0] != "AI" || got[1] != "NLP" {
		t.Errorf("splitTags = %q", got)
	}
	if splitTags("") != nil {
		t.Error("empty input should give no tags")
	}
}
