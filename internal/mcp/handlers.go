package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/ziadkadry99/folio/internal/interact"
	"github.com/ziadkadry99/folio/internal/pages"
	"github.com/ziadkadry99/folio/internal/render"
)

// handleListPages summarises every page. A page whose data fails to load is
// listed with the error instead of failing the whole call.
func (s *Server) handleListPages(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var sb strings.Builder
	for _, p := range pages.All() {
		sb.WriteString(fmt.Sprintf("## %s (%s)\n", p.Title, p.Name))
		sb.WriteString(fmt.Sprintf("Path: %s\n", p.Path))
		v, err := p.Open(ctx, s.env)
		if err != nil {
			s.logger.Warn("page load failed", zap.String("page", p.Name), zap.Error(err))
			sb.WriteString(fmt.Sprintf("Error: %v\n\n", err))
			continue
		}
		snap := v.Snapshot()
		sb.WriteString(fmt.Sprintf("Records: %d\n", snap.Total))
		if p.Interactive {
			sb.WriteString(fmt.Sprintf("Filters: %s\n", strings.Join(snap.Filters, ", ")))
		}
		if len(snap.Vocabulary) > 0 {
			sb.WriteString(fmt.Sprintf("Tags: %s\n", strings.Join(snap.Vocabulary, ", ")))
		}
		sb.WriteString("\n")
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// handleSelectRecords replays the requested selection on a fresh view and
// lists the visible records.
func (s *Server) handleSelectRecords(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	v, res := s.openSelected(ctx, request, splitTags(request.GetString("tags", "")))
	if res != nil {
		return res, nil
	}

	records := v.Visible()
	snap := v.Snapshot()
	if len(records) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No records match (0 of %d).", snap.Total)), nil
	}
	if limit := request.GetInt("limit", 0); limit > 0 && limit < len(records) {
		records = records[:limit]
	}
	return mcp.NewToolResultText(formatRecords(snap.Visible, snap.Total, records)), nil
}

// handleRenderPage returns the page's current tree as HTML.
func (s *Server) handleRenderPage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	v, res := s.openSelected(ctx, request, nil)
	if res != nil {
		return res, nil
	}
	out, err := render.HTML(v.Tree())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("render failed: %v", err)), nil
	}
	return mcp.NewToolResultText(out), nil
}

// openSelected opens the requested page and applies filter, tags and search.
// A non-nil result is a tool error to return as is.
func (s *Server) openSelected(ctx context.Context, request mcp.CallToolRequest, tags []string) (pages.View, *mcp.CallToolResult) {
	name, err := request.RequireString("page")
	if err != nil {
		return nil, mcp.NewToolResultError("missing required parameter: page")
	}
	p, err := pages.Lookup(name)
	if err != nil {
		return nil, mcp.NewToolResultError(fmt.Sprintf("%v. Use list_pages to see the available pages.", err))
	}
	v, err := p.Open(ctx, s.env)
	if err != nil {
		return nil, mcp.NewToolResultError(fmt.Sprintf("failed to load %s: %v", name, err))
	}

	events := interact.QueryEvents(request.GetString("filter", ""), tags, request.GetString("search", ""))
	if err := interact.Replay(v, events...); err != nil {
		if errors.Is(err, pages.ErrNotInteractive) {
			return nil, mcp.NewToolResultError(fmt.Sprintf("page %s has no filters or search", name))
		}
		return nil, mcp.NewToolResultError(err.Error())
	}
	return v, nil
}

func splitTags(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// formatRecords renders the visible records for agent consumption.
func formatRecords(visible, total int, records []pages.Entry) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Showing %d of %d record(s):\n", visible, total))
	for i, e := range records {
		sb.WriteString(fmt.Sprintf("\n--- %d. %s ---\n", i+1, e.Title))
		sb.WriteString(fmt.Sprintf("ID: %s\n", e.ID))
		if e.Path != "" {
			sb.WriteString(fmt.Sprintf("Link: %s\n", e.Path))
		}
		if e.Summary != "" {
			sb.WriteString(e.Summary)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
