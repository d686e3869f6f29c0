package mcp

import "github.com/mark3labs/mcp-go/mcp"

// listPagesTool defines the list_pages MCP tool.
var listPagesTool = mcp.NewTool("list_pages",
	mcp.WithDescription("List the portfolio pages with their filters, tag vocabulary and record counts."),
)

// selectRecordsTool defines the select_records MCP tool.
var selectRecordsTool = mcp.NewTool("select_records",
	mcp.WithDescription("Apply a filter, tags and a search query to one page and return the visible records in display order."),
	mcp.WithString("page",
		mcp.Required(),
		mcp.Description("Page name"),
		mcp.Enum("home", "projects", "students", "teaching", "conferences"),
	),
	mcp.WithString("filter",
		mcp.Description("Primary filter name (default all)"),
	),
	mcp.WithString("tags",
		mcp.Description("Comma-separated tags; records must carry every tag"),
	),
	mcp.WithString("search",
		mcp.Description("Case-insensitive substring matched against the page's search fields"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of records to return (default all)"),
	),
)

// renderPageTool defines the render_page MCP tool.
var renderPageTool = mcp.NewTool("render_page",
	mcp.WithDescription("Render a page to HTML after applying an optional filter and search."),
	mcp.WithString("page",
		mcp.Required(),
		mcp.Description("Page name"),
	),
	mcp.WithString("filter",
		mcp.Description("Primary filter name"),
	),
	mcp.WithString("search",
		mcp.Description("Search query"),
	),
)
