// Package server exposes the EUVD client as tools over the Model Context
// Protocol.
package server

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/vuln-tools/euvd-mcp/euvd"
)

// New builds the MCP server with all six EUVD tools registered.
func New(client euvd.Client, version string) *mcpserver.MCPServer {
	s := mcpserver.NewMCPServer("EUVD API", version, mcpserver.WithToolCapabilities(false))
	h := NewHandler(client)

	s.AddTool(mcp.NewTool("get_last_vulnerabilities",
		mcp.WithDescription("Get the latest vulnerabilities from the EUVD database. Returns up to 8 latest vulnerability records."),
	), h.LastVulnerabilities)

	s.AddTool(mcp.NewTool("get_exploited_vulnerabilities",
		mcp.WithDescription("Get the latest exploited vulnerabilities from the EUVD database. Returns up to 8 latest exploited vulnerability records."),
	), h.ExploitedVulnerabilities)

	s.AddTool(mcp.NewTool("get_critical_vulnerabilities",
		mcp.WithDescription("Get the latest critical vulnerabilities from the EUVD database. Returns up to 8 latest critical vulnerability records."),
	), h.CriticalVulnerabilities)

	s.AddTool(mcp.NewTool("search_vulnerabilities",
		mcp.WithDescription("Search vulnerabilities with flexible filters. Returns up to 100 records per request."),
		mcp.WithNumber("from_score", mcp.Description("Minimum CVSS score (0-10)")),
		mcp.WithNumber("to_score", mcp.Description("Maximum CVSS score (0-10)")),
		mcp.WithNumber("from_epss", mcp.Description("Minimum EPSS score (0-100)")),
		mcp.WithNumber("to_epss", mcp.Description("Maximum EPSS score (0-100)")),
		mcp.WithString("from_date", mcp.Description("Start date in YYYY-MM-DD format")),
		mcp.WithString("to_date", mcp.Description("End date in YYYY-MM-DD format")),
		mcp.WithString("from_updated_date", mcp.Description("Start updated date in YYYY-MM-DD format")),
		mcp.WithString("to_updated_date", mcp.Description("End updated date in YYYY-MM-DD format")),
		mcp.WithString("product", mcp.Description("Product name filter (e.g. 'Windows')")),
		mcp.WithString("vendor", mcp.Description("Vendor name filter (e.g. 'Microsoft')")),
		mcp.WithString("assigner", mcp.Description("Assigner filter (e.g. 'mitre')")),
		mcp.WithBoolean("exploited", mcp.Description("Filter by exploited status")),
		mcp.WithString("text", mcp.Description("Keyword search")),
		mcp.WithNumber("page", mcp.Description("Page number (starts at 0)")),
		mcp.WithNumber("size", mcp.Description("Page size (default 10, max 100)")),
	), h.SearchVulnerabilities)

	s.AddTool(mcp.NewTool("get_vulnerability_by_id",
		mcp.WithDescription("Get a specific vulnerability by EUVD ID."),
		mcp.WithString("enisa_id", mcp.Required(),
			mcp.Description("EUVD identifier (e.g. 'EUVD-2025-4893' or 'EUVD-2024-45012')")),
	), h.VulnerabilityByID)

	s.AddTool(mcp.NewTool("get_advisory_by_id",
		mcp.WithDescription("Get a specific advisory by ID."),
		mcp.WithString("advisory_id", mcp.Required(),
			mcp.Description("Advisory identifier (e.g. 'oxas-adv-2024-0002' or 'cisco-sa-ata19x-multi-RDTEqRsy')")),
	), h.AdvisoryByID)

	return s
}
