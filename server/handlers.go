package server

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"golang.org/x/xerrors"

	"github.com/vuln-tools/euvd-mcp/euvd"
)

// Handler implements the tool calls backed by the EUVD client.
type Handler struct {
	client euvd.Client
}

func NewHandler(client euvd.Client) Handler {
	return Handler{client: client}
}

// listEnvelope mirrors the wire shape of the list endpoints.
type listEnvelope struct {
	List euvd.VulnerabilityList `json:"list"`
}

func (h Handler) LastVulnerabilities(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.list("last vulnerabilities", h.client.LastVulnerabilities)
}

func (h Handler) ExploitedVulnerabilities(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.list("exploited vulnerabilities", h.client.ExploitedVulnerabilities)
}

func (h Handler) CriticalVulnerabilities(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.list("critical vulnerabilities", h.client.CriticalVulnerabilities)
}

func (h Handler) SearchVulnerabilities(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	page, err := optInt(args, "page")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	size, err := optInt(args, "size")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	filter := euvd.SearchFilter{
		FromScore:       optFloat(args, "from_score"),
		ToScore:         optFloat(args, "to_score"),
		FromEPSS:        optFloat(args, "from_epss"),
		ToEPSS:          optFloat(args, "to_epss"),
		FromDate:        optString(args, "from_date"),
		ToDate:          optString(args, "to_date"),
		FromUpdatedDate: optString(args, "from_updated_date"),
		ToUpdatedDate:   optString(args, "to_updated_date"),
		Product:         optString(args, "product"),
		Vendor:          optString(args, "vendor"),
		Assigner:        optString(args, "assigner"),
		Exploited:       optBool(args, "exploited"),
		Text:            optString(args, "text"),
		Page:            page,
		Size:            size,
	}

	result, err := h.client.Search(filter)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	slog.Debug("search finished", "count", result.Len(), "total", result.TotalElements)
	return jsonResult(result)
}

func (h Handler) VulnerabilityByID(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	enisaID, err := req.RequireString("enisa_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	vuln, err := h.client.VulnerabilityByID(enisaID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(vuln)
}

func (h Handler) AdvisoryByID(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	advisoryID, err := req.RequireString("advisory_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	advisory, err := h.client.AdvisoryByID(advisoryID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(advisory)
}

func (h Handler) list(name string, fetch func() (euvd.VulnerabilityList, error)) (*mcp.CallToolResult, error) {
	records, err := fetch()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if records == nil {
		records = euvd.VulnerabilityList{}
	}
	slog.Debug("fetched "+name, "count", records.Len(), "ids", records.IDs())
	return jsonResult(listEnvelope{List: records})
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, xerrors.Errorf("unable to encode tool result: %w", err)
	}
	return mcp.NewToolResultText(string(b)), nil
}
