package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/whatif-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for whatif resources.
	uriScheme = "whatif://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the built-in categories.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "categories",
		Name:        "categories",
		Description: "Built-in life categories with default importance",
		MIMEType:    "application/json",
	}, s.handleCategoriesResource)

	// Static resource for listing saved decisions.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "decisions",
		Name:        "decisions",
		Description: "Saved decisions, oldest first",
		MIMEType:    "application/json",
	}, s.handleDecisionsResource)

	// Template for a single saved decision.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "decisions/{decisionId}",
		Name:        "decision",
		Description: "A single saved decision",
		MIMEType:    "application/json",
	}, s.handleDecisionResource)
}

// handleCategoriesResource returns the built-in categories.
func (s *Server) handleCategoriesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	return jsonResult(req.Params.URI, s.ports.Simulator.Categories())
}

// handleDecisionsResource returns all saved decisions.
func (s *Server) handleDecisionsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Decisions == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	saved, err := s.ports.Decisions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing decisions: %w", err)
	}
	return jsonResult(req.Params.URI, saved)
}

// handleDecisionResource returns one saved decision.
func (s *Server) handleDecisionResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Decisions == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	// Extract decisionId from URI: whatif://decisions/{decisionId}
	id := extractDecisionID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	saved, err := s.ports.Decisions.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting decision: %w", err)
	}
	return jsonResult(req.Params.URI, saved)
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractDecisionID extracts the decision ID from a URI like whatif://decisions/{decisionId}.
func extractDecisionID(uri string) string {
	const prefix = uriScheme + "decisions/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
