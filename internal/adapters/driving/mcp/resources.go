package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/wordle-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for solver resources.
	uriScheme = "wordle://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "answers",
		Name:        "answers",
		Description: "Every word that can be the secret, one per line",
		MIMEType:    "text/plain",
	}, s.handleAnswersResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "corpus",
		Name:        "corpus",
		Description: "Sizes of the loaded answer and guess lists",
		MIMEType:    "application/json",
	}, s.handleCorpusResource)
}

// handleAnswersResource returns the answer list.
func (s *Server) handleAnswersResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	answers, err := s.ports.Game.Answers(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading answers: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     strings.Join(domain.Strings(answers), "\n"),
		}},
	}, nil
}

// handleCorpusResource returns the word list sizes.
func (s *Server) handleCorpusResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	info, err := s.ports.Game.Corpus(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading corpus: %w", err)
	}

	data, err := json.MarshalIndent(map[string]int{
		"answers": info.Answers,
		"guesses": info.Guesses,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling corpus: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
