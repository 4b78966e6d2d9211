package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/wordle-cli/internal/core/domain"
)

// EvaluateInput is the input schema for the evaluate tool.
type EvaluateInput struct {
	Guess  string `json:"guess" jsonschema:"the five-letter guess"`
	Answer string `json:"answer" jsonschema:"the five-letter secret word"`
}

// EvaluateOutput is the output schema for the evaluate tool.
type EvaluateOutput struct {
	Feedback string `json:"feedback"`
	Solved   bool   `json:"solved"`
}

// CandidatesInput is the input schema for the candidates tool.
type CandidatesInput struct {
	History []string `json:"history,omitempty" jsonschema:"guesses played so far as WORD=COLORS, e.g. CRANE=GYBBY, with G green, Y yellow, B black"`
	Limit   int      `json:"limit,omitempty" jsonschema:"maximum number of words to return (default all)"`
}

// CandidatesOutput is the output schema for the candidates tool.
type CandidatesOutput struct {
	Count   int      `json:"count"`
	Words   []string `json:"words"`
	Pattern string   `json:"pattern"`
}

// RecommendInput is the input schema for the recommend tool.
type RecommendInput struct {
	History    []string `json:"history,omitempty" jsonschema:"guesses played so far as WORD=COLORS"`
	MaxResults int      `json:"max_results,omitempty" jsonschema:"maximum number of words to return (default from settings)"`
	Pool       string   `json:"pool,omitempty" jsonschema:"full to consider every legal guess, candidates for possible answers only"`
	Seed       uint64   `json:"seed,omitempty" jsonschema:"seed for choosing among tied words (0 = settings)"`
}

// RecommendOutput is the output schema for the recommend tool.
type RecommendOutput struct {
	WorstCase    int      `json:"worst_case"`
	Words        []string `json:"words"`
	AnyCandidate bool     `json:"any_candidate"`
	Ties         int      `json:"ties"`
	Remaining    int      `json:"remaining"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "evaluate",
		Description: "Score a guess against a known answer, returning the colour pattern",
	}, s.handleEvaluate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "candidates",
		Description: "List the answers still consistent with the guesses played so far",
	}, s.handleCandidates)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "recommend",
		Description: "Recommend the next guesses that minimise the worst-case number of remaining answers",
	}, s.handleRecommend)
}

// handleEvaluate handles the evaluate tool invocation.
func (s *Server) handleEvaluate(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input EvaluateInput,
) (*mcp.CallToolResult, EvaluateOutput, error) {
	guess, err := domain.ParseWord(input.Guess)
	if err != nil {
		return nil, EvaluateOutput{}, err
	}
	answer, err := domain.ParseWord(input.Answer)
	if err != nil {
		return nil, EvaluateOutput{}, err
	}

	fb := domain.Evaluate(guess, answer)
	return nil, EvaluateOutput{Feedback: fb.String(), Solved: fb.IsSolved()}, nil
}

// handleCandidates handles the candidates tool invocation.
func (s *Server) handleCandidates(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CandidatesInput,
) (*mcp.CallToolResult, CandidatesOutput, error) {
	game, err := s.replay(ctx, input.History)
	if err != nil {
		return nil, CandidatesOutput{}, err
	}

	words := domain.Strings(s.ports.Game.Candidates(game))
	output := CandidatesOutput{
		Count:   len(words),
		Words:   words,
		Pattern: game.Descriptor.View().Pattern,
	}
	if input.Limit > 0 && len(output.Words) > input.Limit {
		output.Words = output.Words[:input.Limit]
	}
	return nil, output, nil
}

// handleRecommend handles the recommend tool invocation.
func (s *Server) handleRecommend(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RecommendInput,
) (*mcp.CallToolResult, RecommendOutput, error) {
	game, err := s.replay(ctx, input.History)
	if err != nil {
		return nil, RecommendOutput{}, err
	}

	opts := domain.RecommendOptions{
		Pool:       domain.GuessPool(strings.ToLower(strings.TrimSpace(input.Pool))),
		MaxResults: input.MaxResults,
		Seed:       input.Seed,
	}
	rec, err := s.ports.Game.Recommend(ctx, game, opts)
	if err != nil {
		return nil, RecommendOutput{}, err
	}

	return nil, RecommendOutput{
		WorstCase:    rec.WorstCase,
		Words:        domain.Strings(rec.Words),
		AnyCandidate: rec.AnyCandidate,
		Ties:         rec.Ties,
		Remaining:    game.Descriptor.Len(),
	}, nil
}

// replay starts an assist game and reports every history entry to it.
func (s *Server) replay(ctx context.Context, history []string) (*domain.Game, error) {
	game, err := s.ports.Game.Start(ctx, domain.ModeAssist)
	if err != nil {
		return nil, err
	}
	for i, entry := range history {
		g, err := domain.ParseGuess(entry)
		if err != nil {
			return nil, fmt.Errorf("history[%d]: %w", i, err)
		}
		if _, err := s.ports.Game.Report(ctx, game, g.Word.String(), g.Feedback.String()); err != nil {
			return nil, fmt.Errorf("history[%d]: %w", i, err)
		}
	}
	return game, nil
}
