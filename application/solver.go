package application

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/luca-patrignani/poker-solver/domain/poker"
)

// Solver turns request lines into ranking lines. It owns the parts around the
// ranking engine: tokenizing the line, picking the variant and validating the
// card blocks before any candidate is generated.
type Solver struct {
	Logger *slog.Logger
}

// Result is a solved request.
type Result struct {
	Variant poker.Variant
	Ranking poker.Ranking
}

func (r Result) String() string {
	return r.Ranking.String()
}

// NewSolver creates a Solver. A nil logger discards log output.
func NewSolver(logger *slog.Logger) *Solver {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Solver{Logger: logger}
}

// Process solves one request line and returns the players from weakest to
// strongest, ties joined by "=".
func (s *Solver) Process(line string) (string, error) {
	res, err := s.Solve(line)
	if err != nil {
		return "", err
	}
	return res.String(), nil
}

// Solve parses "<variant> <cards...>" and ranks the players.
func (s *Solver) Solve(line string) (Result, error) {
	res, err := s.solve(line)
	if err != nil {
		s.logger().Warn("request rejected", "line", line, "error", err)
		return Result{}, err
	}
	return res, nil
}

func (s *Solver) solve(line string) (Result, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Result{}, &poker.InvalidCardCountError{What: "request tokens", Want: 2, Got: 0}
	}
	variant, err := poker.ParseVariant(fields[0])
	if err != nil {
		return Result{}, err
	}
	blocks := fields[1:]

	var board []poker.Card
	if variant.BoardSize() > 0 {
		if len(blocks) == 0 {
			return Result{}, &poker.InvalidCardCountError{What: variant.String() + " board blocks", Want: 1, Got: 0}
		}
		board, err = parseBlock(blocks[0], variant.BoardSize(), "board")
		if err != nil {
			return Result{}, err
		}
		blocks = blocks[1:]
	}
	if len(blocks) == 0 {
		return Result{}, &poker.InvalidCardCountError{What: variant.String() + " players", Want: 1, Got: 0}
	}

	var candidates []poker.Candidate
	for i, block := range blocks {
		hand, err := parseBlock(block, variant.HandSize(), "hand")
		if err != nil {
			return Result{}, fmt.Errorf("player %d: %w", i+1, err)
		}
		cands, err := poker.GenerateCandidates(variant, board, hand, block)
		if err != nil {
			return Result{}, fmt.Errorf("player %d: %w", i+1, err)
		}
		candidates = append(candidates, cands...)
	}

	s.logger().Debug("ranking request",
		"variant", variant.String(),
		"players", len(blocks),
		"candidates", len(candidates),
	)
	return Result{Variant: variant, Ranking: poker.Rank(candidates)}, nil
}

func (s *Solver) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}

// parseBlock decodes a card block and checks it holds exactly want cards.
func parseBlock(block string, want int, what string) ([]poker.Card, error) {
	if len(block) != 2*want {
		return nil, &poker.InvalidCardCountError{What: what + " characters in " + block, Want: 2 * want, Got: len(block)}
	}
	return poker.ParseCards(block)
}
