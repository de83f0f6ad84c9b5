package application

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luca-patrignani/poker-solver/domain/poker"
)

func TestSolverProcessScenarios(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{
			name: "texas 5c6dAcAsQs",
			line: "texas-holdem 5c6dAcAsQs Ks4c KdJs 2hAh Kh4h Kc7h 6h7d 2cJc",
			want: "2cJc Kh4h=Ks4c Kc7h KdJs 6h7d 2hAh",
		},
		{
			name: "texas 2h5c8sAsKc",
			line: "texas-holdem 2h5c8sAsKc Qs9h KdQh 3cKh Jc6s",
			want: "Jc6s Qs9h 3cKh KdQh",
		},
		{
			name: "texas 3d4s5dJsQd",
			line: "texas-holdem 3d4s5dJsQd 5c4h 7sJd KcAs 9h7h 2dTc Qh8c TsJc",
			want: "9h7h 2dTc KcAs 7sJd TsJc Qh8c 5c4h",
		},
		{
			name: "omaha 3d3s4d6hJc",
			line: "omaha-holdem 3d3s4d6hJc Js2dKd8c KsAsTcTs Jh2h3c9c Qc8dAd6c 7dQsAc5d",
			want: "Qc8dAd6c KsAsTcTs Js2dKd8c 7dQsAc5d Jh2h3c9c",
		},
		{
			name: "omaha 5c6dAcAsQs",
			line: "omaha-holdem 5c6dAcAsQs TsQh9hQc 8d7cTcJd 5s5d7s4d Qd3cKs4c KdJs2hAh Kh4hKc7h 6h7d2cJc",
			want: "8d7cTcJd 6h7d2cJc Qd3cKs4c Kh4hKc7h KdJs2hAh 5s5d7s4d TsQh9hQc",
		},
		{
			name: "omaha 3d4s5dJsQd",
			line: "omaha-holdem 3d4s5dJsQd 8s2h6s8h 7cThKs5s 5hJh2s7d 8d9s5c4h 7sJdKcAs 9h7h2dTc Qh8cTsJc",
			want: "9h7h2dTc 7cThKs5s 7sJdKcAs 8d9s5c4h 5hJh2s7d Qh8cTsJc 8s2h6s8h",
		},
		{
			name: "five card draw",
			line: "five-card-draw 4s5hTsQh9h Qc8d7cTcJd 5s5d7s4dQd 3cKs4cKdJs 2hAhKh4hKc 7h6h7d2cJc",
			want: "4s5hTsQh9h Qc8d7cTcJd 5s5d7s4dQd 7h6h7d2cJc 3cKs4cKdJs 2hAhKh4hKc",
		},
		{
			name: "single player",
			line: "five-card-draw 2c3d4h5s7c",
			want: "2c3d4h5s7c",
		},
		{
			name: "extra whitespace",
			line: "  texas-holdem   2h5c8sAsKc\tQs9h  KdQh ",
			want: "Qs9h KdQh",
		},
	}

	s := NewSolver(nil)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := s.Process(tc.line)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSolverRejectsMalformedRequests(t *testing.T) {
	var (
		malformed *poker.MalformedCardError
		count     *poker.InvalidCardCountError
		unknown   *poker.UnknownVariantError
	)
	tests := []struct {
		name   string
		line   string
		target any
	}{
		{name: "empty line", line: "   ", target: &count},
		{name: "unknown variant", line: "seven-card-stud AsKsQsJsTs 2c3d", target: &unknown},
		{name: "missing board", line: "texas-holdem", target: &count},
		{name: "missing players", line: "omaha-holdem 3d3s4d6hJc", target: &count},
		{name: "short board", line: "texas-holdem 2h5c8sAs Qs9h", target: &count},
		{name: "texas hand too long", line: "texas-holdem 2h5c8sAsKc Qs9h3c", target: &count},
		{name: "omaha hand too short", line: "omaha-holdem 3d3s4d6hJc Js2d", target: &count},
		{name: "five card draw with texas hands", line: "five-card-draw 5c6dAcAsQs Ks4c KdJs", target: &count},
		{name: "bad rank", line: "texas-holdem 2h5c8sAsKc Xs9h", target: &malformed},
		{name: "bad suit", line: "five-card-draw 2c3d4h5s7x", target: &malformed},
		{name: "lower case rank", line: "texas-holdem 2h5c8sasKc Qs9h", target: &malformed},
	}

	s := NewSolver(nil)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := s.Process(tc.line)
			require.Error(t, err)
			assert.Empty(t, out)
			assert.True(t, errors.As(err, tc.target), "unexpected error type: %v", err)
		})
	}
}

func TestSolverSolveExposesBestHands(t *testing.T) {
	s := NewSolver(nil)
	res, err := s.Solve("texas-holdem 2h5c8sAsKc Qs9h KdQh 3cKh Jc6s")
	require.NoError(t, err)
	assert.Equal(t, poker.TexasHoldem, res.Variant)

	players := res.Ranking.Players()
	require.Len(t, players, 4)
	assert.Equal(t, "Jc6s", players[0].Label)
	assert.Equal(t, poker.HighCard, players[0].Category())
	assert.Equal(t, "KdQh", players[3].Label)
	assert.Equal(t, poker.OnePair, players[3].Category())
}

func TestSolverErrorNamesPlayer(t *testing.T) {
	s := NewSolver(nil)
	_, err := s.Process("texas-holdem 2h5c8sAsKc Qs9h KdQ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "player 2")
}
