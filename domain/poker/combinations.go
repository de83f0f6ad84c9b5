package poker

// Variant is a supported poker game.
type Variant int

const (
	FiveCardDraw Variant = iota + 1
	TexasHoldem
	OmahaHoldem
)

var variantKeywords = map[Variant]string{
	FiveCardDraw: "five-card-draw",
	TexasHoldem:  "texas-holdem",
	OmahaHoldem:  "omaha-holdem",
}

// Variants lists the supported variants in a stable order.
func Variants() []Variant {
	return []Variant{FiveCardDraw, TexasHoldem, OmahaHoldem}
}

// ParseVariant maps a request keyword to its Variant.
func ParseVariant(keyword string) (Variant, error) {
	for v, k := range variantKeywords {
		if k == keyword {
			return v, nil
		}
	}
	return 0, &UnknownVariantError{Keyword: keyword}
}

func (v Variant) String() string {
	if k, ok := variantKeywords[v]; ok {
		return k
	}
	return "unknown"
}

// BoardSize is the number of shared cards the variant deals (0 for fixed hands).
func (v Variant) BoardSize() int {
	switch v {
	case TexasHoldem, OmahaHoldem:
		return 5
	default:
		return 0
	}
}

// HandSize is the number of private cards each player holds.
func (v Variant) HandSize() int {
	switch v {
	case FiveCardDraw:
		return 5
	case TexasHoldem:
		return 2
	case OmahaHoldem:
		return 4
	default:
		return 0
	}
}

// Candidate is one 5-card combination considered for the player holding Label.
type Candidate struct {
	Cards [5]Card
	Label string
}

// GenerateCandidates enumerates every legal 5-card combination of a player's cards.
//
// Parameters:
//   - variant: the game being played
//   - board: the shared cards (ignored for FiveCardDraw, must be empty)
//   - hand: the player's private cards
//   - label: the player's original card block, attached to each candidate
//
// FiveCardDraw yields the hand itself, TexasHoldem every 5-subset of the 7 cards (21),
// OmahaHoldem every union of 3 board cards with 2 private cards (60). The order is
// deterministic. Returns an InvalidCardCountError if board or hand size is wrong.
func GenerateCandidates(variant Variant, board []Card, hand []Card, label string) ([]Candidate, error) {
	if _, ok := variantKeywords[variant]; !ok {
		return nil, &UnknownVariantError{Keyword: variant.String()}
	}
	if len(board) != variant.BoardSize() {
		return nil, &InvalidCardCountError{What: variant.String() + " board cards", Want: variant.BoardSize(), Got: len(board)}
	}
	if len(hand) != variant.HandSize() {
		return nil, &InvalidCardCountError{What: variant.String() + " hand cards", Want: variant.HandSize(), Got: len(hand)}
	}

	switch variant {
	case TexasHoldem:
		all := append(append([]Card(nil), board...), hand...)
		indices := combinations(len(all), 5)
		out := make([]Candidate, 0, len(indices))
		for _, c := range indices {
			out = append(out, Candidate{
				Cards: [5]Card{all[c[0]], all[c[1]], all[c[2]], all[c[3]], all[c[4]]},
				Label: label,
			})
		}
		return out, nil
	case OmahaHoldem:
		boardTriples := combinations(len(board), 3)
		handPairs := combinations(len(hand), 2)
		out := make([]Candidate, 0, len(boardTriples)*len(handPairs))
		for _, b := range boardTriples {
			for _, h := range handPairs {
				out = append(out, Candidate{
					Cards: [5]Card{hand[h[0]], hand[h[1]], board[b[0]], board[b[1]], board[b[2]]},
					Label: label,
				})
			}
		}
		return out, nil
	default:
		return []Candidate{{
			Cards: [5]Card{hand[0], hand[1], hand[2], hand[3], hand[4]},
			Label: label,
		}}, nil
	}
}

// combinations returns every k-subset of {0..n-1} as ascending index slices,
// in lexicographic order.
func combinations(n int, choose int) [][]int {
	out := make([][]int, 0)
	combo := make([]int, choose)
	var walk func(start int, depth int)
	walk = func(start int, depth int) {
		if depth == choose {
			out = append(out, append([]int(nil), combo...))
			return
		}
		for i := start; i <= n-(choose-depth); i++ {
			combo[depth] = i
			walk(i+1, depth+1)
		}
	}
	walk(0, 0)
	return out
}
