package poker

import (
	"strings"

	"github.com/pterm/pterm"
)

// Card suit constants (0-3)
const (
	Club    Suit = 0 // ♣ (black)
	Diamond Suit = 1 // ♦ (red)
	Heart   Suit = 2 // ♥ (red)
	Spade   Suit = 3 // ♠ (black)
)

// Ordinal positions of the face cards and ace on the rank scale.
const (
	Ace   Ordinal = 0
	King  Ordinal = 1
	Queen Ordinal = 2
	Jack  Ordinal = 3
	Ten   Ordinal = 4
	Two   Ordinal = 12
	// LowAce is the ordinal an ace takes inside a wheel (A-2-3-4-5).
	LowAce Ordinal = 13
)

// rankOrder is the fixed descending rank table: the index of a rank character is its ordinal.
const rankOrder = "AKQJT98765432"

const suitOrder = "cdhs"

var suitSymbols = [4]string{"♣", "♦", "♥", "♠"}

// Ordinal is the position of a rank on the descending scale A=0 ... 2=12.
// A lower ordinal is a stronger card.
type Ordinal uint8

// Suit is one of the four card suits.
type Suit uint8

// Card represents a playing card with suit and rank ordinal.
type Card struct {
	rank Ordinal
	suit Suit
}

// NewCard creates a new Card with validation.
//
// Parameters:
//   - rank: 0-12 (Ace=0, King=1, ..., Two=12)
//   - suit: 0-3 (Club, Diamond, Heart, Spade)
//
// Returns the Card or an error if suit or rank is invalid.
func NewCard(rank Ordinal, suit Suit) (Card, error) {
	if rank > Two || suit > Spade {
		return Card{}, &MalformedCardError{Token: string([]byte{rankChar(rank), suitChar(suit)}), Reason: "rank or suit out of range"}
	}
	return Card{rank: rank, suit: suit}, nil
}

// ParseCard decodes a 2-character token such as "Ah" or "Tc".
func ParseCard(token string) (Card, error) {
	if len(token) != 2 {
		return Card{}, &MalformedCardError{Token: token, Reason: "a card is exactly 2 characters"}
	}
	r := strings.IndexByte(rankOrder, token[0])
	if r < 0 {
		return Card{}, &MalformedCardError{Token: token, Reason: "unknown rank character"}
	}
	s := strings.IndexByte(suitOrder, token[1])
	if s < 0 {
		return Card{}, &MalformedCardError{Token: token, Reason: "unknown suit character"}
	}
	return Card{rank: Ordinal(r), suit: Suit(s)}, nil
}

// ParseCards splits a card block like "5c6dAcAsQs" into its cards.
func ParseCards(block string) ([]Card, error) {
	if len(block)%2 != 0 {
		return nil, &MalformedCardError{Token: block, Reason: "odd number of characters in card block"}
	}
	cards := make([]Card, 0, len(block)/2)
	for i := 0; i < len(block); i += 2 {
		c, err := ParseCard(block[i : i+2])
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// Rank returns the rank ordinal of the Card (0-12: ace through two).
func (c Card) Rank() Ordinal {
	return c.rank
}

// Suit returns the suit value of the Card (0-3: clubs, diamonds, hearts, spades).
func (c Card) Suit() Suit {
	return c.suit
}

// String returns the 2-character token of the Card, the inverse of ParseCard.
func (c Card) String() string {
	return string([]byte{rankChar(c.rank), suitChar(c.suit)})
}

// Pretty returns a coloured representation of the Card using suit symbols
// (♣, ♦, ♥, ♠), for terminal output.
func (c Card) Pretty() string {
	var suit string
	switch c.suit {
	case Club, Spade:
		suit = pterm.Black(suitSymbols[c.suit])
	case Diamond, Heart:
		suit = pterm.LightRed(suitSymbols[c.suit])
	default:
		suit = "?"
	}
	return string(rankChar(c.rank)) + suit
}

// WheelAdjust remaps the ascending ordinals of an A-5-4-3-2 hand so the ace counts
// below the two. Any other sequence is returned unchanged.
func WheelAdjust(ranks [5]Ordinal) [5]Ordinal {
	if ranks == [5]Ordinal{Ace, 9, 10, 11, Two} {
		return [5]Ordinal{9, 10, 11, Two, LowAce}
	}
	return ranks
}

func rankChar(r Ordinal) byte {
	if r == LowAce {
		return 'A'
	}
	if int(r) >= len(rankOrder) {
		return '?'
	}
	return rankOrder[r]
}

func suitChar(s Suit) byte {
	if int(s) >= len(suitOrder) {
		return '?'
	}
	return suitOrder[s]
}
