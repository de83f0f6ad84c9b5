package poker

import (
	"crypto/cipher"
	"errors"
	"fmt"
	"strings"

	"github.com/luca-patrignani/poker-solver/domain/deck"
)

// PokerDeck wraps a generic shuffled deck and converts its numbered cards to
// poker Cards. It is used to deal random, always valid, ranking requests.
type PokerDeck struct {
	*deck.Deck
}

// NewPokerDeck creates a 52-card deck. A nil stream shuffles from the
// default random source.
func NewPokerDeck(stream cipher.Stream) PokerDeck {
	return PokerDeck{
		Deck: &deck.Deck{
			DeckSize: 52,
			Stream:   stream,
		},
	}
}

// IntToCard converts a raw card number (1-52) to a Card. Card numbers map to suits in order
// (clubs, diamonds, hearts, spades) with ranks ace through two within each suit.
//
// Card numbering:
//   - 1-13: Clubs (Ace through Two)
//   - 14-26: Diamonds
//   - 27-39: Hearts
//   - 40-52: Spades
func IntToCard(rawCard int) (Card, error) {
	if rawCard > 52 || rawCard < 1 {
		return Card{}, errors.New("the card to convert have an invalid value")
	}
	suit := Suit((rawCard - 1) / 13)
	rank := Ordinal((rawCard - 1) % 13)
	return NewCard(rank, suit)
}

// CardToInt converts a Card to its integer representation (1-52).
// This is the inverse operation of IntToCard.
func CardToInt(card Card) int {
	return int(card.Suit())*13 + int(card.Rank()) + 1
}

// DrawCard draws the next card of the shuffled deck.
func (d PokerDeck) DrawCard() (Card, error) {
	c, err := d.Deck.DrawCard()
	if err != nil {
		return Card{}, err
	}
	return IntToCard(c)
}

func (d PokerDeck) drawN(n int) ([]Card, error) {
	cards := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		c, err := d.DrawCard()
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// Table is a dealt ranking request.
type Table struct {
	Variant Variant
	Board   []Card
	Hands   [][]Card
}

// MaxPlayers is the largest table a single 52-card deck can deal for v.
func MaxPlayers(v Variant) int {
	if v.HandSize() == 0 {
		return 0
	}
	return (52 - v.BoardSize()) / v.HandSize()
}

// DealTable shuffles the deck and deals a board and one hand per player.
func (d PokerDeck) DealTable(variant Variant, players int) (Table, error) {
	if _, ok := variantKeywords[variant]; !ok {
		return Table{}, &UnknownVariantError{Keyword: variant.String()}
	}
	if players < 1 || players > MaxPlayers(variant) {
		return Table{}, fmt.Errorf("%s deals 1 to %d players, got %d", variant, MaxPlayers(variant), players)
	}
	if err := d.Shuffle(); err != nil {
		return Table{}, err
	}
	board, err := d.drawN(variant.BoardSize())
	if err != nil {
		return Table{}, err
	}
	t := Table{Variant: variant, Board: board}
	for i := 0; i < players; i++ {
		hand, err := d.drawN(variant.HandSize())
		if err != nil {
			return Table{}, fmt.Errorf("dealing player %d: %w", i, err)
		}
		t.Hands = append(t.Hands, hand)
	}
	return t, nil
}

// Line renders the table as a request line accepted by the solver.
func (t Table) Line() string {
	parts := []string{t.Variant.String()}
	if len(t.Board) > 0 {
		parts = append(parts, Block(t.Board))
	}
	for _, h := range t.Hands {
		parts = append(parts, Block(h))
	}
	return strings.Join(parts, " ")
}

// Block joins cards into a card block such as "AhKd".
func Block(cards []Card) string {
	var b strings.Builder
	for _, c := range cards {
		b.WriteString(c.String())
	}
	return b.String()
}
