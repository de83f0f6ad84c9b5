package deck

import (
	"crypto/cipher"
	"errors"
	"fmt"

	"go.dedis.ch/kyber/v4/suites"
)

var suite suites.Suite = suites.MustFind("Ed25519")

// ErrDeckExhausted is returned when drawing from a deck with no cards left.
var ErrDeckExhausted = errors.New("no cards left in the deck")

// Deck is a deck of DeckSize cards numbered 1..DeckSize. Shuffling is driven by
// a cipher stream: Stream when set, the Ed25519 suite random stream otherwise.
type Deck struct {
	DeckSize      int
	Stream        cipher.Stream
	cards         []int
	lastDrawnCard int
}

// PrepareDeck puts the cards back in order 1..DeckSize.
func (d *Deck) PrepareDeck() error {
	if d.DeckSize <= 0 {
		return fmt.Errorf("deck size must be positive, got %d", d.DeckSize)
	}
	d.cards = make([]int, d.DeckSize)
	for i := range d.cards {
		d.cards[i] = i + 1
	}
	d.lastDrawnCard = 0
	return nil
}

// DrawCard returns the next card from the top of the deck.
func (d *Deck) DrawCard() (int, error) {
	if d.lastDrawnCard >= len(d.cards) {
		return 0, ErrDeckExhausted
	}
	c := d.cards[d.lastDrawnCard]
	d.lastDrawnCard++
	return c, nil
}

// Remaining is the number of cards that can still be drawn.
func (d *Deck) Remaining() int {
	return len(d.cards) - d.lastDrawnCard
}

func (d *Deck) stream() cipher.Stream {
	if d.Stream != nil {
		return d.Stream
	}
	return suite.RandomStream()
}

// SeededStream returns a deterministic stream derived from seed, for
// reproducible shuffles.
func SeededStream(seed string) cipher.Stream {
	return suite.XOF([]byte(seed))
}
