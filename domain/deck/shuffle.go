package deck

import (
	"crypto/cipher"
	"math/big"

	"go.dedis.ch/kyber/v4/util/random"
)

// Shuffle prepares a fresh deck and permutes it uniformly.
func (d *Deck) Shuffle() error {
	if err := d.PrepareDeck(); err != nil {
		return err
	}
	perm := permutation(d.DeckSize, d.stream())
	shuffled := make([]int, d.DeckSize)
	for i, p := range perm {
		shuffled[i] = d.cards[p]
	}
	d.cards = shuffled
	return nil
}

// permutation returns a random permutation of 0..permSize-1 (Fisher-Yates).
func permutation(permSize int, stream cipher.Stream) []int {
	perm := make([]int, permSize)
	for i := range perm {
		perm[i] = i
	}
	for i := permSize - 1; i > 0; i-- {
		j := int(random.Int(big.NewInt(int64(i+1)), stream).Int64())
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}
