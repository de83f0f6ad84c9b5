package poker

import (
	"fmt"

	"github.com/paulhankin/poker"
)

// Describe returns a human readable description of the record's 5-card
// combination, such as "ace-high straight".
func Describe(r Record) (string, error) {
	c, err := makeEvalHand(r.Cards)
	if err != nil {
		return "", err
	}
	return poker.Describe(c[:])
}

// evalScore scores a 5-card combination with the lookup-table evaluator.
// Scores of two combinations order them the same way CompareStrength does.
func evalScore(cards [5]Card) (int16, error) {
	c, err := makeEvalHand(cards)
	if err != nil {
		return 0, err
	}
	return poker.Eval5(&c), nil
}

func makeEvalHand(cards [5]Card) ([5]poker.Card, error) {
	var hand [5]poker.Card
	for i, c := range cards {
		card, err := c.evalCard()
		if err != nil {
			return [5]poker.Card{}, fmt.Errorf("invalid card at idx %d: %w", i, err)
		}
		hand[i] = card
	}
	return hand, nil
}

// evalCard converts the Card to the evaluator representation, where ranks run
// 1-13 with Ace=1 and 2-10 at face value.
func (c Card) evalCard() (poker.Card, error) {
	rank := poker.Rank(1)
	if c.rank != Ace && c.rank != LowAce {
		rank = poker.Rank(14 - int(c.rank))
	}
	return poker.MakeCard(poker.Suit(c.suit), rank)
}
