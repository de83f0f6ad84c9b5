package poker

import "fmt"

// MalformedCardError reports a card token with a wrong length or an unknown
// rank or suit character.
type MalformedCardError struct {
	Token  string
	Reason string
}

func (e *MalformedCardError) Error() string {
	return fmt.Sprintf("malformed card %q: %s", e.Token, e.Reason)
}

// InvalidCardCountError reports a board, hand or request with the wrong number
// of cards or tokens for its variant.
type InvalidCardCountError struct {
	What string
	Want int
	Got  int
}

func (e *InvalidCardCountError) Error() string {
	return fmt.Sprintf("invalid %s: expected %d, got %d", e.What, e.Want, e.Got)
}

// UnknownVariantError reports a variant keyword that is not one of
// five-card-draw, texas-holdem or omaha-holdem.
type UnknownVariantError struct {
	Keyword string
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("unknown variant %q", e.Keyword)
}
