package poker

import (
	"errors"
	"testing"
)

func TestParseCard(t *testing.T) {
	expectedCard := Card{rank: Ten, suit: Heart}
	testCard, err := ParseCard("Th")
	if err != nil {
		t.Fatal(err)
	}
	if testCard != expectedCard {
		t.Fatalf("expected %v, get %v", expectedCard, testCard)
	}
}

func TestParseCardRankTable(t *testing.T) {
	for i, r := range "AKQJT98765432" {
		c, err := ParseCard(string(r) + "s")
		if err != nil {
			t.Fatal(err)
		}
		if c.Rank() != Ordinal(i) {
			t.Fatalf("rank %c: expected ordinal %d, got %d", r, i, c.Rank())
		}
	}
}

func TestParseCardMalformed(t *testing.T) {
	for _, token := range []string{"", "A", "Ahh", "1h", "Ax", "ah", "10h"} {
		_, err := ParseCard(token)
		var malformed *MalformedCardError
		if !errors.As(err, &malformed) {
			t.Fatalf("token %q: expected MalformedCardError, got %v", token, err)
		}
		if malformed.Token != token {
			t.Errorf("token %q: error carries %q", token, malformed.Token)
		}
	}
}

func TestParseCards(t *testing.T) {
	cards, err := ParseCards("5c6dAcAsQs")
	if err != nil {
		t.Fatal(err)
	}
	if len(cards) != 5 {
		t.Fatalf("expected 5 cards, got %d", len(cards))
	}
	if Block(cards) != "5c6dAcAsQs" {
		t.Fatalf("expected round trip, got %s", Block(cards))
	}
	if _, err := ParseCards("5c6dA"); err == nil {
		t.Fatal("expected error for odd block")
	}
	if _, err := ParseCards("5c6dZc"); err == nil {
		t.Fatal("expected error for unknown rank")
	}
}

func TestNewCardValidation(t *testing.T) {
	if _, err := NewCard(Two, Spade); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := NewCard(LowAce, Spade); err == nil {
		t.Fatal("expected error for ordinal 13")
	}
	if _, err := NewCard(Ace, Suit(4)); err == nil {
		t.Fatal("expected error for suit 4")
	}
}

func TestWheelAdjust(t *testing.T) {
	wheel := WheelAdjust([5]Ordinal{0, 9, 10, 11, 12})
	if wheel != [5]Ordinal{9, 10, 11, 12, 13} {
		t.Fatalf("expected wheel remap, got %v", wheel)
	}
	broadway := [5]Ordinal{0, 1, 2, 3, 4}
	if WheelAdjust(broadway) != broadway {
		t.Fatal("broadway must not be remapped")
	}
	aceHigh := [5]Ordinal{0, 9, 10, 11, 11}
	if WheelAdjust(aceHigh) != aceHigh {
		t.Fatal("only the exact wheel set is remapped")
	}
}

func TestCardStringFaces(t *testing.T) {
	c := Card{suit: Heart, rank: Ace}
	if c.String() != "Ah" {
		t.Fatalf("expected Ah, got %s", c.String())
	}
	c = Card{suit: Club, rank: Jack}
	if c.String() != "Jc" {
		t.Fatalf("expected Jc, got %s", c.String())
	}
}

func TestIntToCardRoundTrip(t *testing.T) {
	for i := 1; i < 53; i++ {
		c, err := IntToCard(i)
		if err != nil {
			t.Fatal(err)
		}
		if CardToInt(c) != i {
			t.Fatalf("card %d converted back to %d", i, CardToInt(c))
		}
	}
	if _, err := IntToCard(0); err == nil {
		t.Fatal("expected error for card 0")
	}
	if _, err := IntToCard(53); err == nil {
		t.Fatal("expected error for card 53")
	}
}
