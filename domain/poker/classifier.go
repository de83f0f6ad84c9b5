package poker

import "sort"

// HandCategory is the conventional name of a poker hand, derived from a Record.
type HandCategory uint8

const (
	HighCard HandCategory = iota + 1
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

var categoryNames = map[HandCategory]string{
	HighCard:      "high card",
	OnePair:       "one pair",
	TwoPair:       "two pair",
	ThreeOfAKind:  "three of a kind",
	Straight:      "straight",
	Flush:         "flush",
	FullHouse:     "full house",
	FourOfAKind:   "four of a kind",
	StraightFlush: "straight flush",
}

func (h HandCategory) String() string {
	return categoryNames[h]
}

// OptOrdinal is a rank that is only meaningful when its governing flag is set.
type OptOrdinal struct {
	Rank  Ordinal
	Valid bool
}

func someOrdinal(r Ordinal) OptOrdinal {
	return OptOrdinal{Rank: r, Valid: true}
}

// OptRanks is a rank sequence that is only meaningful when its governing flag is set.
type OptRanks struct {
	Ranks [5]Ordinal
	Valid bool
}

// Record is the scored classification of one Candidate. The optional fields
// are present exactly when the flag before them is true.
type Record struct {
	IsStraightFlush bool
	IsFourKind      bool
	FourKindRank    OptOrdinal
	IsFullHouse     bool
	IsFlush         bool
	FlushOrder      OptRanks
	IsStraight      bool
	IsThreeKind     bool
	ThreeKindRank   OptOrdinal
	IsTwoPair       bool
	TopPairRank     OptOrdinal
	IsPair          bool
	PairRank        OptOrdinal
	Ordered         [5]Ordinal
	Label           string

	// Cards is the combination this record was computed from.
	Cards [5]Card
}

// Classify scores a single 5-card candidate.
func Classify(c Candidate) Record {
	rec := Record{Label: c.Label, Cards: c.Cards}

	var ranks [5]Ordinal
	for i, card := range c.Cards {
		ranks[i] = card.rank
	}
	sort.Slice(ranks[:], func(i, j int) bool { return ranks[i] < ranks[j] })
	rec.Ordered = WheelAdjust(ranks)

	counts := map[Ordinal]int{}
	for _, r := range rec.Ordered {
		counts[r]++
	}

	var pairs []Ordinal
	for r, n := range counts {
		switch n {
		case 4:
			rec.IsFourKind = true
			rec.FourKindRank = someOrdinal(r)
		case 3:
			rec.IsThreeKind = true
			rec.ThreeKindRank = someOrdinal(r)
		case 2:
			pairs = append(pairs, r)
		}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i] < pairs[j] })
	switch len(pairs) {
	case 2:
		rec.IsTwoPair = true
		rec.TopPairRank = someOrdinal(pairs[0])
		rec.IsPair = true
		rec.PairRank = someOrdinal(pairs[1])
	case 1:
		rec.IsPair = true
		rec.PairRank = someOrdinal(pairs[0])
	}
	rec.IsFullHouse = rec.IsThreeKind && rec.IsPair

	rec.IsFlush = true
	for _, card := range c.Cards[1:] {
		if card.suit != c.Cards[0].suit {
			rec.IsFlush = false
			break
		}
	}
	if rec.IsFlush {
		rec.FlushOrder = OptRanks{Ranks: rec.Ordered, Valid: true}
	}

	rec.IsStraight = true
	for i := 1; i < 5; i++ {
		if rec.Ordered[i]-rec.Ordered[i-1] != 1 {
			rec.IsStraight = false
			break
		}
	}
	rec.IsStraightFlush = rec.IsStraight && rec.IsFlush
	return rec
}

// Category names the hand the record represents.
func (r Record) Category() HandCategory {
	switch {
	case r.IsStraightFlush:
		return StraightFlush
	case r.IsFourKind:
		return FourOfAKind
	case r.IsFullHouse:
		return FullHouse
	case r.IsFlush:
		return Flush
	case r.IsStraight:
		return Straight
	case r.IsThreeKind:
		return ThreeOfAKind
	case r.IsTwoPair:
		return TwoPair
	case r.IsPair:
		return OnePair
	default:
		return HighCard
	}
}
