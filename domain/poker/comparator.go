package poker

import "strings"

// Compare orders two records by hand strength. It returns a positive number
// when a is stronger than b (sorts first), negative when weaker and 0 only when
// every key, including the label, is equal.
//
// The keys, earliest dominating: straight flush, four of a kind and its rank,
// full house, flush and its order, straight, three of a kind and its rank,
// two pair and its top pair, pair and its rank, the ordered ranks, the label.
// Flags order true before false, ranks and sequences order the smaller ordinal
// first, and the lexicographically smaller label comes first.
func Compare(a, b Record) int {
	if c := CompareStrength(a, b); c != 0 {
		return c
	}
	return -strings.Compare(a.Label, b.Label)
}

// CompareStrength is Compare without the label key. Records for which it
// returns 0 are of exactly equal strength.
func CompareStrength(a, b Record) int {
	if c := compareFlag(a.IsStraightFlush, b.IsStraightFlush); c != 0 {
		return c
	}
	if c := compareFlag(a.IsFourKind, b.IsFourKind); c != 0 {
		return c
	}
	if c := compareOptOrdinal(a.FourKindRank, b.FourKindRank); c != 0 {
		return c
	}
	if c := compareFlag(a.IsFullHouse, b.IsFullHouse); c != 0 {
		return c
	}
	if c := compareFlag(a.IsFlush, b.IsFlush); c != 0 {
		return c
	}
	if a.FlushOrder.Valid && b.FlushOrder.Valid {
		if c := compareRanks(a.FlushOrder.Ranks, b.FlushOrder.Ranks); c != 0 {
			return c
		}
	}
	if c := compareFlag(a.IsStraight, b.IsStraight); c != 0 {
		return c
	}
	if c := compareFlag(a.IsThreeKind, b.IsThreeKind); c != 0 {
		return c
	}
	if c := compareOptOrdinal(a.ThreeKindRank, b.ThreeKindRank); c != 0 {
		return c
	}
	if c := compareFlag(a.IsTwoPair, b.IsTwoPair); c != 0 {
		return c
	}
	if c := compareOptOrdinal(a.TopPairRank, b.TopPairRank); c != 0 {
		return c
	}
	if c := compareFlag(a.IsPair, b.IsPair); c != 0 {
		return c
	}
	if c := compareOptOrdinal(a.PairRank, b.PairRank); c != 0 {
		return c
	}
	return compareRanks(a.Ordered, b.Ordered)
}

// SameStrength reports whether two records belong in the same tie group.
func SameStrength(a, b Record) bool {
	return CompareStrength(a, b) == 0
}

func compareFlag(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	default:
		return -1
	}
}

// compareOptOrdinal only distinguishes two present ranks; an absent rank is
// equal to anything because the governing flag has already been compared.
func compareOptOrdinal(a, b OptOrdinal) int {
	if !a.Valid || !b.Valid {
		return 0
	}
	return compareOrdinal(a.Rank, b.Rank)
}

func compareOrdinal(a, b Ordinal) int {
	switch {
	case a < b:
		return 1
	case a > b:
		return -1
	default:
		return 0
	}
}

func compareRanks(a, b [5]Ordinal) int {
	for i := range a {
		if c := compareOrdinal(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}
