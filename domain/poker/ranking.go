package poker

import (
	"sort"
	"strings"
)

// Ranking is the outcome of one ranking request: the players' best records
// grouped by equal strength, weakest group first.
type Ranking struct {
	Groups [][]Record
}

// Rank classifies every candidate, keeps each player's strongest one and
// groups the players from weakest to strongest.
func Rank(candidates []Candidate) Ranking {
	records := make([]Record, 0, len(candidates))
	for _, c := range candidates {
		records = append(records, Classify(c))
	}
	return Ranking{Groups: GroupTies(SelectBest(records))}
}

// SelectBest sorts the records strongest first and keeps only the first, and
// therefore strongest, record of every label. The input slice is not modified.
func SelectBest(records []Record) []Record {
	sorted := append([]Record(nil), records...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return Compare(sorted[i], sorted[j]) > 0
	})

	seen := make(map[string]struct{}, len(sorted))
	best := make([]Record, 0)
	for _, r := range sorted {
		if _, ok := seen[r.Label]; ok {
			continue
		}
		seen[r.Label] = struct{}{}
		best = append(best, r)
	}
	return best
}

// GroupTies walks a strongest-first list and merges adjacent records of equal
// strength into one group, then reverses the groups so the weakest comes
// first. The order inside a group is left as encountered.
func GroupTies(best []Record) [][]Record {
	var groups [][]Record
	for i, r := range best {
		if i > 0 && SameStrength(best[i-1], r) {
			groups[len(groups)-1] = append(groups[len(groups)-1], r)
			continue
		}
		groups = append(groups, []Record{r})
	}
	for i, j := 0, len(groups)-1; i < j; i, j = i+1, j-1 {
		groups[i], groups[j] = groups[j], groups[i]
	}
	return groups
}

// Format renders groups as labels joined by "=" inside a group and groups
// separated by a single space.
func Format(groups [][]Record) string {
	parts := make([]string, 0, len(groups))
	for _, g := range groups {
		labels := make([]string, 0, len(g))
		for _, r := range g {
			labels = append(labels, r.Label)
		}
		parts = append(parts, strings.Join(labels, "="))
	}
	return strings.Join(parts, " ")
}

func (r Ranking) String() string {
	return Format(r.Groups)
}

// Players returns the best record of every player, weakest first.
func (r Ranking) Players() []Record {
	var out []Record
	for _, g := range r.Groups {
		out = append(out, g...)
	}
	return out
}
