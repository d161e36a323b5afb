package ingest

import "strings"

// TokenCount is one normalized token with its inherited query count.
type TokenCount struct {
	Token string
	Count int64
}

// StemGroup is one consolidated vocabulary entry: every surface form
// sharing a stem, collapsed onto a single display term.
type StemGroup struct {
	Stem  string
	Term  string // display form shown to consumers
	Count int64  // sum over all surface forms of the stem
}

// Consolidate groups token counts by stem and picks one display term
// per stem: the surface form with the highest summed count, ties going
// to the form that appeared first in the input. Group order follows
// the first appearance of each stem, so identical input ordering
// reproduces identical output. The sum of group counts equals the sum
// of input token counts.
func Consolidate(tokens []TokenCount, stemmer Stemmer) []StemGroup {
	type surface struct {
		form  string
		count int64
		first int
	}
	type group struct {
		stem     string
		total    int64
		surfaces []*surface
		byForm   map[string]*surface
	}

	byStem := make(map[string]*group)
	var order []*group

	for i, tc := range tokens {
		stem := stemmer.Stem(tc.Token)
		g, ok := byStem[stem]
		if !ok {
			g = &group{stem: stem, byForm: make(map[string]*surface)}
			byStem[stem] = g
			order = append(order, g)
		}
		g.total += tc.Count

		s, ok := g.byForm[tc.Token]
		if !ok {
			s = &surface{form: tc.Token, first: i}
			g.byForm[tc.Token] = s
			g.surfaces = append(g.surfaces, s)
		}
		s.count += tc.Count
	}

	out := make([]StemGroup, 0, len(order))
	for _, g := range order {
		best := g.surfaces[0]
		for _, s := range g.surfaces[1:] {
			if s.count > best.count || (s.count == best.count && s.first < best.first) {
				best = s
			}
		}
		out = append(out, StemGroup{Stem: g.stem, Term: best.form, Count: g.total})
	}
	return out
}

// ExcludeStems removes whole groups whose stem is in the banned set.
// Counts are never redistributed to the survivors. Exclusion runs
// after consolidation only: it is defined on stems, which exist only
// post-consolidation.
func ExcludeStems(groups []StemGroup, banned []string) []StemGroup {
	if len(banned) == 0 {
		return groups
	}
	set := make(map[string]struct{}, len(banned))
	for _, b := range banned {
		set[strings.ToLower(b)] = struct{}{}
	}
	out := make([]StemGroup, 0, len(groups))
	for _, g := range groups {
		if _, ok := set[g.Stem]; ok {
			continue
		}
		out = append(out, g)
	}
	return out
}
