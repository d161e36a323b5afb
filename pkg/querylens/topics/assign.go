package topics

import "sort"

// Assignment pins one term to its single strongest topic. The model
// produces soft weights; the hard assignment is a deliberate
// simplification for per-topic rendering, not a modeling constraint.
type Assignment struct {
	Stem     string
	Term     string
	Topic    int
	Affinity float64
	Count    int64
}

// Assign hard-assigns every vocabulary term to its highest-affinity
// topic. The affinity of a term for a topic is the share of the term's
// total topic mass held by that topic, so affinities lie in [0,1] and
// a single-topic model yields 1.0 for every term. Ties break toward
// the lowest topic index. Counts come from the matrix vocabulary
// entries, so no string join is involved.
func Assign(tt *TermTopics) []Assignment {
	k := len(tt.Weights)
	out := make([]Assignment, len(tt.Entries))

	for j, e := range tt.Entries {
		var mass float64
		best, bestW := 0, tt.Weights[0][j]
		for topic := 0; topic < k; topic++ {
			w := tt.Weights[topic][j]
			mass += w
			if w > bestW {
				best, bestW = topic, w
			}
		}

		affinity := 0.0
		if mass > 0 {
			affinity = bestW / mass
		}

		out[j] = Assignment{
			Stem:     e.Stem,
			Term:     e.Term,
			Topic:    best,
			Affinity: affinity,
			Count:    e.Count,
		}
	}
	return out
}

// TopicView returns the assignments belonging to one topic with
// affinity at or above minAffinity, ordered by count descending with
// vocabulary order breaking ties. Each view is derived independently
// from the immutable assignment slice, so per-topic rendering can be
// parallelized without locking.
func TopicView(assignments []Assignment, topic int, minAffinity float64) []Assignment {
	var out []Assignment
	for _, a := range assignments {
		if a.Topic == topic && a.Affinity >= minAffinity {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}
