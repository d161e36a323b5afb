// Package freq builds the ranked term-frequency table consumed by the
// word-cloud and table views.
package freq

import (
	"sort"
	"strings"

	"github.com/cognicore/querylens/pkg/querylens/ingest"
)

// Table is a ranked term-frequency table: highest-count groups first,
// ties kept in the order the groups were consolidated in.
type Table []ingest.StemGroup

// Build sorts groups by count descending with a stable tie-break on
// consolidation order. topN <= 0 keeps every row. The input slice is
// not mutated.
func Build(groups []ingest.StemGroup, topN int) Table {
	rows := make(Table, len(groups))
	copy(rows, groups)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Count > rows[j].Count
	})
	if topN > 0 && len(rows) > topN {
		rows = rows[:topN]
	}
	return rows
}

// Filter returns the rows whose display term starts with any of the
// given prefixes, preserving rank order. The receiver is not mutated;
// this is the interrogative ("question") view of the table.
func (t Table) Filter(prefixes []string) Table {
	var out Table
	for _, row := range t {
		for _, p := range prefixes {
			if p != "" && strings.HasPrefix(row.Term, strings.ToLower(p)) {
				out = append(out, row)
				break
			}
		}
	}
	return out
}

// TotalCount sums the counts of every row.
func (t Table) TotalCount() int64 {
	var total int64
	for _, row := range t {
		total += row.Count
	}
	return total
}
