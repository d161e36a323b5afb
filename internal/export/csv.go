// Package export parses query/count exports produced by analytics
// consoles into the pipeline's input records.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cognicore/querylens/pkg/querylens/store"
)

// LoadCSV reads a two-column (query, count) CSV export from disk.
func LoadCSV(path string) ([]store.QueryCount, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	pairs, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return pairs, nil
}

// ReadCSV parses (query, count) rows. A header row is detected by a
// non-numeric count column and skipped. Counts are passed through
// unchecked: shape validation (negative counts, empty queries) is the
// engine's job, which reports the offending row with context.
func ReadCSV(r io.Reader) ([]store.QueryCount, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var out []store.QueryCount
	line := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++

		if len(rec) < 2 {
			return nil, fmt.Errorf("line %d: want 2 columns (query, count), got %d", line, len(rec))
		}

		count, err := strconv.ParseInt(strings.TrimSpace(rec[1]), 10, 64)
		if err != nil {
			if line == 1 {
				continue // header row
			}
			return nil, fmt.Errorf("line %d: count %q is not an integer", line, rec[1])
		}

		out = append(out, store.QueryCount{
			Query: strings.TrimSpace(rec[0]),
			Count: count,
		})
	}
	return out, nil
}
