package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/cognicore/querylens/pkg/querylens/store"
)

// ParseHTML extracts (query, count) pairs from the first two columns
// of the table rows in an HTML analytics export. Rows whose count cell
// does not parse as an integer (header rows, footers) are skipped.
func ParseHTML(r io.Reader) ([]store.QueryCount, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var out []store.QueryCount
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "tr" {
			if qc, ok := rowPair(n); ok {
				out = append(out, qc)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if len(out) == 0 {
		return nil, fmt.Errorf("no query/count rows found")
	}
	return out, nil
}

// rowPair reads the first two cells of a table row.
func rowPair(tr *html.Node) (store.QueryCount, bool) {
	var cells []string
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
			cells = append(cells, strings.TrimSpace(nodeText(c)))
		}
	}
	if len(cells) < 2 {
		return store.QueryCount{}, false
	}

	count, err := strconv.ParseInt(strings.ReplaceAll(cells[1], ",", ""), 10, 64)
	if err != nil {
		return store.QueryCount{}, false
	}
	return store.QueryCount{Query: cells[0], Count: count}, true
}

func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
