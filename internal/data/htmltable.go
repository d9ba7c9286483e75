// ABOUTME: Imports rows from the first <table> element of an HTML document
// ABOUTME: Header cells become column keys; td cells become row values

package data

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
)

// LoadHTMLTable parses an HTML file and extracts the first <table> as a
// Source. A <th> header row (or the first row when no header exists) names
// the columns; remaining rows become records.
func LoadHTMLTable(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	doc, err := html.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	table := findElement(doc, "table")
	if table == nil {
		return nil, fmt.Errorf("%s: no <table> element found", path)
	}

	var header []string
	src := &Source{Name: filepath.Base(path)}
	for _, tr := range collectElements(table, "tr") {
		cells, isHeader := rowCells(tr)
		if len(cells) == 0 {
			continue
		}
		if header == nil {
			header = cells
			if !isHeader {
				// No <th> row: synthesize positional keys and keep the
				// first row as data.
				header = make([]string, len(cells))
				for i := range cells {
					header[i] = fmt.Sprintf("col%d", i+1)
				}
				src.Rows = append(src.Rows, zipRow(header, cells))
			}
			src.Keys = header
			continue
		}
		src.Rows = append(src.Rows, zipRow(header, cells))
	}
	if header == nil {
		return nil, fmt.Errorf("%s: table has no rows", path)
	}
	return src, nil
}

// zipRow pairs header keys with cell values; extra cells are dropped and
// missing cells stay empty.
func zipRow(keys, cells []string) Row {
	row := Row{}
	for i, k := range keys {
		if i < len(cells) {
			row[k] = cells[i]
		} else {
			row[k] = ""
		}
	}
	return row
}

// rowCells extracts the text of a row's th/td children. isHeader reports
// whether any cell was a <th>.
func rowCells(tr *html.Node) (cells []string, isHeader bool) {
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "th":
			isHeader = true
			cells = append(cells, nodeText(c))
		case "td":
			cells = append(cells, nodeText(c))
		}
	}
	return cells, isHeader
}

// findElement returns the first descendant element with the given tag.
func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// collectElements returns all descendant elements with the given tag, in
// document order.
func collectElements(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			out = append(out, n)
			return // nested tables stay out of scope
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	return out
}

// nodeText concatenates the text content below n, collapsing whitespace.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return normKey(strings.Join(strings.Fields(b.String()), " "))
}
