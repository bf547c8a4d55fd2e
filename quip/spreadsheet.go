package quip

import (
	"errors"
	"io"
	"strings"

	"github.com/bjaus/projreport"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var ErrNoSpreadsheet = errors.New("document has no spreadsheet")

// ParseSpreadsheet extracts the first table of a Quip document's HTML as a
// grid. Cells are keyed by the column header item at the same position
// (Quip emits the column letters in <thead>); cells past the last header
// item fall back to the spreadsheet column letter.
func ParseSpreadsheet(r io.Reader) (projreport.Grid, error) {
	root, err := html.Parse(r)
	if err != nil {
		return projreport.Grid{}, err
	}
	table := findFirst(root, atom.Table)
	if table == nil {
		return projreport.Grid{}, ErrNoSpreadsheet
	}

	var headers []string
	if thead := findFirst(table, atom.Thead); thead != nil {
		for _, th := range all(thead, atom.Th) {
			headers = append(headers, cellText(th))
		}
	}

	var grid projreport.Grid
	for _, tr := range rows(table) {
		row := projreport.GridRow{ID: attr(tr, "id")}
		i := 0
		for c := tr.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode || c.DataAtom != atom.Td {
				continue
			}
			col := columnName(i)
			if i < len(headers) && headers[i] != "" {
				col = headers[i]
			}
			row.Cells = append(row.Cells, projreport.Cell{Column: col, Content: cellText(c)})
			i++
		}
		if len(row.Cells) > 0 {
			grid.Rows = append(grid.Rows, row)
		}
	}
	return grid, nil
}

// rows returns the <tr> elements of table outside its <thead>.
func rows(table *html.Node) []*html.Node {
	var out []*html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.DataAtom {
			case atom.Thead, atom.Table:
				continue
			case atom.Tr:
				out = append(out, c)
				continue
			}
			walk(c)
		}
	}
	walk(table)
	return out
}

func findFirst(n *html.Node, a atom.Atom) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == a {
			return c
		}
		if found := findFirst(c, a); found != nil {
			return found
		}
	}
	return nil
}

func all(n *html.Node, a atom.Atom) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == a {
			out = append(out, c)
			continue
		}
		out = append(out, all(c, a)...)
	}
	return out
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// cellText joins the text of a cell, turning <br> into a newline.
func cellText(n *html.Node) string {
	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			switch {
			case c.Type == html.TextNode:
				sb.WriteString(c.Data)
			case c.Type == html.ElementNode && c.DataAtom == atom.Br:
				sb.WriteByte('\n')
			default:
				walk(c)
			}
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}

// columnName returns the spreadsheet letter for a 0-based column index.
func columnName(i int) string {
	name := ""
	for i++; i > 0; i = (i - 1) / 26 {
		name = string(rune('A'+(i-1)%26)) + name
	}
	return name
}
