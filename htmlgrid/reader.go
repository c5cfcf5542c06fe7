// Package htmlgrid reads timetable grids from HTML tables, resolving
// rowspan/colspan merges into a model.GridSnapshot.
package htmlgrid

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"gridfill/model"
)

// ErrNoTable is returned when the input contains no <table> element.
var ErrNoTable = errors.New("input contains no table")

// htmlCell is one <td>/<th> with its parsed spans.
type htmlCell struct {
	text    string
	rowSpan int
	colSpan int
}

// Parse reads HTML from r and resolves its first <table> into a grid
// snapshot. Cells with rowspan or colspan collapse to a single cell
// identity covering their span.
func Parse(r io.Reader) (model.GridSnapshot, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	tableNode := findElement(doc, "table")
	if tableNode == nil {
		return nil, ErrNoTable
	}

	return resolveTable(parseRows(tableNode))
}

// parseRows collects the table's rows from thead, tbody, and direct tr
// children in document order.
func parseRows(tableNode *html.Node) [][]htmlCell {
	var rows [][]htmlCell
	for c := tableNode.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "thead", "tbody", "tfoot":
			for tr := c.FirstChild; tr != nil; tr = tr.NextSibling {
				if tr.Type == html.ElementNode && tr.Data == "tr" {
					rows = append(rows, parseRow(tr))
				}
			}
		case "tr":
			rows = append(rows, parseRow(c))
		}
	}
	return rows
}

// parseRow parses one <tr> into its cells.
func parseRow(tr *html.Node) []htmlCell {
	var row []htmlCell
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || (c.Data != "td" && c.Data != "th") {
			continue
		}
		cell := htmlCell{
			text:    textContent(c),
			rowSpan: 1,
			colSpan: 1,
		}
		for _, attr := range c.Attr {
			switch attr.Key {
			case "rowspan":
				if n, err := strconv.Atoi(strings.TrimSpace(attr.Val)); err == nil && n > 0 {
					cell.rowSpan = n
				}
			case "colspan":
				if n, err := strconv.Atoi(strings.TrimSpace(attr.Val)); err == nil && n > 0 {
					cell.colSpan = n
				}
			}
		}
		row = append(row, cell)
	}
	return row
}

// resolveTable lays rows out on an occupancy grid. Each cell claims the
// first free column of its row and then its full rowspan x colspan
// rectangle; later cells flow around claimed coordinates, which is how
// browsers resolve spanned tables.
func resolveTable(rows [][]htmlCell) (model.GridSnapshot, error) {
	rowCount := len(rows)
	if rowCount == 0 {
		grid, err := model.NewSliceGrid(nil, nil)
		if err != nil {
			return nil, err
		}
		return grid, nil
	}

	// claimed[r][c] maps coordinates to 1-based identity; 0 is free.
	// The width is discovered while laying out.
	claimed := make([]map[int]int, rowCount)
	for i := range claimed {
		claimed[i] = make(map[int]int)
	}

	var texts []string
	width := 0
	for r, row := range rows {
		col := 0
		for _, cell := range row {
			for claimed[r][col] != 0 {
				col++
			}
			id := len(texts) + 1
			texts = append(texts, cell.text)
			for dr := 0; dr < cell.rowSpan && r+dr < rowCount; dr++ {
				for dc := 0; dc < cell.colSpan; dc++ {
					claimed[r+dr][col+dc] = id
				}
			}
			col += cell.colSpan
			if col > width {
				width = col
			}
		}
	}

	occupancy := make([][]model.CellID, rowCount)
	for r := 0; r < rowCount; r++ {
		occupancy[r] = make([]model.CellID, width)
		for c := 0; c < width; c++ {
			if id := claimed[r][c]; id != 0 {
				occupancy[r][c] = model.CellID(id - 1)
			} else {
				// Ragged rows pad with fresh empty cells.
				occupancy[r][c] = model.CellID(len(texts))
				texts = append(texts, "")
			}
		}
	}

	grid, err := model.NewSliceGrid(occupancy, texts)
	if err != nil {
		return nil, fmt.Errorf("resolving table: %w", err)
	}
	return grid, nil
}

// findElement returns the first element with the given tag name.
func findElement(n *html.Node, tagName string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tagName {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tagName); found != nil {
			return found
		}
	}
	return nil
}

// textContent extracts trimmed text from a node and its descendants.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		if n.Type == html.ElementNode && n.Data == "br" {
			sb.WriteString("\n")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}
