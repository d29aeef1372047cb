package display

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/go-sif/peek"
	"golang.org/x/text/width"
)

const minimumColWidth = 3

// Table writes up to numRows rows as a bordered text table, with a header of column names.
// Cells longer than truncate characters are shortened when truncate > 0. If hasMore is true,
// a footer indicates that only the first numRows rows were shown.
func Table(w io.Writer, schema peek.Schema, rows []peek.Row, numRows int, hasMore bool, truncate int) error {
	if numRows < 0 {
		numRows = 0
	}
	if len(rows) > numRows {
		rows = rows[:numRows]
		hasMore = true
	}
	names := schema.ColumnNames()
	types := schema.ColumnTypes()
	cells := make([][]string, 0, len(rows)+1)
	header := make([]string, len(names))
	for i, name := range names {
		header[i] = truncateCell(name, truncate)
	}
	cells = append(cells, header)
	for _, row := range rows {
		line := make([]string, len(names))
		for i, name := range names {
			v, err := row.Get(name)
			if err != nil {
				return err
			}
			if v == nil {
				line[i] = "null"
			} else {
				line[i] = truncateCell(types[i].ToString(v), truncate)
			}
		}
		cells = append(cells, line)
	}

	colWidths := make([]int, len(names))
	for i := range colWidths {
		colWidths[i] = minimumColWidth
	}
	for _, line := range cells {
		for i, cell := range line {
			if cw := StringWidth(cell); cw > colWidths[i] {
				colWidths[i] = cw
			}
		}
	}

	bw := bufio.NewWriter(w)
	sep := separator(colWidths)
	bw.WriteString(sep)
	writeLine(bw, cells[0], colWidths, truncate > 0)
	bw.WriteString(sep)
	for _, line := range cells[1:] {
		writeLine(bw, line, colWidths, truncate > 0)
	}
	bw.WriteString(sep)
	if hasMore {
		noun := "rows"
		if numRows == 1 {
			noun = "row"
		}
		fmt.Fprintf(bw, "only showing top %d %s\n", numRows, noun)
	}
	return bw.Flush()
}

// StringWidth returns the number of terminal columns occupied by s,
// counting East Asian wide and fullwidth characters as two
func StringWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}

func truncateCell(cell string, truncate int) string {
	if truncate <= 0 {
		return cell
	}
	runes := []rune(cell)
	if len(runes) <= truncate {
		return cell
	}
	if truncate < 4 {
		return string(runes[:truncate])
	}
	return string(runes[:truncate-3]) + "..."
}

func separator(colWidths []int) string {
	var sb strings.Builder
	sb.WriteString("+")
	for _, cw := range colWidths {
		sb.WriteString(strings.Repeat("-", cw))
		sb.WriteString("+")
	}
	sb.WriteString("\n")
	return sb.String()
}

// writeLine pads each cell to its column width, on the left when rightAlign is set
func writeLine(bw *bufio.Writer, line []string, colWidths []int, rightAlign bool) {
	bw.WriteString("|")
	for i, cell := range line {
		pad := strings.Repeat(" ", colWidths[i]-StringWidth(cell))
		if rightAlign {
			bw.WriteString(pad)
			bw.WriteString(cell)
		} else {
			bw.WriteString(cell)
			bw.WriteString(pad)
		}
		bw.WriteString("|")
	}
	bw.WriteString("\n")
}
