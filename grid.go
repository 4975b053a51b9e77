package svgbob

import (
	"strings"

	"github.com/rivo/uniseg"
)

// EscapedText is a literal string extracted from a double-quoted substring
// on one line, anchored at the cell of its opening quote.
type EscapedText struct {
	Cell    Cell
	Content string
}

// Grid is the Cell Grid Builder's output: a sparse map from cell to the
// grapheme cluster occupying it, plus any literal text extracted from
// quotes.
type Grid struct {
	Cells map[Cell]string
	Texts []EscapedText
}

// BuildGrid splits input into the sparse cell map the rest of the pipeline
// consumes. It never fails: it only splits off the legend source (if any),
// and the caller (ToSVGWithSettings) hands that source to ParseLegend
// separately. Diagram parsing itself never produces an error.
func BuildGrid(input string) (grid *Grid, legendSource string) {
	diagramLines, legendSource := splitOffLegend(input)
	grid = &Grid{Cells: make(map[Cell]string)}
	for y, line := range diagramLines {
		buildLine(grid, line, y)
	}
	return grid, legendSource
}

// splitOffLegend returns the lines to treat as diagram and, if a line
// beginning with "# Legend:" is found, the remainder of the input from
// that line onward.
func splitOffLegend(input string) (diagramLines []string, legendSource string) {
	lines := strings.Split(input, "\n")
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimLeft(line, " \t"), "# Legend:") {
			return lines[:i], strings.Join(lines[i:], "\n")
		}
	}
	return lines, ""
}

// buildLine walks one line's grapheme clusters with uniseg, the same
// width-aware stepping used for terminal output elsewhere, here driving
// cell placement instead of screen columns. It extracts quoted literal
// text and places every other non-blank cluster into the grid at its
// display column.
func buildLine(grid *Grid, line string, y int) {
	x := 0
	str := line
	state := -1

	inQuote := false
	quoteStartCol := 0
	var quoteContent []rune

	for len(str) > 0 {
		cluster, rest, boundaries, newState := uniseg.StepString(str, state)
		width := boundaries >> uniseg.ShiftWidth
		state = newState
		str = rest

		if width == 0 {
			// Zero-width combining mark: attaches to the previous cell
			//, unless we are inside a quote, where it is
			// simply part of the literal text.
			switch {
			case inQuote:
				quoteContent = append(quoteContent, []rune(cluster)...)
			case x > 0:
				prev := Cell{X: x - 1, Y: y}
				grid.Cells[prev] += cluster
			}
			continue
		}

		if inQuote {
			if cluster == `"` {
				if n := len(quoteContent); n > 0 && quoteContent[n-1] == '\\' {
					quoteContent[n-1] = '"' // \" escape.
				} else {
					grid.Texts = append(grid.Texts, EscapedText{
						Cell:    Cell{X: quoteStartCol, Y: y},
						Content: string(quoteContent),
					})
					inQuote = false
					quoteContent = nil
				}
			} else {
				quoteContent = append(quoteContent, []rune(cluster)...)
			}
			x += width
			continue
		}

		if cluster == `"` {
			inQuote = true
			quoteStartCol = x
			quoteContent = nil
			x += width
			continue
		}

		// A double-wide cluster (e.g. CJK) is stored once at its left
		// column; the right column is simply left absent from the sparse
		// map, which is sufficient to keep later columns lined up.
		if strings.TrimSpace(cluster) != "" {
			grid.Cells[Cell{X: x, Y: y}] = cluster
		}
		x += width
	}
	// An unterminated quote on this line is a malformed-input edge case;
	// diagram parsing never fails, so its content is simply
	// dropped rather than surfaced as text (it was already excluded from
	// grid.Cells while being scanned).
}

// FirstRune returns the first rune of a cell's grapheme cluster, the unit
// the Property Table and Unicode Fragment Map key on.
func FirstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}
