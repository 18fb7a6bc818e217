package gridgraph

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/stepviz/snapshot"
)

// Layout glyphs understood by Parse and written by Format.
const (
	GlyphEmpty = '.'
	GlyphWall  = '#'
	GlyphStart = 'S'
	GlyphEnd   = 'E'
)

// Parse builds a grid from one string per row. Blank lines and surrounding
// whitespace are ignored.
func Parse(lines ...string) (snapshot.Grid, error) {
	var rows []string
	for _, l := range lines {
		if l = strings.TrimSpace(l); l != "" {
			rows = append(rows, l)
		}
	}
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := len(rows[0])
	g := snapshot.NewGrid(len(rows), cols)
	for r, line := range rows {
		if len(line) != cols {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", r, len(line), cols, ErrNonRectangular)
		}
		for c := 0; c < cols; c++ {
			switch line[c] {
			case GlyphEmpty:
			case GlyphWall:
				g[r][c].Type = snapshot.CellWall
			case GlyphStart:
				g[r][c].Type = snapshot.CellStart
			case GlyphEnd:
				g[r][c].Type = snapshot.CellEnd
			default:
				return nil, fmt.Errorf("%q at %d,%d: %w", line[c], r, c, ErrBadGlyph)
			}
		}
	}
	return g, nil
}

// Format writes the structural layout of g, one line per row. Cells that
// are neither walls nor endpoints are written as empty.
func Format(g snapshot.Grid) string {
	var b strings.Builder
	for r, row := range g {
		if r > 0 {
			b.WriteByte('\n')
		}
		for _, cell := range row {
			switch cell.Type {
			case snapshot.CellWall:
				b.WriteByte(GlyphWall)
			case snapshot.CellStart:
				b.WriteByte(GlyphStart)
			case snapshot.CellEnd:
				b.WriteByte(GlyphEnd)
			default:
				b.WriteByte(GlyphEmpty)
			}
		}
	}
	return b.String()
}
