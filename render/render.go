// Package render draws driver steps, the algorithm registry and run
// summaries for a terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/katalvlaran/stepviz/driver"
	"github.com/katalvlaran/stepviz/snapshot"
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithColor forces ANSI colours on or off. Without it the fatih/color
// terminal detection decides.
func WithColor(on bool) Option {
	return func(r *Renderer) {
		r.colorSet, r.color = true, on
	}
}

// Renderer writes one frame per step.
type Renderer struct {
	w        io.Writer
	color    bool
	colorSet bool

	bars  map[snapshot.BarState]*color.Color
	cells map[snapshot.CellType]*color.Color
	nodes map[snapshot.NodeState]*color.Color
	title *color.Color
}

// New returns a Renderer writing to w.
func New(w io.Writer, opts ...Option) *Renderer {
	r := &Renderer{w: w}
	for _, opt := range opts {
		opt(r)
	}
	if !r.colorSet {
		r.color = !color.NoColor
	}

	r.bars = map[snapshot.BarState]*color.Color{
		snapshot.BarComparing: r.paint(color.FgYellow, color.Bold),
		snapshot.BarPivot:     r.paint(color.FgMagenta, color.Bold),
		snapshot.BarSubarray:  r.paint(color.FgCyan),
		snapshot.BarSorted:    r.paint(color.FgGreen),
		snapshot.BarSwapping:  r.paint(color.FgRed, color.Bold),
	}
	r.cells = map[snapshot.CellType]*color.Color{
		snapshot.CellWall:        r.paint(color.FgHiBlack),
		snapshot.CellStart:       r.paint(color.FgGreen, color.Bold),
		snapshot.CellEnd:         r.paint(color.FgRed, color.Bold),
		snapshot.CellPath:        r.paint(color.FgYellow, color.Bold),
		snapshot.CellVisited:     r.paint(color.FgCyan),
		snapshot.CellCurrent:     r.paint(color.FgMagenta, color.Bold),
		snapshot.CellBacktracked: r.paint(color.FgRed),
		snapshot.CellFrontier:    r.paint(color.FgBlue),
		snapshot.CellOpen:        r.paint(color.FgBlue),
		snapshot.CellClosed:      r.paint(color.FgCyan),
	}
	r.nodes = map[snapshot.NodeState]*color.Color{
		snapshot.NodeHighlight: r.paint(color.FgYellow, color.Bold),
		snapshot.NodeInserting: r.paint(color.FgGreen, color.Bold),
		snapshot.NodeDeleting:  r.paint(color.FgRed, color.Bold),
	}
	r.title = r.paint(color.Bold)
	return r
}

func (r *Renderer) paint(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if r.color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// Step writes the header line and the body of step.
func (r *Renderer) Step(step driver.Step) error {
	var body string
	switch {
	case step.Array != nil:
		body = r.Array(*step.Array)
	case step.Grid != nil:
		body = r.Grid(*step.Grid)
	case step.List != nil:
		body = r.List(*step.List)
	}

	header := r.title.Sprintf("step %s: %s", humanize.Comma(int64(step.Index+1)), step.Kind())
	if _, err := fmt.Fprintf(r.w, "%s\n%s\n", header, body); err != nil {
		return fmt.Errorf("render step %d: %w", step.Index, err)
	}
	return nil
}

// barGlyphs brackets each value by state so frames stay readable without
// colour.
var barGlyphs = map[snapshot.BarState][2]string{
	snapshot.BarDefault:   {" ", " "},
	snapshot.BarComparing: {"<", ">"},
	snapshot.BarPivot:     {"|", "|"},
	snapshot.BarSubarray:  {"(", ")"},
	snapshot.BarSorted:    {"[", "]"},
	snapshot.BarSwapping:  {">", "<"},
}

// Array renders the bars of step on one line.
func (r *Renderer) Array(step snapshot.ArrayStep) string {
	parts := make([]string, len(step.Bars))
	for i, b := range step.Bars {
		g := barGlyphs[b.State]
		s := g[0] + fmt.Sprint(b.Value) + g[1]
		if c, ok := r.bars[b.State]; ok {
			s = c.Sprint(s)
		}
		parts[i] = s
	}
	return strings.Join(parts, " ")
}

// cellGlyphs maps every cell type to one character.
var cellGlyphs = map[snapshot.CellType]byte{
	snapshot.CellEmpty:       '.',
	snapshot.CellWall:        '#',
	snapshot.CellStart:       'S',
	snapshot.CellEnd:         'E',
	snapshot.CellPath:        '*',
	snapshot.CellVisited:     'v',
	snapshot.CellCurrent:     '@',
	snapshot.CellBacktracked: 'x',
	snapshot.CellFrontier:    'f',
	snapshot.CellOpen:        'o',
	snapshot.CellClosed:      'c',
}

// Grid renders step as one line per row.
func (r *Renderer) Grid(step snapshot.GridStep) string {
	var sb strings.Builder
	for i, row := range step.Grid {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, cell := range row {
			glyph := string(cellGlyphs[cell.Type])
			if c, ok := r.cells[cell.Type]; ok {
				glyph = c.Sprint(glyph)
			}
			sb.WriteString(glyph)
		}
	}
	return sb.String()
}

var nodeGlyphs = map[snapshot.NodeState][2]string{
	snapshot.NodeDefault:   {"", ""},
	snapshot.NodeHighlight: {"[", "]"},
	snapshot.NodeInserting: {"+", ""},
	snapshot.NodeDeleting:  {"-", ""},
}

// List renders the nodes of step from head to null.
func (r *Renderer) List(step snapshot.ListStep) string {
	parts := make([]string, 0, len(step.Nodes)+1)
	for _, n := range step.Nodes {
		g := nodeGlyphs[n.State]
		s := g[0] + fmt.Sprint(n.Value) + g[1]
		if c, ok := r.nodes[n.State]; ok {
			s = c.Sprint(s)
		}
		parts = append(parts, s)
	}
	parts = append(parts, "null")
	return strings.Join(parts, " -> ")
}
