package render

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/stepviz/driver"
	"github.com/katalvlaran/stepviz/gridgraph"
)

// AlgorithmTable renders infos as a table of id, name, category and
// complexity.
func AlgorithmTable(infos []driver.Info) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"ID", "Name", "Category", "Time", "Space"})
	for _, info := range infos {
		tbl.AppendRow(table.Row{info.ID, info.Name, info.Category, info.Time, info.Space})
	}
	tbl.AppendFooter(table.Row{fmt.Sprintf("Total: %d algorithms", len(infos))})
	return tbl.Render()
}

// Summary describes a finished run.
type Summary struct {
	Info    driver.Info
	Outcome driver.Outcome
	Steps   int
	Elapsed time.Duration

	// Visited, Reachable and PathLength are reported for grid runs.
	// Reachable counts the open cells connected to start. PathLength counts
	// cells including both endpoints and is zero when no path was found.
	Visited    int
	Reachable  int
	PathLength int
}

// Summarize builds the summary of run from its last step.
func Summarize(info driver.Info, run *driver.Run, last driver.Step, elapsed time.Duration) Summary {
	s := Summary{
		Info:    info,
		Outcome: run.Outcome(),
		Steps:   run.Steps(),
		Elapsed: elapsed,
	}
	if last.Grid != nil {
		s.Visited = len(last.Grid.Visited)
		start, _ := gridgraph.Locate(last.Grid.Grid)
		s.Reachable = len(gridgraph.Region(last.Grid.Grid, start))
		if last.Grid.HasPath() {
			s.PathLength = len(last.Grid.Path)
		}
	}
	return s
}

// Table renders s as a two-column table.
func (s Summary) Table() string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.SetTitle(s.Info.Name)
	tbl.AppendRows([]table.Row{
		{"Outcome", s.Outcome},
		{"Steps", humanize.Comma(int64(s.Steps))},
		{"Elapsed", s.Elapsed.Round(time.Millisecond)},
		{"Time", s.Info.Time},
		{"Space", s.Info.Space},
	})
	if s.Info.Category == driver.CategoryPathfinding || s.Info.Category == driver.CategoryMaze {
		tbl.AppendRow(table.Row{"Visited", humanize.Comma(int64(s.Visited))})
		tbl.AppendRow(table.Row{"Reachable", humanize.Comma(int64(s.Reachable))})
		tbl.AppendRow(table.Row{"Path", humanize.Comma(int64(s.PathLength))})
	}
	return tbl.Render()
}
