package sorting

import "github.com/katalvlaran/stepviz/snapshot"

// newBars validates values and builds the private working buffer.
func newBars(op string, values []int) ([]snapshot.Bar, error) {
	bars := make([]snapshot.Bar, len(values))
	for i, v := range values {
		if v < 0 {
			return nil, snapshot.Invalid(op, "value %d at index %d is negative", v, i)
		}
		bars[i] = snapshot.Bar{Value: v, State: snapshot.BarDefault, Index: i}
	}
	return bars, nil
}

// paint returns a copy of bars whose states are chosen by tag.
// tag receives the index and the working bar and never mutates the buffer.
func paint(bars []snapshot.Bar, tag func(i int, b snapshot.Bar) snapshot.BarState) []snapshot.Bar {
	out := make([]snapshot.Bar, len(bars))
	for i, b := range bars {
		b.State = tag(i, b)
		out[i] = b
	}
	return out
}

// allSorted is the tag function of every final step.
func allSorted(int, snapshot.Bar) snapshot.BarState {
	return snapshot.BarSorted
}

// inRange reports whether lo <= i <= hi.
func inRange(i, lo, hi int) bool {
	return i >= lo && i <= hi
}
