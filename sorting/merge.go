package sorting

import "github.com/katalvlaran/stepviz/snapshot"

type mergeStage uint8

const (
	mergeEnter mergeStage = iota
	mergeLeft
	mergeRight
	mergeInit
	mergeCompare
	mergeWrite
)

// mergeFrame is one activation of sort(left, right) including the locals of
// its merge phase.
type mergeFrame struct {
	left, right, mid int
	stage            mergeStage
	lrun, rrun       []snapshot.Bar
	i, j, k          int
}

// Merge generates the steps of top-down merge sort.
//
// Entering a range [left,right] with left < right emits KindRange. Every
// comparison during a merge emits KindCompare followed by KindMerge once the
// smaller candidate is written; ties take the left run. The unmerged rest of
// both runs stays laid out behind the written prefix, so every step is a
// permutation of the input. Copying the leftover run emits nothing. Each
// merge closes with KindMergeDone and the run ends with KindDone.
type Merge struct {
	bars     []snapshot.Bar
	stack    []mergeFrame
	finished bool
}

// NewMerge returns a merge sort generator over a copy of values.
func NewMerge(values []int) (*Merge, error) {
	bars, err := newBars("sorting.NewMerge", values)
	if err != nil {
		return nil, err
	}
	m := &Merge{bars: bars}
	m.push(0, len(bars)-1)
	return m, nil
}

func (m *Merge) push(left, right int) {
	m.stack = append(m.stack, mergeFrame{left: left, right: right})
}

func (m *Merge) pop() {
	m.stack = m.stack[:len(m.stack)-1]
}

// Next returns the next step, or false when the run is complete.
func (m *Merge) Next() (snapshot.ArrayStep, bool) {
	for len(m.stack) > 0 {
		// f is only valid until the next push.
		f := &m.stack[len(m.stack)-1]
		switch f.stage {
		case mergeEnter:
			if f.left >= f.right {
				m.pop()
				continue
			}
			f.mid = f.left + (f.right-f.left)/2
			f.stage = mergeLeft
			return m.rangeStep(f), true

		case mergeLeft:
			f.stage = mergeRight
			m.push(f.left, f.mid)

		case mergeRight:
			f.stage = mergeInit
			m.push(f.mid+1, f.right)

		case mergeInit:
			f.lrun = append([]snapshot.Bar(nil), m.bars[f.left:f.mid+1]...)
			f.rrun = append([]snapshot.Bar(nil), m.bars[f.mid+1:f.right+1]...)
			f.i, f.j, f.k = 0, 0, f.left
			f.stage = mergeCompare

		case mergeCompare:
			if f.i < len(f.lrun) && f.j < len(f.rrun) {
				f.stage = mergeWrite
				return m.compareStep(f), true
			}
			for ; f.k <= f.right; f.k++ {
				m.bars[f.k].State = snapshot.BarSorted
			}
			step := m.mergeDoneStep(f)
			m.pop()
			return step, true

		case mergeWrite:
			if f.lrun[f.i].Value <= f.rrun[f.j].Value {
				m.write(f.k, f.lrun[f.i])
				f.i++
			} else {
				m.write(f.k, f.rrun[f.j])
				f.j++
			}
			f.k++
			m.layout(f)
			f.stage = mergeCompare
			return m.mergedStep(f), true
		}
	}

	if m.finished {
		return snapshot.ArrayStep{}, false
	}
	m.finished = true
	return snapshot.NewArrayStep(snapshot.KindDone, paint(m.bars, allSorted)), true
}

// write stores b at position k of the working buffer as sorted.
func (m *Merge) write(k int, b snapshot.Bar) {
	b.State = snapshot.BarSorted
	m.bars[k] = b
}

// layout places the unmerged remainder of both runs behind the write
// cursor, left run first, so every step holds a permutation of the input.
func (m *Merge) layout(f *mergeFrame) {
	k := copy(m.bars[f.k:], f.lrun[f.i:])
	copy(m.bars[f.k+k:f.right+1], f.rrun[f.j:])
}

// candidates returns the buffer positions of the next left and right
// candidates under the layout maintained by layout.
func (m *Merge) candidates(f *mergeFrame) (li, ri int) {
	return f.k, f.k + len(f.lrun) - f.i
}

func (m *Merge) withBounds(step snapshot.ArrayStep, f *mergeFrame) snapshot.ArrayStep {
	step.Left, step.Right, step.Mid = f.left, f.right, f.mid
	return step
}

func (m *Merge) rangeStep(f *mergeFrame) snapshot.ArrayStep {
	bars := paint(m.bars, func(idx int, _ snapshot.Bar) snapshot.BarState {
		if inRange(idx, f.left, f.right) {
			return snapshot.BarSubarray
		}
		return snapshot.BarDefault
	})
	return m.withBounds(snapshot.NewArrayStep(snapshot.KindRange, bars), f)
}

func (m *Merge) compareStep(f *mergeFrame) snapshot.ArrayStep {
	li, ri := m.candidates(f)
	bars := paint(m.bars, func(idx int, _ snapshot.Bar) snapshot.BarState {
		switch {
		case idx == li || idx == ri:
			return snapshot.BarComparing
		case inRange(idx, f.left, f.right):
			return snapshot.BarSubarray
		default:
			return snapshot.BarDefault
		}
	})
	step := m.withBounds(snapshot.NewArrayStep(snapshot.KindCompare, bars), f)
	step.Comparing = []int{li, ri}
	step.Merging = true
	return step
}

func (m *Merge) mergedStep(f *mergeFrame) snapshot.ArrayStep {
	li, ri := m.candidates(f)
	bars := paint(m.bars, func(idx int, _ snapshot.Bar) snapshot.BarState {
		switch {
		case idx >= f.left && idx < f.k:
			return snapshot.BarSorted
		case idx == li || idx == ri:
			return snapshot.BarComparing
		case inRange(idx, f.left, f.right):
			return snapshot.BarSubarray
		default:
			return snapshot.BarDefault
		}
	})
	step := m.withBounds(snapshot.NewArrayStep(snapshot.KindMerge, bars), f)
	if f.i < len(f.lrun) && f.j < len(f.rrun) {
		step.Comparing = []int{li, ri}
	}
	step.Merging = true
	return step
}

func (m *Merge) mergeDoneStep(f *mergeFrame) snapshot.ArrayStep {
	bars := paint(m.bars, func(idx int, b snapshot.Bar) snapshot.BarState {
		if inRange(idx, f.left, f.right) {
			return snapshot.BarSorted
		}
		return b.State
	})
	return m.withBounds(snapshot.NewArrayStep(snapshot.KindMergeDone, bars), f)
}
