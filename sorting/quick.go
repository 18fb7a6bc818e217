package sorting

import "github.com/katalvlaran/stepviz/snapshot"

type quickStage uint8

const (
	quickEnter quickStage = iota
	quickScan
	quickCheck
	quickLeft
	quickRight
)

// quickFrame is one activation of sort(left, right) together with the
// partition locals: boundary i, scan index j and the placed pivot p.
type quickFrame struct {
	left, right int
	stage       quickStage
	i, j, p     int
}

// Quick generates the steps of Lomuto quick sort.
//
// Each partition of [left,right] opens with KindPivot on the last element,
// emits KindCompare for every scan index j against boundary i+1, KindSwap for
// every non-trivial swap (i != j) and closes with KindPivotPlaced. A range of
// one element emits KindSingleton without partitioning. The run ends with
// KindDone. Equal values may be reordered.
type Quick struct {
	bars     []snapshot.Bar
	stack    []quickFrame
	finished bool
}

// NewQuick returns a quick sort generator over a copy of values.
func NewQuick(values []int) (*Quick, error) {
	bars, err := newBars("sorting.NewQuick", values)
	if err != nil {
		return nil, err
	}
	q := &Quick{bars: bars}
	q.push(0, len(bars)-1)
	return q, nil
}

func (q *Quick) push(left, right int) {
	q.stack = append(q.stack, quickFrame{left: left, right: right})
}

func (q *Quick) pop() {
	q.stack = q.stack[:len(q.stack)-1]
}

// Next returns the next step, or false when the run is complete.
func (q *Quick) Next() (snapshot.ArrayStep, bool) {
	for len(q.stack) > 0 {
		f := &q.stack[len(q.stack)-1]
		switch f.stage {
		case quickEnter:
			switch {
			case f.left < f.right:
				f.i, f.j = f.left-1, f.left
				f.stage = quickScan
				return q.pivotStep(f), true
			case f.left == f.right:
				q.bars[f.left].State = snapshot.BarSorted
				step := q.singletonStep(f)
				q.pop()
				return step, true
			default:
				q.pop()
			}

		case quickScan:
			if f.j < f.right {
				f.stage = quickCheck
				return q.compareStep(f), true
			}
			f.p = f.i + 1
			q.bars[f.p], q.bars[f.right] = q.bars[f.right], q.bars[f.p]
			q.bars[f.p].State = snapshot.BarSorted
			f.stage = quickLeft
			return q.placedStep(f), true

		case quickCheck:
			j := f.j
			f.j++
			f.stage = quickScan
			if q.bars[j].Value < q.bars[f.right].Value {
				f.i++
				if f.i != j {
					q.bars[f.i], q.bars[j] = q.bars[j], q.bars[f.i]
					return q.swapStep(f, j), true
				}
			}

		case quickLeft:
			f.stage = quickRight
			q.push(f.left, f.p-1)

		case quickRight:
			left, right := f.p+1, f.right
			q.pop()
			q.push(left, right)
		}
	}

	if q.finished {
		return snapshot.ArrayStep{}, false
	}
	q.finished = true
	return snapshot.NewArrayStep(snapshot.KindDone, paint(q.bars, allSorted)), true
}

func (q *Quick) frameStep(kind snapshot.StepKind, f *quickFrame, pivot int, bars []snapshot.Bar) snapshot.ArrayStep {
	step := snapshot.NewArrayStep(kind, bars)
	step.Left, step.Right, step.Pivot = f.left, f.right, pivot
	return step
}

func (q *Quick) singletonStep(f *quickFrame) snapshot.ArrayStep {
	bars := paint(q.bars, func(_ int, b snapshot.Bar) snapshot.BarState { return b.State })
	return q.frameStep(snapshot.KindSingleton, f, f.left, bars)
}

func (q *Quick) pivotStep(f *quickFrame) snapshot.ArrayStep {
	bars := paint(q.bars, func(idx int, b snapshot.Bar) snapshot.BarState {
		switch {
		case idx == f.right:
			return snapshot.BarPivot
		case idx >= f.left && idx < f.right:
			return snapshot.BarDefault
		default:
			return b.State
		}
	})
	return q.frameStep(snapshot.KindPivot, f, f.right, bars)
}

func (q *Quick) compareStep(f *quickFrame) snapshot.ArrayStep {
	j, boundary := f.j, f.i+1
	bars := paint(q.bars, func(idx int, b snapshot.Bar) snapshot.BarState {
		switch {
		case idx == f.right:
			return snapshot.BarPivot
		case idx == j || idx == boundary:
			return snapshot.BarComparing
		case inRange(idx, f.left, f.right):
			return snapshot.BarDefault
		default:
			return b.State
		}
	})
	step := q.frameStep(snapshot.KindCompare, f, f.right, bars)
	step.Comparing = []int{j, boundary}
	return step
}

func (q *Quick) swapStep(f *quickFrame, j int) snapshot.ArrayStep {
	i := f.i
	bars := paint(q.bars, func(idx int, b snapshot.Bar) snapshot.BarState {
		switch {
		case idx == f.right:
			return snapshot.BarPivot
		case idx == i || idx == j:
			return snapshot.BarSwapping
		case inRange(idx, f.left, f.right):
			return snapshot.BarDefault
		default:
			return b.State
		}
	})
	step := q.frameStep(snapshot.KindSwap, f, f.right, bars)
	step.Comparing = []int{i, j}
	return step
}

func (q *Quick) placedStep(f *quickFrame) snapshot.ArrayStep {
	bars := paint(q.bars, func(idx int, b snapshot.Bar) snapshot.BarState {
		switch {
		case idx == f.p:
			return snapshot.BarSorted
		case inRange(idx, f.left, f.right):
			return snapshot.BarDefault
		default:
			return b.State
		}
	})
	return q.frameStep(snapshot.KindPivotPlaced, f, f.p, bars)
}
