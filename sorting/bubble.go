package sorting

import "github.com/katalvlaran/stepviz/snapshot"

type bubblePhase uint8

const (
	bubbleScan bubblePhase = iota
	bubbleCompared
	bubblePassEnd
	bubbleFinal
	bubbleDone
)

// Bubble generates the steps of bubble sort.
//
// For every pair (j, j+1) of pass i it emits a KindCompare step and, when the
// left value is strictly greater, a KindSwap step showing the swapped array.
// Each pass ends with KindPassSorted; a pass without swaps ends the sort
// early. The last step is KindDone with every bar sorted.
type Bubble struct {
	bars    []snapshot.Bar
	n       int
	i, j    int
	swapped bool
	phase   bubblePhase
}

// NewBubble returns a bubble sort generator over a copy of values.
func NewBubble(values []int) (*Bubble, error) {
	bars, err := newBars("sorting.NewBubble", values)
	if err != nil {
		return nil, err
	}
	return &Bubble{bars: bars, n: len(bars)}, nil
}

// Next returns the next step, or false when the run is complete.
func (b *Bubble) Next() (snapshot.ArrayStep, bool) {
	for {
		switch b.phase {
		case bubbleScan:
			if b.i >= b.n-1 {
				b.phase = bubbleFinal
				continue
			}
			if b.j >= b.n-b.i-1 {
				b.phase = bubblePassEnd
				continue
			}
			b.phase = bubbleCompared
			return b.pairStep(snapshot.KindCompare, snapshot.BarComparing), true

		case bubbleCompared:
			b.phase = bubbleScan
			j := b.j
			if b.bars[j].Value > b.bars[j+1].Value {
				b.bars[j], b.bars[j+1] = b.bars[j+1], b.bars[j]
				b.swapped = true
				step := b.pairStep(snapshot.KindSwap, snapshot.BarSwapping)
				b.j++
				return step, true
			}
			b.j++

		case bubblePassEnd:
			step := b.passStep()
			if b.swapped {
				b.i++
				b.j = 0
				b.swapped = false
				b.phase = bubbleScan
			} else {
				b.phase = bubbleFinal
			}
			return step, true

		case bubbleFinal:
			b.phase = bubbleDone
			return snapshot.NewArrayStep(snapshot.KindDone, paint(b.bars, allSorted)), true

		default:
			return snapshot.ArrayStep{}, false
		}
	}
}

// pairStep tags (j, j+1) with pair and the settled tail as sorted.
func (b *Bubble) pairStep(kind snapshot.StepKind, pair snapshot.BarState) snapshot.ArrayStep {
	j, tail := b.j, b.n-b.i
	step := snapshot.NewArrayStep(kind, paint(b.bars, func(idx int, _ snapshot.Bar) snapshot.BarState {
		switch {
		case idx == j || idx == j+1:
			return pair
		case idx >= tail:
			return snapshot.BarSorted
		default:
			return snapshot.BarDefault
		}
	}))
	step.Pass, step.J = b.i, j
	step.Comparing = []int{j, j + 1}
	return step
}

// passStep marks the last i+1 positions as sorted.
func (b *Bubble) passStep() snapshot.ArrayStep {
	tail := b.n - b.i - 1
	step := snapshot.NewArrayStep(snapshot.KindPassSorted, paint(b.bars, func(idx int, _ snapshot.Bar) snapshot.BarState {
		if idx >= tail {
			return snapshot.BarSorted
		}
		return snapshot.BarDefault
	}))
	step.Pass = b.i
	return step
}
