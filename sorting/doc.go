// Package sorting turns bubble sort, merge sort and quick sort into
// externally driven step generators over an integer array.
//
// What
//
//   - NewBubble: adjacent-pair bubble sort with early exit (stable).
//   - NewMerge:  top-down merge sort, left-biased merge (stable).
//   - NewQuick:  Lomuto quick sort, pivot = last element (not stable).
//
// Each constructor copies its input into a private working buffer of
// snapshot.Bar values. Next advances the algorithm to its next observable
// event and returns a deep copy of the buffer tagged for that event; it
// returns false once the run is complete.
//
// Suspension
//
//	Merge sort and quick sort are recursive. Instead of goroutines or
//	closures, every active call is a frame on an explicit stack holding its
//	bounds, loop indices and partial merge runs. Next executes the top frame
//	until that frame produces a step, pushes child frames for recursive
//	calls and pops finished frames. The parent resumes only when the child
//	frames above it are gone, so the emitted order is exactly that of the
//	recursive formulation.
//
// Determinism
//
//	No generator consults time, randomness or Bar.State when deciding what
//	to do next. The same input always produces the same run.
//
// Complexity (n = len(values))
//
//   - Bubble: O(n²) steps, O(n) memory per step.
//   - Merge:  O(n log n) steps, O(n) extra memory for runs and frames.
//   - Quick:  O(n²) steps worst case, O(n) frames worst case.
//
// Errors
//
//   - *snapshot.InvalidInputError if any value is negative.
package sorting
