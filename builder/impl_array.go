// SPDX-License-Identifier: MIT
// Package: stepviz/builder
//
// impl_array.go: RandomArray(size, max).
//
// Contract:
//   • size ≥ MinArraySize and max ≥ MinArrayMax (else ErrTooSmall).
//   • Values are drawn uniformly from [1,max] in index order.
//
// Complexity: O(size) time and space.

package builder

// RandomArray returns size values drawn uniformly from [1,max].
func RandomArray(size, max int, opts ...BuilderOption) ([]int, error) {
	if err := validateMin(MethodRandomArray, "size", size, MinArraySize); err != nil {
		return nil, err
	}
	if err := validateMin(MethodRandomArray, "max", max, MinArrayMax); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)
	out := make([]int, size)
	for i := range out {
		out[i] = cfg.rng.Intn(max) + 1
	}
	return out, nil
}
