// SPDX-License-Identifier: MIT
// Package: stepviz/builder
//
// impl_list.go: DefaultList().

package builder

import "github.com/katalvlaran/stepviz/linkedlist"

// DefaultList returns the initial linked list [3 7 2 9 5] with IDs 0..4;
// the next inserted node gets ID 5.
func DefaultList() *linkedlist.List {
	return linkedlist.New(defaultListValues...)
}
