// Package linkedlist is a singly linked list whose operations are replayed
// as steps.
//
// Each operation (InsertHead, InsertTail, Delete, Search) returns an *Op.
// The Op works on a private copy of the list; the receiver is never
// modified. Drive it with Next until it reports completion, then take the
// resulting list from Result.
//
// Step sequences:
//
//   - InsertHead: insert (new head inserting), done.
//   - InsertTail: traverse per existing node, insert (new tail inserting), done.
//   - Delete:     traverse per node before the match, delete (match deleting),
//     done with the node unlinked; or traverse per node then not-found.
//   - Search:     traverse per node before the match, found (match
//     highlighted, Cursor = position); or traverse per node then not-found.
//
// Node IDs are assigned from a per-list counter and never reused, so a
// renderer can key nodes across steps.
package linkedlist
