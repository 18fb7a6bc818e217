package linkedlist

import "github.com/katalvlaran/stepviz/snapshot"

type node struct {
	id, value int
	next      *node
}

// List is a singly linked list of integers.
type List struct {
	head   *node
	size   int
	nextID int
}

// New returns a list holding values in order with IDs 0..len-1.
func New(values ...int) *List {
	l := &List{}
	var tail *node
	for _, v := range values {
		n := &node{id: l.nextID, value: v}
		l.nextID++
		if tail == nil {
			l.head = n
		} else {
			tail.next = n
		}
		tail = n
		l.size++
	}
	return l
}

// Len returns the number of nodes.
func (l *List) Len() int { return l.size }

// NextID returns the ID the next inserted node will get.
func (l *List) NextID() int { return l.nextID }

// Values returns the values from head to tail.
func (l *List) Values() []int {
	out := make([]int, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}

// Nodes returns a snapshot of the list with every node in the default state.
func (l *List) Nodes() []snapshot.ListNode {
	out := make([]snapshot.ListNode, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		out = append(out, snapshot.ListNode{ID: n.id, Value: n.value})
	}
	return out
}

// Index returns the position of the first node holding v, or -1.
func (l *List) Index(v int) int {
	i := 0
	for n := l.head; n != nil; n = n.next {
		if n.value == v {
			return i
		}
		i++
	}
	return -1
}

// Clone returns a deep copy of l, IDs and counter included.
func (l *List) Clone() *List {
	out := &List{size: l.size, nextID: l.nextID}
	var tail *node
	for n := l.head; n != nil; n = n.next {
		cp := &node{id: n.id, value: n.value}
		if tail == nil {
			out.head = cp
		} else {
			tail.next = cp
		}
		tail = cp
	}
	return out
}

func (l *List) alloc(v int) *node {
	n := &node{id: l.nextID, value: v}
	l.nextID++
	return n
}

// InsertHead returns an Op that inserts v before the head.
func (l *List) InsertHead(v int) *Op {
	return newOp(opInsertHead, l, v)
}

// InsertTail returns an Op that walks to the tail and appends v.
func (l *List) InsertTail(v int) *Op {
	return newOp(opInsertTail, l, v)
}

// Delete returns an Op that unlinks the first node holding v.
func (l *List) Delete(v int) *Op {
	return newOp(opDelete, l, v)
}

// Search returns an Op that looks for the first node holding v.
func (l *List) Search(v int) *Op {
	return newOp(opSearch, l, v)
}
