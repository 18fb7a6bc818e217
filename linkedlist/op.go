package linkedlist

import "github.com/katalvlaran/stepviz/snapshot"

type opKind uint8

const (
	opInsertHead opKind = iota
	opInsertTail
	opDelete
	opSearch
)

// Op is one list operation in progress.
type Op struct {
	kind  opKind
	list  *List
	value int

	// walk state: cur is the node at position pos, prev its predecessor.
	cur, prev *node
	pos       int

	// pending is the step kind emitted on the next call after the walk,
	// KindDone once the operation has reported its outcome.
	pending  snapshot.StepKind
	walking  bool
	finished bool
}

func newOp(kind opKind, l *List, v int) *Op {
	o := &Op{kind: kind, list: l.Clone(), value: v}
	o.cur = o.list.head
	switch kind {
	case opInsertHead:
		o.pending = snapshot.KindInsert
	default:
		o.walking = true
	}
	return o
}

// Result returns the list after the operation. It reports false until Next
// has reported completion.
func (o *Op) Result() (*List, bool) {
	if !o.finished {
		return nil, false
	}
	return o.list, true
}

// Next returns the next step, or false when the operation is complete.
func (o *Op) Next() (snapshot.ListStep, bool) {
	if o.finished {
		return snapshot.ListStep{}, false
	}
	if o.walking {
		if step, ok := o.walk(); ok {
			return step, true
		}
	}

	switch o.pending {
	case snapshot.KindInsert:
		return o.insert(), true
	case snapshot.KindDelete:
		return o.remove(), true
	case snapshot.KindFound:
		o.finished = true
		return o.step(snapshot.KindFound, o.pos, snapshot.NodeHighlight), true
	case snapshot.KindNotFound:
		o.finished = true
		return o.step(snapshot.KindNotFound, snapshot.NoIndex, snapshot.NodeDefault), true
	default:
		o.finished = true
		return o.step(snapshot.KindDone, snapshot.NoIndex, snapshot.NodeDefault), true
	}
}

// walk emits a traverse step for the node under the cursor and advances,
// or ends the walk and sets the pending outcome.
func (o *Op) walk() (snapshot.ListStep, bool) {
	if o.cur == nil {
		o.walking = false
		if o.kind == opInsertTail {
			o.pending = snapshot.KindInsert
		} else {
			o.pending = snapshot.KindNotFound
		}
		return snapshot.ListStep{}, false
	}
	if o.kind != opInsertTail && o.cur.value == o.value {
		o.walking = false
		if o.kind == opDelete {
			o.pending = snapshot.KindDelete
		} else {
			o.pending = snapshot.KindFound
		}
		return snapshot.ListStep{}, false
	}
	step := o.step(snapshot.KindTraverse, o.pos, snapshot.NodeHighlight)
	o.prev, o.cur = o.cur, o.cur.next
	o.pos++
	return step, true
}

// insert links the new node at the head or after the walked tail.
func (o *Op) insert() snapshot.ListStep {
	l := o.list
	n := l.alloc(o.value)
	pos := 0
	if o.kind == opInsertHead {
		n.next = l.head
		l.head = n
	} else {
		if o.prev == nil {
			l.head = n
		} else {
			o.prev.next = n
		}
		pos = l.size
	}
	l.size++
	o.pending = snapshot.KindDone
	return o.step(snapshot.KindInsert, pos, snapshot.NodeInserting)
}

// remove shows the match as deleting, then unlinks it.
func (o *Op) remove() snapshot.ListStep {
	step := o.step(snapshot.KindDelete, o.pos, snapshot.NodeDeleting)
	l := o.list
	if o.prev == nil {
		l.head = o.cur.next
	} else {
		o.prev.next = o.cur.next
	}
	l.size--
	o.pending = snapshot.KindDone
	return step
}

// step snapshots the working list with the node at pos tagged state.
func (o *Op) step(kind snapshot.StepKind, pos int, state snapshot.NodeState) snapshot.ListStep {
	nodes := o.list.Nodes()
	if pos >= 0 && pos < len(nodes) {
		nodes[pos].State = state
	}
	return snapshot.ListStep{Kind: kind, Nodes: nodes, Cursor: pos, Value: o.value}
}
