package fwdlist

import (
	"iter"
	"slices"
)

// List is a singly-linked list. A zero value List is empty and ready
// to use.
//
// The first node of the list hangs off of a sentinel that is stored
// inside of the List itself, so a List must not be copied after first
// use. To get an independent copy of a list, use [List.Clone] or
// [List.AssignList].
type List[T any] struct {
	_ noCopy

	head node[T]
	len  int
}

// New returns a new, empty list.
func New[T any]() *List[T] {
	return new(List[T])
}

// Of returns a new list containing the given values in order.
func Of[T any](values ...T) *List[T] {
	return FromSeq(slices.Values(values))
}

// FromSeq returns a new list containing the values yielded by seq in
// the order that they were yielded.
func FromSeq[T any](seq iter.Seq[T]) *List[T] {
	var ls List[T]
	ls.Assign(seq)
	return &ls
}

// Clone returns a deep copy of the list. The new list shares no nodes
// with ls.
func (ls *List[T]) Clone() *List[T] {
	return FromSeq(ls.All())
}

// Assign replaces the contents of ls with the values yielded by seq.
// The new chain is fully built before it replaces the old one, so if
// seq panics partway through, ls is left as it was.
func (ls *List[T]) Assign(seq iter.Seq[T]) {
	var tmp List[T]
	tail := &tmp.head
	for v := range seq {
		tail = tail.insert(v)
		tmp.len++
	}

	ls.Swap(&tmp)
	tmp.Clear()
}

// AssignList replaces the contents of ls with a copy of the contents
// of other. Assigning a list to itself does nothing.
func (ls *List[T]) AssignList(other *List[T]) {
	if ls == other {
		return
	}
	ls.Assign(other.All())
}

// Len returns the number of elements in the list.
func (ls *List[T]) Len() int {
	return ls.len
}

// IsEmpty returns true if the list has no elements.
func (ls *List[T]) IsEmpty() bool {
	return ls.len == 0
}

// Front returns the value of the first element of the list. If the
// list is empty, it returns the zero value and false.
func (ls *List[T]) Front() (v T, ok bool) {
	if ls.head.next == nil {
		return v, false
	}
	return ls.head.next.val, true
}

// PushFront adds v as the new first element of the list.
func (ls *List[T]) PushFront(v T) {
	ls.head.insert(v)
	ls.len++
}

// PopFront removes the first element of the list. It returns false if
// the list was already empty.
func (ls *List[T]) PopFront() bool {
	if ls.head.next == nil {
		return false
	}

	ls.head.unlink()
	ls.len--
	return true
}

// InsertAfter inserts v into the list immediately after pos and
// returns the position of the new element. Inserting after
// [List.BeforeBegin] makes v the new first element.
//
// pos must be the before-begin position of ls or the position of one
// of its elements. Passing a position that belongs to a different list
// corrupts both lists. InsertAfter panics if pos is an end position.
func (ls *List[T]) InsertAfter(pos Position[T], v T) Position[T] {
	if pos.n == nil {
		panic("fwdlist: InsertAfter called with end position")
	}

	n := pos.n.insert(v)
	ls.len++
	return Position[T]{n: n}
}

// EraseAfter removes the element immediately following pos and returns
// the position of the element that now follows pos, which is an end
// position if the erased element was the last one. Positions of the
// erased element become invalid.
//
// pos must belong to ls, as with [List.InsertAfter]. EraseAfter panics
// if pos is an end position or has no following element.
func (ls *List[T]) EraseAfter(pos Position[T]) Position[T] {
	if pos.n == nil {
		panic("fwdlist: EraseAfter called with end position")
	}
	if pos.n.next == nil {
		panic("fwdlist: EraseAfter called on last position")
	}

	pos.n.unlink()
	ls.len--
	return Position[T]{n: pos.n.next}
}

// Clear removes every element from the list. Nodes are released one
// at a time from the front.
func (ls *List[T]) Clear() {
	for ls.head.next != nil {
		ls.head.unlink()
	}
	ls.len = 0
}

// Swap exchanges the contents of ls and other without touching any of
// their elements. Positions of elements follow those elements into
// the other list, but each list keeps its own before-begin position.
func (ls *List[T]) Swap(other *List[T]) {
	ls.head.next, other.head.next = other.head.next, ls.head.next
	ls.len, other.len = other.len, ls.len
}

// Swap exchanges the contents of a and b. It is equivalent to
// a.Swap(b).
func Swap[T any](a, b *List[T]) {
	a.Swap(b)
}

type node[T any] struct {
	val  T
	next *node[T]
}

// insert links a new node holding v directly after n and returns it.
func (n *node[T]) insert(v T) *node[T] {
	n.next = &node[T]{val: v, next: n.next}
	return n.next
}

// unlink removes the node directly after n from the chain and clears
// it so that it no longer references its value or the rest of the
// chain.
func (n *node[T]) unlink() {
	r := n.next
	n.next = r.next
	*r = node[T]{}
}
