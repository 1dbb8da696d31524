package fwdlist

// Position refers to a location in a [List]. It is either the
// before-begin position of a list, the position of one of its
// elements, or an end position. The zero value is an end position.
//
// Positions are compared by identity: two positions are equal if they
// refer to the same node, regardless of what value that node holds.
// All end positions are equal to each other. Positions can be compared
// with == as well as with [Position.Equal].
type Position[T any] struct {
	n    *node[T]
	head bool
}

// BeforeBegin returns the position just before the first element of
// the list. It can't be dereferenced and is only useful as an anchor
// for [List.InsertAfter] and [List.EraseAfter].
func (ls *List[T]) BeforeBegin() Position[T] {
	return Position[T]{n: &ls.head, head: true}
}

// Begin returns the position of the first element of the list, or an
// end position if the list is empty.
func (ls *List[T]) Begin() Position[T] {
	return Position[T]{n: ls.head.next}
}

// End returns an end position.
func (ls *List[T]) End() Position[T] {
	return Position[T]{}
}

// Next returns the position following p. The position following the
// last element is an end position, and the position following an end
// position is also an end position.
func (p Position[T]) Next() Position[T] {
	if p.n == nil {
		return p
	}
	return Position[T]{n: p.n.next}
}

// IsEnd returns true if p is an end position.
func (p Position[T]) IsEnd() bool {
	return p.n == nil
}

// IsBeforeBegin returns true if p is the before-begin position of a
// list.
func (p Position[T]) IsBeforeBegin() bool {
	return p.head
}

// Equal returns true if p and q refer to the same node.
func (p Position[T]) Equal(q Position[T]) bool {
	return p.n == q.n
}

// Ptr returns a pointer to the value of the element at p, allowing it
// to be modified in place. It panics if p is an end or a before-begin
// position.
func (p Position[T]) Ptr() *T {
	switch {
	case p.n == nil:
		panic("fwdlist: dereference of end position")
	case p.head:
		panic("fwdlist: dereference of before-begin position")
	}
	return &p.n.val
}

// Value returns the value of the element at p.
func (p Position[T]) Value() T {
	return *p.Ptr()
}

// Set replaces the value of the element at p with v.
func (p Position[T]) Set(v T) {
	*p.Ptr() = v
}
