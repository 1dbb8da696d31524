package fwdlist

import (
	"fmt"
	"iter"
)

// All returns an iterator over the values of the list from first to
// last. Every call to the returned function starts over from the
// current first element.
func (ls *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := ls.head.next; cur != nil; cur = cur.next {
			if !yield(cur.val) {
				return
			}
		}
	}
}

// Positions returns an iterator over the positions of the elements of
// the list. It is safe to call [List.InsertAfter] or [List.EraseAfter]
// with the currently-yielded position during iteration. Iteration
// continues with whatever follows that position once the loop body
// returns.
func (ls *List[T]) Positions() iter.Seq[Position[T]] {
	return func(yield func(Position[T]) bool) {
		for cur := ls.head.next; cur != nil; cur = cur.next {
			if !yield(Position[T]{n: cur}) {
				return
			}
		}
	}
}

// Values returns a slice containing the values of the list in order.
func (ls *List[T]) Values() []T {
	values := make([]T, 0, ls.len)
	for v := range ls.All() {
		values = append(values, v)
	}
	return values
}

func (ls *List[T]) String() string {
	return fmt.Sprint(ls.Values())
}
