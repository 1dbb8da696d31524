package fwdlist

import "cmp"

// Equal returns true if a and b have the same length and contain
// equal values in the same order.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like [Equal] but uses eq to compare elements.
func EqualFunc[T any](a, b *List[T], eq func(T, T) bool) bool {
	if a.len != b.len {
		return false
	}

	x, y := a.head.next, b.head.next
	for ; x != nil && y != nil; x, y = x.next, y.next {
		if !eq(x.val, y.val) {
			return false
		}
	}
	return x == nil && y == nil
}

// Compare compares the elements of a and b lexicographically. The
// first pair of elements that differ decides the result. If one list
// is a prefix of the other, the shorter list is the lesser one. The
// result is 0 if a == b, -1 if a < b, and +1 if a > b.
func Compare[T cmp.Ordered](a, b *List[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is like [Compare] but uses c to compare elements.
func CompareFunc[T any](a, b *List[T], c func(T, T) int) int {
	x, y := a.head.next, b.head.next
	for ; x != nil && y != nil; x, y = x.next, y.next {
		if r := c(x.val, y.val); r != 0 {
			return r
		}
	}

	switch {
	case x == nil && y == nil:
		return 0
	case x == nil:
		return -1
	default:
		return 1
	}
}

func Less[T cmp.Ordered](a, b *List[T]) bool {
	return Compare(a, b) < 0
}

func LessOrEqual[T cmp.Ordered](a, b *List[T]) bool {
	return Compare(a, b) <= 0
}

func Greater[T cmp.Ordered](a, b *List[T]) bool {
	return Compare(a, b) > 0
}

func GreaterOrEqual[T cmp.Ordered](a, b *List[T]) bool {
	return Compare(a, b) >= 0
}
