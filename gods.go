package fwdlist

import (
	"github.com/emirpasic/gods/containers"
	"github.com/emirpasic/gods/utils"
)

// Container returns a view of the list that implements the gods
// container interface. The view shares the list's elements, so
// clearing it clears the list.
func (ls *List[T]) Container() containers.Container {
	return container[T]{ls: ls}
}

// Comparator adapts a gods comparator for use with [CompareFunc].
func Comparator[T any](c utils.Comparator) func(T, T) int {
	return func(a, b T) int { return c(a, b) }
}

type container[T any] struct {
	ls *List[T]
}

var _ containers.Container = container[int]{}

func (c container[T]) Empty() bool { return c.ls.IsEmpty() }
func (c container[T]) Size() int   { return c.ls.Len() }
func (c container[T]) Clear()      { c.ls.Clear() }

func (c container[T]) Values() []interface{} {
	values := make([]interface{}, 0, c.ls.Len())
	for v := range c.ls.All() {
		values = append(values, v)
	}
	return values
}

func (c container[T]) String() string {
	return "fwdlist.List" + c.ls.String()
}
