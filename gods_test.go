package fwdlist_test

import (
	"testing"

	"deedles.dev/fwdlist"
	"github.com/emirpasic/gods/containers"
	"github.com/emirpasic/gods/utils"
	"github.com/stretchr/testify/require"
)

func TestContainer(t *testing.T) {
	ls := fwdlist.Of(3, 1, 2)
	c := ls.Container()

	require.False(t, c.Empty())
	require.Equal(t, 3, c.Size())
	require.Equal(t, []interface{}{3, 1, 2}, c.Values())
	require.Equal(t, []interface{}{1, 2, 3}, containers.GetSortedValues(c, utils.IntComparator))
	require.Equal(t, "fwdlist.List[3 1 2]", c.String())

	c.Clear()
	require.True(t, ls.IsEmpty())
	require.True(t, c.Empty())
}

func TestComparator(t *testing.T) {
	a := fwdlist.Of("a", "b")
	b := fwdlist.Of("a", "c")
	c := fwdlist.Comparator[string](utils.StringComparator)

	require.Negative(t, fwdlist.CompareFunc(a, b, c))
	require.Zero(t, fwdlist.CompareFunc(a, a, c))
}
