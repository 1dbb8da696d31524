// Package fwdlist provides a generic singly-linked list that only
// supports forward traversal. Insertions and removals happen at the
// front of the list or immediately after a known [Position], in the
// style of a C++ forward_list.
//
// A List is not safe for concurrent use.
package fwdlist

// noCopy may be embedded in a struct to make go vet complain when
// it is copied after first use.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
