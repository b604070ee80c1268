package fibheap

import "golang.org/x/exp/constraints"

// Key is the set of types that can order a heap.
type Key interface {
	constraints.Integer | constraints.Float
}

// Node is an element of a heap and the handle callers use to refer to it.
//
// A Node returned by Push stays valid for DecreaseKey and Delete until the
// element leaves the heap through ExtractMin, Delete or Clear.
type Node[K Key, V any] struct {
	value  V
	key    K
	rank   int  // Number of direct children
	marked bool // Lost a child since it last became a child; never set on roots

	parent *Node[K, V] // Nil for roots
	child  *Node[K, V] // Any member of the child ring, nil if rank is 0
	left   *Node[K, V] // Ring neighbours; a lone node points at itself
	right  *Node[K, V]

	owner *owner // Token of the owning heap, nil once released
}

// NewNode creates a detached node that can be passed to Insert or NewFrom.
func NewNode[K Key, V any](value V, key K) *Node[K, V] {
	n := &Node[K, V]{
		value: value,
		key:   key,
	}
	n.left, n.right = n, n
	return n
}

// Value returns the payload of the node.
func (n *Node[K, V]) Value() V {
	return n.value
}

// Key returns the current ordering key of the node.
func (n *Node[K, V]) Key() K {
	return n.key
}

// detach clears the parent and ring links ahead of moving n to another ring.
// The child ring is left in place.
func (n *Node[K, V]) detach() {
	n.parent = nil
	n.left, n.right = n, n
}

// release fully unlinks n so that nothing in a heap can reach it and it no
// longer reaches into a heap.
func (n *Node[K, V]) release() {
	n.detach()
	n.child = nil
	n.rank = 0
	n.marked = false
	n.owner = nil
}

// splice joins the ring containing a with the ring containing b. The two
// rings must be distinct.
func splice[K Key, V any](a, b *Node[K, V]) {
	aRight, bLeft := a.right, b.left
	a.right, b.left = b, a
	bLeft.right, aRight.left = aRight, bLeft
}

// unlink removes n from its ring and returns another member of the ring it
// left, or nil if n was alone.
func unlink[K Key, V any](n *Node[K, V]) *Node[K, V] {
	if n.right == n {
		return nil
	}
	rest := n.right
	n.left.right = n.right
	n.right.left = n.left
	n.left, n.right = n, n
	return rest
}

// owner identifies a heap. Melding forwards the consumed heap's token to the
// receiving heap so handles from both remain valid without touching every
// node.
type owner struct {
	next *owner
}

// resolve returns the token of the heap that currently owns o, compressing the
// forwarding path as it goes.
func (o *owner) resolve() *owner {
	root := o
	for root.next != nil {
		root = root.next
	}
	for o != root {
		next := o.next
		o.next = root
		o = next
	}
	return root
}
