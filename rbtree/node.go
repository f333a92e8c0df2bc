package rbtree

// color is a node color. DoubleBlack only exists while a deletion is
// being repaired; the numeric values let the removed node's color be
// added onto its replacement.
type color uint8

const (
	red color = iota
	black
	doubleBlack
)

func (c color) String() string {
	switch c {
	case red:
		return "R"
	case black:
		return "B"
	case doubleBlack:
		return "BB"
	default:
		panic("unreachable")
	}
}

// node is a tree node or a sentinel.
//
// Every real node has two children at all times; a missing child is a
// sentinel of its own, which is black, has no children and holds no
// value, but does know its parent and side. The tree's end node is also
// a sentinel: its left child is the root and it has no parent.
type node[T any] struct {
	// slot is one element obtained from the tree's allocator.
	// It is nil for sentinels.
	slot []T

	color               color
	left, right, parent *node[T]
	isLeft              bool
	isNull              bool
}

func sentinel[T any]() *node[T] {
	return &node[T]{color: black, isNull: true}
}

func (n *node[T]) value() *T {
	return &n.slot[0]
}

func (n *node[T]) setLeft(c *node[T]) {
	n.left = c
	c.parent = n
	c.isLeft = true
}

func (n *node[T]) setRight(c *node[T]) {
	n.right = c
	c.parent = n
	c.isLeft = false
}

// sibling returns the other child of n's parent. n must not be the root.
func (n *node[T]) sibling() *node[T] {
	if n.isLeft {
		return n.parent.right
	}
	return n.parent.left
}

func (n *node[T]) min() *node[T] {
	for !n.left.isNull {
		n = n.left
	}
	return n
}

func (n *node[T]) max() *node[T] {
	for !n.right.isNull {
		n = n.right
	}
	return n
}

// next returns the in-order successor of n.
//
// n may be a sentinel at the bottom of a search path, in which case
// this is the first node greater than the value that was searched
// for. Every node on the way up to the root is a child of something,
// and the root is the left child of end, so the climb always stops.
func (n *node[T]) next() *node[T] {
	if n.parent == nil {
		// end
		return n
	}

	if n.right != nil && !n.right.isNull {
		return n.right.min()
	}

	for !n.isLeft {
		n = n.parent
	}
	return n.parent
}

// prev returns the in-order predecessor of n. The predecessor of end is
// the maximum. There is nothing before the minimum, so prev of the
// minimum wraps around to end.
func (n *node[T]) prev() *node[T] {
	if n.left != nil && !n.left.isNull {
		return n.left.max()
	}

	for n.isLeft {
		n = n.parent
	}
	if n.parent == nil {
		return n
	}
	return n.parent
}
