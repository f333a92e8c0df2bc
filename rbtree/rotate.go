package rbtree

// replaceChild puts c where old is, under old's parent.
// If old was the root, c becomes the root.
func (t *Tree[T]) replaceChild(old, c *node[T]) {
	p := old.parent
	if old.isLeft {
		p.setLeft(c)
	} else {
		p.setRight(c)
	}

	if p == t.end {
		t.root = c
	}
}

// rotateLeft rotates n to the left.
// For example, this is the result of calling t.rotateLeft(n):
//
//	  -> n            p
//	    / \          / \
//	   m   p   ->   n   q
//	      / \      / \
//	     o   q    m   o
//
// The ordering invariant m < n < o < p < q is always preserved.
// Any of m, o and q may be sentinels; p may not.
func (t *Tree[T]) rotateLeft(n *node[T]) {
	p := n.right
	if p.isNull {
		panic("cannot rotateLeft with null right")
	}
	o := p.left

	t.replaceChild(n, p)
	n.setRight(o)
	p.setLeft(n)
}

// rotateRight rotates n to the right.
// For example, this is the result of calling t.rotateRight(n):
//
//	  -> n            l
//	    / \          / \
//	   l   o   ->   k   n
//	  / \              / \
//	 k   m            m   o
//
// The ordering invariant k < l < m < n < o is always preserved.
// Any of k, m and o may be sentinels; l may not.
func (t *Tree[T]) rotateRight(n *node[T]) {
	l := n.left
	if l.isNull {
		panic("cannot rotateRight with null left")
	}
	m := l.right

	t.replaceChild(n, l)
	n.setLeft(m)
	l.setRight(n)
}
