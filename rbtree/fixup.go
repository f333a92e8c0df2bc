package rbtree

// insertFixup restores the red-black invariants after n, a red node,
// was attached in place of a sentinel.
func (t *Tree[T]) insertFixup(n *node[T]) {
	for n != t.root && n.parent.color == red {
		// p is red, so it is not the root and g is a real node
		p := n.parent
		g := p.parent
		u := p.sibling()

		if u.color == red {
			// push g's blackness down a level and try again from g
			p.color, u.color, g.color = black, black, red
			n = g
			continue
		}

		if n.isLeft != p.isLeft {
			// n is an inner grandchild: turn it into an outer one
			if n.isLeft {
				t.rotateRight(p)
			} else {
				t.rotateLeft(p)
			}
			n, p = p, n
		}

		if p.isLeft {
			t.rotateRight(g)
		} else {
			t.rotateLeft(g)
		}
		p.color, g.color = black, red
		break
	}

	t.root.color = black
}

// deleteFixup restores the red-black invariants after a node of color
// removed was spliced out and replaced by x. x may be a sentinel.
//
// The removed color is added onto x. A red x becomes black and the
// tree is valid again; otherwise x is double black and the extra black
// is moved up or absorbed by rotations.
func (t *Tree[T]) deleteFixup(x *node[T], removed color) {
	x.color += removed

	for x.color == doubleBlack {
		if x == t.root {
			x.color = black
			break
		}

		p := x.parent
		s := x.sibling()

		if s.color == red {
			// make the sibling black; p is black since s is red
			s.color, p.color = black, red
			if x.isLeft {
				t.rotateLeft(p)
			} else {
				t.rotateRight(p)
			}
			continue
		}

		near, far := s.right, s.left
		if x.isLeft {
			near, far = s.left, s.right
		}

		if near.color == black && far.color == black {
			s.color = red
			x.color = black
			p.color += black
			x = p
			continue
		}

		if far.color == black {
			// near is red: rotate it up to be the sibling, with a
			// red far child
			near.color, s.color = black, red
			if x.isLeft {
				t.rotateRight(s)
			} else {
				t.rotateLeft(s)
			}
			continue
		}

		s.color, p.color, far.color = p.color, black, black
		if x.isLeft {
			t.rotateLeft(p)
		} else {
			t.rotateRight(p)
		}
		x.color = black
		break
	}
}
