package rbtree

import "github.com/cockroachdb/errors"

// Verify checks the tree invariants and the link structure, and
// returns an assertion failure describing the first problem found.
// It takes O(n) time.
func (t *Tree[T]) Verify() error {
	if t.end == nil {
		return errors.AssertionFailedf("tree has no end node (not created with New?)")
	}
	if !t.end.isNull || t.end.parent != nil || t.end.right != nil {
		return errors.AssertionFailedf("malformed end node")
	}

	if t.root == nil {
		if t.end.left != nil {
			return errors.AssertionFailedf("empty tree has a child under end")
		}
		if t.size != 0 {
			return errors.AssertionFailedf("empty tree has size %d", t.size)
		}
		return nil
	}

	if t.end.left != t.root || t.root.parent != t.end || !t.root.isLeft {
		return errors.AssertionFailedf("root is not the left child of end")
	}
	if t.root.isNull {
		return errors.AssertionFailedf("root is a sentinel")
	}
	if t.root.color != black {
		return errors.AssertionFailedf("root is %s", t.root.color)
	}

	count := 0
	if _, err := t.verifyNode(t.root, nil, nil, &count); err != nil {
		return err
	}
	if count != t.size {
		return errors.AssertionFailedf("size is %d but %d nodes are reachable", t.size, count)
	}

	return nil
}

// verifyNode checks the subtree at n, whose values must lie strictly
// between lo and hi where those are not nil. It returns the number of
// black nodes on every path from n down to a sentinel, counting the
// sentinel.
func (t *Tree[T]) verifyNode(n, lo, hi *node[T], count *int) (int, error) {
	if n.isNull {
		if n.color != black {
			return 0, errors.AssertionFailedf("sentinel is %s", n.color)
		}
		if n.left != nil || n.right != nil || n.slot != nil {
			return 0, errors.AssertionFailedf("sentinel has children or a value")
		}
		return 1, nil
	}

	*count++
	v := *n.value()

	if n.color != red && n.color != black {
		return 0, errors.AssertionFailedf("node %v is %s", v, n.color)
	}
	if n.left == nil || n.right == nil {
		return 0, errors.AssertionFailedf("node %v is missing a child", v)
	}
	if n.left.parent != n || !n.left.isLeft {
		return 0, errors.AssertionFailedf("left child of %v is not linked back", v)
	}
	if n.right.parent != n || n.right.isLeft {
		return 0, errors.AssertionFailedf("right child of %v is not linked back", v)
	}
	if n.color == red && (n.left.color == red || n.right.color == red) {
		return 0, errors.AssertionFailedf("red node %v has a red child", v)
	}
	if lo != nil && !t.less(*lo.value(), v) {
		return 0, errors.AssertionFailedf("node %v is not after %v", v, *lo.value())
	}
	if hi != nil && !t.less(v, *hi.value()) {
		return 0, errors.AssertionFailedf("node %v is not before %v", v, *hi.value())
	}

	lh, err := t.verifyNode(n.left, lo, n, count)
	if err != nil {
		return 0, err
	}
	rh, err := t.verifyNode(n.right, n, hi, count)
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, errors.AssertionFailedf("black heights under %v differ: %d left, %d right", v, lh, rh)
	}

	if n.color == black {
		lh++
	}
	return lh, nil
}
