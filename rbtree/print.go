package rbtree

import (
	"fmt"
	"strings"
)

// String returns a string representation of the tree, with each value
// followed by its color. A complete tree with height 3 would look like
// this:
//
//	4:B
//	├─L─2:R
//	│   ├─L─1:B
//	│   └─R─3:B
//	└─R─6:R
//	    ├─L─5:B
//	    └─R─7:B
//
// Sentinels are not shown.
func (t *Tree[T]) String() string {
	var sb strings.Builder

	if t.root == nil {
		return ""
	}

	printvisit(&sb, t.root, "", "", true, false)

	return sb.String()
}

const (
	treeMidBranch    = "├─"
	treeLastBranch   = "└─"
	treeLeftBranch   = "L─"
	treeRightBranch  = "R─"
	treeMidContinue  = "│   "
	treeLastContinue = "    "
)

func printvisit[T any](
	sb *strings.Builder, n *node[T], prefix, branch string, initial, isMid bool) {
	if !initial {
		sb.WriteString(prefix)
		if isMid {
			prefix += treeMidContinue
			sb.WriteString(treeMidBranch)
		} else {
			prefix += treeLastContinue
			sb.WriteString(treeLastBranch)
		}
		sb.WriteString(branch)
	}
	fmt.Fprintf(sb, "%v:%s", *n.value(), n.color)
	sb.WriteRune('\n')

	if !n.left.isNull {
		printvisit(sb, n.left, prefix, treeLeftBranch, false, !n.right.isNull)
	}

	if !n.right.isNull {
		printvisit(sb, n.right, prefix, treeRightBranch, false, false)
	}
}
