package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"go.lepak.sg/containers/rbtree"
)

var (
	seed    = flag.Int64("s", 0, "seed (default current unix time in ns)")
	num     = flag.Int("n", 10, "number of values in the tree")
	deletes = flag.Int("d", 0, "number of random values to delete after building")
)

func main() {
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	tr := rbtree.BuildRandom(*num, *seed)

	if *deletes > 0 {
		rd := rand.New(rand.NewSource(*seed))
		var deleted []int
		for _, v := range rd.Perm(*num)[:min(*deletes, *num)] {
			tr.Delete(v)
			deleted = append(deleted, v)
		}
		fmt.Println("deleted:", deleted)
	}

	if err := tr.Verify(); err != nil {
		fmt.Fprintln(os.Stderr, "invalid tree:", err)
		os.Exit(1)
	}

	inorder := make([]int, 0, tr.Len())
	for v := range tr.InOrderCoroutine().Items() {
		inorder = append(inorder, v)
	}

	fmt.Println("seed:", *seed)
	fmt.Println("inorder:", inorder)

	fmt.Println("tree:")
	fmt.Println(tr.String())

	actual, ideal := tr.Height()
	fmt.Println("height:", actual, "ideal:", ideal)
}
