// Package containers is a generic container suite: a dynamic array
// (package vector), an ordered map and set (packages treemap and treeset)
// built on a red-black tree (package rbtree), and a stack adapter
// (package stack), along with the iterator, algorithm and allocator
// plumbing they share.
//
// This package only holds the error values common to all containers.
package containers
