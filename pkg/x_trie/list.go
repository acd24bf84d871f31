// file:trie/pkg/x_trie/list.go
package x_trie

import "io"

//---------------------
// List Trie (dynamic children)
//---------------------

// ListTrie stores children in a dynamically sized slice. Lookups scan
// the slice, so each step costs the branching factor of the node; no
// alphabet needs to be declared up front.
type ListTrie struct {
	root *listNode
}

func NewList() *ListTrie {
	return &ListTrie{root: &listNode{}}
}

func (t *ListTrie) Kind() Kind { return KindList }

func (t *ListTrie) Insert(word []byte) (bool, error) {
	if len(word) == 0 {
		return false, ErrEmptyWord
	}
	return insert(t.root, word), nil
}

func (t *ListTrie) Contains(word []byte) (bool, error) {
	if len(word) == 0 {
		return false, ErrEmptyWord
	}
	return contains(t.root, word), nil
}

func (t *ListTrie) Delete(word []byte) (bool, error) {
	if len(word) == 0 {
		return false, ErrEmptyWord
	}
	return remove(t.root, word), nil
}

func (t *ListTrie) Dump(w io.Writer) { dump(w, t.root) }

//---------------------
// Node
//---------------------

type listNode struct {
	ch       byte
	children []node
}

func (n *listNode) char() byte { return n.ch }

func (n *listNode) findChild(c byte) node {
	for _, child := range n.children {
		if child.char() == c {
			return child
		}
	}
	return nil
}

func (n *listNode) newChild(c byte) node { return &listNode{ch: c} }

func (n *listNode) addChild(child node) {
	n.children = append(n.children, child)
}

func (n *listNode) removeChild(child node) {
	// remove by identity
	for i, have := range n.children {
		if have == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}

func (n *listNode) branches() int { return len(n.children) }

func (n *listNode) each(f func(node) bool) {
	for _, child := range n.children {
		if !f(child) {
			return
		}
	}
}
