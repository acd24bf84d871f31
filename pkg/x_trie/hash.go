// file:trie/pkg/x_trie/hash.go
package x_trie

import "io"

//---------------------
// Hash Trie (mapped children)
//---------------------

// HashTrie stores children in a map keyed by character: amortized
// constant-time lookups without declaring an alphabet, at the price of
// map overhead per node. Child order is arbitrary.
type HashTrie struct {
	root *hashNode
}

func NewHash() *HashTrie {
	return &HashTrie{root: newHashNode(0)}
}

func (t *HashTrie) Kind() Kind { return KindHash }

func (t *HashTrie) Insert(word []byte) (bool, error) {
	if len(word) == 0 {
		return false, ErrEmptyWord
	}
	return insert(t.root, word), nil
}

func (t *HashTrie) Contains(word []byte) (bool, error) {
	if len(word) == 0 {
		return false, ErrEmptyWord
	}
	return contains(t.root, word), nil
}

func (t *HashTrie) Delete(word []byte) (bool, error) {
	if len(word) == 0 {
		return false, ErrEmptyWord
	}
	return remove(t.root, word), nil
}

func (t *HashTrie) Dump(w io.Writer) { dump(w, t.root) }

//---------------------
// Node
//---------------------

type hashNode struct {
	child map[byte]node
	ch    byte
}

func newHashNode(c byte) *hashNode {
	return &hashNode{ch: c, child: make(map[byte]node)}
}

func (n *hashNode) char() byte { return n.ch }

func (n *hashNode) findChild(c byte) node {
	if child, ok := n.child[c]; ok {
		return child
	}
	return nil
}

func (n *hashNode) newChild(c byte) node { return newHashNode(c) }

func (n *hashNode) addChild(child node) {
	n.child[child.char()] = child
}

func (n *hashNode) removeChild(child node) {
	delete(n.child, child.char())
}

func (n *hashNode) branches() int { return len(n.child) }

func (n *hashNode) each(f func(node) bool) {
	for _, child := range n.child {
		if !f(child) {
			return
		}
	}
}
