// file:trie/pkg/x_trie/array.go
package x_trie

import (
	"fmt"
	"io"
)

//---------------------
// Array Trie (fixed children)
//---------------------

// ArrayTrie stores children in a fixed slice indexed through the
// trie's Alphabet, so a lookup costs one table load regardless of
// branching factor. Every node carries one slot per declared symbol;
// words may use declared symbols only.
type ArrayTrie struct {
	ab   *Alphabet
	root *arrayNode
}

// NewArray declares the alphabet and creates an empty trie over it.
func NewArray(alphabet string) (*ArrayTrie, error) {
	ab, err := NewAlphabet(alphabet)
	if err != nil {
		return nil, err
	}
	return &ArrayTrie{ab: ab, root: newArrayNode(ab, 0)}, nil
}

func (t *ArrayTrie) Kind() Kind { return KindArray }

// check rejects words the declared alphabet cannot represent before
// any node is touched, so a failed operation never mutates the trie.
func (t *ArrayTrie) check(word []byte) error {
	if len(word) == 0 {
		return ErrEmptyWord
	}
	if !t.ab.Covers(word) {
		return fmt.Errorf("%w: %q", ErrNotInAlphabet, word)
	}
	return nil
}

func (t *ArrayTrie) Insert(word []byte) (bool, error) {
	if err := t.check(word); err != nil {
		return false, err
	}
	return insert(t.root, word), nil
}

func (t *ArrayTrie) Contains(word []byte) (bool, error) {
	if err := t.check(word); err != nil {
		return false, err
	}
	return contains(t.root, word), nil
}

func (t *ArrayTrie) Delete(word []byte) (bool, error) {
	if err := t.check(word); err != nil {
		return false, err
	}
	return remove(t.root, word), nil
}

func (t *ArrayTrie) Dump(w io.Writer) { dump(w, t.root) }

//---------------------
// Node
//---------------------

type arrayNode struct {
	ab    *Alphabet
	child []node
	n     int // occupied slots
	ch    byte
}

func newArrayNode(ab *Alphabet, c byte) *arrayNode {
	return &arrayNode{ab: ab, ch: c, child: make([]node, ab.Size())}
}

func (n *arrayNode) char() byte { return n.ch }

func (n *arrayNode) findChild(c byte) node {
	slot, ok := n.ab.Slot(c)
	if !ok {
		return nil
	}
	return n.child[slot]
}

func (n *arrayNode) newChild(c byte) node { return newArrayNode(n.ab, c) }

func (n *arrayNode) addChild(child node) {
	slot, ok := n.ab.Slot(child.char())
	if !ok {
		return
	}
	if n.child[slot] == nil {
		n.n++
	}
	n.child[slot] = child
}

func (n *arrayNode) removeChild(child node) {
	slot, ok := n.ab.Slot(child.char())
	if !ok || n.child[slot] == nil {
		return
	}
	n.child[slot] = nil
	n.n--
}

func (n *arrayNode) branches() int { return n.n }

func (n *arrayNode) each(f func(node) bool) {
	for _, child := range n.child {
		if child == nil {
			continue
		}
		if !f(child) {
			return
		}
	}
}
