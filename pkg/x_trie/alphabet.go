// file:trie/pkg/x_trie/alphabet.go
package x_trie

import "fmt"

//---------------------
// Alphabet Index
//---------------------

// Alphabet maps a bounded set of byte values to dense child slots. It
// is built once when an ArrayTrie is created and shared by every node
// of that trie.
type Alphabet struct {
	symbols string
	index   [256]int16 // -1 for bytes outside the alphabet
}

// NewAlphabet indexes the declared symbols. Each symbol claims the
// slot of its position in the declaration.
func NewAlphabet(symbols string) (*Alphabet, error) {
	if len(symbols) == 0 {
		return nil, fmt.Errorf("%w: no symbols declared", ErrBadAlphabet)
	}
	if len(symbols) > 256 {
		return nil, fmt.Errorf("%w: %d symbols exceed the byte range", ErrBadAlphabet, len(symbols))
	}

	a := &Alphabet{symbols: symbols}
	for i := range a.index {
		a.index[i] = -1
	}
	for i := 0; i < len(symbols); i++ {
		c := symbols[i]
		if a.index[c] >= 0 {
			return nil, fmt.Errorf("%w: duplicate symbol %q", ErrBadAlphabet, c)
		}
		a.index[c] = int16(i)
	}
	return a, nil
}

// Size is the number of declared symbols, and so the child slot count
// of every node in the owning trie.
func (a *Alphabet) Size() int { return len(a.symbols) }

// Slot returns the dense index for c.
func (a *Alphabet) Slot(c byte) (int, bool) {
	i := a.index[c]
	if i < 0 {
		return 0, false
	}
	return int(i), true
}

// Covers reports whether every byte of word is a declared symbol.
func (a *Alphabet) Covers(word []byte) bool {
	for _, c := range word {
		if a.index[c] < 0 {
			return false
		}
	}
	return true
}
