// file:trie/pkg/x_trie/trie.go

// Package x_trie implements a prefix tree over a byte alphabet in three
// interchangeable storage strategies: a dynamically sized child list, a
// fixed array indexed through a precomputed alphabet table, and a child
// map. All three share one traversal routine and agree on every returned
// boolean for identical operation sequences.
package x_trie

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

//---------------------
// Errors
//---------------------

var (
	ErrEmptyWord     = errors.New("empty word")
	ErrNotInAlphabet = errors.New("character outside declared alphabet")
	ErrBadAlphabet   = errors.New("invalid alphabet")
	ErrUnknownKind   = errors.New("unknown trie kind")
)

//---------------------
// Terminator
//---------------------

// Terminator ends every stored word. It is a reserved alphabet symbol:
// a path that consumes it spells a complete word, while a path that
// stops short of it is only a prefix passing through.
const Terminator byte = 0x00

// DefaultAlphabet is the terminator plus ASCII letters and digits.
const DefaultAlphabet = "\x00" +
	"abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"0123456789"

// Terminated returns word with the terminator appended. Engine
// operations expect words in this form.
func Terminated(word string) []byte {
	b := make([]byte, len(word)+1)
	copy(b, word)
	b[len(word)] = Terminator
	return b
}

// WithTerminator prepends the terminator to a set of printable symbols,
// producing a declaration suitable for NewArray.
func WithTerminator(symbols string) string {
	return string(Terminator) + symbols
}

//---------------------
// Kinds
//---------------------

// Kind selects a storage strategy at creation time; it is fixed for the
// trie's lifetime.
type Kind int

const (
	KindList  Kind = iota + 1 // dynamically sized child list
	KindArray                 // fixed array indexed through an Alphabet
	KindHash                  // child map keyed by character
)

func (k Kind) String() string {
	switch k {
	case KindList:
		return "list"
	case KindArray:
		return "array"
	case KindHash:
		return "hash"
	default:
		return "unknown"
	}
}

// ParseKind accepts a kind name or its numeric selector (1, 2, 3).
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "list":
		return KindList, nil
	case "2", "array":
		return KindArray, nil
	case "3", "hash":
		return KindHash, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

//---------------------
// Trie
//---------------------

// Trie is a set of terminated words.
type Trie interface {
	// Insert adds word. It reports true if a new chain of nodes was
	// created and false if the word, terminator included, was already
	// present.
	Insert(word []byte) (bool, error)

	// Contains reports whether every character of word, terminator
	// included, has a matching chain of nodes from the root.
	Contains(word []byte) (bool, error)

	// Delete removes word and prunes the single-child ancestor chain
	// that existed solely for it. It reports false if the word was
	// absent; the trie is unchanged then.
	Delete(word []byte) (bool, error)

	// Kind identifies the storage strategy.
	Kind() Kind

	// Dump writes a diagnostic tree rendering, children in
	// representation-native order.
	Dump(w io.Writer)
}

// Create builds an empty trie of the given kind and inserts words in
// order; duplicate insertions are no-ops. The alphabet declaration is
// consulted by KindArray only, and an empty declaration selects
// DefaultAlphabet.
func Create(kind Kind, alphabet string, words ...[]byte) (Trie, error) {
	var t Trie
	switch kind {
	case KindList:
		t = NewList()
	case KindArray:
		if alphabet == "" {
			alphabet = DefaultAlphabet
		}
		at, err := NewArray(alphabet)
		if err != nil {
			return nil, err
		}
		t = at
	case KindHash:
		t = NewHash()
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, kind)
	}

	for _, w := range words {
		if _, err := t.Insert(w); err != nil {
			return nil, fmt.Errorf("insert %q: %w", w, err)
		}
	}
	return t, nil
}
