// file:trie/pkg/x_trie/trie_test.go
package x_trie

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// variants lists one fresh constructor per storage strategy.
func variants(t *testing.T) map[string]func() Trie {
	t.Helper()
	return map[string]func() Trie{
		"list": func() Trie { return NewList() },
		"array": func() Trie {
			at, err := NewArray(DefaultAlphabet)
			require.NoError(t, err)
			return at
		},
		"hash": func() Trie { return NewHash() },
	}
}

func mustInsert(t *testing.T, tr Trie, word string) bool {
	t.Helper()
	ok, err := tr.Insert(Terminated(word))
	require.NoError(t, err)
	return ok
}

func mustContains(t *testing.T, tr Trie, word string) bool {
	t.Helper()
	ok, err := tr.Contains(Terminated(word))
	require.NoError(t, err)
	return ok
}

func mustDelete(t *testing.T, tr Trie, word string) bool {
	t.Helper()
	ok, err := tr.Delete(Terminated(word))
	require.NoError(t, err)
	return ok
}

func TestTerminated(t *testing.T) {
	assert.Equal(t, []byte{'a', 'b', Terminator}, Terminated("ab"))
	assert.Equal(t, []byte{Terminator}, Terminated(""))
}

func TestParseKind(t *testing.T) {
	for in, want := range map[string]Kind{
		"1": KindList, "list": KindList,
		"2": KindArray, "array": KindArray,
		"3": KindHash, "HASH": KindHash,
	} {
		got, err := ParseKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseKind("btree")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "list", KindList.String())
	assert.Equal(t, "array", KindArray.String())
	assert.Equal(t, "hash", KindHash.String())
}

func TestInsertContains(t *testing.T) {
	words := []string{"go", "gopher", "golang", "rust", "r", ""}

	for name, newTrie := range variants(t) {
		t.Run(name, func(t *testing.T) {
			tr := newTrie()
			for _, w := range words {
				assert.True(t, mustInsert(t, tr, w), w)
			}
			for _, w := range words {
				assert.True(t, mustContains(t, tr, w), w)
			}
			for _, w := range []string{"g", "gop", "gophers", "ru", "c"} {
				assert.False(t, mustContains(t, tr, w), w)
			}
		})
	}
}

func TestInsertIdempotent(t *testing.T) {
	for name, newTrie := range variants(t) {
		t.Run(name, func(t *testing.T) {
			tr := newTrie()
			assert.True(t, mustInsert(t, tr, "word"))
			assert.False(t, mustInsert(t, tr, "word"))
			assert.True(t, mustContains(t, tr, "word"))
		})
	}
}

// A prefix of a stored word is not itself a member: only consuming the
// terminator completes a word.
func TestPrefixNeedsTerminator(t *testing.T) {
	for name, newTrie := range variants(t) {
		t.Run(name, func(t *testing.T) {
			tr := newTrie()
			mustInsert(t, tr, "ab")
			assert.False(t, mustContains(t, tr, "a"))

			// The unterminated prefix path exists, but that is a raw
			// traversal fact, not membership.
			ok, err := tr.Contains([]byte("a"))
			require.NoError(t, err)
			assert.True(t, ok)
		})
	}
}

func TestSingleWordLifecycle(t *testing.T) {
	for name, newTrie := range variants(t) {
		t.Run(name, func(t *testing.T) {
			tr := newTrie()
			assert.False(t, mustContains(t, tr, "x"))
			assert.True(t, mustInsert(t, tr, "x"))
			assert.False(t, mustInsert(t, tr, "x"))
			assert.True(t, mustDelete(t, tr, "x"))
			assert.False(t, mustDelete(t, tr, "x"))
			assert.False(t, mustContains(t, tr, "x"))
		})
	}
}

func TestDeleteKeepsSharedPrefix(t *testing.T) {
	for name, newTrie := range variants(t) {
		t.Run(name, func(t *testing.T) {
			tr := newTrie()
			mustInsert(t, tr, "a")
			mustInsert(t, tr, "ab")
			mustInsert(t, tr, "ac")
			mustInsert(t, tr, "bc")
			mustInsert(t, tr, "d")
			mustInsert(t, tr, "abc")

			assert.True(t, mustDelete(t, tr, "ab"))

			assert.False(t, mustContains(t, tr, "ab"))
			assert.True(t, mustContains(t, tr, "a"))
			assert.True(t, mustContains(t, tr, "abc"))
			assert.True(t, mustContains(t, tr, "ac"))
			assert.True(t, mustContains(t, tr, "bc"))
			assert.True(t, mustContains(t, tr, "d"))
		})
	}
}

// Deleting a word that is a strict prefix of a retained word detaches
// only the terminator chain, never the shared nodes.
func TestDeletePrefixWord(t *testing.T) {
	for name, newTrie := range variants(t) {
		t.Run(name, func(t *testing.T) {
			tr := newTrie()
			mustInsert(t, tr, "car")
			mustInsert(t, tr, "carpet")

			assert.True(t, mustDelete(t, tr, "car"))
			assert.False(t, mustContains(t, tr, "car"))
			assert.True(t, mustContains(t, tr, "carpet"))
		})
	}
}

// Deleting an extension keeps the embedded shorter word.
func TestDeleteExtensionWord(t *testing.T) {
	for name, newTrie := range variants(t) {
		t.Run(name, func(t *testing.T) {
			tr := newTrie()
			mustInsert(t, tr, "car")
			mustInsert(t, tr, "carpet")

			assert.True(t, mustDelete(t, tr, "carpet"))
			assert.False(t, mustContains(t, tr, "carpet"))
			assert.True(t, mustContains(t, tr, "car"))
		})
	}
}

func TestDeleteAbsentLeavesTrie(t *testing.T) {
	for name, newTrie := range variants(t) {
		t.Run(name, func(t *testing.T) {
			tr := newTrie()
			mustInsert(t, tr, "keep")
			before := nodeCount(tr)

			assert.False(t, mustDelete(t, tr, "kept"))
			assert.False(t, mustDelete(t, tr, "ke"))
			assert.False(t, mustDelete(t, tr, "keeper"))

			assert.True(t, mustContains(t, tr, "keep"))
			assert.Equal(t, before, nodeCount(tr))
		})
	}
}

// After a delete no private node remains, so a full drain leaves only
// the root.
func TestPruningMinimality(t *testing.T) {
	words := []string{"a", "ab", "abc", "abd", "xyz", "x"}

	for name, newTrie := range variants(t) {
		t.Run(name, func(t *testing.T) {
			tr := newTrie()
			for _, w := range words {
				mustInsert(t, tr, w)
			}
			for i, w := range words {
				assert.True(t, mustDelete(t, tr, w), w)
				for _, rest := range words[i+1:] {
					assert.True(t, mustContains(t, tr, rest), rest)
				}
			}
			assert.Equal(t, 0, nodeCount(tr))
		})
	}
}

func TestEmptyWordRejected(t *testing.T) {
	for name, newTrie := range variants(t) {
		t.Run(name, func(t *testing.T) {
			tr := newTrie()

			_, err := tr.Insert(nil)
			assert.ErrorIs(t, err, ErrEmptyWord)
			_, err = tr.Contains([]byte{})
			assert.ErrorIs(t, err, ErrEmptyWord)
			_, err = tr.Delete(nil)
			assert.ErrorIs(t, err, ErrEmptyWord)
		})
	}
}

func TestArrayRejectsForeignCharacter(t *testing.T) {
	at, err := NewArray(WithTerminator("ab"))
	require.NoError(t, err)

	_, err = at.Insert(Terminated("abba"))
	require.NoError(t, err)

	_, err = at.Insert(Terminated("abc"))
	assert.ErrorIs(t, err, ErrNotInAlphabet)
	_, err = at.Contains(Terminated("c"))
	assert.ErrorIs(t, err, ErrNotInAlphabet)
	_, err = at.Delete(Terminated("c"))
	assert.ErrorIs(t, err, ErrNotInAlphabet)

	// the failed calls did not disturb stored words
	ok, err := at.Contains(Terminated("abba"))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCreate(t *testing.T) {
	words := [][]byte{Terminated("one"), Terminated("two"), Terminated("one")}

	for _, kind := range []Kind{KindList, KindArray, KindHash} {
		t.Run(kind.String(), func(t *testing.T) {
			tr, err := Create(kind, "", words...)
			require.NoError(t, err)
			assert.Equal(t, kind, tr.Kind())
			assert.True(t, mustContains(t, tr, "one"))
			assert.True(t, mustContains(t, tr, "two"))
			assert.False(t, mustContains(t, tr, "three"))
		})
	}

	_, err := Create(Kind(42), "")
	assert.ErrorIs(t, err, ErrUnknownKind)

	_, err = Create(KindArray, "", []byte("\xff\x00"))
	assert.ErrorIs(t, err, ErrNotInAlphabet)
}

func TestDumpList(t *testing.T) {
	tr := NewList()
	mustInsert(t, tr, "ab")
	mustInsert(t, tr, "ac")

	var buf bytes.Buffer
	tr.Dump(&buf)

	want := "root\n" +
		"   └──a\n" +
		"      └──b\n" +
		"         └──$\n" +
		"      └──c\n" +
		"         └──$\n"
	assert.Equal(t, want, buf.String())
}

// nodeCount counts reachable nodes below the root.
func nodeCount(tr Trie) int {
	var root node
	switch v := tr.(type) {
	case *ListTrie:
		root = v.root
	case *ArrayTrie:
		root = v.root
	case *HashTrie:
		root = v.root
	}
	return countBelow(root)
}

func countBelow(n node) int {
	total := 0
	n.each(func(child node) bool {
		total += 1 + countBelow(child)
		return true
	})
	return total
}
