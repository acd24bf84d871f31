// file:trie/pkg/x_trie/walk.go
package x_trie

//---------------------
// Storage Dispatch
//---------------------

// node is the per-variant dispatch surface. A node carries one
// character and owns its children; at most one child exists per
// distinct character value.
type node interface {
	char() byte

	// findChild returns the child matching c, or nil.
	findChild(c byte) node

	// newChild allocates a detached child of the same storage kind.
	newChild(c byte) node

	addChild(child node)
	removeChild(child node)

	// branches is the number of distinct characters leading out.
	branches() int

	// each visits children in representation-native order until f
	// returns false.
	each(f func(node) bool)
}

//---------------------
// Traversal Contract
//---------------------

type (
	foundFn     func(parent, child node)
	missingFn   func(parent node, rest []byte) bool
	completedFn func() bool
)

// walk advances word through the node graph one character at a time.
// A matched child triggers onFound and descent; the first miss stops
// the walk with onMissing's verdict over the unmatched suffix;
// consuming the whole word yields onCompleted's. walk itself decides
// nothing about operation semantics.
func walk(root node, word []byte, onFound foundFn, onMissing missingFn, onCompleted completedFn) bool {
	parent := root
	for i := 0; i < len(word); i++ {
		child := parent.findChild(word[i])
		if child == nil {
			return onMissing(parent, word[i:])
		}
		onFound(parent, child)
		parent = child
	}
	return onCompleted()
}

//---------------------
// Shared Operations
//---------------------

func contains(root node, word []byte) bool {
	return walk(root, word,
		func(node, node) {},
		func(node, []byte) bool { return false },
		func() bool { return true },
	)
}

func insert(root node, word []byte) bool {
	return walk(root, word,
		func(node, node) {},
		func(parent node, rest []byte) bool {
			cur := parent
			for _, c := range rest {
				next := cur.newChild(c)
				cur.addChild(next)
				cur = next
			}
			return true
		},
		func() bool { return false },
	)
}

// remove detaches word's terminal node together with the single-child
// ancestor chain that served only this word. The mark tracks the
// highest cuttable (parent, child) pair: a branch node on the path
// clears it, and it is set only while unset, so it never points below
// the last divergence. The terminal node is a leaf, so the mark is
// always set by the time the walk completes. Mark state lives in this
// call's frame only.
func remove(root node, word []byte) bool {
	var markedParent, markedChild node
	return walk(root, word,
		func(parent, child node) {
			switch {
			case child.branches() > 1:
				markedParent, markedChild = nil, nil
			case markedParent == nil:
				markedParent, markedChild = parent, child
			}
		},
		func(node, []byte) bool { return false },
		func() bool {
			markedParent.removeChild(markedChild)
			return true
		},
	)
}
