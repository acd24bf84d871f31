// file:trie/pkg/x_trie/dump.go
package x_trie

import (
	"fmt"
	"io"
	"strings"
)

//---------------------
// Tree Dump (Debug)
//---------------------

// dump writes a visual tree rendering: one node per line, children in
// representation-native order, the terminator shown as '$'. Purely
// diagnostic.
func dump(w io.Writer, root node) {
	fmt.Fprintln(w, "root")
	root.each(func(child node) bool {
		dumpNode(w, child, 1)
		return true
	})
}

// dumpNode writes a single node (recursive).
func dumpNode(w io.Writer, n node, depth int) {
	fmt.Fprintf(w, "%s%s\n", dumpPre(depth), printable(n.char()))
	n.each(func(child node) bool {
		dumpNode(w, child, depth+1)
		return true
	})
}

func dumpPre(depth int) string {
	var b strings.Builder
	for i := 0; i < depth; i++ {
		b.WriteString("   ")
	}
	b.WriteString("└──")
	return b.String()
}

func printable(c byte) string {
	if c == Terminator {
		return "$"
	}
	return string(c)
}
