package scrollarea

import (
	"fmt"
	"os"
)

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene; multiple Scenes with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool

// debugf prints a diagnostic line to stderr when debug mode is on.
func debugf(format string, args ...any) {
	if !globalDebug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[scrollarea] "+format+"\n", args...)
}

// warnf prints a warning line to stderr unconditionally. Used for conditions
// that are swallowed rather than propagated (like content callback panics).
func warnf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[scrollarea] warning: "+format+"\n", args...)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode; release mode callers
// skip this entirely.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("scrollarea debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[scrollarea] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, n.Name)
	}
}

// debugCheckChildCount warns on stderr if a node has an implausible number of
// children for a widget tree.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[scrollarea] warning: node %q has %d children (threshold %d)\n",
			n.Name, len(n.children), debugMaxChildCount)
	}
}
