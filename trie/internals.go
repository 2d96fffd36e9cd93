package trie

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/persistent/maybe"
)

// --- Nodes -------------------------------------------------------------------

// xnode is a single trie node, branching on one key byte per child. A node carrying
// a non-nil value slot is a value node; all other nodes are plain inner nodes.
// Children are shared between trie incarnations, thus a node must never be mutated
// once it is reachable from a returned Trie.
type xnode struct {
	children map[byte]*xnode
	value    *slot // non-nil iff this is a value node
}

func (node *xnode) isValue() bool {
	return node.value != nil
}

// clone copies a node shallowly: the children mapping is duplicated, the subtrees
// behind it and the value slot are shared with the original.
func (node *xnode) clone() *xnode {
	cow := &xnode{value: node.value}
	if len(node.children) > 0 {
		cow.children = make(map[byte]*xnode, len(node.children))
		for ch, child := range node.children {
			cow.children[ch] = child
		}
	}
	return cow
}

// linkChild attaches child under key byte ch. node has to be a fresh clone,
// never a node reachable from a returned Trie.
func (node *xnode) linkChild(ch byte, child *xnode) {
	if node.children == nil {
		node.children = make(map[byte]*xnode, 1)
	}
	node.children[ch] = child
}

// edges returns the child key bytes of node in stable order.
func (node *xnode) edges() []byte {
	keys := make([]byte, 0, len(node.children))
	for ch := range node.children {
		keys = append(keys, ch)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func (node *xnode) String() string {
	if node == nil {
		return "_"
	}
	b := strings.Builder{}
	if node.isValue() {
		b.WriteString(fmt.Sprintf("⟨%v⟩", node.value.payload))
	} else {
		b.WriteString("⟨⟩")
	}
	b.WriteByte('[')
	for i, ch := range node.edges() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte(ch)
	}
	b.WriteByte(']')
	return b.String()
}

// --- Value slots -------------------------------------------------------------

// slot is a type-erased container for a single value. The payload enters a slot
// exactly once, at construction; slots are never copied, value nodes of different
// trie incarnations share them.
type slot struct {
	payload interface{}
}

func newSlot[T any](value T) *slot {
	return &slot{payload: value}
}

// tryGet recovers the payload of a slot as type T. A mismatch between T and the
// payload's actual type is a regular not-found outcome, not a failure.
func tryGet[T any](s *slot) (T, bool) {
	if v, ok := s.payload.(T); ok {
		return v, true
	}
	var none T
	return none, false
}

// --- Removal -----------------------------------------------------------------

// removeBelow unlinks key from the subtrie rooted at cow. cow has to be a fresh
// clone; removeBelow relinks its children but never touches a node reachable from
// a previous incarnation. Nothing tells the caller to drop the edge to this
// subtrie altogether: a node survives only with at least one child or a value.
func removeBelow(cow *xnode, key string) maybe.Maybe[*xnode] {
	assertThat(len(key) > 0, "attempt to unlink a node for an empty key")
	ch := key[0]
	child, ok := cow.children[ch]
	if !ok || (len(key) == 1 && !child.isValue()) {
		return maybe.Just(cow) // key was never present: a no-op, modulo cloning
	}
	var sub maybe.Maybe[*xnode]
	switch {
	case len(key) > 1:
		sub = removeBelow(child.clone(), key[1:])
	case len(child.children) > 0:
		// demote the value node to a plain inner node, extensions survive
		sub = maybe.Just(&xnode{children: child.children})
	default:
		sub = maybe.Nothing[*xnode]()
	}
	if newChild, present := sub.Value(); present {
		cow.children[ch] = newChild
	} else {
		tracer().Debugf("remove: pruning edge %q of %s", ch, cow)
		delete(cow.children, ch)
	}
	if len(cow.children) == 0 && !cow.isValue() {
		return maybe.Nothing[*xnode]() // propagate pruning towards the root
	}
	return maybe.Just(cow)
}

// --- Helpers -----------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("trie: "+msg, msgargs...)
		panic(msg)
	}
}
