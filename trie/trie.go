package trie

/*
Remarks:
--------

- 'cow' stands for copy-on-write and is used throughout the code for variables holding
  clones of nodes.

- A new modified incarnation of a trie always is reflected by a new trie.root.

- Nodes are immutable as soon as they are linked under a returned Trie. Mutating operations
  only ever touch freshly cloned nodes along the path from the root to the key; every
  off-path subtree is handed over to the new incarnation by reference.

*/

// Trie is an immutable in-memory trie, keyed by byte sequences. An empty instance is
// usable as an empty trie, i.e. this is legal:
//
//     tr := trie.Put(trie.Trie{}, "a", 42)
//
// returning a trie which maps key "a" to value 42.
//
// Tries are heterogeneous: each key may carry a value of a different type. Retrieval is
// type-checked, i.e. asking for a value with the wrong type is answered the same way as
// asking for an absent key.
//
type Trie struct {
	root *xnode
}

// Immutable constructs an empty trie. It is equivalent to Trie{}.
func Immutable() Trie {
	return Trie{}
}

// --- API -------------------------------------------------------------------

// Get locates key in a trie and returns the value stored for it, typed as T.
// If key is not present, or the stored value is not of type T, the zero value
// for T will be returned, together with found=false.
//
// Get never modifies the trie and is safe to call concurrently on any number
// of trie incarnations.
func Get[T any](tr Trie, key string) (T, bool) {
	var none T
	if tr.root == nil {
		return none, false
	}
	node := tr.root
	for i := 0; i < len(key); i++ {
		child, ok := node.children[key[i]]
		if !ok {
			return none, false
		}
		node = child
	}
	if !node.isValue() {
		return none, false
	}
	return tryGet[T](node.value)
}

// Put returns a copy of a trie with value stored for key. If an entry for key is
// already present, the stored value will be replaced (in a new incarnation of the
// trie, nevertheless), with all of the key's extensions preserved.
//
// The value is transferred into the new incarnation exactly once; tries holding it
// never copy it again, they share it.
func Put[T any](tr Trie, key string, value T) Trie {
	val := newSlot(value)
	n := len(key)
	if n == 0 { // value lives at the root itself
		if tr.root == nil {
			return Trie{root: &xnode{value: val}}
		}
		return Trie{root: &xnode{children: tr.root.children, value: val}}
	}
	root := &xnode{}
	if tr.root != nil {
		root = tr.root.clone()
	}
	tracer().Debugf("put: copying path of %d nodes for key=%q", n, key)
	node := root
	for i := 0; i < n-1; i++ { // walk the key, cloning the seam as we descend
		ch := key[i]
		cow := &xnode{}
		if child, ok := node.children[ch]; ok {
			cow = child.clone()
		}
		node.linkChild(ch, cow)
		node = cow
	}
	last := key[n-1]
	if child, ok := node.children[last]; ok {
		// key prefixes other keys: keep the extensions below it
		node.linkChild(last, &xnode{children: child.children, value: val})
	} else {
		node.linkChild(last, &xnode{value: val})
	}
	return Trie{root: root}
}

// Remove returns a copy of a trie with key deleted, if present. If key is not found,
// an unchanged incarnation is returned. Nodes left with neither a value nor children
// are pruned, propagating towards the root.
func (tr Trie) Remove(key string) Trie {
	if tr.root == nil {
		return Trie{}
	}
	if len(key) == 0 { // value lives at the root itself
		if !tr.root.isValue() {
			return Trie{root: tr.root.clone()}
		}
		if len(tr.root.children) == 0 {
			return Trie{}
		}
		return Trie{root: &xnode{children: tr.root.children}}
	}
	tracer().Debugf("remove: unlinking key=%q", key)
	root, _ := removeBelow(tr.root.clone(), key).Value()
	return Trie{root: root}
}
