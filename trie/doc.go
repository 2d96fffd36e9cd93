/*
Package trie implements a persistent (immutable) in-memory trie.

A trie maps byte-sequence keys to values, branching on one key byte per
level. This version is persistent: Put and Remove leave the receiver
untouched and return a new incarnation of the trie, which shares every
unmodified subtree with its predecessor. Values may be of arbitrary
type; each key may store a value of a different type.
*/
package trie

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'persistent.trie'.
func tracer() tracing.Trace {
	return tracing.Select("persistent.trie")
}
