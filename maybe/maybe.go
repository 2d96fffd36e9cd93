/*
Package maybe provides an optional-value container, modeled after Elm's
Maybe type:

	module Maybe exposing (Maybe(Just,Nothing), andThen, map, withDefault)

A Maybe[T] either holds a value of type T (Just) or nothing at all
(Nothing). It helps with optional results and with distinguishing a stored
zero value from an absent one.
*/
package maybe

// Maybe optionally holds a value of type T. The zero value is Nothing.
type Maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps a value x.
func Just[T any](x T) Maybe[T] {
	return Maybe[T]{value: x, tag: true}
}

// Nothing is the absent value for type T.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// IsNothing is true for an absent value.
func (m Maybe[T]) IsNothing() bool {
	return !m.tag
}

// Value unwraps m, returning the contained value together with present=true,
// or the zero value for T together with present=false.
func (m Maybe[T]) Value() (T, bool) {
	return m.value, m.tag
}

// WithDefault unwraps m, substituting def for Nothing.
func (m Maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

// Map applies f to a contained value; Nothing stays Nothing.
func (m Maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

// AndThen chains a computation f which itself may come up empty.
// Nothing short-circuits f.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	if v, ok := x.Value(); ok {
		return f(v)
	}
	return Nothing[S]()
}
