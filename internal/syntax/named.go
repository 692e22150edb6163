package syntax

import "github.com/funvibe/funpi/internal/position"

// Named attaches an optional name to a payload. A nil Name means unnamed.
type Named[N, T any] struct {
	Name  *N
	Value T
}

// Unnamed wraps v without a name.
func Unnamed[N, T any](v T) Named[N, T] {
	return Named[N, T]{Value: v}
}

// WithName wraps v under name.
func WithName[N, T any](name N, v T) Named[N, T] {
	return Named[N, T]{Name: &name, Value: v}
}

// IsNamed reports whether a name is present.
func (n Named[N, T]) IsNamed() bool { return n.Name != nil }

// MapNamed rewrites the payload, keeping the name.
func MapNamed[N, A, B any](f func(A) B, n Named[N, A]) Named[N, B] {
	return Named[N, B]{Name: n.Name, Value: f(n.Value)}
}

// TraverseNamed rewrites the payload through a fallible f.
func TraverseNamed[N, A, B any](f func(A) (B, error), n Named[N, A]) (Named[N, B], error) {
	v, err := f(n.Value)
	if err != nil {
		return Named[N, B]{}, err
	}
	return Named[N, B]{Name: n.Name, Value: v}, nil
}

// GetRange delegates to the payload; the name contributes no range.
func (n Named[N, T]) GetRange() position.Range {
	return position.RangeOf(n.Value)
}

// KillRange erases ranges in both the name and the payload.
func (n Named[N, T]) KillRange() Named[N, T] {
	if n.Name != nil {
		name := position.KillRangeOf(*n.Name)
		n.Name = &name
	}
	n.Value = position.KillRangeOf(n.Value)
	return n
}

// RString is raw user-written text with the range it was written at, the
// shape of argument names.
type RString = Ranged[string]

// NamedArg is the argument form used at call sites, where a written name
// may pick out a hidden slot.
type NamedArg[T any] = Arg[Named[RString, T]]

// DefaultNamedArg wraps v unnamed with the default annotation.
func DefaultNamedArg[T any](v T) NamedArg[T] {
	return DefaultArg(Unnamed[RString](v))
}

// NamedArgValue projects the payload under both wrappers.
func NamedArgValue[T any](a NamedArg[T]) T {
	return a.Value.Value
}

// MapNamedArg rewrites the innermost payload, keeping annotation and name.
func MapNamedArg[A, B any](f func(A) B, a NamedArg[A]) NamedArg[B] {
	return MapArg(func(n Named[RString, A]) Named[RString, B] {
		return MapNamed(f, n)
	}, a)
}
