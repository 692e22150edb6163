package syntax

import (
	"fmt"
	"github.com/funvibe/funpi/internal/position"
)

// Arg decorates an argument at an application or pattern site with its
// slot annotation.
type Arg[T any] struct {
	Info  ArgInfo
	Value T
}

// DefaultArg wraps v with the default annotation.
func DefaultArg[T any](v T) Arg[T] {
	return Arg[T]{Value: v}
}

// MapArg rewrites the payload, keeping the annotation.
func MapArg[A, B any](f func(A) B, a Arg[A]) Arg[B] {
	return Arg[B]{Info: a.Info, Value: f(a.Value)}
}

// TraverseArg rewrites the payload through a fallible f. On failure the
// error is returned as is; on success the annotation is reattached.
func TraverseArg[A, B any](f func(A) (B, error), a Arg[A]) (Arg[B], error) {
	v, err := f(a.Value)
	if err != nil {
		return Arg[B]{}, err
	}
	return Arg[B]{Info: a.Info, Value: v}, nil
}

func (a Arg[T]) GetHiding() Hiding { return a.Info.Hiding }

func (a Arg[T]) SetHiding(h Hiding) Arg[T] {
	a.Info.Hiding = h
	return a
}

func (a Arg[T]) GetRelevance() Relevance { return a.Info.Relevance }

func (a Arg[T]) SetRelevance(r Relevance) Arg[T] {
	a.Info.Relevance = r
	return a
}

// GetRange delegates to the payload; the wrapper adds no range of its own.
func (a Arg[T]) GetRange() position.Range {
	return position.RangeOf(a.Value)
}

// KillRange erases ranges in the annotation colors and the payload.
func (a Arg[T]) KillRange() Arg[T] {
	a.Info = a.Info.KillRange()
	a.Value = position.KillRangeOf(a.Value)
	return a
}

// Dom decorates the domain of a function type. The annotation describes
// how the bound variable may be used in the codomain, which is why a Dom
// is not an Arg even though it carries the same data.
type Dom[T any] struct {
	Info  ArgInfo
	Value T
}

// DefaultDom wraps v with the default annotation.
func DefaultDom[T any](v T) Dom[T] {
	return Dom[T]{Value: v}
}

// MapDom rewrites the payload, keeping the annotation.
func MapDom[A, B any](f func(A) B, d Dom[A]) Dom[B] {
	return Dom[B]{Info: d.Info, Value: f(d.Value)}
}

// TraverseDom rewrites the payload through a fallible f.
func TraverseDom[A, B any](f func(A) (B, error), d Dom[A]) (Dom[B], error) {
	v, err := f(d.Value)
	if err != nil {
		return Dom[B]{}, err
	}
	return Dom[B]{Info: d.Info, Value: v}, nil
}

func (d Dom[T]) GetHiding() Hiding { return d.Info.Hiding }

func (d Dom[T]) SetHiding(h Hiding) Dom[T] {
	d.Info.Hiding = h
	return d
}

func (d Dom[T]) GetRelevance() Relevance { return d.Info.Relevance }

func (d Dom[T]) SetRelevance(r Relevance) Dom[T] {
	d.Info.Relevance = r
	return d
}

// GetRange delegates to the payload.
func (d Dom[T]) GetRange() position.Range {
	return position.RangeOf(d.Value)
}

// KillRange erases ranges in the annotation colors and the payload.
func (d Dom[T]) KillRange() Dom[T] {
	d.Info = d.Info.KillRange()
	d.Value = position.KillRangeOf(d.Value)
	return d
}

// ArgFromDom reads a domain slot as an application argument, annotation
// and payload intact.
func ArgFromDom[T any](d Dom[T]) Arg[T] {
	return Arg[T]{Info: d.Info, Value: d.Value}
}

// DomFromArg reads an application argument as a domain slot.
func DomFromArg[T any](a Arg[T]) Dom[T] {
	return Dom[T]{Info: a.Info, Value: a.Value}
}

// WithArgsFrom pairs raw values with the annotations of template
// arguments, positionally, discarding the template payloads. The two
// slices must have the same length; a mismatch is a caller bug.
func WithArgsFrom[A, B any](xs []A, args []Arg[B]) []Arg[A] {
	if len(xs) != len(args) {
		panic(fmt.Sprintf("mismatched argument lists: %d values for %d slots", len(xs), len(args)))
	}
	out := make([]Arg[A], len(xs))
	for k := range xs {
		out[k] = Arg[A]{Info: args[k].Info, Value: xs[k]}
	}
	return out
}
