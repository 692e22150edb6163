package syntax

import "github.com/funvibe/funpi/internal/position"

// Ranged pins a payload to the source range it was written at.
type Ranged[T any] struct {
	Range position.Range
	Value T
}

// Unranged wraps v with no source attachment.
func Unranged[T any](v T) Ranged[T] {
	return Ranged[T]{Value: v}
}

// RangedAt wraps v at r.
func RangedAt[T any](r position.Range, v T) Ranged[T] {
	return Ranged[T]{Range: r, Value: v}
}

// MapRanged rewrites the payload, keeping the range.
func MapRanged[A, B any](f func(A) B, r Ranged[A]) Ranged[B] {
	return Ranged[B]{Range: r.Range, Value: f(r.Value)}
}

// TraverseRanged rewrites the payload through a fallible f.
func TraverseRanged[A, B any](f func(A) (B, error), r Ranged[A]) (Ranged[B], error) {
	v, err := f(r.Value)
	if err != nil {
		return Ranged[B]{}, err
	}
	return Ranged[B]{Range: r.Range, Value: v}, nil
}

// GetRange returns the wrapper's own range, not the payload's.
func (r Ranged[T]) GetRange() position.Range { return r.Range }

// SetRange replaces the wrapper's range.
func (r Ranged[T]) SetRange(rng position.Range) Ranged[T] {
	r.Range = rng
	return r
}

// KillRange drops the wrapper's range and erases the payload's.
func (r Ranged[T]) KillRange() Ranged[T] {
	r.Range = position.NoRange
	r.Value = position.KillRangeOf(r.Value)
	return r
}
