package position

// HasRange is implemented by syntax that can report where it came from.
// Wrappers delegate it to their payloads, so callers read ranges without
// knowing the concrete decoration.
type HasRange interface {
	GetRange() Range
}

// RangeKiller is the capability of dropping source attachments,
// recursively. Types that carry no position data do not implement it and
// pass through erasure unchanged.
type RangeKiller[T any] interface {
	KillRange() T
}

// RangeOf returns v's range when it reports one, NoRange otherwise.
func RangeOf(v any) Range {
	if h, ok := v.(HasRange); ok {
		return h.GetRange()
	}
	return Range{}
}

// KillRangeOf erases v's ranges when its type supports erasure, returning
// v unchanged otherwise.
func KillRangeOf[T any](v T) T {
	if k, ok := any(v).(RangeKiller[T]); ok {
		return k.KillRange()
	}
	return v
}
