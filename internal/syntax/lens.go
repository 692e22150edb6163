package syntax

// LensHiding is the capability of carrying a Hiding annotation. Setters
// return an updated copy; carriers are never mutated in place.
type LensHiding[T any] interface {
	GetHiding() Hiding
	SetHiding(Hiding) T
}

// LensRelevance is the capability of carrying a Relevance annotation.
type LensRelevance[T any] interface {
	GetRelevance() Relevance
	SetRelevance(Relevance) T
}

// MapHiding rewrites x's hiding through f.
func MapHiding[T LensHiding[T]](f func(Hiding) Hiding, x T) T {
	return x.SetHiding(f(x.GetHiding()))
}

// Hide makes x hidden, whatever it was before.
func Hide[T LensHiding[T]](x T) T {
	return x.SetHiding(Hidden)
}

// MakeInstance turns x into an instance argument.
func MakeInstance[T LensHiding[T]](x T) T {
	return x.SetHiding(Instance)
}

// MergeHiding folds an externally known hiding into x's own via
// CombineHiding. Used when a hole's inferred hiding meets the hiding
// already recorded in context.
func MergeHiding[T LensHiding[T]](h Hiding, x T) T {
	return x.SetHiding(CombineHiding(h, x.GetHiding()))
}

// MapRelevance rewrites x's relevance through f.
func MapRelevance[T LensRelevance[T]](f func(Relevance) Relevance, x T) T {
	return x.SetRelevance(f(x.GetRelevance()))
}
