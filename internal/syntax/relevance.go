package syntax

import "fmt"

// ForcedSize records how big the type of a forced argument is. Forcing
// over big types needs more care during erasure, so composition keeps the
// larger of two sizes.
type ForcedSize uint8

const (
	SmallForced ForcedSize = iota
	BigForced
)

func (s ForcedSize) String() string {
	if s == BigForced {
		return "big"
	}
	return "small"
}

type relevanceKind uint8

const (
	relRelevant relevanceKind = iota
	relNonStrict
	relIrrelevant
	relForced
	relUnusedArg
)

// Relevance says how much a function may use an argument at runtime: fully,
// only up to shape, or not at all. Values compare with ==, which keeps the
// two forced sizes apart; the semantic order is MoreRelevant.
type Relevance struct {
	kind relevanceKind
	size ForcedSize
}

// The constant shapes. Relevant is the zero value and the default.
var (
	Relevant   = Relevance{kind: relRelevant}
	NonStrict  = Relevance{kind: relNonStrict}
	Irrelevant = Relevance{kind: relIrrelevant}
	UnusedArg  = Relevance{kind: relUnusedArg}
)

// Forced marks an argument whose value is already determined by the rest
// of the type; size records the universe weight of that type.
func Forced(size ForcedSize) Relevance {
	return Relevance{kind: relForced, size: size}
}

func (r Relevance) String() string {
	switch r.kind {
	case relRelevant:
		return "relevant"
	case relNonStrict:
		return "nonstrict"
	case relIrrelevant:
		return "irrelevant"
	case relForced:
		return fmt.Sprintf("forced(%v)", r.size)
	case relUnusedArg:
		return "unused"
	default:
		return fmt.Sprintf("Relevance(%d)", uint8(r.kind))
	}
}

// Relevances lists one value per shape, both forced sizes included, from
// most usable to least.
func Relevances() []Relevance {
	return []Relevance{Relevant, UnusedArg, Forced(SmallForced), Forced(BigForced), NonStrict, Irrelevant}
}

// IsRelevant reports the exact Relevant shape.
func (r Relevance) IsRelevant() bool { return r.kind == relRelevant }

// IsIrrelevant reports the exact Irrelevant shape.
func (r Relevance) IsIrrelevant() bool { return r.kind == relIrrelevant }

// IsForced reports whether r is Forced of either size.
func (r Relevance) IsForced() bool { return r.kind == relForced }

// Size is the forced size; meaningful only when IsForced.
func (r Relevance) Size() ForcedSize { return r.size }

// IrrelevantOrUnused reports whether the argument never survives to
// runtime.
func (r Relevance) IrrelevantOrUnused() bool {
	return r.kind == relIrrelevant || r.kind == relUnusedArg
}

// Unusable reports whether a variable under r cannot be used in a relevant
// position. Holds for NonStrict and Irrelevant.
func (r Relevance) Unusable() bool { return MoreRelevant(NonStrict, r) }

// MoreRelevant reports r ≤ q in the usability order: anything allowed
// under q is allowed under r. Relevant is the unique bottom, Irrelevant
// the unique top, and the two forced sizes are not distinguished. The
// ladder is a fixed case list, not a comparison of representations.
func MoreRelevant(r, q Relevance) bool {
	switch {
	case q.kind == relIrrelevant:
		return true
	case r.kind == relIrrelevant:
		return false
	case r.kind == relRelevant:
		return true
	case q.kind == relRelevant:
		return false
	case r.kind == relUnusedArg:
		return true
	case q.kind == relUnusedArg:
		return false
	case r.kind == relForced:
		return true
	case q.kind == relForced:
		return false
	default:
		// NonStrict on both sides.
		return true
	}
}

// ComposeRelevance is the relevance of a use reached through two nested
// annotated positions. Irrelevant wins over everything, then NonStrict,
// then Forced keeping the bigger size, then UnusedArg; Relevant is the
// identity.
func ComposeRelevance(r, q Relevance) Relevance {
	switch {
	case r.kind == relIrrelevant || q.kind == relIrrelevant:
		return Irrelevant
	case r.kind == relNonStrict || q.kind == relNonStrict:
		return NonStrict
	case r.kind == relForced && q.kind == relForced:
		if r.size < q.size {
			return q
		}
		return r
	case r.kind == relForced:
		return r
	case q.kind == relForced:
		return q
	case r.kind == relUnusedArg || q.kind == relUnusedArg:
		return UnusedArg
	default:
		return Relevant
	}
}

// InverseComposeRelevance undoes composition with r on the left: the most
// usable q with MoreRelevant(x, ComposeRelevance(r, q)). The case order
// matters; forced sizes are ignored when matching r against x.
func InverseComposeRelevance(r, x Relevance) Relevance {
	switch {
	case r.kind == relRelevant:
		return x
	case r.kind == x.kind:
		return Relevant
	case r.kind == relUnusedArg:
		return x
	case r.kind == relForced && x.kind == relUnusedArg:
		return Relevant
	case r.kind == relForced:
		return x
	case r.kind == relIrrelevant:
		return Relevant
	case x.kind == relIrrelevant:
		return Irrelevant
	default:
		// r is NonStrict, x is more usable than it.
		return Relevant
	}
}

// IgnoreForced collapses the shapes that count as actual use. Forced and
// UnusedArg become Relevant; NonStrict and Irrelevant keep their
// restrictions.
func (r Relevance) IgnoreForced() Relevance {
	switch r.kind {
	case relForced, relUnusedArg, relRelevant:
		return Relevant
	default:
		return r
	}
}

// IrrelevantToNonStrict weakens Irrelevant to NonStrict, for positions
// where the shape of an irrelevant term still matters. Other shapes pass
// through.
func (r Relevance) IrrelevantToNonStrict() Relevance {
	if r.kind == relIrrelevant {
		return NonStrict
	}
	return r
}

// NonStrictToIrrelevant strengthens NonStrict to Irrelevant. Other shapes
// pass through.
func (r Relevance) NonStrictToIrrelevant() Relevance {
	if r.kind == relNonStrict {
		return Irrelevant
	}
	return r
}

// GetRelevance makes Relevance its own lens carrier.
func (r Relevance) GetRelevance() Relevance { return r }

// SetRelevance replaces r outright.
func (r Relevance) SetRelevance(n Relevance) Relevance { return n }
