package syntax

import "github.com/funvibe/funpi/internal/position"

// Color is an opaque per-argument annotation slot reserved for
// cross-cutting extensions. The core never looks inside a color; a color
// type may opt into range erasure by implementing KillRange() Color.
type Color any

// ArgInfo bundles every annotation an argument slot carries. The zero
// value is the default info: visible, relevant, uncolored.
type ArgInfo struct {
	Hiding    Hiding
	Relevance Relevance
	Colors    []Color
}

// DefaultArgInfo is the annotation of a plain visible argument.
func DefaultArgInfo() ArgInfo { return ArgInfo{} }

func (i ArgInfo) GetHiding() Hiding { return i.Hiding }

func (i ArgInfo) SetHiding(h Hiding) ArgInfo {
	i.Hiding = h
	return i
}

func (i ArgInfo) GetRelevance() Relevance { return i.Relevance }

func (i ArgInfo) SetRelevance(r Relevance) ArgInfo {
	i.Relevance = r
	return i
}

// MapColors rewrites the color list pointwise, keeping order and
// duplicates. Colors are reached only through here, never through lenses.
func (i ArgInfo) MapColors(f func(Color) Color) ArgInfo {
	if len(i.Colors) == 0 {
		return i
	}
	cols := make([]Color, len(i.Colors))
	for k, c := range i.Colors {
		cols[k] = f(c)
	}
	i.Colors = cols
	return i
}

// KillRange erases the ranges of colors that support erasure. The info
// itself carries no range.
func (i ArgInfo) KillRange() ArgInfo {
	return i.MapColors(position.KillRangeOf[Color])
}
