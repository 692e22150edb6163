// Package syntax carries the annotations every argument and binder of the
// language wears: visibility, relevance, optional names, optional source
// ranges, and the open color slot. The elaborator and unifier consume
// these through the capability interfaces; nothing here depends on them.
package syntax

import "fmt"

// Hiding classifies how an argument is passed: written out, inferred, or
// resolved by instance search.
type Hiding uint8

const (
	// NotHidden is a plain visible argument, the default.
	NotHidden Hiding = iota
	// Hidden is an implicit argument, inferred at use sites.
	Hidden
	// Instance is filled in by instance search.
	Instance
)

func (h Hiding) String() string {
	switch h {
	case NotHidden:
		return "visible"
	case Hidden:
		return "hidden"
	case Instance:
		return "instance"
	default:
		return fmt.Sprintf("Hiding(%d)", uint8(h))
	}
}

// Hidings lists the hiding values, most visible first.
func Hidings() []Hiding {
	return []Hiding{NotHidden, Hidden, Instance}
}

// CombineHiding merges the hiding of two argument slots known to describe
// the same thing. NotHidden is the identity. Hidden and Instance never
// describe the same slot; meeting them is a caller bug and panics.
func CombineHiding(h1, h2 Hiding) Hiding {
	switch {
	case h1 == h2:
		return h1
	case h1 == NotHidden:
		return h2
	case h2 == NotHidden:
		return h1
	default:
		panic(fmt.Sprintf("cannot combine hiding %v with %v", h1, h2))
	}
}

// IsHidden reports whether h is Hidden proper. Instance arguments are not
// hidden in this sense.
func (h Hiding) IsHidden() bool { return h == Hidden }

// Visible reports whether h is NotHidden.
func (h Hiding) Visible() bool { return h == NotHidden }

// NotVisible reports whether the argument is hidden or an instance.
func (h Hiding) NotVisible() bool { return h != NotHidden }

// GetHiding makes Hiding its own lens carrier.
func (h Hiding) GetHiding() Hiding { return h }

// SetHiding replaces h outright.
func (h Hiding) SetHiding(n Hiding) Hiding { return n }
