package syntax

import "fmt"

// Induction distinguishes data that is built up from data that is
// observed.
type Induction uint8

const (
	Inductive Induction = iota
	CoInductive
)

func (i Induction) String() string {
	switch i {
	case Inductive:
		return "inductive"
	case CoInductive:
		return "coinductive"
	default:
		return fmt.Sprintf("Induction(%d)", uint8(i))
	}
}

// Delay marks definitions whose unfolding waits until a projection forces
// them.
type Delay uint8

const (
	NotDelayed Delay = iota
	Delayed
)

func (d Delay) String() string {
	switch d {
	case NotDelayed:
		return "not-delayed"
	case Delayed:
		return "delayed"
	default:
		return fmt.Sprintf("Delay(%d)", uint8(d))
	}
}

// Access is the visibility of a declaration outside its module.
type Access uint8

const (
	PublicAccess Access = iota
	PrivateAccess
	// OnlyQualified names are reachable but never imported unqualified.
	OnlyQualified
)

func (a Access) String() string {
	switch a {
	case PublicAccess:
		return "public"
	case PrivateAccess:
		return "private"
	case OnlyQualified:
		return "qualified-only"
	default:
		return fmt.Sprintf("Access(%d)", uint8(a))
	}
}

// Abstraction marks definitions whose bodies stay opaque outside the
// block they were declared in.
type Abstraction uint8

const (
	ConcreteDef Abstraction = iota
	AbstractDef
)

func (a Abstraction) String() string {
	switch a {
	case ConcreteDef:
		return "concrete"
	case AbstractDef:
		return "abstract"
	default:
		return fmt.Sprintf("Abstraction(%d)", uint8(a))
	}
}
