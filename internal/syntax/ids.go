package syntax

import (
	"encoding/binary"
	"fmt"
	"github.com/google/uuid"
	"sync/atomic"
)

// NameID identifies a binder within a checker session. Session tells IDs
// minted by different supplies apart, so names from an abandoned run never
// collide with a reload. The zero NameID is reserved for "no name".
type NameID struct {
	Seq     uint64
	Session uint64
}

func (n NameID) String() string {
	return fmt.Sprintf("%d@%x", n.Seq, n.Session)
}

// MetaID identifies a metavariable.
type MetaID uint64

func (m MetaID) String() string {
	return fmt.Sprintf("_%d", uint64(m))
}

// InteractionID identifies an interaction point in a source buffer.
type InteractionID uint64

func (i InteractionID) String() string {
	return fmt.Sprintf("?%d", uint64(i))
}

// FreshSupply mints identifiers for one checker session. Safe for
// concurrent use; minted values are plain immutable data.
type FreshSupply struct {
	session     uint64
	name        atomic.Uint64
	meta        atomic.Uint64
	interaction atomic.Uint64
}

// NewFreshSupply starts a supply under a random session stamp.
func NewFreshSupply() *FreshSupply {
	id := uuid.New()
	return &FreshSupply{session: binary.BigEndian.Uint64(id[:8])}
}

// Session is the stamp shared by every NameID this supply mints.
func (s *FreshSupply) Session() uint64 { return s.session }

// NextName mints a NameID. Sequences start at 1, keeping the zero NameID
// free.
func (s *FreshSupply) NextName() NameID {
	return NameID{Seq: s.name.Add(1), Session: s.session}
}

// NextMeta mints a MetaID, starting from _0.
func (s *FreshSupply) NextMeta() MetaID {
	return MetaID(s.meta.Add(1) - 1)
}

// NextInteraction mints an InteractionID, starting from ?0.
func (s *FreshSupply) NextInteraction() InteractionID {
	return InteractionID(s.interaction.Add(1) - 1)
}
