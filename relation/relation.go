/*
Package relation finds the dancers a dancer interacts with.

Contra calls name counterparts symbolically ("swing your neighbor", "balance
your partner"). Resolving such a reference means walking a small table on slots
and block offsets, then checking that the dancer found is actually near enough
to interact with. Every relation is symmetric: if A's neighbor is B then B's
neighbor is A. Resolve verifies this on each lookup; a failure there signals a
bug in the lattice model, never a user error.

Neighbor relations are not fixed. After each progression dancers face new
neighbors, and the current labelling travels with the dancer states as
lattice.DancerState.Neighbor. Relabel recomputes it from positions.
*/
package relation

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/speezepearson/contravis/lattice"
)

// tracer traces with key 'contra.relation'
func tracer() tracing.Trace {
	return tracing.Select("contra.relation")
}

// Kind is the kind of a relation.
type Kind uint8

const (
	Partner Kind = iota
	Neighbor
	Opposite // neighbor of partner
	Shadow
)

var kindNames = [...]string{"partner", "neighbor", "opposite", "shadow"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// MarshalText writes the kind's name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses a kind name; plurals and British spelling are accepted.
func (k *Kind) UnmarshalText(b []byte) error {
	kk, err := ParseKind(string(b))
	if err == nil {
		*k = kk
	}
	return err
}

// ParseKind parses a relation kind.
func ParseKind(s string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(s))
	n = strings.TrimSuffix(n, "s")
	n = strings.ReplaceAll(n, "neighbour", "neighbor")
	for i, kn := range kindNames {
		if kn == n {
			return Kind(i), nil
		}
	}
	return Partner, fmt.Errorf("relation: unknown relation kind %q", s)
}

// Descriptor is a symbolic reference to a counterpart.
//
// Offset selects a block further along the set. For neighbor and opposite it
// counts in the direction the referring dancer progresses, so "next neighbor"
// is offset 1 for everybody. For shadow it counts up the set for larks and down
// the set for robins. With these conventions every descriptor is its own
// inverse.
type Descriptor struct {
	Kind   Kind `yaml:"kind"`
	Offset int  `yaml:"offset,omitempty"`
}

// Of returns a descriptor of kind k without block offset.
func Of(k Kind) Descriptor {
	return Descriptor{Kind: k}
}

// WithOffset returns d with a block offset.
func (d Descriptor) WithOffset(n int) Descriptor {
	d.Offset = n
	return d
}

// Inverse returns the descriptor leading back from the target. All
// descriptors are self-inverse.
func (d Descriptor) Inverse() Descriptor {
	return d
}

func (d Descriptor) String() string {
	if d.Offset == 0 {
		return d.Kind.String()
	}
	return fmt.Sprintf("%s%+d", d.Kind, d.Offset)
}

// DefaultMaxDistance is the distance beyond which two dancers cannot interact.
const DefaultMaxDistance = 0.99 * lattice.Period

// Options tune relation resolution. The zero value selects the defaults.
type Options struct {
	MaxDistance  float64 // if zero, DefaultMaxDistance is used
	SkipSymmetry bool    // do not verify the round trip
}

func (o Options) maxDistance() float64 {
	if o.MaxDistance <= 0 {
		return DefaultMaxDistance
	}
	return o.MaxDistance
}

// Target computes the identity of the dancer d refers to, from the lattice
// topology alone. No distance or symmetry checks are made.
func Target(state lattice.Snapshot, id lattice.DancerID, d Descriptor) (lattice.DancerID, error) {
	me, ok := state[id.Slot]
	if !ok {
		return lattice.DancerID{}, fmt.Errorf("relation: no state for %s", id)
	}
	switch d.Kind {
	case Partner:
		return lattice.ID(id.Slot.Partner(), id.Block), nil
	case Neighbor:
		return neighborOf(me, id, d.Offset), nil
	case Opposite:
		p := lattice.ID(id.Slot.Partner(), id.Block)
		pstate, ok := state[p.Slot]
		if !ok {
			return lattice.DancerID{}, fmt.Errorf("relation: no state for %s", p)
		}
		return neighborOf(pstate, p, d.Offset), nil
	case Shadow:
		sign := 1
		if me.Role == lattice.Robin {
			sign = -1
		}
		return lattice.ID(id.Slot.Partner(), id.Block+d.Offset*sign), nil
	}
	return lattice.DancerID{}, fmt.Errorf("relation: unknown relation kind %d", d.Kind)
}

func neighborOf(me lattice.DancerState, id lattice.DancerID, offset int) lattice.DancerID {
	t := me.Neighbor.From(id.Block)
	t.Block += offset * me.Progression.Sign()
	return t
}

// Resolve finds the counterpart of dancer id described by d.
//
// The counterpart must be within interaction distance, otherwise a feasibility
// error is returned. Unless disabled in opts, resolving d from the counterpart
// must lead back to id; if not, an invariant violation is returned.
func Resolve(state lattice.Snapshot, id lattice.DancerID, d Descriptor, opts Options) (lattice.DancerID, lattice.DancerState, error) {
	tid, err := Target(state, id, d)
	if err != nil {
		return tid, lattice.DancerState{}, err
	}
	me, err := state.Dancer(id)
	if err != nil {
		return tid, lattice.DancerState{}, err
	}
	them, err := state.Dancer(tid)
	if err != nil {
		return tid, lattice.DancerState{}, err
	}
	if dist := me.Pos.Distance(them.Pos); dist > opts.maxDistance() {
		return tid, them, lattice.Infeasible(id, "is too far from %s (%s) to meaningfully interact", tid, d)
	}
	if !opts.SkipSymmetry {
		back, err := Target(state, tid, d.Inverse())
		if err != nil {
			return tid, them, err
		}
		if back != id {
			return tid, them, lattice.Invariant(id, "has an unexpectedly asymmetric %s: %s -> %s -> %s", d, id, tid, back)
		}
	}
	tracer().Debugf("%s of %s is %s", d, id, tid)
	return tid, them, nil
}
