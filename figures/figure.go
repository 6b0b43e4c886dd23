/*
Package figures implements the motion primitives of contra dancing.

Every figure is a value type implementing Figure. Given the states of the four
block-0 dancers it computes a Timeline for each of them. Figures are pure: they
never modify the snapshot they are handed, and the same input always yields the
same keyframes.

Figures describe motion in a dancer's local frame wherever possible: a swing is
"half-way towards your partner, a bit to the left", not a pair of coordinates.
See frame. All keyframes of a figure are expressed relative to the dancer's state
at the start of the figure, never chained from each other.

Before synthesizing motion, a figure checks that it can be danced at all from
the current positions: counterparts must be near enough, dancers must face each
other where the figure requires it, and so on. Violations are reported as
lattice.KindFeasibility errors.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © the contravis authors
*/
package figures

import (
	"fmt"
	"math"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/speezepearson/contravis/lattice"
	"github.com/speezepearson/contravis/relation"
)

// tracer traces with key 'contra.figures'
func tracer() tracing.Trace {
	return tracing.Select("contra.figures")
}

// Figure is a motion primitive with a declared duration in beats.
//
// Keyframes must produce, for every dancer of block 0, a timeline whose total
// duration does not exceed Duration. Shorter timelines are padded with a rest
// by the caller.
type Figure interface {
	Name() string
	Duration() float64
	Keyframes(state lattice.Snapshot) (lattice.Timelines, error)
}

// Tolerances and reach used by the feasibility checks.
const (
	swingFacingTolerance lattice.Turns = 0.501
	facingTolerance      lattice.Turns = 0.51
	acrossTolerance      lattice.Turns = 0.125
)

const (
	chainReach       = 1.5 * lattice.Period
	landingClearance = 0.5
	half             = lattice.Period / 2
	quarter          = lattice.Period / 4
)

// Hand selects handedness: which hand is given, which shoulder is passed or
// which way a circle turns. The zero value is Right.
type Hand uint8

const (
	Right Hand = iota
	Left
)

func (h Hand) String() string {
	if h == Left {
		return "left"
	}
	return "right"
}

// MarshalText writes "left" or "right".
func (h Hand) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText reads "left" or "right".
func (h *Hand) UnmarshalText(b []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(b))) {
	case "left", "l":
		*h = Left
	case "right", "r":
		*h = Right
	default:
		return fmt.Errorf("figures: hand must be left or right, is %q", string(b))
	}
	return nil
}

func (h Hand) other() Hand {
	if h == Left {
		return Right
	}
	return Left
}

// sign is +1 for left, -1 for right: the sign of a counter-clockwise rotation
// when turning towards that side.
func (h Hand) sign() float64 {
	if h == Right {
		return -1
	}
	return 1
}

func beatsOr(b, def float64) float64 {
	if b <= 0 {
		return def
	}
	return b
}

// --- Iteration -------------------------------------------------------------

type dancerFunc func(id lattice.DancerID, d lattice.DancerState) (lattice.Timeline, error)

// eachDancer runs fn for the four block-0 dancers in slot order and collects the
// timelines. The first error aborts.
func eachDancer(s lattice.Snapshot, fn dancerFunc) (lattice.Timelines, error) {
	out := make(lattice.Timelines, len(lattice.Slots))
	for _, slot := range lattice.Slots {
		id := lattice.ID(slot, 0)
		d, ok := s[slot]
		if !ok {
			return nil, fmt.Errorf("figures: no state for dancer %s", id)
		}
		tl, err := fn(id, d)
		if err != nil {
			return nil, err
		}
		out[id] = tl
	}
	return out, nil
}

func resolve(s lattice.Snapshot, id lattice.DancerID, with relation.Descriptor) (lattice.DancerID, lattice.DancerState, error) {
	return relation.Resolve(s, id, with, relation.Options{})
}

// --- Geometry --------------------------------------------------------------

// frame is a local coordinate system with its origin at one dancer and its unit
// x-axis reaching to another point. The y-axis points to the left of x.
type frame struct {
	origin, delta lattice.Vec
}

func newFrame(origin, x1 lattice.Vec) frame {
	return frame{origin: origin, delta: x1.Sub(origin)}
}

func (f frame) at(x, y float64) lattice.Vec {
	perp := lattice.V(-f.delta.Y, f.delta.X)
	return f.origin.Add(f.delta.Mul(x)).Add(perp.Mul(y))
}

// Dancer-relative displacements.
func fwd(l float64) lattice.Vec   { return lattice.V(l, 0) }
func left(l float64) lattice.Vec  { return lattice.V(0, l) }
func right(l float64) lattice.Vec { return lattice.V(0, -l) }

// partnerward is the side on which a dancer's partner stands in a line of
// four: to the right of larks, to the left of robins.
func partnerward(d lattice.DancerState, l float64) lattice.Vec {
	if d.Role == lattice.Lark {
		return right(l)
	}
	return left(l)
}

// State transformations, all relative to the state passed in.

func goTo(d lattice.DancerState, p lattice.Vec) lattice.DancerState {
	d.Pos = p
	return d
}

func face(d lattice.DancerState, t lattice.Turns) lattice.DancerState {
	d.Facing = t
	return d
}

func turn(d lattice.DancerState, by lattice.Turns) lattice.DancerState {
	d.Facing += by
	return d
}

// step displaces d by a vector given in d's own frame: x ahead, y to the left.
func step(d lattice.DancerState, dx lattice.Vec) lattice.DancerState {
	d.Pos = d.Pos.Add(dx.Rotate(d.Facing))
	return d
}

func kf(beats float64, end lattice.DancerState) lattice.Keyframe {
	return lattice.Keyframe{Beats: beats, End: end}
}

// facingTowards returns the heading from d to p nearest d's orientation.
func facingTowards(d lattice.DancerState, p lattice.Vec) lattice.Turns {
	return lattice.Align(lattice.Towards(d.Pos, p), d.Facing)
}

// facingAcross reports whether d faces the other line.
func facingAcross(d lattice.DancerState) bool {
	across := lattice.Turns(0)
	if !d.LeftSide() {
		across = 0.5
	}
	return lattice.IsFacing(d.Pos, d.Facing, d.Pos.Add(across.Unit()), acrossTolerance)
}

func sideSign(p lattice.Vec) float64 {
	if p.X < 0 {
		return -1
	}
	return 1
}

func mod4(i int) int {
	return ((i % 4) + 4) % 4
}

// checkLanding verifies that no two dancers end up on the same spot, taking
// neighboring blocks into account.
func checkLanding(out lattice.Timelines) error {
	final := out.Current()
	for i, si := range lattice.Slots {
		for _, sj := range lattice.Slots[i+1:] {
			for b := -2; b <= 2; b++ {
				other := final[sj].Shifted(b)
				if final[si].Pos.Distance(other.Pos) < landingClearance {
					return lattice.Infeasible(lattice.ID(si, 0), "would collide with %s", lattice.ID(sj, b))
				}
			}
		}
	}
	return nil
}

// quarterSegments is the number of keyframes used for a rotation of the given
// amount: one per started quarter turn.
func quarterSegments(turns float64) int {
	n := int(math.Ceil(math.Abs(turns)*4 - lattice.Eps))
	if n < 1 {
		n = 1
	}
	return n
}
