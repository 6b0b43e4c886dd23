package figures

import (
	"github.com/speezepearson/contravis/lattice"
	"github.com/speezepearson/contravis/relation"
)

// RollAway trades places with a counterpart: the roller pulls the other dancer
// across in front of them, the rolled dancer spinning once on the way.
//
// The counterpart is either given by relation (With), or, if Side is set, found
// one place to that side of the roller. The rolled dancer then looks for the
// roller on the opposite side.
type RollAway struct {
	Beats  float64             `yaml:"beats,omitempty"`
	With   relation.Descriptor `yaml:"with"`
	Side   *Hand               `yaml:"side,omitempty"`
	Roller lattice.Role        `yaml:"roller"`
}

func (RollAway) Name() string { return "roll-away" }

func (f RollAway) Duration() float64 { return beatsOr(f.Beats, 4) }

func (f RollAway) Keyframes(s lattice.Snapshot) (lattice.Timelines, error) {
	beats := f.Duration()
	if f.Side == nil {
		return eachDancer(s, func(id lattice.DancerID, d lattice.DancerState) (lattice.Timeline, error) {
			_, cp, err := resolve(s, id, f.With)
			if err != nil {
				return nil, err
			}
			return lattice.Timeline{kf(beats, f.roll(d, cp.Pos))}, nil
		})
	}
	pairs := make(map[lattice.Slot]lattice.DancerID, len(lattice.Slots))
	out, err := eachDancer(s, func(id lattice.DancerID, d lattice.DancerState) (lattice.Timeline, error) {
		side := *f.Side
		if d.Role != f.Roller {
			side = side.other()
		}
		offset := left(half)
		if side == Right {
			offset = right(half)
		}
		cid, cp, err := relation.InDirection(s, id, offset, relation.DefaultSlop)
		if err != nil {
			return nil, err
		}
		pairs[id.Slot] = cid
		return lattice.Timeline{kf(beats, f.roll(d, cp.Pos))}, nil
	})
	if err != nil {
		return nil, err
	}
	for _, slot := range lattice.Slots {
		cid := pairs[slot]
		back := pairs[cid.Slot]
		if back.Slot != slot || back.Block != -cid.Block {
			tracer().Debugf("roll away pairs %v", pairs)
			return nil, lattice.Infeasible(lattice.ID(slot, 0),
				"is trying to roll away with %s, who is looking for %s instead", cid, lattice.ID(back.Slot, back.Block+cid.Block))
		}
	}
	return out, nil
}

func (f RollAway) roll(d lattice.DancerState, to lattice.Vec) lattice.DancerState {
	d = goTo(d, to)
	switch {
	case d.Role == f.Roller:
	case d.Role == lattice.Robin:
		d.Facing--
	default:
		d.Facing++
	}
	return d
}
