package figures

import (
	"github.com/speezepearson/contravis/lattice"
	"github.com/speezepearson/contravis/relation"
)

// Chain sends one role across the set to be courtesy-turned by a counterpart
// of the other role.
type Chain struct {
	Beats   float64             `yaml:"beats,omitempty"`
	Chainer lattice.Role        `yaml:"chainer"` // who crosses
	To      relation.Descriptor `yaml:"to"`      // the turner, seen from the chainer
}

func (Chain) Name() string { return "chain" }

func (f Chain) Duration() float64 { return beatsOr(f.Beats, 8) }

func (f Chain) Keyframes(s lattice.Snapshot) (lattice.Timelines, error) {
	beats := f.Duration()
	return eachDancer(s, func(id lattice.DancerID, d lattice.DancerState) (lattice.Timeline, error) {
		if d.Role != f.Chainer {
			// turners sweep backwards on their outside hand
			side, spin := right, lattice.Turns(1)
			if d.Role == lattice.Robin {
				side, spin = left, -1
			}
			return lattice.Timeline{
				kf(beats/2, turn(step(d, side(1.5)), spin/2)),
				kf(beats/4, turn(step(d, side(1.3).Add(fwd(0.3))), spin*3/4)),
				kf(beats/4, turn(d, spin)),
			}, nil
		}
		tid, turner, err := relation.Resolve(s, id, f.To, relation.Options{MaxDistance: chainReach})
		if err != nil {
			return nil, err
		}
		if lattice.SameSide(d.Pos, turner.Pos) {
			return nil, lattice.Infeasible(id, "is trying to chain to somebody (%s) on the same side of the set", tid)
		}
		dest := turner.Pos.Add(lattice.V(0, sideSign(turner.Pos)*half))
		return lattice.Timeline{kf(beats, turn(goTo(d, dest), 0.5))}, nil
	})
}

// RightLeftThrough passes across the set and courtesy-turns with the partner.
type RightLeftThrough struct {
	Beats float64 `yaml:"beats,omitempty"`
}

func (RightLeftThrough) Name() string { return "right-left-through" }

func (f RightLeftThrough) Duration() float64 { return beatsOr(f.Beats, 8) }

func (f RightLeftThrough) Keyframes(s lattice.Snapshot) (lattice.Timelines, error) {
	b := f.Duration() / 2
	return eachDancer(s, func(id lattice.DancerID, d lattice.DancerState) (lattice.Timeline, error) {
		if !facingAcross(d) {
			return nil, lattice.Infeasible(id, "is trying to pass through the set while not facing across")
		}
		sg := lattice.Turns(1)
		if d.Role == lattice.Lark {
			sg = -1
		}
		return lattice.Timeline{
			kf(b, turn(step(d, fwd(half)), sg/4)),
			kf(b, turn(step(d, fwd(half).Add(partnerward(d, half))), sg/2)),
		}, nil
	})
}

// PassThrough walks forward past the dancer in front, passing right shoulders.
type PassThrough struct {
	Beats float64 `yaml:"beats,omitempty"`
}

func (PassThrough) Name() string { return "pass-through" }

func (f PassThrough) Duration() float64 { return beatsOr(f.Beats, 2) }

func (f PassThrough) Keyframes(s lattice.Snapshot) (lattice.Timelines, error) {
	b := f.Duration() / 2
	return eachDancer(s, func(id lattice.DancerID, d lattice.DancerState) (lattice.Timeline, error) {
		return lattice.Timeline{
			kf(b, step(d, fwd(half/2).Add(left(0.3)))),
			kf(b, step(d, fwd(half))),
		}, nil
	})
}

// Slice steps diagonally forward and sideways out of a line facing across,
// then back into line one place over.
type Slice struct {
	Beats float64 `yaml:"beats,omitempty"`
	Hand  Hand    `yaml:"hand"` // direction of travel
}

func (Slice) Name() string { return "slice" }

func (f Slice) Duration() float64 { return beatsOr(f.Beats, 4) }

func (f Slice) Keyframes(s lattice.Snapshot) (lattice.Timelines, error) {
	b := f.Duration() / 2
	side := left
	if f.Hand == Right {
		side = right
	}
	out, err := eachDancer(s, func(id lattice.DancerID, d lattice.DancerState) (lattice.Timeline, error) {
		if !facingAcross(d) {
			return nil, lattice.Infeasible(id, "is trying to slice while not facing across")
		}
		return lattice.Timeline{
			kf(b, step(d, side(half).Add(fwd(0.5)))),
			kf(b, step(d, side(half))),
		}, nil
	})
	if err != nil {
		return nil, err
	}
	if err := checkLanding(out); err != nil {
		return nil, err
	}
	return out, nil
}

// Hey weaves across the set with a counterpart of the other line. Dancers of
// the leading role cross first, passing by the given shoulder; the others
// follow one quarter later. A half hey trades places, a full hey returns.
type Hey struct {
	Beats    float64             `yaml:"beats,omitempty"`
	With     relation.Descriptor `yaml:"with"`
	Lead     lattice.Role        `yaml:"lead"`
	Shoulder Hand                `yaml:"shoulder"`
	Full     bool                `yaml:"full,omitempty"`
}

func (Hey) Name() string { return "hey" }

func (f Hey) Duration() float64 {
	if f.Full {
		return beatsOr(f.Beats, 16)
	}
	return beatsOr(f.Beats, 8)
}

func (f Hey) Keyframes(s lattice.Snapshot) (lattice.Timelines, error) {
	halves := 1
	if f.Full {
		halves = 2
	}
	b := f.Duration() / float64(4*halves)
	veer, loop := -0.2, lattice.Turns(0.5)
	if f.Shoulder == Right {
		veer, loop = 0.2, -0.5
	}
	return eachDancer(s, func(id lattice.DancerID, d lattice.DancerState) (lattice.Timeline, error) {
		tid, cp, err := resolve(s, id, f.With)
		if err != nil {
			return nil, err
		}
		if lattice.SameSide(d.Pos, cp.Pos) {
			return nil, lattice.Infeasible(id, "is trying to hey with somebody (%s) on the same side of the set", tid)
		}
		tl := make(lattice.Timeline, 0, 4*halves)
		cur, dest := d, cp.Pos
		for h := 0; h < halves; h++ {
			fr := newFrame(cur.Pos, dest)
			fc := facingTowards(cur, dest)
			passing := face(goTo(cur, fr.at(0.5, veer)), fc)
			arrived := face(goTo(cur, dest), fc)
			back := face(arrived, fc+loop)
			if d.Role == f.Lead {
				tl = append(tl, kf(b, passing), kf(b, arrived), kf(b, back), kf(b, back))
			} else {
				tl = append(tl, kf(b, face(cur, fc)), kf(b, passing), kf(b, arrived), kf(b, back))
			}
			dest, cur = cur.Pos, back
		}
		return tl, nil
	})
}
