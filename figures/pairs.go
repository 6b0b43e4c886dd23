package figures

import (
	"github.com/speezepearson/contravis/lattice"
	"github.com/speezepearson/contravis/relation"
)

// Swing is a buzz-step swing with a counterpart on the same side of the set.
// Both end side by side facing the same way, the lark on the left.
type Swing struct {
	Beats float64             `yaml:"beats,omitempty"`
	With  relation.Descriptor `yaml:"with"`
}

func (Swing) Name() string { return "swing" }

func (f Swing) Duration() float64 { return beatsOr(f.Beats, 8) }

func (f Swing) Keyframes(s lattice.Snapshot) (lattice.Timelines, error) {
	beats := f.Duration()
	return eachDancer(s, func(id lattice.DancerID, d lattice.DancerState) (lattice.Timeline, error) {
		cid, cp, err := resolve(s, id, f.With)
		if err != nil {
			return nil, err
		}
		if !lattice.SameSide(d.Pos, cp.Pos) {
			return nil, lattice.Infeasible(id, "is trying to swing with somebody across the set")
		}
		if !lattice.IsFacing(d.Pos, d.Facing, cp.Pos, swingFacingTolerance) {
			return nil, lattice.Infeasible(id, "is trying to swing with somebody (%s) they're not facing", cid)
		}
		fr := newFrame(d.Pos, cp.Pos)
		fc := facingTowards(d, cp.Pos)
		var extra lattice.Turns
		if d.Role == lattice.Robin {
			extra = -0.5
		}
		// larks finish on the left, seen from inside the set looking along the line
		swap := (d.LeftSide() != (d.Role == lattice.Lark)) != (d.Pos.Y < cp.Pos.Y)
		if swap {
			b := beats / 6
			return lattice.Timeline{
				kf(b, face(goTo(d, fr.at(0.5, 0.2)), fc-0.25)),
				kf(b, face(goTo(d, fr.at(0.7, 0)), fc-0.5)),
				kf(b, face(goTo(d, fr.at(0.5, -0.2)), fc-0.75)),
				kf(b, face(goTo(d, fr.at(0.3, 0)), fc-1)),
				kf(b, face(goTo(d, fr.at(0.5, 0.2)), fc-1.25)),
				kf(b, face(goTo(d, lattice.V(sideSign(d.Pos)*quarter, cp.Pos.Y)), fc-1.25+extra)),
			}, nil
		}
		b := beats / 4
		return lattice.Timeline{
			kf(b, face(goTo(d, fr.at(0.5, 0.2)), fc-0.25)),
			kf(b, face(goTo(d, fr.at(0.7, 0)), fc-0.5)),
			kf(b, face(goTo(d, fr.at(0.5, -0.2)), fc-0.75)),
			kf(b, face(d, fc-1.25+extra)),
		}, nil
	})
}

// Balance steps towards a counterpart and back.
type Balance struct {
	Beats float64             `yaml:"beats,omitempty"`
	With  relation.Descriptor `yaml:"with"`
}

func (Balance) Name() string { return "balance" }

func (f Balance) Duration() float64 { return beatsOr(f.Beats, 4) }

func (f Balance) Keyframes(s lattice.Snapshot) (lattice.Timelines, error) {
	b := f.Duration() / 4
	return eachDancer(s, func(id lattice.DancerID, d lattice.DancerState) (lattice.Timeline, error) {
		cid, cp, err := resolve(s, id, f.With)
		if err != nil {
			return nil, err
		}
		if !lattice.IsFacing(d.Pos, d.Facing, cp.Pos, facingTolerance) {
			return nil, lattice.Infeasible(id, "is trying to balance somebody (%s) they're not facing", cid)
		}
		fr := newFrame(d.Pos, cp.Pos)
		fc := facingTowards(d, cp.Pos)
		in := face(goTo(d, fr.at(0.3, 0)), fc)
		out := face(d, fc)
		return lattice.Timeline{kf(b, in), kf(b, in), kf(b, out), kf(b, out)}, nil
	})
}

// BoxTheGnat trades places with a counterpart, the robin turning under the
// joined hands.
type BoxTheGnat struct {
	Beats float64             `yaml:"beats,omitempty"`
	With  relation.Descriptor `yaml:"with"`
}

func (BoxTheGnat) Name() string { return "box-the-gnat" }

func (f BoxTheGnat) Duration() float64 { return beatsOr(f.Beats, 4) }

func (f BoxTheGnat) Keyframes(s lattice.Snapshot) (lattice.Timelines, error) {
	beats := f.Duration()
	return eachDancer(s, func(id lattice.DancerID, d lattice.DancerState) (lattice.Timeline, error) {
		cid, cp, err := resolve(s, id, f.With)
		if err != nil {
			return nil, err
		}
		if !lattice.IsFacing(d.Pos, d.Facing, cp.Pos, facingTolerance) {
			return nil, lattice.Infeasible(id, "is trying to box the gnat with somebody (%s) they're not facing", cid)
		}
		final := lattice.Towards(d.Pos, cp.Pos)
		var spin lattice.Turns
		if d.Role == lattice.Lark {
			final -= 0.25
		} else {
			final += 0.25
			spin = 1
		}
		return lattice.Timeline{
			kf(beats, face(goTo(d, cp.Pos), lattice.Align(final, d.Facing)+spin)),
		}, nil
	})
}

// Allemande turns a counterpart by the given hand, the pair rotating about
// its center.
type Allemande struct {
	Beats float64             `yaml:"beats,omitempty"`
	With  relation.Descriptor `yaml:"with"`
	Hand  Hand                `yaml:"hand"`
	Turns float64             `yaml:"turns,omitempty"` // if zero, once around
}

func (Allemande) Name() string { return "allemande" }

func (f Allemande) Duration() float64 { return beatsOr(f.Beats, 8) }

func (f Allemande) turns() float64 { return beatsOr(f.Turns, 1) }

func (f Allemande) Keyframes(s lattice.Snapshot) (lattice.Timelines, error) {
	turns := f.turns()
	n := quarterSegments(turns)
	b := f.Duration() / float64(n)
	return eachDancer(s, func(id lattice.DancerID, d lattice.DancerState) (lattice.Timeline, error) {
		cid, cp, err := resolve(s, id, f.With)
		if err != nil {
			return nil, err
		}
		if !lattice.IsFacing(d.Pos, d.Facing, cp.Pos, facingTolerance) {
			return nil, lattice.Infeasible(id, "is trying to allemande somebody (%s) they're not facing", cid)
		}
		center := d.Pos.Midpoint(cp.Pos)
		fc := facingTowards(d, cp.Pos)
		// a right-hand turn goes clockwise
		dir := f.Hand.sign()
		tl := make(lattice.Timeline, 0, n)
		for k := 1; k <= n; k++ {
			a := lattice.Turns(dir * turns * float64(k) / float64(n))
			p := center.Add(d.Pos.Sub(center).Rotate(a))
			tl = append(tl, kf(b, face(goTo(d, p), fc+a)))
		}
		return tl, nil
	})
}

// DoSiDo circles a counterpart passing right shoulders, without turning.
type DoSiDo struct {
	Beats       float64             `yaml:"beats,omitempty"`
	With        relation.Descriptor `yaml:"with"`
	OneAndAHalf bool                `yaml:"one-and-a-half,omitempty"`
}

func (DoSiDo) Name() string { return "do-si-do" }

func (f DoSiDo) Duration() float64 {
	if f.OneAndAHalf {
		return beatsOr(f.Beats, 12)
	}
	return beatsOr(f.Beats, 8)
}

func (f DoSiDo) Keyframes(s lattice.Snapshot) (lattice.Timelines, error) {
	beats := f.Duration()
	return eachDancer(s, func(id lattice.DancerID, d lattice.DancerState) (lattice.Timeline, error) {
		_, cp, err := resolve(s, id, f.With)
		if err != nil {
			return nil, err
		}
		fr := newFrame(d.Pos, cp.Pos)
		if f.OneAndAHalf {
			b := beats / 6
			return lattice.Timeline{
				kf(b, goTo(d, fr.at(0.5, 0.2))),
				kf(b, goTo(d, fr.at(1, 0))),
				kf(b, goTo(d, fr.at(0.5, -0.2))),
				kf(b, goTo(d, fr.at(0, 0))),
				kf(b, goTo(d, fr.at(0.5, 0.2))),
				kf(b, goTo(d, fr.at(1, 0))),
			}, nil
		}
		b := beats / 4
		return lattice.Timeline{
			kf(b, goTo(d, fr.at(0.5, 0.2))),
			kf(b, goTo(d, fr.at(1, 0))),
			kf(b, goTo(d, fr.at(0.5, -0.2))),
			kf(b, d),
		}, nil
	})
}
