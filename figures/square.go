package figures

import (
	"github.com/speezepearson/contravis/lattice"
	"github.com/speezepearson/contravis/relation"
)

// square is the ring of four a dancer forms with partner, neighbor and opposite.
// Corners are ordered self, left, opposite, right, as seen from the center.
type square struct {
	corners [4]lattice.Vec
	center  lattice.Vec
}

func squareOf(s lattice.Snapshot, id lattice.DancerID, d lattice.DancerState) (square, error) {
	_, p, err := resolve(s, id, relation.Of(relation.Partner))
	if err != nil {
		return square{}, err
	}
	_, n, err := resolve(s, id, relation.Of(relation.Neighbor))
	if err != nil {
		return square{}, err
	}
	_, o, err := resolve(s, id, relation.Of(relation.Opposite))
	if err != nil {
		return square{}, err
	}
	leftP, rightP := p.Pos, n.Pos
	if p.Pos.Sub(d.Pos).Cross(n.Pos.Sub(d.Pos)) > 0 {
		leftP, rightP = n.Pos, p.Pos
	}
	return square{
		corners: [4]lattice.Vec{d.Pos, leftP, o.Pos, rightP},
		center:  p.Pos.Midpoint(n.Pos),
	}, nil
}

// Circle moves the ring of four round by a number of places.
type Circle struct {
	Beats  float64 `yaml:"beats,omitempty"` // if zero, two beats per place
	Hand   Hand    `yaml:"hand"`            // left circles clockwise
	Places int     `yaml:"places,omitempty"`
}

func (Circle) Name() string { return "circle" }

func (f Circle) places() int {
	if f.Places <= 0 {
		return 4
	}
	return f.Places
}

func (f Circle) Duration() float64 { return beatsOr(f.Beats, 2*float64(f.places())) }

func (f Circle) Keyframes(s lattice.Snapshot) (lattice.Timelines, error) {
	places := f.places()
	b := f.Duration() / float64(places)
	dir := 1
	if f.Hand == Right {
		dir = -1
	}
	return eachDancer(s, func(id lattice.DancerID, d lattice.DancerState) (lattice.Timeline, error) {
		sq, err := squareOf(s, id, d)
		if err != nil {
			return nil, err
		}
		tl := make(lattice.Timeline, 0, places)
		for i := 1; i <= places; i++ {
			p := sq.corners[mod4(i*dir)]
			tl = append(tl, kf(b, face(goTo(d, p), d.Facing-lattice.Turns(dir*i)/4)))
		}
		return tl, nil
	})
}

// Star moves the ring of four round by a number of places, hands joined in
// the center. Dancers face the direction of travel.
type Star struct {
	Beats  float64 `yaml:"beats,omitempty"` // if zero, two beats per place
	Hand   Hand    `yaml:"hand"`            // right-hand stars turn clockwise
	Places int     `yaml:"places,omitempty"`
}

func (Star) Name() string { return "star" }

func (f Star) places() int {
	if f.Places <= 0 {
		return 4
	}
	return f.Places
}

func (f Star) Duration() float64 { return beatsOr(f.Beats, 2*float64(f.places())) }

func (f Star) Keyframes(s lattice.Snapshot) (lattice.Timelines, error) {
	places := f.places()
	b := f.Duration() / float64(places)
	dir := -1
	if f.Hand == Right {
		dir = 1
	}
	return eachDancer(s, func(id lattice.DancerID, d lattice.DancerState) (lattice.Timeline, error) {
		sq, err := squareOf(s, id, d)
		if err != nil {
			return nil, err
		}
		heading := facingTowards(d, sq.corners[mod4(dir)])
		tl := make(lattice.Timeline, 0, places)
		for i := 1; i <= places; i++ {
			here, next := sq.corners[mod4(i*dir)], sq.corners[mod4((i+1)*dir)]
			heading = lattice.Align(lattice.Towards(here, next), heading)
			tl = append(tl, kf(b, face(goTo(d, here), heading)))
		}
		return tl, nil
	})
}

// PetronellaSpin moves everybody one place to the right in the ring of four,
// spinning on the way.
type PetronellaSpin struct {
	Beats float64 `yaml:"beats,omitempty"`
}

func (PetronellaSpin) Name() string { return "petronella" }

func (f PetronellaSpin) Duration() float64 { return beatsOr(f.Beats, 4) }

func (f PetronellaSpin) Keyframes(s lattice.Snapshot) (lattice.Timelines, error) {
	beats := f.Duration()
	return eachDancer(s, func(id lattice.DancerID, d lattice.DancerState) (lattice.Timeline, error) {
		sq, err := squareOf(s, id, d)
		if err != nil {
			return nil, err
		}
		c := facingTowards(d, sq.center)
		return lattice.Timeline{kf(beats, face(goTo(d, sq.corners[3]), c-1+0.25))}, nil
	})
}

// RingBalance balances towards the center of the ring of four.
type RingBalance struct {
	Beats float64 `yaml:"beats,omitempty"`
}

func (RingBalance) Name() string { return "ring-balance" }

func (f RingBalance) Duration() float64 { return beatsOr(f.Beats, 4) }

func (f RingBalance) Keyframes(s lattice.Snapshot) (lattice.Timelines, error) {
	b := f.Duration() / 4
	return eachDancer(s, func(id lattice.DancerID, d lattice.DancerState) (lattice.Timeline, error) {
		sq, err := squareOf(s, id, d)
		if err != nil {
			return nil, err
		}
		c := facingTowards(d, sq.center)
		in := face(goTo(d, newFrame(d.Pos, sq.center).at(0.3, 0)), c)
		out := face(d, c)
		return lattice.Timeline{kf(b, in), kf(b, in), kf(b, out), kf(b, out)}, nil
	})
}
