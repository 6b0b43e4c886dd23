package choreo

import (
	"fmt"
	"math"

	"github.com/speezepearson/contravis/lattice"
)

// CheckOptions tune CheckValidity. Zero values select the defaults.
type CheckOptions struct {
	ExpectedBeats float64 // length of the dance, 64 if zero
	Tolerance     float64 // slack for comparing beats and places, 1e-6 if zero
}

func (o CheckOptions) expectedBeats() float64 {
	if o.ExpectedBeats <= 0 {
		return 64
	}
	return o.ExpectedBeats
}

func (o CheckOptions) tolerance() float64 {
	if o.Tolerance <= 0 {
		return 1e-6
	}
	return o.Tolerance
}

// CheckValidity checks that a dance composes and can be repeated: it lasts 64
// beats, everybody ends on the side of the set they started on, and everybody
// has moved along the set by a whole, non-zero number of places.
//
// It returns None for a valid dance, and the reason otherwise.
func CheckValidity(d Dance) Option[string] {
	return CheckOptions{}.Check(d)
}

// Check is CheckValidity with options.
func (o CheckOptions) Check(d Dance) Option[string] {
	tls, err := d.Compose()
	if err != nil {
		return Some(err.Error())
	}
	return o.CheckComposed(d, tls)
}

// CheckComposed is Check for a dance which has already been composed into
// tls, e.g. by a Composer.
func (o CheckOptions) CheckComposed(d Dance, tls lattice.Timelines) Option[string] {
	initial, err := lattice.Initial(d.Formation)
	if err != nil {
		return Some(err.Error())
	}
	want, tol := o.expectedBeats(), o.tolerance()
	for _, slot := range lattice.Slots {
		id := lattice.ID(slot, 0)
		if beats := tls[id].Beats(); math.Abs(beats-want) > tol {
			return Some(fmt.Sprintf("dance is %g beats long, expected %g", roundBeats(beats), want))
		}
	}
	for _, slot := range lattice.Slots {
		id := lattice.ID(slot, 0)
		start := initial[slot]
		end, ok := tls[id].Last()
		if !ok {
			return Some(fmt.Sprintf("%s never moves", id))
		}
		if !lattice.SameSide(start.Pos, end.Pos) {
			return Some(fmt.Sprintf("%s ends on the other side of the set", id))
		}
		places := (end.Pos.Y - start.Pos.Y) / (lattice.Period / 2)
		whole := math.Round(places)
		if math.Abs(places-whole) > tol {
			return Some(fmt.Sprintf("%s ends between places, %.3g places from the start", id, places))
		}
		if whole == 0 {
			return Some(fmt.Sprintf("%s does not progress", id))
		}
	}
	tracer().Debugf("dance %q is valid", d.Name)
	return None[string]()
}

// roundBeats drops the float noise which summing keyframe durations like
// beats/6 leaves behind.
func roundBeats(b float64) float64 {
	return math.Round(b*1e6) / 1e6
}
