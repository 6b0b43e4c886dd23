/*
Package contravis computes how contra dancers move.

A dance is a starting formation and a sequence of calls, like "neighbors
balance and swing" or "circle left 3 places". Package contravis turns a dance
into a timeline of positions and orientations for every dancer, and tells
whether a dance works: whether every call can be danced from where the previous
one left the dancers, and whether the whole dance can be repeated.

This package bundles the most common entry points. The details live in the
sub-packages:

  - lattice: positions, dancers, formations and timelines
  - relation: who is whose partner, neighbor, opposite or shadow
  - figures: the motion of every figure
  - choreo: composing calls into timelines, checking and storing dances

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © the contravis authors
*/
package contravis

import (
	"github.com/speezepearson/contravis/choreo"
	"github.com/speezepearson/contravis/lattice"
)

// InitialFormation returns the starting state of the four dancers of block 0.
func InitialFormation(id lattice.FormationID) (map[lattice.DancerID]lattice.DancerState, error) {
	s, err := lattice.Initial(id)
	if err != nil {
		return nil, err
	}
	return s.ByDancer(), nil
}

// Compose dances calls from a starting formation. If a call cannot be danced,
// the error is a *choreo.CompositionError holding the timelines up to the
// failing call.
func Compose(id lattice.FormationID, calls []choreo.Call) (lattice.Timelines, error) {
	return choreo.Compose(id, calls)
}

// CheckValidity returns None if d is a valid 64-beat dance, and the reason if
// it is not.
func CheckValidity(d choreo.Dance) choreo.Option[string] {
	return choreo.CheckValidity(d)
}

// DecodeDance reads a dance from YAML or JSON.
func DecodeDance(data []byte) (*choreo.Dance, error) {
	return choreo.DecodeDance(data)
}

// EncodeDance writes a dance as YAML.
func EncodeDance(d choreo.Dance) ([]byte, error) {
	return choreo.EncodeDance(d)
}
