package relation

import (
	"math"
	"sort"

	"github.com/speezepearson/contravis/lattice"
)

// Found is a dancer returned from a neighborhood query.
type Found struct {
	ID    lattice.DancerID
	State lattice.DancerState
}

// Nearby enumerates all dancers within radius of p. Only the blocks which can
// reach the query window are visited. Results are ordered by distance, ties
// broken by slot and block.
func Nearby(state lattice.Snapshot, p lattice.Vec, radius float64) []Found {
	var found []Found
	for _, slot := range lattice.Slots {
		proto, ok := state[slot]
		if !ok {
			continue
		}
		lo := int(math.Floor((p.Y - radius - proto.Pos.Y) / lattice.Period))
		hi := int(math.Ceil((p.Y + radius - proto.Pos.Y) / lattice.Period))
		for b := lo; b <= hi; b++ {
			d := proto.Shifted(b)
			if d.Pos.Distance(p) <= radius {
				found = append(found, Found{ID: lattice.ID(slot, b), State: d})
			}
		}
	}
	sort.SliceStable(found, func(i, j int) bool {
		di, dj := found[i].State.Pos.Distance(p), found[j].State.Pos.Distance(p)
		if di != dj {
			return di < dj
		}
		if found[i].ID.Slot != found[j].ID.Slot {
			return found[i].ID.Slot < found[j].ID.Slot
		}
		return found[i].ID.Block < found[j].ID.Block
	})
	return found
}

// DefaultSlop is how far from an expected spot a dancer may stand and still be
// found there.
const DefaultSlop = 0.2

// InDirection finds whoever stands at offset from dancer id. The offset is
// relative to the dancer: +x is straight ahead, +y is to the dancer's left. No
// dancer at the spot or more than one candidate are feasibility errors. A
// non-positive slop selects DefaultSlop.
func InDirection(state lattice.Snapshot, id lattice.DancerID, offset lattice.Vec, slop float64) (lattice.DancerID, lattice.DancerState, error) {
	if slop <= 0 {
		slop = DefaultSlop
	}
	me, err := state.Dancer(id)
	if err != nil {
		return lattice.DancerID{}, lattice.DancerState{}, err
	}
	spot := me.Pos.Add(offset.Rotate(me.Facing))
	var cands []Found
	for _, f := range Nearby(state, spot, slop) {
		if f.ID != id {
			cands = append(cands, f)
		}
	}
	switch len(cands) {
	case 0:
		return lattice.DancerID{}, lattice.DancerState{}, lattice.Infeasible(id, "finds nobody at %v", spot)
	case 1:
		return cands[0].ID, cands[0].State, nil
	}
	return lattice.DancerID{}, lattice.DancerState{}, lattice.Infeasible(id,
		"cannot tell whom to pick at %v: %s and %s are both there", spot, cands[0].ID, cands[1].ID)
}

// Relabel recomputes the neighbor labelling: each dancer's new neighbor is the
// dancer standing half a block straight ahead. Neighbors must have different
// roles and must face each other, otherwise a feasibility error is returned.
func Relabel(state lattice.Snapshot) (lattice.Snapshot, error) {
	links := make(map[lattice.Slot]lattice.Link, len(lattice.Slots))
	for _, slot := range lattice.Slots {
		id := lattice.ID(slot, 0)
		tid, them, err := InDirection(state, id, lattice.V(lattice.Period/2, 0), DefaultSlop)
		if err != nil {
			return nil, err
		}
		if them.Role == state[slot].Role {
			return nil, lattice.Infeasible(id, "would neighbor %s, who dances the same role", tid)
		}
		links[slot] = lattice.Link{Slot: tid.Slot, Delta: tid.Block}
	}
	for _, slot := range lattice.Slots {
		l := links[slot]
		back := links[l.Slot]
		if back.Slot != slot || back.Delta != -l.Delta {
			return nil, lattice.Infeasible(lattice.ID(slot, 0),
				"faces %s, who faces %s instead", l.From(0), back.From(l.Delta))
		}
	}
	next := state.Clone()
	for _, slot := range lattice.Slots {
		d := next[slot]
		d.Neighbor = links[slot]
		next[slot] = d
		tracer().Debugf("%s now neighbors %s", lattice.ID(slot, 0), d.Neighbor)
	}
	return next, nil
}
