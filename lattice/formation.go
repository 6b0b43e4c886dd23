package lattice

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// FormationID names a starting formation.
type FormationID string

const (
	// Improper: couples 1 stand on the left/right of the set facing up, couples 2
	// above them facing down; everybody's neighbor is on the same side.
	Improper FormationID = "improper"
	// Becket: couples stand side by side along the lines, facing across.
	Becket FormationID = "becket"
)

// ErrUnknownFormation is returned for formation names without a layout.
var ErrUnknownFormation = errors.New("lattice: unknown formation")

type placement struct {
	pos    Vec
	facing Turns
}

// formations holds block-0 placements in slot order L1, R1, L2, R2.
var formations = map[FormationID][4]placement{
	Improper: {
		{V(-Period/4, 0), 0.25},
		{V(Period/4, 0), 0.25},
		{V(Period/4, Period/2), -0.25},
		{V(-Period/4, Period/2), -0.25},
	},
	Becket: {
		{V(-Period/4, Period/2), 0},
		{V(-Period/4, 0), 0},
		{V(Period/4, 0), 0.5},
		{V(Period/4, Period/2), 0.5},
	},
}

// initialNeighbors is the neighbor labelling every formation starts from.
var initialNeighbors = [4]Link{
	L1: {Slot: R2},
	R1: {Slot: L2},
	L2: {Slot: R1},
	R2: {Slot: L1},
}

// Formations lists the supported formations, sorted by name.
func Formations() []FormationID {
	ids := make([]FormationID, 0, len(formations))
	for id := range formations {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// ParseFormation looks up a formation by case-insensitive name.
func ParseFormation(name string) (FormationID, error) {
	id := FormationID(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := formations[id]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormation, name)
	}
	return id, nil
}

// Initial returns the block-0 states of a formation.
func Initial(id FormationID) (Snapshot, error) {
	layout, ok := formations[id]
	if !ok {
		tracer().Errorf("no layout for formation %q", id)
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormation, id)
	}
	s := make(Snapshot, len(Slots))
	for _, slot := range Slots {
		p := layout[slot]
		s[slot] = DancerState{
			Role:        slot.Role(),
			Progression: slot.Progression(),
			Pos:         p.pos,
			Facing:      p.facing,
			Neighbor:    initialNeighbors[slot],
		}
	}
	return s, nil
}
