package relation

import (
	"fmt"
	"strings"

	"github.com/speezepearson/contravis/lattice"
)

// Direction is a symbolic heading as used by callers: "face your partner",
// "face across", ...
type Direction uint8

const (
	Front Direction = iota
	Left
	Right
	UpTheSet
	DownTheSet
	Across
	Out
	TowardPartner
	TowardNeighbor
	AwayFromNeighbor
	Progressward
	Antiprogressward
)

var directionNames = [...]string{
	"front", "left", "right", "up", "down", "across", "out",
	"partner", "neighbor", "away-from-neighbor", "progressward", "antiprogressward",
}

var directionAliases = map[string]Direction{
	"forward":               Front,
	"in-front-of-you":       Front,
	"to-your-left":          Left,
	"to-your-right":         Right,
	"up-the-set":            UpTheSet,
	"down-the-set":          DownTheSet,
	"across-the-set":        Across,
	"partnerward":           TowardPartner,
	"towards-your-partner":  TowardPartner,
	"neighborward":          TowardNeighbor,
	"towards-your-neighbor": TowardNeighbor,
	"away":                  AwayFromNeighbor,
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("direction(%d)", d)
}

// ParseDirection parses a direction name or one of its aliases.
func ParseDirection(s string) (Direction, error) {
	n := strings.ToLower(strings.TrimSpace(s))
	n = strings.Join(strings.Fields(n), "-")
	for i, dn := range directionNames {
		if dn == n {
			return Direction(i), nil
		}
	}
	if d, ok := directionAliases[n]; ok {
		return d, nil
	}
	return Front, fmt.Errorf("relation: unknown direction %q", s)
}

// MarshalText writes the direction's name.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText parses a direction.
func (d *Direction) UnmarshalText(b []byte) error {
	dd, err := ParseDirection(string(b))
	if err == nil {
		*d = dd
	}
	return err
}

// Heading resolves a symbolic direction for dancer id to a concrete heading.
// The result is not aligned to the dancer's current orientation.
func Heading(state lattice.Snapshot, id lattice.DancerID, dir Direction, opts Options) (lattice.Turns, error) {
	me, err := state.Dancer(id)
	if err != nil {
		return 0, err
	}
	switch dir {
	case Front:
		return me.Facing, nil
	case Left:
		return me.Facing + 0.25, nil
	case Right:
		return me.Facing - 0.25, nil
	case UpTheSet:
		return 0.25, nil
	case DownTheSet:
		return -0.25, nil
	case Across:
		if me.LeftSide() {
			return 0, nil
		}
		return 0.5, nil
	case Out:
		if me.LeftSide() {
			return 0.5, nil
		}
		return 0, nil
	case Progressward:
		return me.Progression.Heading(), nil
	case Antiprogressward:
		return -me.Progression.Heading(), nil
	case TowardPartner:
		return towards(state, id, me, Of(Partner), opts)
	case TowardNeighbor:
		return towards(state, id, me, Of(Neighbor), opts)
	case AwayFromNeighbor:
		h, err := towards(state, id, me, Of(Neighbor), opts)
		return h + 0.5, err
	}
	return 0, fmt.Errorf("relation: unknown direction %d", dir)
}

func towards(state lattice.Snapshot, id lattice.DancerID, me lattice.DancerState, d Descriptor, opts Options) (lattice.Turns, error) {
	_, them, err := Resolve(state, id, d, opts)
	if err != nil {
		return 0, err
	}
	return lattice.Towards(me.Pos, them.Pos), nil
}
