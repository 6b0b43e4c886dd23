package lattice

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Role is the dancing role of a dancer. The zero value is Robin.
type Role uint8

const (
	Robin Role = iota
	Lark
)

func (r Role) String() string {
	switch r {
	case Lark:
		return "lark"
	case Robin:
		return "robin"
	}
	return "role(" + strconv.Itoa(int(r)) + ")"
}

// Other returns the complementary role.
func (r Role) Other() Role {
	if r == Lark {
		return Robin
	}
	return Lark
}

// MarshalText lets roles appear by name in dance files.
func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText accepts "lark"/"robin" and the older "gent"/"lady" and
// "gentlespoon"/"ladle" names.
func (r *Role) UnmarshalText(b []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(b))) {
	case "lark", "larks", "gent", "gents", "gentlespoon", "gentlespoons":
		*r = Lark
	case "robin", "robins", "lady", "ladies", "ladle", "ladles":
		*r = Robin
	default:
		return fmt.Errorf("lattice: unknown role %q", string(b))
	}
	return nil
}

// Progression is the direction along the set in which a dancer progresses.
type Progression int8

const (
	Up   Progression = 1
	Down Progression = -1
)

func (p Progression) String() string {
	if p == Down {
		return "down"
	}
	return "up"
}

// Sign is +1 for dancers progressing up, -1 otherwise.
func (p Progression) Sign() int {
	if p == Down {
		return -1
	}
	return 1
}

// Heading is the direction a dancer faces when looking towards its progression.
func (p Progression) Heading() Turns {
	return Turns(p.Sign()) / 4
}

// --- Slots -----------------------------------------------------------------

// Slot is one of the four canonical dancer positions of a block.
type Slot uint8

const (
	L1 Slot = iota
	R1
	L2
	R2
)

// Slots lists all slots in canonical order. Every iteration over dancers uses
// this order, which keeps composition deterministic.
var Slots = [...]Slot{L1, R1, L2, R2}

var slotNames = [...]string{"L1", "R1", "L2", "R2"}

func (s Slot) String() string {
	if int(s) < len(slotNames) {
		return slotNames[s]
	}
	return "S" + strconv.Itoa(int(s))
}

// Role returns the role of dancers in slot s.
func (s Slot) Role() Role {
	if s == R1 || s == R2 {
		return Robin
	}
	return Lark
}

// Progression returns the progression direction of slot s.
func (s Slot) Progression() Progression {
	if s == L2 || s == R2 {
		return Down
	}
	return Up
}

// Partner returns the slot of the partner of s. Partners share a block.
func (s Slot) Partner() Slot {
	switch s {
	case L1:
		return R1
	case R1:
		return L1
	case L2:
		return R2
	}
	return L2
}

// ErrInvalidSlot is returned when parsing a malformed slot or dancer name.
var ErrInvalidSlot = errors.New("lattice: invalid slot")

// ParseSlot parses a slot name such as "L1".
func ParseSlot(name string) (Slot, error) {
	n := strings.ToUpper(strings.TrimSpace(name))
	for i, sn := range slotNames {
		if sn == n {
			return Slot(i), nil
		}
	}
	return L1, fmt.Errorf("%w: %q", ErrInvalidSlot, name)
}

// MarshalText writes the slot name.
func (s Slot) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a slot name.
func (s *Slot) UnmarshalText(b []byte) (err error) {
	*s, err = ParseSlot(string(b))
	return
}

// --- Dancer identity -------------------------------------------------------

// DancerID identifies a single dancer on the infinite floor.
type DancerID struct {
	Slot  Slot
	Block int
}

// ID is a shorthand constructor for a DancerID.
func ID(slot Slot, block int) DancerID {
	return DancerID{Slot: slot, Block: block}
}

func (id DancerID) String() string {
	return fmt.Sprintf("%s %d", id.Slot, id.Block)
}

// ParseDancerID parses the format produced by DancerID.String, e.g. "R2 -1".
// A missing block index denotes block 0.
func ParseDancerID(s string) (DancerID, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 || len(fields) > 2 {
		return DancerID{}, fmt.Errorf("%w: %q", ErrInvalidSlot, s)
	}
	slot, err := ParseSlot(fields[0])
	if err != nil {
		return DancerID{}, err
	}
	id := DancerID{Slot: slot}
	if len(fields) == 2 {
		if id.Block, err = strconv.Atoi(fields[1]); err != nil {
			return DancerID{}, fmt.Errorf("%w: bad block index in %q", ErrInvalidSlot, s)
		}
	}
	return id, nil
}

// Link is a relative reference from one dancer to another: the target slot and
// the block distance from the referring dancer's block.
type Link struct {
	Slot  Slot
	Delta int
}

func (l Link) String() string {
	return fmt.Sprintf("%s%+d", l.Slot, l.Delta)
}

// From resolves the link relative to a dancer in block.
func (l Link) From(block int) DancerID {
	return DancerID{Slot: l.Slot, Block: block + l.Delta}
}

// --- Dancer state ----------------------------------------------------------

// DancerState is the complete state of one dancer at one moment.
type DancerState struct {
	Role        Role
	Progression Progression
	Pos         Vec
	Facing      Turns
	Neighbor    Link // who this dancer currently calls "neighbor"
}

// Shifted returns the state translated by the given number of blocks.
func (d DancerState) Shifted(blocks int) DancerState {
	if blocks != 0 {
		d.Pos.Y += float64(blocks) * Period
	}
	return d
}

// Heading is the unit vector the dancer is facing.
func (d DancerState) Heading() Vec {
	return d.Facing.Unit()
}

// LeftSide reports whether the dancer is on the left (x<0) side of the set.
func (d DancerState) LeftSide() bool {
	return d.Pos.X < 0
}

func (d DancerState) String() string {
	return fmt.Sprintf("%s@%v facing %.4g", d.Role, d.Pos, float64(d.Facing))
}
