package lattice

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImproperFormation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "contra.lattice")
	defer teardown()
	//
	s, err := Initial(Improper)
	require.NoError(t, err)
	require.True(t, s.Complete())
	assert.Equal(t, V(-1, 0), s[L1].Pos)
	assert.Equal(t, V(1, 0), s[R1].Pos)
	assert.Equal(t, V(1, 2), s[L2].Pos)
	assert.Equal(t, V(-1, 2), s[R2].Pos)
	assert.Equal(t, Turns(0.25), s[L1].Facing)
	assert.Equal(t, Turns(-0.25), s[R2].Facing)
	assert.Equal(t, Robin, s[R1].Role)
	assert.Equal(t, Down, s[L2].Progression)
	assert.Equal(t, Link{Slot: R2}, s[L1].Neighbor)
	assert.Equal(t, Link{Slot: R1}, s[L2].Neighbor)
}

func TestBecketFormation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "contra.lattice")
	defer teardown()
	//
	s, err := Initial(Becket)
	require.NoError(t, err)
	assert.Equal(t, V(-1, 2), s[L1].Pos)
	assert.Equal(t, V(-1, 0), s[R1].Pos)
	assert.Equal(t, Turns(0.5), s[L2].Facing)
	// partners stand next to each other on the same side
	assert.True(t, SameSide(s[L1].Pos, s[R1].Pos))
}

func TestFormationReplication(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "contra.lattice")
	defer teardown()
	//
	s, _ := Initial(Improper)
	for _, slot := range Slots {
		for _, block := range []int{-2, -1, 0, 3} {
			d, err := s.Dancer(ID(slot, block))
			require.NoError(t, err)
			assert.Equal(t, s[slot].Pos.X, d.Pos.X)
			assert.Equal(t, s[slot].Pos.Y+float64(block)*Period, d.Pos.Y)
			assert.Equal(t, s[slot].Facing, d.Facing)
		}
	}
}

func TestUnknownFormation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "contra.lattice")
	defer teardown()
	//
	_, err := Initial("triple-minor")
	assert.True(t, errors.Is(err, ErrUnknownFormation))
	_, err = ParseFormation(" Becket ")
	assert.NoError(t, err)
	_, err = ParseFormation("proper")
	assert.True(t, errors.Is(err, ErrUnknownFormation))
	assert.Equal(t, []FormationID{Becket, Improper}, Formations())
}

func TestParseDancerID(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "contra.lattice")
	defer teardown()
	//
	id, err := ParseDancerID("R2 -1")
	require.NoError(t, err)
	assert.Equal(t, ID(R2, -1), id)
	assert.Equal(t, "R2 -1", id.String())
	id, err = ParseDancerID("l1")
	require.NoError(t, err)
	assert.Equal(t, ID(L1, 0), id)
	_, err = ParseDancerID("X3 0")
	assert.True(t, errors.Is(err, ErrInvalidSlot))
	_, err = ParseDancerID("L1 up")
	assert.Error(t, err)
}

func TestSlotTables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "contra.lattice")
	defer teardown()
	//
	for _, s := range Slots {
		assert.Equal(t, s, s.Partner().Partner())
		assert.NotEqual(t, s.Role(), s.Partner().Role())
		assert.Equal(t, s.Progression(), s.Partner().Progression())
	}
	var r Role
	require.NoError(t, r.UnmarshalText([]byte("Ladles")))
	assert.Equal(t, Robin, r)
	assert.Error(t, r.UnmarshalText([]byte("leader")))
}
