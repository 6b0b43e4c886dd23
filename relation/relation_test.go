package relation

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/speezepearson/contravis/lattice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initial(t *testing.T, f lattice.FormationID) lattice.Snapshot {
	s, err := lattice.Initial(f)
	require.NoError(t, err)
	return s
}

// progressed is the improper formation after one full progression: every
// dancer moved half a block in its progression direction.
func progressed(t *testing.T) lattice.Snapshot {
	s := initial(t, lattice.Improper)
	for _, slot := range lattice.Slots {
		d := s[slot]
		d.Pos.Y += float64(d.Progression.Sign()) * lattice.Period / 2
		s[slot] = d
	}
	return s
}

func TestImproperRelations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "contra.relation")
	defer teardown()
	//
	s := initial(t, lattice.Improper)
	tests := []struct {
		from lattice.DancerID
		d    Descriptor
		want lattice.DancerID
	}{
		{lattice.ID(lattice.L1, 0), Of(Partner), lattice.ID(lattice.R1, 0)},
		{lattice.ID(lattice.L1, 0), Of(Neighbor), lattice.ID(lattice.R2, 0)},
		{lattice.ID(lattice.L1, 0), Of(Opposite), lattice.ID(lattice.L2, 0)},
		{lattice.ID(lattice.L1, 0), Of(Shadow), lattice.ID(lattice.R1, 0)},
		{lattice.ID(lattice.R2, 3), Of(Neighbor), lattice.ID(lattice.L1, 3)},
		{lattice.ID(lattice.L1, 0), Of(Neighbor).WithOffset(1), lattice.ID(lattice.R2, 1)},
		{lattice.ID(lattice.L2, 0), Of(Neighbor).WithOffset(1), lattice.ID(lattice.R1, -1)},
		{lattice.ID(lattice.R1, 0), Of(Opposite).WithOffset(1), lattice.ID(lattice.R2, 1)},
		{lattice.ID(lattice.L1, 0), Of(Shadow).WithOffset(1), lattice.ID(lattice.R1, 1)},
		{lattice.ID(lattice.R1, 0), Of(Shadow).WithOffset(1), lattice.ID(lattice.L1, -1)},
	}
	for _, tt := range tests {
		got, err := Target(s, tt.from, tt.d)
		require.NoError(t, err)
		if got != tt.want {
			t.Errorf("%s of %s = %s; want %s", tt.d, tt.from, got, tt.want)
		}
	}
}

func TestRelationSymmetry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "contra.relation")
	defer teardown()
	//
	states := []lattice.Snapshot{
		initial(t, lattice.Improper),
		initial(t, lattice.Becket),
		progressed(t),
	}
	relabeled, err := Relabel(progressed(t))
	require.NoError(t, err)
	states = append(states, relabeled)
	resolved := 0
	for _, s := range states {
		for _, slot := range lattice.Slots {
			for _, kind := range []Kind{Partner, Neighbor, Opposite, Shadow} {
				for offset := -1; offset <= 1; offset++ {
					d := Of(kind).WithOffset(offset)
					id := lattice.ID(slot, 2)
					tid, _, err := Resolve(s, id, d, Options{})
					if err != nil {
						// only distance may rule out a pairing
						require.True(t, errors.Is(err, lattice.ErrInfeasible), err.Error())
						continue
					}
					back, _, err := Resolve(s, tid, d.Inverse(), Options{})
					require.NoError(t, err)
					assert.Equal(t, id, back, "%s of %s", d, id)
					resolved++
				}
			}
		}
	}
	assert.Greater(t, resolved, 40)
}

func TestTooFarToInteract(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "contra.relation")
	defer teardown()
	//
	s := initial(t, lattice.Improper)
	_, _, err := Resolve(s, lattice.ID(lattice.L1, 0), Of(Neighbor).WithOffset(1), Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, lattice.ErrInfeasible))
	assert.Contains(t, err.Error(), "too far")
	// a generous threshold lets it through
	tid, them, err := Resolve(s, lattice.ID(lattice.L1, 0), Of(Neighbor).WithOffset(1), Options{MaxDistance: 10})
	require.NoError(t, err)
	assert.Equal(t, lattice.ID(lattice.R2, 1), tid)
	assert.Equal(t, lattice.V(-1, 6), them.Pos)
}

func TestAsymmetricLabelsAreInvariantViolations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "contra.relation")
	defer teardown()
	//
	s := initial(t, lattice.Improper)
	l1 := s[lattice.L1]
	l1.Neighbor = lattice.Link{Slot: lattice.R1}
	s[lattice.L1] = l1
	_, _, err := Resolve(s, lattice.ID(lattice.L1, 0), Of(Neighbor), Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, lattice.ErrInvariant))
	_, _, err = Resolve(s, lattice.ID(lattice.L1, 0), Of(Neighbor), Options{SkipSymmetry: true})
	assert.NoError(t, err)
}

func TestParseKind(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "contra.relation")
	defer teardown()
	//
	for in, want := range map[string]Kind{
		"partner": Partner, "Neighbours": Neighbor, "opposites": Opposite, " shadow ": Shadow,
	} {
		k, err := ParseKind(in)
		require.NoError(t, err)
		assert.Equal(t, want, k)
	}
	_, err := ParseKind("spouse")
	assert.Error(t, err)
	assert.Equal(t, "neighbor+1", Of(Neighbor).WithOffset(1).String())
	assert.Equal(t, "shadow-1", Of(Shadow).WithOffset(-1).String())
	assert.Equal(t, "partner", Of(Partner).String())
}
