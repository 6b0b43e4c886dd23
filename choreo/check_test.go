package choreo

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/speezepearson/contravis/figures"
	"github.com/speezepearson/contravis/lattice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEarlyEveningRollawayIsValid(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "contra.choreo")
	defer teardown()
	//
	reason := CheckValidity(EarlyEveningRollaway())
	assert.True(t, reason.IsNone(), reason.Or(""))
	tls, err := EarlyEveningRollaway().Compose()
	assert.NoError(t, err)
	want := map[lattice.Slot]lattice.Vec{
		lattice.L1: lattice.V(-1, 2),
		lattice.R1: lattice.V(1, 2),
		lattice.L2: lattice.V(1, 0),
		lattice.R2: lattice.V(-1, 0),
	}
	for slot, p := range want {
		end, _ := tls[lattice.ID(slot, 0)].Last()
		assert.True(t, end.Pos.Near(p, 1e-9), "%s at %v", slot, end.Pos)
	}
}

func TestInvalidDances(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "contra.choreo")
	defer teardown()
	//
	short := EarlyEveningRollaway()
	short.Calls = short.Calls[:len(short.Calls)-1]
	tests := []struct {
		name   string
		dance  Dance
		opts   CheckOptions
		reason string
	}{
		{"too short", short, CheckOptions{}, "dance is 56 beats long, expected 64"},
		{"broken", Dance{Formation: lattice.Becket, Calls: []Call{Do(figures.Swing{With: yourNeighbor})}},
			CheckOptions{}, "across the set"},
		{"crossed over", Dance{Formation: lattice.Improper, Calls: []Call{Do(figures.Circle{Hand: figures.Left, Places: 2})}},
			CheckOptions{ExpectedBeats: 4}, "other side"},
		{"stays home", Dance{Formation: lattice.Improper, Calls: []Call{Do(figures.DoSiDo{With: yourPartner})}},
			CheckOptions{ExpectedBeats: 8}, "does not progress"},
		{"between places", Dance{Formation: lattice.Improper, Calls: []Call{Do(figures.FormWave{})}},
			CheckOptions{ExpectedBeats: 4}, "between places"},
		{"unknown formation", Dance{Formation: "square"}, CheckOptions{}, "unknown formation"},
	}
	for _, tt := range tests {
		reason, ok := tt.opts.Check(tt.dance).Unwrap()
		if assert.True(t, ok, tt.name) {
			assert.Contains(t, reason, tt.reason, tt.name)
		}
	}
}

func TestProgressingPassThrough(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "contra.choreo")
	defer teardown()
	//
	d := Dance{Formation: lattice.Improper, Calls: []Call{Do(figures.PassThrough{})}}
	assert.True(t, CheckOptions{ExpectedBeats: 2}.Check(d).IsNone())
}

func TestCheckComposedTimelines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "contra.choreo")
	defer teardown()
	//
	c, err := NewComposer(8)
	require.NoError(t, err)
	d := EarlyEveningRollaway()
	tls, err := c.Compose(d)
	require.NoError(t, err)
	assert.True(t, CheckOptions{}.CheckComposed(d, tls).IsNone())
	d.Calls = d.Calls[:len(d.Calls)-1]
	tls, err = c.Compose(d)
	require.NoError(t, err)
	reason, bad := CheckOptions{}.CheckComposed(d, tls).Unwrap()
	require.True(t, bad)
	assert.Equal(t, "dance is 56 beats long, expected 64", reason)
	hits, _ := c.Stats()
	assert.Equal(t, int64(1), hits)
}

func TestRoundBeats(t *testing.T) {
	assert.Equal(t, 56.0, roundBeats(56.000000000000014))
	assert.Equal(t, 7.5, roundBeats(7.4999999999))
}
