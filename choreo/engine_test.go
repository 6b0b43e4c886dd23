package choreo

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/speezepearson/contravis/figures"
	"github.com/speezepearson/contravis/lattice"
	"github.com/speezepearson/contravis/relation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// EngineTestEnviron composes the sample scenarios.
type EngineTestEnviron struct {
	suite.Suite
	rollaway Dance
}

// listen for 'go test' command --> run test methods
func TestEngineFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "contra.choreo")
	defer teardown()
	suite.Run(t, new(EngineTestEnviron))
}

// run once, before test suite methods
func (env *EngineTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("contra.choreo").SetTraceLevel(tracing.LevelError)
	env.rollaway = EarlyEveningRollaway()
}

func (env *EngineTestEnviron) TestNeighborBalanceAndSwing() {
	calls := []Call{
		Do(figures.Balance{With: yourPartner}),
		Do(figures.Swing{Beats: 12, With: yourNeighbor}),
	}
	tls, err := Compose(lattice.Improper, calls)
	env.Require().NoError(err)
	start, _ := lattice.Initial(lattice.Improper)
	for _, slot := range lattice.Slots {
		tl := tls[lattice.ID(slot, 0)]
		env.InDelta(16.0, tl.Beats(), 1e-9)
		end, ok := tl.Last()
		env.Require().True(ok)
		env.False(end.Pos.Near(start[slot].Pos, 1e-6), "%s did not move", slot)
	}
}

func (env *EngineTestEnviron) TestBecketSwingAcross() {
	_, err := Compose(lattice.Becket, []Call{Do(figures.Swing{With: yourNeighbor})})
	env.Require().Error(err)
	var cerr *CompositionError
	env.Require().True(errors.As(err, &cerr))
	env.Contains(cerr.Msg, "across the set")
	env.Empty(cerr.Partial)
	env.Equal(0, cerr.Index)
	env.True(errors.Is(err, lattice.ErrInfeasible))
}

func (env *EngineTestEnviron) TestRollawayBeats() {
	tls, err := env.rollaway.Compose()
	env.Require().NoError(err)
	env.Len(tls, 4)
	for id, tl := range tls {
		env.InDelta(64.0, tl.Beats(), 1e-9, id.String())
	}
	env.InDelta(64.0, env.rollaway.Beats(), 1e-9)
}

func (env *EngineTestEnviron) TestRelabelAfterTenCalls() {
	calls := append([]Call(nil), env.rollaway.Calls[:10]...)
	calls = append(calls, Relabel{})
	tls, err := Compose(lattice.Improper, calls)
	env.Require().NoError(err)
	end, _ := tls[lattice.ID(lattice.L1, 0)].Last()
	env.Equal(lattice.Link{Slot: lattice.R2, Delta: 1}, end.Neighbor)
	env.InDelta(env.rollaway.Beats()-8, tls.Beats(), 1e-9)
}

func (env *EngineTestEnviron) TestPartialTimelines() {
	calls := append([]Call(nil), env.rollaway.Calls[:2]...)
	calls = append(calls, Do(figures.Swing{With: yourPartner})) // partners are across the set now
	_, err := Compose(lattice.Improper, calls)
	var cerr *CompositionError
	env.Require().True(errors.As(err, &cerr))
	env.Equal(2, cerr.Index)
	env.Equal(calls[2], cerr.Call)
	env.InDelta(16.0, cerr.Partial.Beats(), 1e-9)
	env.Contains(err.Error(), "call #3")
}

func TestComposeIsDeterministic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "contra.choreo")
	defer teardown()
	//
	d := EarlyEveningRollaway()
	a, err := d.Compose()
	require.NoError(t, err)
	b, err := d.Compose()
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestBeatConservation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "contra.choreo")
	defer teardown()
	//
	d := EarlyEveningRollaway()
	for n := 0; n <= len(d.Calls); n++ {
		tls, err := Compose(d.Formation, d.Calls[:n])
		require.NoError(t, err)
		want := Dance{Calls: d.Calls[:n]}.Beats()
		for id, tl := range tls {
			assert.InDelta(t, want, tl.Beats(), 1e-9, "after %d calls: %s", n, id)
		}
	}
}

func TestFacingDirective(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "contra.choreo")
	defer teardown()
	//
	tls, err := Compose(lattice.Improper, []Call{Facing{Toward: relation.Across}})
	require.NoError(t, err)
	l1 := tls[lattice.ID(lattice.L1, 0)]
	require.Len(t, l1, 1)
	assert.Equal(t, 0.0, l1[0].Beats)
	assert.InDelta(t, 0.0, float64(l1[0].End.Facing), 1e-12)
	l2 := tls[lattice.ID(lattice.L2, 0)]
	assert.InDelta(t, -0.5, float64(l2[0].End.Facing), 1e-12)
	// re-orientation picks the nearest equivalent heading
	calls := []Call{
		Do(figures.Circle{Hand: figures.Right}),
		Facing{Toward: relation.TowardPartner},
	}
	plain, err := Compose(lattice.Improper, calls[:1])
	require.NoError(t, err)
	faced, err := Compose(lattice.Improper, calls)
	require.NoError(t, err)
	for id, tl := range faced {
		before, _ := plain[id].Last()
		after, _ := tl.Last()
		assert.LessOrEqual(t, math.Abs(float64(after.Facing-before.Facing)), 0.5, id.String())
		assert.Equal(t, before.Pos, after.Pos)
		assert.Equal(t, len(plain[id]), len(tl))
	}
}

// stretchy produces keyframes for a fixed number of beats, whatever it declares.
type stretchy struct {
	declared, produced float64
}

func (stretchy) Name() string { return "stretchy" }

func (f stretchy) Duration() float64 { return f.declared }

func (f stretchy) Keyframes(s lattice.Snapshot) (lattice.Timelines, error) {
	out := make(lattice.Timelines)
	for slot, d := range s {
		d.Pos.X *= 1.1
		out[lattice.ID(slot, 0)] = lattice.Timeline{{Beats: f.produced, End: d}}
	}
	return out, nil
}

func TestBudgetOverrun(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "contra.choreo")
	defer teardown()
	//
	_, err := Compose(lattice.Improper, []Call{Do(stretchy{declared: 4, produced: 5})})
	require.Error(t, err)
	assert.True(t, errors.Is(err, lattice.ErrBudgetOverrun))
	kind, ok := lattice.KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, lattice.KindBudgetOverrun, kind)
	assert.Contains(t, err.Error(), "has 5 beats of keyframes")
}

func TestShortFigureRests(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "contra.choreo")
	defer teardown()
	//
	tls, err := Compose(lattice.Improper, []Call{Do(stretchy{declared: 4, produced: 1})})
	require.NoError(t, err)
	tl := tls[lattice.ID(lattice.L1, 0)]
	require.Len(t, tl, 2)
	assert.Equal(t, 3.0, tl[1].Beats)
	assert.Equal(t, tl[0].End, tl[1].End)
}

func TestUnknownFormation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "contra.choreo")
	defer teardown()
	//
	_, err := Compose("contra-corners", nil)
	assert.True(t, errors.Is(err, lattice.ErrUnknownFormation))
}
