package choreo

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/speezepearson/contravis/figures"
	"github.com/speezepearson/contravis/lattice"
	"github.com/speezepearson/contravis/relation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDanceRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "contra.choreo")
	defer teardown()
	//
	d := EarlyEveningRollaway()
	d.Calls = append(d.Calls, Relabel{})
	data, err := EncodeDance(d)
	require.NoError(t, err)
	t.Logf("encoded:\n%s", data)
	assert.Contains(t, string(data), "call: right-left-through")
	assert.Contains(t, string(data), "call: facing-directive")
	back, err := DecodeDance(data)
	require.NoError(t, err)
	assert.Equal(t, d, *back)
}

func TestDecodeDance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "contra.choreo")
	defer teardown()
	//
	src := `
name: Demo
formation: Improper
calls:
  - call: balance
    with: {kind: neighbours}
  - call: swing
    beats: 12
    with: {kind: neighbor}
  - call: roll-away
    side: right
    roller: gents
  - call: hey
    with: {kind: opposite}
    lead: larks
    shoulder: left
    full: true
  - call: facing-directive
    toward: across the set
  - call: relabel-directive
`
	d, err := DecodeDance([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, "Demo", d.Name)
	assert.Equal(t, lattice.Improper, d.Formation)
	require.Len(t, d.Calls, 6)
	assert.Equal(t, Do(figures.Balance{With: relation.Of(relation.Neighbor)}), d.Calls[0])
	assert.Equal(t, 12.0, d.Calls[1].Beats())
	roll := d.Calls[2].(FigureCall).Figure.(figures.RollAway)
	require.NotNil(t, roll.Side)
	assert.Equal(t, figures.Right, *roll.Side)
	assert.Equal(t, lattice.Lark, roll.Roller)
	hey := d.Calls[3].(FigureCall).Figure.(figures.Hey)
	assert.Equal(t, figures.Left, hey.Shoulder)
	assert.Equal(t, 16.0, hey.Duration())
	assert.Equal(t, Facing{Toward: relation.Across}, d.Calls[4])
	assert.Equal(t, Relabel{}, d.Calls[5])
}

func TestDecodeJSON(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "contra.choreo")
	defer teardown()
	//
	src := `{"formation": "becket", "calls": [{"call": "circle", "hand": "left", "places": 3}]}`
	d, err := DecodeDance([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, []Call{Do(figures.Circle{Hand: figures.Left, Places: 3})}, d.Calls)
}

func TestDecodeErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "contra.choreo")
	defer teardown()
	//
	_, err := DecodeDance([]byte("formation: improper\ncalls:\n  - call: contra-corners\n"))
	assert.True(t, errors.Is(err, ErrUnknownCall))
	_, err = DecodeDance([]byte("formation: improper\ncalls:\n  - beats: 4\n"))
	assert.True(t, errors.Is(err, ErrUnknownCall))
	_, err = DecodeDance([]byte("formation: hexagon\ncalls: []\n"))
	assert.True(t, errors.Is(err, lattice.ErrUnknownFormation))
	_, err = DecodeDance([]byte("formation: improper\ncalls:\n  - call: slice\n    hand: sideways\n"))
	assert.Error(t, err)
}

func TestSingleCalls(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "contra.choreo")
	defer teardown()
	//
	c := Do(figures.Allemande{With: relation.Of(relation.Shadow).WithOffset(-1), Hand: figures.Left, Turns: 1.5})
	data, err := EncodeCall(c)
	require.NoError(t, err)
	back, err := DecodeCall(data)
	require.NoError(t, err)
	assert.Equal(t, c, back)
	assert.Contains(t, CallNames(), "wave-balance")
	assert.Contains(t, CallNames(), "relabel-directive")
}
