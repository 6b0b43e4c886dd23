package lattice

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestVecArithmetic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "contra.lattice")
	defer teardown()
	//
	v, w := V(1, 2), V(-3, 0.5)
	assert.Equal(t, V(-2, 2.5), v.Add(w))
	assert.Equal(t, V(4, 1.5), v.Sub(w))
	assert.Equal(t, V(2, 4), v.Mul(2))
	assert.InDelta(t, -2.0, v.Dot(w), 1e-12)
	assert.InDelta(t, 6.5, v.Cross(w), 1e-12)
	assert.InDelta(t, 5.0, V(3, 4).Length(), 1e-12)
	assert.InDelta(t, 5.0, V(1, 1).Distance(V(4, 5)), 1e-12)
	assert.Equal(t, V(0, 0), V(0, 0).Normalize())
	assert.Equal(t, V(0.5, 1.5), V(0, 1).Midpoint(V(1, 2)))
}

func TestVecRotate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "contra.lattice")
	defer teardown()
	//
	r := V(1, 0).Rotate(0.25)
	assert.InDelta(t, 0.0, r.X, 1e-12)
	assert.InDelta(t, 1.0, r.Y, 1e-12)
	r = V(2, 0).Rotate(-0.5)
	assert.InDelta(t, -2.0, r.X, 1e-12)
	assert.InDelta(t, 0.0, r.Y, 1e-12)
	u := Turns(0.125).Unit()
	assert.InDelta(t, 1.0, u.Length(), 1e-12)
	assert.InDelta(t, u.X, u.Y, 1e-12)
}

func TestTowards(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "contra.lattice")
	defer teardown()
	//
	assert.InDelta(t, 0.25, float64(Towards(V(0, 0), V(0, 3))), 1e-12)
	assert.InDelta(t, 0.5, float64(Towards(V(1, 0), V(-1, 0))), 1e-12)
	assert.InDelta(t, -0.25, float64(Towards(V(1, 2), V(1, 0))), 1e-12)
	assert.InDelta(t, 0.125, float64(Towards(V(-1, 0), V(0, 1))), 1e-12)
}

func TestAlign(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "contra.lattice")
	defer teardown()
	//
	tests := []struct {
		dir, near, want Turns
	}{
		{0, 0.9, 1},
		{0.25, 0.25, 0.25},
		{-0.25, 3.2, 2.75},
		{0.5, 0, 0.5}, // tie goes up
		{0.75, 0.25, 0.75},
		{0.25, -1.75, -1.75},
	}
	for _, tt := range tests {
		got := Align(tt.dir, tt.near)
		if d := float64(got - tt.want); d > 1e-12 || d < -1e-12 {
			t.Errorf("Align(%g, %g) = %g; want %g", tt.dir, tt.near, got, tt.want)
		}
		if diff := float64(got - tt.near); diff > 0.5+1e-12 || diff < -0.5-1e-12 {
			t.Errorf("Align(%g, %g) is more than half a turn away", tt.dir, tt.near)
		}
	}
}

func TestIsFacingAndSides(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "contra.lattice")
	defer teardown()
	//
	// facing up, target straight across: a quarter turn off
	assert.True(t, IsFacing(V(-1, 0), 0.25, V(1, 0), 0.51))
	assert.False(t, IsFacing(V(-1, 0), 0.25, V(1, 0), 0.2))
	assert.True(t, IsFacing(V(-1, 0), 0, V(1, 0), 0.01))
	assert.False(t, IsFacing(V(-1, 0), 0.5, V(1, 0), 0.49))
	assert.True(t, SameSide(V(-1, 0), V(-0.5, 7)))
	assert.False(t, SameSide(V(-1, 0), V(1, 0)))
	assert.False(t, SameSide(V(0, 0), V(1, 0)))
}
