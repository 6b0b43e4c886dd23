package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/speezepearson/contravis/choreo"
	"github.com/speezepearson/contravis/internal/danceload"
	"github.com/speezepearson/contravis/lattice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderFloor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "contra.tools")
	defer teardown()
	//
	s, err := lattice.Initial(lattice.Improper)
	require.NoError(t, err)
	img := renderFloor(s, 60)
	assert.Equal(t, 300, img.Bounds().Dx())
	assert.Equal(t, 480, img.Bounds().Dy())
	assert.Equal(t, larkColor, img.RGBAAt(90, 360))  // L1 at (-1, 0)
	assert.Equal(t, robinColor, img.RGBAAt(210, 360)) // R1 at (1, 0)
	assert.Equal(t, robinColor, img.RGBAAt(90, 240))  // R2 at (-1, 2)
	assert.Equal(t, uint8(255), img.RGBAAt(5, 5).R)
	out := filepath.Join(t.TempDir(), "out", "floor.png")
	require.NoError(t, writePNG(img, out))
	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	_, err = png.Decode(f)
	assert.NoError(t, err)
}

func TestFloorAtUsesPartial(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "contra.tools")
	defer teardown()
	//
	df, err := danceload.LoadDance("../testdata/dances/broken-becket.yaml")
	require.NoError(t, err)
	s, err := floorAt(*df.Dance, 100)
	require.NoError(t, err)
	assert.True(t, s.Complete())
	initial, err := lattice.Initial(lattice.Becket)
	require.NoError(t, err)
	assert.True(t, s[lattice.L1].Pos.Near(initial[lattice.L1].Pos, 1e-9))
}

func TestCheckTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "contra.tools")
	defer teardown()
	//
	results, err := danceload.LoadAll("../testdata/dances/*.yaml")
	require.NoError(t, err)
	data, invalid := checkTable(results, choreo.CheckOptions{})
	require.Len(t, data, 4)
	assert.Equal(t, []string{"File", "Dance", "Beats", "Result"}, data[0])
	assert.Equal(t, "Broken Becket", data[1][1])
	assert.Equal(t, "Early Evening Rollaway", data[2][1])
	assert.Equal(t, "valid", data[2][3])
	assert.Equal(t, 2, invalid)
}

func TestSplitCSVSpace(t *testing.T) {
	assert.Equal(t, []string{"a.yaml", "b/*.yaml", "c"}, splitCSVSpace("a.yaml,b/*.yaml, c"))
}

func TestReportReusesComposition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "contra.tools")
	defer teardown()
	//
	composer, err := choreo.NewComposer(8)
	require.NoError(t, err)
	df, err := danceload.LoadDance("../testdata/dances/early-evening-rollaway.yaml")
	require.NoError(t, err)
	out := filepath.Join(t.TempDir(), "end.png")
	assert.True(t, report(composer, df, nil, out))
	assert.FileExists(t, out)
	assert.True(t, report(composer, df, nil, ""))
	hits, misses := composer.Stats()
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(1), misses)
	assert.False(t, report(composer, nil, os.ErrNotExist, ""))
}
