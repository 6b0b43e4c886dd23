package choreo

import (
	"errors"
	"sync"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/speezepearson/contravis/figures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposerMatchesCompose(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "contra.choreo")
	defer teardown()
	//
	c, err := NewComposer(0)
	require.NoError(t, err)
	d := EarlyEveningRollaway()
	want, err := d.Compose()
	require.NoError(t, err)
	got, err := c.Compose(d)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	again, err := c.Compose(d)
	require.NoError(t, err)
	assert.Equal(t, want, again)
	hits, misses := c.Stats()
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(1), misses)
}

func TestComposerResumesAfterEdit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "contra.choreo")
	defer teardown()
	//
	c, err := NewComposer(64)
	require.NoError(t, err)
	d := EarlyEveningRollaway()
	_, err = c.Compose(d)
	require.NoError(t, err)
	edited := d
	edited.Calls = append(append([]Call(nil), d.Calls[:len(d.Calls)-1]...), Do(figures.DoSiDo{With: yourPartner}))
	want, err := edited.Compose()
	require.NoError(t, err)
	got, err := c.Compose(edited)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	hits, _ := c.Stats()
	assert.Equal(t, int64(1), hits)
	// results handed out must not alias the cache
	got[got.IDs()[0]][0].Beats = 1000
	again, err := c.Compose(edited)
	require.NoError(t, err)
	assert.Equal(t, want, again)
}

func TestComposerFailure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "contra.choreo")
	defer teardown()
	//
	c, err := NewComposer(8)
	require.NoError(t, err)
	d := EarlyEveningRollaway()
	d.Calls = append(d.Calls[:2:2], Do(figures.Swing{With: yourPartner}))
	_, err = c.Compose(d)
	var cerr *CompositionError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, 2, cerr.Index)
	c.Purge()
}

func TestComposerConcurrentUse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "contra.choreo")
	defer teardown()
	//
	// tracing to t from several goroutines races with the adapter
	tracing.Select("contra.choreo").SetTraceLevel(tracing.LevelError)
	c, err := NewComposer(16)
	require.NoError(t, err)
	d := EarlyEveningRollaway()
	want, err := d.Compose()
	require.NoError(t, err)
	var wg sync.WaitGroup
	results := make([]error, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got, err := c.Compose(d)
			if err == nil && !assert.ObjectsAreEqual(want, got) {
				err = errors.New("composer result differs")
			}
			results[i] = err
		}(i)
	}
	wg.Wait()
	for _, err := range results {
		assert.NoError(t, err)
	}
}
