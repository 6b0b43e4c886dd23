package choreo

import (
	"crypto/sha256"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/speezepearson/contravis/lattice"
)

// DefaultCacheSize is the number of call prefixes a Composer remembers if
// not told otherwise.
const DefaultCacheSize = 256

// Composer composes dances, remembering the timelines of recently composed
// call prefixes. Editing the end of a long dance then only re-composes the
// calls after the edit. A Composer is safe for concurrent use.
type Composer struct {
	cache  *lru.Cache[string, lattice.Timelines]
	hits   atomic.Int64
	misses atomic.Int64
}

// NewComposer creates a Composer caching up to size prefixes. A non-positive
// size selects DefaultCacheSize.
func NewComposer(size int) (*Composer, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[string, lattice.Timelines](size)
	if err != nil {
		return nil, err
	}
	return &Composer{cache: cache}, nil
}

// Compose returns the same result as d.Compose().
func (c *Composer) Compose(d Dance) (lattice.Timelines, error) {
	keys, ok := prefixKeys(d)
	if !ok {
		return d.Compose()
	}
	initial, err := lattice.Initial(d.Formation)
	if err != nil {
		return nil, err
	}
	r := newRun(initial)
	start := 0
	for k := len(d.Calls); k > 0; k-- {
		if tls, ok := c.cache.Get(keys[k]); ok {
			r.tls, start = tls.Clone(), k
			break
		}
	}
	if start > 0 {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	tracer().Debugf("composer resumes %q after %d of %d calls", d.Name, start, len(d.Calls))
	for i := start; i < len(d.Calls); i++ {
		if err := r.danceAll(d.Calls[i:i+1], i); err != nil {
			return nil, err
		}
		c.cache.Add(keys[i+1], r.tls.Clone())
	}
	return r.tls, nil
}

// Stats reports how many compositions could resume from a cached prefix.
func (c *Composer) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

// Purge forgets all cached prefixes.
func (c *Composer) Purge() {
	c.cache.Purge()
}

// prefixKeys returns one key per call prefix: keys[k] identifies the
// formation together with the first k calls.
func prefixKeys(d Dance) ([]string, bool) {
	h := sha256.New()
	h.Write([]byte(d.Formation))
	keys := make([]string, 0, len(d.Calls)+1)
	keys = append(keys, string(h.Sum(nil)))
	for _, call := range d.Calls {
		b, err := EncodeCall(call)
		if err != nil {
			tracer().Debugf("composer cannot key call %s: %v", call, err)
			return nil, false
		}
		h.Write([]byte{0})
		h.Write(b)
		keys = append(keys, string(h.Sum(nil)))
	}
	return keys, true
}
