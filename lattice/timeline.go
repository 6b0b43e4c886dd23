package lattice

import (
	"fmt"
	"sort"
)

// Keyframe is one linear segment of a trajectory: the dancer travels from the
// end state of the previous keyframe to End within Beats.
type Keyframe struct {
	Beats float64
	End   DancerState
}

// Timeline is the sequence of keyframes of one dancer.
type Timeline []Keyframe

// Beats returns the summed duration of all keyframes.
func (tl Timeline) Beats() float64 {
	var b float64
	for _, kf := range tl {
		b += kf.Beats
	}
	return b
}

// Last returns the end state of the final keyframe, if any.
func (tl Timeline) Last() (DancerState, bool) {
	if len(tl) == 0 {
		return DancerState{}, false
	}
	return tl[len(tl)-1].End, true
}

// At samples the timeline at a given beat, interpolating linearly between
// keyframes. start is the state before the first keyframe. Beats outside the
// timeline are clamped. When several keyframes end at beat, as after a
// zero-beat relabelling, the last of them wins.
func (tl Timeline) At(start DancerState, beat float64) DancerState {
	prev, t := start, 0.0
	for _, kf := range tl {
		end := t + kf.Beats
		if beat < end-Eps {
			if beat <= t || kf.Beats <= 0 {
				return prev
			}
			f := (beat - t) / kf.Beats
			s := kf.End
			s.Pos = prev.Pos.Lerp(kf.End.Pos, f)
			s.Facing = prev.Facing + Turns(f)*(kf.End.Facing-prev.Facing)
			return s
		}
		t = end
		prev = kf.End
	}
	return prev
}

// Timelines maps every dancer of block 0 to its timeline.
type Timelines map[DancerID]Timeline

// IDs returns the dancer identities of tls in canonical order.
func (tls Timelines) IDs() []DancerID {
	ids := make([]DancerID, 0, len(tls))
	for id := range tls {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if ids[i].Block != ids[j].Block {
			return ids[i].Block < ids[j].Block
		}
		return ids[i].Slot < ids[j].Slot
	})
	return ids
}

// Clone returns a deep copy of tls. Timelines returned from composition are
// never shared with internal state, but callers editing them in place should
// clone first.
func (tls Timelines) Clone() Timelines {
	c := make(Timelines, len(tls))
	for id, tl := range tls {
		c[id] = append(Timeline(nil), tl...)
	}
	return c
}

// Current returns the end state of every dancer which has at least one
// keyframe.
func (tls Timelines) Current() Snapshot {
	s := make(Snapshot, len(tls))
	for id, tl := range tls {
		if d, ok := tl.Last(); ok && id.Block == 0 {
			s[id.Slot] = d
		}
	}
	return s
}

// Sample returns the state of every block-0 dancer at a given beat. initial
// holds the states before the first keyframe; dancers without a timeline stay
// where initial puts them.
func (tls Timelines) Sample(initial Snapshot, beat float64) Snapshot {
	s := initial.Clone()
	for id, tl := range tls {
		if id.Block != 0 {
			continue
		}
		s[id.Slot] = tl.At(initial[id.Slot], beat)
	}
	return s
}

// Beats returns the duration of the longest timeline.
func (tls Timelines) Beats() float64 {
	var m float64
	for _, tl := range tls {
		if b := tl.Beats(); b > m {
			m = b
		}
	}
	return m
}

// --- Snapshots -------------------------------------------------------------

// Snapshot holds the states of the four block-0 dancers at one moment. All
// other dancers are translations of these.
type Snapshot map[Slot]DancerState

// Dancer materializes the state of any dancer on the floor.
func (s Snapshot) Dancer(id DancerID) (DancerState, error) {
	d, ok := s[id.Slot]
	if !ok {
		return DancerState{}, fmt.Errorf("lattice: no state for slot %s", id.Slot)
	}
	return d.Shifted(id.Block), nil
}

// Complete reports whether all four slots are present.
func (s Snapshot) Complete() bool {
	for _, slot := range Slots {
		if _, ok := s[slot]; !ok {
			return false
		}
	}
	return true
}

// ByDancer returns the snapshot keyed by dancer identity.
func (s Snapshot) ByDancer() map[DancerID]DancerState {
	m := make(map[DancerID]DancerState, len(s))
	for slot, d := range s {
		m[ID(slot, 0)] = d
	}
	return m
}

// Clone returns a copy of s.
func (s Snapshot) Clone() Snapshot {
	c := make(Snapshot, len(s))
	for k, v := range s {
		c[k] = v
	}
	return c
}
