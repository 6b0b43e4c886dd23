package choreo

import (
	"fmt"

	"github.com/speezepearson/contravis/lattice"
	"github.com/speezepearson/contravis/relation"
)

// CompositionError is returned by Compose if a call cannot be danced.
type CompositionError struct {
	Msg     string            // description of what went wrong
	Partial lattice.Timelines // timelines up to and excluding the failing call
	Call    Call              // the failing call
	Index   int               // position of the failing call, starting at 0
	Err     error             // the underlying error
}

func (e *CompositionError) Error() string {
	return fmt.Sprintf("call #%d (%s): %s", e.Index+1, e.Call, e.Msg)
}

// Unwrap gives access to the underlying error, usually a *lattice.MotionError.
func (e *CompositionError) Unwrap() error {
	return e.Err
}

// Compose dances calls from a starting formation and returns the timeline of
// every block-0 dancer. Every dancer's timeline lasts exactly as long as the
// calls' beats add up to.
//
// An unknown formation is reported as lattice.ErrUnknownFormation. All other
// failures are of type *CompositionError.
func Compose(formation lattice.FormationID, calls []Call) (lattice.Timelines, error) {
	initial, err := lattice.Initial(formation)
	if err != nil {
		return nil, err
	}
	r := newRun(initial)
	if err := r.danceAll(calls, 0); err != nil {
		return nil, err
	}
	return r.tls, nil
}

// run holds the state of one composition in progress.
type run struct {
	initial lattice.Snapshot
	tls     lattice.Timelines
}

func newRun(initial lattice.Snapshot) *run {
	return &run{initial: initial, tls: make(lattice.Timelines, len(lattice.Slots))}
}

// danceAll dances calls, the first of which has the given index in the dance.
func (r *run) danceAll(calls []Call, first int) error {
	for i, c := range calls {
		if err := r.dance(c); err != nil {
			tracer().Infof("composition stops at call #%d (%s): %v", first+i+1, c, err)
			return &CompositionError{
				Msg:     err.Error(),
				Partial: r.tls.Clone(),
				Call:    c,
				Index:   first + i,
				Err:     err,
			}
		}
	}
	return nil
}

// current is the state of all dancers after the calls danced so far.
func (r *run) current() lattice.Snapshot {
	s := r.initial.Clone()
	for slot, d := range r.tls.Current() {
		s[slot] = d
	}
	return s
}

// dance applies one call. It leaves the timelines untouched if the call fails.
func (r *run) dance(c Call) error {
	tracer().Debugf("dancing %s", c)
	switch c := c.(type) {
	case FigureCall:
		return r.figure(c)
	case Facing:
		return r.face(c.Toward)
	case Relabel:
		return r.relabel()
	}
	return fmt.Errorf("choreo: unknown call type %T", c)
}

func (r *run) figure(c FigureCall) error {
	cur := r.current()
	out, err := c.Figure.Keyframes(cur.Clone())
	if err != nil {
		return err
	}
	declared := c.Figure.Duration()
	add := make(lattice.Timelines, len(lattice.Slots))
	for _, slot := range lattice.Slots {
		id := lattice.ID(slot, 0)
		tl := out[id]
		produced := tl.Beats()
		if produced > declared+lattice.Eps {
			return lattice.Overrun(id, produced, declared)
		}
		if produced < declared-lattice.Eps {
			end, ok := tl.Last()
			if !ok {
				end = cur[slot]
			}
			tl = append(tl, lattice.Keyframe{Beats: declared - produced, End: end})
		}
		add[id] = tl
	}
	for id, tl := range add {
		r.tls[id] = append(r.tls[id], tl...)
	}
	return nil
}

// face re-orients the final keyframe of every dancer. Dancers without any
// keyframe yet get a zero-beat keyframe holding their starting state.
func (r *run) face(dir relation.Direction) error {
	cur := r.current()
	headings := make(map[lattice.Slot]lattice.Turns, len(lattice.Slots))
	for _, slot := range lattice.Slots {
		h, err := relation.Heading(cur, lattice.ID(slot, 0), dir, relation.Options{})
		if err != nil {
			return err
		}
		headings[slot] = h
	}
	for _, slot := range lattice.Slots {
		id := lattice.ID(slot, 0)
		tl := r.tls[id]
		if len(tl) == 0 {
			tl = lattice.Timeline{{Beats: 0, End: cur[slot]}}
		}
		last := &tl[len(tl)-1]
		last.End.Facing = lattice.Align(headings[slot], last.End.Facing)
		r.tls[id] = tl
	}
	return nil
}

// relabel appends a zero-beat keyframe carrying the new neighbor labels.
func (r *run) relabel() error {
	next, err := relation.Relabel(r.current())
	if err != nil {
		return err
	}
	for _, slot := range lattice.Slots {
		id := lattice.ID(slot, 0)
		r.tls[id] = append(r.tls[id], lattice.Keyframe{Beats: 0, End: next[slot]})
	}
	return nil
}
