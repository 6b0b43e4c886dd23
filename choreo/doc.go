/*
Package choreo composes sequences of calls into per-dancer timelines.

A Dance is a starting formation plus an ordered list of calls. A call is either
a figure (see package figures) or one of two zero-duration directives: Facing
re-orients every dancer at the end of the previous figure, Relabel tells every
dancer that whoever stands in front of them is their neighbor from now on.

Compose runs the calls one after another. Every call sees the state in which
the previous one left the dancers. A figure taking fewer beats than it declares
is padded with a rest; a figure taking more is a bug in the figure. If any call
fails, composition stops and a *CompositionError carries the timelines as far as
they could be computed, together with the failing call.

CheckValidity composes a whole dance and checks that it can be repeated all
night long: 64 beats, everybody back on their own side of the set, everybody
progressed by a whole number of places.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © the contravis authors
*/
package choreo

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'contra.choreo'
func tracer() tracing.Trace {
	return tracing.Select("contra.choreo")
}
