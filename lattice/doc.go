/*
Package lattice models the dance floor of a contra dance as an infinitely
repeating lattice of dancers.

A set is a long column of couples. We lay it out with x running across the set
and y running along it, "up" being +y. One repeat unit of the lattice (a "block",
or hands-four) holds four dancers, one per Slot:

	L1, R1   the lark and robin progressing up the set
	L2, R2   the lark and robin progressing down the set

Block k is block 0 translated by k·Period along y. A dancer is therefore
identified by its slot and block index, see DancerID. Only the four block-0
states are ever stored (a Snapshot); every other dancer is materialized on demand
by translation.

Orientation is measured in Turns: 1.0 is a full rotation, 0 faces +x (across the
set from the left line) and 1/4 faces up. Turns are never wrapped, so that
"nearest equivalent heading" is a rounding operation, see Align.

Motion is described by keyframes: a Keyframe is a duration in beats plus the
dancer state at the end of that linear segment. A Timeline is the sequence of
keyframes of one dancer.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © the contravis authors
*/
package lattice

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'contra.lattice'
func tracer() tracing.Trace {
	return tracing.Select("contra.lattice")
}

// Period is the length of one block along the set.
const Period = 4.0

// Eps is the tolerance used when comparing beat counts and coordinates.
const Eps = 1e-9
