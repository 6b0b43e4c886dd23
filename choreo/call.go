package choreo

import (
	"fmt"

	"github.com/speezepearson/contravis/figures"
	"github.com/speezepearson/contravis/lattice"
	"github.com/speezepearson/contravis/relation"
)

// Call is one entry of a dance: a figure or a directive. The set of calls is
// closed; see Do, Facing and Relabel.
type Call interface {
	// Beats is the number of beats the call takes.
	Beats() float64
	String() string
	isCall()
}

// FigureCall dances a figure.
type FigureCall struct {
	Figure figures.Figure
}

// Do wraps a figure into a call.
func Do(f figures.Figure) FigureCall {
	return FigureCall{Figure: f}
}

func (c FigureCall) Beats() float64 { return c.Figure.Duration() }

func (c FigureCall) String() string {
	return fmt.Sprintf("%s (%g beats)", c.Figure.Name(), c.Figure.Duration())
}

func (FigureCall) isCall() {}

// Facing turns every dancer at the end of the previous call to face a
// direction. Positions do not change and no time passes.
type Facing struct {
	Toward relation.Direction `yaml:"toward"`
}

func (Facing) Beats() float64 { return 0 }

func (c Facing) String() string { return "end facing " + c.Toward.String() }

func (Facing) isCall() {}

// Relabel tells every dancer that whoever stands half a block ahead of them is
// their neighbor from now on.
type Relabel struct{}

func (Relabel) Beats() float64 { return 0 }

func (Relabel) String() string { return "you are now facing your new neighbor" }

func (Relabel) isCall() {}

// Dance is a named sequence of calls danced from a starting formation.
type Dance struct {
	Name      string
	Formation lattice.FormationID
	Calls     []Call
}

// Beats sums the declared beats of all calls.
func (d Dance) Beats() float64 {
	var b float64
	for _, c := range d.Calls {
		b += c.Beats()
	}
	return b
}

// Compose composes the dance. See the package-level function Compose.
func (d Dance) Compose() (lattice.Timelines, error) {
	return Compose(d.Formation, d.Calls)
}
