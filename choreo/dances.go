package choreo

import (
	"github.com/speezepearson/contravis/figures"
	"github.com/speezepearson/contravis/lattice"
	"github.com/speezepearson/contravis/relation"
)

// EarlyEveningRollaway returns "Early Evening Rollaway" (contradb.com/dances/2593),
// improper:
//
//	A1  16  neighbors balance & swing
//	A2   8  right left through
//	     8  robins chain
//	B1   4  balance the ring
//	     4  larks roll away neighbors with a half sashay
//	     8  partners swing
//	B2   8  circle left 3 places
//	     2  pass through
//	     8  next neighbors do si do once
func EarlyEveningRollaway() Dance {
	return Dance{
		Name:      "Early Evening Rollaway",
		Formation: lattice.Improper,
		Calls: []Call{
			Do(figures.Balance{With: yourNeighbor}),
			// balance and swing is 16 beats
			Do(figures.Swing{Beats: 12, With: yourNeighbor}),
			Do(figures.RightLeftThrough{}),
			Do(figures.Chain{Chainer: lattice.Robin, To: yourPartner}),
			Do(figures.RingBalance{}),
			Do(figures.RollAway{With: yourNeighbor, Roller: lattice.Lark}),
			Facing{Toward: relation.TowardPartner},
			Do(figures.Swing{With: yourPartner}),
			Do(figures.Circle{Hand: figures.Left, Places: 3}),
			Do(figures.PassThrough{}),
			Do(figures.DoSiDo{With: yourNeighbor.WithOffset(1)}),
		},
	}
}
