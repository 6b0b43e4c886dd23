package main

import (
	"fmt"
	"math"

	"github.com/pterm/pterm"
	"github.com/speezepearson/contravis/choreo"
	"github.com/speezepearson/contravis/lattice"
)

func printCalls(d choreo.Dance) {
	data := [][]string{
		{"#", "Beat", "Beats", "Call"},
	}
	var beat float64
	for i, c := range d.Calls {
		data = append(data, []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%g", beat),
			fmt.Sprintf("%g", c.Beats()),
			c.String(),
		})
		beat += c.Beats()
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printSnapshot(beat float64, s lattice.Snapshot) {
	pterm.Printf("beat %g\n", beat)
	data := [][]string{
		{"Dancer", "Role", "Position", "Facing", "Neighbor"},
	}
	for _, slot := range lattice.Slots {
		d, ok := s[slot]
		if !ok {
			continue
		}
		data = append(data, []string{
			slot.String(),
			d.Role.String(),
			d.Pos.String(),
			formatFacing(d.Facing),
			d.Neighbor.String(),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// formatFacing names the direction for facings which are a multiple of a
// quarter turn.
func formatFacing(t lattice.Turns) string {
	compass := [...]string{"right", "up", "left", "down"}
	if q := float64(t) * 4; q == math.Trunc(q) {
		n := int(q)
		return fmt.Sprintf("%.4g (%s)", float64(t), compass[((n%4)+4)%4])
	}
	return fmt.Sprintf("%.4g", float64(t))
}

func printCatalogue(entries []choreo.Entry) {
	data := [][]string{
		{"Call", "Beats"},
	}
	for _, e := range entries {
		data = append(data, []string{e.Text, fmt.Sprintf("%g", e.Call.Beats())})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
