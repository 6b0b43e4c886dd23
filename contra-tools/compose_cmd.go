package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/speezepearson/contravis/choreo"
	"github.com/speezepearson/contravis/internal/danceload"
	"github.com/speezepearson/contravis/lattice"
	"github.com/thatisuday/commando"
)

func runComposeCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(flags)
	df, err := danceload.LoadDance(mustArg(args, "dance"))
	if err != nil {
		fatalf("%v", err)
	}
	d := *df.Dance
	initial, err := lattice.Initial(d.Formation)
	if err != nil {
		fatalf("%v", err)
	}
	tls, err := d.Compose()
	failed := err != nil
	if failed {
		var cerr *choreo.CompositionError
		if !errors.As(err, &cerr) {
			fatalf("%v", err)
		}
		pterm.Error.Println(cerr.Error())
		tls = cerr.Partial
	}
	if beat, ok := optionalBeat(flags["beat"], "beat"); ok {
		printPositions(fmt.Sprintf("beat %g", beat), tls.Sample(initial, beat))
	} else {
		printPositions("start", initial)
		var beat float64
		for i, c := range d.Calls {
			if beat += c.Beats(); beat > tls.Beats()+lattice.Eps {
				break
			}
			printPositions(fmt.Sprintf("#%d %s, beat %g", i+1, c, beat), tls.Sample(initial, beat))
		}
	}
	if failed {
		os.Exit(1)
	}
}

func printPositions(title string, s lattice.Snapshot) {
	pterm.DefaultSection.Println(title)
	data := [][]string{
		{"Dancer", "Role", "X", "Y", "Facing", "Neighbor"},
	}
	for _, slot := range lattice.Slots {
		d := s[slot]
		data = append(data, []string{
			slot.String(),
			d.Role.String(),
			fmt.Sprintf("%.3g", d.Pos.X),
			fmt.Sprintf("%.3g", d.Pos.Y),
			fmt.Sprintf("%.4g", float64(d.Facing)),
			d.Neighbor.String(),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func runCheckCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(flags)
	patterns := splitCSVSpace(mustArg(args, "dances"))
	results, err := danceload.LoadAll(patterns...)
	if err != nil {
		fatalf("%v", err)
	}
	if len(results) == 0 {
		fatalf("no dance files match %v", patterns)
	}
	opts := choreo.CheckOptions{ExpectedBeats: float64(mustFlagInt(flags["beats"], "beats"))}
	data, invalid := checkTable(results, opts)
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	if invalid > 0 {
		pterm.Error.Printf("%d of %d dances are not valid\n", invalid, len(results))
		os.Exit(1)
	}
	pterm.Success.Printf("all %d dances are valid\n", len(results))
}

// checkTable checks every loaded dance and tabulates the outcome. It returns
// the table together with the number of files which failed to load or check.
func checkTable(results []danceload.Result, opts choreo.CheckOptions) ([][]string, int) {
	data := [][]string{
		{"File", "Dance", "Beats", "Result"},
	}
	invalid := 0
	for _, r := range results {
		if r.Err != nil {
			invalid++
			data = append(data, []string{r.Path, "", "", r.Err.Error()})
			continue
		}
		result := "valid"
		if reason, bad := opts.Check(*r.Dance).Unwrap(); bad {
			invalid++
			result = reason
		}
		data = append(data, []string{
			r.Path,
			r.Dance.Name,
			fmt.Sprintf("%g", r.Dance.Beats()),
			result,
		})
	}
	return data, invalid
}
