package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/speezepearson/contravis/choreo"
	"github.com/speezepearson/contravis/internal/danceload"
	"github.com/speezepearson/contravis/lattice"
)

func newOp(intp *Intp, op *Op) (error, bool) {
	formation := intp.dance.Formation
	if f, ok := op.hasArg(); ok {
		var err error
		if formation, err = lattice.ParseFormation(f); err != nil {
			return err, false
		}
	}
	intp.dance = choreo.Dance{Formation: formation}
	intp.file = ""
	intp.edited()
	return nil, false
}

func formationOp(intp *Intp, op *Op) (error, bool) {
	if op.noArg() {
		pterm.Printf("formation is %s, known formations are %v\n", intp.dance.Formation, lattice.Formations())
		return nil, false
	}
	f, err := lattice.ParseFormation(op.arg)
	if err != nil {
		return err, false
	}
	intp.dance.Formation = f
	intp.edited()
	tracer().Infof("setting formation: %s", f)
	return nil, false
}

func nameOp(intp *Intp, op *Op) (error, bool) {
	intp.dance.Name = op.arg
	return nil, false
}

// lookup finds a call in the catalogue, telling the user about near misses.
func lookup(query string) (choreo.Call, error) {
	if query == "" {
		return nil, errors.New("which call? try 'catalogue'")
	}
	found := choreo.Search(query)
	if len(found) == 0 {
		return nil, fmt.Errorf("no call matches '%s'", query)
	}
	if len(found) > 1 {
		tracer().Infof("'%s' also matches %d other calls", query, len(found)-1)
	}
	pterm.Printf("%s\n", found[0].Text)
	return found[0].Call, nil
}

func addOp(intp *Intp, op *Op) (error, bool) {
	c, err := lookup(op.arg)
	if err != nil {
		return err, false
	}
	intp.dance.Calls = append(intp.dance.Calls, c)
	intp.edited()
	return nil, false
}

// insertOp inserts a call before a position, e.g. "insert 3 balance the ring".
func insertOp(intp *Intp, op *Op) (error, bool) {
	pos, rest, _ := strings.Cut(op.arg, " ")
	i, err := callIndex(pos, len(intp.dance.Calls)+1)
	if err != nil {
		return err, false
	}
	c, err := lookup(strings.TrimSpace(rest))
	if err != nil {
		return err, false
	}
	calls := append([]choreo.Call{}, intp.dance.Calls[:i]...)
	calls = append(calls, c)
	intp.dance.Calls = append(calls, intp.dance.Calls[i:]...)
	intp.edited()
	return nil, false
}

// deleteOp removes a call by position, or the last call if no position is
// given.
func deleteOp(intp *Intp, op *Op) (error, bool) {
	n := len(intp.dance.Calls)
	if n == 0 {
		return ErrNoCalls, false
	}
	i := n - 1
	if pos, ok := op.hasArg(); ok {
		var err error
		if i, err = callIndex(pos, n); err != nil {
			return err, false
		}
	}
	pterm.Printf("removing #%d %s\n", i+1, intp.dance.Calls[i])
	intp.dance.Calls = append(intp.dance.Calls[:i:i], intp.dance.Calls[i+1:]...)
	intp.edited()
	return nil, false
}

// callIndex converts a 1-based position from the user to a 0-based index
// below n.
func callIndex(pos string, n int) (int, error) {
	i, err := strconv.Atoi(pos)
	if err != nil {
		return 0, fmt.Errorf("call position not numeric: %v", pos)
	}
	if i < 1 || i > n {
		return 0, fmt.Errorf("call position out of range: %d", i)
	}
	return i - 1, nil
}

func listOp(intp *Intp, op *Op) (error, bool) {
	if len(intp.dance.Calls) == 0 {
		return ErrNoCalls, false
	}
	printCalls(intp.dance)
	return nil, false
}

func composeOp(intp *Intp, op *Op) (error, bool) {
	tls, err := intp.composer.Compose(intp.dance)
	if err != nil {
		var cerr *choreo.CompositionError
		if errors.As(err, &cerr) {
			pterm.Warning.Printf("stopped after %g beats\n", cerr.Partial.Beats())
			intp.tls = cerr.Partial
		}
		return err, false
	}
	intp.tls = tls
	hits, misses := intp.composer.Stats()
	tracer().Debugf("composer cache: %d hits, %d misses", hits, misses)
	pterm.Success.Printf("composed %g beats\n", tls.Beats())
	return nil, false
}

func checkOp(intp *Intp, op *Op) (error, bool) {
	opts := choreo.CheckOptions{}
	if b, ok := op.hasArg(); ok {
		beats, err := strconv.ParseFloat(b, 64)
		if err != nil {
			return fmt.Errorf("expected beats not numeric: %v", b), false
		}
		opts.ExpectedBeats = beats
	}
	if reason, bad := opts.Check(intp.dance).Unwrap(); bad {
		pterm.Warning.Println(reason)
		return nil, false
	}
	pterm.Success.Println("the dance is valid")
	return nil, false
}

// atOp shows where every dancer is at a beat of the last composition, or at
// its end.
func atOp(intp *Intp, op *Op) (error, bool) {
	if intp.tls == nil {
		return ErrNotComposed, false
	}
	beat := intp.tls.Beats()
	if b, ok := op.hasArg(); ok {
		var err error
		if beat, err = strconv.ParseFloat(b, 64); err != nil {
			return fmt.Errorf("beat not numeric: %v", b), false
		}
	}
	initial, err := lattice.Initial(intp.dance.Formation)
	if err != nil {
		return err, false
	}
	printSnapshot(beat, intp.tls.Sample(initial, beat))
	return nil, false
}

func loadOp(intp *Intp, op *Op) (error, bool) {
	path, ok := op.hasArg()
	if !ok {
		return errors.New("load needs a file name"), false
	}
	return intp.load(path), false
}

func (intp *Intp) load(path string) error {
	df, err := danceload.LoadDance(path)
	if err != nil {
		return err
	}
	intp.dance, intp.file = *df.Dance, df.Path
	intp.edited()
	tracer().Infof("loaded %q, %d calls", intp.dance.Name, len(intp.dance.Calls))
	return nil
}

func saveOp(intp *Intp, op *Op) (error, bool) {
	path := intp.file
	if p, ok := op.hasArg(); ok {
		path = p
	}
	if path == "" {
		return errors.New("save needs a file name"), false
	}
	if err := danceload.SaveDance(path, intp.dance); err != nil {
		return err, false
	}
	intp.file = path
	tracer().Infof("saved to %s", path)
	return nil, false
}

func catalogueOp(intp *Intp, op *Op) (error, bool) {
	entries := choreo.Search(op.arg)
	if len(entries) == 0 {
		return fmt.Errorf("no call matches '%s'", op.arg), false
	}
	printCatalogue(entries)
	return nil, false
}
