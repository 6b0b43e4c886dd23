package main

import (
	"context"
	"os"
	"os/signal"
	"strings"

	"github.com/pterm/pterm"
	"github.com/speezepearson/contravis/choreo"
	"github.com/speezepearson/contravis/internal/danceload"
	"github.com/speezepearson/contravis/lattice"
	"github.com/thatisuday/commando"
)

func runWatchCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(flags)
	path := mustArg(args, "dance")
	outPath := strings.TrimSpace(mustFlagString(flags["output"], "output"))
	if outPath == "-" {
		outPath = ""
	}
	composer, err := choreo.NewComposer(choreo.DefaultCacheSize)
	if err != nil {
		fatalf("%v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	pterm.Info.Printf("watching %s, stop with <ctrl>C\n", path)
	err = danceload.Watch(ctx, path, func(df *danceload.DanceFile, err error) {
		report(composer, df, err, outPath)
	})
	if err != nil {
		fatalf("%v", err)
	}
}

// report composes and checks a freshly loaded dance and tells whether it is
// valid. Compositions share the composer's cache, so editing the end of a long
// dance only composes the calls after the edit.
func report(composer *choreo.Composer, df *danceload.DanceFile, err error, outPath string) bool {
	if err != nil {
		pterm.Error.Println(err)
		return false
	}
	d := *df.Dance
	tls, err := composer.Compose(d)
	if err != nil {
		pterm.Error.Println(err)
		return false
	}
	reason, bad := choreo.CheckOptions{}.CheckComposed(d, tls).Unwrap()
	if bad {
		pterm.Warning.Printf("%s: %s\n", d.Name, reason)
	} else {
		pterm.Success.Printf("%s: valid, %g beats\n", d.Name, tls.Beats())
	}
	hits, misses := composer.Stats()
	tracer().Debugf("composer cache: %d hits, %d misses", hits, misses)
	if outPath == "" {
		return !bad
	}
	initial, err := lattice.Initial(d.Formation)
	if err != nil {
		pterm.Error.Println(err)
		return false
	}
	if err := writePNG(renderFloor(tls.Sample(initial, tls.Beats()), 60), outPath); err != nil {
		pterm.Error.Println(err)
	}
	return !bad
}
