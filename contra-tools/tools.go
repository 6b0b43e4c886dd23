package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/thatisuday/commando"
)

func tracer() tracing.Trace {
	return tracing.Select("contra.tools")
}

func main() {
	commando.
		SetExecutableName("contra-tools").
		SetVersion("v0.0.1").
		SetDescription("CLI for composing, checking and viewing contra dances.")

	commando.
		Register(nil).
		AddFlag("verbose,V", "display additional output", commando.Bool, nil)

	commando.
		Register("compose").
		SetDescription("Compose a dance file and print where everybody is after each call.").
		SetShortDescription("compose a dance").
		AddArgument("dance", "dance file path (YAML or JSON)", "").
		AddFlag("beat,b", "only print positions at this beat", commando.String, "-").
		AddFlag("verbose,V", "display additional output", commando.Bool, nil).
		SetAction(runComposeCommand)

	commando.
		Register("check").
		SetDescription("Check whether dances are valid, repeatable 64-beat dances.").
		SetShortDescription("check dances").
		AddArgument("dances...", "dance files or glob patterns (e.g. dances/**/*.yaml)", "").
		AddFlag("beats,B", "expected length of each dance", commando.Int, 64).
		AddFlag("verbose,V", "display additional output", commando.Bool, nil).
		SetAction(runCheckCommand)

	commando.
		Register("view").
		SetDescription("Render the floor at one beat of a dance to a PNG image.").
		SetShortDescription("dance to image").
		AddArgument("dance", "dance file path (YAML or JSON)", "").
		AddFlag("beat,b", "beat to render", commando.String, "0").
		AddFlag("output,o", "output PNG file", commando.String, "contra-tools-view.png").
		AddFlag("scale,s", "pixels per floor unit", commando.Int, 60).
		AddFlag("verbose,V", "display additional output", commando.Bool, nil).
		SetAction(runViewCommand)

	commando.
		Register("watch").
		SetDescription("Check a dance file again every time it changes.").
		SetShortDescription("watch a dance").
		AddArgument("dance", "dance file path (YAML or JSON)", "").
		AddFlag("output,o", "also render the final beat to this PNG file", commando.String, "-").
		AddFlag("verbose,V", "display additional output", commando.Bool, nil).
		SetAction(runWatchCommand)

	commando.Parse(nil)
}

// setupTracing routes tracing to the Go logger, at level Error unless
// --verbose is set.
func setupTracing(flags map[string]commando.FlagValue) {
	level := "Error"
	if v, ok := flags["verbose"]; ok && mustFlagBool(v, "verbose") {
		level = "Debug"
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":     "go",
		"trace.contra.tools":  level,
		"trace.contra.choreo": level,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fatalf("cannot configure tracing: %v", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
}

func mustArg(args map[string]commando.ArgValue, name string) string {
	v := strings.TrimSpace(args[name].Value)
	if v == "" {
		fatalf("%s is required", name)
	}
	return v
}

// splitCSVSpace splits a variadic argument, which commando joins by comma.
func splitCSVSpace(list string) []string {
	return strings.FieldsFunc(list, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}

// optionalBeat parses a beat flag, where "-" stands for no beat.
func optionalBeat(flag commando.FlagValue, name string) (float64, bool) {
	s := strings.TrimSpace(mustFlagString(flag, name))
	if s == "" || s == "-" {
		return 0, false
	}
	b, err := strconv.ParseFloat(s, 64)
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b, true
}

func mustFlagString(flag commando.FlagValue, name string) string {
	s, err := flag.GetString()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return s
}

func mustFlagInt(flag commando.FlagValue, name string) int {
	n, err := flag.GetInt()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return n
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "contra-tools: "+format+"\n", args...)
	os.Exit(1)
}
