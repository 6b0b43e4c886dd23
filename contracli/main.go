package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"github.com/speezepearson/contravis/choreo"
	"github.com/speezepearson/contravis/lattice"
)

// tracer traces with key 'contra.cli'
func tracer() tracing.Trace {
	return tracing.Select("contra.cli")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":    "go",
		"trace.contra.cli":   "Info",
		"trace.contra.tools": "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	dancefile := flag.String("dance", "", "Dance file to load")
	formation := flag.String("formation", string(lattice.Improper), "Formation of a new dance")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError)  // will set the correct level later
	pterm.Info.Println("Welcome to Contra CLI") // colored welcome message
	//
	// set up REPL
	repl, err := readline.New("contra > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	composer, err := choreo.NewComposer(choreo.DefaultCacheSize)
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl, composer: composer}
	//
	// start with a dance from a file or an empty one
	if *dancefile != "" {
		if err := intp.load(*dancefile); err != nil {
			tracer().Errorf(err.Error())
			os.Exit(4)
		}
	} else if intp.dance.Formation, err = lattice.ParseFormation(*formation); err != nil {
		tracer().Errorf(err.Error())
		os.Exit(4)
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl     *readline.Instance
	composer *choreo.Composer
	dance    choreo.Dance
	file     string            // file the dance was loaded from or saved to
	tls      lattice.Timelines // result of the last successful compose, if any
}

func (intp *Intp) String() string {
	if intp == nil {
		return "()"
	}
	name := intp.dance.Name
	if name == "" {
		name = "<unnamed>"
	}
	return fmt.Sprintf("( %s, %s, %d calls, %g beats )", name, intp.dance.Formation,
		len(intp.dance.Calls), intp.dance.Beats())
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd := parseCommand(line)
		err, quit := intp.execute(cmd)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

type Op struct {
	code int
	arg  string
}

type Command struct {
	count int
	op    [32]Op
}

const NOOP = -1
const (
	// op-code QUIT will not have arguments
	QUIT int = iota
	// op-codes below may have arguments
	HELP
	NEW
	FORMATION
	NAME
	ADD
	INSERT
	DELETE
	LIST
	COMPOSE
	CHECK
	AT
	LOAD
	SAVE
	CATALOGUE
)

var opMap = map[string]int{
	"quit":      QUIT,
	"help":      HELP,
	"new":       NEW,
	"formation": FORMATION,
	"name":      NAME,
	"add":       ADD,
	"insert":    INSERT,
	"del":       DELETE,
	"list":      LIST,
	"compose":   COMPOSE,
	"check":     CHECK,
	"at":        AT,
	"load":      LOAD,
	"save":      SAVE,
	"catalogue": CATALOGUE,
}

var opNames = []string{
	"quit",
	"help",
	"new",
	"formation",
	"name",
	"add",
	"insert",
	"del",
	"list",
	"compose",
	"check",
	"at",
	"load",
	"save",
	"catalogue",
}

// parseCommand splits a line into steps separated by ';', e.g.
// "add balance the ring; compose". The first word of a step is the op-code,
// the rest of the step is its argument. Unknown op-codes ask for help on the
// step.
func parseCommand(line string) *Command {
	command := &Command{}
	for i := range command.op {
		command.op[i].code = NOOP
	}
	for _, step := range strings.Split(line, ";") {
		step = strings.TrimSpace(step)
		if step == "" {
			continue
		}
		if command.count == len(command.op) {
			tracer().Errorf("too many steps, ignoring '%s'", step)
			break
		}
		word, arg, _ := strings.Cut(step, " ")
		op := &command.op[command.count]
		code, ok := opMap[strings.ToLower(word)]
		if !ok {
			code, arg = HELP, step
		}
		op.code, op.arg = code, strings.TrimSpace(arg)
		command.count++
		if op.arg == "" {
			tracer().Debugf("%s", opNames[op.code])
		} else {
			tracer().Debugf("%s: '%s'", opNames[op.code], op.arg)
		}
		if op.code == QUIT {
			break
		}
	}
	return command
}

var commandFn = map[int]func(*Intp, *Op) (error, bool){
	QUIT:      quitOp,
	HELP:      helpOp,
	NEW:       newOp,
	FORMATION: formationOp,
	NAME:      nameOp,
	ADD:       addOp,
	INSERT:    insertOp,
	DELETE:    deleteOp,
	LIST:      listOp,
	COMPOSE:   composeOp,
	CHECK:     checkOp,
	AT:        atOp,
	LOAD:      loadOp,
	SAVE:      saveOp,
	CATALOGUE: catalogueOp,
}

func (intp *Intp) execute(cmd *Command) (err error, stop bool) {
	tracer().Debugf("cmd = %v", cmd.op[:cmd.count])
	for _, c := range cmd.op {
		if c.code == NOOP {
			break
		}
		f, ok := commandFn[c.code]
		if !ok {
			pterm.Error.Printf("unknown command code: %d\n", c.code)
			return nil, false
		}
		err, stop = f(intp, &c)
		if err != nil {
			pterm.Error.Println(err)
			return
		}
		if stop {
			return
		}
	}
	return
}

func quitOp(intp *Intp, op *Op) (error, bool) {
	pterm.Println("Goodbye!")
	return nil, true
}

var ErrNoCalls = errors.New("dance has no calls")
var ErrNotComposed = errors.New("dance has not been composed")

// edited drops the timelines of the last compose, which no longer fit the
// dance.
func (intp *Intp) edited() {
	intp.tls = nil
}

func (op *Op) noArg() bool {
	return op.arg == ""
}

func (op *Op) hasArg() (string, bool) {
	if op.arg == "" {
		return "", false
	}
	return op.arg, true
}
