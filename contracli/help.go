package main

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/speezepearson/contravis/choreo"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	help(op.arg)
	return nil, false
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "call", "calls", "add", "insert":
		pterm.Info.Println("Calls")
		pterm.Println(`
	Calls are looked up in the catalogue by abbreviation. Every character of
	the query has to follow its predecessor, or start a new word:
	    add rlt             right left through
	    add cl3             circle left 3
	    add swing your n    swing your neighbor
	    insert 2 ring       balance the ring, before the current call #2
	'catalogue <query>' lists every call matching a query.`)
	case "compose", "at", "check":
		pterm.Info.Println("Composing")
		pterm.Println(`
	compose        dance all calls, stopping at the first one which fails
	at [beat]      where everybody is at a beat of the last compose
	check [beats]  whether the dance is valid and has the expected length`)
	case "file", "files", "load", "save":
		pterm.Info.Println("Files")
		pterm.Println(`
	Dances are stored as YAML, one call per list entry:
	    name: Early Evening Rollaway
	    formation: improper
	    calls:
	        - call: balance
	          with: {kind: neighbor}
	        - call: swing
	          beats: 12
	          with: {kind: neighbor}
	Known calls are ` + strings.Join(choreo.CallNames(), ", ") + ".")
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	new [formation]        start a new dance
	formation [name]       show or set the formation
	name <text>            name the dance
	add <call>             append a call
	insert <n> <call>      insert a call before call #n
	del [n]                delete call #n or the last call
	list                   list the calls
	compose, at, check     see 'help compose'
	load <file>, save [f]  see 'help files'
	catalogue [query]      list known calls
	quit                   leave
	Steps may be joined by ';', e.g. 'add ring; compose; at'.`)
	}
}
