package choreo

import (
	"sort"
	"unicode"

	"github.com/speezepearson/contravis/figures"
	"github.com/speezepearson/contravis/lattice"
	"github.com/speezepearson/contravis/relation"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Entry is a call as a caller would announce it.
type Entry struct {
	Text string
	Call Call
}

// Title returns the call text in title case, for display.
func (e Entry) Title() string {
	return cases.Title(language.English).String(e.Text)
}

var (
	yourPartner  = relation.Of(relation.Partner)
	yourNeighbor = relation.Of(relation.Neighbor)
	yourOpposite = relation.Of(relation.Opposite)
)

func handPtr(h figures.Hand) *figures.Hand { return &h }

// catalogue is sorted by text.
var catalogue = sortEntries([]Entry{
	{"allemande left 1 1/2 with your neighbor", Do(figures.Allemande{With: yourNeighbor, Hand: figures.Left, Turns: 1.5})},
	{"allemande left once with your partner", Do(figures.Allemande{With: yourPartner, Hand: figures.Left})},
	{"allemande right 1 1/2 with your neighbor", Do(figures.Allemande{With: yourNeighbor, Hand: figures.Right, Turns: 1.5})},
	{"allemande right once with your partner", Do(figures.Allemande{With: yourPartner, Hand: figures.Right})},
	{"balance the ring", Do(figures.RingBalance{})},
	{"balance your neighbor", Do(figures.Balance{With: yourNeighbor})},
	{"balance your partner", Do(figures.Balance{With: yourPartner})},
	{"box the gnat with your neighbor", Do(figures.BoxTheGnat{With: yourNeighbor})},
	{"box the gnat with your partner", Do(figures.BoxTheGnat{With: yourPartner})},
	{"circle left 3", Do(figures.Circle{Hand: figures.Left, Places: 3})},
	{"circle left 4", Do(figures.Circle{Hand: figures.Left, Places: 4})},
	{"circle right 3", Do(figures.Circle{Hand: figures.Right, Places: 3})},
	{"circle right 4", Do(figures.Circle{Hand: figures.Right, Places: 4})},
	{"do si do 1 1/2 with your neighbor", Do(figures.DoSiDo{With: yourNeighbor, OneAndAHalf: true})},
	{"do si do your neighbor", Do(figures.DoSiDo{With: yourNeighbor})},
	{"do si do your next neighbor", Do(figures.DoSiDo{With: yourNeighbor.WithOffset(1)})},
	{"do si do your partner", Do(figures.DoSiDo{With: yourPartner})},
	{"face across", Facing{Toward: relation.Across}},
	{"face down the set", Facing{Toward: relation.DownTheSet}},
	{"face progressward", Facing{Toward: relation.Progressward}},
	{"face up the set", Facing{Toward: relation.UpTheSet}},
	{"face your neighbor", Facing{Toward: relation.TowardNeighbor}},
	{"face your partner", Facing{Toward: relation.TowardPartner}},
	{"form a wave", Do(figures.FormWave{})},
	{"full hey, robins pass right shoulders", Do(figures.Hey{With: yourOpposite, Full: true})},
	{"half hey, larks pass left shoulders", Do(figures.Hey{With: yourOpposite, Lead: lattice.Lark, Shoulder: figures.Left})},
	{"half hey, robins pass right shoulders", Do(figures.Hey{With: yourOpposite})},
	{"larks chain to your partner", Do(figures.Chain{Chainer: lattice.Lark, To: yourPartner})},
	{"larks roll away the robin on their right", Do(figures.RollAway{Side: handPtr(figures.Right), Roller: lattice.Lark})},
	{"larks roll away your neighbor", Do(figures.RollAway{With: yourNeighbor, Roller: lattice.Lark})},
	{"larks roll away your partner", Do(figures.RollAway{With: yourPartner, Roller: lattice.Lark})},
	{"pass through", Do(figures.PassThrough{})},
	{"petronella spin", Do(figures.PetronellaSpin{})},
	{"right left through", Do(figures.RightLeftThrough{})},
	{"robins chain to your neighbor", Do(figures.Chain{To: yourNeighbor})},
	{"robins chain to your partner", Do(figures.Chain{To: yourPartner})},
	{"robins roll away your neighbor", Do(figures.RollAway{With: yourNeighbor})},
	{"slice left", Do(figures.Slice{Hand: figures.Left})},
	{"slice right", Do(figures.Slice{Hand: figures.Right})},
	{"star left 4", Do(figures.Star{Hand: figures.Left})},
	{"star right 3", Do(figures.Star{Hand: figures.Right, Places: 3})},
	{"star right 4", Do(figures.Star{Hand: figures.Right})},
	{"swing your neighbor", Do(figures.Swing{With: yourNeighbor})},
	{"swing your neighbor (12)", Do(figures.Swing{Beats: 12, With: yourNeighbor})},
	{"swing your neighbor (16)", Do(figures.Swing{Beats: 16, With: yourNeighbor})},
	{"swing your partner", Do(figures.Swing{With: yourPartner})},
	{"swing your partner (12)", Do(figures.Swing{Beats: 12, With: yourPartner})},
	{"wave balance and belly slide", Do(figures.WaveBalance{})},
	{"you are now facing your new neighbor", Relabel{}},
})

func sortEntries(entries []Entry) []Entry {
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Text < entries[j].Text })
	return entries
}

// Catalogue returns all known call texts, sorted.
func Catalogue() []Entry {
	return append([]Entry(nil), catalogue...)
}

// Search returns the catalogue entries matching query, in catalogue order.
//
// Matching is case-insensitive. Every character of the query must appear in
// the entry text in order, each one either right after the previous one or at
// the start of a later word. "rlt" thus finds "right left through", as does
// "right le thr".
func Search(query string) []Entry {
	fold := cases.Fold()
	q := []rune(fold.String(query))
	var found []Entry
	for _, e := range catalogue {
		if matchAbbrev([]rune(fold.String(e.Text)), q) {
			found = append(found, e)
		}
	}
	return found
}

// LookupCall returns the first catalogue entry matching query.
func LookupCall(query string) (Entry, bool) {
	found := Search(query)
	if len(found) == 0 {
		tracer().Debugf("no call matches %q", query)
		return Entry{}, false
	}
	return found[0], true
}

func matchAbbrev(text, query []rune) bool {
	if len(query) == 0 {
		return true
	}
	for i := range text {
		if text[i] == query[0] && matchFrom(text, query[1:], i+1) {
			return true
		}
	}
	return false
}

// matchFrom matches query against text, its first rune sitting either at pos
// or at a word boundary after pos.
func matchFrom(text, query []rune, pos int) bool {
	if len(query) == 0 {
		return true
	}
	for i := pos; i < len(text); i++ {
		if text[i] != query[0] {
			continue
		}
		if (i == pos || atBoundary(text, i)) && matchFrom(text, query[1:], i+1) {
			return true
		}
	}
	return false
}

func atBoundary(text []rune, i int) bool {
	prev := i > 0 && isWordRune(text[i-1])
	return prev != isWordRune(text[i])
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
