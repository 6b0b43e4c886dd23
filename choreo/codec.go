package choreo

import (
	"errors"
	"fmt"
	"sort"

	"github.com/speezepearson/contravis/figures"
	"github.com/speezepearson/contravis/lattice"
	"gopkg.in/yaml.v3"
)

// Dances are stored as YAML documents:
//
//	name: Early Evening Rollaway
//	formation: improper
//	calls:
//	  - call: balance
//	    with: {kind: neighbor}
//	  - call: swing
//	    beats: 12
//	    with: {kind: neighbor}
//	  - call: facing-directive
//	    toward: partner
//
// Every call is a mapping whose "call" key names the figure or directive; the
// remaining keys are the figure's fields. JSON input works as well.

const (
	facingDirective  = "facing-directive"
	relabelDirective = "relabel-directive"
)

// ErrUnknownCall is returned when decoding a call with an unknown name.
var ErrUnknownCall = errors.New("choreo: unknown call")

type figureDecoder func(*yaml.Node) (figures.Figure, error)

func decodeAs[F figures.Figure](n *yaml.Node) (figures.Figure, error) {
	var f F
	if err := n.Decode(&f); err != nil {
		return nil, err
	}
	return f, nil
}

// figureDecoders is keyed by figure name.
var figureDecoders = map[string]figureDecoder{
	figures.Swing{}.Name():            decodeAs[figures.Swing],
	figures.Balance{}.Name():          decodeAs[figures.Balance],
	figures.BoxTheGnat{}.Name():       decodeAs[figures.BoxTheGnat],
	figures.DoSiDo{}.Name():           decodeAs[figures.DoSiDo],
	figures.Circle{}.Name():           decodeAs[figures.Circle],
	figures.PetronellaSpin{}.Name():   decodeAs[figures.PetronellaSpin],
	figures.RingBalance{}.Name():      decodeAs[figures.RingBalance],
	figures.Chain{}.Name():            decodeAs[figures.Chain],
	figures.RightLeftThrough{}.Name(): decodeAs[figures.RightLeftThrough],
	figures.RollAway{}.Name():         decodeAs[figures.RollAway],
	figures.PassThrough{}.Name():      decodeAs[figures.PassThrough],
	figures.Star{}.Name():             decodeAs[figures.Star],
	figures.Allemande{}.Name():        decodeAs[figures.Allemande],
	figures.Hey{}.Name():              decodeAs[figures.Hey],
	figures.Slice{}.Name():            decodeAs[figures.Slice],
	figures.FormWave{}.Name():         decodeAs[figures.FormWave],
	figures.WaveBalance{}.Name():      decodeAs[figures.WaveBalance],
}

// CallNames lists the names usable as "call" in dance files, sorted.
func CallNames() []string {
	names := make([]string, 0, len(figureDecoders)+2)
	for name := range figureDecoders {
		names = append(names, name)
	}
	names = append(names, facingDirective, relabelDirective)
	sort.Strings(names)
	return names
}

// decodeCall decodes a single call mapping.
func decodeCall(n *yaml.Node) (Call, error) {
	var head struct {
		Call string `yaml:"call"`
	}
	if err := n.Decode(&head); err != nil {
		return nil, err
	}
	switch head.Call {
	case facingDirective:
		var f Facing
		if err := n.Decode(&f); err != nil {
			return nil, err
		}
		return f, nil
	case relabelDirective:
		return Relabel{}, nil
	case "":
		return nil, fmt.Errorf("%w: line %d: missing key \"call\"", ErrUnknownCall, n.Line)
	}
	dec, ok := figureDecoders[head.Call]
	if !ok {
		return nil, fmt.Errorf("%w: line %d: %q", ErrUnknownCall, n.Line, head.Call)
	}
	f, err := dec(n)
	if err != nil {
		return nil, fmt.Errorf("choreo: line %d: %s: %w", n.Line, head.Call, err)
	}
	return Do(f), nil
}

// encodeCall encodes a call as a mapping with the "call" key first.
func encodeCall(c Call) (*yaml.Node, error) {
	var name string
	var body interface{}
	switch c := c.(type) {
	case FigureCall:
		name, body = c.Figure.Name(), c.Figure
	case Facing:
		name, body = facingDirective, c
	case Relabel:
		name, body = relabelDirective, struct{}{}
	default:
		return nil, fmt.Errorf("choreo: cannot encode call of type %T", c)
	}
	n := &yaml.Node{}
	if err := n.Encode(body); err != nil {
		return nil, err
	}
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("choreo: call %s does not encode as a mapping", name)
	}
	n.Style = 0
	key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: "call"}
	val := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name}
	n.Content = append([]*yaml.Node{key, val}, n.Content...)
	return n, nil
}

type danceDoc struct {
	Name      string              `yaml:"name,omitempty"`
	Formation lattice.FormationID `yaml:"formation"`
	Calls     []yaml.Node         `yaml:"calls"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Dance) UnmarshalYAML(value *yaml.Node) error {
	var doc danceDoc
	if err := value.Decode(&doc); err != nil {
		return err
	}
	formation, err := lattice.ParseFormation(string(doc.Formation))
	if err != nil {
		return err
	}
	calls := make([]Call, 0, len(doc.Calls))
	for i := range doc.Calls {
		c, err := decodeCall(&doc.Calls[i])
		if err != nil {
			return err
		}
		calls = append(calls, c)
	}
	d.Name, d.Formation, d.Calls = doc.Name, formation, calls
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Dance) MarshalYAML() (interface{}, error) {
	doc := danceDoc{Name: d.Name, Formation: d.Formation, Calls: make([]yaml.Node, 0, len(d.Calls))}
	for _, c := range d.Calls {
		n, err := encodeCall(c)
		if err != nil {
			return nil, err
		}
		doc.Calls = append(doc.Calls, *n)
	}
	return doc, nil
}

// DecodeDance reads a dance from YAML or JSON.
func DecodeDance(data []byte) (*Dance, error) {
	d := &Dance{}
	if err := yaml.Unmarshal(data, d); err != nil {
		return nil, fmt.Errorf("choreo: cannot decode dance: %w", err)
	}
	tracer().Debugf("decoded dance %q with %d calls", d.Name, len(d.Calls))
	return d, nil
}

// EncodeDance writes a dance as YAML.
func EncodeDance(d Dance) ([]byte, error) {
	return yaml.Marshal(d)
}

// EncodeCall writes a single call as a YAML mapping.
func EncodeCall(c Call) ([]byte, error) {
	n, err := encodeCall(c)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(n)
}

// DecodeCall reads a single call from a YAML mapping.
func DecodeCall(data []byte) (Call, error) {
	var n yaml.Node
	if err := yaml.Unmarshal(data, &n); err != nil {
		return nil, err
	}
	if n.Kind == yaml.DocumentNode && len(n.Content) == 1 {
		return decodeCall(n.Content[0])
	}
	return decodeCall(&n)
}
