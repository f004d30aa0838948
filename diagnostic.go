package tui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Diagnostic is an ordered, nested key/value snapshot of a component,
// container or layout. Keys keep insertion order, so two snapshots of
// equal state encode to identical bytes.
//
// Values are bool, int, string, nil, *Diagnostic or []*Diagnostic.
type Diagnostic struct {
	fields []DiagnosticField
}

// DiagnosticField is one key/value pair of a Diagnostic.
type DiagnosticField struct {
	Key   string
	Value any
}

// NewDiagnostic returns a snapshot whose first key is "type".
func NewDiagnostic(kind string) *Diagnostic {
	return (&Diagnostic{}).Set("type", kind)
}

// Set stores v under key, replacing an existing value in place.
func (d *Diagnostic) Set(key string, v any) *Diagnostic {
	for i := range d.fields {
		if d.fields[i].Key == key {
			d.fields[i].Value = v
			return d
		}
	}
	d.fields = append(d.fields, DiagnosticField{Key: key, Value: v})
	return d
}

// Fields returns the key/value pairs in order.
func (d *Diagnostic) Fields() []DiagnosticField {
	return d.fields
}

// Get looks up a dotted path such as "position.x" or
// "subcomponents.1.size.width". Numeric segments index into lists.
func (d *Diagnostic) Get(path string) (any, bool) {
	var cur any = d
	for _, seg := range strings.Split(path, ".") {
		switch node := cur.(type) {
		case *Diagnostic:
			v, ok := node.lookup(seg)
			if !ok {
				return nil, false
			}
			cur = v
		case []*Diagnostic:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= len(node) {
				return nil, false
			}
			cur = node[i]
		default:
			return nil, false
		}
	}
	return cur, true
}

func (d *Diagnostic) lookup(key string) (any, bool) {
	if d == nil {
		return nil, false
	}
	for _, f := range d.fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// MarshalJSON encodes the snapshot as a JSON object with keys in insertion order.
func (d *Diagnostic) MarshalJSON() ([]byte, error) {
	if d == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range d.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(f.Value)
		if err != nil {
			return nil, fmt.Errorf("diagnostic key %q: %w", f.Key, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the snapshot as an ordered YAML mapping.
func (d *Diagnostic) MarshalYAML() (any, error) {
	return d.yamlNode()
}

func (d *Diagnostic) yamlNode() (*yaml.Node, error) {
	if d == nil {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	}
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range d.fields {
		val, err := yamlValue(f.Value)
		if err != nil {
			return nil, fmt.Errorf("diagnostic key %q: %w", f.Key, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Key},
			val,
		)
	}
	return node, nil
}

func yamlValue(v any) (*yaml.Node, error) {
	switch val := v.(type) {
	case *Diagnostic:
		return val.yamlNode()
	case []*Diagnostic:
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		if len(val) == 0 {
			seq.Style = yaml.FlowStyle
		}
		for _, child := range val {
			n, err := child.yamlNode()
			if err != nil {
				return nil, err
			}
			seq.Content = append(seq.Content, n)
		}
		return seq, nil
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	}
	n := &yaml.Node{}
	if err := n.Encode(v); err != nil {
		return nil, err
	}
	return n, nil
}

// String returns the compact JSON encoding.
func (d *Diagnostic) String() string {
	b, err := d.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("<diagnostic error: %v>", err)
	}
	return string(b)
}

// PointDiagnostic returns {x, y}.
func PointDiagnostic(p Point) *Diagnostic {
	return (&Diagnostic{}).Set("x", p.X).Set("y", p.Y)
}

// ExtentDiagnostic returns {width, height}.
func ExtentDiagnostic(e Extent) *Diagnostic {
	return (&Diagnostic{}).Set("width", e.Width).Set("height", e.Height)
}

// ComponentDiagnostic builds the standard snapshot shared by every
// component: type, position, size, preferred_size, has_focus, cursor_state
// and cursor_position.
func ComponentDiagnostic(kind string, c Component) *Diagnostic {
	return NewDiagnostic(kind).
		Set("position", PointDiagnostic(c.Position())).
		Set("size", ExtentDiagnostic(c.Size())).
		Set("preferred_size", ExtentDiagnostic(c.PreferredSize())).
		Set("has_focus", c.HasFocus()).
		Set("cursor_state", c.CursorState()).
		Set("cursor_position", PointDiagnostic(c.CursorPosition()))
}
