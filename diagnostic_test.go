package tui

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestComponentDiagnostic_Stable(t *testing.T) {
	want := `{"type":"leaf","position":{"x":0,"y":0},"size":{"width":0,"height":0},` +
		`"preferred_size":{"width":0,"height":0},"has_focus":false,"cursor_state":false,` +
		`"cursor_position":{"x":0,"y":0}}`

	first, err := json.Marshal(NewBase("leaf").Diagnostic())
	if err != nil {
		t.Fatalf("json.Marshal() error: %v", err)
	}
	second, err := json.Marshal(NewBase("leaf").Diagnostic())
	if err != nil {
		t.Fatalf("json.Marshal() error: %v", err)
	}

	if string(first) != want {
		t.Errorf("Diagnostic() =\n%s\nwant\n%s", first, want)
	}
	if string(first) != string(second) {
		t.Errorf("fresh diagnostics differ:\n%s\n%s", first, second)
	}
}

func TestComponentDiagnostic_Values(t *testing.T) {
	b := NewBase("leaf", WithCursor(Pt(2, 1)), WithPreferredSize(Ext(6, 2)))
	b.SetPosition(Pt(4, 5))
	b.SetSize(Ext(8, 3))
	b.SetFocus()
	d := b.Diagnostic()

	type tc struct {
		path   string
		expect any
	}

	tests := map[string]tc{
		"type":              {path: "type", expect: "leaf"},
		"position x":        {path: "position.x", expect: 4},
		"position y":        {path: "position.y", expect: 5},
		"size width":        {path: "size.width", expect: 8},
		"preferred height":  {path: "preferred_size.height", expect: 2},
		"has focus":         {path: "has_focus", expect: true},
		"cursor state":      {path: "cursor_state", expect: true},
		"cursor position x": {path: "cursor_position.x", expect: 2},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := d.Get(tt.path)
			if !ok {
				t.Fatalf("Get(%q) not found", tt.path)
			}
			if got != tt.expect {
				t.Errorf("Get(%q) = %v, want %v", tt.path, got, tt.expect)
			}
		})
	}
}

func TestDiagnostic_Get_Missing(t *testing.T) {
	d := NewDiagnostic("x").Set("list", []*Diagnostic{NewDiagnostic("child")})

	for _, path := range []string{"nope", "type.deeper", "list.1", "list.-1", "list.x", "list.0.nope"} {
		if _, ok := d.Get(path); ok {
			t.Errorf("Get(%q) found a value, want none", path)
		}
	}
	if got, ok := d.Get("list.0.type"); !ok || got != "child" {
		t.Errorf("Get(%q) = %v, %v, want child, true", "list.0.type", got, ok)
	}
}

func TestDiagnostic_SetReplacesInPlace(t *testing.T) {
	d := NewDiagnostic("x").Set("a", 1).Set("b", 2).Set("a", 3)

	if got := d.String(); got != `{"type":"x","a":3,"b":2}` {
		t.Errorf("String() = %s, want %s", got, `{"type":"x","a":3,"b":2}`)
	}
}

func TestDiagnostic_MarshalYAML(t *testing.T) {
	d := NewDiagnostic("container").
		Set("size", ExtentDiagnostic(Ext(2, 1))).
		Set("layout", (*Diagnostic)(nil)).
		Set("subcomponents", []*Diagnostic{})

	out, err := yaml.Marshal(d)
	if err != nil {
		t.Fatalf("yaml.Marshal() error: %v", err)
	}

	want := "type: container\n" +
		"size:\n" +
		"    width: 2\n" +
		"    height: 1\n" +
		"layout: null\n" +
		"subcomponents: []\n"
	if string(out) != want {
		t.Errorf("yaml.Marshal() =\n%s\nwant\n%s", out, want)
	}
}
