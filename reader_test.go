package jtok_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"jtok"
)

func TestTokenize_types(t *testing.T) {
	tests := []struct {
		input string
		want  []jtok.Type
	}{
		{`true`, []jtok.Type{jtok.Bool}},
		{`false`, []jtok.Type{jtok.Bool}},
		{`null`, []jtok.Type{jtok.Null}},
		{`0`, []jtok.Type{jtok.Number}},
		{`-15`, []jtok.Type{jtok.Number}},
		{`5e+9`, []jtok.Type{jtok.Number}},
		{`"a b c"`, []jtok.Type{jtok.String}},
		{`[]`, []jtok.Type{jtok.Array}},
		{`{}`, []jtok.Type{jtok.Object}},
		{`{"a": true, "b":[null, 1, 0.5]}`, []jtok.Type{
			jtok.Object,
			jtok.String, jtok.Bool,
			jtok.String,
			jtok.Array, jtok.Null, jtok.Number, jtok.Number,
		}},
	}
	for _, test := range tests {
		r, err := jtok.FromString(test.input, 0)
		if err != nil {
			t.Errorf("FromString(%q): unexpected error: %v", test.input, err)
			continue
		}
		var got []jtok.Type
		for _, tok := range r.Tokens() {
			got = append(got, tok.Type())
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Input: %#q\nTypes: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestTokenize_errors(t *testing.T) {
	tests := []string{
		``,
		`  `,
		`{`,
		`[1, 2`,
		`{"a"}`,
		`{"a":1,}`,
		`[1,]`,
		`01`,
		`1.`,
		`1e`,
		`"unterminated`,
		`"bad \x escape"`,
		`"bad \u12 escape"`,
		"\"control \x01 char\"",
		`truefalse`,
		`nul`,
		`{"a": 1} trailing`,
	}
	for _, input := range tests {
		if _, err := jtok.FromString(input, 0); err == nil {
			t.Errorf("FromString(%q): expected an error, got none", input)
		}
	}
}

func TestNavigation(t *testing.T) {
	r, err := jtok.FromString(`{"a": [1, 2, 3], "b": null}`, jtok.ParseStringKeys)
	if err != nil {
		t.Fatalf("FromString: unexpected error: %v", err)
	}
	root := r.Root()
	if root.Type() != jtok.Object {
		t.Fatalf("root type = %v, want Object", root.Type())
	}
	if root.ChildCount() != len(r.Tokens())-1 {
		t.Errorf("root.ChildCount() = %d, want %d", root.ChildCount(), len(r.Tokens())-1)
	}

	keyA := root.FirstChild()
	if keyA.Type() != jtok.String || !keyA.IsObjectKey() {
		t.Fatalf("first child = %v (key=%v), want a String key", keyA.Type(), keyA.IsObjectKey())
	}
	if got := keyA.AsString().StringCopy(); got != "a" {
		t.Errorf("key = %q, want %q", got, "a")
	}

	arr := keyA.FirstChild()
	if arr.Type() != jtok.Array {
		t.Fatalf("value of %q = %v, want Array", "a", arr.Type())
	}
	if arr.ChildCount() != 3 {
		t.Errorf("arr.ChildCount() = %d, want 3", arr.ChildCount())
	}

	keyB := arr.Next()
	if keyB == nil || keyB.Type() != jtok.String {
		t.Fatalf("arr.Next() = %v, want the %q key", keyB, "b")
	}
	if got := keyB.AsString().StringCopy(); got != "b" {
		t.Errorf("second key = %q, want %q", got, "b")
	}

	if p := arr.Parent(); p != keyA {
		t.Errorf("arr.Parent() = %v, want keyA", p)
	}
	if p := keyB.Parent(); p != root {
		t.Errorf("keyB.Parent() = %v, want root", p)
	}
}

func TestFromBytes_copies(t *testing.T) {
	b := []byte(`"hello"`)
	r, err := jtok.FromBytes(b, jtok.ParseStrings)
	if err != nil {
		t.Fatalf("FromBytes: unexpected error: %v", err)
	}
	b[1] = 'X' // mutate the caller's buffer after construction
	got := r.Root().AsString().StringCopy()
	if got != "hello" {
		t.Errorf("AsString() = %q, want %q (mutation leaked into the Reader)", got, "hello")
	}
}

func TestOptions_parseOnConstruction(t *testing.T) {
	r, err := jtok.FromString(`{"a": 1.5, "b": "x"}`, jtok.ParseDoubles|jtok.ParseStrings)
	if err != nil {
		t.Fatalf("FromString: unexpected error: %v", err)
	}
	root := r.Root()
	key := root.FirstChild()
	if !key.IsParsed() {
		t.Error("object key was not parsed despite ParseStrings")
	}
	val := key.FirstChild()
	if val.ParsedType() != jtok.ParsedDouble {
		t.Errorf("value ParsedType() = %v, want ParsedDouble", val.ParsedType())
	}
	if got := val.AsDouble(); got != 1.5 {
		t.Errorf("AsDouble() = %v, want 1.5", got)
	}
}

func TestErrorLocation(t *testing.T) {
	_, err := jtok.FromString("{\n  \"a\": tru\n}", 0)
	if err == nil {
		t.Fatal("expected an error")
	}
	var jerr *jtok.Error
	if !asError(err, &jerr) {
		t.Fatalf("error %v is not a *jtok.Error", err)
	}
	if jerr.Line != 2 {
		t.Errorf("Line = %d, want 2", jerr.Line)
	}
	if !strings.Contains(jerr.Error(), ":2:") {
		t.Errorf("Error() = %q, want it to mention line 2", jerr.Error())
	}
}

func TestToken_Location(t *testing.T) {
	r, err := jtok.FromString("{\n  \"a\": 1\n}", 0)
	if err != nil {
		t.Fatalf("FromString: unexpected error: %v", err)
	}
	val := r.Root().FirstChild().FirstChild()
	loc := val.Location()
	if loc.First.Line != 2 {
		t.Errorf("First.Line = %d, want 2", loc.First.Line)
	}
	if loc.Span.Len() != 1 {
		t.Errorf("Span.Len() = %d, want 1", loc.Span.Len())
	}
}

func asError(err error, target **jtok.Error) bool {
	if e, ok := err.(*jtok.Error); ok {
		*target = e
		return true
	}
	return false
}
