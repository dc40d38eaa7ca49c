package jtok_test

import (
	"strings"
	"testing"

	"jtok"
)

func TestError_messageFormat(t *testing.T) {
	_, err := jtok.FromFile("/does/not/exist.json", 0)
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	jerr, ok := err.(*jtok.Error)
	if !ok {
		t.Fatalf("error is %T, want *jtok.Error", err)
	}
	if jerr.Kind != jtok.IOError {
		t.Errorf("Kind = %v, want IOError", jerr.Kind)
	}
	if jerr.Line != 0 {
		t.Errorf("Line = %d, want 0 for an IOError", jerr.Line)
	}
}

func TestErrorSink_receivesDiagnostics(t *testing.T) {
	var sink strings.Builder
	_, err := jtok.FromStringWithSink(`{bad`, 0, jtok.WriterSink{W: &sink})
	if err == nil {
		t.Fatal("expected a tokenizer error")
	}
	if sink.Len() == 0 {
		t.Error("WriterSink received nothing, want the diagnostic to be forwarded")
	}
	if !strings.Contains(sink.String(), err.Error()) {
		t.Errorf("sink content %q does not contain the returned error %q", sink.String(), err.Error())
	}
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind jtok.Kind
		want string
	}{
		{jtok.IOError, "IOError"},
		{jtok.TokenizerError, "TokenizerError"},
		{jtok.ParseError, "ParseError"},
		{jtok.RangeError, "RangeError"},
		{jtok.EscapeError, "EscapeError"},
	}
	for _, test := range tests {
		if got := test.kind.String(); got != test.want {
			t.Errorf("%v.String() = %q, want %q", test.kind, got, test.want)
		}
	}
}
