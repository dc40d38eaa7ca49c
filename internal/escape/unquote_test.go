package escape_test

import (
	"testing"

	"go4.org/mem"

	"jtok/internal/escape"
)

func TestUnquote(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{``, ``},
		{`abc`, `abc`},
		{`a\nb\tc`, "a\nb\tc"},
		{`\"\\\/\b\f\n\r\t`, "\"\\/\b\f\n\r\t"},
		{`A`, "A"},
		{`😀`, "\U0001F600"},
	}
	for _, test := range tests {
		got, err := escape.Unquote(mem.S(test.input))
		if err != nil {
			t.Errorf("Unquote(%q): unexpected error: %v", test.input, err)
			continue
		}
		if string(got) != test.want {
			t.Errorf("Unquote(%q) = %q, want %q", test.input, got, test.want)
		}
	}
}

func TestUnquote_errors(t *testing.T) {
	tests := []string{
		`\`,
		`\q`,
		`\u12`,
		`\ud83d`,
		`\ude00`,
		`\ud83dA`,
	}
	for _, input := range tests {
		if _, err := escape.Unquote(mem.S(input)); err == nil {
			t.Errorf("Unquote(%q): expected an error, got none", input)
		}
	}
}
