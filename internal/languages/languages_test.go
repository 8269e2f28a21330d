package languages

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		language string
		filename string
		want     string
	}{
		{name: "explicit_wins", language: "Python", filename: "main.go", want: "python"},
		{name: "alias", language: "typescriptreact", want: "tsx"},
		{name: "from_go_file", filename: "cmd/main.go", want: "go"},
		{name: "from_markdown_file", filename: "README.md", want: "markdown"},
		{name: "unknown_extension", filename: "notes.zzz-unknown", want: PlainText},
		{name: "nothing", want: PlainText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.language, tt.filename); got != tt.want {
				t.Errorf("Resolve(%q, %q) = %q, want %q", tt.language, tt.filename, got, tt.want)
			}
		})
	}
}

func TestNext_Wraps(t *testing.T) {
	last := Cycle[len(Cycle)-1]
	if got := Next(last); got != Cycle[0] {
		t.Errorf("Next(%q) = %q, want %q", last, got, Cycle[0])
	}
	if got := Next("go"); got != "tsx" {
		t.Errorf("Next(go) = %q", got)
	}
	if got := Next("cobol-ish"); got != Cycle[0] {
		t.Errorf("unknown language should restart cycle, got %q", got)
	}
}

func TestLexer_Fallback(t *testing.T) {
	if Lexer(PlainText) == nil || Lexer("definitely-not-a-language") == nil {
		t.Fatal("expected fallback lexer")
	}
	if !IsMarkdown("md") {
		t.Error("md should be markdown")
	}
}
