package naming

import (
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"
)

func TestSanitizeTitle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "Intro to Go", want: "Intro to Go"},
		{name: "forbidden characters", input: `a<b>c:d"e/f\g|h?i*j`, want: "a_b_c_d_e_f_g_h_i_j"},
		{name: "surrounding whitespace", input: "  padded title   ", want: "padded title"},
		{name: "tab is a control character", input: "a\tb", want: "a_b"},
		{name: "surrounding tab and newline", input: "\tTitle\n", want: "Title"},
		{name: "trailing carriage return", input: "Title\r\n", want: "Title"},
		{name: "mixed leading whitespace", input: " \tTitle ", want: "Title"},
		{name: "control characters", input: "line\nbreak\x00", want: "line_break_"},
		{name: "empty", input: "", want: ""},
		{name: "unicode kept", input: "Über Straße – 日本語", want: "Über Straße – 日本語"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeTitle(tt.input)
			if got != tt.want {
				t.Errorf("SanitizeTitle(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeTitleTruncatesToLimit(t *testing.T) {
	got := SanitizeTitle(strings.Repeat("x", 250))
	if len(got) != 100 {
		t.Fatalf("expected 100 characters, got %d", len(got))
	}

	multi := SanitizeTitle(strings.Repeat("ä", 150))
	if n := utf8.RuneCountInString(multi); n != 100 {
		t.Fatalf("expected 100 runes, got %d", n)
	}
	if !utf8.ValidString(multi) {
		t.Fatalf("truncation split a multi-byte rune: %q", multi)
	}
}

func TestSanitizeTitleTrimsAfterTruncation(t *testing.T) {
	input := strings.Repeat("a", 99) + "    tail"
	got := SanitizeTitle(input)
	if got != strings.Repeat("a", 99) {
		t.Fatalf("expected trailing space removed after cut, got %q", got)
	}
}

func TestSanitizeTitleProperties(t *testing.T) {
	inputs := []string{
		"",
		" ",
		"???",
		` <>:"/\|?* `,
		"\t\n\r",
		strings.Repeat(" *", 80),
		strings.Repeat("title ", 40),
		"Mixed: Part 1/2 | \"Live\" <HD>?",
	}
	for _, in := range inputs {
		first := SanitizeTitle(in)
		if second := SanitizeTitle(in); first != second {
			t.Fatalf("non-deterministic result for %q: %q vs %q", in, first, second)
		}
		if strings.ContainsAny(first, `<>:"/\|?*`) {
			t.Fatalf("forbidden character left in %q -> %q", in, first)
		}
		if utf8.RuneCountInString(first) > 100 {
			t.Fatalf("result too long for %q: %d", in, utf8.RuneCountInString(first))
		}
		if first != "" {
			r, _ := utf8.DecodeRuneInString(first)
			l, _ := utf8.DecodeLastRuneInString(first)
			if unicode.IsSpace(r) || unicode.IsSpace(l) {
				t.Fatalf("surrounding whitespace left in %q -> %q", in, first)
			}
		}
	}
}

func TestFileName(t *testing.T) {
	if got := FileName(1, "Intro: Part 1"); got != "01_Intro_ Part 1.png" {
		t.Fatalf("unexpected file name: %q", got)
	}
	if got := FileName(123, "x"); got != "123_x.png" {
		t.Fatalf("unexpected file name for wide index: %q", got)
	}
}

func TestFileNameCollisionsKeepIndexPrefix(t *testing.T) {
	a := FileName(1, "Q&A: part?")
	b := FileName(2, "Q&A/ part*")
	if SanitizeTitle("Q&A: part?") != SanitizeTitle("Q&A/ part*") {
		t.Fatalf("expected both titles to sanitize identically")
	}
	if a == b {
		t.Fatalf("expected index prefix to keep file names apart, both %q", a)
	}
}
