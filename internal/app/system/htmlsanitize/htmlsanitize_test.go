package htmlsanitize_test

import (
	"testing"

	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/htmlsanitize"
)

func TestStrip_Empty(t *testing.T) {
	if got := htmlsanitize.Strip(""); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestStrip_PlainText(t *testing.T) {
	if got := htmlsanitize.Strip("Rahim Uddin"); got != "Rahim Uddin" {
		t.Errorf("expected plain text unchanged, got %q", got)
	}
}

func TestStrip_RemovesTags(t *testing.T) {
	if got := htmlsanitize.Strip("<b>Family</b> fund"); got != "Family fund" {
		t.Errorf("expected tags removed, got %q", got)
	}
}

func TestStrip_RemovesScript(t *testing.T) {
	got := htmlsanitize.Strip(`Hello<script>alert('x')</script>`)
	if got != "Hello" {
		t.Errorf("expected script removed, got %q", got)
	}
}

func TestStrip_TrimsWhitespace(t *testing.T) {
	if got := htmlsanitize.Strip("  note  "); got != "note" {
		t.Errorf("expected trimmed, got %q", got)
	}
}

func TestIsPlainText(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"Hello, World!", true},
		{"<p>Hello</p>", false},
		{"5 < 10", true}, // only < without > is plain text
		{"5 > 3", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := htmlsanitize.IsPlainText(tt.input); got != tt.want {
				t.Errorf("IsPlainText(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
