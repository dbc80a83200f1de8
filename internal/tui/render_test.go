package tui

import (
	"strings"
	"testing"
)

func TestToMarkdown(t *testing.T) {
	content := []byte("---\ntitle: meeting\nauthor: vp\ndate: 01-03-2024\n---\n\n- agenda\n")

	got := toMarkdown(content)
	want := "# meeting\n\n*vp, 01-03-2024*\n\n- agenda\n"
	if got != want {
		t.Errorf("toMarkdown() = %q, want %q", got, want)
	}
}

func TestToMarkdownWithoutFrontMatter(t *testing.T) {
	content := []byte("just text\n")
	if got := toMarkdown(content); got != "just text\n" {
		t.Errorf("toMarkdown() = %q", got)
	}
}

func TestRender(t *testing.T) {
	out, err := Render([]byte("---\ntitle: meeting\nauthor: vp\ndate: 01-03-2024\n---\n\nagenda\n"), 60)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	for _, want := range []string{"meeting", "agenda"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered output missing %q:\n%s", want, out)
		}
	}
}
