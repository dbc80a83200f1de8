package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/vinayprograms/rnote/internal/store"
)

// Render formats a note for the terminal. Front matter becomes a heading and
// a byline; the body is rendered as markdown wrapped at wrap columns.
func Render(content []byte, wrap int) (string, error) {
	if wrap <= 0 {
		wrap = defaultWidth
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create renderer: %w", err)
	}

	out, err := r.Render(toMarkdown(content))
	if err != nil {
		return "", fmt.Errorf("failed to render note: %w", err)
	}
	return out, nil
}

func toMarkdown(content []byte) string {
	fm, body, ok := store.ParseFrontMatter(content)
	if !ok {
		return string(content)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", fm.Title)
	var byline []string
	if fm.Author != "" {
		byline = append(byline, fm.Author)
	}
	if fm.Date != "" {
		byline = append(byline, fm.Date)
	}
	if len(byline) > 0 {
		fmt.Fprintf(&b, "*%s*\n\n", strings.Join(byline, ", "))
	}
	b.Write(body)
	return b.String()
}
