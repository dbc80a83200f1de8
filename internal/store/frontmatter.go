package store

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// FrontMatterDateLayout is the date format written into front matter.
const FrontMatterDateLayout = "02-01-2006"

const fence = "---"

// FrontMatter is the header generated for a new note.
type FrontMatter struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	Date   string `yaml:"date"`
}

// NewFrontMatter builds the header for a note created at created.
func NewFrontMatter(title, author string, created time.Time) FrontMatter {
	return FrontMatter{
		Title:  title,
		Author: author,
		Date:   created.Format(FrontMatterDateLayout),
	}
}

// Render returns the header exactly as written to disk, followed by an empty
// line for the body.
func (fm FrontMatter) Render() string {
	return fmt.Sprintf("%s\ntitle: %s\nauthor: %s\ndate: %s\n%s\n\n",
		fence, fm.Title, fm.Author, fm.Date, fence)
}

// ParseFrontMatter splits content into its header and body. ok is false when
// content has no readable header; body is then the whole content.
func ParseFrontMatter(content []byte) (fm FrontMatter, body []byte, ok bool) {
	rest, found := bytes.CutPrefix(content, []byte(fence+"\n"))
	if !found {
		return FrontMatter{}, content, false
	}
	header, after, found := bytes.Cut(rest, []byte("\n"+fence+"\n"))
	if !found {
		header, found = bytes.CutSuffix(rest, []byte("\n"+fence))
		if !found {
			return FrontMatter{}, content, false
		}
		after = nil
	}
	fm, ok = parseHeader(header)
	if !ok {
		return FrontMatter{}, content, false
	}
	return fm, bytes.TrimLeft(after, "\n"), true
}

// parseHeader reads the generated "key: value" lines verbatim, so a title
// such as "Meeting: Q3" or "#tag" comes back unchanged. Headers with other
// keys were edited by hand and are decoded as YAML.
func parseHeader(header []byte) (FrontMatter, bool) {
	var fm FrontMatter
	for _, line := range strings.Split(string(header), "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found {
			return parseYAMLHeader(header)
		}
		value = strings.TrimPrefix(value, " ")
		switch key {
		case "title":
			fm.Title = value
		case "author":
			fm.Author = value
		case "date":
			fm.Date = value
		default:
			return parseYAMLHeader(header)
		}
	}
	return fm, true
}

func parseYAMLHeader(header []byte) (FrontMatter, bool) {
	var fm FrontMatter
	if err := yaml.Unmarshal(header, &fm); err != nil {
		return FrontMatter{}, false
	}
	return fm, true
}
