package store

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// DateLayout is the directory name format of dated scopes.
const DateLayout = "2006-01-02"

// Scope is the directory bucket a note lives in: a date or a category.
// The zero value is today's date, resolved each time it is turned into a path.
type Scope struct {
	category string
	date     string
}

// Today is the dated scope for the current local date at the time of use.
func Today() Scope { return Scope{} }

// Category is the scope named by a user-chosen category.
func Category(name string) Scope { return Scope{category: name} }

// OnDate is the dated scope for a fixed YYYY-MM-DD date.
func OnDate(date string) (Scope, error) {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return Scope{}, fmt.Errorf("%w: date %q is not YYYY-MM-DD", ErrInvalidName, date)
	}
	return Scope{date: date}, nil
}

// ScopeOf maps a CLI category argument to a scope; empty means today.
func ScopeOf(category string) Scope {
	if category == "" {
		return Today()
	}
	return Category(category)
}

// Dated reports whether s is a date scope.
func (s Scope) Dated() bool { return s.category == "" }

// Dir returns the scope's directory name as of now.
func (s Scope) Dir(now time.Time) string {
	switch {
	case s.category != "":
		return s.category
	case s.date != "":
		return s.date
	default:
		return now.Local().Format(DateLayout)
	}
}

func (s Scope) String() string {
	switch {
	case s.category != "":
		return s.category
	case s.date != "":
		return s.date
	default:
		return "today"
	}
}

// validateName rejects names that would escape or alias a directory when
// joined into a path, or break the one-line front matter header.
func validateName(kind, name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("%w: empty %s", ErrInvalidName, kind)
	case name == "." || name == "..":
		return fmt.Errorf("%w: %s %q", ErrInvalidName, kind, name)
	case strings.ContainsAny(name, "/\\\x00"):
		return fmt.Errorf("%w: %s %q contains a path separator", ErrInvalidName, kind, name)
	case strings.ContainsFunc(name, unicode.IsControl):
		return fmt.Errorf("%w: %s %q contains a control character", ErrInvalidName, kind, name)
	}
	return nil
}
