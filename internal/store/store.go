// Package store keeps notes as markdown files under a single root directory,
// one subdirectory per scope (a creation date or a category).
package store

import (
	"io"
	"log/slog"
	"time"

	"github.com/vinayprograms/rnote/internal/config"
)

const (
	dirPerms  = 0o700
	filePerms = 0o600
	noteExt   = ".md"
)

// Store is the filesystem note store rooted at {DataHome}/rnote.
type Store struct {
	root   string
	author string
	now    func() time.Time
	logger *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now, used for dated scopes and front matter dates.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger sets the logger for mutations. Default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l == nil {
			l = slog.New(slog.NewTextHandler(io.Discard, nil))
		}
		s.logger = l
	}
}

// New creates a Store from cfg. It fails with ErrConfig when no data home is
// configured. Nothing is created on disk.
func New(cfg *config.Config, opts ...Option) (*Store, error) {
	root, err := BasePath(cfg.DataHome)
	if err != nil {
		return nil, err
	}

	s := &Store{
		root:   root,
		author: cfg.Author,
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Root returns the storage root.
func (s *Store) Root() string { return s.root }

// Now returns the store's current time.
func (s *Store) Now() time.Time { return s.now() }
