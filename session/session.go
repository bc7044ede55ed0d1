// Package session holds the per-compilation state threaded through a
// driver: the diagnostics reporter and the logger.
package session

import (
	"context"
	"log/slog"
	"os"

	"github.com/t14raptor/go-lower/diag"
)

// Session is owned by one compilation.
type Session struct {
	Name     string
	Logger   *slog.Logger
	Reporter *diag.Reporter
}

type Option func(*Session)

func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		s.Logger = l
	}
}

// WithName labels the session, typically with the input file name.
func WithName(name string) Option {
	return func(s *Session) {
		s.Name = name
	}
}

// New creates a session with a fresh Reporter that logs through the
// session's logger.
func New(opts ...Option) *Session {
	s := &Session{}
	for _, opt := range opts {
		opt(s)
	}
	if s.Logger == nil {
		s.Logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	if s.Name != "" {
		s.Logger = s.Logger.With(slog.String("session", s.Name))
	}
	s.Reporter = diag.NewReporter(diag.WithLogger(s.Logger))
	return s
}

type contextKey struct{}

func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(contextKey{}).(*Session)
	return s, ok
}
