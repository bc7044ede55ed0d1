// Package diag collects the errors and warnings of one compilation.
package diag

import (
	"context"
	"errors"
	"log/slog"
	"os"
)

type Severity int

const (
	Warning Severity = iota
	Error
)

func (s Severity) String() string {
	if s == Error {
		return "error"
	}
	return "warning"
}

func (s Severity) level() slog.Level {
	if s == Error {
		return slog.LevelError
	}
	return slog.LevelWarn
}

// Diagnostic is one reported message.
type Diagnostic struct {
	Severity Severity
	Location string
	Message  string
}

// Error renders the diagnostic as location: message.
func (d Diagnostic) Error() string {
	if d.Location == "" {
		return d.Message
	}
	return d.Location + ": " + d.Message
}

// Reporter records diagnostics and logs each one as it arrives.
//
// ReportError sets a failure flag that stays set until ClearError. A
// Reporter belongs to a single compilation and is not safe for concurrent
// use.
type Reporter struct {
	logger      *slog.Logger
	hadError    bool
	diagnostics []Diagnostic
}

type Option func(*Reporter)

// WithLogger sends diagnostics to l instead of a text logger on stderr.
func WithLogger(l *slog.Logger) Option {
	return func(r *Reporter) {
		r.logger = l
	}
}

func NewReporter(opts ...Option) *Reporter {
	r := &Reporter{}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	return r
}

func (r *Reporter) ReportError(loc Location, format string, args ...any) {
	r.hadError = true
	r.report(Error, loc, format, args)
}

func (r *Reporter) ReportWarning(loc Location, format string, args ...any) {
	r.report(Warning, loc, format, args)
}

func (r *Reporter) report(sev Severity, loc Location, format string, args []any) {
	d := Diagnostic{
		Severity: sev,
		Location: locationString(loc),
		Message:  Format(nil, format, args...),
	}
	r.diagnostics = append(r.diagnostics, d)

	attrs := []slog.Attr{slog.String("severity", sev.String())}
	if d.Location != "" {
		attrs = append(attrs, slog.String("location", d.Location))
	}
	r.logger.LogAttrs(context.Background(), sev.level(), d.Message, attrs...)
}

// HadError reports whether ReportError was called since the Reporter was
// created or last cleared.
func (r *Reporter) HadError() bool {
	return r.hadError
}

// ClearError resets the failure flag. Recorded diagnostics are kept.
func (r *Reporter) ClearError() {
	r.hadError = false
}

// Diagnostics returns every diagnostic reported so far, oldest first.
func (r *Reporter) Diagnostics() []Diagnostic {
	return append([]Diagnostic(nil), r.diagnostics...)
}

// Err joins the reported errors into one error, or returns nil if there
// are none.
func (r *Reporter) Err() error {
	var err error
	for _, d := range r.diagnostics {
		if d.Severity == Error {
			err = errors.Join(err, d)
		}
	}
	return err
}
