// Package logging builds the logr.Logger shared by form-tabs packages.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"

	"github.com/b/form-tabs/pkg/paths"
)

// Options controls logger construction.
type Options struct {
	// Debug enables output. FORM_TABS_DEBUG=1 turns it on as well.
	Debug bool
	// Verbosity is the highest V level that is written.
	Verbosity int
	// Path is the log file; empty means debug.log in the state dir.
	Path string
}

// New returns a logger writing to a file (never the terminal, which belongs
// to the TUI), plus a close func. With debugging off it returns a discard
// logger.
func New(opts Options) (logr.Logger, func() error, error) {
	if !opts.Debug && os.Getenv("FORM_TABS_DEBUG") != "1" {
		return logr.Discard(), func() error { return nil }, nil
	}
	path := opts.Path
	if path == "" {
		if _, err := paths.EnsureStateDir(); err != nil {
			return logr.Discard(), nil, err
		}
		path = paths.StatePath("debug.log")
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return logr.Discard(), nil, fmt.Errorf("open log file: %w", err)
	}
	return ToWriter(f, opts.Verbosity), f.Close, nil
}

// ToWriter returns a logger that writes timestamped key/value lines to w.
func ToWriter(w io.Writer, verbosity int) logr.Logger {
	std := log.New(w, "", log.LstdFlags|log.Lmicroseconds)
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			std.Printf("[%s] %s", prefix, args)
			return
		}
		std.Print(args)
	}, funcr.Options{Verbosity: verbosity})
}
