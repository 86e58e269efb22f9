package runner

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/takaishi/minigrep/config"
	"github.com/takaishi/minigrep/search"
)

type options struct {
	vimgrep bool
	logger  *slog.Logger
}

// Option configures Run and Load
type Option func(*options)

// WithVimgrep prints matches as file:line:column:text
func WithVimgrep() Option {
	return func(o *options) { o.vimgrep = true }
}

// WithLogger sets the logger used for debug output
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

func newOptions(opts []Option) *options {
	o := &options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Result holds a loaded file and its matches
type Result struct {
	Contents string
	Matches  []search.Match
}

// Load reads the file named by cfg and finds the matching lines with their positions
func Load(cfg *config.Config, opts ...Option) (*Result, error) {
	o := newOptions(opts)

	contents, err := readFile(cfg.Filename, o.logger)
	if err != nil {
		return nil, err
	}

	mode := search.ModeFor(cfg.CaseSensitive)
	matches := search.FindMatches(mode, cfg.Query, contents)
	o.logger.Debug("search complete", "query", cfg.Query, "mode", mode, "matches", len(matches))

	return &Result{Contents: contents, Matches: matches}, nil
}

// Run reads the file named by cfg, searches it and writes the matching lines to w.
// Finding nothing is not an error; a notice is written instead.
func Run(cfg *config.Config, w io.Writer, opts ...Option) error {
	o := newOptions(opts)

	contents, err := readFile(cfg.Filename, o.logger)
	if err != nil {
		return err
	}

	mode := search.ModeFor(cfg.CaseSensitive)
	out := bufio.NewWriter(w)

	if o.vimgrep {
		matches := search.FindMatches(mode, cfg.Query, contents)
		o.logger.Debug("search complete", "query", cfg.Query, "mode", mode, "matches", len(matches))
		if len(matches) == 0 {
			writeNotFound(out, cfg)
		}
		for _, m := range matches {
			fmt.Fprintln(out, search.FormatVimgrep(cfg.Filename, m))
		}
		return out.Flush()
	}

	results := search.Find(mode, cfg.Query, contents)
	o.logger.Debug("search complete", "query", cfg.Query, "mode", mode, "matches", len(results))

	// If no results, display some useful information
	if len(results) == 0 {
		writeNotFound(out, cfg)
	}
	for _, line := range results {
		fmt.Fprintln(out, line)
	}
	return out.Flush()
}

func readFile(filename string, logger *slog.Logger) (string, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", &FileReadError{Filename: filename, Err: err}
	}
	if !utf8.Valid(data) {
		return "", &FileReadError{Filename: filename, Err: ErrInvalidUTF8}
	}
	logger.Debug("file loaded", "file", filename, "bytes", len(data))
	return string(data), nil
}

func writeNotFound(w io.Writer, cfg *config.Config) {
	fmt.Fprintf(w, "Query '%s' not found in %s\n", cfg.Query, cfg.Filename)
	fmt.Fprintf(w, "Search case sensitive: %t\n", cfg.CaseSensitive)
}
