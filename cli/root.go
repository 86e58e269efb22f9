package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/takaishi/minigrep/config"
	"github.com/takaishi/minigrep/editor"
	"github.com/takaishi/minigrep/runner"
	"github.com/takaishi/minigrep/search"
	"github.com/takaishi/minigrep/tui"
)

type flags struct {
	vimgrep bool
	browse  bool
	editor  string
	verbose bool
}

// NewRootCommand builds the minigrep command writing results to out and logs to errOut
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "minigrep <query> <filename>",
		Short: "Print the lines of a file that contain a query",
		Long: `minigrep prints every line of <filename> that contains <query>.

Set CASE_INSENSITIVE (to any value) to ignore letter case.
Arguments after <filename> are ignored.
Use -- before a query that starts with a dash: minigrep -- -query poem.txt`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, args, out, errOut)
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	cmd.Flags().BoolVar(&f.vimgrep, "vimgrep", false, "print matches as file:line:column:text")
	cmd.Flags().BoolVar(&f.browse, "browse", false, "browse matches interactively and open the selected one in an editor")
	cmd.Flags().StringVar(&f.editor, "editor", "", "editor used by --browse (default $MINIGREP_EDITOR, $EDITOR or auto-detect)")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "log debug information to stderr")

	return cmd
}

// Execute runs the root command against the process arguments
func Execute() error {
	return NewRootCommand(os.Stdout, os.Stderr).Execute()
}

func run(cmd *cobra.Command, f *flags, args []string, out, errOut io.Writer) error {
	logger := newLogger(errOut, f.verbose)

	// config.New expects the program name first, as in os.Args.
	cfg, err := config.New(append([]string{cmd.Name()}, args...))
	if err != nil {
		return &ArgumentError{Err: err}
	}
	logger.Debug("config parsed", "query", cfg.Query, "file", cfg.Filename, "case_sensitive", cfg.CaseSensitive)

	if f.browse {
		if f.vimgrep {
			return &ArgumentError{Err: errors.New("--browse and --vimgrep cannot be combined")}
		}
		if err := browse(cfg, f.editor, out, logger); err != nil {
			return &ApplicationError{Err: err}
		}
		return nil
	}

	opts := []runner.Option{runner.WithLogger(logger)}
	if f.vimgrep {
		opts = append(opts, runner.WithVimgrep())
	}
	if err := runner.Run(cfg, out, opts...); err != nil {
		return &ApplicationError{Err: err}
	}
	return nil
}

// browse shows the matches in the terminal browser and opens the chosen one
func browse(cfg *config.Config, editorFlag string, out io.Writer, logger *slog.Logger) error {
	if !isTerminal(out) {
		return errors.New("--browse needs a terminal on stdout")
	}

	res, err := runner.Load(cfg, runner.WithLogger(logger))
	if err != nil {
		return err
	}

	mode := search.ModeFor(cfg.CaseSensitive)
	model := tui.New(cfg.Query, cfg.Filename, mode, res.Contents, res.Matches)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithOutput(out))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browser failed: %w", err)
	}

	match, ok := model.Chosen()
	if !ok {
		return nil
	}

	ed, err := editor.Resolve(editorFlag)
	if err != nil {
		return err
	}
	logger.Debug("opening editor", "editor", ed, "line", match.Line, "column", match.Column)
	return editor.OpenFile(ed, cfg.Filename, match.Line, match.Column)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
