package editor

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/takaishi/minigrep/config"
)

// Editor is the command used to open a file
type Editor string

const (
	EditorCursor Editor = "cursor"
	EditorCode   Editor = "code"
	EditorVim    Editor = "vim"
	EditorVi     Editor = "vi"
)

// detectOrder lists editors tried by DetectEditor, GUI editors first.
var detectOrder = []Editor{EditorCursor, EditorCode, EditorVim, EditorVi}

var lookPath = exec.LookPath

// DetectEditor detects which editor is available
func DetectEditor() (Editor, error) {
	for _, ed := range detectOrder {
		if _, err := lookPath(string(ed)); err == nil {
			return ed, nil
		}
	}
	return "", fmt.Errorf("no editor found (tried %s)", joinEditors(detectOrder))
}

// Resolve picks the editor from the explicit flag value, then
// MINIGREP_EDITOR, then EDITOR, and finally auto-detection.
func Resolve(explicit string) (Editor, error) {
	if explicit != "" {
		return Editor(explicit), nil
	}
	if env := config.EditorFromEnv(); env != "" {
		return Editor(env), nil
	}
	if env := os.Getenv("EDITOR"); env != "" {
		return Editor(env), nil
	}
	return DetectEditor()
}

// Command returns the program and arguments that open file at line and column
func Command(editor Editor, file string, line, column int) (string, []string) {
	name := string(editor)
	switch filepath.Base(name) {
	case string(EditorCursor), string(EditorCode):
		args := []string{"--goto", fmt.Sprintf("%s:%d:%d", file, line, column)}
		if isRunningInEditor() {
			// Use --reuse-window to prevent new window from opening
			args = append([]string{"--reuse-window"}, args...)
		}
		return name, args
	default:
		// vi, vim, nvim, nano, emacs and most terminal editors accept +line
		return name, []string{fmt.Sprintf("+%d", line), file}
	}
}

// OpenFile opens a file in the specified editor at the given line and column.
// The editor inherits the terminal and OpenFile waits for it to exit.
func OpenFile(editor Editor, file string, line, column int) error {
	name, args := Command(editor, file, line, column)
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open %s in %s: %w", file, name, err)
	}
	return nil
}

// isRunningInEditor checks if the process is running inside Cursor or VS Code terminal
func isRunningInEditor() bool {
	if os.Getenv("VSCODE_IPC_HOOK") != "" || os.Getenv("VSCODE_IPC_HOOK_CLI") != "" {
		return true
	}
	return os.Getenv("CURSOR_AGENT") != ""
}

func joinEditors(eds []Editor) string {
	names := make([]string, len(eds))
	for i, ed := range eds {
		names[i] = string(ed)
	}
	return strings.Join(names, ", ")
}
