package config

import (
	"github.com/spf13/viper"
)

const (
	// EnvCaseInsensitive disables case-sensitive matching when present,
	// whatever its value.
	EnvCaseInsensitive = "CASE_INSENSITIVE"

	// EnvEditor names the editor used by the match browser.
	EnvEditor = "MINIGREP_EDITOR"
)

// Config holds the validated search request for one invocation
type Config struct {
	Query         string
	Filename      string
	CaseSensitive bool
}

// New builds a Config from the raw argument list.
// args[0] is the program name; the query and the filename follow in that order.
// Arguments after the filename are ignored.
func New(args []string) (*Config, error) {
	if len(args) < 2 {
		return nil, &MissingArgumentError{Which: ArgQuery}
	}
	if len(args) < 3 {
		return nil, &MissingArgumentError{Which: ArgFilename}
	}

	env := newEnv()

	return &Config{
		Query:         args[1],
		Filename:      args[2],
		CaseSensitive: !env.IsSet("case_insensitive"),
	}, nil
}

// EditorFromEnv gets editor from MINIGREP_EDITOR environment variable
func EditorFromEnv() string {
	return newEnv().GetString("editor")
}

// newEnv binds the environment toggles on a fresh viper instance so every
// call observes the process environment as it is right now.
func newEnv() *viper.Viper {
	v := viper.New()
	// An empty CASE_INSENSITIVE still counts as set.
	v.AllowEmptyEnv(true)
	_ = v.BindEnv("case_insensitive", EnvCaseInsensitive)
	_ = v.BindEnv("editor", EnvEditor)
	return v
}
