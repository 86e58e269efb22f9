package config

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv removes key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestNew(t *testing.T) {
	unsetEnv(t, EnvCaseInsensitive)

	t.Run("query and filename", func(t *testing.T) {
		cfg, err := New([]string{"minigrep", "Pun", "poem.txt"})
		require.NoError(t, err)
		assert.Equal(t, "Pun", cfg.Query)
		assert.Equal(t, "poem.txt", cfg.Filename)
		assert.True(t, cfg.CaseSensitive)
	})

	t.Run("extra arguments are ignored", func(t *testing.T) {
		cfg, err := New([]string{"minigrep", "Pun", "poem.txt", "extra", "more"})
		require.NoError(t, err)
		assert.Equal(t, "Pun", cfg.Query)
		assert.Equal(t, "poem.txt", cfg.Filename)
	})

	t.Run("empty query counts as present", func(t *testing.T) {
		cfg, err := New([]string{"minigrep", "", "poem.txt"})
		require.NoError(t, err)
		assert.Equal(t, "", cfg.Query)
	})
}

func TestNew_MissingArguments(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		which   string
		wantMsg string
	}{
		{name: "no arguments at all", args: nil, which: ArgQuery, wantMsg: "Query string not present"},
		{name: "program name only", args: []string{"minigrep"}, which: ArgQuery, wantMsg: "Query string not present"},
		{name: "missing filename", args: []string{"minigrep", "Pun"}, which: ArgFilename, wantMsg: "Filename not present"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := New(tt.args)
			require.Error(t, err)
			assert.Nil(t, cfg)

			var missing *MissingArgumentError
			require.True(t, errors.As(err, &missing), "expected MissingArgumentError, got %T", err)
			assert.Equal(t, tt.which, missing.Which)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestNew_CaseInsensitiveEnv(t *testing.T) {
	t.Run("set to a value", func(t *testing.T) {
		t.Setenv(EnvCaseInsensitive, "1")
		cfg, err := New([]string{"minigrep", "pun", "poem.txt"})
		require.NoError(t, err)
		assert.False(t, cfg.CaseSensitive)
	})

	t.Run("set but empty", func(t *testing.T) {
		t.Setenv(EnvCaseInsensitive, "")
		cfg, err := New([]string{"minigrep", "pun", "poem.txt"})
		require.NoError(t, err)
		assert.False(t, cfg.CaseSensitive)
	})

	t.Run("unset", func(t *testing.T) {
		unsetEnv(t, EnvCaseInsensitive)
		cfg, err := New([]string{"minigrep", "pun", "poem.txt"})
		require.NoError(t, err)
		assert.True(t, cfg.CaseSensitive)
	})

	t.Run("read once at construction", func(t *testing.T) {
		unsetEnv(t, EnvCaseInsensitive)
		cfg, err := New([]string{"minigrep", "pun", "poem.txt"})
		require.NoError(t, err)

		t.Setenv(EnvCaseInsensitive, "1")
		assert.True(t, cfg.CaseSensitive)
	})
}

func TestEditorFromEnv(t *testing.T) {
	t.Setenv(EnvEditor, "vim")
	assert.Equal(t, "vim", EditorFromEnv())

	unsetEnv(t, EnvEditor)
	assert.Equal(t, "", EditorFromEnv())
}
