package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const routes = `
commands:
  - name: greet
    summary: Greet someone
    run: "Hello, {{.Argument 0}}!"
    arguments:
      0: "R{/^[a-z]+$/i}"
`

func setupHome(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(home, ".local", "share"))
	t.Setenv("PAGER", "cat")

	path := filepath.Join(home, "routes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(routes), 0600))
	return path
}

func TestRun(t *testing.T) {
	tests := []struct {
		name       string
		args       func(routes string) []string
		wantCode   int
		wantOut    string
		wantStderr string
	}{
		{
			name:     "version flag",
			args:     func(string) []string { return []string{"--version"} },
			wantOut:  "sealion version dev\n",
			wantCode: 0,
		},
		{
			name:     "route from argv",
			args:     func(r string) []string { return []string{"--routes", r, "greet", "World"} },
			wantOut:  "Hello, World!",
			wantCode: 0,
		},
		{
			name:     "route from string",
			args:     func(r string) []string { return []string{"--routes=" + r, "-s", `greet "Ada"`} },
			wantOut:  "Hello, Ada!",
			wantCode: 0,
		},
		{
			name:       "route mismatch",
			args:       func(r string) []string { return []string{"--routes", r, "greet", "42"} },
			wantCode:   2,
			wantStderr: "greet: arguments did not match",
		},
		{
			name:       "unknown command",
			args:       func(string) []string { return []string{"greet"} },
			wantCode:   1,
			wantStderr: "'greet' is not a sealion command",
		},
		{
			name:       "no command",
			args:       func(string) []string { return nil },
			wantCode:   1,
			wantStderr: "no command given",
		},
		{
			name:       "unknown flag",
			args:       func(string) []string { return []string{"--bogus"} },
			wantCode:   2,
			wantStderr: "unknown flag: --bogus",
		},
		{
			name:       "invalid log level",
			args:       func(string) []string { return []string{"--log-level=loud", "version"} },
			wantCode:   2,
			wantStderr: "invalid flag '--log-level=loud'",
		},
		{
			name:       "missing routes file",
			args:       func(r string) []string { return []string{"--routes", filepath.Join(filepath.Dir(r), "missing.yaml"), "version"} },
			wantCode:   1,
			wantStderr: "missing.yaml",
		},
		{
			name:     "flags after the command belong to the route",
			args:     func(string) []string { return []string{"config", "get", "theme", "--no-pager"} },
			wantOut:  "default\n",
			wantCode: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := setupHome(t)
			var stdout, stderr bytes.Buffer

			code := run(tt.args(path), &stdout, &stderr)

			require.Equal(t, tt.wantCode, code, "stderr: %s", stderr.String())
			if tt.wantOut != "" {
				require.Equal(t, tt.wantOut, stdout.String())
			}
			if tt.wantStderr != "" {
				require.Contains(t, stderr.String(), tt.wantStderr)
			}
		})
	}
}

func TestRun_Help(t *testing.T) {
	path := setupHome(t)
	var stdout, stderr bytes.Buffer

	require.Equal(t, 0, run([]string{"--routes", path, "--help"}, &stdout, &stderr))
	require.Contains(t, stdout.String(), "greet")
	require.Contains(t, stdout.String(), "FLAGS")
	require.Contains(t, stdout.String(), "--no-pager")

	stdout.Reset()
	require.Equal(t, 0, run([]string{"--routes", path, "-h", "greet"}, &stdout, &stderr))
	require.Contains(t, stdout.String(), `argument 0  R{/^[a-z]+$/i}`)
	require.NotContains(t, stdout.String(), "FLAGS")
}
