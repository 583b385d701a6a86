package actions

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/sealion/internal/domain"
	"github.com/footprint-tools/sealion/internal/input"
	"github.com/footprint-tools/sealion/internal/log"
	"github.com/footprint-tools/sealion/internal/routefile"
	"github.com/footprint-tools/sealion/internal/testutil"
	"github.com/footprint-tools/sealion/internal/ui"
	"github.com/footprint-tools/sealion/internal/ui/style"
	"github.com/footprint-tools/sealion/internal/usage"
)

type mapConfig map[string]string

func (m mapConfig) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m mapConfig) GetAll() (map[string]string, error) { return m, nil }
func (m mapConfig) Set(key, value string) error        { m[key] = value; return nil }
func (m mapConfig) Unset(key string) error             { delete(m, key); return nil }

func newContext(t *testing.T, tokens ...string) (*Context, *bytes.Buffer) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	p := input.NewArgv(tokens)
	require.NoError(t, p.Parse())
	rec, err := p.Record()
	require.NoError(t, err)

	var out bytes.Buffer
	return &Context{
		Command: rec.Command,
		Input:   rec,
		App: &domain.Application{
			Config: mapConfig{},
			Logger: log.NopLogger{},
			Output: ui.NewWriterTo(&out, ui.WithPagerDisabled()),
			Styler: style.NopStyler{},
		},
	}, &out
}

func kindOf(t *testing.T, err error) usage.ErrorKind {
	t.Helper()
	var ue *usage.Error
	require.True(t, errors.As(err, &ue), "expected usage error, got %v", err)
	return ue.Kind
}

type fileDeps struct {
	lines   []string
	written bool
}

func (f *fileDeps) deps() actionDependencies {
	d := defaultDeps()
	d.ReadLines = func() ([]string, error) { return f.lines, nil }
	d.WriteLines = func(lines []string) error {
		f.lines = lines
		f.written = true
		return nil
	}
	return d
}

func TestShowVersion(t *testing.T) {
	ctx, out := newContext(t, "version")
	deps := defaultDeps()
	deps.Version = func() string { return "1.2.3" }

	require.NoError(t, showVersion(ctx, deps))
	require.Equal(t, "sealion version 1.2.3\n", out.String())
}

func TestConfigGet(t *testing.T) {
	ctx, out := newContext(t, "config", "get", "theme")
	ctx.App.Config = mapConfig{"theme": "mono"}

	require.NoError(t, ConfigGet(ctx))
	require.Equal(t, "mono\n", out.String())

	ctx, _ = newContext(t, "config", "get", "nope")
	require.Equal(t, usage.ErrInvalidConfigKey, kindOf(t, ConfigGet(ctx)))
}

func TestConfigSet(t *testing.T) {
	tests := []struct {
		name      string
		tokens    []string
		lines     []string
		wantOut   string
		wantLines []string
		wantKind  usage.ErrorKind
	}{
		{
			name:      "adds new key",
			tokens:    []string{"config", "set", "theme", "ocean"},
			lines:     []string{"pager=cat"},
			wantOut:   "added theme=ocean\n",
			wantLines: []string{"pager=cat", "theme=ocean"},
		},
		{
			name:      "updates existing key",
			tokens:    []string{"config", "set", "pager", "more"},
			lines:     []string{"pager=cat # plain"},
			wantOut:   "updated pager=more\n",
			wantLines: []string{"pager=more # plain"},
		},
		{
			name:     "missing value",
			tokens:   []string{"config", "set", "pager"},
			wantKind: usage.ErrMissingArgument,
		},
		{
			name:     "unknown key",
			tokens:   []string{"config", "set", "colour", "red"},
			wantKind: usage.ErrInvalidConfigKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, out := newContext(t, tt.tokens...)
			f := &fileDeps{lines: tt.lines}

			err := configSet(ctx, f.deps())
			if tt.wantKind != usage.ErrUnknown {
				require.Equal(t, tt.wantKind, kindOf(t, err))
				require.False(t, f.written)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.wantOut, out.String())
			require.Equal(t, tt.wantLines, f.lines)
		})
	}
}

func TestConfigUnset(t *testing.T) {
	ctx, out := newContext(t, "config", "unset", "pager")
	f := &fileDeps{lines: []string{"pager=cat", "theme=mono"}}

	require.NoError(t, configUnset(ctx, f.deps()))
	require.Equal(t, "unset pager\n", out.String())
	require.Equal(t, []string{"theme=mono"}, f.lines)

	ctx, out = newContext(t, "config", "unset", "pager")
	f = &fileDeps{lines: []string{"theme=mono"}}

	require.NoError(t, configUnset(ctx, f.deps()))
	require.Equal(t, "pager is not set\n", out.String())
	require.False(t, f.written)

	ctx, _ = newContext(t, "config", "unset")
	require.Equal(t, usage.ErrMissingArgument, kindOf(t, configUnset(ctx, f.deps())))
}

func TestConfigList(t *testing.T) {
	ctx, out := newContext(t, "config", "list")
	ctx.App.Config = mapConfig{
		"theme":         "mono",
		"suggestions":   "3",
		"color_success": "",
		"color_error":   "196",
	}

	require.NoError(t, ConfigList(ctx))

	got := out.String()
	require.Contains(t, got, "Routing\n")
	require.Contains(t, got, "suggestions=3\n")
	require.Contains(t, got, "theme=mono\n")
	require.Contains(t, got, "color_error=196\n")
	require.NotContains(t, got, "color_success")
	require.Less(t, strings.Index(got, "Routing"), strings.Index(got, "Display"))
}

func TestHistory(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("disabled", func(t *testing.T) {
		ctx, _ := newContext(t, "history")
		require.ErrorIs(t, History(ctx), ErrHistoryDisabled)
	})

	t.Run("empty", func(t *testing.T) {
		ctx, out := newContext(t, "history")
		ctx.App.History = testutil.NewHistoryStore(t)

		require.NoError(t, History(ctx))
		require.Equal(t, "no history yet\n", out.String())
	})

	t.Run("limit", func(t *testing.T) {
		ctx, out := newContext(t, "history", "--limit=2")
		store := testutil.NewHistoryStore(t)
		testutil.SeedHistory(t, store, start, "greet ada", "deploy prod", "deploy staging")
		ctx.App.History = store

		deps := defaultDeps()
		deps.Now = func() time.Time { return start.Add(2*time.Minute + 3*time.Hour) }

		require.NoError(t, history(ctx, deps))

		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 2)
		require.Contains(t, lines[0], "deploy staging")
		require.Contains(t, lines[0], "3h")
		require.Contains(t, lines[1], "deploy prod")
		require.NotContains(t, out.String(), "greet ada")
	})
}

func TestHelp(t *testing.T) {
	catalog := []Entry{
		{Name: "help", Summary: "Show help", Usage: "sealion help [<command>]", Builtin: true},
		{Name: "greet", Summary: "Greet someone", Usage: "sealion greet <name>", Constraints: []string{"argument 0  R{/^[a-z]+$/}"}},
		{Name: "greet", Summary: "Greet someone", Usage: "sealion greet"},
	}

	t.Run("overview", func(t *testing.T) {
		ctx, out := newContext(t, "help")
		ctx.Catalog = catalog

		require.NoError(t, Help(ctx))
		got := out.String()
		require.Contains(t, got, "built-in commands\n")
		require.Contains(t, got, "routes\n")
		require.Equal(t, 1, strings.Count(got, "Greet someone"))
	})

	t.Run("command", func(t *testing.T) {
		ctx, out := newContext(t, "help", "greet")
		ctx.Catalog = catalog

		require.NoError(t, Help(ctx))
		got := out.String()
		require.Contains(t, got, "greet (route 1) - Greet someone")
		require.Contains(t, got, "argument 0  R{/^[a-z]+$/}")
		require.Contains(t, got, "greet (route 2)")
		require.Contains(t, got, "accepts any input")
	})

	t.Run("unknown", func(t *testing.T) {
		ctx, _ := newContext(t, "help", "gret")
		ctx.Catalog = catalog
		ctx.Suggest = func(string) []string { return []string{"greet"} }

		err := Help(ctx)
		require.Equal(t, usage.ErrUnknownCommand, kindOf(t, err))
		require.Contains(t, err.Error(), "greet")
	})
}

func TestStartRepl(t *testing.T) {
	ctx, _ := newContext(t, "repl")
	require.ErrorIs(t, startRepl(ctx, defaultDeps()), ErrNestedSession)

	ctx.Shell = func(string) (string, error) { return "", nil }
	deps := defaultDeps()
	deps.IsTerminal = func() bool { return false }
	require.ErrorIs(t, startRepl(ctx, deps), ErrNoTerminal)
}

func TestRunDefinition(t *testing.T) {
	defs, err := routefile.Parse([]byte(`
commands:
  - name: scale
    run: "scaling {{.Argument 0}} to {{default \"1\" (.Option \"replicas\")}}"
`), routefile.YAML)
	require.NoError(t, err)
	require.Len(t, defs, 1)

	ctx, out := newContext(t, "scale", "web", "--replicas=4")
	require.NoError(t, RunDefinition(defs[0])(ctx))
	require.Equal(t, "scaling web to 4", out.String())
}

func TestCompletions(t *testing.T) {
	catalog := []Entry{
		{Name: "history", Summary: "Show history", Options: []string{"limit"}, Builtin: true},
		{Name: "deploy", Summary: "Deploy a build", Flags: []string{"f"}},
	}

	t.Run("script", func(t *testing.T) {
		ctx, out := newContext(t, "completions", "fish", "--script")
		ctx.Catalog = catalog

		require.NoError(t, Completions(ctx))
		require.Contains(t, out.String(), "complete -c sealion -f")
		require.Contains(t, out.String(), "-l limit -r")
		require.Contains(t, out.String(), "-o f")
	})

	t.Run("instructions from SHELL", func(t *testing.T) {
		ctx, out := newContext(t, "completions")
		t.Setenv("SHELL", "/bin/zsh")

		require.NoError(t, Completions(ctx))
		require.Contains(t, out.String(), "Add to ~/.zshrc")
		require.Contains(t, out.String(), `eval "$(sealion completions zsh --script)"`)
	})

	t.Run("unsupported shell", func(t *testing.T) {
		ctx, _ := newContext(t, "completions", "tcsh")
		require.ErrorContains(t, Completions(ctx), "unsupported shell: tcsh")
	})

	t.Run("undetected shell", func(t *testing.T) {
		ctx, _ := newContext(t, "completions")
		t.Setenv("SHELL", "")
		require.ErrorContains(t, Completions(ctx), "could not detect shell")
	})
}
