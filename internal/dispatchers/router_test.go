package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/sealion/internal/input"
	"github.com/footprint-tools/sealion/internal/matcher"
	"github.com/footprint-tools/sealion/internal/route"
)

func resolve(t *testing.T, r *Router) Outcome {
	t.Helper()
	res, err := r.Resolve()
	require.NoError(t, err)
	out, ok := res.(Outcome)
	require.True(t, ok, "unexpected result type %T", res)
	return out
}

func TestRouter_Greet(t *testing.T) {
	tests := []struct {
		name     string
		tokens   []string
		wantOK   bool
		wantMask Mask
	}{
		{
			name:   "matching argument dispatches the handler",
			tokens: []string{"greet", "world"},
			wantOK: true,
		},
		{
			name:     "literal comparison ignores case",
			tokens:   []string{"greet", "World"},
			wantOK:   true,
			wantMask: 0,
		},
		{
			name:     "wrong argument",
			tokens:   []string{"greet", "nobody"},
			wantMask: NotMatched | ArgumentsNotMatched,
		},
		{
			name:     "no input",
			tokens:   []string{},
			wantMask: NotMatched | CommandNotMatched,
		},
		{
			name:     "unknown command",
			tokens:   []string{"wave", "world"},
			wantMask: NotMatched | CommandNotMatched,
		},
		{
			name:     "empty command",
			tokens:   []string{"", "world"},
			wantMask: NotMatched | CommandNotMatched,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRouter(input.NewArgv(tt.tokens))
			rt, err := r.AddCommand("greet", "H")
			require.NoError(t, err)
			_, err = rt.WithArguments(map[int]any{0: "world"})
			require.NoError(t, err)

			out := resolve(t, r)
			require.Equal(t, tt.wantOK, out.OK)
			require.Equal(t, tt.wantMask, out.Mask)
			if tt.wantOK {
				require.Equal(t, "H", out.Handler)
				require.Equal(t, "greet", out.Command)
			}
			if tt.wantMask.Has(route.Command) {
				require.Empty(t, out.Command)
				require.Empty(t, r.Errors())
			}
		})
	}
}

func TestRouter_FallsThroughToLaterRoute(t *testing.T) {
	r := NewRouter(input.NewArgv([]string{"cmd"}))

	first, err := r.AddCommand("cmd", "first")
	require.NoError(t, err)
	_, err = first.WithFlags(map[string]any{"a": true})
	require.NoError(t, err)

	_, err = r.AddCommand("cmd", "second")
	require.NoError(t, err)

	out := resolve(t, r)
	require.True(t, out.OK)
	require.Equal(t, "second", out.Handler)

	// a later success clears the errors of earlier routes
	require.Empty(t, r.Errors())
}

func TestRouter_LastErrorWins(t *testing.T) {
	r := NewRouter(input.NewArgv([]string{"foo", "x"}))

	a, err := r.AddCommand("foo", "handler0")
	require.NoError(t, err)
	_, err = a.WithFlags(map[string]any{"f": true})
	require.NoError(t, err)

	b, err := r.AddCommand("foo", "handler1")
	require.NoError(t, err)
	_, err = b.WithOptions(map[string]any{"o": true})
	require.NoError(t, err)

	out := resolve(t, r)
	require.False(t, out.OK)
	require.Equal(t, "foo", out.Command)
	require.Equal(t, NotMatched|OptionsNotMatched, out.Mask)

	errs := r.Errors()
	require.Len(t, errs, 2)
	require.Equal(t, NotMatched|FlagsNotMatched, errs[0].(Outcome).Mask)
	require.Equal(t, out, errs[1])
}

func TestRouter_ResolveIsMemoized(t *testing.T) {
	r := NewRouter(input.NewArgv([]string{"cmd", "a"}))

	calls := 0
	rt, err := r.AddCommand("cmd", "h")
	require.NoError(t, err)
	_, err = rt.WithArguments(map[int]any{0: route.Predicate(func(input.Value, string) bool {
		calls++
		return true
	})})
	require.NoError(t, err)

	first := resolve(t, r)
	second := resolve(t, r)
	require.Equal(t, first, second)
	require.Equal(t, 1, calls)
}

func TestRouter_AddCommandRejectsEmptyName(t *testing.T) {
	r := NewRouter(nil)
	_, err := r.AddCommand("", "h")
	require.ErrorIs(t, err, ErrInvalidCommandName)
	require.Empty(t, r.Commands())
}

func TestRouter_AddCommandReturnsFactoryRoute(t *testing.T) {
	var built route.Route
	factory := route.NewFactory(func(owner route.Matcher) route.Route {
		built = route.New(owner)
		return built
	})

	r := NewRouter(nil, WithRouteFactory(factory))
	rt, err := r.AddCommand("foo", "foo")
	require.NoError(t, err)
	require.Same(t, built, rt)
}

func TestRouter_CommandsAndSuggest(t *testing.T) {
	r := NewRouter(nil)
	for _, name := range []string{"b", "a", "b", "c"} {
		_, err := r.AddCommand(name, name+"-handler")
		require.NoError(t, err)
	}

	require.Equal(t, []string{"b", "a", "c"}, r.Commands())
	require.Equal(t, []string{"a", "c"}, r.Suggest("b", 5))
}

func TestRouter_ParseError(t *testing.T) {
	r := NewRouter(failingParser{err: &input.ParseError{Near: "x"}})

	_, err := r.Resolve()
	var perr *input.ParseError
	require.ErrorAs(t, err, &perr)
}

func TestRouter_ForeignMatcherIsAnError(t *testing.T) {
	other := matcher.New()
	factory := route.NewFactory(func(route.Matcher) route.Route { return route.New(other) })

	r := NewRouter(input.NewArgv([]string{"cmd"}), WithRouteFactory(factory))
	_, err := r.AddCommand("cmd", "h")
	require.NoError(t, err)

	_, err = r.Resolve()
	require.ErrorIs(t, err, route.ErrForeignMatcher)
}

type recordingDispatcher struct {
	successes []string
	failures  [][]route.Category
}

func (d *recordingDispatcher) Success(command string, handler any, _ input.Record) Result {
	d.successes = append(d.successes, command)
	return Outcome{OK: true, Handler: handler, Command: command}
}

func (d *recordingDispatcher) Error(command string, notMatched []route.Category, _ input.Record) Result {
	d.failures = append(d.failures, notMatched)
	return Outcome{Command: command, Mask: MaskOf(notMatched)}
}

func TestRouter_CustomDispatcher(t *testing.T) {
	d := &recordingDispatcher{}
	r := NewRouter(input.NewArgv([]string{"foo", "-f"}), WithDispatcher(d))

	a, err := r.AddCommand("foo", 0)
	require.NoError(t, err)
	_, err = a.WithArguments(map[int]any{0: "x"})
	require.NoError(t, err)
	_, err = a.WithOptions(map[string]any{"o": true})
	require.NoError(t, err)

	_, err = r.AddCommand("foo", 1)
	require.NoError(t, err)

	res, err := r.Resolve()
	require.NoError(t, err)
	require.True(t, res.Matched())
	require.Equal(t, [][]route.Category{{route.Arguments, route.Options}}, d.failures)
	require.Equal(t, []string{"foo"}, d.successes)
}

func TestRouter_StringInput(t *testing.T) {
	r := NewRouter(input.NewLine(`deploy "my app" --env=prod -f`))

	rt, err := r.AddCommand("deploy", "deployer")
	require.NoError(t, err)
	_, err = rt.WithArguments(map[int]any{0: "R{/^[a-z ]+$/}"})
	require.NoError(t, err)
	_, err = rt.WithOptions(map[string]any{"env": "PROD"})
	require.NoError(t, err)
	_, err = rt.WithFlags(map[string]any{"f": 1})
	require.NoError(t, err)

	out := resolve(t, r)
	require.True(t, out.OK)
	require.Equal(t, []string{"my app"}, out.Input.Arguments)
}

type failingParser struct {
	input.Parser
	err error
}

func (f failingParser) Parse() error { return f.err }
