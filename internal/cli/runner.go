package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/footprint-tools/sealion/internal/actions"
	"github.com/footprint-tools/sealion/internal/dispatchers"
	"github.com/footprint-tools/sealion/internal/domain"
	"github.com/footprint-tools/sealion/internal/input"
	"github.com/footprint-tools/sealion/internal/route"
	"github.com/footprint-tools/sealion/internal/ui"
	"github.com/footprint-tools/sealion/internal/usage"
)

const (
	defaultSuggestions  = 3
	defaultHistoryLimit = 500
)

// Runner dispatches command lines against a fixed set of commands.
type Runner struct {
	App      *domain.Application
	Commands []Command

	// Suggestions caps the names offered for an unknown command.
	Suggestions int
	// HistoryLimit is how many history entries are kept; 0 keeps all.
	HistoryLimit int
}

// NewRunner reads the suggestions and history_limit keys from the app config.
func NewRunner(app *domain.Application, cmds []Command) *Runner {
	return &Runner{
		App:          app,
		Commands:     cmds,
		Suggestions:  configInt(app, "suggestions", defaultSuggestions),
		HistoryLimit: configInt(app, "history_limit", defaultHistoryLimit),
	}
}

func configInt(app *domain.Application, key string, def int) int {
	if app.Config == nil {
		return def
	}
	v, ok := app.Config.Get(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}

// Run resolves p and runs the matched command. line is the text recorded
// in history; when empty the parsed tokens are recorded instead.
func (r *Runner) Run(ctx context.Context, p input.Parser, line string) error {
	return r.run(ctx, r.App, p, line, true)
}

// Line parses and runs a single command line.
func (r *Runner) Line(ctx context.Context, line string) error {
	return r.Run(ctx, input.NewLine(line), line)
}

func (r *Runner) run(ctx context.Context, app *domain.Application, p input.Parser, line string, topLevel bool) error {
	router := dispatchers.NewRouter(p, dispatchers.WithLogger(app.Logger))
	if err := Register(router, r.Commands); err != nil {
		return err
	}

	res, err := router.Resolve()
	if err != nil {
		var pe *input.ParseError
		if errors.As(err, &pe) {
			return usage.InvalidInput(pe)
		}
		return usage.InvalidInput(err)
	}

	out, ok := res.(dispatchers.Outcome)
	if !ok {
		return fmt.Errorf("cli: unexpected result %T", res)
	}

	command, _ := p.Command()
	r.record(app, line, command, out)

	if !out.OK {
		return r.mismatch(router, command, out)
	}

	cmd, ok := out.Handler.(Command)
	if !ok || cmd.Action == nil {
		return fmt.Errorf("cli: %s: route has no action", command)
	}

	actx := &actions.Context{
		Ctx:     ctx,
		Command: command,
		Input:   out.Record(),
		App:     app,
		Catalog: Catalog(r.Commands),
		Suggest: func(name string) []string {
			return router.Suggest(name, r.Suggestions)
		},
	}
	if topLevel {
		actx.Shell = r.shell(ctx, app)
	}

	app.Logger.Debug("cli: running %s (%s)", command, out.Mask)
	return cmd.Action(actx)
}

// shell returns a dispatcher for interactive sessions. Output is captured
// and nested sessions are refused.
func (r *Runner) shell(ctx context.Context, app *domain.Application) func(string) (string, error) {
	return func(line string) (string, error) {
		var buf bytes.Buffer
		sub := *app
		sub.Output = ui.NewWriterTo(&buf, ui.WithPagerDisabled())

		err := r.run(ctx, &sub, input.NewLine(line), line, false)
		return buf.String(), err
	}
}

func (r *Runner) mismatch(router *dispatchers.Router, command string, out dispatchers.Outcome) error {
	if out.Mask.Has(route.Command) {
		return usage.UnknownCommand(command, router.Suggest(command, r.Suggestions)...)
	}

	var names []string
	for _, c := range out.Mask.Categories() {
		names = append(names, c.String())
	}
	return usage.RouteMismatch(command, names)
}

func (r *Runner) record(app *domain.Application, line, command string, out dispatchers.Outcome) {
	if app.History == nil {
		return
	}
	if line == "" {
		line = strings.Join(out.Record().Tokens(), " ")
	}

	_, err := app.History.Record(domain.HistoryEntry{
		Line:    line,
		Command: command,
		Matched: out.OK,
		Mask:    uint8(out.Mask),
	})
	if err != nil {
		app.Logger.Warn("cli: record history: %v", err)
		return
	}

	if r.HistoryLimit > 0 {
		if _, err := app.History.Prune(r.HistoryLimit); err != nil {
			app.Logger.Warn("cli: prune history: %v", err)
		}
	}
}
