package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/footprint-tools/sealion/internal/app"
	"github.com/footprint-tools/sealion/internal/cli"
	"github.com/footprint-tools/sealion/internal/input"
	"github.com/footprint-tools/sealion/internal/log"
	"github.com/footprint-tools/sealion/internal/usage"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type globalFlags struct {
	routes   string
	line     string
	logLevel string
	noColor  bool
	noPager  bool
	help     bool
	version  bool
}

func newFlagSet(g *globalFlags) *pflag.FlagSet {
	fs := pflag.NewFlagSet("sealion", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	// Everything after the command name belongs to the route.
	fs.SetInterspersed(false)

	fs.StringVar(&g.routes, "routes", "", "load routes from `file` instead of routes_file")
	fs.StringVarP(&g.line, "string", "s", "", "dispatch `line` instead of the remaining arguments")
	fs.StringVar(&g.logLevel, "log-level", "", "log level: debug, info, warn or error")
	fs.BoolVar(&g.noColor, "no-color", false, "disable colored output")
	fs.BoolVar(&g.noPager, "no-pager", false, "never page output")
	fs.BoolVarP(&g.help, "help", "h", false, "show help")
	fs.BoolVarP(&g.version, "version", "v", false, "show sealion version")
	return fs
}

func run(args []string, stdout, stderr io.Writer) int {
	var g globalFlags
	fs := newFlagSet(&g)
	if err := fs.Parse(args); err != nil {
		return fail(stderr, usage.FlagError(err))
	}

	opts := app.DefaultOptions()
	opts.Output = stdout
	opts.PagerDisabled = g.noPager
	opts.StyleEnabled = !g.noColor && isTerminal(stdout)
	if fs.Changed("log-level") {
		if !validLevel(g.logLevel) {
			return fail(stderr, usage.InvalidFlag("--log-level="+g.logLevel))
		}
		opts.LogEnabled = true
		opts.LogLevel = log.ParseLevel(g.logLevel)
	}

	application, err := app.New(opts)
	if err != nil {
		return fail(stderr, err)
	}
	defer func() { _ = app.Close(application) }()

	routesPath, required := g.routes, fs.Changed("routes")
	if !required {
		routesPath, _ = application.Config.Get("routes_file")
	}
	routes, err := cli.LoadRoutes(routesPath, required)
	if err != nil {
		return fail(stderr, err)
	}

	runner := cli.NewRunner(application, append(cli.Builtins(), routes...))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch {
	case g.version:
		err = runner.Line(ctx, "version")
	case g.help:
		tokens := append([]string{"help"}, fs.Args()...)
		err = runner.Run(ctx, input.NewArgv(tokens), strings.Join(tokens, " "))
		if err == nil && fs.NArg() == 0 {
			fmt.Fprintf(stdout, "\nFLAGS\n%s", fs.FlagUsages())
		}
	case fs.Changed("string"):
		err = runner.Line(ctx, g.line)
	default:
		err = runner.Run(ctx, input.NewArgv(fs.Args()), "")
	}

	if err != nil {
		return fail(stderr, err)
	}
	return 0
}

func fail(stderr io.Writer, err error) int {
	fmt.Fprintln(stderr, err.Error())

	var ue *usage.Error
	if errors.As(err, &ue) {
		return ue.GetExitCode()
	}
	return 1
}

func validLevel(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug", "info", "warn", "warning", "error":
		return true
	}
	return false
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
