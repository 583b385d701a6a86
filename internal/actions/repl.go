package actions

import (
	"errors"

	"github.com/footprint-tools/sealion/internal/repl"
)

var (
	ErrNestedSession = errors.New("sealion: already in an interactive session")
	ErrNoTerminal    = errors.New("sealion: repl requires an interactive terminal")
)

func Repl(ctx *Context) error {
	return startRepl(ctx, defaultDeps())
}

func startRepl(ctx *Context, deps actionDependencies) error {
	if ctx.Shell == nil {
		return ErrNestedSession
	}
	if !deps.IsTerminal() {
		return ErrNoTerminal
	}

	ctx.App.Logger.Info("actions: repl started")
	defer ctx.App.Logger.Info("actions: repl finished")

	return repl.Run(ctx.context(), ctx.Shell, deps.Stdin, deps.Stdout)
}
