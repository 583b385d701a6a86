package actions

import (
	"errors"
	"fmt"

	"github.com/footprint-tools/sealion/internal/completions"
)

const binaryName = "sealion"

// Completions prints installation instructions for a shell, or with
// --script the completion script itself.
func Completions(ctx *Context) error {
	shell := completions.Shell(ctx.Input.Argument(0).String())
	if shell == "" {
		shell = completions.RunningShell()
		if shell == "" {
			return errors.New("sealion: could not detect shell, specify one: sealion completions <bash|zsh|fish>")
		}
	}
	if !shell.Valid() {
		return fmt.Errorf("sealion: unsupported shell: %s (use bash, zsh, or fish)", shell)
	}

	if ctx.Input.HasOption("script") {
		script, err := completions.Generate(shell, binaryName, commandInfos(ctx.Catalog))
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(ctx.App.Output, script)
		return err
	}

	printInstructions(ctx, shell)
	return nil
}

func commandInfos(catalog []Entry) []completions.CommandInfo {
	out := make([]completions.CommandInfo, len(catalog))
	for i, e := range catalog {
		out[i] = completions.CommandInfo{
			Name:    e.Name,
			Summary: e.Summary,
			Options: e.Options,
			Flags:   e.Flags,
		}
	}
	return out
}

func printInstructions(ctx *Context, shell completions.Shell) {
	ctx.println("To enable completions, choose one of the following:")
	ctx.println()

	n := 1
	if autoPath := completions.AutoInstallPath(shell, binaryName); autoPath != "" {
		ctx.printf("%d. Write to auto-load directory:\n", n)
		ctx.printf("   %s completions %s --script > %s\n", binaryName, shell, autoPath)
		ctx.println()
		n++
	}

	ctx.printf("%d. Add to %s:\n", n, completions.RcFile(shell))
	ctx.printf("   %s\n", completions.SourceInstructions(shell, binaryName))
}
