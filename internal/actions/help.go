package actions

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/footprint-tools/sealion/internal/usage"
)

// Help prints an overview of every command, or the routes registered
// under the name given as argument 0.
func Help(ctx *Context) error {
	var out bytes.Buffer

	if name := ctx.Input.Argument(0); name.Present() {
		if err := writeCommandHelp(&out, ctx, name.String()); err != nil {
			return err
		}
	} else {
		writeOverview(&out, ctx)
	}

	ctx.App.Output.Pager(out.String())
	return nil
}

func writeOverview(out *bytes.Buffer, ctx *Context) {
	s := ctx.App.Styler

	out.WriteString("sealion - route command lines to handlers\n\n")
	out.WriteString(s.Header("USAGE"))
	out.WriteString("\n   ")
	out.WriteString(formatUsage(ctx, "sealion [flags] <command> [arguments] [--option=value] [-flag]"))
	out.WriteString("\n\n")

	groups := []struct {
		title   string
		builtin bool
	}{
		{"built-in commands", true},
		{"routes", false},
	}

	for _, g := range groups {
		var names []string
		summaries := map[string]string{}
		for _, e := range ctx.Catalog {
			if e.Builtin != g.builtin {
				continue
			}
			if _, seen := summaries[e.Name]; !seen {
				names = append(names, e.Name)
				summaries[e.Name] = e.Summary
			}
		}
		if len(names) == 0 {
			continue
		}

		out.WriteString(s.Header(g.title))
		out.WriteString("\n")
		for _, name := range names {
			fmt.Fprintf(out, "   %s  %s\n", s.Info(fmt.Sprintf("%-16s", name)), summaries[name])
		}
		out.WriteString("\n")
	}

	out.WriteString(s.Muted("See 'sealion help <command>' for the routes of a command."))
	out.WriteString("\n")
}

func writeCommandHelp(out *bytes.Buffer, ctx *Context, name string) error {
	s := ctx.App.Styler

	var routes []Entry
	for _, e := range ctx.Catalog {
		if e.Name == name {
			routes = append(routes, e)
		}
	}
	if len(routes) == 0 {
		var suggestions []string
		if ctx.Suggest != nil {
			suggestions = ctx.Suggest(name)
		}
		return usage.UnknownCommand(name, suggestions...)
	}

	for i, e := range routes {
		if i > 0 {
			out.WriteString("\n")
		}
		title := name
		if len(routes) > 1 {
			title = fmt.Sprintf("%s (route %d)", name, i+1)
		}
		out.WriteString(s.Header(title))
		if e.Summary != "" {
			out.WriteString(" - ")
			out.WriteString(e.Summary)
		}
		out.WriteString("\n")

		if e.Usage != "" {
			out.WriteString("   ")
			out.WriteString(formatUsage(ctx, e.Usage))
			out.WriteString("\n")
		}
		if len(e.Constraints) == 0 {
			out.WriteString(s.Muted("   accepts any input"))
			out.WriteString("\n")
			continue
		}
		for _, c := range e.Constraints {
			fmt.Fprintf(out, "   %s\n", c)
		}
	}
	return nil
}

// formatUsage styles the usage line with the command in Info color and the rest muted.
func formatUsage(ctx *Context, line string) string {
	s := ctx.App.Styler

	cmdEnd := strings.IndexAny(line, "[<-")
	if cmdEnd < 0 {
		return s.Info(line)
	}

	cmd := strings.TrimSpace(line[:cmdEnd])
	if cmd == "" {
		return s.Muted(line)
	}
	return s.Info(cmd) + " " + s.Muted(line[cmdEnd:])
}
