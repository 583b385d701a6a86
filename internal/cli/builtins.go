package cli

import (
	"github.com/footprint-tools/sealion/internal/actions"
	"github.com/footprint-tools/sealion/internal/routefile"
)

// Builtins returns the commands every sealion binary offers. They are
// registered before any routes-file route.
func Builtins() []Command {
	return []Command{
		{
			Name:    "help",
			Summary: "Show commands, or the routes of one command",
			Usage:   "sealion help [<command>]",
			Action:  actions.Help,
			Builtin: true,
		},
		{
			Name:    "version",
			Summary: "Show sealion version",
			Usage:   "sealion version",
			Action:  actions.ShowVersion,
			Builtin: true,
		},
		{
			Name:      "config",
			Summary:   "Manage configuration",
			Usage:     "sealion config get <key>",
			Arguments: map[int]any{0: "get"},
			Action:    actions.ConfigGet,
			Builtin:   true,
		},
		{
			Name:      "config",
			Summary:   "Manage configuration",
			Usage:     "sealion config set <key> <value>",
			Arguments: map[int]any{0: "set"},
			Action:    actions.ConfigSet,
			Builtin:   true,
		},
		{
			Name:      "config",
			Summary:   "Manage configuration",
			Usage:     "sealion config unset <key>",
			Arguments: map[int]any{0: "unset"},
			Action:    actions.ConfigUnset,
			Builtin:   true,
		},
		{
			Name:      "config",
			Summary:   "Manage configuration",
			Usage:     "sealion config list",
			Arguments: map[int]any{0: "list"},
			Action:    actions.ConfigList,
			Builtin:   true,
		},
		{
			Name:    "history",
			Summary: "Show recently dispatched command lines",
			Usage:   "sealion history [--limit=<n>]",
			Options: map[string]any{"limit": `R{/^\d*$/}`},
			Action:  actions.History,
			Builtin: true,
		},
		{
			Name:    "completions",
			Summary: "Print shell completion setup or script",
			Usage:   "sealion completions [<bash|zsh|fish>] [--script]",
			Action:  actions.Completions,
			Builtin: true,
		},
		{
			Name:    "repl",
			Summary: "Start an interactive prompt",
			Usage:   "sealion repl",
			Action:  actions.Repl,
			Builtin: true,
		},
	}
}

// FromDefinitions turns routes-file definitions into commands that render
// their run template.
func FromDefinitions(defs []routefile.Definition) []Command {
	cmds := make([]Command, len(defs))
	for i, def := range defs {
		usage := def.Usage
		if usage == "" {
			usage = "sealion " + def.Name
		}
		cmds[i] = Command{
			Name:      def.Name,
			Summary:   def.Summary,
			Usage:     usage,
			Arguments: def.Arguments,
			Options:   def.Options,
			Flags:     def.Flags,
			Action:    actions.RunDefinition(def),
		}
	}
	return cmds
}
