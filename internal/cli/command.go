// Package cli wires built-in commands and routes-file routes into a
// router and runs the matched action.
package cli

import (
	"fmt"
	"maps"
	"slices"

	"github.com/footprint-tools/sealion/internal/actions"
	"github.com/footprint-tools/sealion/internal/route"
)

// Command is one route offered by the CLI. Several commands may share a
// name; they are tried in order.
type Command struct {
	Name      string
	Summary   string
	Usage     string
	Arguments map[int]any
	Options   map[string]any
	Flags     map[string]any
	Action    actions.Action
	Builtin   bool
}

// Registrar is implemented by *dispatchers.Router.
type Registrar interface {
	AddCommand(name string, handler any) (route.Route, error)
}

// Register adds cmds to r in order. The Command itself is the handler.
func Register(r Registrar, cmds []Command) error {
	for _, c := range cmds {
		rt, err := r.AddCommand(c.Name, c)
		if err != nil {
			return fmt.Errorf("cli: %s: %w", c.Name, err)
		}

		decl := route.Declarations{Arguments: c.Arguments, Options: c.Options, Flags: c.Flags}
		if _, err := decl.Apply(rt); err != nil {
			return fmt.Errorf("cli: %s: %w", c.Name, err)
		}
	}
	return nil
}

// Catalog describes cmds for help output.
func Catalog(cmds []Command) []actions.Entry {
	entries := make([]actions.Entry, len(cmds))
	for i, c := range cmds {
		entries[i] = actions.Entry{
			Name:        c.Name,
			Summary:     c.Summary,
			Usage:       c.Usage,
			Constraints: describe(c),
			Options:     slices.Sorted(maps.Keys(c.Options)),
			Flags:       slices.Sorted(maps.Keys(c.Flags)),
			Builtin:     c.Builtin,
		}
	}
	return entries
}

func describe(c Command) []string {
	var out []string
	for _, pos := range slices.Sorted(maps.Keys(c.Arguments)) {
		out = append(out, fmt.Sprintf("argument %d  %s", pos, show(c.Arguments[pos])))
	}
	for _, name := range slices.Sorted(maps.Keys(c.Options)) {
		out = append(out, fmt.Sprintf("--%s  %s", name, show(c.Options[name])))
	}
	for _, name := range slices.Sorted(maps.Keys(c.Flags)) {
		out = append(out, fmt.Sprintf("-%s  %s", name, show(c.Flags[name])))
	}
	return out
}

func show(raw any) string {
	con, err := route.Declare(raw)
	if err != nil {
		return fmt.Sprintf("%v", raw)
	}
	return con.String()
}
