// Package actions holds the handlers run for built-in commands and for
// routes loaded from a routes file.
package actions

import (
	"context"

	"github.com/footprint-tools/sealion/internal/domain"
	"github.com/footprint-tools/sealion/internal/input"
)

// Context is what an Action receives for one dispatched command line.
type Context struct {
	Ctx     context.Context
	Command string
	Input   input.Record
	App     *domain.Application

	// Catalog lists every registered route, for help.
	Catalog []Entry
	// Suggest returns registered names close to name.
	Suggest func(name string) []string
	// Shell dispatches one more line and returns its output. It is nil
	// while already inside an interactive session.
	Shell func(line string) (string, error)
}

// Action handles a matched route.
type Action func(*Context) error

// Entry describes one registered route.
type Entry struct {
	Name        string
	Summary     string
	Usage       string
	Constraints []string
	Options     []string
	Flags       []string
	Builtin     bool
}

func (c *Context) context() context.Context {
	if c.Ctx == nil {
		return context.Background()
	}
	return c.Ctx
}

func (c *Context) printf(format string, args ...any) {
	_, _ = c.App.Output.Printf(format, args...)
}

func (c *Context) println(args ...any) {
	_, _ = c.App.Output.Println(args...)
}
