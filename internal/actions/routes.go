package actions

import (
	"github.com/footprint-tools/sealion/internal/routefile"
)

// RunDefinition returns the action for a route loaded from a routes file:
// it renders the route's run template with the dispatched input.
func RunDefinition(def routefile.Definition) Action {
	return func(ctx *Context) error {
		ctx.App.Logger.Debug("actions: running %s", def.Name)
		return def.Render(ctx.App.Output, ctx.Input)
	}
}
