package actions

import (
	"errors"
	"fmt"
	"strings"

	"github.com/footprint-tools/sealion/internal/format"
)

const defaultHistoryLimit = 20

// ErrHistoryDisabled is returned when no history store is configured.
var ErrHistoryDisabled = errors.New("sealion: history is disabled. Enable it with 'sealion config set history true'")

func History(ctx *Context) error {
	return history(ctx, defaultDeps())
}

func history(ctx *Context, deps actionDependencies) error {
	if ctx.App.History == nil {
		return ErrHistoryDisabled
	}

	limit := ctx.Input.OptionInt("limit", defaultHistoryLimit)
	entries, err := ctx.App.History.Recent(limit)
	if err != nil {
		return err
	}

	s := ctx.App.Styler
	if len(entries) == 0 {
		ctx.println(s.Muted("no history yet"))
		return nil
	}

	now := deps.Now()
	var out strings.Builder
	for _, e := range entries {
		status := s.Success("ok  ")
		if !e.Matched {
			status = s.Error("miss")
		}
		fmt.Fprintf(&out, "%s  %s  %s  %s\n",
			s.Muted(format.DateTime(e.CreatedAt.Local())),
			s.Muted(fmt.Sprintf("%4s", format.Ago(now.Sub(e.CreatedAt)))),
			status,
			e.Line,
		)
	}

	ctx.App.Output.Pager(out.String())
	return nil
}
