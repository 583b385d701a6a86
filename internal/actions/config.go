package actions

import (
	"github.com/footprint-tools/sealion/internal/domain"
	"github.com/footprint-tools/sealion/internal/usage"
)

// The config routes share the command name "config" and are told apart by
// argument 0, so the key is argument 1 and the value argument 2.

func ConfigGet(ctx *Context) error {
	key := ctx.Input.Argument(1)
	if !key.Present() {
		return usage.MissingArgument("key")
	}
	if !domain.IsValidConfigKey(key.String()) {
		return usage.InvalidConfigKey(key.String())
	}

	value, _ := ctx.App.Config.Get(key.String())
	ctx.println(value)
	return nil
}

func ConfigSet(ctx *Context) error {
	return configSet(ctx, defaultDeps())
}

func configSet(ctx *Context, deps actionDependencies) error {
	key, value := ctx.Input.Argument(1), ctx.Input.Argument(2)
	if !key.Present() || !value.Present() {
		return usage.MissingArgument("key value")
	}
	if !domain.IsValidConfigKey(key.String()) {
		return usage.InvalidConfigKey(key.String())
	}

	lines, err := deps.ReadLines()
	if err != nil {
		return err
	}

	lines, updated := deps.Set(lines, key.String(), value.String())
	if err := deps.WriteLines(lines); err != nil {
		return err
	}

	action := "added"
	if updated {
		action = "updated"
	}
	ctx.printf("%s %s=%s\n", action, key, value)
	return nil
}

func ConfigUnset(ctx *Context) error {
	return configUnset(ctx, defaultDeps())
}

func configUnset(ctx *Context, deps actionDependencies) error {
	key := ctx.Input.Argument(1)
	if !key.Present() {
		return usage.MissingArgument("key")
	}

	lines, err := deps.ReadLines()
	if err != nil {
		return err
	}

	lines, removed := deps.Unset(lines, key.String())
	if !removed {
		ctx.printf("%s is not set\n", key)
		return nil
	}

	if err := deps.WriteLines(lines); err != nil {
		return err
	}
	ctx.printf("unset %s\n", key)
	return nil
}

// ConfigList prints visible keys grouped by section.
func ConfigList(ctx *Context) error {
	values, err := ctx.App.Config.GetAll()
	if err != nil {
		return err
	}

	bySection := domain.ConfigKeysBySection()
	first := true
	for _, section := range domain.ConfigSections() {
		var printed bool
		for _, key := range bySection[section] {
			if key.Hidden {
				continue
			}
			value, ok := values[key.Name]
			if key.HideIfEmpty && (!ok || value == "") {
				continue
			}
			if !printed {
				if !first {
					ctx.println()
				}
				ctx.println(ctx.App.Styler.Header(section))
				printed, first = true, false
			}
			ctx.printf("%s=%s\n", key.Name, value)
		}
	}
	return nil
}
