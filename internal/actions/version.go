package actions

func ShowVersion(ctx *Context) error {
	return showVersion(ctx, defaultDeps())
}

func showVersion(ctx *Context, deps actionDependencies) error {
	ctx.printf("sealion version %v\n", deps.Version())
	return nil
}
