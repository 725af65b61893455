package cmd

import (
	"github.com/ChainSafe/lifo/log"
	"github.com/urfave/cli/v2"
)

var (
	LogLevelFlag = &cli.StringFlag{
		Name:  "log-level",
		Usage: "log level. Options: trace, debug, info, warn, error",
		Value: "warn",
	}
	LogJSONFlag = &cli.BoolFlag{
		Name:  "log-json",
		Usage: "emit logs as JSON",
		Value: false,
	}
)

// NewApp builds the cli application with every command registered.
func NewApp(name string) *cli.App {
	app := cli.NewApp()
	app.Name = name
	app.Usage = "LIFO stack playground"
	app.Description = "Runs stack scripts and renders stacks built from the command line"
	app.Flags = []cli.Flag{
		LogLevelFlag,
		LogJSONFlag,
	}
	app.Before = func(ctx *cli.Context) error {
		log.Setup(ctx.String(LogLevelFlag.Name), ctx.Bool(LogJSONFlag.Name), ctx.App.ErrWriter)
		return nil
	}
	app.Commands = []*cli.Command{
		RunCommand,
		RenderCommand,
	}
	return app
}
