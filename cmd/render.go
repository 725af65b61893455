// Package cmd defines all the commands for the cli
package cmd

import (
	"fmt"

	"github.com/ChainSafe/lifo/common/lifo"
	"github.com/urfave/cli/v2"
)

var (
	SeparatorFlag = &cli.StringFlag{
		Name:  "separator",
		Usage: "separator placed between values",
		Value: lifo.DefaultSeparator,
	}
	PopFlag = &cli.IntFlag{
		Name:  "pop",
		Usage: "number of values to pop after pushing",
		Value: 0,
	}
)

func CreateRenderCommand(action cli.ActionFunc) *cli.Command {
	return &cli.Command{
		Name:        "render",
		Usage:       "Pushes the given values and prints the stack top to bottom",
		Description: "Pushes the given values in order, optionally pops some, and prints the stack",
		ArgsUsage:   "VALUE...",
		Action:      action,
		Flags: []cli.Flag{
			SeparatorFlag,
			PopFlag,
		},
	}
}

var RenderCommand = CreateRenderCommand(RenderStack)

func RenderStack(ctx *cli.Context) error {
	stack := lifo.New[string]()
	for _, v := range ctx.Args().Slice() {
		stack.Push(v)
	}

	pops := ctx.Int(PopFlag.Name)
	if pops < 0 {
		return fmt.Errorf("invalid pop count: %d", pops)
	}
	for i := 0; i < pops; i++ {
		if _, err := stack.Pop(); err != nil {
			return fmt.Errorf("pop %d of %d: %w", i+1, pops, err)
		}
	}

	_, err := fmt.Fprintln(ctx.App.Writer, stack.Join(ctx.String(SeparatorFlag.Name)))
	return err
}
