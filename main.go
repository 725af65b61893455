package main

import (
	"context"
	"os"

	"github.com/ChainSafe/lifo/cmd"
	"github.com/ChainSafe/lifo/log"
)

func main() {
	app := cmd.NewApp(os.Args[0])
	err := app.RunContext(context.Background(), os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
