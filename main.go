package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/thenoetrevino/quadro/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cmd.Execute(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}
