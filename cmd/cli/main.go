package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/plantpal/internal/buildinfo"
	"github.com/dmitrijs2005/plantpal/internal/client/cli"
	"github.com/dmitrijs2005/plantpal/internal/client/config"
	"github.com/dmitrijs2005/plantpal/internal/flagx"
)

func main() {
	args := os.Args[1:]
	cfg := config.LoadConfig(args)

	kctx, err := cli.Parse(flagx.StripArgs(args, config.FlagNames), buildinfo.String())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	err = app.Execute(ctx, kctx)
	_ = app.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
