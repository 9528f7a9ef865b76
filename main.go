package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/pterm/pterm"

	"github.com/d1ctl/d1ctl/internal/cmd"
)

func main() {
	// ensure the pterm info width matches the other printers
	pterm.Info.Prefix.Text = " INFO  "

	ctx, cancel := cliContext()
	defer cancel()

	cmd.HandleErr(run(ctx))
}

func run(ctx context.Context) error {
	var root cmd.Cmd
	parser, err := kong.New(
		&root,
		kong.Name("d1ctl"),
		kong.Description("Command line tool for managing Cloudflare D1 databases."),
		kong.UsageOnError(),
	)
	if err != nil {
		return err
	}
	parsed, err := parser.Parse(os.Args[1:])
	if err != nil {
		return err
	}
	if err := parsed.BindToProvider(bindCtx(ctx)); err != nil {
		return err
	}
	return parsed.Run()
}

// get a context that listens for interrupt/shutdown signals.
func cliContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// bindCtx exists to allow kong to correctly inject a context.Context into the Run methods on the commands.
func bindCtx(ctx context.Context) func() (context.Context, error) {
	return func() (context.Context, error) {
		return ctx, nil
	}
}
