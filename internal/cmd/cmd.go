package cmd

import (
	"errors"
	"os"

	"github.com/alecthomas/kong"
	"github.com/pterm/pterm"

	"github.com/d1ctl/d1ctl/internal/cmd/database"
	"github.com/d1ctl/d1ctl/internal/cmd/version"
	"github.com/d1ctl/d1ctl/internal/config"
	"github.com/d1ctl/d1ctl/internal/http"
	"github.com/d1ctl/d1ctl/internal/ui"
)

// helper is implemented by errors that carry guidance for the user.
type helper interface {
	Help() string
}

// HandleErr prints err and any help attached to it, then exits with status 1.
func HandleErr(err error) {
	if err == nil {
		return
	}

	pterm.Error.Println(err)

	var errParse *kong.ParseError
	if errors.As(err, &errParse) {
		_ = kong.DefaultHelpPrinter(kong.HelpOptions{}, errParse.Context)
	}

	var h helper
	if errors.As(err, &h) && h.Help() != "" {
		pterm.Println()
		pterm.Info.Println(h.Help())
	}

	os.Exit(1)
}

type verbose bool

func (v verbose) BeforeApply() error {
	pterm.EnableDebugMessages()
	return nil
}

// Cmd is the d1ctl root command.
type Cmd struct {
	Database database.Cmd `cmd:"" aliases:"db" help:"Manage D1 databases."`
	Version  version.Cmd  `cmd:"" help:"Display version information."`
	Verbose  verbose      `short:"v" help:"Enable verbose output."`
}

func (c *Cmd) BeforeApply(kCtx *kong.Context) error {
	kCtx.BindTo(&config.FileStore{}, (*config.Store)(nil))
	kCtx.BindTo(http.DefaultClient, (*http.HTTPDoer)(nil))
	kCtx.BindTo(config.NewAuthorizer, (*config.AuthorizerFactory)(nil))
	kCtx.BindTo(config.NewAPIService, (*config.APIServiceFactory)(nil))
	kCtx.BindTo(ui.New(), (*ui.Provider)(nil))
	// loaded on demand so "version" works with a broken environment
	return kCtx.BindToProvider(func() (*config.Env, error) {
		return config.LoadEnv()
	})
}
