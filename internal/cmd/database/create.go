package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/pterm/pterm"

	"github.com/d1ctl/d1ctl/internal/api"
	"github.com/d1ctl/d1ctl/internal/auth"
	"github.com/d1ctl/d1ctl/internal/config"
	"github.com/d1ctl/d1ctl/internal/http"
	"github.com/d1ctl/d1ctl/internal/ui"
)

// betaWarning is shown before every database operation and in the command help.
const betaWarning = `--------------------
🚧 D1 is currently in open beta
🚧 Please report any bugs to https://github.com/d1ctl/d1ctl/issues/new
--------------------`

var (
	validate      = validator.New(validator.WithRequiredStructEnabled())
	defaultStyles = ui.DefaultStyles()
)

// CreateCmd creates a D1 database.
type CreateCmd struct {
	Name                string `arg:"" help:"The name of the new DB."`
	PrimaryLocationHint string `name:"primary-location-hint" help:"A hint for the location of the D1 Primary."`
}

// Help is shown below the usage of the command.
func (c *CreateCmd) Help() string {
	return betaWarning
}

// Run executes the create database command.
func (c *CreateCmd) Run(
	ctx context.Context,
	env *config.Env,
	store config.Store,
	httpClient http.HTTPDoer,
	authFactory config.AuthorizerFactory,
	apiFactory config.APIServiceFactory,
	ui ui.Provider,
) error {
	authz, err := authFactory(httpClient, env, store, ui, ui.Interactive())
	if err != nil {
		return err
	}

	newService := func(authCtx *auth.Context) (api.Service, error) {
		return apiFactory(httpClient, env, authCtx)
	}

	return c.execute(ctx, authz, newService, ui)
}

func (c *CreateCmd) execute(
	ctx context.Context,
	authz auth.Requirer,
	newService func(*auth.Context) (api.Service, error),
	ui ui.Provider,
) error {
	req := api.CreateDatabaseRequest{
		Name:                c.Name,
		PrimaryLocationHint: c.PrimaryLocationHint,
	}
	if err := validateRequest(req); err != nil {
		return err
	}

	authCtx, err := authz.RequireAuth(ctx, auth.Options{})
	if err != nil {
		return err
	}

	ui.ShowInfo(betaWarning)

	svc, err := newService(authCtx)
	if err != nil {
		return err
	}

	pterm.Debug.Printfln("Creating database %q in account %s", req.Name, authCtx.AccountID)
	db, err := svc.CreateDatabase(ctx, authCtx.AccountID, req)
	if err != nil {
		return translate(req.Name, err)
	}

	report, err := render(db, req.PrimaryLocationHint, defaultStyles)
	if err != nil {
		return fmt.Errorf("failed to render result: %w", err)
	}
	ui.ShowSuccess(report)

	return nil
}

func validateRequest(req api.CreateDatabaseRequest) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			if fe.Field() == "Name" && fe.Tag() == "required" {
				return errors.New("database name is required")
			}
		}
	}
	return fmt.Errorf("invalid request: %w", err)
}
