package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/plantpal/internal/client/session"
	"github.com/dmitrijs2005/plantpal/internal/common"
)

type SignInCmd struct {
	Email string `arg:"" optional:"" help:"Account email; prompted when omitted."`
}

func (c *SignInCmd) Run(ctx context.Context, a *App) error {
	if a.session.State() == session.Authenticated {
		a.printf("Already signed in as %s. Run `plantpal signout` first.\n", a.session.Email())
		return nil
	}

	email, err := a.prompt().lineIfEmpty(c.Email, "Enter email")
	if err != nil {
		return err
	}

	password, err := a.prompt().password()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.SignIn(ctx, email, string(password)); err != nil {
		return err
	}

	a.printf("Signed in as %s.\n", a.session.Email())
	return nil
}

type SignUpCmd struct {
	Name  string `help:"Your full name; prompted when omitted." short:"n"`
	Email string `help:"Account email; prompted when omitted." short:"e"`
}

func (c *SignUpCmd) Run(ctx context.Context, a *App) error {
	if a.session.State() == session.Authenticated {
		a.printf("Already signed in as %s. Run `plantpal signout` first.\n", a.session.Email())
		return nil
	}

	name, err := a.prompt().lineIfEmpty(c.Name, "Enter full name")
	if err != nil {
		return err
	}
	email, err := a.prompt().lineIfEmpty(c.Email, "Enter email")
	if err != nil {
		return err
	}

	password, err := a.prompt().password()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.SignUp(ctx, name, email, string(password)); err != nil {
		return err
	}

	a.printf("Welcome to PlantPal, %s!\n", name)
	return nil
}

type SignOutCmd struct{}

func (c *SignOutCmd) Run(ctx context.Context, a *App) error {
	if err := a.session.SignOut(ctx); err != nil {
		return err
	}
	a.println("Signed out.")
	return nil
}

type StatusCmd struct{}

func (c *StatusCmd) Run(ctx context.Context, a *App) error {
	if err := a.requireSession(); err != nil {
		if errors.Is(err, ErrNotSignedIn) {
			a.println("Not signed in.")
			return nil
		}
		return err
	}
	a.printf("Signed in as %s.\n", a.session.Email())
	return nil
}
