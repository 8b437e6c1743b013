package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/eventhub/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for email and password and signs in. An unknown email
// creates an account unless auto-provisioning is switched off.
func (a *App) Login(ctx context.Context) error {
	if a.session().IsAuthenticated {
		fmt.Fprintln(a.out, "Already logged in; use 'logout' first.")
		return nil
	}

	email, err := getSimpleText(a.in, "Enter email", a.out)
	if err != nil {
		return err
	}
	if email == "" {
		return fmt.Errorf("%w: email is required", common.ErrorValidation)
	}

	password, err := getPassword(a.in, a.out)
	if err != nil {
		return err
	}
	defer wipe(password)

	u, err := a.auth.Login(ctx, email, string(password))
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			fmt.Fprintln(a.out, "Login failed: unknown email.")
			return nil
		}
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", u.Name)
	return nil
}

// Register prompts for name, email and password and creates a new account,
// then signs in as it.
func (a *App) Register(ctx context.Context) error {
	if a.session().IsAuthenticated {
		fmt.Fprintln(a.out, "Already logged in; use 'logout' first.")
		return nil
	}

	name, err := getSimpleText(a.in, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.in, "Enter email", a.out)
	if err != nil {
		return err
	}
	if name == "" || email == "" {
		return fmt.Errorf("%w: name and email are required", common.ErrorValidation)
	}

	password, err := getPassword(a.in, a.out)
	if err != nil {
		return err
	}
	defer wipe(password)

	u, err := a.auth.Register(ctx, name, email, string(password))
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Account created. Welcome, %s!\n", u.Name)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if !a.session().IsAuthenticated {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

func (a *App) WhoAmI(_ context.Context) error {
	state := a.session()
	if !state.IsAuthenticated {
		fmt.Fprintln(a.out, "anonymous")
		return nil
	}
	u := state.User
	role := "member"
	if u.IsAdmin {
		role = "admin"
	}
	fmt.Fprintf(a.out, "%s <%s> %s, id %s, last login %s\n", u.Name, u.Email, role, u.ID, u.LastLogin)
	return nil
}
