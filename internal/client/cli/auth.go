package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/ecorewards/internal/common"
)

// Indirections swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// Login prompts for an email and password. Both must be non-empty; they are
// not verified against anything.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	if email == "" || password == "" {
		return fmt.Errorf("%w: email and password are required", common.ErrorValidation)
	}

	a.ledger.Login(ctx, email, password)
	fmt.Fprintf(a.out, "Logged in as %s\n", email)
	return nil
}

// Logout ends the session. Progress is kept.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	a.ledger.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
