package cli

import (
	"context"
	"fmt"
)

// Account refreshes and prints the signed-in profile.
func (a *App) Account(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Sign in first.")
		return nil
	}

	a.coordinator.RefreshUser(ctx)

	s := a.snapshot()
	if s.User == nil {
		printlnFn("Your session has ended. Sign in again.")
		return nil
	}

	printlnFn(fmt.Sprintf("Name:           %s", s.User.Name))
	printlnFn(fmt.Sprintf("Email:          %s", s.User.Email))
	printlnFn(fmt.Sprintf("Account number: %s", s.User.AccountNumber))
	return nil
}
