package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/northlink/selfcare/internal/client/client"
	"github.com/northlink/selfcare/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

const lastIdentifierKey = "last_identifier"

// Login prompts for credentials and signs in through the coordinator.
// Whatever the portal answers is shown to the customer as-is; an
// unreachable server gets the generic connectivity hint instead.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		printlnFn("Already signed in.")
		return nil
	}

	prompt := "Enter email, portal ID or account number"
	last, _ := a.repos.Metadata.Get(ctx, lastIdentifierKey)
	if len(last) > 0 {
		prompt = fmt.Sprintf("%s [%s]", prompt, last)
	}

	identifier, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return err
	}
	if identifier == "" && len(last) > 0 {
		identifier = string(last)
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	mfaCode, err := getSimpleText(a.reader, "MFA code (leave empty if none)", os.Stdout)
	if err != nil {
		return err
	}

	remember, err := getSimpleText(a.reader, "Remember this device? (y/N)", os.Stdout)
	if err != nil {
		return err
	}

	result := a.coordinator.Login(ctx, client.LoginInput{
		Identifier:     identifier,
		Password:       string(password),
		PortalType:     common.PortalResidential,
		MFACode:        mfaCode,
		RememberDevice: strings.EqualFold(remember, "y"),
	})

	if !result.Success {
		if result.Error != "" {
			printlnFn(result.Error)
		}
		return nil
	}

	_ = a.repos.Metadata.Set(ctx, lastIdentifierKey, []byte(identifier))
	printlnFn("Signed in.")
	return nil
}

// Logout signs out and drops the locally cached bills.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Not signed in.")
		return nil
	}

	a.coordinator.Logout(ctx)
	_ = a.repos.Invoices.Clear(ctx)
	printlnFn("Signed out.")
	return nil
}

// Extend dismisses the idle warning and keeps the session alive.
func (a *App) Extend(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Not signed in.")
		return nil
	}
	a.coordinator.Extend()
	printlnFn("Session extended.")
	return nil
}
