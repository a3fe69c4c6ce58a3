package cli

import (
	"context"
	"fmt"
)

// lockScreen is the passcode challenge. Two sub-modes exist: entering an
// existing passcode, or setting a first one when the account has none yet.
// Returns true when the user wants to exit.
func (a *App) lockScreen(ctx context.Context) bool {
	if !a.session.State().NeedsAppLock {
		return a.setPasscodeScreen(ctx)
	}

	fmt.Fprintln(a.out, "App is locked.")

	passcode, err := GetSecret("Enter passcode (empty to exit)", a.out)
	if err != nil {
		return true
	}
	if passcode == "" {
		return true
	}

	if err := a.session.VerifyAppLock(ctx, passcode); err != nil {
		fmt.Fprintf(a.out, "unlock failed: %s\n", err)
	}
	return false
}

// setPasscodeScreen collects a new passcode with confirmation. Validation
// failures never reach the server.
func (a *App) setPasscodeScreen(ctx context.Context) bool {
	fmt.Fprintln(a.out, "Set an app-lock passcode.")

	passcode, err := GetSecret("New passcode (min 4 characters, empty to cancel)", a.out)
	if err != nil {
		return true
	}
	if passcode == "" {
		return false
	}

	confirmation, err := GetSecret("Confirm passcode", a.out)
	if err != nil {
		return true
	}

	if err := a.session.SetAppLock(ctx, passcode, confirmation); err != nil {
		fmt.Fprintf(a.out, "could not set passcode: %s\n", err)
		return false
	}

	fmt.Fprintln(a.out, "Passcode set.")
	return false
}
