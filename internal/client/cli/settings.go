package cli

import (
	"context"
	"fmt"
)

// setLockFromSettings configures a passcode from the authenticated screen.
// On success the app immediately drops behind the lock.
func (a *App) setLockFromSettings(ctx context.Context) {
	passcode, err := GetSecret("New passcode (min 4 characters)", a.out)
	if err != nil {
		return
	}
	confirmation, err := GetSecret("Confirm passcode", a.out)
	if err != nil {
		return
	}

	if err := a.session.SetAppLock(ctx, passcode, confirmation); err != nil {
		fmt.Fprintf(a.out, "could not set passcode: %s\n", err)
		return
	}
	fmt.Fprintln(a.out, "Passcode set. The app is now locked.")
}

func (a *App) removeLock(ctx context.Context) {
	if !a.session.State().NeedsAppLock {
		fmt.Fprintln(a.out, "No passcode is configured.")
		return
	}

	passcode, err := GetSecret("Current passcode", a.out)
	if err != nil {
		return
	}

	if err := a.session.RemoveAppLock(ctx, passcode); err != nil {
		fmt.Fprintf(a.out, "could not remove passcode: %s\n", err)
		return
	}
	fmt.Fprintln(a.out, "Passcode removed.")
}
