package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/photokeeper/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func (a *App) register(ctx context.Context) {
	fullName, err := getSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		a.errorf("%v", err)
		return
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		a.errorf("%v", err)
		return
	}

	password, err := getPassword(a.out)
	if err != nil {
		a.errorf("%v", err)
		return
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Register(ctx, fullName, email, password); err != nil {
		a.errorf("%v", err)
		return
	}

	fmt.Fprintln(a.out, "Success!")
}

func (a *App) login(ctx context.Context) {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		a.errorf("%v", err)
		return
	}

	password, err := getPassword(a.out)
	if err != nil {
		a.errorf("%v", err)
		return
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Login(ctx, email, password); err != nil {
		a.errorf("%v", err)
		return
	}

	fmt.Fprintln(a.out, "Success!")

	// Populate the cache right away so the first "list" is warm.
	if err := a.library.Refresh(ctx); err != nil {
		a.log.Warn(ctx, "initial refresh failed", "error", err)
	}
}

func (a *App) logout(ctx context.Context) {
	if err := a.auth.Logout(ctx); err != nil {
		a.errorf("%v", err)
		return
	}
	fmt.Fprintln(a.out, "Logged out")
}

func (a *App) whoami(ctx context.Context) {
	user, err := a.auth.Me(ctx)
	if err != nil {
		a.errorf("%v", err)
		return
	}
	fmt.Fprintf(a.out, "%s <%s>\n", user.FullName, user.Email)
}

func (a *App) status(ctx context.Context) {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not logged in")
		return
	}

	if expiry, ok := a.session.ExpiresAt(); ok {
		fmt.Fprintf(a.out, "Logged in, session expires %s\n", expiry.Format("2006-01-02 15:04:05"))
	} else {
		fmt.Fprintln(a.out, "Logged in")
	}

	pending, err := a.library.PendingCount(ctx)
	if err != nil {
		a.errorf("%v", err)
		return
	}
	if pending > 0 {
		fmt.Fprintf(a.out, "%d record(s) still processing\n", pending)
	}
}
