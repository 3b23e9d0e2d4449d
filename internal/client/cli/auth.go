package cli

import (
	"context"
)

// Login signs the user in with a single-use sign-in link and loads their
// current intake draft.
//
// The server answers the link request with the link token when link delivery
// is handled out of band; when the response is empty the user is asked to
// paste the link they received.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		printlnFn("error:", err)
		return err
	}

	link, err := a.client.RequestSignInLink(ctx, email)
	if err != nil {
		printlnFn("Sign-in link request failed:", err)
		return err
	}

	if link == "" {
		link, err = GetSecret("Paste the sign-in link from your email", a.out)
		if err != nil {
			printlnFn("error:", err)
			return err
		}
	}

	if err := a.client.SignIn(ctx, link); err != nil {
		printlnFn("Sign-in failed:", err)
		return err
	}

	a.email = email

	if err := a.controller.Load(ctx); err != nil {
		printlnFn("Could not load your intake:", err)
		return err
	}

	printlnFn("Signed in as", email)
	return nil
}

// Logout drops the session token. The server-side session expires on its own.
func (a *App) Logout(ctx context.Context) error {
	a.client.SetToken("")
	a.email = ""
	printlnFn("Signed out")
	return nil
}
