package cli

import (
	"context"
	"fmt"

	"github.com/dkrasnov/notable/internal/client/router"
	"github.com/dkrasnov/notable/internal/client/validation"
	"github.com/dkrasnov/notable/internal/shared"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// viewLogin renders the sign-in form: prompt for credentials, validate
// locally, and only then call the auth service. On success the session
// transition happens first and navigation follows from the new state.
//
// The password byte slice is securely wiped before returning.
func (a *App) viewLogin(ctx context.Context, _ router.Params) error {
	fmt.Fprintln(a.out, "-- Sign in --")

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	form := validation.SignInForm{Email: email, Password: string(password)}
	if errs := validation.ValidateSignIn(form); len(errs) > 0 {
		a.renderFieldErrors(errs)
		return nil
	}

	a.session.SetLoading(true)
	defer a.session.SetLoading(false)

	user, err := a.auth.SignIn(ctx, email, string(password))
	if err != nil {
		a.log.Warn(ctx, "sign-in failed", "error", err)
		a.session.SetError(err.Error())
		fmt.Fprintln(a.out, err.Error())
		return nil
	}

	a.session.SetUser(*user)
	if a.session.State().IsAuthenticated {
		return a.router.Navigate(ctx, "/notes")
	}
	return nil
}

// viewSignup renders the sign-up form. Flow mirrors viewLogin with the
// additional name field.
func (a *App) viewSignup(ctx context.Context, _ router.Params) error {
	fmt.Fprintln(a.out, "-- Sign up --")

	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	form := validation.SignUpForm{Name: name, Email: email, Password: string(password)}
	if errs := validation.ValidateSignUp(form); len(errs) > 0 {
		a.renderFieldErrors(errs)
		return nil
	}

	a.session.SetLoading(true)
	defer a.session.SetLoading(false)

	user, err := a.auth.SignUp(ctx, name, email, string(password))
	if err != nil {
		a.log.Warn(ctx, "sign-up failed", "error", err)
		a.session.SetError(err.Error())
		fmt.Fprintln(a.out, err.Error())
		return nil
	}

	a.session.SetUser(*user)
	if a.session.State().IsAuthenticated {
		return a.router.Navigate(ctx, "/notes")
	}
	return nil
}

// Logout asks the server to invalidate the session, then clears the
// local session and navigates to the login page. When the server call
// fails the local session is left untouched and the failure is reported.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.SignOut(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
		fmt.Fprintln(a.out, "Logout failed")
		return err
	}

	a.session.ClearUser()
	a.notesSt.Reset()
	return a.router.Navigate(ctx, router.LoginPath)
}
