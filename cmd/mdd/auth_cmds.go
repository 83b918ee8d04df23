package main

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/mdd-app/mdd-go/internal/domain"
	"github.com/mdd-app/mdd-go/internal/guard"
	"github.com/mdd-app/mdd-go/internal/validate"
)

func runHome(cc *commandContext, args []string) error {
	fs := flag.NewFlagSet("home", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := enter(cc, guard.RouteHome); err != nil {
		return skipToNil(err)
	}
	return showHome(cc)
}

func showHome(cc *commandContext) error {
	fmt.Fprintln(cc.Out, "MDD - the developer community")
	fmt.Fprintln(cc.Out)
	fmt.Fprintln(cc.Out, "  mdd login      log in to your account")
	fmt.Fprintln(cc.Out, "  mdd register   create an account")
	return nil
}

func runLogin(cc *commandContext, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	returnTo := fs.String("return", "", "view to open after logging in")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := enter(cc, guard.RouteLogin); err != nil {
		return skipToNil(err)
	}
	if err := validate.Required(map[string]string{
		"email": *email, "password": *password,
	}, "email", "password"); err != nil {
		return err
	}

	resp, err := cc.App.API.Login(cc.Ctx, *email, *password)
	if err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "welcome back, %s\n\n", resp.Username)

	// Navigate to the requested view, defaulting to the article feed.
	target := guard.Route(strings.TrimSpace(*returnTo))
	if target == "" {
		target = guard.RouteArticles
	}
	return renderRoute(cc, target)
}

func runRegister(cc *commandContext, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	username := fs.String("username", "", "public username")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := enter(cc, guard.RouteRegister); err != nil {
		return skipToNil(err)
	}
	if err := validate.Required(map[string]string{
		"email": *email, "username": *username, "password": *password,
	}, "email", "username", "password"); err != nil {
		return err
	}
	if issues := validate.Password(*password); len(issues) > 0 {
		return fmt.Errorf("password too weak: needs %s", strings.Join(issues, ", "))
	}

	resp, err := cc.App.API.Register(cc.Ctx, *email, *username, *password)
	if err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "welcome, %s\n\n", resp.Username)
	return renderRoute(cc, guard.RouteArticles)
}

func runLogout(cc *commandContext, args []string) error {
	fs := flag.NewFlagSet("logout", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	msg := cc.App.API.Logout(cc.Ctx)
	fmt.Fprintln(cc.Out, msg)
	return nil
}

func runWhoami(cc *commandContext, args []string) error {
	fs := flag.NewFlagSet("whoami", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := enter(cc, guard.RouteProfile); err != nil {
		return skipToNil(err)
	}
	return showProfile(cc)
}

func showProfile(cc *commandContext) error {
	user, err := cc.App.API.Me(cc.Ctx)
	if err != nil {
		// The session keeps its cached profile when the refresh fails.
		if cached, ok := cc.App.Session.User(); ok {
			cc.Logger.WarnContext(cc.Ctx, "profile refresh failed, showing cached profile", "error", err)
			renderUser(cc.Out, cached)
			return nil
		}
		return err
	}
	renderUser(cc.Out, user)
	return nil
}

func runProfile(cc *commandContext, args []string) error {
	fs := flag.NewFlagSet("profile", flag.ContinueOnError)
	username := fs.String("username", "", "new username (optional)")
	email := fs.String("email", "", "new email (optional)")
	password := fs.String("password", "", "new password (optional)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := enter(cc, guard.RouteProfile); err != nil {
		return skipToNil(err)
	}
	if *username == "" && *email == "" && *password == "" {
		return errors.New("nothing to update: pass -username, -email and/or -password")
	}
	if issues := validate.Password(*password); len(issues) > 0 {
		return fmt.Errorf("password too weak: needs %s", strings.Join(issues, ", "))
	}

	user, err := cc.App.API.UpdateProfile(cc.Ctx, domain.UpdateProfileRequest{
		Username: strings.TrimSpace(*username),
		Email:    strings.TrimSpace(*email),
		Password: *password,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(cc.Out, "profile updated")
	renderUser(cc.Out, user)
	return nil
}

// skipToNil converts the guard-redirect marker into a clean exit.
func skipToNil(err error) error {
	if errors.Is(err, errSkipView) {
		return nil
	}
	return err
}
