package main

import (
	"flag"
	"fmt"

	"github.com/mdd-app/mdd-go/internal/domain"
	"github.com/mdd-app/mdd-go/internal/guard"
	"github.com/mdd-app/mdd-go/internal/validate"
)

func runThemes(cc *commandContext, args []string) error {
	fs := flag.NewFlagSet("themes", flag.ContinueOnError)
	query := fs.String("query", "", "JMESPath expression applied to the list")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := enter(cc, guard.RouteThemes); err != nil {
		return skipToNil(err)
	}
	if *query != "" {
		themes, err := cc.App.API.ListThemes(cc.Ctx)
		if err != nil {
			return err
		}
		return renderQuery(cc.Out, themes, *query)
	}
	return showThemes(cc)
}

func showThemes(cc *commandContext) error {
	themes, err := cc.App.API.ListThemes(cc.Ctx)
	if err != nil {
		return err
	}
	// Subscription state is display-only; listing still works without it.
	subscribed := map[int64]bool{}
	if ids, serr := cc.App.API.Subscriptions(cc.Ctx); serr == nil {
		for _, id := range ids {
			subscribed[id] = true
		}
	} else {
		cc.Logger.WarnContext(cc.Ctx, "load subscriptions failed", "error", serr)
	}
	renderThemes(cc.Out, themes, subscribed)
	return nil
}

func runCreateTheme(cc *commandContext, args []string) error {
	fs := flag.NewFlagSet("create-theme", flag.ContinueOnError)
	name := fs.String("name", "", "theme name")
	description := fs.String("description", "", "theme description (optional)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := enter(cc, guard.RouteThemes); err != nil {
		return skipToNil(err)
	}
	if err := validate.Required(map[string]string{"name": *name}, "name"); err != nil {
		return err
	}

	theme, err := cc.App.API.CreateTheme(cc.Ctx, domain.CreateThemeRequest{
		Name:        *name,
		Description: *description,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "created theme %d: %s\n", theme.ID, theme.Name)
	return nil
}

func runSubscribe(cc *commandContext, args []string) error {
	fs := flag.NewFlagSet("subscribe", flag.ContinueOnError)
	themeID := fs.Int64("theme", 0, "theme id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := enter(cc, guard.RouteThemes); err != nil {
		return skipToNil(err)
	}
	if *themeID <= 0 {
		return fmt.Errorf("-theme is required")
	}
	if err := cc.App.API.SubscribeTheme(cc.Ctx, *themeID); err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "subscribed to theme %d\n", *themeID)
	return nil
}

func runUnsubscribe(cc *commandContext, args []string) error {
	fs := flag.NewFlagSet("unsubscribe", flag.ContinueOnError)
	themeID := fs.Int64("theme", 0, "theme id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := enter(cc, guard.RouteThemes); err != nil {
		return skipToNil(err)
	}
	if *themeID <= 0 {
		return fmt.Errorf("-theme is required")
	}
	if err := cc.App.API.UnsubscribeTheme(cc.Ctx, *themeID); err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "unsubscribed from theme %d\n", *themeID)
	return nil
}

func runSubscriptions(cc *commandContext, args []string) error {
	fs := flag.NewFlagSet("subscriptions", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := enter(cc, guard.RouteThemes); err != nil {
		return skipToNil(err)
	}

	ids, err := cc.App.API.Subscriptions(cc.Ctx)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		fmt.Fprintln(cc.Out, "no subscriptions yet; see 'mdd themes'")
		return nil
	}
	themes, err := cc.App.API.ListThemes(cc.Ctx)
	if err != nil {
		return err
	}
	subscribed := map[int64]bool{}
	for _, id := range ids {
		subscribed[id] = true
	}
	var mine []domain.Theme
	for _, theme := range themes {
		if subscribed[theme.ID] {
			mine = append(mine, theme)
		}
	}
	renderThemes(cc.Out, mine, subscribed)
	return nil
}
