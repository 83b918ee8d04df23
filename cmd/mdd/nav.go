package main

import (
	"fmt"

	"github.com/mdd-app/mdd-go/internal/guard"
)

// enter resolves target against the guard table before a view runs. A guest
// view requested while logged in "redirects": the articles view renders
// instead and the original view is skipped (errSkipView). An authenticated
// view requested while logged out fails with a hint carrying the intended
// route, so the user can come back to it after logging in.
var errSkipView = fmt.Errorf("view skipped by guard redirect")

func enter(cc *commandContext, target guard.Route) error {
	decision := guard.Resolve(cc.App.Session, target)
	if decision.Allow {
		return nil
	}

	switch decision.Redirect {
	case guard.RouteLogin:
		return fmt.Errorf("not logged in: run 'mdd login -return %s'", decision.Return)
	case guard.RouteArticles:
		fmt.Fprintf(cc.Out, "already logged in, showing the article feed instead of %q\n\n", target)
		if err := renderRoute(cc, guard.RouteArticles); err != nil {
			return err
		}
		return errSkipView
	default:
		return fmt.Errorf("unknown view %q", target)
	}
}

// renderRoute renders a listing view by route name. Used by guard redirects
// and by login's post-navigation.
func renderRoute(cc *commandContext, route guard.Route) error {
	switch route {
	case guard.RouteArticles:
		return showArticles(cc, false, "")
	case guard.RouteThemes:
		return showThemes(cc)
	case guard.RouteProfile:
		return showProfile(cc)
	case guard.RouteHome:
		return showHome(cc)
	default:
		return showArticles(cc, false, "")
	}
}
