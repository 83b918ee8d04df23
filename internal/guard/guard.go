// Package guard holds the route table and the two navigation predicates.
// Both are pure checks against the already-hydrated session state; there is
// no state machine beyond allow-or-redirect.
package guard

// Route names a navigable view.
type Route string

const (
	RouteHome          Route = "home"
	RouteLogin         Route = "login"
	RouteRegister      Route = "register"
	RouteArticles      Route = "articles"
	RouteArticleDetail Route = "article"
	RouteCreateArticle Route = "create-article"
	RouteThemes        Route = "themes"
	RouteProfile       Route = "profile"
)

// Access is the protection a route declares.
type Access int

const (
	// AccessGuest routes are for logged-out users only.
	AccessGuest Access = iota
	// AccessAuth routes require a logged-in session.
	AccessAuth
)

// routes mirrors the application route table: home, login and register are
// guest-only, everything else requires authentication.
var routes = map[Route]Access{
	RouteHome:          AccessGuest,
	RouteLogin:         AccessGuest,
	RouteRegister:      AccessGuest,
	RouteArticles:      AccessAuth,
	RouteArticleDetail: AccessAuth,
	RouteCreateArticle: AccessAuth,
	RouteThemes:        AccessAuth,
	RouteProfile:       AccessAuth,
}

// Session is the slice of the session store the guards consult.
type Session interface {
	IsLoggedIn() bool
}

// Decision is the outcome of a guard check. When Allow is false, Redirect is
// where navigation goes instead; Return carries the originally intended route
// so a login can come back to it.
type Decision struct {
	Allow    bool
	Redirect Route
	Return   Route
}

// Auth allows target iff the session is logged in, otherwise redirects to
// login remembering where the user wanted to go.
func Auth(s Session, target Route) Decision {
	if s.IsLoggedIn() {
		return Decision{Allow: true}
	}
	return Decision{Redirect: RouteLogin, Return: target}
}

// Guest is Auth's complement: it allows target iff the session is logged out,
// otherwise redirects to the authenticated landing view.
func Guest(s Session, target Route) Decision {
	if !s.IsLoggedIn() {
		return Decision{Allow: true}
	}
	return Decision{Redirect: RouteArticles}
}

// Resolve looks target up in the route table and applies its guard. Unknown
// routes redirect home, matching the catch-all route of the original app.
func Resolve(s Session, target Route) Decision {
	access, ok := routes[target]
	if !ok {
		return Decision{Redirect: RouteHome}
	}
	if access == AccessAuth {
		return Auth(s, target)
	}
	return Guest(s, target)
}
