package guard

import "testing"

type fakeSession bool

func (f fakeSession) IsLoggedIn() bool { return bool(f) }

func TestAuthAndGuestAreComplements(t *testing.T) {
	targets := []Route{
		RouteHome, RouteLogin, RouteRegister, RouteArticles,
		RouteArticleDetail, RouteCreateArticle, RouteThemes, RouteProfile,
	}
	for _, loggedIn := range []bool{true, false} {
		s := fakeSession(loggedIn)
		for _, target := range targets {
			authAllows := Auth(s, target).Allow
			guestAllows := Guest(s, target).Allow
			if authAllows == guestAllows {
				t.Fatalf("loggedIn=%v target=%s: auth=%v guest=%v, expected complements",
					loggedIn, target, authAllows, guestAllows)
			}
		}
	}
}

func TestAuthRedirectCarriesIntendedRoute(t *testing.T) {
	d := Auth(fakeSession(false), RouteProfile)
	if d.Allow {
		t.Fatal("expected denial for logged-out session")
	}
	if d.Redirect != RouteLogin {
		t.Fatalf("expected redirect to login, got %s", d.Redirect)
	}
	if d.Return != RouteProfile {
		t.Fatalf("expected intended route to be preserved, got %s", d.Return)
	}
}

func TestGuestRedirectsToArticles(t *testing.T) {
	d := Guest(fakeSession(true), RouteLogin)
	if d.Allow {
		t.Fatal("expected denial for logged-in session")
	}
	if d.Redirect != RouteArticles {
		t.Fatalf("expected redirect to articles, got %s", d.Redirect)
	}
}

func TestResolveUsesRouteTable(t *testing.T) {
	tests := []struct {
		name     string
		loggedIn bool
		target   Route
		allow    bool
	}{
		{"articles needs auth", false, RouteArticles, false},
		{"articles allowed when logged in", true, RouteArticles, true},
		{"login is guest only", true, RouteLogin, false},
		{"login allowed when logged out", false, RouteLogin, true},
		{"home is guest only", true, RouteHome, false},
		{"profile needs auth", false, RouteProfile, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := Resolve(fakeSession(tc.loggedIn), tc.target)
			if d.Allow != tc.allow {
				t.Fatalf("Resolve(%v, %s).Allow = %v, want %v", tc.loggedIn, tc.target, d.Allow, tc.allow)
			}
		})
	}
}

func TestResolveUnknownRouteRedirectsHome(t *testing.T) {
	d := Resolve(fakeSession(false), Route("no-such-view"))
	if d.Allow {
		t.Fatal("expected unknown route to be denied")
	}
	if d.Redirect != RouteHome {
		t.Fatalf("expected redirect home, got %s", d.Redirect)
	}
}
