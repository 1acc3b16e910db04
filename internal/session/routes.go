package session

// Route identifies a top-level view.
type Route int

const (
	RouteLogin Route = iota
	RouteRegister
	RouteHome
	RouteExplore
	RouteProfile
	RouteNotFound
)

func (r Route) String() string {
	switch r {
	case RouteLogin:
		return "login"
	case RouteRegister:
		return "register"
	case RouteHome:
		return "home"
	case RouteExplore:
		return "explore"
	case RouteProfile:
		return "profile"
	default:
		return "not-found"
	}
}

// RequiresAuth reports whether the route is only reachable with an
// active session.
func (r Route) RequiresAuth() bool {
	switch r {
	case RouteLogin, RouteRegister:
		return false
	default:
		return true
	}
}

// Resolve maps a requested route to the one actually shown. Without a
// session everything except the auth screens lands on login; with one,
// the auth screens bounce to home and unknown routes fall back to home
// rather than a dead end.
func Resolve(requested Route, authenticated bool) Route {
	if !authenticated {
		switch requested {
		case RouteLogin, RouteRegister:
			return requested
		default:
			return RouteLogin
		}
	}

	switch requested {
	case RouteLogin, RouteRegister, RouteNotFound:
		return RouteHome
	case RouteHome, RouteExplore, RouteProfile:
		return requested
	default:
		return RouteHome
	}
}
