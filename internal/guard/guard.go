// Package guard decides where navigation is allowed to go based on the
// session's authenticated flag. It holds the policy only; actually moving
// between pages is the caller's job.
package guard

// Decision is the outcome of a navigation check.
type Decision int

const (
	Allow Decision = iota
	RedirectHome
	RedirectAccount
)

const (
	HomePath    = "/"
	AccountPath = "/account"
)

func (d Decision) String() string {
	switch d {
	case RedirectHome:
		return "redirect-to-home"
	case RedirectAccount:
		return "redirect-to-account"
	default:
		return "allow"
	}
}

// Decide applies the portal's two rules: anonymous visitors may only see the
// login page, and a logged-in user landing on the login page is sent to the
// account page.
func Decide(path string, authenticated bool) Decision {
	if !authenticated && path != HomePath {
		return RedirectHome
	}
	if authenticated && path == HomePath {
		return RedirectAccount
	}
	return Allow
}
