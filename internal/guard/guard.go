// Package guard gates navigation on session state. Decide is a pure
// function; the gin middleware is a thin adapter over it.
package guard

import (
	"fmt"
	"strings"

	"github.com/btechwala999/Ignitia-client/internal/session"
)

type Outcome int

const (
	// Wait means the session is still bootstrapping; nothing is
	// admitted yet.
	Wait Outcome = iota
	Admit
	// RedirectLogin denies an unauthenticated session, recording the
	// requested location for post-login return.
	RedirectLogin
	// RedirectDenied sends an authenticated session without the
	// required role to the landing view with an explanation.
	RedirectDenied
)

type Decision struct {
	Outcome Outcome

	// From is the originally requested location, set on RedirectLogin.
	From string

	// Message explains a RedirectDenied.
	Message string
}

// Decide admits or redirects a navigation to a view requiring one of the
// given roles (none means any authenticated user). It has no state of its
// own.
func Decide(st session.State, required []string, from string) Decision {
	if st.Loading {
		return Decision{Outcome: Wait}
	}
	if !st.Authenticated {
		return Decision{Outcome: RedirectLogin, From: from}
	}

	// A session with a token but no resolved profile carries no role to
	// check against, so role gating only applies once the profile is known.
	if len(required) > 0 && st.User != nil {
		role := st.User.Role
		if role == "" {
			role = "student"
		}
		for _, r := range required {
			if r == role {
				return Decision{Outcome: Admit}
			}
		}
		return Decision{
			Outcome: RedirectDenied,
			Message: fmt.Sprintf("Access denied. This section requires %s permissions.",
				strings.Join(required, " or ")),
		}
	}

	return Decision{Outcome: Admit}
}
