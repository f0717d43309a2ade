// Package session holds the per-session navigation and authentication state.
//
// State is a value: every UI action produces a new State from the previous
// one (see State.Apply), so nothing here is shared or global.
package session

// Page identifies which portal page is active.
type Page int

const (
	PageLogin Page = iota
	PageSignup
	PageScoreEntry
	PageCharts
)

func (p Page) String() string {
	switch p {
	case PageLogin:
		return "login"
	case PageSignup:
		return "signup"
	case PageScoreEntry:
		return "score-entry"
	case PageCharts:
		return "charts"
	default:
		return "unknown"
	}
}

// Protected reports whether the page needs an authenticated session.
func (p Page) Protected() bool {
	return p == PageScoreEntry || p == PageCharts
}

type State struct {
	Authenticated bool
	Username      string
	Page          Page
}

// Initial is the state of a fresh session: logged out on the login page.
func Initial() State {
	return State{Page: PageLogin}
}

// Apply returns the state that follows s after a.
func (s State) Apply(a Action) State {
	if a == nil {
		return s
	}
	return a.apply(s)
}

// Visible returns the page to render. ok is false when the state breaks the
// rule that protected pages need authentication; nothing is rendered then.
func (s State) Visible() (page Page, ok bool) {
	if s.Page.Protected() && (!s.Authenticated || s.Username == "") {
		return s.Page, false
	}
	return s.Page, true
}
