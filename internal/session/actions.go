package session

// Action is a UI event fed into State.Apply. The set is closed.
type Action interface {
	apply(State) State
}

// Navigate is a sidebar button press.
type Navigate struct {
	To Page
}

func (a Navigate) apply(s State) State {
	if a.To.Protected() && !s.Authenticated {
		return s
	}
	switch a.To {
	case PageLogin, PageSignup, PageScoreEntry, PageCharts:
		s.Page = a.To
	}
	return s
}

// LoginSucceeded is a login submit with valid credentials.
type LoginSucceeded struct {
	Username string
}

func (a LoginSucceeded) apply(s State) State {
	if s.Page != PageLogin || a.Username == "" {
		return s
	}
	return State{Authenticated: true, Username: a.Username, Page: PageScoreEntry}
}

// LoginFailed is a login submit with invalid credentials.
type LoginFailed struct{}

func (LoginFailed) apply(s State) State { return s }

// SignupSucceeded is a signup submit that created an account.
type SignupSucceeded struct {
	Username string
}

func (a SignupSucceeded) apply(s State) State {
	if s.Page != PageSignup {
		return s
	}
	s.Page = PageLogin
	return s
}

// SignupFailed is a signup submit for a taken username.
type SignupFailed struct{}

func (SignupFailed) apply(s State) State { return s }

// SignOut clears the session and returns to the login page.
type SignOut struct{}

func (SignOut) apply(s State) State {
	if !s.Authenticated {
		return s
	}
	return Initial()
}
