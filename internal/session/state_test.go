package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var loggedIn = State{Authenticated: true, Username: "alice", Page: PageScoreEntry}

func TestInitial(t *testing.T) {
	s := Initial()
	assert.False(t, s.Authenticated)
	assert.Empty(t, s.Username)
	assert.Equal(t, PageLogin, s.Page)
}

func TestTransitions(t *testing.T) {
	tests := []struct {
		name   string
		from   State
		action Action
		want   State
	}{
		{"login button from signup", State{Page: PageSignup}, Navigate{To: PageLogin}, State{Page: PageLogin}},
		{"signup button from login", Initial(), Navigate{To: PageSignup}, State{Page: PageSignup}},
		{"signup button while logged in keeps session", loggedIn, Navigate{To: PageSignup},
			State{Authenticated: true, Username: "alice", Page: PageSignup}},
		{"valid login", Initial(), LoginSucceeded{Username: "alice"}, loggedIn},
		{"invalid login", Initial(), LoginFailed{}, Initial()},
		{"login success outside login page ignored", State{Page: PageSignup}, LoginSucceeded{Username: "alice"}, State{Page: PageSignup}},
		{"login success without name ignored", Initial(), LoginSucceeded{}, Initial()},
		{"signup success redirects to login", State{Page: PageSignup}, SignupSucceeded{Username: "bob"}, State{Page: PageLogin}},
		{"signup failure stays", State{Page: PageSignup}, SignupFailed{}, State{Page: PageSignup}},
		{"enter marks when authenticated", State{Authenticated: true, Username: "alice", Page: PageCharts},
			Navigate{To: PageScoreEntry}, loggedIn},
		{"show graphs when authenticated", loggedIn, Navigate{To: PageCharts},
			State{Authenticated: true, Username: "alice", Page: PageCharts}},
		{"enter marks unauthenticated ignored", Initial(), Navigate{To: PageScoreEntry}, Initial()},
		{"show graphs unauthenticated ignored", State{Page: PageSignup}, Navigate{To: PageCharts}, State{Page: PageSignup}},
		{"sign out clears session", State{Authenticated: true, Username: "alice", Page: PageCharts}, SignOut{}, Initial()},
		{"sign out unauthenticated ignored", State{Page: PageSignup}, SignOut{}, State{Page: PageSignup}},
		{"unknown page ignored", Initial(), Navigate{To: Page(42)}, Initial()},
		{"nil action", loggedIn, nil, loggedIn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.Apply(tt.action))
		})
	}
}

func TestActionsAreIdempotent(t *testing.T) {
	actions := []Action{
		Navigate{To: PageLogin}, Navigate{To: PageSignup}, Navigate{To: PageCharts},
		LoginFailed{}, SignupFailed{}, SignOut{},
	}
	for _, a := range actions {
		once := loggedIn.Apply(a)
		assert.Equal(t, once, once.Apply(a), "%T", a)
	}
}

func TestApplyDoesNotMutateReceiver(t *testing.T) {
	s := loggedIn
	_ = s.Apply(SignOut{})
	assert.Equal(t, loggedIn, s)
}

func TestVisible(t *testing.T) {
	p, ok := loggedIn.Visible()
	assert.True(t, ok)
	assert.Equal(t, PageScoreEntry, p)

	p, ok = Initial().Visible()
	assert.True(t, ok)
	assert.Equal(t, PageLogin, p)

	for _, broken := range []State{
		{Page: PageScoreEntry},
		{Page: PageCharts},
		{Authenticated: true, Page: PageCharts},
	} {
		_, ok := broken.Visible()
		assert.False(t, ok, "%+v", broken)
	}
}

func TestPageString(t *testing.T) {
	assert.Equal(t, "login", PageLogin.String())
	assert.Equal(t, "signup", PageSignup.String())
	assert.Equal(t, "score-entry", PageScoreEntry.String())
	assert.Equal(t, "charts", PageCharts.String())
	assert.Equal(t, "unknown", Page(9).String())
}
