package portal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/gophmarks/internal/session"
)

func (a *App) status() string {
	if a.state.Authenticated {
		return fmt.Sprintf("(Logged in as: %s) ", a.state.Username)
	}
	return ""
}

func (a *App) printHelp() {
	if a.state.Authenticated {
		fmt.Fprintln(a.out, "User Options: login, signup, marks, graphs, export, signout, submit, help, exit")
	} else {
		fmt.Fprintln(a.out, "User Options: login, signup, submit, help, exit")
	}
}

// runREPL reads one command per line and dispatches it. The loop ends on
// "exit"/"quit", end of input, or context cancellation. Command handlers
// report problems inline and never stop the loop.
func (a *App) runREPL(ctx context.Context) {
	for {
		fmt.Fprintf(a.out, "gophmarks %s> ", a.status())

		line, err := a.in.ReadLine(ctx)
		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, context.Canceled) {
				a.logger.Error(ctx, "read command", "error", err)
			}
			fmt.Fprintln(a.out)
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch cmd := strings.ToLower(parts[0]); cmd {
		case "help":
			a.printHelp()
		case "login":
			a.navigate(ctx, session.PageLogin)
		case "signup":
			a.navigate(ctx, session.PageSignup)
		case "marks":
			a.navigate(ctx, session.PageScoreEntry)
		case "graphs":
			a.navigate(ctx, session.PageCharts)
		case "signout":
			a.signOut(ctx)
		case "submit":
			a.submit(ctx)
		case "export":
			a.export(ctx)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

// navigate handles a sidebar button. A press the session does not allow
// (protected page while logged out) is ignored without output.
func (a *App) navigate(ctx context.Context, to session.Page) {
	a.dispatch(ctx, session.Navigate{To: to})
	if a.state.Page != to {
		return
	}
	a.renderPage(ctx)
}

func (a *App) signOut(ctx context.Context) {
	if !a.dispatch(ctx, session.SignOut{}) {
		return
	}
	fmt.Fprintln(a.out, "Signed out successfully!")
	a.renderPage(ctx)
}
