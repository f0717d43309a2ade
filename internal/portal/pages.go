package portal

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/gophmarks/internal/charts"
	"github.com/dmitrijs2005/gophmarks/internal/common"
	"github.com/dmitrijs2005/gophmarks/internal/models"
	"github.com/dmitrijs2005/gophmarks/internal/session"
)

func (a *App) title(text string) {
	fmt.Fprintf(a.out, "\n== %s ==\n", text)
}

// renderPage draws the visible page. A state that shows a protected page to
// an anonymous session renders nothing.
func (a *App) renderPage(ctx context.Context) {
	page, ok := a.state.Visible()
	if !ok {
		a.logger.Warn(ctx, "protected page without session, rendering nothing", "page", page.String())
		return
	}

	switch page {
	case session.PageLogin:
		a.title("Login")
		fmt.Fprintln(a.out, "Type 'submit' to enter your username and password.")
	case session.PageSignup:
		a.title("Signup")
		fmt.Fprintln(a.out, "Type 'submit' to create an account.")
	case session.PageScoreEntry:
		a.title(fmt.Sprintf("Enter Marks for %s", a.state.Username))
		fmt.Fprintln(a.out, "Type 'submit' to enter marks for every subject.")
	case session.PageCharts:
		a.title(fmt.Sprintf("Graphs for %s's Marks", a.state.Username))
		a.renderCharts(ctx)
	}
}

func (a *App) submit(ctx context.Context) {
	page, ok := a.state.Visible()
	if !ok {
		return
	}

	var err error
	switch page {
	case session.PageLogin:
		err = a.submitLogin(ctx)
	case session.PageSignup:
		err = a.submitSignup(ctx)
	case session.PageScoreEntry:
		err = a.submitMarks(ctx)
	case session.PageCharts:
		fmt.Fprintln(a.out, "Nothing to submit on this page.")
	}

	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		a.logger.Error(ctx, "form submission failed", "page", page.String(), "error", err)
		fmt.Fprintln(a.out, "Submission cancelled.")
	}
}

func (a *App) submitLogin(ctx context.Context) error {
	username, err := a.prompt(ctx, "Username")
	if err != nil {
		return err
	}
	password, err := a.promptSecret(ctx, "Password")
	if err != nil {
		return err
	}

	ok, err := a.accounts.Authenticate(ctx, username, password)
	if err != nil {
		return err
	}

	if !ok {
		a.dispatch(ctx, session.LoginFailed{})
		a.logger.Info(ctx, "login failed", "user", username, "error", common.ErrInvalidCredentials)
		fmt.Fprintln(a.out, "Invalid username or password.")
		return nil
	}

	if _, err := a.ws.Ensure(username); err != nil {
		a.logger.Warn(ctx, "workspace not created", "user", username, "error", err)
	}

	a.dispatch(ctx, session.LoginSucceeded{Username: username})
	a.logger.Info(ctx, "login succeeded", "user", username)
	fmt.Fprintf(a.out, "Login successful! Welcome %s\n", username)
	a.renderPage(ctx)
	return nil
}

func (a *App) submitSignup(ctx context.Context) error {
	username, err := a.prompt(ctx, "New Username")
	if err != nil {
		return err
	}
	password, err := a.promptSecret(ctx, "New Password")
	if err != nil {
		return err
	}
	mobile, err := a.prompt(ctx, "Mobile Number")
	if err != nil {
		return err
	}
	city, err := a.prompt(ctx, "City")
	if err != nil {
		return err
	}

	if _, err := a.ws.Dir(username); err != nil {
		a.dispatch(ctx, session.SignupFailed{})
		fmt.Fprintln(a.out, "Username must be non-empty and must not contain path separators.")
		return nil
	}

	err = a.accounts.Register(ctx, username, password, mobile, city)
	switch {
	case errors.Is(err, common.ErrDuplicateUsername):
		a.dispatch(ctx, session.SignupFailed{})
		fmt.Fprintln(a.out, "Username already exists. Please choose a different username.")
		return nil
	case err != nil:
		a.dispatch(ctx, session.SignupFailed{})
		return err
	}

	a.dispatch(ctx, session.SignupSucceeded{Username: username})
	fmt.Fprintf(a.out, "Signed up successfully as %s\n", username)
	a.renderPage(ctx)
	return nil
}

// readScore keeps asking until the answer is a whole number in range.
func (a *App) readScore(ctx context.Context, s models.Subject) (int, error) {
	for {
		text, err := a.prompt(ctx, fmt.Sprintf("Enter marks for %s (%d-%d)", s, models.MinScore, models.MaxScore))
		if err != nil {
			return 0, err
		}

		v, err := strconv.Atoi(text)
		if err != nil {
			fmt.Fprintln(a.out, "Please enter a whole number.")
			continue
		}
		if err := models.ValidateScore(v); err != nil {
			fmt.Fprintf(a.out, "Marks must be between %d and %d.\n", models.MinScore, models.MaxScore)
			continue
		}
		return v, nil
	}
}

func (a *App) submitMarks(ctx context.Context) error {
	record := make(models.ScoreRecord, len(models.Subjects))
	for _, s := range models.Subjects {
		v, err := a.readScore(ctx, s)
		if err != nil {
			return err
		}
		record[s] = v
	}

	if err := a.ledger.Append(ctx, a.state.Username, record); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Marks submitted successfully!")
	return nil
}

// renderCharts loads the ledger and draws all three charts. A user without
// submissions gets the empty presentation instead of an error.
func (a *App) renderCharts(ctx context.Context) {
	records, err := a.ledger.Load(ctx, a.state.Username)
	switch {
	case errors.Is(err, common.ErrMissingLedger):
		fmt.Fprintln(a.out, "No marks submitted yet.")
		records = nil
	case err != nil:
		a.logger.Error(ctx, "load ledger", "user", a.state.Username, "error", err)
		fmt.Fprintln(a.out, "Could not load your marks.")
		return
	}

	for _, spec := range charts.Build(records) {
		if err := a.renderer.Render(a.out, spec); err != nil {
			a.logger.Error(ctx, "render chart", "chart", spec.Title, "error", err)
		}
	}
}

func (a *App) export(ctx context.Context) {
	if !a.state.Authenticated {
		return
	}

	key, err := a.exporter.Export(ctx, a.state.Username)
	switch {
	case errors.Is(err, common.ErrExportDisabled):
		fmt.Fprintln(a.out, "Export is not configured.")
	case errors.Is(err, common.ErrMissingLedger):
		fmt.Fprintln(a.out, "No marks submitted yet.")
	case err != nil:
		a.logger.Error(ctx, "export ledger", "user", a.state.Username, "error", err)
		fmt.Fprintln(a.out, "Export failed.")
	default:
		fmt.Fprintf(a.out, "Marks exported to s3://%s/%s\n", a.config.S3Bucket, key)
	}
}
