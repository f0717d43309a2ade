package portal

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/gophmarks/internal/accounts"
	"github.com/dmitrijs2005/gophmarks/internal/charts"
	"github.com/dmitrijs2005/gophmarks/internal/config"
	"github.com/dmitrijs2005/gophmarks/internal/export"
	"github.com/dmitrijs2005/gophmarks/internal/ledger"
	"github.com/dmitrijs2005/gophmarks/internal/logging"
	"github.com/dmitrijs2005/gophmarks/internal/session"
	"github.com/dmitrijs2005/gophmarks/internal/workspace"
	"github.com/google/uuid"
	"golang.org/x/term"
)

const chartWidth = 40

type App struct {
	config   *config.Config
	logger   logging.Logger
	accounts *accounts.Service
	ws       *workspace.Workspace
	ledger   *ledger.Ledger
	exporter *export.Exporter
	renderer charts.Renderer

	state session.State

	in       *lineReader
	out      io.Writer
	secretFd int
}

// deps groups what an App is built from; NewApp fills it from config,
// tests fill it directly.
type deps struct {
	config   *config.Config
	logger   logging.Logger
	store    accounts.Store
	exporter func(ws *workspace.Workspace, logger logging.Logger) *export.Exporter
	in       io.Reader
	out      io.Writer
	secretFd int
}

func newApp(d deps) *App {
	logger := d.logger.With("session_id", uuid.NewString())
	ws := workspace.New(d.config.UsersDir)

	a := &App{
		config:   d.config,
		logger:   logger,
		accounts: accounts.NewService(d.store, logger),
		ws:       ws,
		ledger:   ledger.New(ws, logger),
		renderer: charts.NewTerminalRenderer(chartWidth),
		state:    session.Initial(),
		in:       newLineReader(d.in),
		out:      d.out,
		secretFd: d.secretFd,
	}

	if d.exporter != nil {
		a.exporter = d.exporter(ws, logger)
	} else {
		a.exporter = export.NewExporter(ws, nil, "", logger)
	}
	return a
}

// NewApp wires the credential store, workspace, ledger and optional S3
// export from cfg, reading commands from stdin and writing to stdout.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	store, err := accounts.OpenStore(ctx, c, logger)
	if err != nil {
		return nil, fmt.Errorf("credential store init error: %w", err)
	}

	d := deps{
		config:   c,
		logger:   logger,
		store:    store,
		in:       os.Stdin,
		out:      os.Stdout,
		secretFd: -1,
	}

	if fd := int(os.Stdin.Fd()); term.IsTerminal(fd) {
		d.secretFd = fd
	}

	if c.ExportEnabled() {
		client, err := export.NewS3Client(ctx, c)
		if err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("s3 client init error: %w", err)
		}
		d.exporter = func(ws *workspace.Workspace, l logging.Logger) *export.Exporter {
			return export.NewExporter(ws, client, c.S3Bucket, l)
		}
	}

	return newApp(d), nil
}

// State returns the current session state.
func (a *App) State() session.State {
	return a.state
}

// Run renders the start page and blocks in the REPL until the user exits,
// input ends, or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.logger.Info(ctx, "portal started", "backend", a.config.StoreBackend, "users_dir", a.config.UsersDir)
	fmt.Fprintln(a.out, "Welcome to gophmarks (type 'help' for commands)")

	a.renderPage(ctx)
	a.runREPL(ctx)

	a.logger.Info(ctx, "portal stopped")
}

func (a *App) Close() {
	a.in.Close()
	if err := a.accounts.Close(); err != nil {
		a.logger.Warn(context.Background(), "credential store close failed", "error", err)
	}
}

// dispatch moves the session to its next state and reports whether it changed.
func (a *App) dispatch(ctx context.Context, action session.Action) bool {
	prev := a.state
	a.state = a.state.Apply(action)

	changed := prev != a.state
	a.logger.Debug(ctx, "session action",
		"action", fmt.Sprintf("%T", action),
		"from", prev.Page.String(), "to", a.state.Page.String(),
		"authenticated", a.state.Authenticated, "changed", changed)
	return changed
}
