package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/dmitrijs2005/plantpal/internal/client/api"
	"github.com/dmitrijs2005/plantpal/internal/client/config"
	"github.com/dmitrijs2005/plantpal/internal/client/dashboard"
	"github.com/dmitrijs2005/plantpal/internal/client/repositories"
	"github.com/dmitrijs2005/plantpal/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/plantpal/internal/client/session"
	"github.com/dmitrijs2005/plantpal/internal/models"
)

var (
	ErrNotSignedIn    = errors.New("not signed in, run `plantpal signin` first")
	ErrSessionExpired = errors.New("session expired, please sign in again")
	ErrAmbiguousID    = errors.New("id prefix matches more than one item")
)

// Backend is the server surface used by the commands. *api.Client
// implements it.
type Backend interface {
	dashboard.API
	session.Authenticator

	Chat(ctx context.Context, prompt string, history []models.ChatTurn) (string, error)
	Identify(ctx context.Context, img models.Photo) (models.Identification, error)
	Autofill(ctx context.Context, img models.Photo) (models.CareDetails, error)
	FertilizerSuggestion(ctx context.Context, name, scientificName string) (string, error)
}

type App struct {
	api     Backend
	session *session.Session
	dash    *dashboard.Controller
	closer  io.Closer

	reader *bufio.Reader
	out    io.Writer
	now    func() time.Time
}

// NewApp opens the local database, restores a stored session and connects
// the API client to cfg.ServerURL.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	repos, err := repositories.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	a := newApp(api.New(cfg.ServerURL, cfg.HTTPTimeout), repos.Metadata, os.Stdin, os.Stdout)
	a.closer = repos

	if _, err := a.session.Restore(ctx); err != nil {
		_ = repos.Close()
		return nil, fmt.Errorf("error restoring session: %w", err)
	}

	return a, nil
}

func newApp(b Backend, store metadata.Repository, in io.Reader, out io.Writer) *App {
	return &App{
		api:     b,
		session: session.New(b, store),
		dash:    dashboard.New(b),
		reader:  bufio.NewReader(in),
		out:     out,
		now:     time.Now,
	}
}

// Execute runs the command selected in kctx.
func (a *App) Execute(ctx context.Context, kctx *kong.Context) error {
	kctx.BindTo(ctx, (*context.Context)(nil))
	return kctx.Run(a)
}

func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) requireSession() error {
	if a.session.State() != session.Authenticated {
		return ErrNotSignedIn
	}
	return nil
}

// check turns a 401 from the server into a local sign-out, since the stored
// token is no longer accepted.
func (a *App) check(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if api.IsUnauthorized(err) {
		_ = a.session.SignOut(ctx)
		return ErrSessionExpired
	}
	return err
}

// load requires a session and refreshes the dashboard.
func (a *App) load(ctx context.Context) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	return a.check(ctx, a.dash.Load(ctx))
}

// plantByPrefix finds the one loaded plant whose ID starts with prefix.
func (a *App) plantByPrefix(prefix string) (models.Plant, error) {
	var (
		found models.Plant
		n     int
	)
	for _, p := range a.dash.Plants() {
		if p.ID == prefix {
			return p, nil
		}
		if strings.HasPrefix(p.ID, prefix) {
			found = p
			n++
		}
	}
	switch {
	case prefix == "" || n == 0:
		return models.Plant{}, dashboard.ErrUnknownPlant
	case n > 1:
		return models.Plant{}, ErrAmbiguousID
	}
	return found, nil
}

func (a *App) entryByPrefix(prefix string) (models.JournalEntry, error) {
	var (
		found models.JournalEntry
		n     int
	)
	for _, e := range a.dash.Journal() {
		if e.ID == prefix {
			return e, nil
		}
		if strings.HasPrefix(e.ID, prefix) {
			found = e
			n++
		}
	}
	switch {
	case prefix == "" || n == 0:
		return models.JournalEntry{}, dashboard.ErrUnknownEntry
	case n > 1:
		return models.JournalEntry{}, ErrAmbiguousID
	}
	return found, nil
}
