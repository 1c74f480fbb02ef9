// Command bureauctl is the back-office operator CLI. It talks to the
// bureau service over its HTTP API and hosts the client-side workflow:
// lookup cache, per-track edit sessions, diff-and-persist, composite
// badges, and the persisted list filter.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"bureau/internal/backoffice/client"
	"bureau/internal/backoffice/filter"

	"github.com/pkg/errors"
)

const (
	defaultBaseURL = "http://localhost:8080"
	stateDirName   = "bureauctl"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		var authErr *client.AuthError
		if errors.As(err, &authErr) {
			fmt.Fprintln(os.Stderr, "bureauctl: session expired or invalid; run 'bureauctl login'")
			_ = newApp().clearSession()
			os.Exit(1)
		}

		fmt.Fprintf(os.Stderr, "bureauctl: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		usage()

		return nil
	}

	app := newApp()

	switch args[0] {
	case "login":
		return app.login(args[1:])
	case "logout":
		return app.logout()
	case "list":
		return app.list(args[1:])
	case "show":
		return app.show(args[1:])
	case "edit":
		return app.edit(args[1:])
	case "assign":
		return app.assign(args[1:])
	case "team":
		return app.team(args[1:])
	case "notifications":
		return app.notifications(args[1:])
	case "read":
		return app.markRead(args[1:])
	case "lookups":
		return app.lookups(args[1:])
	case "qr":
		return app.qr(args[1:])
	case "help", "-h", "--help":
		usage()

		return nil
	default:
		usage()

		return errors.Errorf("unknown command %q", args[0])
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `Usage: bureauctl <command> [flags]

Commands:
  login          sign in and store the token pair
  logout         drop the stored session
  list           list visible customers (persists filter/search/page)
  show           show one customer with all three tracks
  edit           edit one track of a customer and save the diff
  assign         reassign a customer to an employee (admin)
  team           list the employee roster (admin)
  notifications  show the notification feed
  read           mark one notification as read
  lookups        print the options of a lookup category
  qr             save a customer's profile QR code as PNG

Run 'bureauctl <command> -h' for command flags.
`)
}

// app bundles the pieces every command needs: the API client, the state
// directory, and the logger.
type app struct {
	baseURL  string
	stateDir string
	logger   *slog.Logger
}

func newApp() *app {
	baseURL := os.Getenv("BUREAU_API_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	level := slog.LevelWarn
	if os.Getenv("BUREAUCTL_VERBOSE") != "" {
		level = slog.LevelDebug
	}

	return &app{
		baseURL:  baseURL,
		stateDir: stateDir(),
		logger:   slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})),
	}
}

func stateDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, stateDirName)
	}

	return filepath.Join(".", "."+stateDirName)
}

func (a *app) newClient() *client.Client {
	return client.New(client.Config{BaseURL: a.baseURL, Timeout: 30 * time.Second}, a.logger)
}

// authedClient builds a client carrying the stored access token. Commands
// that hit protected endpoints go through here.
func (a *app) authedClient() (*client.Client, *client.Session, error) {
	session, err := a.loadSession()
	if err != nil {
		return nil, nil, err
	}
	if session == nil {
		return nil, nil, errors.New("not logged in; run 'bureauctl login'")
	}

	c := a.newClient()
	c.SetToken(session.AccessToken)

	return c, session, nil
}

func (a *app) sessionPath() string {
	return filepath.Join(a.stateDir, "session.json")
}

func (a *app) filterStore() *filter.Store {
	return filter.NewStore(filepath.Join(a.stateDir, "filters.json"))
}

func (a *app) loadSession() (*client.Session, error) {
	raw, err := os.ReadFile(a.sessionPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "read session")
	}

	var session client.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, errors.Wrap(err, "decode session")
	}

	return &session, nil
}

func (a *app) saveSession(session *client.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "encode session")
	}

	if err := os.MkdirAll(a.stateDir, 0o700); err != nil {
		return errors.Wrap(err, "create state dir")
	}
	if err := os.WriteFile(a.sessionPath(), raw, 0o600); err != nil {
		return errors.Wrap(err, "write session")
	}

	return nil
}

func (a *app) clearSession() error {
	if err := os.Remove(a.sessionPath()); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "remove session")
	}

	return nil
}
