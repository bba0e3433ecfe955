package client

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/biz-records/internal/adapter"
	"github.com/MKhiriev/biz-records/internal/logger"
	"github.com/MKhiriev/biz-records/models"
)

const usage = `usage: client [config flags] <command> [command flags] [args]

commands:
  version                                   show server build info
  signup [-email e] <username> <password>   register a new account
  token [-copy] <username> <password>       obtain a token
  logout                                    revoke the current token
  me                                        show your profile
  clients | databases | projects            list records
  create-client <name>
  create-database [-description d] <name> <owned_by>
  create-project [-description d] <name> <database> <client>
  delete-client | delete-database | delete-project <id>`

// App runs one client command per [App.Run] call.
type App struct {
	api    adapter.APIClient
	out    io.Writer
	copy   func(string) error
	logger *logger.Logger
}

type handlerFunc func(ctx context.Context, args []string) error

// NewApp returns an App that prints to out and copies tokens to the system
// clipboard.
func NewApp(api adapter.APIClient, out io.Writer, logger *logger.Logger) *App {
	return &App{
		api:    api,
		out:    out,
		copy:   clipboard.WriteAll,
		logger: logger,
	}
}

// Run implements [Client]. Failures are rendered to the output as well as
// returned.
func (a *App) Run(ctx context.Context, args []string) error {
	err := a.dispatch(ctx, args)
	if err != nil {
		a.print(renderError(err))
	}
	return err
}

func (a *App) dispatch(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.print(helpStyle.Render(usage) + "\n")
		return errNoCommand
	}

	commands := map[string]handlerFunc{
		"version":         a.version,
		"signup":          a.signup,
		"token":           a.token,
		"logout":          a.logout,
		"me":              a.me,
		"clients":         a.clients,
		"databases":       a.databases,
		"projects":        a.projects,
		"create-client":   a.createClient,
		"create-database": a.createDatabase,
		"create-project":  a.createProject,
		"delete-client":   a.deleteRecord("client", a.api.DeleteClient),
		"delete-database": a.deleteRecord("database", a.api.DeleteDatabase),
		"delete-project":  a.deleteRecord("project", a.api.DeleteProject),
	}

	handler, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("%w: %q", errUnknownCommand, args[0])
	}

	a.logger.Debug().Str("command", args[0]).Msg("running command")
	return handler(ctx, args[1:])
}

func (a *App) version(ctx context.Context, args []string) error {
	if err := expectArgs(args, 0); err != nil {
		return err
	}

	v, err := a.api.Version(ctx)
	if err != nil {
		return err
	}

	a.print(renderVersion(v))
	return nil
}

func (a *App) signup(ctx context.Context, args []string) error {
	var email, firstName, lastName string
	fs := newFlagSet("signup")
	fs.StringVar(&email, "email", "", "email address")
	fs.StringVar(&firstName, "first-name", "", "first name")
	fs.StringVar(&lastName, "last-name", "", "last name")
	rest, err := parseFlags(fs, args, 2)
	if err != nil {
		return err
	}

	input := models.UserInput{Username: &rest[0], Password: &rest[1]}
	if email != "" {
		input.Email = &email
	}
	if firstName != "" {
		input.FirstName = &firstName
	}
	if lastName != "" {
		input.LastName = &lastName
	}

	user, err := a.api.Signup(ctx, input)
	if err != nil {
		return err
	}

	a.print(renderUser(user))
	return nil
}

func (a *App) token(ctx context.Context, args []string) error {
	var copyToken bool
	fs := newFlagSet("token")
	fs.BoolVar(&copyToken, "copy", false, "copy the token to the clipboard")
	rest, err := parseFlags(fs, args, 2)
	if err != nil {
		return err
	}

	token, err := a.api.Login(ctx, models.Credentials{Username: rest[0], Password: rest[1]})
	if err != nil {
		return err
	}

	a.print(token + "\n")
	if copyToken {
		if token == "" {
			return errNothingToCopy
		}
		if err = a.copy(token); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		a.print(helpStyle.Render("copied to clipboard") + "\n")
	}

	return nil
}

func (a *App) logout(ctx context.Context, args []string) error {
	if err := expectArgs(args, 0); err != nil {
		return err
	}

	if err := a.api.Logout(ctx); err != nil {
		return err
	}

	a.print("logged out\n")
	return nil
}

func (a *App) me(ctx context.Context, args []string) error {
	if err := expectArgs(args, 0); err != nil {
		return err
	}

	user, err := a.api.Me(ctx)
	if err != nil {
		return err
	}

	a.print(renderUser(user))
	return nil
}

func (a *App) clients(ctx context.Context, args []string) error {
	if err := expectArgs(args, 0); err != nil {
		return err
	}

	clients, err := a.api.ListClients(ctx)
	if err != nil {
		return err
	}

	a.print(renderTable("Clients", []string{"name", "created"}, clientRows(clients)))
	return nil
}

func (a *App) databases(ctx context.Context, args []string) error {
	if err := expectArgs(args, 0); err != nil {
		return err
	}

	databases, err := a.api.ListDatabases(ctx)
	if err != nil {
		return err
	}

	a.print(renderTable("Databases",
		[]string{"id", "name", "description", "owned by", "created by", "created"},
		databaseRows(databases)))
	return nil
}

func (a *App) projects(ctx context.Context, args []string) error {
	if err := expectArgs(args, 0); err != nil {
		return err
	}

	projects, err := a.api.ListProjects(ctx)
	if err != nil {
		return err
	}

	a.print(renderTable("Projects",
		[]string{"id", "name", "description", "database", "client", "created by", "created"},
		projectRows(projects)))
	return nil
}

func (a *App) createClient(ctx context.Context, args []string) error {
	if err := expectArgs(args, 1); err != nil {
		return err
	}

	client, err := a.api.CreateClient(ctx, models.ClientInput{Name: &args[0]})
	if err != nil {
		return err
	}

	a.print(renderTable("Created", []string{"name", "created"}, clientRows([]models.ClientView{client})))
	return nil
}

func (a *App) createDatabase(ctx context.Context, args []string) error {
	var description string
	fs := newFlagSet("create-database")
	fs.StringVar(&description, "description", "", "database description")
	rest, err := parseFlags(fs, args, 2)
	if err != nil {
		return err
	}

	ownedBy, err := parseID(rest[1])
	if err != nil {
		return err
	}

	input := models.DatabaseInput{Name: &rest[0], OwnedBy: &ownedBy}
	if description != "" {
		input.Description = &description
	}

	database, err := a.api.CreateDatabase(ctx, input)
	if err != nil {
		return err
	}

	a.print(renderTable("Created",
		[]string{"id", "name", "description", "owned by", "created by", "created"},
		databaseRows([]models.Database{database})))
	return nil
}

func (a *App) createProject(ctx context.Context, args []string) error {
	var description string
	fs := newFlagSet("create-project")
	fs.StringVar(&description, "description", "", "project description")
	rest, err := parseFlags(fs, args, 3)
	if err != nil {
		return err
	}

	databaseID, err := parseID(rest[1])
	if err != nil {
		return err
	}
	clientID, err := parseID(rest[2])
	if err != nil {
		return err
	}

	input := models.ProjectInput{Name: &rest[0], Database: &databaseID, Client: &clientID}
	if description != "" {
		input.Description = &description
	}

	project, err := a.api.CreateProject(ctx, input)
	if err != nil {
		return err
	}

	a.print(renderTable("Created",
		[]string{"id", "name", "description", "database", "client", "created by", "created"},
		projectRows([]models.Project{project})))
	return nil
}

func (a *App) deleteRecord(kind string, del func(context.Context, int64) error) handlerFunc {
	return func(ctx context.Context, args []string) error {
		if err := expectArgs(args, 1); err != nil {
			return err
		}

		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		if err = del(ctx, id); err != nil {
			return err
		}

		a.print(fmt.Sprintf("%s %d deleted\n", kind, id))
		return nil
	}
}

func (a *App) print(s string) {
	if _, err := io.WriteString(a.out, s); err != nil {
		a.logger.Err(err).Msg("error writing output")
	}
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// parseFlags parses command flags and checks that exactly n positional
// arguments follow them.
func parseFlags(fs *flag.FlagSet, args []string, n int) ([]string, error) {
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", errUsage, fs.Name(), err)
	}

	rest := fs.Args()
	if err := expectArgs(rest, n); err != nil {
		return nil, err
	}

	return rest, nil
}

func expectArgs(args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("%w: expected %d argument(s), got %d", errUsage, n, len(args))
	}
	return nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q is not a valid id", errUsage, s)
	}
	return id, nil
}
