package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"coursedeck/internal/models"
	"coursedeck/internal/repositories"
	"coursedeck/internal/services"
	"coursedeck/internal/session"
	"coursedeck/internal/shared"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config  *shared.Config
	store   session.Store
	session *session.Controller
	api     services.API
	raw     *services.APIService
	logger  *log.Logger
	output  io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config *shared.Config
	Store  session.Store
	API    services.API
	Raw    *services.APIService
	Logger *log.Logger
	Output io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Store == nil {
		opts.Store = session.NewFileStore(opts.Config.Session.ResolveTokenPath())
	}
	if opts.API == nil {
		opts.API = services.NewClient(opts.Config.API.BaseURL, opts.Store.Current, nil)
	}
	if opts.Raw == nil {
		opts.Raw = services.NewAPIService(opts.Config.API.BaseURL, opts.Store.Current, nil)
	}

	return &Runner{
		config:  opts.Config,
		store:   opts.Store,
		session: session.NewController(opts.Store, opts.API, opts.Logger),
		api:     opts.API,
		raw:     opts.Raw,
		logger:  opts.Logger,
		output:  opts.Output,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, authCommand, searchCommand, recommendCommand, questionnaireCommand,
		enrollCommand, progressCommand, profileCommand, completeCommand, cacheCommand,
		apiCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// SetLogger replaces the runner's logger, used when the TUI redirects
// logs to a file.
func (r *Runner) SetLogger(logger *log.Logger) {
	r.logger = logger
	r.session = session.NewController(r.store, r.api, logger)
}

// openDatabase opens the configured cache database and runs pending
// migrations.
func (r *Runner) openDatabase() (*sql.DB, error) {
	db, err := shared.NewDatabase(r.config.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	shared.ConfigureDatabase(db, r.config.Database.MaxOpenConns, r.config.Database.MaxIdleConns)
	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return db, nil
}

// cacheCourses best-effort stores fetched courses in the local cache.
// Cache failures are logged, never surfaced to the command.
func (r *Runner) cacheCourses(courses []models.Course) {
	if len(courses) == 0 {
		return
	}
	db, err := r.openDatabase()
	if err != nil {
		r.logger.Warn("course cache unavailable", "error", err)
		return
	}
	defer db.Close()

	repo := repositories.NewCourseRepository(db)
	if _, err := repo.SaveAll(courses); err != nil {
		r.logger.Warn("failed to cache courses", "error", err)
	}
}

// authFailed handles a command error. A rejected session clears the
// persisted token so the next run starts at a clean login.
func (r *Runner) authFailed(err error) error {
	if r.session.HandleAuthError(err) {
		return fmt.Errorf("%w: session expired, please log in again", shared.ErrSessionExpired)
	}
	return err
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writeCourses(courses []models.Course) {
	for i, course := range courses {
		r.writePlain("%2d. %s [%s]\n", i+1, course.Title, course.Category)
		if course.ShortIntro != "" {
			r.writePlain("    %s\n", course.ShortIntro)
		}
		if course.URL != "" {
			r.writePlain("    %s\n", course.URL)
		}
	}
}
