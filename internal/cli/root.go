package cli

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/alexanderramin/neuroguard/internal/cli/formatter"
	"github.com/alexanderramin/neuroguard/internal/config"
	"github.com/alexanderramin/neuroguard/internal/dataset"
	"github.com/alexanderramin/neuroguard/internal/db"
	"github.com/alexanderramin/neuroguard/internal/logging"
	"github.com/alexanderramin/neuroguard/internal/page"
	"github.com/alexanderramin/neuroguard/internal/repository"
	"github.com/alexanderramin/neuroguard/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// App holds the resolved configuration and lazily opened resources shared
// by the commands of one invocation.
type App struct {
	// OpenDB opens the SQLite dataset store. Tests replace it.
	OpenDB func(path string) (*sql.DB, error)
	Viper  *viper.Viper
	Config *config.Config
	Logger *slog.Logger

	configFile string
	database   *sql.DB
}

// NewApp returns an App with production defaults.
func NewApp() *App {
	return &App{
		OpenDB: db.OpenDB,
		Viper:  config.New(),
		Logger: logging.Discard(),
	}
}

// NewRootCmd creates the top-level "neuroguard" command and registers all
// subcommands against app.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "neuroguard",
		Short:         "Roadmap timeline and collaboration globe dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.init(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return app.Close()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&app.configFile, "config", "", "Config file (.yaml, .json or .toml)")
	pf.String("data", "", "Dataset file (.yaml, .yml or .json); overrides --db")
	pf.String("db", "", "SQLite dataset store path")
	pf.String("dataset", dataset.DefaultName, "Dataset name inside the SQLite store")
	pf.String("log-level", "info", "Log level: debug, info, warn, error")
	pf.String("log-format", "text", "Log format: text or json")

	root.AddCommand(
		newServeCmd(app),
		newRenderCmd(app),
		newValidateCmd(app),
		newShowCmd(app),
		newExportCmd(app),
		newSeedCmd(app),
		newDatasetsCmd(app),
	)

	return root
}

func (a *App) init(cmd *cobra.Command) error {
	if err := config.BindFlags(a.Viper, cmd.Flags()); err != nil {
		return err
	}
	cfg, err := config.Load(a.Viper, a.configFile)
	if err != nil {
		return err
	}
	a.Config = cfg
	a.Logger = logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	formatter.SetColor(formatter.ColorEnabled(cmd.OutOrStdout()))
	return nil
}

// Close releases the SQLite store if one was opened.
func (a *App) Close() error {
	if a.database == nil {
		return nil
	}
	err := a.database.Close()
	a.database = nil
	return err
}

func (a *App) datasetRepo() (*repository.SQLiteDatasetRepo, error) {
	if a.Config.Data.DB == "" {
		return nil, errors.New("a SQLite store is required: pass --db or set NEUROGUARD_DATA_DB")
	}
	if a.database == nil {
		database, err := a.OpenDB(a.Config.Data.DB)
		if err != nil {
			return nil, fmt.Errorf("opening dataset store: %w", err)
		}
		a.database = database
	}
	return repository.NewSQLiteDatasetRepo(a.database), nil
}

// source picks the configured dataset source: a file, then the SQLite
// store, then the built-in data.
func (a *App) source() (dataset.Source, error) {
	switch {
	case a.Config.Data.File != "":
		return dataset.NewFileSource(a.Config.Data.File), nil
	case a.Config.Data.DB != "":
		repo, err := a.datasetRepo()
		if err != nil {
			return nil, err
		}
		return repository.NewSQLiteSource(repo, a.Config.Data.Dataset), nil
	default:
		return dataset.StaticSource{}, nil
	}
}

func (a *App) observer() service.UseCaseObserver {
	return service.NewLogUseCaseObserver(a.Logger)
}

func (a *App) dashboard() (service.DashboardService, error) {
	src, err := a.source()
	if err != nil {
		return nil, err
	}
	text := service.DefaultPageText()
	text.Title = a.Config.Page.Title
	return service.NewDashboardService(src, text, a.observer()), nil
}

func (a *App) renderer() (*page.Renderer, error) {
	opts := page.DefaultOptions()
	opts.PlotlyURL = a.Config.Page.PlotlyURL
	return page.NewRenderer(opts)
}
