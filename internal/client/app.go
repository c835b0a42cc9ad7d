package client

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/sheetcharts/internal/adapter"
	"github.com/MKhiriev/sheetcharts/internal/config"
	"github.com/MKhiriev/sheetcharts/internal/logger"
	"github.com/MKhiriev/sheetcharts/internal/service"
	"github.com/MKhiriev/sheetcharts/internal/store"
	"github.com/MKhiriev/sheetcharts/internal/tui"
	"github.com/MKhiriev/sheetcharts/models"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const clientRole = "sheetcharts-client"

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	configPath string
	server     string
	dsn        string
	logPath    string
}

// runtime holds everything a command needs once the configuration is
// resolved.
type runtime struct {
	services *service.ClientServices
	server   adapter.ServerAdapter
	picker   AxesPicker
	logger   *logger.Logger
}

type App struct {
	buildInfo models.AppBuildInfo

	in     io.Reader
	out    io.Writer
	errOut io.Writer

	opts    globalOptions
	rt      *runtime
	closers []io.Closer

	bootstrap func(ctx context.Context) (*runtime, error)
}

var _ Client = (*App)(nil)

// NewApp returns the CLI bound to the given terminal streams. Nothing is
// opened until a command runs.
func NewApp(buildInfo models.AppBuildInfo, in io.Reader, out, errOut io.Writer) *App {
	app := &App{
		buildInfo: buildInfo,
		in:        in,
		out:       out,
		errOut:    errOut,
	}
	app.bootstrap = app.connect

	return app
}

// Execute runs the command named by os.Args.
func (a *App) Execute(ctx context.Context) error {
	return a.execute(ctx, os.Args[1:])
}

func (a *App) execute(ctx context.Context, args []string) error {
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	err := root.ExecuteContext(ctx)
	a.close()

	if err != nil {
		fmt.Fprintf(a.errOut, "error: %s\n", tui.HumanizeError(err))
	}
	return err
}

func (a *App) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "sheetcharts",
		Short:         "Upload spreadsheets and turn their columns into charts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.prepare(cmd)
		},
	}

	root.CompletionOptions.DisableDefaultCmd = true

	flags := root.PersistentFlags()
	flags.StringVarP(&a.opts.configPath, "config", "c", "", "path to a JSON config file")
	flags.StringVar(&a.opts.server, "server", "", "server base URL (overrides ADAPTER_ADDRESS)")
	flags.StringVar(&a.opts.dsn, "db", "", "SQLite file that keeps the session")
	flags.StringVar(&a.opts.logPath, "log", "", "log file (default: sheetcharts.log next to the binary)")

	root.AddCommand(
		a.registerCommand(),
		a.loginCommand(),
		a.logoutCommand(),
		a.whoamiCommand(),
		a.uploadCommand(),
		a.historyCommand(),
		a.analysisCommand(),
		a.previewCommand(),
		a.versionCommand(),
	)

	return root
}

func (a *App) prepare(cmd *cobra.Command) error {
	if cmd.Name() == "help" {
		return nil
	}
	if a.rt == nil {
		rt, err := a.bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		a.rt = rt
	}

	log := a.rt.logger.GetChildLogger()
	log.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("command", cmd.CommandPath())
	})
	cmd.SetContext(log.Attach(cmd.Context()))

	return nil
}

// connect resolves the configuration and opens the local store and the
// server adapter.
func (a *App) connect(ctx context.Context) (*runtime, error) {
	cfg, err := config.GetClientConfig(config.ClientOverrides{
		ConfigPath:    a.opts.configPath,
		ServerAddress: a.opts.server,
		DSN:           a.opts.dsn,
	})
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}

	log, logCloser := logger.NewClientLogger(clientRole, a.opts.logPath)
	a.closers = append(a.closers, logCloser)

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}
	a.closers = append(a.closers, localStorage)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	return &runtime{
		services: service.NewClientServices(localStorage, serverAdapter, log),
		server:   serverAdapter,
		picker:   tui.New(a.in, a.out, log),
		logger:   log,
	}, nil
}

func (a *App) close() {
	// storages first, the log file last
	for i := len(a.closers) - 1; i >= 0; i-- {
		_ = a.closers[i].Close()
	}
	a.closers = nil
}

// session loads the saved login, failing with service.ErrNotLoggedIn when
// there is none.
func (a *App) session(ctx context.Context) (models.ClientSession, error) {
	return a.rt.services.AuthService.Session(ctx)
}
