package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/akyairhashvil/seodesk/internal/config"
	"github.com/akyairhashvil/seodesk/internal/database"
	"github.com/akyairhashvil/seodesk/internal/tui"
	"github.com/akyairhashvil/seodesk/internal/util"
)

var errNoTerminal = errors.New("the editor needs an interactive terminal; run a subcommand instead (see --help)")

// Overridden in tests.
var (
	readSecret = promptForKey
	isTerminal = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
	runTUI     = tui.Run
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// cliOptions holds the persistent flags.
type cliOptions struct {
	configPath string
	dbPath     string
}

// env is what a subcommand gets after config, logging and the store are up.
type env struct {
	cfg config.Config
	db  *database.Database
	log *zap.Logger
}

func (e *env) Close() {
	_ = e.log.Sync()
	util.LogError("close database", e.db.Close())
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}
	root := &cobra.Command{
		Use:   config.AppName,
		Short: "Edit and serve per-page SEO meta tags",
		Long: `seodesk keeps SEO meta tags for every frontend page in a local database.

Run without arguments to open the terminal editor, where title and description
fields show live length indicators and Open Graph values are copied into empty
Twitter fields. Use serve to expose the tags to the frontend over HTTP.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal() {
				return errNoTerminal
			}
			e, err := opts.open(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()
			return runTUI(cmd.Context(), e.db, e.cfg.BaseURL())
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default $XDG_DATA_HOME/seodesk/seodesk.yaml)")
	root.PersistentFlags().StringVar(&opts.dbPath, "db", "", "database file (overrides database_path)")

	root.AddCommand(
		newServeCmd(opts),
		newImportCmd(opts),
		newExportCmd(opts),
		newReportCmd(opts),
		newHashTokenCmd(),
	)
	return root
}

// open loads configuration, installs the logger and opens the database.
func (o *cliOptions) open(ctx context.Context) (*env, error) {
	cfg, err := config.Load(o.configPath, util.DataDir(config.AppName))
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if o.dbPath != "" {
		cfg.DatabasePath = o.dbPath
	}
	log, err := util.NewLogger(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	util.SetLogger(log)

	db, err := database.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, err
	}
	log.Info("database opened", zap.String("path", db.Path()))
	return &env{cfg: cfg, db: db, log: log}, nil
}

func promptForKey(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	pass, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	return strings.TrimSpace(string(pass)), err
}
