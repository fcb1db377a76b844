// Package cli implements the nest command-line interface.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/schedulenest/internal/backend"
	"github.com/mesh-intelligence/schedulenest/internal/docstore"
	"github.com/mesh-intelligence/schedulenest/internal/keymap"
	"github.com/mesh-intelligence/schedulenest/internal/logging"
	"github.com/mesh-intelligence/schedulenest/internal/paths"
	"github.com/mesh-intelligence/schedulenest/internal/planner"
	"github.com/mesh-intelligence/schedulenest/internal/session"
	"github.com/mesh-intelligence/schedulenest/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
	code      string
}

// app is the state shared by the commands of one invocation.
type app struct {
	flags     rootFlags
	configDir string
	cfg       *viper.Viper
	log       logging.Logger

	store   backend.Store
	docs    *docstore.Store
	planner *planner.Service
	session *session.Session
}

// NewRootCmd creates the top-level "nest" command with global flags and all
// subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{log: logging.Discard()}

	root := &cobra.Command{
		Use:   "nest",
		Short: "Schedules, todos and notes behind an access code",
		Long: `nest keeps a personal calendar, todo list and note folders in local
storage. Each user's data lives in one document reached through an access code.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return a.loadConfig(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&a.flags.dataDir, "data-dir", "", "data directory (default: $(CWD)/.nest-db)")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output as JSON")
	root.PersistentFlags().StringVar(&a.flags.code, "code", "", "access code of the active user")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newCodeCmd(a))
	root.AddCommand(newShowCmd(a))
	root.AddCommand(newScheduleCmd(a))
	root.AddCommand(newTodoCmd(a))
	root.AddCommand(newFolderCmd(a))
	root.AddCommand(newNoteCmd(a))
	root.AddCommand(newCategoryCmd(a))
	root.AddCommand(newThemeCmd(a))
	root.AddCommand(newExportCmd(a))
	root.AddCommand(newWipeCmd(a))

	return root
}

// Execute runs the root command, reports any error on stderr and returns the
// process exit code.
func Execute() int {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "nest:", err)
		return exitCode(err)
	}
	return exitSuccess
}

// loadConfig resolves the configuration directory, reads config.yaml and
// builds the logger.
func (a *app) loadConfig(cmd *cobra.Command) error {
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return sysError(err)
	}

	a.configDir = configDir
	a.cfg = cfg
	a.log = logging.New(cfg.GetString(cfgKeyLogLevel), cmd.ErrOrStderr())
	return nil
}

// dataDir resolves the data directory: --data-dir > config data_dir >
// NEST_DATA_DIR > $(CWD)/.nest-db.
func (a *app) dataDir() (string, error) {
	return paths.ResolveDataDir(a.flags.dataDir, a.cfg.GetString(cfgKeyDataDir))
}

// storeConfig builds the backend configuration from config.yaml.
func (a *app) storeConfig() (types.Config, error) {
	dataDir, err := a.dataDir()
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve data dir: %w", err)
	}
	return types.Config{
		Backend:      a.cfg.GetString(cfgKeyBackend),
		DataDir:      dataDir,
		SyncStrategy: a.cfg.GetString(cfgKeySyncStrategy),
		QuotaBytes:   a.cfg.GetInt64(cfgKeyQuotaBytes),
	}, nil
}

// open attaches the store and wires the services on top of it.
func (a *app) open() error {
	cfg, err := a.storeConfig()
	if err != nil {
		return err
	}
	store, err := backend.Open(cfg, a.log)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}

	keys := keymap.New(store, keymap.WithLogger(a.log))
	a.store = store
	a.docs = docstore.New(store, keys, docstore.WithLogger(a.log))
	a.planner = planner.New(a.docs,
		planner.WithDefaultFolderProtection(a.cfg.GetBool(cfgKeyProtectDefaults)),
		planner.WithLogger(a.log),
	)
	a.session = session.New(a.docs, store, session.WithLogger(a.log))
	return nil
}

// close detaches the store, flushing pending writes.
func (a *app) close() error {
	if a.store == nil {
		return nil
	}
	err := a.store.Close()
	a.store = nil
	return err
}

// run wraps a command body with store setup and teardown. Errors from the
// body are classified into user and system errors.
func (a *app) run(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := a.open(); err != nil {
			return sysError(err)
		}
		runErr := classify(fn(cmd, args))
		if err := a.close(); err != nil {
			return errors.Join(runErr, sysError(fmt.Errorf("close storage: %w", err)))
		}
		return runErr
	}
}
