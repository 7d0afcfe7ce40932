package cli

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/itemdeck/internal/config"
	"github.com/Makepad-fr/itemdeck/internal/deck"
	"github.com/Makepad-fr/itemdeck/internal/logs"
	"github.com/Makepad-fr/itemdeck/internal/tui"
	"github.com/Makepad-fr/itemdeck/internal/ui"
)

// runtimeError marks failures that are not the caller's fault (exit 1).
// Anything else cobra or a command returns is a usage error (exit 2).
type runtimeError struct{ err error }

func (e *runtimeError) Error() string { return e.err.Error() }
func (e *runtimeError) Unwrap() error { return e.err }

func runtimeErr(format string, args ...any) error {
	return &runtimeError{err: fmt.Errorf(format, args...)}
}

// app carries what every subcommand shares once the root has set up.
type app struct {
	flags config.CLIFlags
	cfg   *config.Config
	deck  *deck.Deck
	runUI func(*deck.Deck) error
}

// Execute runs the command line and returns the process exit code:
// 0 ok, 1 runtime error, 2 usage error.
func Execute(args []string, stdout, stderr io.Writer) int {
	a := &app{runUI: tui.Run}
	return a.execute(args, stdout, stderr)
}

func (a *app) execute(args []string, stdout, stderr io.Writer) int {
	ui.SetOutput(stdout, stderr)
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	a.close()
	if err == nil {
		return 0
	}
	ui.Fail(err.Error())
	var re *runtimeError
	if errors.As(err, &re) {
		return 1
	}
	return 2
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "itemdeck",
		Short: "A categorised item list in your terminal",
		Long: `itemdeck keeps a small list of todos, bugs and features.

Without a subcommand it opens the interactive list. The subcommands work
on the same stored collection.`,
		Args:              cobra.NoArgs,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.interactive()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.ConfigPath, "config", "", "config file (default ~/.config/itemdeck/config.yaml)")
	pf.StringVar(&a.flags.StoreBackend, "store", "", "storage backend: file, sqlite or memory")
	pf.StringVar(&a.flags.StorePath, "store-path", "", "storage directory or sqlite file")
	pf.StringVar(&a.flags.Theme, "theme", "", "color theme: classic, neon or mono")

	root.AddCommand(
		a.uiCommand(),
		a.listCommand(),
		a.addCommand(),
		a.doneCommand(),
		a.removeCommand(),
		a.editCommand(),
		a.statsCommand(),
	)
	return root
}

// setup resolves the configuration, starts logging and opens the deck.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if b := a.flags.StoreBackend; b != "" {
		probe := config.Config{Store: config.StoreConfig{Backend: b}}
		if err := probe.Validate(); err != nil {
			return err
		}
	}

	cfg, err := config.Load(a.flags)
	if err != nil {
		return runtimeErr("load config: %w", err)
	}
	a.cfg = cfg

	if dir := logDir(cfg); dir != "" {
		if err := logs.Initialize(dir); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not initialize logger: %v\n", err)
		}
	}
	logs.Logger.Printf("itemdeck %s (store=%s path=%s)", cmd.Name(), cfg.Store.Backend, cfg.Store.Path)

	ui.SetTheme(cfg.Theme)
	a.deck = deck.Open(cfg)
	ui.SetDark(a.deck.Dark.Get())
	return nil
}

func logDir(cfg *config.Config) string {
	switch {
	case cfg.LogDir != "":
		return cfg.LogDir
	case cfg.Store.Backend == config.BackendMemory:
		return ""
	case cfg.Store.Backend == config.BackendSQLite:
		return filepath.Dir(cfg.SQLitePath())
	}
	return cfg.Store.Path
}

func (a *app) close() {
	if a.deck != nil {
		if err := a.deck.Close(); err != nil {
			logs.Logger.Printf("close store: %v", err)
		}
		a.deck = nil
	}
	logs.Close()
}

func (a *app) uiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.interactive()
		},
	}
}

func (a *app) interactive() error {
	path, err := config.ConfigPath(a.flags)
	if err == nil {
		err = config.EnsureConfigFile(path)
	}
	if err != nil {
		logs.Logger.Printf("Warning: could not create config file: %v", err)
	}
	if err := a.runUI(a.deck); err != nil {
		return runtimeErr("ui: %w", err)
	}
	return nil
}
