package main

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"caretranslate/internal/app"
	"caretranslate/internal/config"
	"caretranslate/internal/dictionary"
)

// Driver selects the storage backend, overriding the configured one.
type Driver string

func (d *Driver) Set(val string) error {
	if !slices.Contains(allDrivers, val) {
		return fmt.Errorf("invalid driver: %s", val)
	}
	*d = Driver(val)
	return nil
}

func (d Driver) String() string { return string(d) }

func (d *Driver) Type() string { return "driver" }

var (
	_          pflag.Value = (*Driver)(nil)
	allDrivers             = []string{config.DriverMemory, config.DriverFile, config.DriverPostgres}
)

type options struct {
	driver Driver
	dir    string
	// openStore is replaced in tests.
	openStore func(ctx context.Context, opts *options, logOut io.Writer) (*dictionary.Store, func() error, error)
}

func newRootCommand(opts *options) *cobra.Command {
	root := &cobra.Command{
		Use:           "dictctl",
		Short:         "Inspect and maintain the saved medical dictionary",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := root.PersistentFlags()
	flags.Var(&opts.driver, "driver", fmt.Sprintf("storage driver override. Possible values are %v", allDrivers))
	flags.StringVar(&opts.dir, "dir", "", "directory for the file driver")

	root.AddCommand(
		newListCommand(opts),
		newShowCommand(opts),
		newStatsCommand(opts),
		newExportCommand(opts),
		newImportCommand(opts),
		newClearCommand(opts),
	)
	return root
}

// openStore loads configuration the same way the server does, applies flag
// overrides and opens the dictionary.
func openStore(ctx context.Context, opts *options, logOut io.Writer) (*dictionary.Store, func() error, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if opts.driver != "" {
		cfg.Storage.Driver = string(opts.driver)
	}
	if opts.dir != "" {
		cfg.Storage.Dir = opts.dir
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("config: validate: %w", err)
	}

	slot, closeSlot, err := app.OpenSlot(ctx, cfg.Storage)
	if err != nil {
		return nil, nil, fmt.Errorf("app.OpenSlot > %w", err)
	}
	store := dictionary.New(ctx, slot,
		dictionary.WithKey(cfg.Storage.Key),
		dictionary.WithLogger(config.NewLogger(cfg.Log, logOut)),
	)
	return store, closeSlot, nil
}

// withStore opens the store for the duration of fn.
func withStore(cmd *cobra.Command, opts *options, fn func(store *dictionary.Store) error) error {
	store, closeFn, err := opts.openStore(cmd.Context(), opts, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() { _ = closeFn() }()
	return fn(store)
}
