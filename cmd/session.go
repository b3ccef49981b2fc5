package cmd

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/tayloree/phonecmp/internal/catalog"
	"github.com/tayloree/phonecmp/internal/compare"
	"github.com/tayloree/phonecmp/internal/config"
	"github.com/tayloree/phonecmp/internal/logging"
	"github.com/tayloree/phonecmp/internal/storage"
	"github.com/tayloree/phonecmp/internal/theme"
)

// session is the per-run state shared by commands that read or change the
// saved selection and theme.
type session struct {
	cfg       config.Config
	logger    *log.Logger
	store     storage.Store
	selection *compare.Selection
	theme     *theme.Preference
}

var current *session

// loadSession resolves config and opens the state store once per run.
func loadSession(cmd *cobra.Command) (*session, error) {
	if current != nil {
		return current, nil
	}

	v := config.New()
	pf := cmd.Root().PersistentFlags()
	for key, name := range map[string]string{
		config.KeyStorageBackend: "store-backend",
		config.KeyStoragePath:    "store-path",
	} {
		if err := v.BindPFlag(key, pf.Lookup(name)); err != nil {
			return nil, fmt.Errorf("binding --%s: %w", name, err)
		}
	}
	if err := config.ReadFile(v, flagConfig); err != nil {
		return nil, invalidArgsError(err.Error(), "phonecmp --config ~/.config/phonecmp/config.yaml")
	}
	cfg, err := config.Load(v)
	if err != nil {
		return nil, invalidArgsError(err.Error(), "phonecmp --store-backend memory")
	}

	level := cfg.LogLevel
	if flagVerbose {
		level = "debug"
	}
	logger := logging.NewWithWriter(cmd.ErrOrStderr(), "phonecmp", level)
	logger.Debug("resolved config",
		"backend", cfg.StorageBackend,
		"path", cfg.StoragePath,
		"config", cfg.ConfigFile,
	)

	store, err := storage.Open(cfg.StorageBackend, cfg.StoragePath, storage.WithLogger(logger))
	if err != nil {
		return nil, storageError("opening storage", err)
	}
	if fs, ok := store.(*storage.File); ok {
		logger.Debug("state file", "path", fs.Path())
	}

	current = &session{
		cfg:    cfg,
		logger: logger,
		store:  store,
		selection: compare.NewSelection(store,
			compare.WithLogger(logger),
			compare.WithKnownIDs(catalog.Known),
		),
		theme: theme.Load(store, cfg.DefaultTheme, logger),
	}
	return current, nil
}

func closeSession() {
	if current == nil {
		return
	}
	if err := current.store.Close(); err != nil {
		current.logger.Warn("closing storage failed", "err", err)
	}
	current = nil
}
