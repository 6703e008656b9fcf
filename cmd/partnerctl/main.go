// partnerctl is the command-line binding over the partner catalog: it
// composes product drafts from flags, lists and deletes catalog entries,
// and edits the shop profile. It stands in for the dashboard UI and plays
// the capture collaborator by encoding local image files as data URIs.
package main

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zenyors/whizcartt-partner/internal/catalog"
	"github.com/zenyors/whizcartt-partner/internal/config"
	"github.com/zenyors/whizcartt-partner/internal/lookup"
	"github.com/zenyors/whizcartt-partner/internal/notification"
	"github.com/zenyors/whizcartt-partner/internal/session"
	"github.com/zenyors/whizcartt-partner/internal/storage"
	"github.com/zenyors/whizcartt-partner/internal/storefront"
)

var rootCmd = &cobra.Command{
	Use:   "partnerctl",
	Short: "Whizcartt partner catalog from the command line",
	Long: `partnerctl manages a Whizcartt partner's product catalog and shop
profile. Products are composed the same way the dashboard composes them:
scalar fields, attributes, categories, an optional discount, variations
and up to five images, saved to the local partner store.`,
	SilenceUsage: true,
}

// app bundles the wired-up services behind every subcommand.
type app struct {
	store   *catalog.Store
	shop    *storefront.Store
	session *session.Session
}

func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := zap.NewNop()
	if cfg.Verbose {
		if logger, err = zap.NewDevelopment(); err != nil {
			return nil, err
		}
	}

	var backend storage.Storage
	switch cfg.Storage.Driver {
	case "", "file":
		backend = storage.NewFileStorage(afero.NewOsFs(), cfg.Storage.Path)
	case "postgres":
		db, err := sql.Open("postgres", cfg.Storage.DSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres storage: %w", err)
		}
		pg := storage.NewPostgresStorage(db)
		if err := pg.EnsureSchema(cmd.Context()); err != nil {
			return nil, err
		}
		backend = pg
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	store := catalog.NewStore(catalog.NewStorageRepository(backend), logger)
	notifier := notification.NewZapNotifier(terminalLogger())
	sess := session.New(store, notifier, lookup.NewMockLookup())

	return &app{
		store:   store,
		shop:    storefront.NewStore(backend),
		session: sess,
	}, nil
}

// terminalLogger prints notices without timestamps or caller noise; it is
// the CLI's stand-in for the dashboard's toasts.
func terminalLogger() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func main() {
	rootCmd.AddCommand(newProductCmd(), newShopCmd())
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
