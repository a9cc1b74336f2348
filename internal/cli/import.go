package cli

import (
	"context"
	"coursework/internal/storage"
	"fmt"
	"os"

	"github.com/labstack/gommon/bytes"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewImportCommand creates the import command, which copies the JSON
// storefront stores into the SQLite database.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Copy the JSON storefront stores into SQLite",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := rootOpts.toolLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer logger.Sync()

			cfg := rootOpts.cfg
			if dbPath == "" {
				dbPath = cfg.Storage.SQLitePath
			}
			db, err := storage.OpenSQLite(dbPath)
			if err != nil {
				return err
			}
			defer db.Close()

			ctx := cmd.Context()
			src, dst := jsonStores(cfg.Storefront), sqliteStores(db)
			steps := []struct {
				name string
				run  func() (int, error)
			}{
				{collProducts, func() (int, error) { return importOnce(ctx, dst.Products, src.Products) }},
				{collFAQs, func() (int, error) { return importOnce(ctx, dst.FAQs, src.FAQs) }},
				{collLoyalty, func() (int, error) { return importOnce(ctx, dst.Loyalty, src.Loyalty) }},
				{collFeedback, func() (int, error) { return importOnce(ctx, dst.Feedback, src.Feedback) }},
			}
			for _, step := range steps {
				n, err := step.run()
				if err != nil {
					return fmt.Errorf("import %s: %w", step.name, err)
				}
				logger.Info("imported", zap.String("collection", step.name), zap.Int("records", n))
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d\n", step.name, n)
			}

			if info, err := os.Stat(dbPath); err == nil {
				logger.Info("database written", zap.String("path", dbPath), zap.String("size", bytes.Format(info.Size())))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path (overrides storage.sqlite_path)")
	return cmd
}

// importOnce copies src into dst unless dst already holds records, so a
// second import does not duplicate them.
func importOnce[T any](ctx context.Context, dst, src storage.Repository[T]) (int, error) {
	existing, err := dst.Get(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}
	return storage.Copy(ctx, dst, src)
}
