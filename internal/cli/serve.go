package cli

import (
	"context"
	"coursework/internal/api"
	"coursework/internal/config"
	"coursework/internal/countries"
	"coursework/internal/engine"
	"coursework/internal/languages"
	"coursework/internal/portfolio"
	"coursework/internal/storefront"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewServeCommand creates the serve command with one subcommand per app.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run one of the web apps",
	}
	cmd.PersistentFlags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")

	apps := []struct {
		name  string
		short string
		build func(ctx context.Context, cfg *config.Config, e *echo.Echo, logger *zap.Logger) (func() error, error)
	}{
		{"storefront", "Serve the sports-medicine storefront", buildStorefront},
		{"languages", "Serve the programming languages reference", buildLanguages},
		{"countries", "Serve the countries lookup", buildCountries},
		{"portfolio", "Serve the portfolio site", buildPortfolio},
	}
	for _, app := range apps {
		cmd.AddCommand(&cobra.Command{
			Use:   app.name,
			Short: app.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg := rootOpts.cfg
				if addr != "" {
					cfg.Server.Addr = addr
				}
				logger, err := rootOpts.serverLogger()
				if err != nil {
					return err
				}
				defer logger.Sync()
				logger = logger.With(zap.String("app", app.name))

				ctx := cmd.Context()
				e := api.NewEcho(logger)
				cleanup, err := app.build(ctx, cfg, e, logger)
				if err != nil {
					return err
				}
				defer cleanup()
				return api.Serve(ctx, e, cfg.Server.Addr, logger)
			},
		})
	}
	return cmd
}

func noCleanup() error { return nil }

func buildStorefront(ctx context.Context, cfg *config.Config, e *echo.Echo, logger *zap.Logger) (func() error, error) {
	collator, err := engine.NewCollator(cfg.Storefront.Locale)
	if err != nil {
		return nil, err
	}
	stores, closeStores, err := openStores(cfg)
	if err != nil {
		return nil, err
	}
	svc := storefront.NewService(stores, collator, logger)
	if err := svc.Check(ctx); err != nil {
		closeStores()
		return nil, fmt.Errorf("storefront data check: %w", err)
	}

	api.NewStorefrontHandler(svc).RegisterRoutes(e)
	api.RegisterStatic(e, cfg.Storefront.StaticDir)
	return closeStores, nil
}

func buildLanguages(ctx context.Context, cfg *config.Config, e *echo.Echo, logger *zap.Logger) (func() error, error) {
	collator, err := engine.NewCollator(cfg.Languages.Locale)
	if err != nil {
		return nil, err
	}
	api.NewLanguagesHandler(languages.NewService(cfg.Languages.DataFile, collator)).RegisterRoutes(e)
	api.RegisterStatic(e, cfg.Languages.StaticDir)
	return noCleanup, nil
}

func buildCountries(ctx context.Context, cfg *config.Config, e *echo.Echo, logger *zap.Logger) (func() error, error) {
	session, err := newCountriesSession(cfg, cfg.Countries.SnapshotFile)
	if err != nil {
		return nil, err
	}
	h := api.NewCountriesHandler(session, logger)
	h.RegisterRoutes(e)
	api.RegisterStatic(e, cfg.Countries.StaticDir)

	// Load in the background; the API answers 503 until it commits.
	go h.Load(ctx)
	return noCleanup, nil
}

func buildPortfolio(ctx context.Context, cfg *config.Config, e *echo.Echo, logger *zap.Logger) (func() error, error) {
	api.NewPortfolioHandler(portfolio.NewResume(cfg.Portfolio.ResumeDir, cfg.Portfolio.ResumeName)).RegisterRoutes(e)
	api.RegisterStatic(e, cfg.Portfolio.StaticDir)
	return noCleanup, nil
}

// newCountriesSession reads from snapshot when given, else from the API.
func newCountriesSession(cfg *config.Config, snapshot string) (*countries.Session, error) {
	collator, err := engine.NewCollator(cfg.Countries.Locale)
	if err != nil {
		return nil, err
	}
	var src countries.Source = countries.NewHTTPSource(cfg.Countries.APIURL, cfg.CountriesTimeout())
	if snapshot != "" {
		src = countries.NewFileSource(snapshot)
	}
	var opts []engine.Option
	if cfg.Countries.MissingLabel != "" {
		opts = append(opts, engine.WithMissingLabel(cfg.Countries.MissingLabel))
	}
	return countries.NewSession(src, collator, opts...), nil
}
