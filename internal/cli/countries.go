package cli

import (
	"coursework/internal/countries"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewCountriesCommand creates the countries command, which prints the
// grouped country tree.
func NewCountriesCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		filter   string
		snapshot string
	)

	names := make([]string, 0, 4)
	for _, f := range countries.Filters() {
		names = append(names, f.String())
	}

	cmd := &cobra.Command{
		Use:   "countries",
		Short: "Print countries grouped by region, subregion, currency or language",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := countries.ParseFilter(filter)
			if err != nil {
				return err
			}
			logger, err := rootOpts.toolLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer logger.Sync()

			cfg := rootOpts.cfg
			if snapshot == "" {
				snapshot = cfg.Countries.SnapshotFile
			}
			session, err := newCountriesSession(cfg, snapshot)
			if err != nil {
				return err
			}
			n, err := session.Refresh(cmd.Context())
			if err != nil {
				return fmt.Errorf("load countries: %w", err)
			}
			logger.Debug("countries loaded", zap.Int("count", n))

			view, err := session.Select(f)
			if err != nil {
				return err
			}
			return countries.WriteText(cmd.OutOrStdout(), view)
		},
	}

	cmd.Flags().StringVarP(&filter, "filter", "f", "region", "grouping: "+strings.Join(names, "|"))
	cmd.Flags().StringVar(&snapshot, "snapshot", "", "read countries from a local JSON file instead of the API")
	return cmd
}
