package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"propdash/server/config"
	"propdash/server/internal/listings"
)

func newStatsCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show dashboard statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := opts.loadStore(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			if opts.isJSON() {
				return printJSON(cmd.OutOrStdout(), store.Stats())
			}
			return printStats(cmd.OutOrStdout(), store.Stats())
		},
	}
}

func newSearchCmd(opts *globalOptions) *cobra.Command {
	var (
		sortFlag string
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search listings by address, city or zip code",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := listings.ParseSortOrder(sortFlag)
			if err != nil {
				return err
			}

			store, err := opts.loadStore(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			query := listings.Query{Sort: order}
			if len(args) == 1 {
				query.Search = args[0]
			}
			results := store.Search(query).Properties
			if limit > 0 && len(results) > limit {
				results = results[:limit]
			}

			if opts.isJSON() {
				return printJSON(cmd.OutOrStdout(), results)
			}
			return printPropertyTable(cmd.OutOrStdout(), results)
		},
	}

	cmd.Flags().StringVar(&sortFlag, "sort", string(listings.DefaultSortOrder), "sort order (price_desc|price_asc|sqft_desc|newest)")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of results (0 for all)")

	return cmd
}

func newOwnerCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "owner <id>",
		Short: "Show the synthetic owner record for a listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := opts.loadStore(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			owner, err := store.Owner(args[0])
			if err != nil {
				return fmt.Errorf("listing %s: %w", args[0], err)
			}

			if opts.isJSON() {
				return printJSON(cmd.OutOrStdout(), owner)
			}
			return printOwner(cmd.OutOrStdout(), owner)
		},
	}
}

func newClustersCmd(opts *globalOptions) *cobra.Command {
	var (
		zoom         int
		viewportName string
	)

	cmd := &cobra.Command{
		Use:   "clusters",
		Short: "Group geo-tagged listings into map clusters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			viewport := config.GetViewportByName(viewportName)
			if viewport == nil {
				return fmt.Errorf("unknown viewport %q (%s)", viewportName, strings.Join(config.GetViewportNames(), "|"))
			}
			if zoom == 0 {
				zoom = viewport.ZoomLevel
			}

			store, err := opts.loadStore(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			clusters := store.Clusters(zoom, nil)
			if opts.isJSON() {
				return printJSON(cmd.OutOrStdout(), clusters)
			}
			return printClusterTable(cmd.OutOrStdout(), clusters)
		},
	}

	cmd.Flags().IntVar(&zoom, "zoom", 0, "map zoom level (1-20, default: the viewport's zoom)")
	cmd.Flags().StringVar(&viewportName, "viewport", config.DefaultViewport.Name,
		"named map viewport ("+strings.Join(config.GetViewportNames(), "|")+")")

	return cmd
}
