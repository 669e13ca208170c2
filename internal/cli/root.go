// Package cli defines the cobra command tree for propctl.
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"propdash/server/config"
	"propdash/server/internal/dashboard"
	"propdash/server/internal/feed"
)

type globalOptions struct {
	format string
	feed   string
}

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:           "propctl",
		Short:         "Inspect a property listings feed",
		Long:          "Load a listings feed and print dashboard statistics, search results, synthetic owner records and map clusters.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != "text" && opts.format != "json" {
				return fmt.Errorf("unsupported format %q (text|json)", opts.format)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.format, "format", "text", "output format (text|json)")
	root.PersistentFlags().StringVar(&opts.feed, "feed", "", "feed file or URL (default: $FEED_SOURCE)")

	root.AddCommand(
		newStatsCmd(opts),
		newSearchCmd(opts),
		newOwnerCmd(opts),
		newClustersCmd(opts),
	)

	return root
}

func (o *globalOptions) isJSON() bool {
	return o.format == "json"
}

// loadStore reads the feed named by --feed, falling back to the environment
// configuration, and returns a populated store.
func (o *globalOptions) loadStore(ctx context.Context, stderr io.Writer) (*dashboard.Store, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	source := o.feed
	if source == "" {
		source = cfg.Feed.Source
	}

	logger := logrus.New()
	logger.SetOutput(stderr)
	logger.SetLevel(logrus.WarnLevel)

	loader := feed.NewLoader(logger, cfg.FeedTimeout(), cfg.Feed.MaxRetries, cfg.RetryDelay())

	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()
	properties, err := loader.Load(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("loading feed %s: %w", source, err)
	}

	store := dashboard.NewStoreFromConfig(cfg)
	store.Replace(properties)
	return store, nil
}
