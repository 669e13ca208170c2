package dashboard

import (
	"propdash/server/config"
	"propdash/server/internal/owners"
	"propdash/server/internal/stats"
)

// NewStoreFromConfig wires the policy and clustering settings from cfg.
func NewStoreFromConfig(cfg *config.Config) *Store {
	policy := owners.DefaultRiskPolicy()
	policy.CutoffDays = cfg.Policy.RiskCutoffDays

	return NewStore(
		stats.NewAggregator(cfg.Policy.OpportunityRatio),
		owners.NewGenerator(owners.WithRiskPolicy(policy)),
		ClusterConfig{
			BaseCellSize: cfg.Clustering.BaseCellSize,
			BaseZoom:     cfg.Clustering.BaseZoom,
		},
	)
}
