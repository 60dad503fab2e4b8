// internal/quote/score.go
package quote

// Lead score thresholds on the headon average price.
const (
	scoreValueHigh   = 50000
	scoreValueMedium = 25000
	scoreValueLow    = 10000
)

// Score derives the lead priority score from a configuration and its
// comparison result. It is a triage signal for outbound routing only and
// must never feed back into pricing.
//
// The bands are additive with no normalization; the result is always >= 0.
func Score(cfg ProjectConfiguration, cmp ComparisonResult) int {
	score := 0

	// Estimated value (max 15 points)
	value := cmp.Headon.PriceAvg
	switch {
	case value > scoreValueHigh:
		score += 15
	case value > scoreValueMedium:
		score += 10
	case value > scoreValueLow:
		score += 5
	}

	// Urgency (max 10 points)
	switch cfg.Timeline.ProjectStart {
	case StartUrgent:
		score += 10
	case StartNormal:
		score += 5
	}

	// One point per enabled feature, regardless of sub-parameters (max 10)
	score += cfg.Features.EnabledCount()

	// Stated preference for headon (10 points)
	if cfg.PreferredProvider == ProviderHeadon {
		score += 10
	}

	// Compliance and aftercare commitment indicate a serious request
	if cfg.Quality.DSGVO {
		score += 2
	}
	switch cfg.Timeline.Maintenance {
	case MaintenancePremium:
		score += 5
	case MaintenanceBasic:
		score += 3
	}
	if cfg.Timeline.SupportDuration >= 6 {
		score += 3
	}

	return score
}
