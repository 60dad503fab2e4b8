// internal/quote/compare_test.go
package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare_Determinism(t *testing.T) {
	raw := withFeature(createBaselineRaw(), func(f *Features) {
		f.CMS.Enabled = true
		f.Integrations = IntegrationsFeature{Enabled: true, Count: 7}
	})
	raw.Timeline.ProjectStart = StartUrgent
	cfg := mustValidate(t, raw)

	first := Compare(cfg)
	second := Compare(cfg)
	assert.Equal(t, first, second, "same configuration must yield identical output")
}

func TestCompare_SavingsConsistency(t *testing.T) {
	tests := []struct {
		name string
		raw  RawConfiguration
	}{
		{"baseline", createBaselineRaw()},
		{"urgent ecommerce", func() RawConfiguration {
			raw := createBaselineRaw()
			raw.ProjectType = ProjectEcommerce
			raw.Timeline.ProjectStart = StartUrgent
			return raw
		}()},
		{"premium mobile app", func() RawConfiguration {
			raw := createBaselineRaw()
			raw.ProjectType = ProjectMobileApp
			raw.Design.Level = DesignPremium
			raw.Quality.Security = SecurityEnterprise
			return raw
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmp := Compare(mustValidate(t, tt.raw))

			assert.Equal(t, cmp.Freelancer.PriceAvg-cmp.Headon.PriceAvg,
				cmp.Savings.VsFreelancer.Price)
			assert.Equal(t, cmp.Agency.PriceAvg-cmp.Headon.PriceAvg,
				cmp.Savings.VsAgency.Price)
			assert.InDelta(t, cmp.Freelancer.DurationWeeksAvg()-cmp.Headon.DurationWeeksAvg(),
				cmp.Savings.VsFreelancer.TimeWeeks, 0.0001)
			assert.InDelta(t, cmp.Agency.DurationWeeksAvg()-cmp.Headon.DurationWeeksAvg(),
				cmp.Savings.VsAgency.TimeWeeks, 0.0001)
		})
	}
}

func TestCompare_PositionalOrder(t *testing.T) {
	cmp := Compare(mustValidate(t, createBaselineRaw()))

	ests := cmp.Estimates()
	assert.Equal(t, ProviderFreelancer, ests[0].Provider)
	assert.Equal(t, ProviderAgency, ests[1].Provider)
	assert.Equal(t, ProviderHeadon, ests[2].Provider)
}

func TestCompare_SavingsAreNotClamped(t *testing.T) {
	// The current tables keep headon cheapest, but the savings derivation
	// itself must pass the raw difference through unchanged.
	cmp := Compare(mustValidate(t, createBaselineRaw()))
	recomputed := savingsAgainst(cmp.Freelancer, cmp.Headon)
	assert.Equal(t, recomputed, cmp.Savings.VsFreelancer)
}
