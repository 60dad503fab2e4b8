// internal/quote/estimate_test.go
package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func createBaselineRaw() RawConfiguration {
	return RawConfiguration{
		ProjectType: ProjectWebApp,
		Design: Design{
			Level:          DesignCustom,
			PageCountBand:  Pages1To5,
			Responsiveness: ResponsiveDesktopOnly,
			UXComplexity:   UXStandard,
		},
		Quality: Quality{
			SEO:           SEONone,
			Performance:   PerfStandard,
			Security:      SecurityStandard,
			Testing:       TestingBasic,
			Accessibility: A11yNone,
		},
		Timeline: Timeline{
			ProjectStart: StartFlexible,
			Maintenance:  MaintenanceNone,
		},
	}
}

func mustValidate(t *testing.T, raw RawConfiguration) ProjectConfiguration {
	t.Helper()
	cfg, errs := Validate(raw)
	require.Empty(t, errs, "expected a valid configuration")
	return cfg
}

func withFeature(raw RawConfiguration, apply func(*Features)) RawConfiguration {
	apply(&raw.Features)
	return raw
}

// ==========================
// Band Invariants
// ==========================

func TestEstimate_BandOrdering(t *testing.T) {
	configs := map[string]RawConfiguration{
		"baseline": createBaselineRaw(),
		"all features": withFeature(createBaselineRaw(), func(f *Features) {
			f.CMS.Enabled = true
			f.Authentication.Enabled = true
			f.Database.Enabled = true
			f.Payments.Enabled = true
			f.API.Enabled = true
			f.Integrations = IntegrationsFeature{Enabled: true, Count: 5}
			f.FileUploads.Enabled = true
			f.I18N = I18NFeature{Enabled: true, LanguageCount: 3}
			f.AdminDashboard.Enabled = true
			f.Realtime.Enabled = true
		}),
		"urgent premium": func() RawConfiguration {
			raw := createBaselineRaw()
			raw.Design.Level = DesignPremium
			raw.Design.UXComplexity = UXPremium
			raw.Timeline.ProjectStart = StartUrgent
			return raw
		}(),
	}

	for name, raw := range configs {
		t.Run(name, func(t *testing.T) {
			cfg := mustValidate(t, raw)
			for _, profile := range Profiles() {
				est := Estimate(cfg, profile)
				assert.GreaterOrEqual(t, est.PriceLow, 0, "%s priceLow", profile.Provider)
				assert.LessOrEqual(t, est.PriceLow, est.PriceAvg, "%s priceLow <= priceAvg", profile.Provider)
				assert.LessOrEqual(t, est.PriceAvg, est.PriceHigh, "%s priceAvg <= priceHigh", profile.Provider)
				assert.LessOrEqual(t, est.DurationWeeksLow, est.DurationWeeksHigh, "%s duration band", profile.Provider)
				assert.GreaterOrEqual(t, est.DurationWeeksLow, profile.MinWeeks, "%s duration floor", profile.Provider)
			}
		})
	}
}

func TestEstimate_UrgencyOrdering(t *testing.T) {
	flexible := mustValidate(t, createBaselineRaw())

	rawUrgent := createBaselineRaw()
	rawUrgent.Timeline.ProjectStart = StartUrgent
	urgent := mustValidate(t, rawUrgent)

	for _, profile := range Profiles() {
		flexEst := Estimate(flexible, profile)
		urgentEst := Estimate(urgent, profile)

		assert.GreaterOrEqual(t, urgentEst.PriceAvg, flexEst.PriceAvg,
			"%s: urgent must not be cheaper", profile.Provider)
		assert.LessOrEqual(t, urgentEst.DurationWeeksHigh, flexEst.DurationWeeksHigh,
			"%s: urgent must not take longer", profile.Provider)
	}
}

func TestEstimate_FeatureMonotonicity(t *testing.T) {
	toggles := map[string]func(*Features){
		"cms":            func(f *Features) { f.CMS.Enabled = true },
		"authentication": func(f *Features) { f.Authentication.Enabled = true },
		"database":       func(f *Features) { f.Database.Enabled = true },
		"payments":       func(f *Features) { f.Payments.Enabled = true },
		"api":            func(f *Features) { f.API.Enabled = true },
		"integrations":   func(f *Features) { f.Integrations = IntegrationsFeature{Enabled: true, Count: 1} },
		"fileUploads":    func(f *Features) { f.FileUploads.Enabled = true },
		"i18n":           func(f *Features) { f.I18N = I18NFeature{Enabled: true, LanguageCount: 2} },
		"adminDashboard": func(f *Features) { f.AdminDashboard.Enabled = true },
		"realtime":       func(f *Features) { f.Realtime.Enabled = true },
	}

	base := mustValidate(t, createBaselineRaw())

	for name, apply := range toggles {
		t.Run(name, func(t *testing.T) {
			cfg := mustValidate(t, withFeature(createBaselineRaw(), apply))
			for _, profile := range Profiles() {
				withFeat := Estimate(cfg, profile)
				without := Estimate(base, profile)
				assert.GreaterOrEqual(t, withFeat.PriceAvg, without.PriceAvg,
					"%s: enabling %s must not decrease the price", profile.Provider, name)
			}
		})
	}
}

func TestEstimate_IntegrationCountBoundary(t *testing.T) {
	atMax := mustValidate(t, withFeature(createBaselineRaw(), func(f *Features) {
		f.Integrations = IntegrationsFeature{Enabled: true, Count: MaxIntegrations}
	}))
	atZero := mustValidate(t, withFeature(createBaselineRaw(), func(f *Features) {
		f.Integrations = IntegrationsFeature{Enabled: true, Count: 0}
	}))

	// Headon has SurchargeScale 1.0 and no urgency factor applies here, so
	// the delta is exactly the linear per-integration term.
	headon := ProfileFor(ProviderHeadon)
	delta := Estimate(atMax, headon).PriceAvg - Estimate(atZero, headon).PriceAvg
	assert.Equal(t, MaxIntegrations*surchargePerIntegration, delta)
}

func TestEstimate_BaselineScenario(t *testing.T) {
	cfg := mustValidate(t, createBaselineRaw())

	headon := Estimate(cfg, ProfileFor(ProviderHeadon))
	assert.Equal(t, 18000, headon.PriceAvg, "web app base 15000 with custom design factor 1.2")
	assert.Equal(t, 16200, headon.PriceLow)
	assert.Equal(t, 19800, headon.PriceHigh)
	assert.InDelta(t, 8.5, headon.DurationWeeksLow, 0.001)
	assert.InDelta(t, 10.0, headon.DurationWeeksHigh, 0.001)

	cmp := Compare(cfg)
	assert.GreaterOrEqual(t, cmp.Savings.VsFreelancer.Price, 0,
		"headon is baseline-cheapest by construction of the profile tables")
	assert.GreaterOrEqual(t, cmp.Savings.VsAgency.Price, 0)
}

func TestEstimate_DurationFloor(t *testing.T) {
	raw := createBaselineRaw()
	raw.ProjectType = ProjectSimpleWebsite
	raw.Design.Level = DesignTemplate
	raw.Timeline.ProjectStart = StartUrgent
	cfg := mustValidate(t, raw)

	agency := Estimate(cfg, ProfileFor(ProviderAgency))
	assert.Equal(t, 2.0, agency.DurationWeeksLow, "agency never quotes below two weeks")

	freelancer := Estimate(cfg, ProfileFor(ProviderFreelancer))
	assert.GreaterOrEqual(t, freelancer.DurationWeeksLow, 1.0)
}

func TestEstimate_TimelineAddonsAreAdditive(t *testing.T) {
	raw := createBaselineRaw()
	raw.Timeline.Maintenance = MaintenancePremium
	raw.Timeline.SupportDuration = 12
	raw.Timeline.Hosting = true
	raw.Timeline.Training = true
	cfg := mustValidate(t, raw)

	headon := ProfileFor(ProviderHeadon)
	base := Estimate(mustValidate(t, createBaselineRaw()), headon)
	withAddons := Estimate(cfg, headon)

	expected := addonMaintenancePremium + addonSupport12Months + addonHosting + addonTraining
	assert.Equal(t, expected, withAddons.PriceAvg-base.PriceAvg)
}

// ==========================
// Fail-fast Semantics
// ==========================

func TestEstimate_PanicsOnOutOfDomainEnum(t *testing.T) {
	cfg := mustValidate(t, createBaselineRaw())
	cfg.ProjectType = "hovercraft"

	assert.Panics(t, func() {
		Estimate(cfg, ProfileFor(ProviderHeadon))
	}, "an enum value validation should have rejected is a programming error")
}

func TestProfileFor_PanicsOnUnknownProvider(t *testing.T) {
	assert.Panics(t, func() {
		ProfileFor("subcontractor")
	})
}

func TestProfiles_StableOrder(t *testing.T) {
	ps := Profiles()
	assert.Equal(t, ProviderFreelancer, ps[0].Provider)
	assert.Equal(t, ProviderAgency, ps[1].Provider)
	assert.Equal(t, ProviderHeadon, ps[2].Provider)
}
