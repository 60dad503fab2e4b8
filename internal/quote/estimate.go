// internal/quote/estimate.go
package quote

import "math"

// Flat feature surcharges in whole currency units, at headon scale. The
// per-profile SurchargeScale stretches them for the other provider types.
const (
	surchargeCMS            = 1800
	surchargeAuthentication = 1500
	surchargeDatabase       = 1200
	surchargePayments       = 2200
	surchargeAPI            = 1800
	surchargeIntegrations   = 900
	surchargePerIntegration = 250
	surchargeFileUploads    = 800
	surchargeI18N           = 1000
	surchargePerLanguage    = 350
	surchargeAdminDashboard = 2500
	surchargeRealtime       = 2800
	surchargeDSGVO          = 600
)

// Timeline add-ons. These are optional scope, not core complexity, so they
// stay out of the multiplier chain.
const (
	addonMaintenanceBasic   = 900
	addonMaintenancePremium = 2400
	addonSupport3Months     = 600
	addonSupport6Months     = 1100
	addonSupport12Months    = 2000
	addonHosting            = 500
	addonTraining           = 800
)

// Estimate computes the price/duration band for one validated configuration
// under one provider profile. The pipeline order is fixed: base by project
// type, multiplicative design/quality factors, additive feature and timeline
// surcharges, then the urgency factor over the full scope. The same order
// applies to every profile.
//
// Estimate assumes cfg came out of Validate; an out-of-domain enum value
// panics via the table lookups rather than being silently defaulted.
func Estimate(cfg ProjectConfiguration, profile ProviderProfile) ProviderEstimate {
	price := mustBasePrice(profile, cfg.ProjectType)
	weeks := mustBaseWeeks(profile, cfg.ProjectType)

	pf := profile.PriceFactor
	df := profile.DurationFactor

	price *= mustFactor(pf.DesignLevel, cfg.Design.Level, "design level")
	price *= mustFactor(pf.UXComplexity, cfg.Design.UXComplexity, "ux complexity")
	price *= mustFactor(pf.Responsiveness, cfg.Design.Responsiveness, "responsiveness")
	price *= mustFactor(pf.PageBand, cfg.Design.PageCountBand, "page band")
	price *= mustFactor(pf.SEO, cfg.Quality.SEO, "seo")
	price *= mustFactor(pf.Performance, cfg.Quality.Performance, "performance")
	price *= mustFactor(pf.Security, cfg.Quality.Security, "security")
	price *= mustFactor(pf.Testing, cfg.Quality.Testing, "testing")
	price *= mustFactor(pf.Accessibility, cfg.Quality.Accessibility, "accessibility")

	weeks *= mustFactor(df.DesignLevel, cfg.Design.Level, "design level")
	weeks *= mustFactor(df.UXComplexity, cfg.Design.UXComplexity, "ux complexity")
	weeks *= mustFactor(df.Responsiveness, cfg.Design.Responsiveness, "responsiveness")
	weeks *= mustFactor(df.PageBand, cfg.Design.PageCountBand, "page band")
	weeks *= mustFactor(df.SEO, cfg.Quality.SEO, "seo")
	weeks *= mustFactor(df.Performance, cfg.Quality.Performance, "performance")
	weeks *= mustFactor(df.Security, cfg.Quality.Security, "security")
	weeks *= mustFactor(df.Testing, cfg.Quality.Testing, "testing")
	weeks *= mustFactor(df.Accessibility, cfg.Quality.Accessibility, "accessibility")

	price += float64(featureSurcharges(cfg.Features)+qualitySurcharges(cfg.Quality)+timelineAddons(cfg.Timeline)) * profile.SurchargeScale

	// Urgency last, so the rush factor inflates the full scope.
	price *= mustFactor(pf.ProjectStart, cfg.Timeline.ProjectStart, "project start")
	weeks *= mustFactor(df.ProjectStart, cfg.Timeline.ProjectStart, "project start")

	avg := roundCurrency(price)
	low := roundCurrency(price * (1 - profile.SpreadPct))
	high := roundCurrency(price * (1 + profile.SpreadPct))

	weeksLow := roundHalfWeek(weeks * (1 - profile.SpreadPct))
	weeksHigh := roundHalfWeek(weeks * (1 + profile.SpreadPct))
	if weeksLow < profile.MinWeeks {
		weeksLow = profile.MinWeeks
	}
	if weeksHigh < weeksLow {
		weeksHigh = weeksLow
	}

	return ProviderEstimate{
		Provider:          profile.Provider,
		PriceLow:          low,
		PriceHigh:         high,
		PriceAvg:          avg,
		DurationWeeksLow:  weeksLow,
		DurationWeeksHigh: weeksHigh,
	}
}

func featureSurcharges(f Features) int {
	total := 0
	if f.CMS.Enabled {
		total += surchargeCMS
	}
	if f.Authentication.Enabled {
		total += surchargeAuthentication
	}
	if f.Database.Enabled {
		total += surchargeDatabase
	}
	if f.Payments.Enabled {
		total += surchargePayments
	}
	if f.API.Enabled {
		total += surchargeAPI
	}
	if f.Integrations.Enabled {
		total += surchargeIntegrations + surchargePerIntegration*f.Integrations.Count
	}
	if f.FileUploads.Enabled {
		total += surchargeFileUploads
	}
	if f.I18N.Enabled {
		total += surchargeI18N + surchargePerLanguage*f.I18N.LanguageCount
	}
	if f.AdminDashboard.Enabled {
		total += surchargeAdminDashboard
	}
	if f.Realtime.Enabled {
		total += surchargeRealtime
	}
	return total
}

func qualitySurcharges(q Quality) int {
	if q.DSGVO {
		return surchargeDSGVO
	}
	return 0
}

func timelineAddons(t Timeline) int {
	total := 0
	switch t.Maintenance {
	case MaintenanceBasic:
		total += addonMaintenanceBasic
	case MaintenancePremium:
		total += addonMaintenancePremium
	}
	switch t.SupportDuration {
	case 3:
		total += addonSupport3Months
	case 6:
		total += addonSupport6Months
	case 12:
		total += addonSupport12Months
	}
	if t.Hosting {
		total += addonHosting
	}
	if t.Training {
		total += addonTraining
	}
	return total
}

// roundCurrency rounds to the nearest whole currency unit.
func roundCurrency(v float64) int {
	return int(math.Round(v))
}

// roundHalfWeek rounds to the nearest half week.
func roundHalfWeek(w float64) float64 {
	return math.Round(w*2) / 2
}
