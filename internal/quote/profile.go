// internal/quote/profile.go
package quote

import "fmt"

// factorTable maps every declared enum value to a multiplier. Lookups go
// through mustFactor, so a missing entry is a profile-table bug and panics.
type factorTable struct {
	DesignLevel    map[string]float64
	UXComplexity   map[string]float64
	Responsiveness map[string]float64
	PageBand       map[string]float64
	SEO            map[string]float64
	Performance    map[string]float64
	Security       map[string]float64
	Testing        map[string]float64
	Accessibility  map[string]float64
	ProjectStart   map[string]float64
}

// ProviderProfile is the fixed multiplier/rate table for one provider type.
// Adding a provider is a data change here, not a code change in Estimate.
type ProviderProfile struct {
	Provider       string
	DayRate        int
	SpreadPct      float64 // half-width of the price/duration band
	MinWeeks       float64 // duration floor after rounding
	SurchargeScale float64 // scales the shared feature/timeline add-on amounts
	BasePrice      map[string]int
	BaseWeeks      map[string]float64
	PriceFactor    factorTable
	DurationFactor factorTable
}

// Duration multipliers are the same for all three profiles; the per-profile
// speed difference is carried by BaseWeeks. Urgency compresses last.
var sharedDurationFactors = factorTable{
	DesignLevel:    map[string]float64{DesignTemplate: 1.0, DesignCustom: 1.15, DesignPremium: 1.3},
	UXComplexity:   map[string]float64{UXStandard: 1.0, UXAdvanced: 1.1, UXPremium: 1.2},
	Responsiveness: map[string]float64{ResponsiveDesktopOnly: 1.0, ResponsiveFull: 1.05, ResponsiveInstallable: 1.15},
	PageBand:       map[string]float64{Pages1To5: 1.0, Pages6To10: 1.1, Pages11To20: 1.2, PagesOver20: 1.35},
	SEO:            map[string]float64{SEONone: 1.0, SEOBasic: 1.0, SEOAdvanced: 1.05},
	Performance:    map[string]float64{PerfStandard: 1.0, PerfOptimized: 1.05, PerfHigh: 1.1},
	Security:       map[string]float64{SecurityStandard: 1.0, SecurityAdvanced: 1.05, SecurityEnterprise: 1.1},
	Testing:        map[string]float64{TestingBasic: 1.0, TestingAutomated: 1.1, TestingComprehensive: 1.2},
	Accessibility:  map[string]float64{A11yNone: 1.0, A11yAA: 1.05, A11yAAA: 1.1},
	ProjectStart:   map[string]float64{StartFlexible: 1.0, StartNormal: 0.9, StartUrgent: 0.75},
}

var profiles = map[string]ProviderProfile{
	ProviderFreelancer: {
		Provider:       ProviderFreelancer,
		DayRate:        480,
		SpreadPct:      0.25,
		MinWeeks:       1.0,
		SurchargeScale: 1.15,
		BasePrice: map[string]int{
			ProjectSimpleWebsite:  4000,
			ProjectComplexWebsite: 9500,
			ProjectWebApp:         19500,
			ProjectMobileApp:      24000,
			ProjectEcommerce:      16000,
			ProjectCustom:         27000,
			ProjectUndecided:      10500,
		},
		BaseWeeks: map[string]float64{
			ProjectSimpleWebsite:  3,
			ProjectComplexWebsite: 6,
			ProjectWebApp:         12,
			ProjectMobileApp:      15,
			ProjectEcommerce:      9,
			ProjectCustom:         15,
			ProjectUndecided:      7,
		},
		PriceFactor: factorTable{
			DesignLevel:    map[string]float64{DesignTemplate: 1.0, DesignCustom: 1.25, DesignPremium: 1.55},
			UXComplexity:   map[string]float64{UXStandard: 1.0, UXAdvanced: 1.2, UXPremium: 1.4},
			Responsiveness: map[string]float64{ResponsiveDesktopOnly: 1.0, ResponsiveFull: 1.1, ResponsiveInstallable: 1.3},
			PageBand:       map[string]float64{Pages1To5: 1.0, Pages6To10: 1.1, Pages11To20: 1.25, PagesOver20: 1.45},
			SEO:            map[string]float64{SEONone: 1.0, SEOBasic: 1.05, SEOAdvanced: 1.15},
			Performance:    map[string]float64{PerfStandard: 1.0, PerfOptimized: 1.08, PerfHigh: 1.18},
			Security:       map[string]float64{SecurityStandard: 1.0, SecurityAdvanced: 1.12, SecurityEnterprise: 1.3},
			Testing:        map[string]float64{TestingBasic: 1.0, TestingAutomated: 1.1, TestingComprehensive: 1.22},
			Accessibility:  map[string]float64{A11yNone: 1.0, A11yAA: 1.05, A11yAAA: 1.12},
			ProjectStart:   map[string]float64{StartFlexible: 1.0, StartNormal: 1.1, StartUrgent: 1.3},
		},
		DurationFactor: sharedDurationFactors,
	},
	ProviderAgency: {
		Provider:       ProviderAgency,
		DayRate:        1100,
		SpreadPct:      0.20,
		MinWeeks:       2.0,
		SurchargeScale: 1.9,
		BasePrice: map[string]int{
			ProjectSimpleWebsite:  6500,
			ProjectComplexWebsite: 15000,
			ProjectWebApp:         32000,
			ProjectMobileApp:      38000,
			ProjectEcommerce:      26000,
			ProjectCustom:         45000,
			ProjectUndecided:      17000,
		},
		BaseWeeks: map[string]float64{
			ProjectSimpleWebsite:  2.5,
			ProjectComplexWebsite: 5,
			ProjectWebApp:         10,
			ProjectMobileApp:      12,
			ProjectEcommerce:      7,
			ProjectCustom:         13,
			ProjectUndecided:      6,
		},
		PriceFactor: factorTable{
			DesignLevel:    map[string]float64{DesignTemplate: 1.0, DesignCustom: 1.3, DesignPremium: 1.6},
			UXComplexity:   map[string]float64{UXStandard: 1.0, UXAdvanced: 1.25, UXPremium: 1.45},
			Responsiveness: map[string]float64{ResponsiveDesktopOnly: 1.0, ResponsiveFull: 1.1, ResponsiveInstallable: 1.3},
			PageBand:       map[string]float64{Pages1To5: 1.0, Pages6To10: 1.1, Pages11To20: 1.25, PagesOver20: 1.45},
			SEO:            map[string]float64{SEONone: 1.0, SEOBasic: 1.05, SEOAdvanced: 1.15},
			Performance:    map[string]float64{PerfStandard: 1.0, PerfOptimized: 1.08, PerfHigh: 1.18},
			Security:       map[string]float64{SecurityStandard: 1.0, SecurityAdvanced: 1.1, SecurityEnterprise: 1.25},
			Testing:        map[string]float64{TestingBasic: 1.0, TestingAutomated: 1.1, TestingComprehensive: 1.2},
			Accessibility:  map[string]float64{A11yNone: 1.0, A11yAA: 1.05, A11yAAA: 1.12},
			ProjectStart:   map[string]float64{StartFlexible: 1.0, StartNormal: 1.1, StartUrgent: 1.3},
		},
		DurationFactor: sharedDurationFactors,
	},
	ProviderHeadon: {
		Provider:       ProviderHeadon,
		DayRate:        760,
		SpreadPct:      0.10,
		MinWeeks:       1.0,
		SurchargeScale: 1.0,
		BasePrice: map[string]int{
			ProjectSimpleWebsite:  3000,
			ProjectComplexWebsite: 7000,
			ProjectWebApp:         15000,
			ProjectMobileApp:      18000,
			ProjectEcommerce:      12000,
			ProjectCustom:         20000,
			ProjectUndecided:      8000,
		},
		BaseWeeks: map[string]float64{
			ProjectSimpleWebsite:  2,
			ProjectComplexWebsite: 4,
			ProjectWebApp:         8,
			ProjectMobileApp:      10,
			ProjectEcommerce:      6,
			ProjectCustom:         10,
			ProjectUndecided:      5,
		},
		PriceFactor: factorTable{
			DesignLevel:    map[string]float64{DesignTemplate: 1.0, DesignCustom: 1.2, DesignPremium: 1.45},
			UXComplexity:   map[string]float64{UXStandard: 1.0, UXAdvanced: 1.15, UXPremium: 1.3},
			Responsiveness: map[string]float64{ResponsiveDesktopOnly: 1.0, ResponsiveFull: 1.1, ResponsiveInstallable: 1.25},
			PageBand:       map[string]float64{Pages1To5: 1.0, Pages6To10: 1.1, Pages11To20: 1.25, PagesOver20: 1.45},
			SEO:            map[string]float64{SEONone: 1.0, SEOBasic: 1.05, SEOAdvanced: 1.15},
			Performance:    map[string]float64{PerfStandard: 1.0, PerfOptimized: 1.08, PerfHigh: 1.18},
			Security:       map[string]float64{SecurityStandard: 1.0, SecurityAdvanced: 1.1, SecurityEnterprise: 1.25},
			Testing:        map[string]float64{TestingBasic: 1.0, TestingAutomated: 1.1, TestingComprehensive: 1.2},
			Accessibility:  map[string]float64{A11yNone: 1.0, A11yAA: 1.05, A11yAAA: 1.12},
			ProjectStart:   map[string]float64{StartFlexible: 1.0, StartNormal: 1.1, StartUrgent: 1.3},
		},
		DurationFactor: sharedDurationFactors,
	},
}

// ProfileFor returns the profile table for a provider. Unknown providers are
// a programming error, not a runtime condition.
func ProfileFor(provider string) ProviderProfile {
	p, ok := profiles[provider]
	if !ok {
		panic(fmt.Sprintf("quote: unknown provider profile %q", provider))
	}
	return p
}

// Profiles returns the three profiles in the stable comparison order.
func Profiles() [3]ProviderProfile {
	return [3]ProviderProfile{
		profiles[ProviderFreelancer],
		profiles[ProviderAgency],
		profiles[ProviderHeadon],
	}
}

func mustFactor(m map[string]float64, key, table string) float64 {
	f, ok := m[key]
	if !ok {
		panic(fmt.Sprintf("quote: no %s factor for %q", table, key))
	}
	return f
}

func mustBasePrice(p ProviderProfile, projectType string) float64 {
	v, ok := p.BasePrice[projectType]
	if !ok {
		panic(fmt.Sprintf("quote: no base price for project type %q in %s profile", projectType, p.Provider))
	}
	return float64(v)
}

func mustBaseWeeks(p ProviderProfile, projectType string) float64 {
	v, ok := p.BaseWeeks[projectType]
	if !ok {
		panic(fmt.Sprintf("quote: no base weeks for project type %q in %s profile", projectType, p.Provider))
	}
	return v
}
