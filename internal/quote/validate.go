// internal/quote/validate.go
package quote

import (
	"strings"

	"quote-engine/internal/common/validation"
)

// RawConfiguration is the untrusted shape of a project request before
// validation. Field types are already guaranteed by the transport-level
// shape check; the values are not.
type RawConfiguration struct {
	ProjectType       string   `json:"projectType"`
	Design            Design   `json:"design"`
	Features          Features `json:"features"`
	Quality           Quality  `json:"quality"`
	Timeline          Timeline `json:"timeline"`
	PreferredProvider string   `json:"preferredProvider,omitempty"`
}

// Validate checks every enum field against its declared literals and every
// numeric sub-field against its bounds, collecting all errors instead of
// stopping at the first. On success it returns the only legitimate
// ProjectConfiguration value: no other code path may construct one from
// untrusted input.
func Validate(raw RawConfiguration) (ProjectConfiguration, []validation.ValidationError) {
	var errs []validation.ValidationError

	check := func(e *validation.ValidationError) {
		if e != nil {
			errs = append(errs, *e)
		}
	}

	check(validation.Enum("projectType", raw.ProjectType,
		ProjectSimpleWebsite, ProjectComplexWebsite, ProjectWebApp,
		ProjectMobileApp, ProjectEcommerce, ProjectCustom, ProjectUndecided))

	check(validation.Enum("design.level", raw.Design.Level,
		DesignTemplate, DesignCustom, DesignPremium))
	check(validation.Enum("design.pageCountBand", raw.Design.PageCountBand,
		Pages1To5, Pages6To10, Pages11To20, PagesOver20))
	check(validation.Enum("design.responsiveness", raw.Design.Responsiveness,
		ResponsiveDesktopOnly, ResponsiveFull, ResponsiveInstallable))
	check(validation.Enum("design.uxComplexity", raw.Design.UXComplexity,
		UXStandard, UXAdvanced, UXPremium))

	check(validation.Enum("quality.seo", raw.Quality.SEO,
		SEONone, SEOBasic, SEOAdvanced))
	check(validation.Enum("quality.performance", raw.Quality.Performance,
		PerfStandard, PerfOptimized, PerfHigh))
	check(validation.Enum("quality.security", raw.Quality.Security,
		SecurityStandard, SecurityAdvanced, SecurityEnterprise))
	check(validation.Enum("quality.testing", raw.Quality.Testing,
		TestingBasic, TestingAutomated, TestingComprehensive))
	check(validation.Enum("quality.accessibility", raw.Quality.Accessibility,
		A11yNone, A11yAA, A11yAAA))

	check(validation.Enum("timeline.projectStart", raw.Timeline.ProjectStart,
		StartFlexible, StartNormal, StartUrgent))
	check(validation.Enum("timeline.maintenance", raw.Timeline.Maintenance,
		MaintenanceNone, MaintenanceBasic, MaintenancePremium))
	check(validation.IntOneOf("timeline.supportDuration", raw.Timeline.SupportDuration,
		SupportDurations...))

	if raw.Features.Integrations.Enabled {
		check(validation.IntRange("features.integrations.count",
			raw.Features.Integrations.Count, 0, MaxIntegrations))
	}
	if raw.Features.I18N.Enabled {
		check(validation.IntRange("features.i18n.languageCount",
			raw.Features.I18N.LanguageCount, MinLanguages, MaxLanguages))
	}

	if raw.PreferredProvider != "" {
		check(validation.Enum("preferredProvider", raw.PreferredProvider,
			ProviderFreelancer, ProviderAgency, ProviderHeadon))
	}

	if len(errs) > 0 {
		return ProjectConfiguration{}, errs
	}

	return ProjectConfiguration{
		ProjectType:       raw.ProjectType,
		Design:            raw.Design,
		Features:          normalizeFeatures(raw.Features),
		Quality:           raw.Quality,
		Timeline:          raw.Timeline,
		PreferredProvider: raw.PreferredProvider,
	}, nil
}

// normalizeFeatures zeroes the sub-parameters of disabled toggles so a
// disabled feature can never leak a surcharge, and trims the advisory
// free-form options. Conditional presence of cmsType/provider is the
// caller's concern; a missing value simply means no flavour surcharge.
func normalizeFeatures(f Features) Features {
	f.CMS.CMSType = strings.TrimSpace(f.CMS.CMSType)
	f.Payments.Provider = strings.TrimSpace(f.Payments.Provider)

	if !f.CMS.Enabled {
		f.CMS.CMSType = ""
	}
	if !f.Payments.Enabled {
		f.Payments.Provider = ""
	}
	if !f.Integrations.Enabled {
		f.Integrations.Count = 0
	}
	if !f.I18N.Enabled {
		f.I18N.LanguageCount = 0
	}
	return f
}
