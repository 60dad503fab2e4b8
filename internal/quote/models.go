// internal/quote/models.go
package quote

// Project types
const (
	ProjectSimpleWebsite  = "simple_website"
	ProjectComplexWebsite = "complex_website"
	ProjectWebApp         = "web_app"
	ProjectMobileApp      = "mobile_app"
	ProjectEcommerce      = "ecommerce"
	ProjectCustom         = "custom"
	ProjectUndecided      = "undecided"
)

// Design levels
const (
	DesignTemplate = "template"
	DesignCustom   = "custom"
	DesignPremium  = "premium"
)

// Page count bands
const (
	Pages1To5   = "1-5"
	Pages6To10  = "6-10"
	Pages11To20 = "11-20"
	PagesOver20 = "20+"
)

// Responsiveness
const (
	ResponsiveDesktopOnly = "desktop_only"
	ResponsiveFull        = "responsive"
	ResponsiveInstallable = "installable"
)

// UX complexity
const (
	UXStandard = "standard"
	UXAdvanced = "advanced"
	UXPremium  = "premium"
)

// Quality tiers
const (
	SEONone     = "none"
	SEOBasic    = "basic"
	SEOAdvanced = "advanced"

	PerfStandard  = "standard"
	PerfOptimized = "optimized"
	PerfHigh      = "high"

	SecurityStandard   = "standard"
	SecurityAdvanced   = "advanced"
	SecurityEnterprise = "enterprise"

	TestingBasic         = "basic"
	TestingAutomated     = "automated"
	TestingComprehensive = "comprehensive"

	A11yNone = "none"
	A11yAA   = "wcag_aa"
	A11yAAA  = "wcag_aaa"
)

// Timeline
const (
	StartFlexible = "flexible"
	StartNormal   = "normal"
	StartUrgent   = "urgent"

	MaintenanceNone    = "none"
	MaintenanceBasic   = "basic"
	MaintenancePremium = "premium"
)

// Providers, in the stable comparison order.
const (
	ProviderFreelancer = "freelancer"
	ProviderAgency     = "agency"
	ProviderHeadon     = "headon"
)

// Support durations in months. Zero means no support package.
var SupportDurations = []int{0, 3, 6, 12}

// Numeric bounds for feature sub-parameters.
const (
	MaxIntegrations = 20
	MinLanguages    = 1
	MaxLanguages    = 20
)

// Design describes the visual scope of the requested project.
type Design struct {
	Level          string `json:"level"`
	PageCountBand  string `json:"pageCountBand"`
	Responsiveness string `json:"responsiveness"`
	UXComplexity   string `json:"uxComplexity"`
}

// Toggle is a feature switch without sub-options.
type Toggle struct {
	Enabled bool `json:"enabled"`
}

// CMSFeature carries the optional CMS flavour. CMSType is advisory and only
// meaningful when Enabled is true; an empty value never adds a surcharge.
type CMSFeature struct {
	Enabled bool   `json:"enabled"`
	CMSType string `json:"cmsType,omitempty"`
}

// PaymentsFeature carries the optional payment provider choice.
type PaymentsFeature struct {
	Enabled  bool   `json:"enabled"`
	Provider string `json:"provider,omitempty"`
}

// IntegrationsFeature counts third-party integrations (0-20).
type IntegrationsFeature struct {
	Enabled bool `json:"enabled"`
	Count   int  `json:"count,omitempty"`
}

// I18NFeature counts target languages (1-20 when enabled).
type I18NFeature struct {
	Enabled       bool `json:"enabled"`
	LanguageCount int  `json:"languageCount,omitempty"`
}

// Features is the record of independent feature toggles.
type Features struct {
	CMS            CMSFeature          `json:"cms"`
	Authentication Toggle              `json:"authentication"`
	Database       Toggle              `json:"database"`
	Payments       PaymentsFeature     `json:"payments"`
	API            Toggle              `json:"api"`
	Integrations   IntegrationsFeature `json:"integrations"`
	FileUploads    Toggle              `json:"fileUploads"`
	I18N           I18NFeature         `json:"i18n"`
	AdminDashboard Toggle              `json:"adminDashboard"`
	Realtime       Toggle              `json:"realtime"`
}

// EnabledCount returns the number of enabled feature toggles, ignoring
// sub-parameters.
func (f Features) EnabledCount() int {
	count := 0
	for _, on := range []bool{
		f.CMS.Enabled,
		f.Authentication.Enabled,
		f.Database.Enabled,
		f.Payments.Enabled,
		f.API.Enabled,
		f.Integrations.Enabled,
		f.FileUploads.Enabled,
		f.I18N.Enabled,
		f.AdminDashboard.Enabled,
		f.Realtime.Enabled,
	} {
		if on {
			count++
		}
	}
	return count
}

// Quality describes the non-functional quality bar.
type Quality struct {
	SEO           string `json:"seo"`
	Performance   string `json:"performance"`
	Security      string `json:"security"`
	Testing       string `json:"testing"`
	Accessibility string `json:"accessibility"`
	DSGVO         bool   `json:"dsgvo"`
}

// Timeline describes scheduling and aftercare options.
type Timeline struct {
	ProjectStart    string `json:"projectStart"`
	Maintenance     string `json:"maintenance"`
	SupportDuration int    `json:"supportDuration"`
	Hosting         bool   `json:"hosting"`
	Training        bool   `json:"training"`
}

// ProjectConfiguration is the validated description of a requested project.
// It is only ever constructed by Validate; downstream code may assume every
// enum field holds a declared value and every count is within bounds.
type ProjectConfiguration struct {
	ProjectType       string   `json:"projectType"`
	Design            Design   `json:"design"`
	Features          Features `json:"features"`
	Quality           Quality  `json:"quality"`
	Timeline          Timeline `json:"timeline"`
	PreferredProvider string   `json:"preferredProvider,omitempty"`
}

// ProviderEstimate is a price/duration band for one provider profile.
// Invariant: PriceLow <= PriceAvg <= PriceHigh, all non-negative, and
// DurationWeeksLow <= DurationWeeksHigh.
type ProviderEstimate struct {
	Provider          string  `json:"provider"`
	PriceLow          int     `json:"priceLow"`
	PriceHigh         int     `json:"priceHigh"`
	PriceAvg          int     `json:"priceAvg"`
	DurationWeeksLow  float64 `json:"durationWeeksLow"`
	DurationWeeksHigh float64 `json:"durationWeeksHigh"`
}

// DurationWeeksAvg is the midpoint of the duration band.
func (e ProviderEstimate) DurationWeeksAvg() float64 {
	return (e.DurationWeeksLow + e.DurationWeeksHigh) / 2
}

// Savings is the signed delta of a non-vendor estimate versus headon.
// Negative values mean headon is not cheaper/faster and are surfaced as-is.
type Savings struct {
	Price     int     `json:"price"`
	TimeWeeks float64 `json:"time"`
}

// SavingsSummary groups the savings versus each non-vendor profile.
type SavingsSummary struct {
	VsFreelancer Savings `json:"vsFreelancer"`
	VsAgency     Savings `json:"vsAgency"`
}

// ComparisonResult aligns the three provider estimates with the savings
// summary derived from them.
type ComparisonResult struct {
	Freelancer ProviderEstimate `json:"freelancer"`
	Agency     ProviderEstimate `json:"agency"`
	Headon     ProviderEstimate `json:"headon"`
	Savings    SavingsSummary   `json:"savings"`
}

// Estimates returns the three estimates in the stable comparison order
// (freelancer, agency, headon). Consumers index this positionally.
func (c ComparisonResult) Estimates() [3]ProviderEstimate {
	return [3]ProviderEstimate{c.Freelancer, c.Agency, c.Headon}
}
