// internal/quote/validate_test.go
package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quote-engine/internal/common/validation"
)

func fieldNames(errs []validation.ValidationError) []string {
	names := make([]string, len(errs))
	for i, e := range errs {
		names[i] = e.Field
	}
	return names
}

func TestValidate_AcceptsDeclaredValues(t *testing.T) {
	raw := createBaselineRaw()
	raw.PreferredProvider = ProviderAgency

	cfg, errs := Validate(raw)
	require.Empty(t, errs)
	assert.Equal(t, ProjectWebApp, cfg.ProjectType)
	assert.Equal(t, ProviderAgency, cfg.PreferredProvider)
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	raw := createBaselineRaw()
	raw.ProjectType = "spaceship"
	raw.Design.Level = "deluxe"
	raw.Quality.SEO = "magic"
	raw.Timeline.ProjectStart = "yesterday"
	raw.Timeline.SupportDuration = 9

	_, errs := Validate(raw)
	require.Len(t, errs, 5, "every invalid field reports, not just the first")

	fields := fieldNames(errs)
	assert.Contains(t, fields, "projectType")
	assert.Contains(t, fields, "design.level")
	assert.Contains(t, fields, "quality.seo")
	assert.Contains(t, fields, "timeline.projectStart")
	assert.Contains(t, fields, "timeline.supportDuration")

	for _, e := range errs {
		assert.Equal(t, validation.CodeInvalidEnum, e.Code)
	}
}

func TestValidate_NumericBounds(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*RawConfiguration)
		wantField string
	}{
		{
			name: "integration count above maximum",
			mutate: func(raw *RawConfiguration) {
				raw.Features.Integrations = IntegrationsFeature{Enabled: true, Count: MaxIntegrations + 1}
			},
			wantField: "features.integrations.count",
		},
		{
			name: "negative integration count",
			mutate: func(raw *RawConfiguration) {
				raw.Features.Integrations = IntegrationsFeature{Enabled: true, Count: -1}
			},
			wantField: "features.integrations.count",
		},
		{
			name: "zero languages while enabled",
			mutate: func(raw *RawConfiguration) {
				raw.Features.I18N = I18NFeature{Enabled: true, LanguageCount: 0}
			},
			wantField: "features.i18n.languageCount",
		},
		{
			name: "too many languages",
			mutate: func(raw *RawConfiguration) {
				raw.Features.I18N = I18NFeature{Enabled: true, LanguageCount: MaxLanguages + 1}
			},
			wantField: "features.i18n.languageCount",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := createBaselineRaw()
			tt.mutate(&raw)

			_, errs := Validate(raw)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.wantField, errs[0].Field)
			assert.Equal(t, validation.CodeOutOfRange, errs[0].Code)
		})
	}
}

func TestValidate_BoundaryValuesPass(t *testing.T) {
	raw := createBaselineRaw()
	raw.Features.Integrations = IntegrationsFeature{Enabled: true, Count: MaxIntegrations}
	raw.Features.I18N = I18NFeature{Enabled: true, LanguageCount: MaxLanguages}

	cfg, errs := Validate(raw)
	require.Empty(t, errs, "declared maxima are inclusive")
	assert.Equal(t, MaxIntegrations, cfg.Features.Integrations.Count)
}

func TestValidate_DisabledFeaturesIgnoreSubParameters(t *testing.T) {
	raw := createBaselineRaw()
	raw.Features.Integrations = IntegrationsFeature{Enabled: false, Count: 999}
	raw.Features.I18N = I18NFeature{Enabled: false, LanguageCount: -4}
	raw.Features.CMS = CMSFeature{Enabled: false, CMSType: "wordpress"}

	cfg, errs := Validate(raw)
	require.Empty(t, errs, "sub-parameters of disabled toggles are not validated")
	assert.Zero(t, cfg.Features.Integrations.Count)
	assert.Zero(t, cfg.Features.I18N.LanguageCount)
	assert.Empty(t, cfg.Features.CMS.CMSType, "disabled toggles carry no sub-options downstream")
}

func TestValidate_OptionalSubOptionsTolerated(t *testing.T) {
	// cmsType/provider are only advisory; validation does not require them
	// when the parent toggle is on.
	raw := createBaselineRaw()
	raw.Features.CMS = CMSFeature{Enabled: true}
	raw.Features.Payments = PaymentsFeature{Enabled: true, Provider: "  stripe "}

	cfg, errs := Validate(raw)
	require.Empty(t, errs)
	assert.Equal(t, "stripe", cfg.Features.Payments.Provider)
}

func TestValidate_PreferredProvider(t *testing.T) {
	raw := createBaselineRaw()
	_, errs := Validate(raw)
	assert.Empty(t, errs, "preference is optional")

	raw.PreferredProvider = "cousin"
	_, errs = Validate(raw)
	require.Len(t, errs, 1)
	assert.Equal(t, "preferredProvider", errs[0].Field)
}
