package support

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leapstack-labs/musbsite/internal/content"
	"github.com/leapstack-labs/musbsite/internal/ui/features"
)

func TestSupportPage(t *testing.T) {
	fx := features.SetupTestFixture(t)
	router := fx.Router(SetupRoutes)

	rec := fx.Get(router, "/support")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "What do you need?")
	assert.Contains(t, body, `href="/contact?interest=Research&#43;%26&#43;Innovation"`)
	assert.Contains(t, body, "Micronutrient Efficacy Validation")
	assert.Contains(t, body, `id="leaky-gut"`)
	assert.Contains(t, body, "End-to-End Support")
}

func TestSupportPage_SettingsToggles(t *testing.T) {
	fx := features.SetupTestFixture(t)
	fx.Backend.JSON("/api/support/settings/", map[string]any{
		"hero_title":             "Partner With Scientists",
		"show_success_stories":   false,
		"show_expertise_section": false,
	})
	router := fx.Router(SetupRoutes)

	rec := fx.Get(router, "/support")

	body := rec.Body.String()
	assert.Contains(t, body, "Partner With Scientists")
	assert.NotContains(t, body, "Micronutrient Efficacy Validation")
	assert.NotContains(t, body, "Our Expertise Lies In")
}

func TestRouteOption_Href(t *testing.T) {
	assert.Equal(t, "/contact?interest=Not+sure+%28help+me+choose%29", RouterOptions[3].Href())
}

func TestNewPageData(t *testing.T) {
	data := NewPageData(content.Settings{})
	assert.Len(t, data.Pillars, 3)
	assert.Len(t, data.Expertise, 15)
	assert.Len(t, data.Approach, 6)
}
