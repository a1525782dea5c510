package facilities

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/musbsite/internal/content"
	"github.com/leapstack-labs/musbsite/internal/form"
	"github.com/leapstack-labs/musbsite/internal/icon"
	"github.com/leapstack-labs/musbsite/internal/ui/features"
)

const inquiryPath = "/api/innovation/inquiry/"

const validSignals = `{"sponsor":{"name":"Ada Lovelace","email":"ada@example.com","company":"Acme","role":"CSO","interest":"Biorepository","stage":"Clinical"},"sponsorSubmitting":false}`

func facilitiesPayload() map[string]any {
	return map[string]any{
		"settings": map[string]any{
			"hero_title":           "Facilities Built for Science",
			"lab_pillar_title":     "Central Lab",
			"research_pillar_desc": "Discovery to trials.",
		},
		"modules": []content.FacilityModule{
			{ID: "1", Pillar: content.PillarLab, Title: "Clinical Chemistry", MicroBullets: []string{"CLIA workflows"}},
			{ID: "2", Pillar: content.PillarResearch, Title: "Clinical Research Unit"},
			{ID: "3", Pillar: content.PillarBiorepository, Title: "Cryogenic Storage", BadgeLabel: "-80C"},
			{ID: "4", Pillar: "Elsewhere", Title: "Hidden Module"},
		},
		"trust_badges":    []content.Badge{{ID: "1", Title: "CAP Aligned", Icon: "ShieldCheck"}},
		"success_signals": []content.Badge{{ID: "1", Title: "120+ Studies", Icon: "nope"}},
	}
}

func TestFacilitiesPage(t *testing.T) {
	fx := features.SetupTestFixture(t)
	fx.Backend.JSON("/api/facilities-page/", facilitiesPayload())
	router := fx.Router(SetupRoutes)

	rec := fx.Get(router, "/facilities")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<title>Facilities | MusB Research</title>")
	assert.Contains(t, body, "Facilities Built for Science")
	assert.Contains(t, body, "<h2>Central Lab</h2>")
	assert.Contains(t, body, "Discovery to trials.")
	assert.Contains(t, body, "CAP Aligned")
	assert.Contains(t, body, "icon icon-shield-check")
	assert.NotContains(t, body, "Hidden Module")

	research := strings.Index(body, `id="research"`)
	lab := strings.Index(body, `id="lab"`)
	bio := strings.Index(body, `id="bio"`)
	require.True(t, research > 0 && research < lab && lab < bio, "pillars render in order")

	crowd := strings.Index(body, "Clinical Research Unit")
	chem := strings.Index(body, "Clinical Chemistry")
	cryo := strings.Index(body, "Cryogenic Storage")
	assert.True(t, research < crowd && crowd < lab, "research module under research")
	assert.True(t, lab < chem && chem < bio, "lab module under lab")
	assert.Greater(t, cryo, bio)

	assert.Contains(t, body, `id="sponsor-status"`)
	assert.Contains(t, body, `data-interest="Central Lab Services"`)
}

func TestFacilitiesPage_BackendDown(t *testing.T) {
	fx := features.SetupTestFixture(t)
	fx.Backend.Fail("/api/facilities-page/")
	router := fx.Router(SetupRoutes)

	rec := fx.Get(router, "/facilities")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<h2>Research &amp; Innovation</h2>")
	assert.Contains(t, body, "<h2>Biorepository</h2>")
	assert.Equal(t, 3, strings.Count(body, "Details for this area are coming soon."))
}

func TestInquiry_Success(t *testing.T) {
	fx := features.SetupTestFixture(t)
	fx.Backend.Respond(http.MethodPost, inquiryPath, http.StatusCreated, map[string]string{"message": "ok"})
	router := fx.Router(SetupRoutes)

	rec := fx.PostSignals(router, "/facilities/inquiry", validSignals)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `data-state="success"`)
	assert.Contains(t, body, "Inquiry Received.")
	assert.Contains(t, body, "Send another")
	assert.Contains(t, body, `data-reset="/facilities/inquiry/reset"`)
	assert.Contains(t, body, `"stage":"Concept"`)
	assert.Equal(t, form.Success, fx.Machine(FormName).Snapshot().State)

	reqs := fx.Backend.Requests(http.MethodPost, inquiryPath)
	require.Len(t, reqs, 1)
	var sent map[string]any
	reqs[0].JSON(t, &sent)
	assert.Equal(t, "Ada Lovelace", sent["name"])
	assert.Equal(t, "Acme", sent["company"])
	assert.Equal(t, "general", sent["inquiry_type"])
	assert.Equal(t, "Role: CSO\nInterest: Biorepository\nStage: Clinical\n\n(Submitted via Facilities Page)", sent["message"])
	assert.Contains(t, sent, "technology")
	assert.Nil(t, sent["technology"])
}

func TestInquiry_Failure(t *testing.T) {
	fx := features.SetupTestFixture(t)
	fx.Backend.Respond(http.MethodPost, inquiryPath, http.StatusBadRequest, map[string]string{"detail": "bad"})
	router := fx.Router(SetupRoutes)

	rec := fx.PostSignals(router, "/facilities/inquiry", validSignals)

	body := rec.Body.String()
	assert.Contains(t, body, `data-state="error"`)
	assert.NotContains(t, body, "Send another")
	assert.Equal(t, form.Error, fx.Machine(FormName).Snapshot().State)
}

func TestInquiry_Invalid(t *testing.T) {
	fx := features.SetupTestFixture(t)
	router := fx.Router(SetupRoutes)

	rec := fx.PostSignals(router, "/facilities/inquiry", `{"sponsor":{"name":"","email":"x","interest":"Biorepository","stage":"Concept"}}`)

	body := rec.Body.String()
	assert.Contains(t, body, `data-field="name"`)
	assert.Contains(t, body, `data-field="email"`)
	assert.Empty(t, fx.Backend.Requests(http.MethodPost, inquiryPath))
	assert.Equal(t, form.Idle, fx.Machine(FormName).Snapshot().State)
}

func TestInquiry_Reset(t *testing.T) {
	fx := features.SetupTestFixture(t)
	fx.Backend.Respond(http.MethodPost, inquiryPath, http.StatusCreated, map[string]string{})
	router := fx.Router(SetupRoutes)

	fx.PostSignals(router, "/facilities/inquiry", validSignals)
	require.Equal(t, form.Success, fx.Machine(FormName).Snapshot().State)

	page := fx.Get(router, "/facilities").Body.String()
	assert.Contains(t, page, "Send another", "a full render keeps the success state")

	rec := fx.PostSignals(router, "/facilities/inquiry/reset", `{}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-state="idle"`)
	assert.NotContains(t, rec.Body.String(), "Send another")
	assert.Equal(t, form.Idle, fx.Machine(FormName).Snapshot().State)
}

func TestBuildSections_Defaults(t *testing.T) {
	sections := BuildSections(content.FacilitiesPage{})

	require.Len(t, sections, 3)
	assert.Equal(t, "Research & Innovation", sections[0].Title)
	assert.Equal(t, icon.Archive, sections[2].Icon)
	for _, s := range sections {
		assert.Empty(t, s.Modules)
	}
}

func TestBadges_UnknownIconFallsBack(t *testing.T) {
	got := Badges([]content.Badge{{Icon: "ShieldCheck"}, {Icon: "nope"}})

	assert.Equal(t, icon.ShieldCheck, got[0].Kind)
	assert.Equal(t, icon.Activity, got[1].Kind)
}
