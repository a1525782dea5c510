package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpoints_Paths(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name string
		call func(c *Client) error
		path string
		body string
	}{
		{"home settings", func(c *Client) error { _, err := c.HomeSettings(ctx); return err }, "/api/home/settings/", `{}`},
		{"support settings", func(c *Client) error { _, err := c.SupportSettings(ctx); return err }, "/api/support/settings/", `{}`},
		{"about settings", func(c *Client) error { _, err := c.AboutSettings(ctx); return err }, "/api/about/settings/", `{}`},
		{"innovation settings", func(c *Client) error { _, err := c.InnovationSettings(ctx); return err }, "/api/innovation/settings/", `{}`},
		{"contact settings", func(c *Client) error { _, err := c.ContactSettings(ctx); return err }, "/api/contact/settings/", `{}`},
		{"contact form config", func(c *Client) error { _, err := c.ContactFormConfig(ctx); return err }, "/api/contact/form-config/", `{}`},
		{"inquiry types", func(c *Client) error { _, err := c.InquiryTypes(ctx); return err }, "/api/contact/inquiry-types/", `[]`},
		{"capabilities", func(c *Client) error { _, err := c.Capabilities(ctx); return err }, "/api/capabilities/", `[]`},
		{"facilities", func(c *Client) error { _, err := c.Facilities(ctx); return err }, "/api/facilities/", `[]`},
		{"certifications", func(c *Client) error { _, err := c.Certifications(ctx); return err }, "/api/certifications/", `[]`},
		{"partners", func(c *Client) error { _, err := c.Partners(ctx, ""); return err }, "/api/partners/", `[]`},
		{"facilities page", func(c *Client) error { _, err := c.FacilitiesPage(ctx); return err }, "/api/facilities-page/", `{}`},
		{"news", func(c *Client) error { _, err := c.News(ctx, NewsQuery{}); return err }, "/api/news/", `[]`},
		{"news detail", func(c *Client) error { _, err := c.NewsDetail(ctx, "12"); return err }, "/api/news/12/", `{}`},
		{"career categories", func(c *Client) error { _, err := c.CareerCategories(ctx); return err }, "/api/careers/categories/", `[]`},
		{"jobs", func(c *Client) error { _, err := c.JobOpenings(ctx, JobQuery{}); return err }, "/api/careers/jobs/", `[]`},
		{"job detail", func(c *Client) error { _, err := c.JobDetail(ctx, "4"); return err }, "/api/careers/jobs/4/", `{}`},
		{"studies", func(c *Client) error { _, err := c.Studies(ctx, StudyQuery{}); return err }, "/api/studies/", `[]`},
		{"team members", func(c *Client) error { _, err := c.TeamMembers(ctx); return err }, "/api/team/members/", `[]`},
		{"advisors", func(c *Client) error { _, err := c.Advisors(ctx); return err }, "/api/team/advisors/", `[]`},
		{"collaborators", func(c *Client) error { _, err := c.Collaborators(ctx); return err }, "/api/team/collaborators/", `[]`},
		{"staff", func(c *Client) error { _, err := c.StaffMembers(ctx); return err }, "/api/team/staff/", `[]`},
		{"technologies", func(c *Client) error { _, err := c.Technologies(ctx); return err }, "/api/innovation/technologies/", `[]`},
		{"technology detail", func(c *Client) error { _, err := c.TechnologyDetail(ctx, "ai"); return err }, "/api/innovation/technologies/ai/", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath, gotMethod string
			c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				gotPath, gotMethod = r.URL.Path, r.Method
				_, _ = io.WriteString(w, tt.body)
			})

			require.NoError(t, tt.call(c))
			assert.Equal(t, http.MethodGet, gotMethod)
			assert.Equal(t, tt.path, gotPath)
		})
	}
}

func TestEndpoints_DetailIDIsEscaped(t *testing.T) {
	var gotPath string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		_, _ = io.WriteString(w, `{}`)
	})

	_, err := c.NewsDetail(context.Background(), "a/b")
	require.NoError(t, err)
	assert.Equal(t, "/api/news/a%2Fb/", gotPath)
}

func TestEndpoints_FilterQueries(t *testing.T) {
	var got map[string]string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = map[string]string{}
		for k := range r.URL.Query() {
			got[k] = r.URL.Query().Get(k)
		}
		_, _ = io.WriteString(w, `[]`)
	})

	_, err := c.JobOpenings(context.Background(), JobQuery{Department: "Research", Search: "lab"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"department": "Research", "search": "lab"}, got)

	_, err = c.News(context.Background(), NewsQuery{Type: "Event"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"type": "Event"}, got)

	_, err = c.Partners(context.Background(), "Academic")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"category": "Academic"}, got)
}

func TestEndpoints_SettingsDecode(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"hero_title":"Science you can trust","show_faq":true}`)
	})

	s, err := c.HomeSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Science you can trust", s.String("hero_title", "x"))
	assert.True(t, s.Bool("show_faq", false))
	assert.Equal(t, "fallback", s.String("missing", "fallback"))
}

func TestEndpoints_SubmitContactBody(t *testing.T) {
	var got map[string]any
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/contact/submit/", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id":"c-1"}`)
	})

	ack, err := c.SubmitContact(context.Background(), ContactSubmission{
		Name:            "Grace",
		Email:           "grace@example.org",
		Message:         "Hello",
		InquiryTypeSlug: "partnership",
	})
	require.NoError(t, err)
	assert.Equal(t, "c-1", ack.ID.String())
	assert.Equal(t, "partnership", got["inquiry_type_slug"])
	assert.NotContains(t, got, "phone")
}

func TestEndpoints_SponsorInquiryNullTechnology(t *testing.T) {
	var got map[string]any
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/innovation/inquiry/", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{}`)
	})

	_, err := c.SubmitSponsorInquiry(context.Background(), SponsorInquiry{Name: "n", Email: "e@x.org", Company: "Acme"})
	require.NoError(t, err)
	assert.Contains(t, got, "technology")
	assert.Nil(t, got["technology"])
}
