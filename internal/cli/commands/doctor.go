package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/leapstack-labs/musbsite/internal/api"
	"github.com/leapstack-labs/musbsite/internal/cli/config"
	"github.com/leapstack-labs/musbsite/internal/content"
)

// DoctorOptions holds options for the doctor command.
type DoctorOptions struct {
	Format string // Output format: text, json
	Strict bool   // fail when any probe fails
}

// NewDoctorCommand creates the doctor command.
func NewDoctorCommand() *cobra.Command {
	opts := &DoctorOptions{}
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check the content API the site reads from",
		Long: `Probe every read endpoint of the configured content API and report
which ones answer, how many records they return and how long they take.

Pages fall back to built-in content when an endpoint fails, so the site
keeps working. Use --strict to turn any failure into a non-zero exit.`,
		Example: `  # Check the default API
  musbsite doctor

  # Check another API and fail on errors
  musbsite doctor --api-url https://cms.example.org --strict

  # Output as JSON
  musbsite doctor --format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDoctor(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "text", "Output format: text, json")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Exit non-zero when any probe fails")

	return cmd
}

// Probe statuses.
const (
	StatusPass = "pass"
	StatusFail = "fail"
)

// DoctorOutput is the JSON output for the doctor command.
type DoctorOutput struct {
	API       string        `json:"api"`
	Probes    []ProbeResult `json:"probes"`
	Score     int           `json:"score"`
	FailCount int           `json:"fail_count"`
}

// ProbeResult is the outcome of one endpoint probe.
type ProbeResult struct {
	Name       string `json:"name"`
	Status     string `json:"status"`
	Records    int    `json:"records"`
	DurationMS int64  `json:"duration_ms"`
	Error      string `json:"error,omitempty"`
}

// probe fetches one endpoint and returns how many records it holds.
type probe struct {
	name string
	run  func(ctx context.Context, c *api.Client) (int, error)
}

func list[T any](fetch func(*api.Client) func(context.Context) ([]T, error)) func(context.Context, *api.Client) (int, error) {
	return func(ctx context.Context, c *api.Client) (int, error) {
		items, err := fetch(c)(ctx)
		return len(items), err
	}
}

func settings(fetch func(*api.Client) func(context.Context) (content.Settings, error)) func(context.Context, *api.Client) (int, error) {
	return func(ctx context.Context, c *api.Client) (int, error) {
		s, err := fetch(c)(ctx)
		if err != nil || s.Empty() {
			return 0, err
		}
		return 1, nil
	}
}

var probes = []probe{
	{"home_settings", settings(func(c *api.Client) func(context.Context) (content.Settings, error) { return c.HomeSettings })},
	{"support_settings", settings(func(c *api.Client) func(context.Context) (content.Settings, error) { return c.SupportSettings })},
	{"about_settings", settings(func(c *api.Client) func(context.Context) (content.Settings, error) { return c.AboutSettings })},
	{"innovation_settings", settings(func(c *api.Client) func(context.Context) (content.Settings, error) { return c.InnovationSettings })},
	{"contact_settings", settings(func(c *api.Client) func(context.Context) (content.Settings, error) { return c.ContactSettings })},
	{"contact_form_config", settings(func(c *api.Client) func(context.Context) (content.Settings, error) { return c.ContactFormConfig })},
	{"inquiry_types", list(func(c *api.Client) func(context.Context) ([]content.InquiryType, error) { return c.InquiryTypes })},
	{"capabilities", list(func(c *api.Client) func(context.Context) ([]content.Capability, error) { return c.Capabilities })},
	{"facilities", list(func(c *api.Client) func(context.Context) ([]content.Facility, error) { return c.Facilities })},
	{"partners", func(ctx context.Context, c *api.Client) (int, error) {
		items, err := c.Partners(ctx, "")
		return len(items), err
	}},
	{"certifications", list(func(c *api.Client) func(context.Context) ([]content.Certification, error) { return c.Certifications })},
	{"facilities_page", func(ctx context.Context, c *api.Client) (int, error) {
		page, err := c.FacilitiesPage(ctx)
		return len(page.Modules), err
	}},
	{"news", func(ctx context.Context, c *api.Client) (int, error) {
		items, err := c.News(ctx, api.NewsQuery{})
		return len(items), err
	}},
	{"career_categories", list(func(c *api.Client) func(context.Context) ([]content.CareerCategory, error) { return c.CareerCategories })},
	{"jobs", func(ctx context.Context, c *api.Client) (int, error) {
		items, err := c.JobOpenings(ctx, api.JobQuery{})
		return len(items), err
	}},
	{"studies", func(ctx context.Context, c *api.Client) (int, error) {
		items, err := c.Studies(ctx, api.StudyQuery{})
		return len(items), err
	}},
	{"team_members", list(func(c *api.Client) func(context.Context) ([]content.TeamMember, error) { return c.TeamMembers })},
	{"team_advisors", list(func(c *api.Client) func(context.Context) ([]content.Advisor, error) { return c.Advisors })},
	{"team_collaborators", list(func(c *api.Client) func(context.Context) ([]content.Collaborator, error) { return c.Collaborators })},
	{"team_staff", list(func(c *api.Client) func(context.Context) ([]content.StaffMember, error) { return c.StaffMembers })},
	{"technologies", list(func(c *api.Client) func(context.Context) ([]content.Technology, error) { return c.Technologies })},
}

func runDoctor(cmd *cobra.Command, opts *DoctorOptions) error {
	cfg := config.FromContext(cmd.Context())
	logger := config.GetLogger(cmd.Context())

	client, err := newAPIClient(cfg, logger, nil)
	if err != nil {
		return err
	}

	out := runProbes(cmd.Context(), client)

	switch opts.Format {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return err
		}
	case "", "text":
		renderDoctorText(cmd.OutOrStdout(), out)
	default:
		return fmt.Errorf("unknown format %q (want text or json)", opts.Format)
	}

	if opts.Strict && out.FailCount > 0 {
		return fmt.Errorf("%d of %d probes failed", out.FailCount, len(out.Probes))
	}
	return nil
}

// runProbes runs every probe in order against client.
func runProbes(ctx context.Context, client *api.Client) *DoctorOutput {
	out := &DoctorOutput{API: client.BaseURL(), Probes: make([]ProbeResult, 0, len(probes))}
	for _, p := range probes {
		start := time.Now()
		n, err := p.run(ctx, client)
		res := ProbeResult{
			Name:       p.name,
			Status:     StatusPass,
			Records:    n,
			DurationMS: time.Since(start).Milliseconds(),
		}
		if err != nil {
			res.Status = StatusFail
			res.Records = 0
			res.Error = err.Error()
			out.FailCount++
		}
		out.Probes = append(out.Probes, res)
	}
	out.Score = calculateHealthScore(out.Probes)
	return out
}

// calculateHealthScore is the percentage of passing probes.
func calculateHealthScore(results []ProbeResult) int {
	if len(results) == 0 {
		return 100
	}
	pass := 0
	for _, r := range results {
		if r.Status == StatusPass {
			pass++
		}
	}
	return pass * 100 / len(results)
}

func renderDoctorText(w io.Writer, out *DoctorOutput) {
	_, _ = fmt.Fprintf(w, "Content API: %s\n\n", out.API)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Endpoint", "Status", "Records", "Time", "Error"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, WidthMax: 60},
	})
	titleCaser := cases.Title(language.English)
	for _, r := range out.Probes {
		t.AppendRow(table.Row{r.Name, titleCaser.String(r.Status), r.Records, fmt.Sprintf("%dms", r.DurationMS), r.Error})
	}
	t.Render()

	_, _ = fmt.Fprintf(w, "\nHealth score: %d/100 (%d failed)\n", out.Score, out.FailCount)
	if out.FailCount > 0 {
		_, _ = fmt.Fprintln(w, "Pages backed by failing endpoints show built-in fallback content.")
	}
}
