package commands

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/musbsite/internal/cli/config"
)

// fakeAPI answers every read endpoint, except the paths in failing.
func fakeAPI(t *testing.T, failing ...string) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		for _, p := range failing {
			if r.URL.Path == p {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"detail":"boom"}`))
				return
			}
		}
		switch {
		case strings.Contains(r.URL.Path, "settings"), strings.HasSuffix(r.URL.Path, "/form-config/"):
			_, _ = w.Write([]byte(`{"title":"Hello"}`))
		case r.URL.Path == "/api/facilities-page/":
			_, _ = w.Write([]byte(`{"modules":[{"id":1},{"id":2}]}`))
		default:
			_, _ = w.Write([]byte(`[{"id":1,"title":"One"},{"id":2,"title":"Two"}]`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

func runDoctorCmd(t *testing.T, apiURL string, args ...string) (string, error) {
	t.Helper()
	cfg := config.Default()
	cfg.APIURL = apiURL
	cfg.APIRetryCount = 0

	cmd := NewDoctorCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	cmd.SetContext(config.WithConfig(t.Context(), cfg))
	err := cmd.Execute()
	return buf.String(), err
}

func TestDoctor_AllPass(t *testing.T) {
	out, err := runDoctorCmd(t, fakeAPI(t), "--strict")
	require.NoError(t, err)

	assert.Contains(t, out, "Content API: http://127.0.0.1")
	assert.Contains(t, out, "home_settings")
	assert.Contains(t, out, "technologies")
	assert.Contains(t, out, "Pass")
	assert.Contains(t, out, "Health score: 100/100 (0 failed)")
	assert.NotContains(t, out, "fallback content")
}

func TestDoctor_FailuresReported(t *testing.T) {
	api := fakeAPI(t, "/api/studies/", "/api/news/")

	out, err := runDoctorCmd(t, api)
	require.NoError(t, err, "failures only fail the command with --strict")
	assert.Contains(t, out, "(2 failed)")
	assert.Contains(t, out, "Fail")
	assert.Contains(t, out, "fallback content")

	_, err = runDoctorCmd(t, api, "--strict")
	assert.ErrorContains(t, err, "2 of 21 probes failed")
}

func TestDoctor_JSON(t *testing.T) {
	out, err := runDoctorCmd(t, fakeAPI(t, "/api/team/staff/"), "--format", "json")
	require.NoError(t, err)

	var got DoctorOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got.Probes, len(probes))
	assert.Equal(t, 1, got.FailCount)
	assert.Equal(t, 95, got.Score)

	byName := make(map[string]ProbeResult, len(got.Probes))
	for _, p := range got.Probes {
		byName[p.Name] = p
	}
	assert.Equal(t, StatusFail, byName["team_staff"].Status)
	assert.NotEmpty(t, byName["team_staff"].Error)
	assert.Equal(t, 2, byName["capabilities"].Records)
	assert.Equal(t, 1, byName["home_settings"].Records)
	assert.Equal(t, 2, byName["facilities_page"].Records)
}

func TestDoctor_UnknownFormat(t *testing.T) {
	_, err := runDoctorCmd(t, fakeAPI(t), "--format", "xml")
	assert.ErrorContains(t, err, "unknown format")
}

func TestCalculateHealthScore(t *testing.T) {
	tests := []struct {
		name    string
		results []ProbeResult
		want    int
	}{
		{name: "no probes", want: 100},
		{name: "all pass", results: []ProbeResult{{Status: StatusPass}, {Status: StatusPass}}, want: 100},
		{name: "half", results: []ProbeResult{{Status: StatusPass}, {Status: StatusFail}}, want: 50},
		{name: "rounds down", results: []ProbeResult{{Status: StatusPass}, {Status: StatusFail}, {Status: StatusFail}}, want: 33},
		{name: "all fail", results: []ProbeResult{{Status: StatusFail}}, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calculateHealthScore(tt.results))
		})
	}
}
