package fallback

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/musbsite/internal/metrics"
	logtest "github.com/leapstack-labs/musbsite/internal/testutil"
)

func fetched(items []string, err error) Fetch[string] {
	return func(context.Context) ([]string, error) { return items, err }
}

func TestLoad(t *testing.T) {
	errDown := errors.New("backend down")
	def := []string{"default-a", "default-b"}

	tests := []struct {
		name            string
		items           []string
		err             error
		def             []string
		wantItems       []string
		wantSubstituted bool
		wantFallbacks   float64
	}{
		{name: "fetched items win", items: []string{"x"}, def: def, wantItems: []string{"x"}},
		{name: "error uses default", err: errDown, def: def, wantItems: def, wantSubstituted: true, wantFallbacks: 1},
		{name: "empty uses default", items: []string{}, def: def, wantItems: def, wantSubstituted: true, wantFallbacks: 1},
		{name: "empty without default stays empty", items: []string{}, wantItems: []string{}},
		{name: "error without default", err: errDown, wantItems: nil, wantFallbacks: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := metrics.New()
			l := Loader{Logger: logtest.NewTestLogger(t), Metrics: m}

			res := Load(context.Background(), l, "capabilities", fetched(tt.items, tt.err), tt.def)

			assert.Equal(t, tt.wantItems, res.Items)
			assert.Equal(t, tt.wantSubstituted, res.Substituted)
			assert.Equal(t, tt.err != nil, res.Failed())
			require.ErrorIs(t, res.Err, tt.err)
			assert.InDelta(t, tt.wantFallbacks, testutil.ToFloat64(m.Fallbacks.WithLabelValues("capabilities")), 0)
		})
	}
}

func TestLoad_DefaultNotAliased(t *testing.T) {
	def := []string{"a"}
	res := Load(context.Background(), Loader{}, "x", fetched(nil, errors.New("boom")), def)
	res.Items[0] = "changed"
	assert.Equal(t, "a", def[0])
}

func TestOne(t *testing.T) {
	l := Loader{Logger: logtest.NewTestLogger(t)}

	v, err := One(context.Background(), l, "settings", func(context.Context) (int, error) { return 7, nil }, 1)
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	v, err = One(context.Background(), l, "settings", func(context.Context) (int, error) { return 0, errors.New("x") }, 1)
	require.Error(t, err)
	assert.Equal(t, 1, v)
}
