package newsletter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/musbsite/internal/form"
	"github.com/leapstack-labs/musbsite/internal/ui/features"
	"github.com/leapstack-labs/musbsite/internal/ui/features/common"
)

const subscribePath = "/api/newsletter/subscribe/"

func TestSubscribe(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantState form.State
		wantBody  []string
		wantSent  bool
	}{
		{
			name:      "success keeps the subscribed state",
			status:    http.StatusCreated,
			wantState: form.Success,
			wantBody:  []string{`data-state="success"`, "You&#39;re subscribed", `"newsletter":{"email":""}`},
			wantSent:  true,
		},
		{
			name:      "backend failure shows the retry message",
			status:    http.StatusBadRequest,
			wantState: form.Error,
			wantBody:  []string{`data-state="error"`, "Failed to subscribe. Please try again.", `"newsletterSubmitting":false`},
			wantSent:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := features.SetupTestFixture(t)
			fx.Backend.Respond(http.MethodPost, subscribePath, tt.status, map[string]string{"message": "ok"})
			router := fx.Router(SetupRoutes)

			rec := fx.PostSignals(router, "/newsletter/subscribe", `{"newsletter":{"email":" jo@example.com "},"newsletterSubmitting":false}`)

			require.Equal(t, http.StatusOK, rec.Code)
			for _, want := range tt.wantBody {
				assert.Contains(t, rec.Body.String(), want)
			}
			assert.Equal(t, tt.wantState, fx.Machine(common.NewsletterForm).Snapshot().State)

			reqs := fx.Backend.Requests(http.MethodPost, subscribePath)
			require.Len(t, reqs, 1)
			var sent map[string]string
			reqs[0].JSON(t, &sent)
			assert.Equal(t, "jo@example.com", sent["email"])
		})
	}
}

func TestSubscribe_InvalidEmail(t *testing.T) {
	fx := features.SetupTestFixture(t)
	router := fx.Router(SetupRoutes)

	rec := fx.PostSignals(router, "/newsletter/subscribe", `{"newsletter":{"email":"nope"}}`)

	assert.Contains(t, rec.Body.String(), `data-field="email"`)
	assert.Empty(t, fx.Backend.Requests(http.MethodPost, subscribePath))
}

func TestSubscribe_PageShowsSubscribed(t *testing.T) {
	fx := features.SetupTestFixture(t)
	fx.Backend.Respond(http.MethodPost, subscribePath, http.StatusCreated, map[string]string{})
	router := fx.Router(SetupRoutes)

	req := httptest.NewRequest(http.MethodGet, "/about", nil)
	req = req.WithContext(common.WithVisitor(req.Context(), features.TestVisitor))
	assert.False(t, fx.Deps.Page(req, "About", "", nil).Subscribed)

	fx.PostSignals(router, "/newsletter/subscribe", `{"newsletter":{"email":"jo@example.com"}}`)

	assert.True(t, fx.Deps.Page(req, "About", "", nil).Subscribed)
}
