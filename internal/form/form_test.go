package form

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/musbsite/internal/api"
	"github.com/leapstack-labs/musbsite/internal/metrics"
)

type contactInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

func validInput() contactInput {
	return contactInput{Name: "Ada", Email: "ada@example.org", Message: "Hello"}
}

func TestMachine_SuccessThenReset(t *testing.T) {
	m := NewMachine("contact", Options{ResetAfter: 20 * time.Millisecond, SuccessMessage: "Thanks!"}, nil)
	assert.Equal(t, Idle, m.Snapshot().State)

	var during State
	snap, err := m.Submit(context.Background(), validInput(), func(context.Context) error {
		during = m.Snapshot().State
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, Submitting, during)
	assert.Equal(t, Success, snap.State)
	assert.Equal(t, "Thanks!", snap.Message)
	assert.True(t, snap.ClearFields())

	assert.True(t, m.AwaitReset(context.Background()))
	assert.Equal(t, Idle, m.Snapshot().State)
}

func TestMachine_NetworkFailureIsRetryable(t *testing.T) {
	m := NewMachine("newsletter", Options{FailureMessage: "Failed to subscribe. Please try again."}, nil)
	netErr := &api.TransportError{Method: "POST", Path: "/api/newsletter/subscribe/", Err: errors.New("connection refused")}

	snap, err := m.Submit(context.Background(), nil, func(context.Context) error { return netErr })
	require.ErrorIs(t, err, netErr)
	assert.Equal(t, Error, snap.State)
	assert.Equal(t, "Failed to subscribe. Please try again.", snap.Message)
	assert.False(t, snap.ClearFields())
	assert.False(t, snap.Submitting())

	// retry goes through
	snap, err = m.Submit(context.Background(), nil, func(context.Context) error { return nil })
	require.NoError(t, err)
	assert.Equal(t, Success, snap.State)
}

func TestMachine_InFlightGuard(t *testing.T) {
	m := NewMachine("contact", Options{}, nil)
	started := make(chan struct{})
	release := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = m.Submit(context.Background(), validInput(), func(context.Context) error {
			close(started)
			<-release
			return nil
		})
	}()

	<-started
	snap, err := m.Submit(context.Background(), validInput(), func(context.Context) error {
		t.Error("second submission must not be sent")
		return nil
	})
	require.ErrorIs(t, err, ErrInFlight)
	assert.True(t, snap.Submitting())

	close(release)
	wg.Wait()
	assert.Equal(t, Success, m.Snapshot().State)
}

func TestMachine_ValidationStaysIdle(t *testing.T) {
	reg := metrics.New()
	m := NewMachine("contact", Options{}, reg)

	called := false
	snap, err := m.Submit(context.Background(), contactInput{Email: "not-an-email"}, func(context.Context) error {
		called = true
		return nil
	})

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.False(t, called)
	assert.Equal(t, Idle, snap.State)
	assert.Equal(t, map[string]string{
		"name":    "This field is required.",
		"email":   "Enter a valid email address.",
		"message": "This field is required.",
	}, snap.Hints)
	assert.InDelta(t, 1, testutil.ToFloat64(reg.Submissions.WithLabelValues("contact", metrics.OutcomeInvalid)), 0)
}

func TestMachine_AwaitResetCancelled(t *testing.T) {
	m := NewMachine("contact", Options{ResetAfter: time.Hour}, nil)
	_, err := m.Submit(context.Background(), nil, func(context.Context) error { return nil })
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.False(t, m.AwaitReset(ctx))
	assert.Equal(t, Success, m.Snapshot().State)
}

func TestMachine_AwaitResetWithoutDelay(t *testing.T) {
	m := NewMachine("sponsor", Options{}, nil)
	_, err := m.Submit(context.Background(), nil, func(context.Context) error { return nil })
	require.NoError(t, err)
	assert.False(t, m.AwaitReset(context.Background()))
	assert.Equal(t, Success, m.Snapshot().State)
}

func TestMachine_AwaitResetSkipsNewerSubmission(t *testing.T) {
	m := NewMachine("contact", Options{ResetAfter: 20 * time.Millisecond}, nil)
	_, err := m.Submit(context.Background(), nil, func(context.Context) error { return nil })
	require.NoError(t, err)

	gen, ok := m.armReset()
	require.True(t, ok)

	// a fresh success before the timer fires gets its own full delay
	_, err = m.Submit(context.Background(), nil, func(context.Context) error { return nil })
	require.NoError(t, err)

	assert.False(t, m.finishReset(context.Background(), gen))
	assert.Equal(t, Success, m.Snapshot().State)

	assert.True(t, m.AwaitReset(context.Background()), "the newer success still resets")
	assert.Equal(t, Idle, m.Snapshot().State)
}

func TestMachine_ResetIgnoredWhileSubmitting(t *testing.T) {
	m := NewMachine("contact", Options{}, nil)
	started := make(chan struct{})
	release := make(chan struct{})
	go func() {
		_, _ = m.Submit(context.Background(), nil, func(context.Context) error {
			close(started)
			<-release
			return errors.New("boom")
		})
	}()
	<-started
	assert.Equal(t, Submitting, m.Reset().State)
	close(release)

	require.Eventually(t, func() bool { return m.Snapshot().State == Error }, time.Second, 5*time.Millisecond)
	assert.Equal(t, Idle, m.Reset().State)
}

func TestMachine_Metrics(t *testing.T) {
	reg := metrics.New()
	m := NewMachine("sponsor", Options{}, reg)

	_, _ = m.Submit(context.Background(), nil, func(context.Context) error { return nil })
	_, _ = m.Submit(context.Background(), nil, func(context.Context) error { return &api.StatusError{Status: 400} })
	_, _ = m.Submit(context.Background(), nil, func(context.Context) error {
		return &api.TransportError{Err: context.DeadlineExceeded}
	})

	assert.InDelta(t, 1, testutil.ToFloat64(reg.Submissions.WithLabelValues("sponsor", metrics.OutcomeOK)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(reg.Submissions.WithLabelValues("sponsor", metrics.OutcomeHTTPError)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(reg.Submissions.WithLabelValues("sponsor", metrics.OutcomeTransport)), 0)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "submitting", Submitting.String())
	assert.Equal(t, "success", Success.String())
	assert.Equal(t, "error", Error.String())
}

func TestNormalize(t *testing.T) {
	type attachment struct {
		Filename string
		Data     []byte
	}
	type application struct {
		Name   string `json:"name" validate:"required"`
		Email  string `json:"email" validate:"required,email"`
		Resume *attachment
		Years  int
		note   string
	}

	in := application{
		Name:   "  Ada ",
		Email:  " ada@example.org\n",
		Resume: &attachment{Filename: " cv.pdf ", Data: []byte(" raw ")},
		Years:  3,
		note:   " kept ",
	}
	Normalize(&in)

	assert.Equal(t, "Ada", in.Name)
	assert.Equal(t, "ada@example.org", in.Email)
	assert.Equal(t, "cv.pdf", in.Resume.Filename)
	assert.Equal(t, []byte(" raw "), in.Resume.Data)
	assert.Equal(t, 3, in.Years)
	assert.Equal(t, " kept ", in.note)
	assert.NoError(t, Validate(in))

	blank := application{Name: "   ", Email: " ada@example.org "}
	Normalize(&blank)
	var ve *ValidationError
	require.ErrorAs(t, Validate(blank), &ve)
	assert.Equal(t, map[string]string{"name": "This field is required."}, ve.Fields)

	assert.NotPanics(t, func() {
		Normalize(nil)
		Normalize(in)
		Normalize((*application)(nil))
	})
}
