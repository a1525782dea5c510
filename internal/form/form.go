// Package form implements the submission lifecycle shared by every form
// on the site.
//
// A Machine moves idle -> submitting -> success | error and back to idle,
// either when the visitor retries or after ResetAfter has passed following a
// success. Only one submission per machine may be in flight at a time.
package form

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/leapstack-labs/musbsite/internal/api"
	"github.com/leapstack-labs/musbsite/internal/metrics"
)

// State is a machine state.
type State int

// Machine states.
const (
	Idle State = iota
	Submitting
	Success
	Error
)

func (s State) String() string {
	switch s {
	case Submitting:
		return "submitting"
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "idle"
	}
}

// ErrInFlight is returned when a submission is started while another is
// still running.
var ErrInFlight = errors.New("submission already in progress")

// DefaultFailureMessage is shown when a form has no specific failure text.
const DefaultFailureMessage = "Something went wrong. Please try again."

// Options configure one kind of form.
type Options struct {
	ResetAfter     time.Duration // return to idle this long after success; 0 stays in success
	SuccessMessage string
	FailureMessage string
}

// Snapshot is what a handler renders.
type Snapshot struct {
	State   State
	Message string
	Hints   map[string]string // field -> hint, set on validation failure
}

// Submitting reports whether the submit control must be disabled.
func (s Snapshot) Submitting() bool { return s.State == Submitting }

// ClearFields reports whether the rendered fields must be emptied.
func (s Snapshot) ClearFields() bool { return s.State == Success }

// Machine is the state of one form instance.
type Machine struct {
	name    string
	opts    Options
	metrics *metrics.Metrics

	mu    sync.Mutex
	state State
	msg   string
	gen   uint64 // bumped on every transition out of idle
}

// NewMachine creates an idle machine.
func NewMachine(name string, opts Options, m *metrics.Metrics) *Machine {
	if opts.FailureMessage == "" {
		opts.FailureMessage = DefaultFailureMessage
	}
	return &Machine{name: name, opts: opts, metrics: m}
}

// Name returns the form name.
func (m *Machine) Name() string { return m.name }

// Snapshot returns the current state.
func (m *Machine) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Snapshot{State: m.state, Message: m.msg}
}

// Submit validates input and, when valid, runs send.
//
// Invalid input leaves the machine where it was and returns a
// *ValidationError; send is not called. A second Submit while one is
// in flight returns ErrInFlight. Otherwise the returned snapshot is the
// success or error state, and the error is the one send returned.
func (m *Machine) Submit(ctx context.Context, input any, send func(context.Context) error) (Snapshot, error) {
	if err := Validate(input); err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			m.metrics.ObserveSubmission(m.name, metrics.OutcomeInvalid)
			snap := m.Snapshot()
			snap.Hints = ve.Fields
			return snap, err
		}
		return m.Snapshot(), err
	}

	m.mu.Lock()
	if m.state == Submitting {
		m.mu.Unlock()
		return Snapshot{State: Submitting}, ErrInFlight
	}
	m.state = Submitting
	m.msg = ""
	m.gen++
	m.mu.Unlock()

	err := send(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.gen++
	if err != nil {
		m.state = Error
		m.msg = m.opts.FailureMessage
		m.metrics.ObserveSubmission(m.name, outcomeOf(err))
	} else {
		m.state = Success
		m.msg = m.opts.SuccessMessage
		m.metrics.ObserveSubmission(m.name, metrics.OutcomeOK)
	}
	return Snapshot{State: m.state, Message: m.msg}, err
}

// Reset returns a finished machine to idle. It has no effect while a
// submission is in flight.
func (m *Machine) Reset() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != Submitting {
		m.state = Idle
		m.msg = ""
	}
	return Snapshot{State: m.state, Message: m.msg}
}

// AwaitReset blocks for ResetAfter after a success, then returns the
// machine to idle. It reports false without changing anything when the
// form has no reset delay, is not in success, ctx ends first, or another
// submission started in the meantime.
func (m *Machine) AwaitReset(ctx context.Context) bool {
	gen, ok := m.armReset()
	if !ok {
		return false
	}
	return m.finishReset(ctx, gen)
}

// armReset captures the generation of the success a reset belongs to.
func (m *Machine) armReset() (uint64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.opts.ResetAfter <= 0 || m.state != Success {
		return 0, false
	}
	return m.gen, true
}

// finishReset waits out the delay and resets only if the machine is still
// in the success of generation gen.
func (m *Machine) finishReset(ctx context.Context, gen uint64) bool {
	timer := time.NewTimer(m.opts.ResetAfter)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.gen != gen || m.state != Success {
		return false
	}
	m.state = Idle
	m.msg = ""
	return true
}

func outcomeOf(err error) string {
	if api.IsTransport(err) {
		return metrics.OutcomeTransport
	}
	return metrics.OutcomeHTTPError
}
