package common

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/leapstack-labs/musbsite/internal/form"
	"github.com/leapstack-labs/musbsite/internal/ui/live"
)

// FormStatusTemplate is the shared partial that renders a form's state.
const FormStatusTemplate = "form-status"

// FormStatus is the data of the form-status partial.
type FormStatus struct {
	Form     string
	Snapshot form.Snapshot

	// ResetPath, when set, offers a "send another" control after a success.
	ResetPath string
}

// CanReset reports whether the "send another" control is shown.
func (s FormStatus) CanReset() bool {
	return s.ResetPath != "" && s.Snapshot.State == form.Success
}

// ID is the element ID the status is patched into.
func (s FormStatus) ID() string { return s.Form + "-status" }

// State returns the snapshot state name for CSS hooks.
func (s FormStatus) State() string { return s.Snapshot.State.String() }

// FormStatus returns the current state of the visitor's form, for full
// page renders.
func (d Deps) FormStatus(r *http.Request, name string) FormStatus {
	if d.Forms == nil {
		return FormStatus{Form: name}
	}
	return FormStatus{Form: name, Snapshot: d.Forms.Machine(VisitorID(r.Context()), name).Snapshot()}
}

// FormEndpoint handles the submit POST of one form. The form's signals live
// under its Name, for example {"contact": {"name": "...", ...}}, and its
// submit control is disabled through the $<name>Submitting signal.
type FormEndpoint[I any] struct {
	Name string
	Deps Deps

	// Decode reads the input. Nil reads the form's signals as JSON.
	Decode func(r *http.Request) (I, error)

	// Send submits the input to the backend.
	Send func(ctx context.Context, in I) error

	// Blank returns the field values shown after a success. Nil clears
	// every field.
	Blank func() I

	// ResetPath is the route of Reset, if the form mounts it.
	ResetPath string

	// MaxBytes caps the request body. Zero leaves it unbounded.
	MaxBytes int64
}

func (e *FormEndpoint[I]) decode(r *http.Request) (I, error) {
	if e.Decode != nil {
		return e.Decode(r)
	}
	var in I
	raw, err := live.ReadScoped(r, e.Name)
	if err != nil {
		return in, err
	}
	if len(raw) == 0 {
		return in, fmt.Errorf("missing %s signals", e.Name)
	}
	if err := json.Unmarshal(raw, &in); err != nil {
		return in, fmt.Errorf("failed to decode %s signals: %w", e.Name, err)
	}
	return in, nil
}

// Submit runs the submission and streams each state change back. String
// fields are trimmed before validation and sending.
func (e *FormEndpoint[I]) Submit(w http.ResponseWriter, r *http.Request) {
	if e.MaxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, e.MaxBytes)
	}

	ctx := r.Context()
	m := e.Deps.Forms.Machine(VisitorID(ctx), e.Name)

	in, err := e.decode(r)
	var ve *form.ValidationError
	if errors.As(err, &ve) {
		e.Deps.Log().Debug("form input rejected", "form", e.Name, "fields", ve.Fields)
		snap := m.Snapshot()
		snap.Hints = ve.Fields
		e.patch(datastar.NewSSE(w, r), snap)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	form.Normalize(&in)

	sse := datastar.NewSSE(w, r)

	snap, err := m.Submit(ctx, in, func(ctx context.Context) error {
		e.patch(sse, form.Snapshot{State: form.Submitting})
		return e.Send(ctx, in)
	})
	switch {
	case errors.Is(err, form.ErrInFlight):
		e.patch(sse, snap)
		return
	case errors.As(err, &ve):
		e.Deps.Log().Debug("form input rejected", "form", e.Name, "fields", ve.Fields)
	case err != nil:
		e.Deps.Log().Warn("form submission failed", "form", e.Name, "error", err)
	}
	e.patch(sse, snap)

	if m.AwaitReset(ctx) {
		e.patch(sse, m.Snapshot())
	}
}

// Reset returns a finished form to idle, for a "send another" control.
func (e *FormEndpoint[I]) Reset(w http.ResponseWriter, r *http.Request) {
	m := e.Deps.Forms.Machine(VisitorID(r.Context()), e.Name)
	e.patch(datastar.NewSSE(w, r), m.Reset())
}

func (e *FormEndpoint[I]) patch(sse *datastar.ServerSentEventGenerator, snap form.Snapshot) {
	status := FormStatus{Form: e.Name, Snapshot: snap, ResetPath: e.ResetPath}
	if err := sse.PatchElementTempl(e.Deps.Renderer.Fragment("", FormStatusTemplate, status)); err != nil {
		e.Deps.Log().Debug("form status patch failed", "form", e.Name, "error", err)
		return
	}

	signals := map[string]any{e.Name + "Submitting": snap.Submitting()}
	if snap.ClearFields() {
		var blank I
		if e.Blank != nil {
			blank = e.Blank()
		}
		signals[e.Name] = blank
	}
	if err := sse.MarshalAndPatchSignals(signals); err != nil {
		e.Deps.Log().Debug("form signals patch failed", "form", e.Name, "error", err)
	}
}
