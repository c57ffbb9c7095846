// Package screen implements the list-and-detail management screens: a list of
// rows fetched from the gateway and a form bound to the current record.
package screen

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/looplab/fsm"
	"go.uber.org/zap"

	"github.com/noah-isme/sigue-client/internal/access"
	"github.com/noah-isme/sigue-client/internal/dedupe"
	"github.com/noah-isme/sigue-client/internal/form"
	"github.com/noah-isme/sigue-client/internal/models"
	appErrors "github.com/noah-isme/sigue-client/pkg/errors"
)

// Screen states.
const (
	StateBrowsing = "browsing"
	StateEditing  = "editing"
)

const (
	eventSelect  = "select"
	eventSaved   = "saved"
	eventReset   = "reset"
	eventDeleted = "deleted"
)

// Backend is the gateway collection a screen works on.
type Backend[T any, P any] interface {
	List(ctx context.Context, query url.Values) ([]T, error)
	Get(ctx context.Context, id int64) (T, error)
	Create(ctx context.Context, payload P) (T, error)
	Update(ctx context.Context, id int64, payload P) (T, error)
	Delete(ctx context.Context, id int64) error
}

// Confirmer asks the user to approve a destructive action.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function into a Confirmer.
type ConfirmFunc func(prompt string) bool

// Confirm implements Confirmer.
func (f ConfirmFunc) Confirm(prompt string) bool {
	return f(prompt)
}

// Spec describes one entity screen.
type Spec[T any, P any] struct {
	Entity   access.Entity
	Backend  Backend[T, P]
	Validate func(in form.Input, mode form.Mode) (P, error)
	// Detect is optional; entities without a natural key leave it nil.
	Detect dedupe.Detector[T, P]
	ID     func(T) int64
	Fill   func(T) form.Input
	// Describe names the record in confirmation prompts.
	Describe func(T) string
	// Hydrate re-fetches the detail record after a save because the saved
	// response omits nested relations.
	Hydrate bool
	// Self loads the caller's own record in self-service mode.
	Self func(ctx context.Context) (T, error)
	// ProtectOwner forbids deleting the record whose id is the session user id.
	ProtectOwner bool
}

// Options carries the per-session collaborators of a screen.
type Options struct {
	Role    models.Role
	UserID  int64
	Confirm Confirmer
	Logger  *zap.Logger
}

// Controller drives one screen. It is used from a single goroutine.
type Controller[T any, P any] struct {
	spec     Spec[T, P]
	caps     access.Capabilities
	userID   int64
	confirm  Confirmer
	logger   *zap.Logger
	machine  *fsm.FSM
	identity models.Identity
	current  *T
	rows     []T
	filter   url.Values
	input    form.Input
}

// New builds a controller. Capabilities are computed once from the role.
func New[T any, P any](spec Spec[T, P], opts Options) *Controller[T, P] {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Controller[T, P]{
		spec:     spec,
		caps:     access.For(spec.Entity, opts.Role),
		userID:   opts.UserID,
		confirm:  opts.Confirm,
		logger:   logger.With(zap.String("screen", string(spec.Entity))),
		identity: models.Unsaved(),
		rows:     []T{},
		input:    form.NewInput(),
	}
	c.machine = fsm.NewFSM(
		StateBrowsing,
		fsm.Events{
			{Name: eventSelect, Src: []string{StateBrowsing, StateEditing}, Dst: StateEditing},
			{Name: eventSaved, Src: []string{StateBrowsing, StateEditing}, Dst: StateEditing},
			{Name: eventReset, Src: []string{StateBrowsing, StateEditing}, Dst: StateBrowsing},
			{Name: eventDeleted, Src: []string{StateEditing}, Dst: StateBrowsing},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				c.logger.Debug("screen state changed",
					zap.String("event", e.Event),
					zap.String("from", e.Src),
					zap.String("to", e.Dst),
				)
			},
		},
	)
	return c
}

// Entity returns the entity of the screen.
func (c *Controller[T, P]) Entity() access.Entity {
	return c.spec.Entity
}

// Capabilities returns the permission set computed at construction.
func (c *Controller[T, P]) Capabilities() access.Capabilities {
	return c.caps
}

// State returns StateBrowsing or StateEditing.
func (c *Controller[T, P]) State() string {
	return c.machine.Current()
}

// Identity returns the identity of the record in the form.
func (c *Controller[T, P]) Identity() models.Identity {
	return c.identity
}

// Current returns the record mirrored by the form.
func (c *Controller[T, P]) Current() (T, bool) {
	if c.current == nil {
		var zero T
		return zero, false
	}
	return *c.current, true
}

// Rows returns the loaded list.
func (c *Controller[T, P]) Rows() []T {
	return c.rows
}

// Input returns the form state.
func (c *Controller[T, P]) Input() form.Input {
	return c.input
}

// SetInput replaces the form state. Restricted fields are accepted here and
// ignored on save.
func (c *Controller[T, P]) SetInput(in form.Input) {
	c.input = in
}

// Edit sets one text field of the form.
func (c *Controller[T, P]) Edit(field, value string) {
	c.input = c.input.Set(field, value)
}

// Filter sets the list query used by Load.
func (c *Controller[T, P]) Filter(query url.Values) {
	c.filter = query
}

// Load replaces the list with a fresh fetch.
func (c *Controller[T, P]) Load(ctx context.Context) error {
	if !c.caps.CanList {
		return appErrors.Clone(appErrors.ErrForbidden, fmt.Sprintf("you cannot list %s", c.spec.Entity))
	}
	rows, err := c.spec.Backend.List(ctx, c.filter)
	if err != nil {
		return err
	}
	c.rows = rows
	return nil
}

// Select loads the detail record of id into the form.
func (c *Controller[T, P]) Select(ctx context.Context, id int64) error {
	if !c.caps.CanList && !c.caps.CanSearch {
		return appErrors.Clone(appErrors.ErrForbidden, fmt.Sprintf("you cannot browse %s", c.spec.Entity))
	}
	record, err := c.spec.Backend.Get(ctx, id)
	if err != nil {
		return err
	}
	return c.mirror(ctx, eventSelect, record)
}

// LoadSelf loads the caller's own record in self-service mode.
func (c *Controller[T, P]) LoadSelf(ctx context.Context) error {
	if !c.caps.Open || c.spec.Self == nil {
		return appErrors.Clone(appErrors.ErrForbidden, fmt.Sprintf("%s has no self-service profile", c.spec.Entity))
	}
	record, err := c.spec.Self(ctx)
	if err != nil {
		return err
	}
	return c.mirror(ctx, eventSelect, record)
}

// Reset clears the form for a new record.
func (c *Controller[T, P]) Reset(ctx context.Context) error {
	if err := c.fire(ctx, eventReset); err != nil {
		return err
	}
	c.identity = models.Unsaved()
	c.current = nil
	c.input = form.NewInput()
	return nil
}

// Save validates the form, checks the loaded list for duplicates and then
// creates or updates the record. On success the form mirrors the gateway's
// saved version and the list is reloaded.
func (c *Controller[T, P]) Save(ctx context.Context) (T, error) {
	var zero T
	if !c.caps.Open {
		return zero, appErrors.Clone(appErrors.ErrForbidden, fmt.Sprintf("you cannot edit %s", c.spec.Entity))
	}
	creating := !c.identity.IsPersisted()
	if creating && !c.caps.CanCreate {
		if c.caps.SelfService {
			return zero, appErrors.Clone(appErrors.ErrInvalidState, "no record is loaded to save")
		}
		return zero, appErrors.Clone(appErrors.ErrForbidden, fmt.Sprintf("you cannot create %s", c.spec.Entity))
	}

	payload, err := c.spec.Validate(c.input, form.Mode{Identity: c.identity, Restricted: c.caps.SelfService})
	if err != nil {
		return zero, err
	}
	if c.spec.Detect != nil {
		if err := c.spec.Detect(c.rows, payload, c.identity); err != nil {
			return zero, err
		}
	}

	var saved T
	if id, ok := c.identity.ID(); ok {
		saved, err = c.spec.Backend.Update(ctx, id, payload)
	} else {
		saved, err = c.spec.Backend.Create(ctx, payload)
	}
	if err != nil {
		return zero, err
	}

	if c.spec.Hydrate {
		detail, err := c.spec.Backend.Get(ctx, c.spec.ID(saved))
		if err != nil {
			c.logger.Warn("reload saved record failed", zap.Int64("id", c.spec.ID(saved)), zap.Error(err))
		} else {
			saved = detail
		}
	}

	if err := c.mirror(ctx, eventSaved, saved); err != nil {
		return zero, err
	}
	c.reload(ctx)
	return saved, nil
}

// Delete removes the current record after confirmation.
func (c *Controller[T, P]) Delete(ctx context.Context) error {
	if c.State() != StateEditing || c.current == nil {
		return appErrors.Clone(appErrors.ErrInvalidState, "select a record to delete first")
	}
	if !c.caps.CanDelete {
		return appErrors.Clone(appErrors.ErrForbidden, fmt.Sprintf("only an administrator can delete %s", c.spec.Entity))
	}
	id, _ := c.identity.ID()
	if c.spec.ProtectOwner && id == c.userID {
		return appErrors.Clone(appErrors.ErrInvalidState, "you cannot delete your own account")
	}

	prompt := fmt.Sprintf("Delete %s?", c.describe(*c.current))
	if c.confirm == nil || !c.confirm.Confirm(prompt) {
		return appErrors.ErrAborted
	}

	if err := c.spec.Backend.Delete(ctx, id); err != nil {
		return err
	}
	if err := c.fire(ctx, eventDeleted); err != nil {
		return err
	}
	c.identity = models.Unsaved()
	c.current = nil
	c.input = form.NewInput()
	c.reload(ctx)
	return nil
}

func (c *Controller[T, P]) mirror(ctx context.Context, event string, record T) error {
	if err := c.fire(ctx, event); err != nil {
		return err
	}
	c.identity = models.Persisted(c.spec.ID(record))
	c.current = &record
	c.input = c.spec.Fill(record)
	return nil
}

func (c *Controller[T, P]) fire(ctx context.Context, event string) error {
	err := c.machine.Event(ctx, event)
	var noTransition fsm.NoTransitionError
	if err == nil || errors.As(err, &noTransition) {
		return nil
	}
	return appErrors.Wrap(err, appErrors.ErrInvalidState.Code, appErrors.ErrInvalidState.Status, appErrors.ErrInvalidState.Message)
}

// reload refreshes the list after a write. The write already succeeded, so a
// failed refresh keeps the previous rows.
func (c *Controller[T, P]) reload(ctx context.Context) {
	if !c.caps.CanList {
		return
	}
	if err := c.Load(ctx); err != nil {
		c.logger.Warn("reload list failed", zap.Error(err))
	}
}

func (c *Controller[T, P]) describe(record T) string {
	if c.spec.Describe != nil {
		return c.spec.Describe(record)
	}
	return fmt.Sprintf("%s #%d", c.spec.Entity, c.spec.ID(record))
}
