package form

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

// Action is the caller-supplied submit handler. It receives a snapshot
// of the form values and typically posts them to the backend. The
// controller never cancels a running action; cancellation, if needed,
// belongs to the context the caller passed to Submit.
type Action func(ctx context.Context, values Values) error

// Option configures a Controller.
type Option func(*Controller)

// WithAction sets the submit action invoked by Submit after a clean
// validation pass.
func WithAction(fn Action) Option {
	return func(c *Controller) { c.action = fn }
}

// WithLogger sets the logger used to report submit action failures.
// Defaults to a discard logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}

// Controller tracks the state of one mounted form: values, errors,
// touched flags, and whether a submit is in flight. Create one per form
// instance; controllers share no state.
type Controller struct {
	initial    Values
	values     Values
	rules      Rules
	errs       map[string]string
	touched    map[string]bool
	action     Action
	log        *slog.Logger
	mu         sync.Mutex
	submitting bool
}

// New returns a controller holding a copy of initial, no errors, no
// touched fields, and no submit in flight.
func New(initial Values, rules Rules, opts ...Option) *Controller {
	c := &Controller{
		initial: initial.Clone(),
		values:  initial.Clone(),
		rules:   rules,
		errs:    make(map[string]string),
		touched: make(map[string]bool),
		log:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ValidateField applies the field's rule to v in the fixed check order
// and returns the first failure's message, or "" when no rule exists,
// the rule is satisfied, or the value is empty and not required. It does
// not modify controller state.
func (c *Controller) ValidateField(name string, v Value) string {
	rule, ok := c.rules[name]
	if !ok {
		return ""
	}
	return rule.validate(name, v)
}

// ValidateForm re-validates every field that has a rule against the
// current values, replacing the whole errors map with the fresh result.
// It returns true iff no field produced a message.
func (c *Controller) ValidateForm() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.validateFormLocked()
}

func (c *Controller) validateFormLocked() bool {
	fresh := make(map[string]string, len(c.rules))
	for name, rule := range c.rules {
		if msg := rule.validate(name, c.values[name]); msg != "" {
			fresh[name] = msg
		}
	}
	c.errs = fresh
	return len(fresh) == 0
}

// HandleChange records a new value for the field and clears any error
// previously recorded for it, without re-validating. Unknown fields are
// rejected; the value key set never grows.
func (c *Controller) HandleChange(name string, v Value) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.values[name]; !ok {
		return ErrUnknownField
	}
	c.values[name] = v
	delete(c.errs, name)
	return nil
}

// HandleBlur marks the field touched and re-validates just that field,
// setting or clearing its error with the result.
func (c *Controller) HandleBlur(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.values[name]; !ok {
		return ErrUnknownField
	}
	c.touched[name] = true
	c.revalidateLocked(name)
	return nil
}

func (c *Controller) revalidateLocked(name string) {
	rule, ok := c.rules[name]
	if !ok {
		delete(c.errs, name)
		return
	}
	if msg := rule.validate(name, c.values[name]); msg != "" {
		c.errs[name] = msg
	} else {
		delete(c.errs, name)
	}
}

// SetFieldValue records a value directly without touching the field's
// error. Unknown fields are rejected.
func (c *Controller) SetFieldValue(name string, v Value) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.values[name]; !ok {
		return ErrUnknownField
	}
	c.values[name] = v
	return nil
}

// SetFieldError records an error message for the field without running
// validation. An empty message clears the recorded error.
func (c *Controller) SetFieldError(name, msg string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.values[name]; !ok {
		return ErrUnknownField
	}
	if msg == "" {
		delete(c.errs, name)
	} else {
		c.errs[name] = msg
	}
	return nil
}

// Submit marks every field touched, runs a full validation pass, and,
// when the form is valid, invokes the submit action with a snapshot of
// the current values. It returns ErrInvalid without invoking the action
// when validation fails, ErrSubmitInFlight while a previous submit has
// not settled, and the action's error (wrapped with ErrActionFailed)
// when the action fails. The submitting flag is cleared on every exit
// path. Action failures are logged and never recorded as field errors.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.submitting {
		c.mu.Unlock()
		return ErrSubmitInFlight
	}
	for name := range c.initial {
		c.touched[name] = true
	}
	if !c.validateFormLocked() {
		c.mu.Unlock()
		return ErrInvalid
	}
	action := c.action
	if action == nil {
		c.mu.Unlock()
		return ErrNoAction
	}
	c.submitting = true
	values := c.values.Clone()
	c.mu.Unlock()

	// The lock is not held while the action runs, so change and blur
	// handlers stay usable during a slow submit. The flag alone gates
	// re-entry and is reset even if the action panics.
	defer func() {
		c.mu.Lock()
		c.submitting = false
		c.mu.Unlock()
	}()

	if err := action(ctx, values); err != nil {
		c.log.ErrorContext(ctx, "form submit action failed", slog.Any("error", err))
		return errors.Join(ErrActionFailed, err)
	}
	return nil
}

// Reset restores the values to the initial record and clears errors,
// touched flags, and the submitting flag.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.values = c.initial.Clone()
	c.errs = make(map[string]string)
	c.touched = make(map[string]bool)
	c.submitting = false
}

// Values returns a copy of the current values.
func (c *Controller) Values() Values {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.values.Clone()
}

// Errors returns a copy of the currently recorded field errors. Absence
// of a key means no error has been recorded, not that the field is
// valid.
func (c *Controller) Errors() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make(map[string]string, len(c.errs))
	for k, v := range c.errs {
		out[k] = v
	}
	return out
}

// Error returns the recorded error message for one field, "" when none.
func (c *Controller) Error(name string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errs[name]
}

// Touched reports whether the field has been blurred or swept into
// touched state by a submit attempt.
func (c *Controller) Touched(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.touched[name]
}

// TouchedFields returns a copy of the touched map.
func (c *Controller) TouchedFields() map[string]bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make(map[string]bool, len(c.touched))
	for k, v := range c.touched {
		out[k] = v
	}
	return out
}

// IsSubmitting reports whether a submit action is in flight.
func (c *Controller) IsSubmitting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitting
}

// IsValid reports whether the recorded errors map is empty. It reflects
// only errors already computed, so it reads true before any validation
// has run; Submit still performs its own full validation pass.
func (c *Controller) IsValid() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.errs) == 0
}
