// Package form provides a reusable state controller for a single form
// instance: field values, per-field validation errors, touched tracking,
// and submission state behind one small API.
//
// A controller is created per form mount with an initial record and a
// declarative rule set, and discarded when the form goes away. It has no
// persistence and performs no I/O of its own; the only asynchronous seam
// is the caller-supplied submit action.
//
// Basic usage:
//
//	ctrl := form.New(
//		form.Values{
//			"name":  form.Text(""),
//			"email": form.Text(""),
//		},
//		form.Rules{
//			"name":  {Required: true, MaxLength: 100},
//			"email": {Required: true, Pattern: form.EmailPattern},
//		},
//		form.WithAction(func(ctx context.Context, values form.Values) error {
//			return api.CreateContact(ctx, values)
//		}),
//	)
//
//	ctrl.HandleChange("name", form.Text("Ada"))
//	ctrl.HandleBlur("name")
//
//	if err := ctrl.Submit(ctx); err != nil {
//		// form.ErrInvalid: field errors are populated for display.
//		// Anything else came from the submit action.
//	}
//
// # Validation
//
// Rules are pure data evaluated in a fixed order: required, minimum
// length, maximum length, pattern, custom predicate. Evaluation stops at
// the first failing check and returns its message (the rule's Message
// override when set, a generated default otherwise). An empty value on a
// field that is not required always validates clean, regardless of other
// checks on the rule.
//
// # State semantics
//
// The values record has a closed key set: keys present at construction
// are the only keys that ever exist, and operations on unknown fields
// return ErrUnknownField. The errors map holds only computed or
// explicitly set messages; absence of a key means no error has been
// recorded, not that the field was validated. IsValid derives from the
// recorded errors only, so it reads true before any validation has run.
// Consumers rely on this to enable a submit control before first
// interaction, and Submit still runs a full validation pass before
// invoking the action.
//
// Submit marks every field touched, re-validates the whole form, and only
// then invokes the action with a snapshot of the current values. While
// the action is in flight the controller reports IsSubmitting and rejects
// further Submit calls with ErrSubmitInFlight; the flag is cleared on
// every exit path, including a panicking action.
//
// All methods are safe for concurrent use. The controller takes no
// timeout and cannot cancel a running action; pass a context the action
// honors if cancellation is needed.
package form
