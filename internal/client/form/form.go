// Package form implements the per-form state machine shared by the contact
// and user editors, including the merge-back of server-reported field errors
// into the same error map local validation writes to.
package form

import (
	"errors"

	"github.com/contactdesk/contacts-system/internal/client/rest"
	"github.com/contactdesk/contacts-system/internal/client/validation"
)

// State is the lifecycle position of one form instance.
type State int

const (
	Pristine State = iota
	Editing
	Valid
	Invalid
	Submitting
	FailedLocal
	FailedRemote
)

func (s State) String() string {
	switch s {
	case Pristine:
		return "pristine"
	case Editing:
		return "editing"
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	case Submitting:
		return "submitting"
	case FailedLocal:
		return "failed_local"
	case FailedRemote:
		return "failed_remote"
	default:
		return "unknown"
	}
}

// ErrInvalid is returned by Submit when local validation fails; no backend
// call is made in that case.
var ErrInvalid = errors.New("form: validation failed")

// GenericErrorKey is where messages land that have no field of their own:
// transport failures and server-named fields with no local counterpart.
const GenericErrorKey = "form"

const genericRemoteMessage = "the server rejected the submission"

// core carries the state shared by every concrete form.
type core struct {
	state   State
	errors  validation.Errors
	touched map[string]bool
}

func newCore() core {
	return core{
		state:   Pristine,
		errors:  validation.Errors{},
		touched: map[string]bool{},
	}
}

// State returns the current lifecycle position.
func (c *core) State() State { return c.state }

// Errors returns the live error map; callers must treat it as read-only.
func (c *core) Errors() validation.Errors { return c.errors }

// Touched reports whether the field's error should be shown.
func (c *core) Touched(field string) bool { return c.touched[field] }

// Touch marks a field as interacted-with and moves a pristine form to Editing.
func (c *core) Touch(field string) {
	c.touched[field] = true
	if c.state == Pristine {
		c.state = Editing
	}
}

// beginValidation clears the error map. Both producers (local rules, remote
// merge) only write after this runs.
func (c *core) beginValidation() {
	c.errors.Clear()
}

// finishValidation records the outcome and returns it.
func (c *core) finishValidation() bool {
	if len(c.errors) == 0 {
		c.state = Valid
		return true
	}
	c.state = Invalid
	return false
}

// failRemote folds a backend failure into the form. Field-keyed 400 bodies
// merge into the error map with every named field marked touched; a field the
// server names that does not exist locally falls back to a generic entry
// instead of being dropped. Any other failure becomes a generic entry with
// whatever message the backend offered.
func (c *core) failRemote(err error, isKnownField func(string) bool) {
	c.state = FailedRemote

	var apiErr *rest.APIError
	if !errors.As(err, &apiErr) || len(apiErr.Fields) == 0 {
		msg := genericRemoteMessage
		if apiErr != nil && apiErr.Message != "" {
			msg = apiErr.Message
		}
		c.errors[GenericErrorKey] = msg
		c.touched[GenericErrorKey] = true
		return
	}

	for field, msg := range apiErr.Fields {
		if !isKnownField(field) {
			c.errors[GenericErrorKey] = genericRemoteMessage
			c.touched[GenericErrorKey] = true
			continue
		}
		c.errors[field] = msg
		c.touched[field] = true
	}
}

// reset returns the core to Pristine with no errors and nothing touched.
func (c *core) reset() {
	c.state = Pristine
	c.errors = validation.Errors{}
	c.touched = map[string]bool{}
}
