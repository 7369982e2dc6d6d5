// Package authz implements the ownership check applied to every mutating
// operation on posted content. The policy is ownership-only: the author of a
// question or answer, and nobody else, may modify or delete it.
package authz

import "fmt"

// Action identifies the mutating operation being authorized.
type Action string

// Actions subject to ownership checks.
const (
	ActionModify Action = "modify"
	ActionDelete Action = "delete"
)

// PermissionError is returned when an actor attempts an action on content
// they do not own. It carries the attempted action for user-facing messaging.
type PermissionError struct {
	Action Action
	Actor  string
}

// Error returns a formatted error message naming the denied action.
func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission denied: only the author may %s this post", e.Action)
}

// Authorize decides whether actor may perform action on content owned by owner.
// The comparison is a case-sensitive exact username match; there is no role
// based override. A nil return means the action is allowed.
//
// Callers must authorize against a freshly loaded copy of the target so the
// decision reflects current ownership state.
func Authorize(actor, owner string, action Action) error {
	if actor == "" || actor != owner {
		return &PermissionError{Action: action, Actor: actor}
	}
	return nil
}
