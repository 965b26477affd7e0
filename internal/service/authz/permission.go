// Package authz holds the ownership/role policy applied to every mutating
// forum operation. Evaluation is pure: no I/O, no repository access, so the
// policy table is unit-tested directly.
package authz

import (
	"fmt"

	"forumhub/internal/domain"
	"forumhub/internal/domain/models"
)

// Operation identifies the mutation being authorized.
type Operation string

const (
	OperationEdit   Operation = "edit"
	OperationDelete Operation = "delete"
)

// Decision is the outcome of a policy evaluation. Reason is set only on
// denial and is surfaced verbatim to the caller.
type Decision struct {
	Allowed bool
	Reason  string
}

// Evaluate applies the generic ownership-or-role rule:
//   - the resource owner may always edit or delete their own resource
//   - moderators and admins may edit or delete anyone's resource
//   - everyone else is denied with "insufficient privilege"
//
// ownerID is nil for resources whose author no longer exists; role escalation
// still applies to those (the orphaned-author guard is a separate business
// rule checked by the services, after this evaluation).
func Evaluate(actor *models.Author, ownerID *int64, op Operation) Decision {
	if ownerID != nil && *ownerID == actor.ID {
		return Decision{Allowed: true}
	}
	if actor.Role.IsModerator() {
		return Decision{Allowed: true}
	}
	return Decision{
		Allowed: false,
		Reason:  fmt.Sprintf("insufficient privilege to %s a resource owned by another user", op),
	}
}

// EvaluateTopicOwnership gates marking a best answer. Only the topic's own
// author may do it; moderator and admin roles do not bypass this, on purpose.
// Kept separate from Evaluate so the exception cannot leak into the generic
// rule.
func EvaluateTopicOwnership(actor *models.Author, topic *models.Topic) Decision {
	if topic.OwnedBy(actor.ID) {
		return Decision{Allowed: true}
	}
	return Decision{
		Allowed: false,
		Reason:  "only the topic author may mark a best answer",
	}
}

// Deny converts a denial decision into the domain error surfaced to callers.
// Calling it on an allowed decision is a programming error.
func (d Decision) Deny() error {
	return &domain.PermissionDeniedError{Message: d.Reason}
}
