// Package permissions holds the ownership policy and the follow-graph
// guard as pure functions over plain data, so they can be unit tested
// without an HTTP harness.
package permissions

import "errors"

var (
	ErrUnauthorized     = errors.New("authentication required")
	ErrForbidden        = errors.New("you do not own this resource")
	ErrSelfFollow       = errors.New("you cannot follow yourself")
	ErrAlreadyFollowing = errors.New("you are already following this user")
)

// Caller is the identity extracted from a verified bearer token.
// A nil *Caller means the request is anonymous.
type Caller struct {
	ID      uint
	IsStaff bool
}

// CanWrite decides whether caller may update or delete a resource owned
// by ownerID. Reads never go through here; they are open to everyone
// except for follow edges, which are only ever listed for their owner.
func CanWrite(caller *Caller, ownerID uint) error {
	if caller == nil {
		return ErrUnauthorized
	}
	if caller.ID != ownerID {
		return ErrForbidden
	}
	return nil
}

// ValidateFollow rejects a self-follow before anything is written.
// Duplicate edges are not checked here: the composite unique index on
// follows makes the insert the atomic duplicate check, so two identical
// concurrent requests can never both create an edge.
func ValidateFollow(callerID, targetID uint) error {
	if callerID == targetID {
		return ErrSelfFollow
	}
	return nil
}
