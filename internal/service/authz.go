package service

import "github.com/google/uuid"

// authorizeOwner allows a mutation only when the requester owns the target resource.
func authorizeOwner(requesterID, ownerID uuid.UUID) error {
	if requesterID == uuid.Nil || requesterID != ownerID {
		return ErrForbidden
	}

	return nil
}
