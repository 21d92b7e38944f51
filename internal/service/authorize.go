package service

import "github.com/google/uuid"

// authorizeOwner is the ownership policy for post and comment mutation: a
// resource may only be changed by the identity recorded as its author.
//
// Callers that fail this check receive the same not-found error as callers
// of a missing resource, so the API never reveals whether the resource
// exists. Category mutation deliberately does not use this policy — any
// authenticated caller may modify categories.
func authorizeOwner(requesterID, ownerID uuid.UUID) bool {
	return requesterID == ownerID
}
