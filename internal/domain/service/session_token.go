package service

import "marketplace/internal/domain/entity"

// SessionTokenService signs and validates the identity token carried by the
// session cookie. The token embeds the cached cart count so the badge can be
// rendered without a store round trip.
type SessionTokenService interface {
	// Issue creates a signed token for the given identity.
	Issue(info entity.UserInfo) (string, error)

	// Validate parses and verifies a token, returning the embedded identity.
	Validate(token string) (entity.UserInfo, error)
}
