package entity

// UserInfo is the identity attached to a request after session validation.
// The zero value is the anonymous identity. CartCount is a denormalized badge
// counter cached in the session token; cart-mutation handlers refresh it, so
// it can lag the cart store briefly.
type UserInfo struct {
	UserID    uint   `json:"user_id"`
	Username  string `json:"username"`
	CartCount int64  `json:"cart_count"`
}

// IsAuthenticated reports whether this identity belongs to a logged-in user.
func (u UserInfo) IsAuthenticated() bool {
	return u.UserID != 0
}
