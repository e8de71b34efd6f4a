package entity

import "time"

// DefaultCurrency is applied to listings that do not specify one.
const DefaultCurrency = "EUR"

// Product is a marketplace listing. CategoryName is denormalized from the
// category relation when the product is read back from storage.
type Product struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	Price        float64   `json:"price"`
	Currency     string    `json:"currency"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"image_url"`
	CategoryID   uint      `json:"category_id"`
	CategoryName string    `json:"category_name"`
	SellerID     uint      `json:"seller_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsSoldBy reports whether the given user created this listing.
func (p *Product) IsSoldBy(userID uint) bool {
	return p.SellerID == userID
}
