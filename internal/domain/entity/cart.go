package entity

// CartItem is a cart row joined with the product data needed to render it.
// A user holds at most one entry per product (set semantics, no quantity).
type CartItem struct {
	ProductID uint    `json:"product_id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"image_url"`
}
