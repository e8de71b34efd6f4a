package entity

// Category is a read-only catalog grouping. The full set is seeded once at
// startup and never modified through exposed operations.
type Category struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// SeededCategories is the fixed category list inserted at startup.
var SeededCategories = []string{
	"Electronics",
	"Accessories",
	"Clothing",
	"Home & Kitchen",
	"Books",
	"Toys",
	"Sports",
	"Beauty & Personal Care",
}
