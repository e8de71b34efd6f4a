package model

import "time"

// CategoryModel mirrors the 'categories' table. Rows are seeded at startup
// and read-only afterwards.
type CategoryModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(100);uniqueIndex;not null"`

	Products []ProductModel `gorm:"foreignKey:CategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID          uint    `gorm:"primaryKey"`
	Title       string  `gorm:"type:varchar(200);not null"`
	Price       float64 `gorm:"not null"`
	Currency    string  `gorm:"type:varchar(3);default:EUR"`
	Description string  `gorm:"type:varchar(500)"`
	ImageURL    string  `gorm:"type:varchar(200)"`
	CategoryID  uint    `gorm:"not null;index"`
	SellerID    uint    `gorm:"not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
	Seller   *UserModel     `gorm:"foreignKey:SellerID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
