package model

// CartModel mirrors the 'carts' table. The composite primary key enforces the
// one-entry-per-(user, product) invariant at the schema level.
type CartModel struct {
	UserID    uint `gorm:"primaryKey;index"`
	ProductID uint `gorm:"primaryKey;index"`

	User    *UserModel    `gorm:"foreignKey:UserID"`
	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}
