package models

// CartItem links a user to a product with a quantity. At most one row
// per (user, product) pair is intended, enforced by find-then-overwrite
// logic in the cart service rather than a uniqueness constraint, so
// concurrent adds can race into duplicates.
type CartItem struct {
	CardID    uint    `gorm:"column:card_id;primaryKey;autoIncrement" json:"cardID"`
	Quantity  int     `gorm:"column:quantity" json:"quantity"`
	ProductID uint    `gorm:"column:product_id" json:"productID"`
	UserID    int64   `gorm:"column:user_id" json:"userID"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	User      User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName keeps the legacy table name, legacy card_id key included.
func (CartItem) TableName() string {
	return "cart"
}
