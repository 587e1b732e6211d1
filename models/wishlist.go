package models

// WishlistItem links a user to a product with no quantity.
type WishlistItem struct {
	WishlistID uint    `gorm:"column:wishlist_id;primaryKey;autoIncrement" json:"wishlistID"`
	ProductID  uint    `gorm:"column:product_id" json:"productID"`
	UserID     int64   `gorm:"column:user_id" json:"userID"`
	Product    Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	User       User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (WishlistItem) TableName() string {
	return "wishlist"
}
