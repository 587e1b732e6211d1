package models

// Product's price is persisted as text, not a numeric column. Every
// price computation re-parses it through the pricing package; do not
// change the column type without migrating the stored values.
type Product struct {
	ProductID      uint   `gorm:"column:product_id;primaryKey;autoIncrement" json:"productID"`
	ProductName    string `gorm:"column:product_name;not null" json:"productName"`
	ProductType    string `gorm:"column:product_type;not null" json:"productType"`
	ProductPrice   string `gorm:"column:product_price;not null" json:"productPrice"`
	AvailableStock int    `gorm:"column:available_stock;not null" json:"availableStock"`
	ProductURL     string `gorm:"column:product_url;not null" json:"productURL"`
}

func (Product) TableName() string {
	return "products"
}
