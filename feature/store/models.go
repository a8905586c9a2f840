package store

import "errors"

// ErrNotFound is returned when a keyed lookup matches no row.
var ErrNotFound = errors.New("record not found")

// Buyer represents the 'buyers' table.
type Buyer struct {
	Name   string  `gorm:"column:name;primaryKey" json:"name"`
	Budget float64 `gorm:"column:budget;not null;default:0" json:"budget"`
}

// TableName overrides the table name for buyers.
func (Buyer) TableName() string {
	return "buyers"
}

// Seller represents the 'sellers' table.
type Seller struct {
	GroupName string  `gorm:"column:group_name;primaryKey" json:"group_name"`
	Balance   float64 `gorm:"column:balance;not null;default:0" json:"balance"`
}

// TableName overrides the table name for sellers.
func (Seller) TableName() string {
	return "sellers"
}

// Product represents the 'products' table. It holds the authoritative stock level.
type Product struct {
	ID          int64   `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	SellerGroup string  `gorm:"column:seller_group;not null;index" json:"seller_group"`
	StockLevel  int     `gorm:"column:stock_level;not null;default:0;check:stock_level >= 0" json:"stock_level"`
	Seller      *Seller `gorm:"foreignKey:SellerGroup;references:GroupName" json:"-"`
}

// TableName overrides the table name for products.
func (Product) TableName() string {
	return "products"
}

// Models lists the store models in creation order; sellers precede products for the foreign key.
func Models() []any {
	return []any{&Buyer{}, &Seller{}, &Product{}}
}
