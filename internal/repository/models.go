package repository

import "time"

// Product is a sellable item and its price per kilogram.
type Product struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"column:name;uniqueIndex;size:128;not null" json:"name"`
	NamePolish     string    `gorm:"column:name_polish;size:128;not null" json:"name_polish"`
	Category       string    `gorm:"column:category;size:64" json:"category"`
	PricePerKg     float64   `gorm:"column:price_per_kg;not null" json:"price_per_kg"`
	PricePerUnit   *float64  `gorm:"column:price_per_unit" json:"price_per_unit"`
	SellByWeight   bool      `gorm:"column:sell_by_weight;default:true" json:"sell_by_weight"`
	TypicalWeightG *int      `gorm:"column:typical_weight_g" json:"typical_weight_g"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName overrides the default table name.
func (Product) TableName() string {
	return "products"
}

// Transaction is an append-only record of a completed sale.
type Transaction struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ProductName string    `gorm:"column:product_name;size:128;not null;index" json:"product_name"`
	WeightG     float64   `gorm:"column:weight_g;not null" json:"weight_g"`
	PricePerKg  float64   `gorm:"column:price_per_kg;not null" json:"price_per_kg"`
	TotalPrice  float64   `gorm:"column:total_price;not null" json:"total_price"`
	Confidence  *float64  `gorm:"column:confidence" json:"confidence"`
	CreatedAt   time.Time `gorm:"column:created_at;index" json:"created_at"`
}

// TableName overrides the default table name.
func (Transaction) TableName() string {
	return "transactions"
}

// SalesAggregation is the raw aggregate over all transactions.
type SalesAggregation struct {
	TotalCount        int64   `gorm:"column:total_count"`
	TotalRevenue      float64 `gorm:"column:total_revenue"`
	AverageWeightG    float64 `gorm:"column:average_weight_g"`
	AverageConfidence float64 `gorm:"column:average_confidence"`
}
