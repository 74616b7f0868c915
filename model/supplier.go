package model

import "time"

type Supplier struct {
	SupplierID string    `bson:"_id" json:"id"`
	Name       string    `bson:"name" json:"name"`
	Phone      string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Category   string    `bson:"category,omitempty" json:"category,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}

type OrderItem struct {
	Name     string  `bson:"name" json:"name"`
	Quantity float64 `bson:"quantity" json:"quantity"`
	Unit     string  `bson:"unit,omitempty" json:"unit,omitempty"`
}

type Order struct {
	OrderID    string      `bson:"_id" json:"id"`
	LocationID string      `bson:"location_id" json:"location_id"`
	SupplierID string      `bson:"supplier_id" json:"supplier_id"`
	Month      string      `bson:"month" json:"month"` // "MM/YYYY"
	Items      []OrderItem `bson:"items" json:"items"`
	Total      float64     `bson:"total,omitempty" json:"total,omitempty"`
	CreatedAt  time.Time   `bson:"created_at" json:"created_at"`
}
