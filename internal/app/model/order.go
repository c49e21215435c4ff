package model

import (
	"math"
	"time"
)

type Order struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	ContactID uint      `gorm:"not null;index" json:"contact_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Contact    Contact     `gorm:"foreignKey:ContactID" json:"-"`
	OrderLines []OrderLine `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"order_lines"`
	Tags       []Tag       `gorm:"many2many:order_tags;" json:"tags"`

	// AmountTotal is never stored. It is recomputed from the currently
	// linked lines on every read.
	AmountTotal float64 `gorm:"-" json:"amount_total"`
}

func (Order) TableName() string {
	return "orders"
}

// ComputeAmountTotal derives the order total from its loaded lines,
// rounded to two decimal places.
func (o *Order) ComputeAmountTotal() float64 {
	var total float64
	for _, line := range o.OrderLines {
		total += line.Price * float64(line.Quantity)
	}
	return math.Round(total*100) / 100
}

type OrderLine struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	OrderID   uint      `gorm:"not null;index" json:"order_id"`
	ProductID uint      `gorm:"not null;index" json:"product_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Price     float64   `gorm:"not null" json:"price"` // per-unit price
	CreatedAt time.Time `json:"created_at"`

	Order   Order   `gorm:"foreignKey:OrderID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"-"`
}

func (OrderLine) TableName() string {
	return "order_lines"
}
