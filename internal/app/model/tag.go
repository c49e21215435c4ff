package model

import "time"

// Tag is a label that can be attached to any number of orders.
type Tag struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Orders []Order `gorm:"many2many:order_tags;" json:"-"`
}

func (Tag) TableName() string {
	return "tags"
}

// OrderTag is the join row behind the order/tag many-to-many relationship.
// It carries no payload beyond the two foreign keys.
type OrderTag struct {
	ID      uint `gorm:"primarykey" json:"id"`
	OrderID uint `gorm:"not null;index" json:"order_id"`
	TagID   uint `gorm:"not null;index" json:"tag_id"`
}

func (OrderTag) TableName() string {
	return "order_tags"
}
