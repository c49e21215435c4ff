package model

import "time"

// Contact is a customer record that orders are placed against.
type Contact struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Orders []Order `gorm:"foreignKey:ContactID" json:"-"`
}

func (Contact) TableName() string {
	return "contacts"
}
