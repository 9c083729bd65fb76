package models

import "time"

// Address is a billing or shipping address snapshot. It is embedded into
// User and Order with a column prefix so both keep flat columns.
type Address struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Address1  string `json:"address1" validate:"required,max=255"`
	Address2  string `json:"address2,omitempty" validate:"omitempty,max=255"`
	City      string `json:"city" validate:"required,max=100"`
	State     string `json:"state" validate:"required,max=2"`
	Zip       string `json:"zip" validate:"required,max=10"`
	Phone     string `json:"phone" validate:"required,max=20"`
}

// User represents a customer identity plus their billing/shipping snapshots.
// Email is stored lower-cased and carries a unique index; Password holds a
// bcrypt hash and is empty for users who only ever signed in via OAuth.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	FirstName string    `json:"firstName" gorm:"type:varchar(100)"`
	LastName  string    `json:"lastName" gorm:"type:varchar(100)"`
	Email     string    `json:"email" gorm:"uniqueIndex;type:varchar(255)"`
	Password  string    `json:"-" gorm:"type:varchar(255)"`
	Billing   Address   `json:"billing" gorm:"embedded;embeddedPrefix:billing_"`
	Shipping  Address   `json:"shipping" gorm:"embedded;embeddedPrefix:shipping_"`
	Auths     []Auth    `json:"-" gorm:"foreignKey:UserID"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
