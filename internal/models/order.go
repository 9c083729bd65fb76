package models

import "time"

// OrderProduct is a single line item: product reference, quantity and the
// unit price captured at order-creation time.
type OrderProduct struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	OrderID   uint    `json:"orderId" gorm:"index;not null"`
	ProductID uint    `json:"productId" gorm:"not null"`
	Qty       int     `json:"qty"`
	UnitPrice float64 `json:"unitPrice"`
}

// Order snapshots the buyer's billing and shipping addresses together with
// its line items. Orders are immutable once created.
type Order struct {
	ID                uint           `json:"id" gorm:"primaryKey"`
	UserID            uint           `json:"userId" gorm:"index;not null"`
	Billing           Address        `json:"billing" gorm:"embedded;embeddedPrefix:billing_"`
	Shipping          Address        `json:"shipping" gorm:"embedded;embeddedPrefix:shipping_"`
	OrderSubTotal     float64        `json:"orderSubTotal"`
	OrderTax          float64        `json:"orderTax"`
	OrderShippingCost float64        `json:"orderShippingCost"`
	ShippingTypeID    uint           `json:"shippingTypeId"`
	Products          []OrderProduct `json:"orderProducts" gorm:"foreignKey:OrderID"`
	CreatedAt         time.Time      `json:"createdAt"`
}
