package models

// State is a US state row used to populate address forms.
type State struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Abbr string `json:"abbr" gorm:"type:varchar(2);uniqueIndex"`
	Name string `json:"state" gorm:"column:state;type:varchar(100)"`
}

// ShippingType is a selectable shipping option with its flat price.
type ShippingType struct {
	ID    uint    `json:"id" gorm:"primaryKey"`
	Value string  `json:"value" gorm:"type:varchar(50)"`
	Label string  `json:"label" gorm:"type:varchar(100)"`
	Price float64 `json:"price"`
}
