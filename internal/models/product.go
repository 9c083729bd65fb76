package models

// Product represents a product in the store catalog.
type Product struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	Name      string  `json:"name" gorm:"type:varchar(255)" validate:"required,min=3,max=255"`
	Price     float64 `json:"price" validate:"required,gt=0"`
	Category  string  `json:"category" gorm:"index;type:varchar(100)" validate:"required,max=100"`
	InStock   bool    `json:"inStock"`
	ShortDesc string  `json:"shortDesc" validate:"omitempty,max=500"`
	LongDesc  string  `json:"longDesc"`
	ImgURL    string  `json:"imgUrl" gorm:"column:img_url"`
	MfgName   string  `json:"mfgName" gorm:"type:varchar(255)"`
}
