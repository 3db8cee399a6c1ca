package models

type Customer struct {
	BaseModel
	CustomerCode    string         `gorm:"uniqueIndex;not null" json:"customerCode"`
	CustomerName    string         `gorm:"not null" json:"customerName"`
	Phone           string         `gorm:"uniqueIndex;not null" json:"phone"`
	Email           *string        `gorm:"uniqueIndex" json:"email,omitempty"`
	Address         string         `gorm:"type:text" json:"address"`
	DiscountPercent float64        `gorm:"default:0" json:"discountPercent"`
	GstNo           *string        `gorm:"uniqueIndex" json:"gstNo,omitempty"`
	GstAddress      string         `gorm:"type:text" json:"gstAddress"`
	Outstanding     float64        `gorm:"default:0" json:"outstanding"`
	Status          DocumentStatus `gorm:"column:document_status;type:char(1);default:'N'" json:"-"`
	CreatedBy       uint           `gorm:"index" json:"createdBy"`
}
