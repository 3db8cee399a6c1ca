package models

type Stock struct {
	BaseModel
	StockCode  string         `gorm:"uniqueIndex;not null" json:"stockCode"`
	StockName  string         `gorm:"not null" json:"stockName"`
	Status     DocumentStatus `gorm:"column:document_status;type:char(1);default:'N'" json:"-"`
	CreatedBy  uint           `gorm:"index" json:"createdBy"`
	ModifiedBy uint           `json:"modifiedBy"`
}

type StockCategory struct {
	BaseModel
	CategoryCode string         `gorm:"uniqueIndex;not null" json:"categoryCode"`
	CategoryName string         `gorm:"not null" json:"categoryName"`
	Status       DocumentStatus `gorm:"column:document_status;type:char(1);default:'N'" json:"-"`
	CreatedBy    uint           `gorm:"index" json:"createdBy"`
	ModifiedBy   uint           `json:"modifiedBy"`
}
