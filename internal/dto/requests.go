package dto

type RegisterPackageRequest struct {
	Name            string  `json:"name" binding:"required,min=1,max=200"`
	Weight          float64 `json:"weight" binding:"required,gt=0,lte=1000"`
	TypeID          int64   `json:"type_id" binding:"required,gt=0"`
	ContentValueUSD float64 `json:"content_value_usd" binding:"required,gt=0,lte=1000000"`
}
