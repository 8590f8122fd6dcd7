package dto

import "time"

type PackageIDResponse struct {
	ID int64 `json:"id"`
}

type PackageResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Weight          float64   `json:"weight"`
	TypeID          int64     `json:"type_id"`
	Type            string    `json:"type"`
	ContentValueUSD float64   `json:"content_value_usd"`
	DeliveryCost    *float64  `json:"delivery_cost"`
	CreatedAt       time.Time `json:"created_at"`
}

type PackageListResponse struct {
	Items      []PackageResponse `json:"items"`
	Pagination Pagination        `json:"pagination"`
}

type PackageTypeResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type TaskResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}
