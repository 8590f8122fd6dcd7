package model

import (
	"time"
)

type PackageType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Package struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Weight          float64   `json:"weight"`
	TypeID          int64     `json:"type_id"`
	TypeName        string    `json:"type,omitempty"`
	ContentValueUSD float64   `json:"content_value_usd"`
	DeliveryCost    *float64  `json:"delivery_cost"`
	SessionID       string    `json:"session_id"`
	CreatedAt       time.Time `json:"created_at"`
}

// ExchangeRate is one fetched USD quote, effective for a single calendar day.
type ExchangeRate struct {
	Value     float64   `json:"value"`
	Date      time.Time `json:"date"`
	FetchedAt time.Time `json:"fetched_at"`
}
