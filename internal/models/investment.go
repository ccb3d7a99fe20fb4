package models

import "time"

// Investment represents a stock holding priced at a manually tracked market price
type Investment struct {
	ID                 int64     `json:"id"`
	UserID             int64     `json:"userId"`
	StockName          string    `json:"stockName"`
	Quantity           float64   `json:"quantity"`
	AvgBuyPrice        float64   `json:"avgBuyPrice"`
	CurrentMarketPrice float64   `json:"currentMarketPrice"`
	PurchaseDate       time.Time `json:"purchaseDate"`
	CreatedAt          time.Time `json:"createdAt"`
}

// CurrentValue returns the mark-to-market value of the holding
func (i Investment) CurrentValue() float64 {
	return i.Quantity * i.CurrentMarketPrice
}
