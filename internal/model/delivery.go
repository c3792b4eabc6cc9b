package model

import "time"

// Delivery is one ledger entry: how many parcels a user delivered on a
// given calendar day. Independent of Client records.
type Delivery struct {
	ID        int64     `json:"id"`
	UserID    int       `json:"user_id"`
	Date      time.Time `json:"date"` // calendar day, no time component
	Delivered int       `json:"delivered"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DeliveryRequest is used both for creating and replacing a ledger entry
type DeliveryRequest struct {
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	Delivered int    `json:"delivered" binding:"required,gte=0"`
}

// EarningsSummary is the per-user earnings report: total parcels across
// the ledger times a fixed per-parcel rate.
type EarningsSummary struct {
	TotalDelivered int64 `json:"total_delivered"`
	RatePerParcel  int64 `json:"rate_per_parcel"` // in the smallest currency unit
	Total          int64 `json:"total"`
	Days           int   `json:"days"`
}
