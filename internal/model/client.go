package model

import "time"

const (
	StatusPending     = "pending"
	StatusDelivered   = "delivered"
	StatusUndelivered = "undelivered"
)

// ValidStatus reports whether s is one of the three delivery statuses.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusDelivered || s == StatusUndelivered
}

// Client represents a delivery recipient
type Client struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"full_name"`
	Address   string    `json:"address"` // conventionally "<street name> <number>"
	Phone     string    `json:"phone"`
	Status    string    `json:"status"`         // "pending", "delivered" or "undelivered"
	Note      *string   `json:"note,omitempty"` // free text, e.g. reason for non-delivery
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateClientRequest is used for creating a new client; status always starts as "pending"
type CreateClientRequest struct {
	FullName string  `json:"full_name" binding:"required"`
	Address  string  `json:"address" binding:"required"`
	Phone    string  `json:"phone" binding:"required"`
	Note     *string `json:"note"`
}

type UpdateClientRequest struct {
	FullName *string `json:"full_name,omitempty"` // Pointers to allow partial updates
	Address  *string `json:"address,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Note     *string `json:"note,omitempty"`
}

// UpdateStatusRequest carries a status transition and its optional note
type UpdateStatusRequest struct {
	Status string  `json:"status" binding:"required,oneof=pending delivered undelivered"`
	Note   *string `json:"note"`
}

// ClientFilters contains the list-scoping parameters for client queries
type ClientFilters struct {
	Status  *string
	Search  string // case-insensitive substring over name/phone/address
	Address string // address prefix
}
