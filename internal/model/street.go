package model

import "time"

// Street is reference data: it feeds address pickers and drives the
// client list sort precedence for addresses that start with its name.
type Street struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	GoogleMapsName string    `json:"google_maps_name"` // used to resolve map links
	Order          int       `json:"order"`            // presentation order only
	CreatedAt      time.Time `json:"created_at"`
}

// CreateStreetRequest is used for adding a new street
type CreateStreetRequest struct {
	Name           string `json:"name" binding:"required"`
	GoogleMapsName string `json:"google_maps_name" binding:"required"`
}

// StreetOrder assigns a presentation order to one street
type StreetOrder struct {
	ID    int64 `json:"id" binding:"required"`
	Order int   `json:"order"`
}

// ReorderStreetsRequest carries the full new ordering
type ReorderStreetsRequest struct {
	Order []StreetOrder `json:"order" binding:"required,min=1,dive"`
}
