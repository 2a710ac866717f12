package models

import "time"

// Place is one entry in the places directory. JSON field names match the
// document format on disk, so round-tripping through the datastore is
// lossless.
type Place struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	Address     string    `json:"address,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	Rating      *float64  `json:"rating,omitempty"`
	Image       string    `json:"image,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PlacesDocument is the entire persisted state: one small collection in one
// JSON file, owned by the datastore.
type PlacesDocument struct {
	Places []Place `json:"places"`
}
