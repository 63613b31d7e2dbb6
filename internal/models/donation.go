package models

import (
	"time"

	"github.com/google/uuid"
)

// Donation is a set of goods offered by a user for pickup.
// IsTaken only ever moves from false to true.
type Donation struct {
	ID            uuid.UUID   `json:"id"`
	UserID        uuid.UUID   `json:"user_id"`
	InstitutionID uuid.UUID   `json:"institution_id"`
	Quantity      int         `json:"quantity"`
	PhoneNumber   string      `json:"phone_number"`
	Address       string      `json:"address"`
	City          string      `json:"city"`
	ZipCode       string      `json:"zip_code"`
	PickUpDate    time.Time   `json:"pick_up_date"`
	PickUpTime    string      `json:"pick_up_time"`
	PickUpComment string      `json:"pick_up_comment"`
	IsTaken       bool        `json:"is_taken"`
	CreatedAt     time.Time   `json:"created_at"`
	CategoryIDs   []uuid.UUID `json:"category_ids,omitempty"`
}

// DonationView is a donation joined with the names needed to list it.
type DonationView struct {
	Donation
	InstitutionName string   `json:"institution_name"`
	CategoryNames   []string `json:"category_names"`
}
