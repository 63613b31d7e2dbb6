package models

import (
	"github.com/google/uuid"
)

// InstitutionType classifies an institution.
type InstitutionType int

const (
	InstitutionFoundation InstitutionType = 0
	InstitutionNonGovOrg  InstitutionType = 1
	InstitutionFundraiser InstitutionType = 2
)

// InstitutionTypes lists every valid type in display order.
var InstitutionTypes = []InstitutionType{InstitutionFoundation, InstitutionNonGovOrg, InstitutionFundraiser}

// Valid reports whether t is one of the defined types.
func (t InstitutionType) Valid() bool {
	return t >= InstitutionFoundation && t <= InstitutionFundraiser
}

// String returns the message key for the type label.
func (t InstitutionType) String() string {
	switch t {
	case InstitutionFoundation:
		return "Foundation"
	case InstitutionNonGovOrg:
		return "Non-governmental organization"
	case InstitutionFundraiser:
		return "Local fundraiser"
	default:
		return "Unknown"
	}
}

// Institution is a charitable organization eligible to receive donations.
type Institution struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Type        InstitutionType `json:"type"`
	Categories  []Category      `json:"categories,omitempty"`
}

// Category tags what an institution accepts and what a donation contains.
type Category struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
