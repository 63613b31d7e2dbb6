package forms

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/oddam/donations/internal/models"
)

const dateLayout = "2006-01-02"

// DonationForm is the posted donation wizard.
type DonationForm struct {
	Quantity      string   `form:"quantity" binding:"required,number,max=9"`
	Categories    []string `form:"categories" binding:"required,min=1,dive,uuid"`
	Institution   string   `form:"institution" binding:"required,uuid"`
	Address       string   `form:"address" binding:"required,max=128"`
	City          string   `form:"city" binding:"required,max=64"`
	ZipCode       string   `form:"zip_code" binding:"required,zipcode"`
	PhoneNumber   string   `form:"phone_number" binding:"required,phone"`
	PickUpDate    string   `form:"pick_up_date" binding:"required,datetime=2006-01-02"`
	PickUpTime    string   `form:"pick_up_time" binding:"required,hhmm"`
	PickUpComment string   `form:"pick_up_comment" binding:"max=500"`

	quantity    int
	categoryIDs []uuid.UUID
	institution uuid.UUID
	pickUpDate  time.Time
}

// BindDonation reads a posted donation form.
func BindDonation(r *http.Request) (*DonationForm, error) {
	var f DonationForm
	if err := bind(r, &f); err != nil {
		return nil, err
	}
	f.Quantity = strings.TrimSpace(f.Quantity)
	f.Institution = strings.TrimSpace(f.Institution)
	f.Address = strings.TrimSpace(f.Address)
	f.City = strings.TrimSpace(f.City)
	f.ZipCode = strings.TrimSpace(f.ZipCode)
	f.PhoneNumber = NormalizePhone(f.PhoneNumber)
	f.PickUpDate = strings.TrimSpace(f.PickUpDate)
	f.PickUpTime = strings.TrimSpace(f.PickUpTime)
	f.PickUpComment = strings.TrimSpace(f.PickUpComment)
	return &f, nil
}

// Validate checks every rule; now decides which pick-up dates are in the past.
func (f *DonationForm) Validate(now time.Time) Errors {
	errs := validate(f)

	if !errs.Has("quantity") {
		n, err := strconv.Atoi(f.Quantity)
		switch {
		case err != nil:
			errs.Add("quantity", "Enter a whole number.")
		case n < 1:
			errs.Add("quantity", "Ensure this value is greater than or equal to 1.")
		default:
			f.quantity = n
		}
	}

	if !errs.Has("categories") {
		seen := make(map[uuid.UUID]bool, len(f.Categories))
		f.categoryIDs = f.categoryIDs[:0]
		for _, raw := range f.Categories {
			id := uuid.MustParse(raw)
			if !seen[id] {
				seen[id] = true
				f.categoryIDs = append(f.categoryIDs, id)
			}
		}
	}

	if !errs.Has("institution") {
		f.institution = uuid.MustParse(f.Institution)
	}

	if !errs.Has("pick_up_date") {
		d, _ := time.Parse(dateLayout, f.PickUpDate)
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		if d.Before(today) {
			errs.Add("pick_up_date", "The pick-up date cannot be in the past.")
		} else {
			f.pickUpDate = d
		}
	}
	return errs
}

// CategoryIDs returns the distinct selected categories. Valid after Validate.
func (f *DonationForm) CategoryIDs() []uuid.UUID {
	return f.categoryIDs
}

// InstitutionID returns the selected institution. Valid after Validate.
func (f *DonationForm) InstitutionID() uuid.UUID {
	return f.institution
}

// Checked reports whether the category was ticked, for redisplaying the form.
func (f *DonationForm) Checked(id uuid.UUID) bool {
	if f == nil {
		return false
	}
	s := id.String()
	for _, c := range f.Categories {
		if strings.EqualFold(c, s) {
			return true
		}
	}
	return false
}

// Donation builds the record to persist for owner. Valid after Validate returned no errors.
func (f *DonationForm) Donation(owner uuid.UUID) models.Donation {
	return models.Donation{
		UserID:        owner,
		InstitutionID: f.institution,
		Quantity:      f.quantity,
		PhoneNumber:   f.PhoneNumber,
		Address:       f.Address,
		City:          f.City,
		ZipCode:       f.ZipCode,
		PickUpDate:    f.pickUpDate,
		PickUpTime:    f.PickUpTime,
		PickUpComment: f.PickUpComment,
		CategoryIDs:   f.categoryIDs,
	}
}
