// Package landing serves the home page: a random pick of institutions per type and the running totals.
package landing

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/oddam/donations/internal/models"
	"github.com/oddam/donations/pkg/response"
)

// PerType is how many institutions of each type the page shows.
const PerType = 3

// Institutions is the institution lookup the landing page needs.
type Institutions interface {
	ListByType(ctx context.Context, t models.InstitutionType) ([]models.Institution, error)
	Count(ctx context.Context) (int64, error)
}

// Donations is the donation aggregate the landing page needs.
type Donations interface {
	SumQuantity(ctx context.Context) (*int64, error)
}

// View is the index.html context. Nil totals render as zero.
type View struct {
	Foundations         []models.Institution
	NonGovOrganizations []models.Institution
	FundRaisers         []models.Institution
	DonationsQuantity   *int64
	Institutions        *int64
}

// Handler serves the landing page.
type Handler struct {
	institutions Institutions
	donations    Donations
	sampler      *Sampler
	logger       *zap.Logger
}

// NewHandler creates a landing handler. A nil sampler gets a time-seeded one.
func NewHandler(institutions Institutions, donations Donations, sampler *Sampler, logger *zap.Logger) *Handler {
	if sampler == nil {
		sampler = NewSampler(0)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{institutions: institutions, donations: donations, sampler: sampler, logger: logger}
}

// Index handles GET /.
func (h *Handler) Index(c *gin.Context) {
	view, err := h.build(c.Request.Context())
	if err != nil {
		h.logger.Error("build landing page", zap.Error(err))
		response.Internal(c)
		return
	}
	response.HTML(c, http.StatusOK, "index.html", response.HeaderMainPage, view)
}

func (h *Handler) build(ctx context.Context) (*View, error) {
	var view View
	groups := []struct {
		t   models.InstitutionType
		dst *[]models.Institution
	}{
		{models.InstitutionFoundation, &view.Foundations},
		{models.InstitutionNonGovOrg, &view.NonGovOrganizations},
		{models.InstitutionFundraiser, &view.FundRaisers},
	}
	for _, g := range groups {
		list, err := h.institutions.ListByType(ctx, g.t)
		if err != nil {
			return nil, err
		}
		*g.dst = Sample(h.sampler, list, PerType)
	}

	sum, err := h.donations.SumQuantity(ctx)
	switch {
	case errors.Is(err, models.ErrNotFound):
		return &view, nil
	case err != nil:
		return nil, err
	}
	count, err := h.institutions.Count(ctx)
	switch {
	case errors.Is(err, models.ErrNotFound):
		return &view, nil
	case err != nil:
		return nil, err
	}
	view.DonationsQuantity = sum
	view.Institutions = &count
	return &view, nil
}
