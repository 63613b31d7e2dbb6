package donations

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/oddam/donations/internal/forms"
	"github.com/oddam/donations/internal/models"
	"github.com/oddam/donations/internal/routes"
	"github.com/oddam/donations/pkg/response"
)

// CategoryFilterParam is the query key repeated once per selected category.
const CategoryFilterParam = "category_ids"

// Catalog is the institution and category lookup the donation form needs.
type Catalog interface {
	ListByNameLength(ctx context.Context) ([]models.Institution, error)
	ListByAllCategories(ctx context.Context, categoryIDs []uuid.UUID) ([]models.Institution, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Institution, error)
	CountCategories(ctx context.Context, ids []uuid.UUID) (int, error)
}

// Store is the donation persistence the handlers need.
type Store interface {
	Create(ctx context.Context, d *models.Donation) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.DonationView, error)
	MarkTaken(ctx context.Context, id, userID uuid.UUID) error
}

// FormPage is the form.html context.
type FormPage struct {
	Institutions []models.Institution
	Categories   []models.Category
	Form         *forms.DonationForm
	Errors       forms.Errors
}

// Selected reports whether id is the institution picked in a redisplayed form.
func (p FormPage) Selected(id uuid.UUID) bool {
	return p.Form != nil && strings.EqualFold(p.Form.Institution, id.String())
}

// InstitutionsPage is the api_institutions.html context.
type InstitutionsPage struct {
	Institutions []models.Institution
}

// Selected is always false: filtered lists are rendered before any choice is made.
func (InstitutionsPage) Selected(uuid.UUID) bool {
	return false
}

// ProfilePage is the user_profile.html context.
type ProfilePage struct {
	User      *models.UserPublic
	Donations []models.DonationView
}

// Handler serves the donation form, confirmation, profile and status changes.
type Handler struct {
	catalog   Catalog
	donations Store
	logger    *zap.Logger
	now       func() time.Time
}

// NewHandler creates a donations handler.
func NewHandler(catalog Catalog, donations Store, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{catalog: catalog, donations: donations, logger: logger, now: time.Now}
}

// Form handles GET /donate. With category_ids it returns only the matching institutions fragment.
func (h *Handler) Form(c *gin.Context) {
	raw := c.QueryArray(CategoryFilterParam)
	if len(raw) > 0 {
		h.filterInstitutions(c, raw)
		return
	}
	h.renderForm(c, nil, nil)
}

func (h *Handler) filterInstitutions(c *gin.Context, raw []string) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			response.BadRequest(c)
			return
		}
		ids = append(ids, id)
	}
	list, err := h.catalog.ListByAllCategories(c.Request.Context(), ids)
	if err != nil {
		h.logger.Error("filter institutions", zap.Error(err))
		response.Internal(c)
		return
	}
	response.Fragment(c, "api_institutions.html", InstitutionsPage{Institutions: list})
}

func (h *Handler) renderForm(c *gin.Context, form *forms.DonationForm, errs forms.Errors) {
	ctx := c.Request.Context()
	institutions, err := h.catalog.ListByNameLength(ctx)
	if err != nil {
		h.logger.Error("list institutions", zap.Error(err))
		response.Internal(c)
		return
	}
	categories, err := h.catalog.ListCategories(ctx)
	if err != nil {
		h.logger.Error("list categories", zap.Error(err))
		response.Internal(c)
		return
	}
	if form == nil {
		form = &forms.DonationForm{}
	}
	response.HTML(c, http.StatusOK, "form.html", response.HeaderFormPage, FormPage{
		Institutions: institutions,
		Categories:   categories,
		Form:         form,
		Errors:       errs,
	})
}

// Submit handles POST /donate.
func (h *Handler) Submit(c *gin.Context) {
	user := response.CurrentUser(c)
	form, err := forms.BindDonation(c.Request)
	if err != nil {
		response.BadRequest(c)
		return
	}
	errs := form.Validate(h.now())
	if !errs.Any() {
		if err := h.checkReferences(c.Request.Context(), form, errs); err != nil {
			h.logger.Error("check donation references", zap.Error(err))
			response.Internal(c)
			return
		}
	}
	if errs.Any() {
		h.renderForm(c, form, errs)
		return
	}

	d := form.Donation(user.ID)
	if err := h.donations.Create(c.Request.Context(), &d); err != nil {
		h.logger.Error("create donation", zap.Error(err))
		response.Internal(c)
		return
	}
	h.logger.Info("donation created",
		zap.String("donation_id", d.ID.String()),
		zap.String("user_id", user.ID.String()),
		zap.Int("quantity", d.Quantity),
	)
	response.Redirect(c, routes.DonateConfirmation)
}

// checkReferences adds field errors when the chosen institution or categories do not exist.
func (h *Handler) checkReferences(ctx context.Context, form *forms.DonationForm, errs forms.Errors) error {
	_, err := h.catalog.GetByID(ctx, form.InstitutionID())
	switch {
	case errors.Is(err, models.ErrNotFound):
		errs.Add("institution", "Select a valid choice.")
	case err != nil:
		return err
	}
	ids := form.CategoryIDs()
	n, err := h.catalog.CountCategories(ctx, ids)
	if err != nil {
		return err
	}
	if n != len(ids) {
		errs.Add("categories", "Select a valid choice.")
	}
	return nil
}

// Confirmation handles GET /donate/confirmation.
func (h *Handler) Confirmation(c *gin.Context) {
	response.HTML(c, http.StatusOK, "form-confirmation.html", response.HeaderFormPage, nil)
}

// Profile handles GET /profile.
func (h *Handler) Profile(c *gin.Context) {
	user := response.CurrentUser(c)
	list, err := h.donations.ListByUser(c.Request.Context(), user.ID)
	if err != nil {
		h.logger.Error("list donations", zap.Error(err))
		response.Internal(c)
		return
	}
	response.HTML(c, http.StatusOK, "user_profile.html", response.HeaderFormPage, ProfilePage{User: user, Donations: list})
}

// MarkTaken handles GET and POST /donations/:id/taken.
// Donations that do not exist or belong to someone else are reported as not found.
func (h *Handler) MarkTaken(c *gin.Context) {
	user := response.CurrentUser(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c)
		return
	}
	err = h.donations.MarkTaken(c.Request.Context(), id, user.ID)
	if errors.Is(err, models.ErrNotFound) {
		response.NotFound(c)
		return
	}
	if err != nil {
		h.logger.Error("mark donation taken", zap.Error(err), zap.String("donation_id", id.String()))
		response.Internal(c)
		return
	}
	h.logger.Info("donation taken", zap.String("donation_id", id.String()), zap.String("user_id", user.ID.String()))
	response.Redirect(c, routes.Profile)
}
