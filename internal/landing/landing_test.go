package landing

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oddam/donations/internal/models"
	"github.com/oddam/donations/internal/web/templates"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestSampleDistinctAndBounded(t *testing.T) {
	s := NewSampler(7)
	list := []int{1, 2, 3, 4, 5, 6, 7}

	for i := 0; i < 50; i++ {
		got := Sample(s, list, 3)
		require.Len(t, got, 3)
		seen := map[int]bool{}
		for _, v := range got {
			assert.Contains(t, list, v)
			assert.False(t, seen[v], "duplicate %d", v)
			seen[v] = true
		}
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, list)
}

func TestSampleShortList(t *testing.T) {
	s := NewSampler(7)
	assert.ElementsMatch(t, []string{"a", "b"}, Sample(s, []string{"a", "b"}, 3))
	assert.Empty(t, Sample(s, []string(nil), 3))
}

func TestSampleCoversEveryElement(t *testing.T) {
	s := NewSampler(11)
	list := []int{0, 1, 2, 3, 4}
	hits := make([]int, len(list))
	for i := 0; i < 1000; i++ {
		for _, v := range Sample(s, list, 3) {
			hits[v]++
		}
	}
	for v, n := range hits {
		// expected 600 each
		assert.InDelta(t, 600, n, 150, "element %d", v)
	}
}

type fakeInstitutions struct {
	byType   map[models.InstitutionType][]models.Institution
	countErr error
}

func (f fakeInstitutions) ListByType(_ context.Context, t models.InstitutionType) ([]models.Institution, error) {
	return f.byType[t], nil
}

func (f fakeInstitutions) Count(context.Context) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	var n int64
	for _, l := range f.byType {
		n += int64(len(l))
	}
	return n, nil
}

type fakeDonations struct {
	sum *int64
	err error
}

func (f fakeDonations) SumQuantity(context.Context) (*int64, error) {
	return f.sum, f.err
}

func institutions(n int, t models.InstitutionType) []models.Institution {
	out := make([]models.Institution, n)
	for i := range out {
		out[i] = models.Institution{ID: uuid.New(), Name: gofakeit.Company(), Type: t}
	}
	return out
}

func TestBuild(t *testing.T) {
	inst := fakeInstitutions{byType: map[models.InstitutionType][]models.Institution{
		models.InstitutionFoundation: institutions(5, models.InstitutionFoundation),
		models.InstitutionNonGovOrg:  institutions(1, models.InstitutionNonGovOrg),
	}}
	sum := int64(42)
	h := NewHandler(inst, fakeDonations{sum: &sum}, NewSampler(3), nil)

	view, err := h.build(context.Background())
	require.NoError(t, err)
	assert.Len(t, view.Foundations, 3)
	assert.Len(t, view.NonGovOrganizations, 1)
	assert.Empty(t, view.FundRaisers)
	require.NotNil(t, view.DonationsQuantity)
	assert.EqualValues(t, 42, *view.DonationsQuantity)
	require.NotNil(t, view.Institutions)
	assert.EqualValues(t, 6, *view.Institutions)
}

func TestBuildSamplesEachTypeFromItsOwnList(t *testing.T) {
	byType := map[models.InstitutionType][]models.Institution{
		models.InstitutionFoundation: institutions(6, models.InstitutionFoundation),
		models.InstitutionNonGovOrg:  institutions(3, models.InstitutionNonGovOrg),
		models.InstitutionFundraiser: institutions(4, models.InstitutionFundraiser),
	}
	h := NewHandler(fakeInstitutions{byType: byType}, fakeDonations{}, NewSampler(5), nil)

	for i := 0; i < 20; i++ {
		view, err := h.build(context.Background())
		require.NoError(t, err)
		for typ, got := range map[models.InstitutionType][]models.Institution{
			models.InstitutionFoundation: view.Foundations,
			models.InstitutionNonGovOrg:  view.NonGovOrganizations,
			models.InstitutionFundraiser: view.FundRaisers,
		} {
			require.Len(t, got, PerType, typ.String())
			seen := map[uuid.UUID]bool{}
			for _, inst := range got {
				assert.Equal(t, typ, inst.Type)
				assert.Contains(t, byType[typ], inst)
				assert.False(t, seen[inst.ID], "duplicate %s", inst.ID)
				seen[inst.ID] = true
			}
		}
	}
}

func TestBuildNoDonations(t *testing.T) {
	h := NewHandler(fakeInstitutions{}, fakeDonations{}, nil, nil)

	view, err := h.build(context.Background())
	require.NoError(t, err)
	assert.Nil(t, view.DonationsQuantity)
	require.NotNil(t, view.Institutions)
	assert.EqualValues(t, 0, *view.Institutions)
}

func TestBuildTotalsNotFound(t *testing.T) {
	h := NewHandler(fakeInstitutions{countErr: models.ErrNotFound}, fakeDonations{}, nil, nil)

	view, err := h.build(context.Background())
	require.NoError(t, err)
	assert.Nil(t, view.DonationsQuantity)
	assert.Nil(t, view.Institutions)
}

func TestIndexRendersErrorPage(t *testing.T) {
	tmpl, err := templates.Parse()
	require.NoError(t, err)
	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	h := NewHandler(fakeInstitutions{}, fakeDonations{err: errors.New("connection refused")}, nil, nil)
	r.GET("/", h.Index)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Coś poszło nie tak")
}
