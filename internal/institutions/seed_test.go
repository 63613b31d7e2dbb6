package institutions

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oddam/donations/internal/models"
)

type memWriter struct {
	categories   []models.Category
	institutions []models.Institution
}

func (m *memWriter) EnsureCategory(_ context.Context, c *models.Category) error {
	for _, existing := range m.categories {
		if existing.Name == c.Name {
			c.ID = existing.ID
			return nil
		}
	}
	c.ID = uuid.New()
	m.categories = append(m.categories, *c)
	return nil
}

func (m *memWriter) Create(_ context.Context, inst *models.Institution) error {
	inst.ID = uuid.New()
	m.institutions = append(m.institutions, *inst)
	return nil
}

func TestSeed(t *testing.T) {
	w := &memWriter{}
	created, err := Seed(context.Background(), w, gofakeit.New(42), 4)
	require.NoError(t, err)

	assert.Len(t, w.categories, len(DefaultCategories))
	assert.Len(t, created, 12)

	perType := map[models.InstitutionType]int{}
	for _, inst := range created {
		perType[inst.Type]++
		assert.NotEmpty(t, inst.Name)
		assert.NotEmpty(t, inst.Categories)
		assert.LessOrEqual(t, len(inst.Categories), len(DefaultCategories))
	}
	for _, typ := range models.InstitutionTypes {
		assert.Equal(t, 4, perType[typ])
	}
}

func TestSeedTwiceReusesCategories(t *testing.T) {
	w := &memWriter{}
	_, err := Seed(context.Background(), w, gofakeit.New(1), 1)
	require.NoError(t, err)
	_, err = Seed(context.Background(), w, gofakeit.New(2), 1)
	require.NoError(t, err)

	assert.Len(t, w.categories, len(DefaultCategories))
	assert.Len(t, w.institutions, 2*len(models.InstitutionTypes))
	known := map[uuid.UUID]bool{}
	for _, c := range w.categories {
		known[c.ID] = true
	}
	for _, inst := range w.institutions {
		for _, c := range inst.Categories {
			assert.True(t, known[c.ID], c.Name)
		}
	}
}

func TestDistinct(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	assert.Equal(t, []uuid.UUID{a, b}, distinct([]uuid.UUID{a, b, a, b}))
	assert.Empty(t, distinct(nil))
}
