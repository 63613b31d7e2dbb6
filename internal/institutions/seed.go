package institutions

import (
	"context"
	"fmt"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/oddam/donations/internal/models"
)

// DefaultCategories are the goods the service collects.
var DefaultCategories = []string{
	"ubrania, które nadają się do ponownego użycia",
	"ubrania do wyrzucenia",
	"zabawki",
	"książki",
	"inne",
}

var typePrefix = map[models.InstitutionType]string{
	models.InstitutionFoundation: "Fundacja",
	models.InstitutionNonGovOrg:  "Organizacja",
	models.InstitutionFundraiser: "Zbiórka",
}

// Writer is the persistence Seed needs.
type Writer interface {
	EnsureCategory(ctx context.Context, c *models.Category) error
	Create(ctx context.Context, inst *models.Institution) error
}

// Seed ensures DefaultCategories exist and inserts perType fake institutions of every type,
// each accepting a random non-empty subset of the categories.
func Seed(ctx context.Context, w Writer, faker *gofakeit.Faker, perType int) ([]models.Institution, error) {
	cats := make([]models.Category, 0, len(DefaultCategories))
	for _, name := range DefaultCategories {
		c := models.Category{Name: name}
		if err := w.EnsureCategory(ctx, &c); err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}

	var created []models.Institution
	for _, t := range models.InstitutionTypes {
		for i := 0; i < perType; i++ {
			inst := models.Institution{
				Name:        fmt.Sprintf("%s „%s”", typePrefix[t], faker.Company()),
				Description: faker.Sentence(8),
				Type:        t,
				Categories:  pickCategories(faker, cats),
			}
			if err := w.Create(ctx, &inst); err != nil {
				return nil, err
			}
			created = append(created, inst)
		}
	}
	return created, nil
}

func pickCategories(faker *gofakeit.Faker, cats []models.Category) []models.Category {
	shuffled := append([]models.Category(nil), cats...)
	faker.ShuffleAnySlice(shuffled)
	return shuffled[:faker.IntRange(1, len(shuffled))]
}
