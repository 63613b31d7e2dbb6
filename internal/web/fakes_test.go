package web

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/oddam/donations/internal/models"
)

// memStore is an in-memory stand-in for the Postgres repositories.
type memStore struct {
	mu           sync.Mutex
	users        map[uuid.UUID]*models.User
	institutions []models.Institution
	categories   []models.Category
	donations    []models.Donation
}

func newMemStore() *memStore {
	return &memStore{users: map[uuid.UUID]*models.User{}}
}

func (s *memStore) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, models.ErrNotFound
}

func (s *memStore) GetByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, models.ErrNotFound
}

func (s *memStore) Create(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Username == u.Username {
			return models.ErrUsernameTaken
		}
	}
	u.ID = uuid.New()
	u.CreatedAt = time.Now()
	cp := *u
	s.users[u.ID] = &cp
	return nil
}

func (s *memStore) addCategory(name string) models.Category {
	c := models.Category{ID: uuid.New(), Name: name}
	s.categories = append(s.categories, c)
	return c
}

func (s *memStore) addInstitution(name string, t models.InstitutionType, cats ...models.Category) models.Institution {
	inst := models.Institution{ID: uuid.New(), Name: name, Description: "desc " + name, Type: t, Categories: cats}
	s.institutions = append(s.institutions, inst)
	return inst
}

// institution store

func (s *memStore) ListByType(_ context.Context, t models.InstitutionType) ([]models.Institution, error) {
	var out []models.Institution
	for _, inst := range s.institutions {
		if inst.Type == t {
			out = append(out, inst)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *memStore) Count(context.Context) (int64, error) {
	return int64(len(s.institutions)), nil
}

func (s *memStore) ListByNameLength(context.Context) ([]models.Institution, error) {
	out := append([]models.Institution(nil), s.institutions...)
	sort.SliceStable(out, func(i, j int) bool { return len(out[i].Name) > len(out[j].Name) })
	return out, nil
}

func (s *memStore) ListByAllCategories(_ context.Context, ids []uuid.UUID) ([]models.Institution, error) {
	var out []models.Institution
	for _, inst := range s.institutions {
		has := map[uuid.UUID]bool{}
		for _, c := range inst.Categories {
			has[c.ID] = true
		}
		all := true
		for _, id := range ids {
			all = all && has[id]
		}
		if all {
			out = append(out, inst)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *memStore) ListCategories(context.Context) ([]models.Category, error) {
	out := append([]models.Category(nil), s.categories...)
	sort.SliceStable(out, func(i, j int) bool { return len(out[i].Name) > len(out[j].Name) })
	return out, nil
}

func (s *memStore) GetInstitution(id uuid.UUID) (*models.Institution, error) {
	for _, inst := range s.institutions {
		if inst.ID == id {
			cp := inst
			return &cp, nil
		}
	}
	return nil, models.ErrNotFound
}

func (s *memStore) CountCategories(_ context.Context, ids []uuid.UUID) (int, error) {
	n := 0
	for _, c := range s.categories {
		for _, id := range ids {
			if c.ID == id {
				n++
				break
			}
		}
	}
	return n, nil
}

// donation store

func (s *memStore) CreateDonation(d *models.Donation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d.ID = uuid.New()
	d.IsTaken = false
	d.CreatedAt = time.Now()
	s.donations = append(s.donations, *d)
	return nil
}

func (s *memStore) SumQuantity(context.Context) (*int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.donations) == 0 {
		return nil, nil
	}
	var sum int64
	for _, d := range s.donations {
		sum += int64(d.Quantity)
	}
	return &sum, nil
}

func (s *memStore) ListByUser(_ context.Context, userID uuid.UUID) ([]models.DonationView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.DonationView
	for _, d := range s.donations {
		if d.UserID != userID {
			continue
		}
		v := models.DonationView{Donation: d}
		if inst, err := s.GetInstitution(d.InstitutionID); err == nil {
			v.InstitutionName = inst.Name
		}
		for _, c := range s.categories {
			for _, id := range d.CategoryIDs {
				if c.ID == id {
					v.CategoryNames = append(v.CategoryNames, c.Name)
				}
			}
		}
		out = append(out, v)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsTaken != out[j].IsTaken {
			return !out[i].IsTaken
		}
		return out[i].PickUpDate.Before(out[j].PickUpDate)
	})
	return out, nil
}

func (s *memStore) MarkTaken(_ context.Context, id, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.donations {
		if s.donations[i].ID == id && s.donations[i].UserID == userID {
			s.donations[i].IsTaken = true
			return nil
		}
	}
	return models.ErrNotFound
}

func (s *memStore) donation(id uuid.UUID) models.Donation {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.donations {
		if d.ID == id {
			return d
		}
	}
	return models.Donation{}
}

func (s *memStore) donationCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.donations)
}

// catalogView and donationView split the name clashes between the
// institution and donation sides of memStore.
type catalogView struct{ *memStore }

func (v catalogView) GetByID(_ context.Context, id uuid.UUID) (*models.Institution, error) {
	return v.GetInstitution(id)
}

type donationView struct{ *memStore }

func (v donationView) Create(_ context.Context, d *models.Donation) error {
	return v.CreateDonation(d)
}

func containsAll(body string, parts ...string) bool {
	for _, p := range parts {
		if !strings.Contains(body, p) {
			return false
		}
	}
	return true
}
