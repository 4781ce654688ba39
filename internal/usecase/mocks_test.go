package usecase

import (
	"context"
	"encoding/json"

	"athlete-portal/internal/domain/user"
	"athlete-portal/internal/repository"

	"github.com/google/uuid"
)

// fakeViewCache is an in-memory ViewCache that records deleted keys so tests
// can assert view invalidation after writes.
type fakeViewCache struct {
	entries map[string][]byte
	deleted []string
}

func newFakeViewCache() *fakeViewCache {
	return &fakeViewCache{entries: map[string][]byte{}}
}

func (c *fakeViewCache) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	raw, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, err
	}
	return true, nil
}

func (c *fakeViewCache) SetJSON(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = raw
	return nil
}

func (c *fakeViewCache) Delete(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.entries, k)
		c.deleted = append(c.deleted, k)
	}
	return nil
}

type fakeUserRepo struct {
	byID map[uuid.UUID]user.User
	err  error
}

func (m *fakeUserRepo) Create(ctx context.Context, u user.User) error { return nil }

func (m *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	if m.err != nil {
		return user.User{}, m.err
	}
	u, ok := m.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range m.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := m.GetByEmail(ctx, email)
	if err != nil {
		return false, nil
	}
	return true, nil
}

type fakeProfileRepo struct {
	byUserID map[uuid.UUID]repository.AthleteProfile
	getErr   error

	upsertCalls int
	lastName    string
	upsertErr   error
}

func (m *fakeProfileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (repository.AthleteProfile, error) {
	if m.getErr != nil {
		return repository.AthleteProfile{}, m.getErr
	}
	p, ok := m.byUserID[userID]
	if !ok {
		return repository.AthleteProfile{}, repository.ErrProfileNotFound
	}
	return p, nil
}

func (m *fakeProfileRepo) UpsertWithUserName(ctx context.Context, userID uuid.UUID, name string, p repository.AthleteProfile) (repository.AthleteProfile, error) {
	m.upsertCalls++
	m.lastName = name
	if m.upsertErr != nil {
		return repository.AthleteProfile{}, m.upsertErr
	}
	existing, ok := m.byUserID[userID]
	if ok {
		p.ID = existing.ID
	} else {
		p.ID = uuid.New()
	}
	p.UserID = userID
	if m.byUserID == nil {
		m.byUserID = map[uuid.UUID]repository.AthleteProfile{}
	}
	m.byUserID[userID] = p
	return p, nil
}

type fakeStatRepo struct {
	items   []repository.Stat
	listErr error
}

func (m *fakeStatRepo) ListByProfileID(ctx context.Context, profileID uuid.UUID) ([]repository.Stat, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := []repository.Stat{}
	for _, s := range m.items {
		if s.ProfileID == profileID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *fakeStatRepo) Create(ctx context.Context, s repository.Stat) (repository.Stat, error) {
	s.ID = uuid.New()
	if s.Verification == "" {
		s.Verification = repository.VerificationUnverified
	}
	m.items = append(m.items, s)
	return s, nil
}

func (m *fakeStatRepo) Delete(ctx context.Context, id uuid.UUID, profileID uuid.UUID) error {
	for i, s := range m.items {
		if s.ID == id && s.ProfileID == profileID {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrStatNotFound
}

type fakeRecordingRepo struct {
	items []repository.Recording
}

func (m *fakeRecordingRepo) ListByProfileID(ctx context.Context, profileID uuid.UUID) ([]repository.Recording, error) {
	out := []repository.Recording{}
	for _, r := range m.items {
		if r.ProfileID == profileID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *fakeRecordingRepo) Create(ctx context.Context, r repository.Recording) (repository.Recording, error) {
	r.ID = uuid.New()
	m.items = append(m.items, r)
	return r, nil
}

func (m *fakeRecordingRepo) Delete(ctx context.Context, id uuid.UUID, profileID uuid.UUID) error {
	for i, r := range m.items {
		if r.ID == id && r.ProfileID == profileID {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrRecordingNotFound
}

type fakeApplicationRepo struct {
	items     []repository.Application
	createErr error
}

func (m *fakeApplicationRepo) ListByAthlete(ctx context.Context, athleteUserID uuid.UUID) ([]repository.Application, error) {
	out := []repository.Application{}
	for _, a := range m.items {
		if a.AthleteUserID == athleteUserID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *fakeApplicationRepo) Create(ctx context.Context, a repository.Application) (repository.Application, error) {
	if m.createErr != nil {
		return repository.Application{}, m.createErr
	}
	a.ID = uuid.New()
	a.Status = repository.ApplicationStatusSubmitted
	m.items = append(m.items, a)
	return a, nil
}

func (m *fakeApplicationRepo) Withdraw(ctx context.Context, id uuid.UUID, athleteUserID uuid.UUID) error {
	for i, a := range m.items {
		if a.ID == id && a.AthleteUserID == athleteUserID {
			m.items[i].Withdrawn = true
			return nil
		}
	}
	return repository.ErrApplicationNotFound
}

type fakeProgramRepo struct {
	programs []repository.Program
}

func (m *fakeProgramRepo) ListWithAcademy(ctx context.Context, limit int) ([]repository.Program, error) {
	if limit > len(m.programs) {
		limit = len(m.programs)
	}
	return m.programs[:limit], nil
}

func (m *fakeProgramRepo) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	for _, p := range m.programs {
		if p.ID == id {
			return true, nil
		}
	}
	return false, nil
}
