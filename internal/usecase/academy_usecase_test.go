package usecase

import (
	"context"
	"testing"

	"athlete-portal/internal/repository"

	"github.com/google/uuid"
)

type fakeAcademyRepo struct {
	items []repository.Academy
	calls int
}

func (m *fakeAcademyRepo) ListWithPrograms(ctx context.Context, limit int) ([]repository.Academy, error) {
	m.calls++
	return m.items, nil
}

func TestListAcademies_SharedCachedView(t *testing.T) {
	repo := &fakeAcademyRepo{items: []repository.Academy{
		{ID: uuid.New(), Name: "Peak Performance Academy", Programs: []repository.Program{
			{ID: uuid.New(), Name: "U18 Soccer", Sport: "Soccer"},
		}},
	}}
	cache := newFakeViewCache()
	uc := NewAcademyUsecase(repo, cache)

	first, err := uc.ListAcademies(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(first) != 1 || first[0].Name != "Peak Performance Academy" {
		t.Fatalf("unexpected academies: %v", first)
	}

	second, err := uc.ListAcademies(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(second) != 1 {
		t.Fatalf("unexpected cached academies: %v", second)
	}
	if repo.calls != 1 {
		t.Fatalf("expected second read served from cache, repo calls=%d", repo.calls)
	}
	if len(second[0].Programs) != 1 || second[0].Programs[0].Name != "U18 Soccer" {
		t.Fatalf("expected programs to survive the cache round trip: %v", second[0].Programs)
	}
}
