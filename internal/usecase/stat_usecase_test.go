package usecase

import (
	"context"
	"errors"
	"testing"

	"athlete-portal/internal/repository"

	"github.com/google/uuid"
)

func statFixtures() (uuid.UUID, uuid.UUID, *fakeProfileRepo) {
	userID := uuid.New()
	profileID := uuid.New()
	profiles := &fakeProfileRepo{byUserID: map[uuid.UUID]repository.AthleteProfile{
		userID: {ID: profileID, UserID: userID},
	}}
	return userID, profileID, profiles
}

func TestListStats_NoProfileReturnsEmpty(t *testing.T) {
	uc := NewStatUsecase(&fakeProfileRepo{}, &fakeStatRepo{}, nil)

	items, err := uc.ListStats(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("expected empty slice, got %v", items)
	}
}

func TestAddStat_NumericValue(t *testing.T) {
	userID, profileID, profiles := statFixtures()
	stats := &fakeStatRepo{}
	cache := newFakeViewCache()
	uc := NewStatUsecase(profiles, stats, cache)

	saved, err := uc.AddStat(context.Background(), userID, AddStatInput{
		Name:        "40m sprint",
		Unit:        "s",
		ValueNumber: "4.8",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if saved.ProfileID != profileID {
		t.Fatalf("expected stat keyed to own profile")
	}
	if saved.Category != defaultStatCategory {
		t.Fatalf("expected default category, got %q", saved.Category)
	}
	if saved.ValueNumber == nil || *saved.ValueNumber != 4.8 {
		t.Fatalf("unexpected valueNumber: %v", saved.ValueNumber)
	}
	if saved.Verification != repository.VerificationUnverified {
		t.Fatalf("expected new stat unverified, got %q", saved.Verification)
	}
}

func TestAddStat_StringOnlyValue(t *testing.T) {
	userID, _, profiles := statFixtures()
	uc := NewStatUsecase(profiles, &fakeStatRepo{}, nil)

	saved, err := uc.AddStat(context.Background(), userID, AddStatInput{
		Category:    "Awards",
		Name:        "League MVP",
		ValueString: "2025 season",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if saved.ValueNumber != nil {
		t.Fatalf("expected nil valueNumber")
	}
	if saved.ValueString == nil || *saved.ValueString != "2025 season" {
		t.Fatalf("unexpected valueString: %v", saved.ValueString)
	}
}

func TestAddStat_Validation(t *testing.T) {
	userID, _, profiles := statFixtures()
	uc := NewStatUsecase(profiles, &fakeStatRepo{}, nil)

	cases := []struct {
		name  string
		input AddStatInput
	}{
		{"missing name", AddStatInput{ValueNumber: "10"}},
		{"no value at all", AddStatInput{Name: "Bench press"}},
		{"non-numeric value", AddStatInput{Name: "Bench press", ValueNumber: "heavy"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := uc.AddStat(context.Background(), userID, tc.input); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestAddStat_NoProfile(t *testing.T) {
	uc := NewStatUsecase(&fakeProfileRepo{}, &fakeStatRepo{}, nil)
	_, err := uc.AddStat(context.Background(), uuid.New(), AddStatInput{Name: "x", ValueNumber: "1"})
	if !errors.Is(err, ErrNoAthleteProfile) {
		t.Fatalf("expected ErrNoAthleteProfile, got %v", err)
	}
}

func TestDeleteStat_ScopedToOwnProfile(t *testing.T) {
	userID, profileID, profiles := statFixtures()
	otherStat := repository.Stat{ID: uuid.New(), ProfileID: uuid.New(), Name: "theirs"}
	ownStat := repository.Stat{ID: uuid.New(), ProfileID: profileID, Name: "mine"}
	stats := &fakeStatRepo{items: []repository.Stat{otherStat, ownStat}}
	cache := newFakeViewCache()
	uc := NewStatUsecase(profiles, stats, cache)

	// Deleting another athlete's stat id reads as not found.
	if err := uc.DeleteStat(context.Background(), userID, otherStat.ID); !errors.Is(err, ErrStatNotFound) {
		t.Fatalf("expected ErrStatNotFound, got %v", err)
	}
	if len(stats.items) != 2 {
		t.Fatalf("expected no rows removed")
	}

	if err := uc.DeleteStat(context.Background(), userID, ownStat.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(stats.items) != 1 || stats.items[0].ID != otherStat.ID {
		t.Fatalf("expected only own stat removed")
	}
	if len(cache.deleted) == 0 || cache.deleted[len(cache.deleted)-1] != statsViewKey(userID) {
		t.Fatalf("expected stats view invalidated, deleted=%v", cache.deleted)
	}
}
