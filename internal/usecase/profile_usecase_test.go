package usecase

import (
	"context"
	"errors"
	"testing"

	"athlete-portal/internal/domain/user"
	"athlete-portal/internal/repository"

	"github.com/google/uuid"
)

func TestGetProfile_FirstVisitHasNoProfileRow(t *testing.T) {
	userID := uuid.New()
	users := &fakeUserRepo{byID: map[uuid.UUID]user.User{
		userID: {ID: userID, Email: "demo@athlete.com", Name: "Demo Athlete", Role: user.RoleAthlete},
	}}
	profiles := &fakeProfileRepo{}
	uc := NewProfileUsecase(users, profiles, newFakeViewCache())

	page, err := uc.GetProfile(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if page.UserID != userID || page.Email != "demo@athlete.com" {
		t.Fatalf("unexpected identity: %+v", page)
	}
	if page.Profile != nil {
		t.Fatalf("expected nil profile on first visit, got %+v", page.Profile)
	}
}

func TestGetProfile_UnknownUser(t *testing.T) {
	uc := NewProfileUsecase(&fakeUserRepo{}, &fakeProfileRepo{}, nil)
	if _, err := uc.GetProfile(context.Background(), uuid.New()); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestGetProfile_ServedFromCache(t *testing.T) {
	userID := uuid.New()
	cache := newFakeViewCache()
	cached := ProfilePage{UserID: userID, Email: "cached@athlete.com"}
	if err := cache.SetJSON(context.Background(), profileViewKey(userID), cached); err != nil {
		t.Fatalf("seed cache: %v", err)
	}

	// The user repo is empty: a hit must not reach the database.
	uc := NewProfileUsecase(&fakeUserRepo{}, &fakeProfileRepo{}, cache)
	page, err := uc.GetProfile(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if page.Email != "cached@athlete.com" {
		t.Fatalf("expected cached page, got %+v", page)
	}
}

func TestUpdateProfile_EmptyNameRejectedWithoutWrite(t *testing.T) {
	userID := uuid.New()
	users := &fakeUserRepo{byID: map[uuid.UUID]user.User{userID: {ID: userID}}}
	profiles := &fakeProfileRepo{}
	uc := NewProfileUsecase(users, profiles, newFakeViewCache())

	_, err := uc.UpdateProfile(context.Background(), userID, UpdateProfileInput{Name: "   "})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if profiles.upsertCalls != 0 {
		t.Fatalf("expected no write, got %d upserts", profiles.upsertCalls)
	}
}

func TestUpdateProfile_NormalizesFields(t *testing.T) {
	userID := uuid.New()
	users := &fakeUserRepo{byID: map[uuid.UUID]user.User{
		userID: {ID: userID, Email: "demo@athlete.com", Name: "Old Name", Role: user.RoleAthlete},
	}}
	profiles := &fakeProfileRepo{}
	cache := newFakeViewCache()
	uc := NewProfileUsecase(users, profiles, cache)

	page, err := uc.UpdateProfile(context.Background(), userID, UpdateProfileInput{
		Name:           "  Demo Athlete  ",
		Sport:          "Soccer",
		Positions:      "Forward, Midfielder, ,Winger",
		HeightCm:       "182.5",
		GraduationYear: "2027",
		Bio:            "",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if profiles.lastName != "Demo Athlete" {
		t.Fatalf("expected trimmed name, got %q", profiles.lastName)
	}

	p := page.Profile
	if p == nil {
		t.Fatalf("expected profile in page")
	}
	if got := p.Positions; len(got) != 3 || got[0] != "Forward" || got[1] != "Midfielder" || got[2] != "Winger" {
		t.Fatalf("unexpected positions: %v", got)
	}
	if p.HeightCm == nil || *p.HeightCm != 182.5 {
		t.Fatalf("unexpected heightCm: %v", p.HeightCm)
	}
	if p.GraduationYear == nil || *p.GraduationYear != 2027 {
		t.Fatalf("unexpected graduationYear: %v", p.GraduationYear)
	}
	if p.Bio != nil {
		t.Fatalf("expected empty bio to persist as nil, got %q", *p.Bio)
	}
}

func TestUpdateProfile_RejectsMalformedOptionals(t *testing.T) {
	userID := uuid.New()
	users := &fakeUserRepo{byID: map[uuid.UUID]user.User{userID: {ID: userID}}}

	cases := []struct {
		name  string
		input UpdateProfileInput
	}{
		{"non-numeric height", UpdateProfileInput{Name: "A", HeightCm: "tall"}},
		{"non-numeric year", UpdateProfileInput{Name: "A", GraduationYear: "soon"}},
		{"bad email", UpdateProfileInput{Name: "A", PrimaryEmail: "not-an-email"}},
		{"bad url scheme", UpdateProfileInput{Name: "A", WebsiteURL: "ftp://example.com"}},
		{"url without host", UpdateProfileInput{Name: "A", InstagramURL: "https://"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			profiles := &fakeProfileRepo{}
			uc := NewProfileUsecase(users, profiles, nil)
			if _, err := uc.UpdateProfile(context.Background(), userID, tc.input); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			if profiles.upsertCalls != 0 {
				t.Fatalf("expected no write")
			}
		})
	}
}

func TestUpdateProfile_InvalidatesCachedView(t *testing.T) {
	userID := uuid.New()
	users := &fakeUserRepo{byID: map[uuid.UUID]user.User{userID: {ID: userID, Email: "demo@athlete.com"}}}
	profiles := &fakeProfileRepo{byUserID: map[uuid.UUID]repository.AthleteProfile{
		userID: {ID: uuid.New(), UserID: userID},
	}}
	cache := newFakeViewCache()

	uc := NewProfileUsecase(users, profiles, cache)
	if _, err := uc.GetProfile(context.Background(), userID); err != nil {
		t.Fatalf("prime cache: %v", err)
	}
	if _, ok := cache.entries[profileViewKey(userID)]; !ok {
		t.Fatalf("expected view to be cached after read")
	}

	if _, err := uc.UpdateProfile(context.Background(), userID, UpdateProfileInput{Name: "Demo"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, ok := cache.entries[profileViewKey(userID)]; ok {
		t.Fatalf("expected cached view to be deleted after update")
	}
}
