package usecase

import (
	"context"
	"errors"
	"testing"

	"athlete-portal/internal/repository"

	"github.com/google/uuid"
)

func TestAddRecording_RequiresTitleAndURL(t *testing.T) {
	userID, _, profiles := statFixtures()
	uc := NewRecordingUsecase(profiles, &fakeRecordingRepo{}, nil)

	cases := []struct {
		name  string
		input AddRecordingInput
	}{
		{"missing title", AddRecordingInput{URL: "https://youtube.com/watch?v=abc"}},
		{"missing url", AddRecordingInput{Title: "Season highlights"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := uc.AddRecording(context.Background(), userID, tc.input); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestAddRecording_Success(t *testing.T) {
	userID, profileID, profiles := statFixtures()
	recordings := &fakeRecordingRepo{}
	cache := newFakeViewCache()
	uc := NewRecordingUsecase(profiles, recordings, cache)

	saved, err := uc.AddRecording(context.Background(), userID, AddRecordingInput{
		Title:       "  Season highlights  ",
		URL:         "https://youtube.com/watch?v=abc",
		Description: "",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if saved.ProfileID != profileID {
		t.Fatalf("expected recording keyed to own profile")
	}
	if saved.Title != "Season highlights" {
		t.Fatalf("expected trimmed title, got %q", saved.Title)
	}
	if saved.Description != nil {
		t.Fatalf("expected empty description to persist as nil")
	}
	if len(cache.deleted) == 0 || cache.deleted[0] != recordingsViewKey(userID) {
		t.Fatalf("expected recordings view invalidated, deleted=%v", cache.deleted)
	}
}

func TestDeleteRecording_ScopedToOwnProfile(t *testing.T) {
	userID, profileID, profiles := statFixtures()
	foreign := repository.Recording{ID: uuid.New(), ProfileID: uuid.New(), Title: "theirs"}
	own := repository.Recording{ID: uuid.New(), ProfileID: profileID, Title: "mine"}
	recordings := &fakeRecordingRepo{items: []repository.Recording{foreign, own}}
	uc := NewRecordingUsecase(profiles, recordings, nil)

	if err := uc.DeleteRecording(context.Background(), userID, foreign.ID); !errors.Is(err, ErrRecordingNotFound) {
		t.Fatalf("expected ErrRecordingNotFound, got %v", err)
	}
	if err := uc.DeleteRecording(context.Background(), userID, own.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(recordings.items) != 1 || recordings.items[0].ID != foreign.ID {
		t.Fatalf("expected only own recording removed")
	}
}
