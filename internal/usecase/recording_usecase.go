package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"athlete-portal/internal/repository"

	"github.com/google/uuid"
)

var ErrRecordingNotFound = errors.New("recording not found")

type AddRecordingInput struct {
	Title       string
	URL         string
	Description string
}

type RecordingUsecase interface {
	ListRecordings(ctx context.Context, userID uuid.UUID) ([]repository.Recording, error)
	AddRecording(ctx context.Context, userID uuid.UUID, in AddRecordingInput) (repository.Recording, error)
	DeleteRecording(ctx context.Context, userID uuid.UUID, recordingID uuid.UUID) error
}

type RecordingUC struct {
	profiles   repository.ProfileRepository
	recordings repository.RecordingRepository
	cache      ViewCache
}

func NewRecordingUsecase(profiles repository.ProfileRepository, recordings repository.RecordingRepository, cache ViewCache) *RecordingUC {
	return &RecordingUC{profiles: profiles, recordings: recordings, cache: cache}
}

func (u *RecordingUC) ListRecordings(ctx context.Context, userID uuid.UUID) ([]repository.Recording, error) {
	key := recordingsViewKey(userID)
	if u.cache != nil {
		var cached []repository.Recording
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	profileID, err := u.ownProfileID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNoAthleteProfile) {
			return []repository.Recording{}, nil
		}
		return nil, err
	}

	items, err := u.recordings.ListByProfileID(ctx, profileID)
	if err != nil {
		return nil, ErrInternal
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, items)
	}
	return items, nil
}

func (u *RecordingUC) AddRecording(ctx context.Context, userID uuid.UUID, in AddRecordingInput) (repository.Recording, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return repository.Recording{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	rawURL := strings.TrimSpace(in.URL)
	if rawURL == "" {
		return repository.Recording{}, fmt.Errorf("%w: url is required", ErrInvalidInput)
	}

	var description *string
	if v := strings.TrimSpace(in.Description); v != "" {
		description = &v
	}

	profileID, err := u.ownProfileID(ctx, userID)
	if err != nil {
		return repository.Recording{}, err
	}

	saved, err := u.recordings.Create(ctx, repository.Recording{
		ProfileID:   profileID,
		Title:       title,
		URL:         rawURL,
		Description: description,
	})
	if err != nil {
		return repository.Recording{}, ErrInternal
	}

	if u.cache != nil {
		_ = u.cache.Delete(ctx, recordingsViewKey(userID))
	}
	return saved, nil
}

func (u *RecordingUC) DeleteRecording(ctx context.Context, userID uuid.UUID, recordingID uuid.UUID) error {
	profileID, err := u.ownProfileID(ctx, userID)
	if err != nil {
		return err
	}

	if err := u.recordings.Delete(ctx, recordingID, profileID); err != nil {
		if errors.Is(err, repository.ErrRecordingNotFound) {
			return ErrRecordingNotFound
		}
		return ErrInternal
	}

	if u.cache != nil {
		_ = u.cache.Delete(ctx, recordingsViewKey(userID))
	}
	return nil
}

func (u *RecordingUC) ownProfileID(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	prof, err := u.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return uuid.Nil, ErrNoAthleteProfile
		}
		return uuid.Nil, ErrInternal
	}
	return prof.ID, nil
}
