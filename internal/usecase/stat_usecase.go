package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"athlete-portal/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrStatNotFound     = errors.New("stat not found")
	ErrNoAthleteProfile = errors.New("no athlete profile")
)

const defaultStatCategory = "General"

type AddStatInput struct {
	Category    string
	Name        string
	Unit        string
	ValueNumber string
	ValueString string
}

type StatUsecase interface {
	ListStats(ctx context.Context, userID uuid.UUID) ([]repository.Stat, error)
	AddStat(ctx context.Context, userID uuid.UUID, in AddStatInput) (repository.Stat, error)
	DeleteStat(ctx context.Context, userID uuid.UUID, statID uuid.UUID) error
}

type Stat struct {
	profiles repository.ProfileRepository
	stats    repository.StatRepository
	cache    ViewCache
}

func NewStatUsecase(profiles repository.ProfileRepository, stats repository.StatRepository, cache ViewCache) *Stat {
	return &Stat{profiles: profiles, stats: stats, cache: cache}
}

func (u *Stat) ListStats(ctx context.Context, userID uuid.UUID) ([]repository.Stat, error) {
	key := statsViewKey(userID)
	if u.cache != nil {
		var cached []repository.Stat
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	profileID, err := u.ownProfileID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNoAthleteProfile) {
			return []repository.Stat{}, nil
		}
		return nil, err
	}

	items, err := u.stats.ListByProfileID(ctx, profileID)
	if err != nil {
		return nil, ErrInternal
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, items)
	}
	return items, nil
}

func (u *Stat) AddStat(ctx context.Context, userID uuid.UUID, in AddStatInput) (repository.Stat, error) {
	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = defaultStatCategory
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return repository.Stat{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	var unit *string
	if v := strings.TrimSpace(in.Unit); v != "" {
		unit = &v
	}

	var valueNumber *float64
	if v := strings.TrimSpace(in.ValueNumber); v != "" {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return repository.Stat{}, fmt.Errorf("%w: valueNumber is not a number", ErrInvalidInput)
		}
		valueNumber = &n
	}

	var valueString *string
	if v := strings.TrimSpace(in.ValueString); v != "" {
		valueString = &v
	}

	if valueNumber == nil && valueString == nil {
		return repository.Stat{}, fmt.Errorf("%w: a numeric or string value is required", ErrInvalidInput)
	}

	profileID, err := u.ownProfileID(ctx, userID)
	if err != nil {
		return repository.Stat{}, err
	}

	saved, err := u.stats.Create(ctx, repository.Stat{
		ProfileID:   profileID,
		Category:    category,
		Name:        name,
		Unit:        unit,
		ValueNumber: valueNumber,
		ValueString: valueString,
	})
	if err != nil {
		return repository.Stat{}, ErrInternal
	}

	if u.cache != nil {
		_ = u.cache.Delete(ctx, statsViewKey(userID))
	}
	return saved, nil
}

func (u *Stat) DeleteStat(ctx context.Context, userID uuid.UUID, statID uuid.UUID) error {
	profileID, err := u.ownProfileID(ctx, userID)
	if err != nil {
		return err
	}

	if err := u.stats.Delete(ctx, statID, profileID); err != nil {
		if errors.Is(err, repository.ErrStatNotFound) {
			return ErrStatNotFound
		}
		return ErrInternal
	}

	if u.cache != nil {
		_ = u.cache.Delete(ctx, statsViewKey(userID))
	}
	return nil
}

// ownProfileID resolves the requesting identity's profile. Every stat
// operation is keyed through it, so a request can never touch another
// athlete's rows.
func (u *Stat) ownProfileID(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	prof, err := u.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return uuid.Nil, ErrNoAthleteProfile
		}
		return uuid.Nil, ErrInternal
	}
	return prof.ID, nil
}
