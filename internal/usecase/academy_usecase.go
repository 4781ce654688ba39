package usecase

import (
	"context"

	"athlete-portal/internal/repository"
)

const academyListLimit = 50

type AcademyUsecase interface {
	ListAcademies(ctx context.Context) ([]repository.Academy, error)
}

type Academy struct {
	academies repository.AcademyRepository
	cache     ViewCache
}

func NewAcademyUsecase(academies repository.AcademyRepository, cache ViewCache) *Academy {
	return &Academy{academies: academies, cache: cache}
}

func (u *Academy) ListAcademies(ctx context.Context) ([]repository.Academy, error) {
	if u.cache != nil {
		var cached []repository.Academy
		if hit, err := u.cache.GetJSON(ctx, academiesViewKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	items, err := u.academies.ListWithPrograms(ctx, academyListLimit)
	if err != nil {
		return nil, ErrInternal
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, academiesViewKey, items)
	}
	return items, nil
}
