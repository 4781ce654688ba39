package usecase

import (
	"context"
	"errors"

	"athlete-portal/internal/database"
	"athlete-portal/internal/database/seeder"
	"athlete-portal/internal/domain/user"
	"athlete-portal/internal/repository"
)

type SeedCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SeedResult struct {
	Message     string              `json:"message"`
	Credentials SeedCredentials     `json:"credentials"`
	User        ProfilePage         `json:"user"`
	Academy     *repository.Academy `json:"academy"`
}

type SeedUsecase interface {
	Seed(ctx context.Context) (SeedResult, error)
}

type Seed struct {
	db        database.DB
	users     user.Repository
	profiles  repository.ProfileRepository
	academies repository.AcademyRepository
	cache     ViewCache
}

func NewSeedUsecase(db database.DB, users user.Repository, profiles repository.ProfileRepository, academies repository.AcademyRepository, cache ViewCache) *Seed {
	return &Seed{db: db, users: users, profiles: profiles, academies: academies, cache: cache}
}

// Seed bootstraps the demo identity and sample academy. Every insert is keyed
// by a unique column, so invoking it repeatedly changes nothing.
func (u *Seed) Seed(ctx context.Context) (SeedResult, error) {
	if err := seeder.Default().Run(ctx, u.db); err != nil {
		return SeedResult{}, ErrInternal
	}

	usr, err := u.users.GetByEmail(ctx, seeder.DemoAthleteEmail)
	if err != nil {
		return SeedResult{}, ErrInternal
	}

	page := ProfilePage{UserID: usr.ID, Email: usr.Email, Name: usr.Name, Role: usr.Role}
	prof, err := u.profiles.GetByUserID(ctx, usr.ID)
	if err == nil {
		page.Profile = &prof
	} else if !errors.Is(err, repository.ErrProfileNotFound) {
		return SeedResult{}, ErrInternal
	}

	academies, err := u.academies.ListWithPrograms(ctx, academyListLimit)
	if err != nil {
		return SeedResult{}, ErrInternal
	}
	var academy *repository.Academy
	for i := range academies {
		if academies[i].Name == seeder.DemoAcademyName {
			academy = &academies[i]
			break
		}
	}

	if u.cache != nil {
		_ = u.cache.Delete(ctx, academiesViewKey, profileViewKey(usr.ID))
	}

	return SeedResult{
		Message: "Seeded demo athlete and sample academy/programs.",
		Credentials: SeedCredentials{
			Email:    seeder.DemoAthleteEmail,
			Password: seeder.DemoAthletePassword,
		},
		User:    page,
		Academy: academy,
	}, nil
}
