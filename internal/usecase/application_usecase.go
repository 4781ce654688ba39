package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"athlete-portal/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrProgramNotFound     = errors.New("program not found")
	ErrApplicationNotFound = errors.New("application not found")
)

const programListLimit = 100

// ApplicationsPage is the applications view: the athlete's submissions plus
// the program reference list the apply form selects from.
type ApplicationsPage struct {
	Applications []repository.Application `json:"applications"`
	Programs     []repository.Program     `json:"programs"`
}

type ApplicationUsecase interface {
	ListApplications(ctx context.Context, userID uuid.UUID) (ApplicationsPage, error)
	Apply(ctx context.Context, userID uuid.UUID, programID uuid.UUID) (repository.Application, error)
	Withdraw(ctx context.Context, userID uuid.UUID, applicationID uuid.UUID) error
}

type Application struct {
	applications repository.ApplicationRepository
	programs     repository.ProgramRepository
	cache        ViewCache

	now func() time.Time
}

func NewApplicationUsecase(applications repository.ApplicationRepository, programs repository.ProgramRepository, cache ViewCache) *Application {
	return &Application{applications: applications, programs: programs, cache: cache, now: time.Now}
}

func (u *Application) ListApplications(ctx context.Context, userID uuid.UUID) (ApplicationsPage, error) {
	key := applicationsViewKey(userID)
	if u.cache != nil {
		var cached ApplicationsPage
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	apps, err := u.applications.ListByAthlete(ctx, userID)
	if err != nil {
		return ApplicationsPage{}, ErrInternal
	}

	programs, err := u.programs.ListWithAcademy(ctx, programListLimit)
	if err != nil {
		return ApplicationsPage{}, ErrInternal
	}

	page := ApplicationsPage{Applications: apps, Programs: programs}
	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, page)
	}
	return page, nil
}

// Apply submits the athlete to a program. Duplicate submissions for the same
// program are allowed and create separate rows.
func (u *Application) Apply(ctx context.Context, userID uuid.UUID, programID uuid.UUID) (repository.Application, error) {
	if programID == uuid.Nil {
		return repository.Application{}, fmt.Errorf("%w: programId is required", ErrInvalidInput)
	}

	exists, err := u.programs.ExistsByID(ctx, programID)
	if err != nil {
		return repository.Application{}, ErrInternal
	}
	if !exists {
		return repository.Application{}, ErrProgramNotFound
	}

	saved, err := u.applications.Create(ctx, repository.Application{
		AthleteUserID: userID,
		ProgramID:     programID,
		SubmittedAt:   u.now().UTC(),
	})
	if err != nil {
		return repository.Application{}, ErrInternal
	}

	if u.cache != nil {
		_ = u.cache.Delete(ctx, applicationsViewKey(userID))
	}
	return saved, nil
}

func (u *Application) Withdraw(ctx context.Context, userID uuid.UUID, applicationID uuid.UUID) error {
	if err := u.applications.Withdraw(ctx, applicationID, userID); err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return ErrApplicationNotFound
		}
		return ErrInternal
	}

	if u.cache != nil {
		_ = u.cache.Delete(ctx, applicationsViewKey(userID))
	}
	return nil
}
