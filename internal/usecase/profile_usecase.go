package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"strconv"
	"strings"

	"athlete-portal/internal/domain/user"
	"athlete-portal/internal/repository"

	"github.com/google/uuid"
)

// UpdateProfileInput carries the raw form fields. Everything arrives as
// strings the way a form posts them; normalization (trim, numeric coercion,
// empty-string-to-null, comma splitting) happens here, never in the handler.
type UpdateProfileInput struct {
	Name           string
	Sport          string
	Positions      string
	Bio            string
	HeightCm       string
	WeightKg       string
	GraduationYear string
	Location       string
	PrimaryEmail   string
	Phone          string
	WebsiteURL     string
	InstagramURL   string
	YouTubeURL     string
}

type ProfilePage struct {
	UserID  uuid.UUID                  `json:"user_id"`
	Email   string                     `json:"email"`
	Name    string                     `json:"name"`
	Role    user.Role                  `json:"role"`
	Profile *repository.AthleteProfile `json:"profile"`
}

type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (ProfilePage, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (ProfilePage, error)
}

type Profile struct {
	users    user.Repository
	profiles repository.ProfileRepository
	cache    ViewCache
}

func NewProfileUsecase(users user.Repository, profiles repository.ProfileRepository, cache ViewCache) *Profile {
	return &Profile{users: users, profiles: profiles, cache: cache}
}

func (u *Profile) GetProfile(ctx context.Context, userID uuid.UUID) (ProfilePage, error) {
	key := profileViewKey(userID)
	if u.cache != nil {
		var cached ProfilePage
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return ProfilePage{}, ErrUnauthorized
		}
		return ProfilePage{}, ErrInternal
	}

	page := ProfilePage{UserID: usr.ID, Email: usr.Email, Name: usr.Name, Role: usr.Role}

	prof, err := u.profiles.GetByUserID(ctx, userID)
	switch {
	case err == nil:
		page.Profile = &prof
	case errors.Is(err, repository.ErrProfileNotFound):
		// First visit: the form renders empty and the row is created on save.
	default:
		return ProfilePage{}, ErrInternal
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, page)
	}
	return page, nil
}

func (u *Profile) UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (ProfilePage, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || len(name) > 100 {
		return ProfilePage{}, fmt.Errorf("%w: name must be 1-100 characters", ErrInvalidInput)
	}

	sport, err := optionalText(in.Sport, 100, "sport")
	if err != nil {
		return ProfilePage{}, err
	}
	bio, err := optionalText(in.Bio, 2000, "bio")
	if err != nil {
		return ProfilePage{}, err
	}
	location, err := optionalText(in.Location, 200, "location")
	if err != nil {
		return ProfilePage{}, err
	}
	phone, err := optionalText(in.Phone, 50, "phone")
	if err != nil {
		return ProfilePage{}, err
	}

	heightCm, err := optionalNumber(in.HeightCm, "heightCm")
	if err != nil {
		return ProfilePage{}, err
	}
	weightKg, err := optionalNumber(in.WeightKg, "weightKg")
	if err != nil {
		return ProfilePage{}, err
	}
	gradYear, err := optionalYear(in.GraduationYear, "graduationYear")
	if err != nil {
		return ProfilePage{}, err
	}

	primaryEmail, err := optionalEmail(in.PrimaryEmail, "primaryEmail")
	if err != nil {
		return ProfilePage{}, err
	}
	websiteURL, err := optionalURL(in.WebsiteURL, "websiteUrl")
	if err != nil {
		return ProfilePage{}, err
	}
	instagramURL, err := optionalURL(in.InstagramURL, "instagramUrl")
	if err != nil {
		return ProfilePage{}, err
	}
	youtubeURL, err := optionalURL(in.YouTubeURL, "youtubeUrl")
	if err != nil {
		return ProfilePage{}, err
	}

	p := repository.AthleteProfile{
		UserID:         userID,
		Sport:          sport,
		Positions:      splitPositions(in.Positions),
		Bio:            bio,
		HeightCm:       heightCm,
		WeightKg:       weightKg,
		GraduationYear: gradYear,
		Location:       location,
		PrimaryEmail:   primaryEmail,
		Phone:          phone,
		WebsiteURL:     websiteURL,
		InstagramURL:   instagramURL,
		YouTubeURL:     youtubeURL,
	}

	saved, err := u.profiles.UpsertWithUserName(ctx, userID, name, p)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return ProfilePage{}, ErrUnauthorized
		}
		return ProfilePage{}, ErrInternal
	}

	if u.cache != nil {
		_ = u.cache.Delete(ctx, profileViewKey(userID))
	}

	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return ProfilePage{}, ErrInternal
	}
	return ProfilePage{UserID: usr.ID, Email: usr.Email, Name: usr.Name, Role: usr.Role, Profile: &saved}, nil
}

func splitPositions(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func optionalText(raw string, maxLen int, field string) (*string, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return nil, nil
	}
	if len(v) > maxLen {
		return nil, fmt.Errorf("%w: %s exceeds %d characters", ErrInvalidInput, field, maxLen)
	}
	return &v, nil
}

func optionalNumber(raw string, field string) (*float64, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s is not a number", ErrInvalidInput, field)
	}
	return &n, nil
}

func optionalYear(raw string, field string) (*int, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %s is not a number", ErrInvalidInput, field)
	}
	return &n, nil
}

func optionalEmail(raw string, field string) (*string, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return nil, nil
	}
	if _, err := mail.ParseAddress(v); err != nil {
		return nil, fmt.Errorf("%w: %s is not a valid email", ErrInvalidInput, field)
	}
	return &v, nil
}

func optionalURL(raw string, field string) (*string, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return nil, nil
	}
	parsed, err := url.Parse(v)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return nil, fmt.Errorf("%w: %s is not a valid URL", ErrInvalidInput, field)
	}
	return &v, nil
}
