package service

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"event-experience/internal/model"
	"event-experience/internal/repository"
	apperrors "event-experience/pkg/app_errors"
)

type OrganizerProfileService interface {
	GetByUserID(ctx context.Context, userID int) (*model.OrganizerProfile, error)
	Create(ctx context.Context, profile *model.OrganizerProfile) (*model.OrganizerProfile, error)

	// Upsert updates the profile in place, creating it when the organizer has
	// none yet.
	Upsert(ctx context.Context, userID int, params model.UpdateOrganizerProfileParams) (*model.OrganizerProfile, error)
	Delete(ctx context.Context, userID int) (bool, error)
}

type OrganizerProfileServiceImpl struct {
	repo     repository.OrganizerProfileRepository
	userRepo repository.UserRepository
}

func NewOrganizerProfileService(repo repository.OrganizerProfileRepository, userRepo repository.UserRepository) OrganizerProfileService {
	return &OrganizerProfileServiceImpl{
		repo:     repo,
		userRepo: userRepo,
	}
}

func (s *OrganizerProfileServiceImpl) GetByUserID(ctx context.Context, userID int) (*model.OrganizerProfile, error) {
	return s.repo.FindByUserID(ctx, userID)
}

func (s *OrganizerProfileServiceImpl) Create(ctx context.Context, profile *model.OrganizerProfile) (*model.OrganizerProfile, error) {
	if err := validateProfile(model.UpdateOrganizerProfileParams{
		DisplayName:    profile.DisplayName,
		ProfilePicture: profile.ProfilePicture,
		Phone:          profile.Phone,
		Bio:            profile.Bio,
	}); err != nil {
		return nil, err
	}

	// a second profile for the same organizer is rejected, not overwritten
	if _, err := s.userRepo.FindByID(ctx, profile.UserID); err != nil {
		return nil, err
	}
	_, err := s.repo.FindByUserID(ctx, profile.UserID)
	switch {
	case err == nil:
		return nil, apperrors.ErrProfileAlreadyExists
	case errors.Is(err, apperrors.ErrOrganizerProfileNotFound):
	default:
		return nil, err
	}

	return s.repo.Create(ctx, profile)
}

func (s *OrganizerProfileServiceImpl) Upsert(ctx context.Context, userID int, params model.UpdateOrganizerProfileParams) (*model.OrganizerProfile, error) {
	if err := validateProfile(params); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, userID, params)
	if err == nil {
		return updated, nil
	}
	if !errors.Is(err, apperrors.ErrOrganizerProfileNotFound) {
		return nil, err
	}

	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, &model.OrganizerProfile{
		UserID:         userID,
		DisplayName:    params.DisplayName,
		ProfilePicture: params.ProfilePicture,
		Phone:          params.Phone,
		Bio:            params.Bio,
	})
}

func (s *OrganizerProfileServiceImpl) Delete(ctx context.Context, userID int) (bool, error) {
	return s.repo.Delete(ctx, userID)
}

// validateProfile enforces the field constraints: display name 2-80 chars,
// phone digits (separators allowed), bio at most 500 chars, picture an http(s)
// URL or an uploads path. Absent fields pass.
func validateProfile(params model.UpdateOrganizerProfileParams) error {
	if params.DisplayName != nil && *params.DisplayName != "" {
		if n := len(*params.DisplayName); n < 2 || n > 80 {
			return apperrors.ErrInvalidInput
		}
	}

	if params.Phone != nil && *params.Phone != "" {
		digits := strings.NewReplacer("-", "", "+", "", " ", "").Replace(*params.Phone)
		if digits == "" {
			return apperrors.ErrInvalidInput
		}
		for _, r := range digits {
			if !unicode.IsDigit(r) {
				return apperrors.ErrInvalidInput
			}
		}
	}

	if params.Bio != nil && len(*params.Bio) > 500 {
		return apperrors.ErrInvalidInput
	}

	if params.ProfilePicture != nil && *params.ProfilePicture != "" {
		p := *params.ProfilePicture
		if !strings.HasPrefix(p, "http://") && !strings.HasPrefix(p, "https://") && !strings.HasPrefix(p, "/uploads/") {
			return apperrors.ErrInvalidInput
		}
	}

	return nil
}
